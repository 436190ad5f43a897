package models

import "time"

const (
	APPName    = "Safeli Admin"
	APPVersion = "1.0"
)

// Response is the type for generic response bodies
type Response struct {
	Error   bool   `json:"error"`
	Status  string `json:"status"`
	Message string `json:"message"`
}

// JWT holds the claims carried by a signed login token
type JWT struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	Issuer    string    `json:"iss"`
	Audience  string    `json:"aud"`
	ExpiresAt int64     `json:"exp"`
	IssuedAt  int64     `json:"iat"`
	CreatedAt time.Time `json:"created_at"`
}

type JWTConfig struct {
	SecretKey string
	Issuer    string
	Audience  string
	Algorithm string
	Expiry    time.Duration
}

type DBConfig struct {
	DSN    string
	DEVDSN string
}

type Config struct {
	Port    int
	Env     string
	DataDir string
	JWT     JWTConfig
	DB      DBConfig
}

// Sale model. order_no is externally assigned and addresses the
// record for update and delete; timestamp is set by the server at insert.
type Sale struct {
	Timestamp            time.Time `json:"timestamp"`
	OrderNo              string    `json:"order_no"`
	BatterySpecification string    `json:"battery_specification"`
	Application          string    `json:"application"`
	IOT                  string    `json:"iot"`
	IOTType              string    `json:"iot_type"`
	Quantity             FlexInt   `json:"quantity"`
	BrandingType         string    `json:"branding_type"`
	BrandingLabel        string    `json:"branding_label"`
	Charger              string    `json:"charger"`
	ChargerQty           FlexInt   `json:"charger_qty"`
	SOC                  string    `json:"soc"`
	SOCQty               FlexInt   `json:"soc_qty"`
	ExpectedDispatchDate Date      `json:"expected_dispatch_date"`
	Remarks              string    `json:"remarks"`
}

// Client model. dealer_id is supplied by the caller at creation.
type Client struct {
	DealerID       int    `json:"dealer_id"`
	FirmName       string `json:"firm_name" validate:"required"`
	ContactDetails string `json:"contact_details" validate:"required"`
	District       string `json:"district"`
	DealerName     string `json:"dealer_name"`
	Address        string `json:"address"`
	Region         string `json:"region"`
	State          string `json:"state"`
	City           string `json:"city"`
	Pincode        string `json:"pincode"`
	GSTNumb        string `json:"gst_numb"`
	Telephone      string `json:"telephone"`
}

// User model. user_id and created_at are assigned by the store; the
// contact field doubles as the login credential (see auth handler).
type User struct {
	UserID    int    `json:"user_id"`
	UserName  string `json:"user_name" validate:"required"`
	Contact   string `json:"contact"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"role" validate:"required"`
	CreatedAt string `json:"created_at"`
}

// UserProjection is the user shape returned to a successful login.
type UserProjection struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Contact string `json:"contact"`
	Role    string `json:"role"`
}
