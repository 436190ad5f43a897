package api

import (
	"context"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/mis-safeli/safeli-api/internal/dbrepo"
	"github.com/mis-safeli/safeli-api/internal/models"
)

// validate checks the `validate` struct tags on create payloads.
var validate = validator.New()

// SaleStore is the persistence surface the sale handlers depend on.
type SaleStore interface {
	GetSales(ctx context.Context) ([]*models.Sale, error)
	CreateSale(ctx context.Context, sale *models.Sale) error
	UpdateSale(ctx context.Context, orderNo string, fields map[string]any) (*models.Sale, error)
	DeleteSale(ctx context.Context, orderNo string) (*models.Sale, error)
}

// ClientStore is the persistence surface the client handlers depend on.
type ClientStore interface {
	GetClients(ctx context.Context) ([]*models.Client, error)
	GetClientByDealerID(ctx context.Context, dealerID int) (*models.Client, error)
	CreateClient(ctx context.Context, client *models.Client) error
	UpdateClient(ctx context.Context, dealerID int, fields map[string]any) (*models.Client, error)
	DeleteClient(ctx context.Context, dealerID int) (*models.Client, error)
	SearchClients(ctx context.Context, search string) ([]*models.Client, error)
}

// UserStore is the persistence surface the user and auth handlers
// depend on.
type UserStore interface {
	GetUsers(ctx context.Context) ([]*models.User, error)
	GetUserByID(ctx context.Context, userID int) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	CreateUser(ctx context.Context, user *models.User) error
	UpdateUser(ctx context.Context, userID int, fields map[string]any) (*models.User, error)
	DeleteUser(ctx context.Context, userID int) (*models.User, error)
	SearchUsers(ctx context.Context, search string) ([]*models.User, error)
}

type HandlerRepo struct {
	Sale      *SaleHandler
	Client    *ClientHandler
	User      *UserHandler
	Auth      *AuthHandler
	Dashboard *DashboardHandler
}

func NewHandlerRepo(db *dbrepo.DBRepository, JWT models.JWTConfig, infoLog *log.Logger, errorLog *log.Logger) *HandlerRepo {
	return &HandlerRepo{
		Sale:      NewSaleHandler(db.SaleRepo, infoLog, errorLog),
		Client:    NewClientHandler(db.ClientRepo, infoLog, errorLog),
		User:      NewUserHandler(db.UserRepo, infoLog, errorLog),
		Auth:      NewAuthHandler(db.UserRepo, JWT, infoLog, errorLog),
		Dashboard: NewDashboardHandler(db.SaleRepo, db.ClientRepo, infoLog, errorLog),
	}
}
