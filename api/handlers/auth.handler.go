package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/mis-safeli/safeli-api/internal/dbrepo"
	"github.com/mis-safeli/safeli-api/internal/models"
	"github.com/mis-safeli/safeli-api/internal/utils"
)

type AuthHandler struct {
	DB        UserStore
	JWTConfig models.JWTConfig
	infoLog   *log.Logger
	errorLog  *log.Logger
}

func NewAuthHandler(db UserStore, JWTConfig models.JWTConfig, infoLog *log.Logger, errorLog *log.Logger) *AuthHandler {
	return &AuthHandler{
		DB:        db,
		JWTConfig: JWTConfig,
		infoLog:   infoLog,
		errorLog:  errorLog,
	}
}

// -------------------- Login --------------------
// Credentials are the user's email plus their stored contact number,
// compared in plain text. That contract comes straight from the source
// system and is a known security defect; see DESIGN.md before reusing
// this anywhere real.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	if err := utils.ReadJSON(w, r, &req); err != nil {
		h.errorLog.Println("ERROR_01_Login:", err)
		utils.BadRequest(w, err)
		return
	}

	if req.Email == "" || req.Password == "" {
		h.errorLog.Println("ERROR_02_Login: missing email or password")
		utils.BadRequest(w, errors.New("Email and password are required"))
		return
	}

	user, err := h.DB.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, dbrepo.ErrNotFound) {
			h.errorLog.Println("ERROR_03_Login: no user for email")
			utils.Unauthorized(w, "User not found with this email")
			return
		}
		h.errorLog.Println("ERROR_04_Login:", err)
		utils.ServerError(w, "Server error during login")
		return
	}

	if req.Password != user.Contact {
		h.errorLog.Println("ERROR_05_Login: invalid credentials")
		utils.Unauthorized(w, "Invalid contact number")
		return
	}

	token, err := utils.GenerateJWT(models.JWT{
		ID:       user.UserID,
		Name:     user.UserName,
		Username: user.Email,
		Role:     user.Role,
	}, h.JWTConfig)
	if err != nil {
		h.errorLog.Println("ERROR_06_Login: failed to generate token", err)
		utils.ServerError(w, "Server error during login")
		return
	}

	resp := struct {
		Success bool                  `json:"success"`
		Message string                `json:"message"`
		User    models.UserProjection `json:"user"`
		Token   string                `json:"token"`
	}{
		Success: true,
		Message: "Login successful",
		User: models.UserProjection{
			ID:      user.UserID,
			Name:    user.UserName,
			Email:   user.Email,
			Contact: user.Contact,
			Role:    user.Role,
		},
		Token: token,
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// -------------------- Check --------------------
// Stub; there is no real session model behind it.
func (h *AuthHandler) Check(w http.ResponseWriter, r *http.Request) {
	resp := struct {
		Authenticated bool   `json:"authenticated"`
		Message       string `json:"message"`
	}{
		Authenticated: true,
		Message:       "Auth check endpoint",
	}
	utils.WriteJSON(w, http.StatusOK, resp)
}

// -------------------- Logout --------------------
// Stub; clearing state is the caller's job.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	resp := struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}{
		Success: true,
		Message: "Logout successful",
	}
	utils.WriteJSON(w, http.StatusOK, resp)
}
