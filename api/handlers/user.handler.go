package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/mis-safeli/safeli-api/internal/dbrepo"
	"github.com/mis-safeli/safeli-api/internal/models"
	"github.com/mis-safeli/safeli-api/internal/utils"
)

type UserHandler struct {
	DB       UserStore
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewUserHandler(db UserStore, infoLog *log.Logger, errorLog *log.Logger) *UserHandler {
	return &UserHandler{
		DB:       db,
		infoLog:  infoLog,
		errorLog: errorLog,
	}
}

// -------------------- List Users --------------------
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.DB.GetUsers(r.Context())
	if err != nil {
		h.errorLog.Println("ERROR_01_ListUsers:", err)
		utils.ServerError(w, "Failed to fetch users")
		return
	}

	utils.WriteJSON(w, http.StatusOK, users)
}

// -------------------- Get User --------------------
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ReadIDParam(chi.URLParam(r, "user_id"), "user_id")
	if err != nil {
		h.errorLog.Println("ERROR_01_GetUser:", err)
		utils.BadRequest(w, err)
		return
	}

	user, err := h.DB.GetUserByID(r.Context(), userID)
	if err != nil {
		h.errorLog.Println("ERROR_02_GetUser:", err)
		if errors.Is(err, dbrepo.ErrNotFound) {
			utils.NotFound(w, errors.New("User not found"))
			return
		}
		utils.ServerError(w, "Failed to fetch user")
		return
	}

	utils.WriteJSON(w, http.StatusOK, user)
}

// -------------------- Add User --------------------
func (h *UserHandler) AddUser(w http.ResponseWriter, r *http.Request) {
	var user models.User
	if err := utils.ReadJSON(w, r, &user); err != nil {
		h.errorLog.Println("ERROR_01_AddUser:", err)
		utils.BadRequest(w, err)
		return
	}

	if err := validate.Struct(user); err != nil {
		h.errorLog.Println("ERROR_02_AddUser:", err)
		utils.BadRequest(w, errors.New("Username, email and role are required"))
		return
	}

	if err := h.DB.CreateUser(r.Context(), &user); err != nil {
		h.errorLog.Println("ERROR_03_AddUser:", err)
		if errors.Is(err, dbrepo.ErrDuplicateEmail) {
			utils.BadRequest(w, dbrepo.ErrDuplicateEmail)
			return
		}
		utils.ServerError(w, "Failed to add user")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, user)
}

// -------------------- Update User --------------------
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ReadIDParam(chi.URLParam(r, "user_id"), "user_id")
	if err != nil {
		h.errorLog.Println("ERROR_01_UpdateUser:", err)
		utils.BadRequest(w, err)
		return
	}

	var fields map[string]any
	if err := utils.ReadJSON(w, r, &fields); err != nil {
		h.errorLog.Println("ERROR_02_UpdateUser:", err)
		utils.BadRequest(w, err)
		return
	}

	user, err := h.DB.UpdateUser(r.Context(), userID, fields)
	if err != nil {
		h.errorLog.Println("ERROR_03_UpdateUser:", err)
		switch {
		case errors.Is(err, dbrepo.ErrNoUpdatableFields):
			utils.BadRequest(w, dbrepo.ErrNoUpdatableFields)
		case errors.Is(err, dbrepo.ErrDuplicateEmail):
			utils.BadRequest(w, dbrepo.ErrDuplicateEmail)
		case errors.Is(err, dbrepo.ErrNotFound):
			utils.NotFound(w, errors.New("User not found"))
		default:
			utils.ServerError(w, "Failed to update user")
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, user)
}

// -------------------- Delete User --------------------
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := utils.ReadIDParam(chi.URLParam(r, "user_id"), "user_id")
	if err != nil {
		h.errorLog.Println("ERROR_01_DeleteUser:", err)
		utils.BadRequest(w, err)
		return
	}

	user, err := h.DB.DeleteUser(r.Context(), userID)
	if err != nil {
		h.errorLog.Println("ERROR_02_DeleteUser:", err)
		if errors.Is(err, dbrepo.ErrNotFound) {
			utils.NotFound(w, errors.New("User not found"))
			return
		}
		utils.ServerError(w, "Failed to delete user")
		return
	}

	resp := struct {
		Message string       `json:"message"`
		User    *models.User `json:"user"`
	}{
		Message: "User deleted successfully",
		User:    user,
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// -------------------- Search Users --------------------
func (h *UserHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	search := chi.URLParam(r, "query")

	users, err := h.DB.SearchUsers(r.Context(), search)
	if err != nil {
		h.errorLog.Println("ERROR_01_SearchUsers:", err)
		utils.ServerError(w, "Failed to search users")
		return
	}

	utils.WriteJSON(w, http.StatusOK, users)
}
