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

type ClientHandler struct {
	DB       ClientStore
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewClientHandler(db ClientStore, infoLog *log.Logger, errorLog *log.Logger) *ClientHandler {
	return &ClientHandler{
		DB:       db,
		infoLog:  infoLog,
		errorLog: errorLog,
	}
}

// -------------------- List Clients --------------------
func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := h.DB.GetClients(r.Context())
	if err != nil {
		h.errorLog.Println("ERROR_01_ListClients:", err)
		utils.ServerError(w, "Failed to fetch clients")
		return
	}

	utils.WriteJSON(w, http.StatusOK, clients)
}

// -------------------- Get Client --------------------
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	dealerID, err := utils.ReadIDParam(chi.URLParam(r, "dealer_id"), "dealer_id")
	if err != nil {
		h.errorLog.Println("ERROR_01_GetClient:", err)
		utils.BadRequest(w, err)
		return
	}

	client, err := h.DB.GetClientByDealerID(r.Context(), dealerID)
	if err != nil {
		h.errorLog.Println("ERROR_02_GetClient:", err)
		if errors.Is(err, dbrepo.ErrNotFound) {
			utils.NotFound(w, errors.New("Client not found"))
			return
		}
		utils.ServerError(w, "Failed to fetch client")
		return
	}

	utils.WriteJSON(w, http.StatusOK, client)
}

// -------------------- Add Client --------------------
func (h *ClientHandler) AddClient(w http.ResponseWriter, r *http.Request) {
	var client models.Client
	if err := utils.ReadJSON(w, r, &client); err != nil {
		h.errorLog.Println("ERROR_01_AddClient:", err)
		utils.BadRequest(w, err)
		return
	}

	if err := validate.Struct(client); err != nil {
		h.errorLog.Println("ERROR_02_AddClient:", err)
		utils.BadRequest(w, errors.New("Firm name and contact details are required"))
		return
	}

	if err := h.DB.CreateClient(r.Context(), &client); err != nil {
		h.errorLog.Println("ERROR_03_AddClient:", err)
		utils.ServerError(w, "Failed to add client")
		return
	}

	utils.WriteJSON(w, http.StatusCreated, client)
}

// -------------------- Update Client --------------------
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	dealerID, err := utils.ReadIDParam(chi.URLParam(r, "dealer_id"), "dealer_id")
	if err != nil {
		h.errorLog.Println("ERROR_01_UpdateClient:", err)
		utils.BadRequest(w, err)
		return
	}

	var fields map[string]any
	if err := utils.ReadJSON(w, r, &fields); err != nil {
		h.errorLog.Println("ERROR_02_UpdateClient:", err)
		utils.BadRequest(w, err)
		return
	}

	client, err := h.DB.UpdateClient(r.Context(), dealerID, fields)
	if err != nil {
		h.errorLog.Println("ERROR_03_UpdateClient:", err)
		switch {
		case errors.Is(err, dbrepo.ErrNoUpdatableFields):
			utils.BadRequest(w, dbrepo.ErrNoUpdatableFields)
		case errors.Is(err, dbrepo.ErrNotFound):
			utils.NotFound(w, errors.New("Client not found"))
		default:
			utils.ServerError(w, "Failed to update client")
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, client)
}

// -------------------- Delete Client --------------------
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	dealerID, err := utils.ReadIDParam(chi.URLParam(r, "dealer_id"), "dealer_id")
	if err != nil {
		h.errorLog.Println("ERROR_01_DeleteClient:", err)
		utils.BadRequest(w, err)
		return
	}

	client, err := h.DB.DeleteClient(r.Context(), dealerID)
	if err != nil {
		h.errorLog.Println("ERROR_02_DeleteClient:", err)
		if errors.Is(err, dbrepo.ErrNotFound) {
			utils.NotFound(w, errors.New("Client not found"))
			return
		}
		utils.ServerError(w, "Failed to delete client")
		return
	}

	resp := struct {
		Message string         `json:"message"`
		Client  *models.Client `json:"client"`
	}{
		Message: "Client deleted successfully",
		Client:  client,
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}

// -------------------- Search Clients --------------------
func (h *ClientHandler) SearchClients(w http.ResponseWriter, r *http.Request) {
	search := chi.URLParam(r, "query")

	clients, err := h.DB.SearchClients(r.Context(), search)
	if err != nil {
		h.errorLog.Println("ERROR_01_SearchClients:", err)
		utils.ServerError(w, "Failed to search clients")
		return
	}

	utils.WriteJSON(w, http.StatusOK, clients)
}
