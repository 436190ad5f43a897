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

type SaleHandler struct {
	DB       SaleStore
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewSaleHandler(db SaleStore, infoLog *log.Logger, errorLog *log.Logger) *SaleHandler {
	return &SaleHandler{
		DB:       db,
		infoLog:  infoLog,
		errorLog: errorLog,
	}
}

// -------------------- List Sales --------------------
func (h *SaleHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	sales, err := h.DB.GetSales(r.Context())
	if err != nil {
		h.errorLog.Println("ERROR_01_ListSales:", err)
		utils.ServerError(w, "Failed to fetch sales")
		return
	}

	utils.WriteJSON(w, http.StatusOK, sales)
}

// -------------------- Add Sale --------------------
func (h *SaleHandler) AddSale(w http.ResponseWriter, r *http.Request) {
	var sale models.Sale
	if err := utils.ReadJSON(w, r, &sale); err != nil {
		h.errorLog.Println("ERROR_01_AddSale:", err)
		utils.BadRequest(w, err)
		return
	}

	if err := h.DB.CreateSale(r.Context(), &sale); err != nil {
		h.errorLog.Println("ERROR_02_AddSale:", err)
		utils.ServerError(w, "Failed to add sale")
		return
	}

	utils.WriteJSON(w, http.StatusOK, sale)
}

// -------------------- Update Sale --------------------
// Applies a sparse field set to the sale addressed by order_no. Fields
// outside the fixed allow-list are silently ignored.
func (h *SaleHandler) UpdateSale(w http.ResponseWriter, r *http.Request) {
	orderNo := chi.URLParam(r, "order_no")

	var fields map[string]any
	if err := utils.ReadJSON(w, r, &fields); err != nil {
		h.errorLog.Println("ERROR_01_UpdateSale:", err)
		utils.BadRequest(w, err)
		return
	}

	sale, err := h.DB.UpdateSale(r.Context(), orderNo, fields)
	if err != nil {
		h.errorLog.Println("ERROR_02_UpdateSale:", err)
		switch {
		case errors.Is(err, dbrepo.ErrNoUpdatableFields):
			utils.BadRequest(w, dbrepo.ErrNoUpdatableFields)
		case errors.Is(err, dbrepo.ErrNotFound):
			utils.NotFound(w, errors.New("Sale not found"))
		default:
			utils.ServerError(w, "Failed to update sale")
		}
		return
	}

	utils.WriteJSON(w, http.StatusOK, sale)
}

// -------------------- Delete Sale --------------------
func (h *SaleHandler) DeleteSale(w http.ResponseWriter, r *http.Request) {
	orderNo := chi.URLParam(r, "order_no")

	sale, err := h.DB.DeleteSale(r.Context(), orderNo)
	if err != nil {
		h.errorLog.Println("ERROR_01_DeleteSale:", err)
		if errors.Is(err, dbrepo.ErrNotFound) {
			utils.NotFound(w, errors.New("Sale not found"))
			return
		}
		utils.ServerError(w, "Failed to delete sale")
		return
	}

	resp := struct {
		Message string       `json:"message"`
		Sale    *models.Sale `json:"sale"`
	}{
		Message: "Sale deleted successfully",
		Sale:    sale,
	}

	utils.WriteJSON(w, http.StatusOK, resp)
}
