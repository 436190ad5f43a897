package api

import (
	"log"
	"net/http"
	"time"

	"github.com/mis-safeli/safeli-api/internal/dashboard"
	"github.com/mis-safeli/safeli-api/internal/utils"
)

type DashboardHandler struct {
	Sales    SaleStore
	Clients  ClientStore
	infoLog  *log.Logger
	errorLog *log.Logger
}

func NewDashboardHandler(sales SaleStore, clients ClientStore, infoLog *log.Logger, errorLog *log.Logger) *DashboardHandler {
	return &DashboardHandler{
		Sales:    sales,
		Clients:  clients,
		infoLog:  infoLog,
		errorLog: errorLog,
	}
}

// -------------------- Get Dashboard --------------------
// Serves the summary counters and chart datasets derived from the
// current sale and client lists.
func (h *DashboardHandler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	sales, err := h.Sales.GetSales(r.Context())
	if err != nil {
		h.errorLog.Println("ERROR_01_GetDashboard:", err)
		utils.ServerError(w, "Failed to fetch dashboard data")
		return
	}

	clients, err := h.Clients.GetClients(r.Context())
	if err != nil {
		h.errorLog.Println("ERROR_02_GetDashboard:", err)
		utils.ServerError(w, "Failed to fetch dashboard data")
		return
	}

	now := time.Now()
	agg := dashboard.New(now, dashboard.RandomFiller(now.UnixNano()))

	utils.WriteJSON(w, http.StatusOK, agg.Build(sales, clients))
}
