package handlers

import (
	"net/http"

	"github.com/pollamundial/backend/services"
)

type AdminHandler struct {
	adminService services.AdminService
}

func NewAdminHandler(adminService services.AdminService) *AdminHandler {
	return &AdminHandler{adminService: adminService}
}

func (h *AdminHandler) Recalculate(w http.ResponseWriter, r *http.Request) {
	if err := h.adminService.RecalculateAll(r.Context()); err != nil {
		mapServiceErrorToHTTP(w, r, err)
		return
	}
	if err := writeJSON(w, http.StatusOK, jsonResponse{"status": "recalculated"}, nil); err != nil {
		serverErrorResponse(w, r, err)
	}
}
