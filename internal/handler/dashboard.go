package handler

import (
	"net/http"

	"github.com/stpnv0/ExpoBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) ExhibitorDashboard(c *ginext.Context) {
	d, err := h.dashboardService.Exhibitor(c.Request.Context(), session(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(d))
}

func (h *Handler) AdminDashboard(c *ginext.Context) {
	d, err := h.dashboardService.Admin(c.Request.Context(), session(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(d))
}
