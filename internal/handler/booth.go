package handler

import (
	"net/http"

	"github.com/stpnv0/ExpoBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) BoothGrid(c *ginext.Context) {
	c.JSON(http.StatusOK, dto.ToBoothGridResponse(h.grid))
}
