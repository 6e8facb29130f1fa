package handler

import (
	"net/http"

	"github.com/stpnv0/ExpoBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Me(c *ginext.Context) {
	user, err := h.userService.Me(c.Request.Context(), session(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context(), session(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	resp := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		resp = append(resp, dto.ToUserResponse(u))
	}

	c.JSON(http.StatusOK, resp)
}
