package handler

import (
	"net/http"

	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/stpnv0/ExpoBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

func (h *Handler) Register(c *ginext.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.authService.Register(c.Request.Context(), domain.RegisterInput{
		Name:           req.Name,
		Email:          req.Email,
		Password:       req.Password,
		Role:           domain.Role(req.Role),
		CompanyName:    req.CompanyName,
		TelegramChatID: req.TelegramChatID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAuthResponse(res))
}

func (h *Handler) Login(c *ginext.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	res, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAuthResponse(res))
}

func (h *Handler) Logout(c *ginext.Context) {
	if err := h.authService.Logout(c.Request.Context(), session(c)); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "logged out"})
}
