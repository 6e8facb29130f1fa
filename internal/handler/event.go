package handler

import (
	"net/http"
	"strconv"

	"github.com/stpnv0/ExpoBooker/internal/domain"
	"github.com/stpnv0/ExpoBooker/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const (
	createFailedMsg = "failed to create event, please try again"
	updateFailedMsg = "failed to update event, please try again"
)

func toEventInput(req dto.EventRequest) domain.EventInput {
	return domain.EventInput{
		Title:          req.Title,
		Description:    req.Description,
		Date:           req.Date,
		Time:           req.Time,
		Location:       req.Location,
		Category:       req.Category,
		Capacity:       string(req.Capacity),
		Price:          string(req.Price),
		Image:          req.Image,
		RemoveImage:    req.RemoveImage,
		SelectedBooths: req.SelectedBooths,
	}
}

func (h *Handler) CreateEvent(c *ginext.Context) {
	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.Create(c.Request.Context(), session(c), toEventInput(req))
	if err != nil {
		h.handleFormError(c, err, createFailedMsg)
		return
	}

	c.JSON(http.StatusCreated, dto.ToEventResponse(event))
}

func (h *Handler) UpdateEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	var req dto.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	event, err := h.eventService.Update(c.Request.Context(), session(c), id, toEventInput(req))
	if err != nil {
		h.handleFormError(c, err, updateFailedMsg)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) DeleteEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	if err := h.eventService.Delete(c.Request.Context(), session(c), id); err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, ginext.H{"status": "deleted"})
}

func (h *Handler) GetEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, err := h.eventService.Get(c.Request.Context(), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) ListEvents(c *ginext.Context) {
	filter := domain.EventFilter{Category: domain.Category(c.Query("category"))}
	if raw := c.Query("upcoming"); raw != "" {
		upcoming, err := strconv.ParseBool(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid upcoming flag"})
			return
		}
		filter.UpcomingOnly = upcoming
	}

	events, err := h.eventService.List(c.Request.Context(), filter)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}

// Registrations

func (h *Handler) RegisterForEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, err := h.eventService.Register(c.Request.Context(), session(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) UnregisterFromEvent(c *ginext.Context) {
	id, ok := eventID(c)
	if !ok {
		return
	}

	event, err := h.eventService.Unregister(c.Request.Context(), session(c), id)
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponse(event))
}

func (h *Handler) MyEvents(c *ginext.Context) {
	events, err := h.eventService.ListRegistered(c.Request.Context(), session(c))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToEventResponses(events))
}
