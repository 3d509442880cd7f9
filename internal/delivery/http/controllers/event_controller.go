package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"campuscal/internal/delivery/http/helpers"
	"campuscal/internal/domain"
)

// CreateEventRequest is the request body for POST /events. Only title
// and date are required; omitted event_type defaults to academic.
type CreateEventRequest struct {
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	EventType   *string `json:"event_type"`
}

// Validate implements Validator.
func (c CreateEventRequest) Validate() string {
	if strings.TrimSpace(c.Title) == "" || strings.TrimSpace(c.Date) == "" {
		return "Title and date are required"
	}
	if _, err := domain.ParseDate(c.Date); err != nil {
		return "Date must be in YYYY-MM-DD format"
	}
	return ""
}

// UpdateEventRequest is the request body for PUT /events. The id rides
// in the body, and all fields overwrite the stored row.
type UpdateEventRequest struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	Date        string  `json:"date"`
	StartTime   *string `json:"start_time"`
	EndTime     *string `json:"end_time"`
	Location    *string `json:"location"`
	Description *string `json:"description"`
	EventType   *string `json:"event_type"`
}

// Validate implements Validator.
func (u UpdateEventRequest) Validate() string {
	if u.ID == 0 || strings.TrimSpace(u.Title) == "" || strings.TrimSpace(u.Date) == "" {
		return "ID, title, and date are required"
	}
	if _, err := domain.ParseDate(u.Date); err != nil {
		return "Date must be in YYYY-MM-DD format"
	}
	return ""
}

// DeleteEventRequest is the request body for DELETE /events.
type DeleteEventRequest struct {
	ID int64 `json:"id"`
}

// Validate implements Validator.
func (d DeleteEventRequest) Validate() string {
	if d.ID == 0 {
		return "ID is required"
	}
	return ""
}

// ListEventsResponse is the response body for GET /events.
type ListEventsResponse struct {
	Events []*domain.Event `json:"events"`
}

// MessageResponse is the {"message": ...} body used by update and delete.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the {"error": ...} body used on failures.
type ErrorResponse struct {
	Error string `json:"error"`
}

type EventController struct {
	Logger  *slog.Logger
	Service domain.EventService
}

func NewEventController(logger *slog.Logger, svc domain.EventService) *EventController {
	return &EventController{
		Logger:  logger,
		Service: svc,
	}
}

// ListEvents godoc
// @Summary List all events
// @Description Returns every calendar event, newest first. No authentication required.
// @Tags events
// @Produce json
// @Success 200 {object} controllers.ListEventsResponse
// @Failure 500 {object} controllers.ErrorResponse "Database error"
// @Router /events [get]
func (c *EventController) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Database error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, ListEventsResponse{Events: events})
}

// CreateEvent godoc
// @Summary Create an event
// @Description Creates a calendar event and returns the stored row with its assigned id. Requires an admin Bearer token.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body CreateEventRequest true "Event data"
// @Success 200 {object} domain.Event
// @Failure 400 {object} controllers.ErrorResponse "Title and date are required"
// @Failure 401 {object} controllers.ErrorResponse
// @Failure 403 {object} controllers.ErrorResponse
// @Failure 500 {object} controllers.ErrorResponse "Database error"
// @Router /events [post]
func (c *EventController) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var req CreateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	date, _ := domain.ParseDate(req.Date)
	event := domain.NewEvent(req.Title, date, strValue(req.EventType))
	event.StartTime = req.StartTime
	event.EndTime = req.EndTime
	event.Location = req.Location
	event.Description = req.Description
	if err := c.Service.Create(r.Context(), event); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteError(w, http.StatusBadRequest, "Title and date are required")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Database error")
		return
	}
	helpers.WriteJSON(w, http.StatusOK, event)
}

// UpdateEvent godoc
// @Summary Update an event
// @Description Overwrites every stored field of the event identified by the id in the body. Updating an id that does not exist still reports success. Requires an admin Bearer token.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body UpdateEventRequest true "Full replacement event data"
// @Success 200 {object} controllers.MessageResponse "Event updated successfully"
// @Failure 400 {object} controllers.ErrorResponse "ID, title, and date are required"
// @Failure 401 {object} controllers.ErrorResponse
// @Failure 403 {object} controllers.ErrorResponse
// @Failure 500 {object} controllers.ErrorResponse "Database error"
// @Router /events [put]
func (c *EventController) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req UpdateEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	date, _ := domain.ParseDate(req.Date)
	event := domain.NewEvent(req.Title, date, strValue(req.EventType))
	event.ID = req.ID
	event.StartTime = req.StartTime
	event.EndTime = req.EndTime
	event.Location = req.Location
	event.Description = req.Description
	if err := c.Service.Update(r.Context(), event); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteError(w, http.StatusBadRequest, "ID, title, and date are required")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Database error")
		return
	}
	helpers.WriteMessage(w, http.StatusOK, "Event updated successfully")
}

// DeleteEvent godoc
// @Summary Delete an event
// @Description Deletes the event identified by the id in the body. Deleting an id that does not exist still reports success. Requires an admin Bearer token.
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param event body DeleteEventRequest true "Event id"
// @Success 200 {object} controllers.MessageResponse "Event deleted successfully"
// @Failure 400 {object} controllers.ErrorResponse "ID is required"
// @Failure 401 {object} controllers.ErrorResponse
// @Failure 403 {object} controllers.ErrorResponse
// @Failure 500 {object} controllers.ErrorResponse "Database error"
// @Router /events [delete]
func (c *EventController) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	var req DeleteEventRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	if err := c.Service.Delete(r.Context(), req.ID); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteError(w, http.StatusBadRequest, "ID is required")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteError(w, http.StatusInternalServerError, "Database error")
		return
	}
	helpers.WriteMessage(w, http.StatusOK, "Event deleted successfully")
}

func strValue(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
