package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"campuscal/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEventService implements domain.EventService for controller tests.
type fakeEventService struct {
	events    []*domain.Event
	createdID int64
	err       error

	created *domain.Event
	updated *domain.Event
	deleted int64
}

func (f *fakeEventService) List(_ context.Context) ([]*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.events == nil {
		return []*domain.Event{}, nil
	}
	return f.events, nil
}

func (f *fakeEventService) Create(_ context.Context, event *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	event.ID = f.createdID
	if event.EventType == "" {
		event.EventType = domain.DefaultEventType
	}
	f.created = event
	return nil
}

func (f *fakeEventService) Update(_ context.Context, event *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	f.updated = event
	return nil
}

func (f *fakeEventService) Delete(_ context.Context, id int64) error {
	if f.err != nil {
		return f.err
	}
	f.deleted = id
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	require.NoError(t, err)
	return d
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	return body
}

func TestListEvents(t *testing.T) {
	loc := "Main Hall"
	svc := &fakeEventService{events: []*domain.Event{
		{ID: 2, Title: "Soccer Practice", Date: mustDate(t, "2025-09-02"), EventType: "sports"},
		{ID: 1, Title: "Orientation", Date: mustDate(t, "2025-09-01"), Location: &loc, EventType: "academic"},
	}}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodGet, "http://test/events", nil)
	rr := httptest.NewRecorder()
	ctrl.ListEvents(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var resp ListEventsResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	require.Len(t, resp.Events, 2)
	assert.Equal(t, int64(2), resp.Events[0].ID)
	assert.Equal(t, "2025-09-01", resp.Events[1].Date.String())
	assert.Equal(t, "Main Hall", *resp.Events[1].Location)
}

func TestListEventsEmpty(t *testing.T) {
	ctrl := NewEventController(testLogger(), &fakeEventService{})

	req := httptest.NewRequest(http.MethodGet, "http://test/events", nil)
	rr := httptest.NewRecorder()
	ctrl.ListEvents(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"events":[]}`, rr.Body.String())
}

func TestListEventsStorageError(t *testing.T) {
	ctrl := NewEventController(testLogger(), &fakeEventService{err: errors.New("connection refused")})

	req := httptest.NewRequest(http.MethodGet, "http://test/events", nil)
	rr := httptest.NewRecorder()
	ctrl.ListEvents(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Database error", decodeBody(t, rr)["error"])
}

func TestCreateEvent(t *testing.T) {
	svc := &fakeEventService{createdID: 7}
	ctrl := NewEventController(testLogger(), svc)

	payload := `{"title":"Orientation","date":"2025-09-01","start_time":"10:00","location":"Main Hall"}`
	req := httptest.NewRequest(http.MethodPost, "http://test/events", bytes.NewBufferString(payload))
	rr := httptest.NewRecorder()
	ctrl.CreateEvent(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var created domain.Event
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&created))
	assert.Equal(t, int64(7), created.ID)
	assert.Equal(t, "Orientation", created.Title)
	assert.Equal(t, "2025-09-01", created.Date.String())
	assert.Equal(t, domain.EventTypeAcademic, created.EventType)
	require.NotNil(t, created.StartTime)
	assert.Equal(t, "10:00", *created.StartTime)
	assert.Nil(t, created.EndTime)
}

func TestCreateEventValidation(t *testing.T) {
	tests := []struct {
		name      string
		payload   string
		wantError string
	}{
		{"missing title", `{"date":"2025-09-01"}`, "Title and date are required"},
		{"missing date", `{"title":"Orientation"}`, "Title and date are required"},
		{"blank title", `{"title":"   ","date":"2025-09-01"}`, "Title and date are required"},
		{"bad date format", `{"title":"Orientation","date":"09/01/2025"}`, "Date must be in YYYY-MM-DD format"},
		{"malformed body", `{"title":`, "Invalid request body"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeEventService{createdID: 1}
			ctrl := NewEventController(testLogger(), svc)

			req := httptest.NewRequest(http.MethodPost, "http://test/events", bytes.NewBufferString(tt.payload))
			rr := httptest.NewRecorder()
			ctrl.CreateEvent(rr, req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, tt.wantError, decodeBody(t, rr)["error"])
			assert.Nil(t, svc.created, "service must not be called")
		})
	}
}

func TestCreateEventStorageError(t *testing.T) {
	ctrl := NewEventController(testLogger(), &fakeEventService{err: errors.New("insert failed")})

	payload := `{"title":"Orientation","date":"2025-09-01"}`
	req := httptest.NewRequest(http.MethodPost, "http://test/events", bytes.NewBufferString(payload))
	rr := httptest.NewRecorder()
	ctrl.CreateEvent(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Database error", decodeBody(t, rr)["error"])
}

func TestUpdateEvent(t *testing.T) {
	svc := &fakeEventService{}
	ctrl := NewEventController(testLogger(), svc)

	payload := `{"id":3,"title":"Orientation Day","date":"2025-09-01","event_type":"academic"}`
	req := httptest.NewRequest(http.MethodPut, "http://test/events", bytes.NewBufferString(payload))
	rr := httptest.NewRecorder()
	ctrl.UpdateEvent(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Event updated successfully", decodeBody(t, rr)["message"])
	require.NotNil(t, svc.updated)
	assert.Equal(t, int64(3), svc.updated.ID)
	assert.Equal(t, "Orientation Day", svc.updated.Title)
	// Omitted optionals overwrite with null.
	assert.Nil(t, svc.updated.Location)
}

func TestUpdateEventValidation(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing id", `{"title":"Orientation","date":"2025-09-01"}`},
		{"missing title", `{"id":3,"date":"2025-09-01"}`},
		{"missing date", `{"id":3,"title":"Orientation"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeEventService{}
			ctrl := NewEventController(testLogger(), svc)

			req := httptest.NewRequest(http.MethodPut, "http://test/events", bytes.NewBufferString(tt.payload))
			rr := httptest.NewRecorder()
			ctrl.UpdateEvent(rr, req)

			require.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "ID, title, and date are required", decodeBody(t, rr)["error"])
			assert.Nil(t, svc.updated)
		})
	}
}

func TestUpdateEventStorageError(t *testing.T) {
	ctrl := NewEventController(testLogger(), &fakeEventService{err: errors.New("update failed")})

	payload := `{"id":3,"title":"Orientation","date":"2025-09-01"}`
	req := httptest.NewRequest(http.MethodPut, "http://test/events", bytes.NewBufferString(payload))
	rr := httptest.NewRecorder()
	ctrl.UpdateEvent(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Database error", decodeBody(t, rr)["error"])
}

func TestDeleteEvent(t *testing.T) {
	svc := &fakeEventService{}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodDelete, "http://test/events", bytes.NewBufferString(`{"id":5}`))
	rr := httptest.NewRecorder()
	ctrl.DeleteEvent(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Event deleted successfully", decodeBody(t, rr)["message"])
	assert.Equal(t, int64(5), svc.deleted)
}

func TestDeleteEventValidation(t *testing.T) {
	svc := &fakeEventService{}
	ctrl := NewEventController(testLogger(), svc)

	req := httptest.NewRequest(http.MethodDelete, "http://test/events", bytes.NewBufferString(`{}`))
	rr := httptest.NewRecorder()
	ctrl.DeleteEvent(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "ID is required", decodeBody(t, rr)["error"])
	assert.Zero(t, svc.deleted)
}

func TestDeleteEventStorageError(t *testing.T) {
	ctrl := NewEventController(testLogger(), &fakeEventService{err: errors.New("delete failed")})

	req := httptest.NewRequest(http.MethodDelete, "http://test/events", bytes.NewBufferString(`{"id":5}`))
	rr := httptest.NewRecorder()
	ctrl.DeleteEvent(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Equal(t, "Database error", decodeBody(t, rr)["error"])
}
