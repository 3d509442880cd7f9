package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"campuscal/internal/domain"
)

type eventService struct {
	repo           domain.EventRepository
	announcer      domain.AnnouncementService // nil disables announcements
	contextTimeout time.Duration
}

// NewEventService creates an EventService over the given repository.
// announcer may be nil when event announcements are disabled.
func NewEventService(repo domain.EventRepository, announcer domain.AnnouncementService, timeout time.Duration) domain.EventService {
	return &eventService{
		repo:           repo,
		announcer:      announcer,
		contextTimeout: timeout,
	}
}

func (s *eventService) List(ctx context.Context) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) Create(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if strings.TrimSpace(event.Title) == "" || event.Date.IsZero() {
		return fmt.Errorf("%w: title and date are required", domain.ErrInvalidInput)
	}
	normalizeEvent(event)

	if err := s.repo.Insert(ctx, event); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	// Best-effort: a failed announcement never fails the create.
	if s.announcer != nil {
		if err := s.announcer.AnnounceEvent(ctx, event); err != nil {
			log.Printf("[EVENTS] announcement for event %d failed: %v", event.ID, err)
		}
	}
	return nil
}

// Update performs a full overwrite of all mutable fields. Updating an
// id that does not exist succeeds without touching anything; callers
// that need to distinguish must list first.
func (s *eventService) Update(ctx context.Context, event *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if event.ID <= 0 || strings.TrimSpace(event.Title) == "" || event.Date.IsZero() {
		return fmt.Errorf("%w: id, title, and date are required", domain.ErrInvalidInput)
	}
	normalizeEvent(event)

	if err := s.repo.Update(ctx, event); err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	return nil
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if id <= 0 {
		return fmt.Errorf("%w: id is required", domain.ErrInvalidInput)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

// normalizeEvent applies the storage defaults: title trimmed, blank
// optionals stored as null, omitted event_type as academic. Unknown
// event_type strings pass through unchanged.
func normalizeEvent(e *domain.Event) {
	e.Title = strings.TrimSpace(e.Title)
	if strings.TrimSpace(e.EventType) == "" {
		e.EventType = domain.DefaultEventType
	}
	e.StartTime = blankToNil(e.StartTime)
	e.EndTime = blankToNil(e.EndTime)
	e.Location = blankToNil(e.Location)
	e.Description = blankToNil(e.Description)
}

func blankToNil(p *string) *string {
	if p == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*p)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
