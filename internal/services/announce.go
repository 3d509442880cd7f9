package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"campuscal/internal/domain"
)

type announcementService struct {
	mailer     domain.Mailer
	renderer   domain.EmailTemplateRenderer
	recipients []string
}

// NewAnnouncementService returns an AnnouncementService that emails
// the given recipients whenever an event is created.
func NewAnnouncementService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, recipients []string) domain.AnnouncementService {
	return &announcementService{
		mailer:     mailer,
		renderer:   renderer,
		recipients: recipients,
	}
}

// AnnounceEvent renders the announcement template and sends it to every
// configured recipient. Partial failures are reported after all sends
// have been attempted.
func (s *announcementService) AnnounceEvent(_ context.Context, event *domain.Event) error {
	if len(s.recipients) == 0 {
		return nil
	}

	data := &domain.EventAnnouncementData{
		Title:     event.Title,
		Date:      event.Date.String(),
		StartTime: deref(event.StartTime),
		Location:  deref(event.Location),
		EventType: event.EventType,
	}
	subject, htmlBody, textBody, err := s.renderer.Render("event_announcement", data)
	if err != nil {
		return fmt.Errorf("render announcement template: %w", err)
	}

	var failed []string
	for _, to := range s.recipients {
		if err := s.mailer.Send(to, subject, htmlBody, textBody); err != nil {
			log.Printf("[EMAIL] announcement to %s failed: %v", to, err)
			failed = append(failed, to)
		}
	}
	if len(failed) > 0 {
		return fmt.Errorf("announcement failed for: %s", strings.Join(failed, ", "))
	}
	log.Printf("[EMAIL] announcement for %q sent to %d recipients", event.Title, len(s.recipients))
	return nil
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}
