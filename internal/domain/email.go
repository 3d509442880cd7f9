package domain

import "context"

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data interface{}) (subject, htmlBody, textBody string, err error)
}

// EventAnnouncementData is the template data for an event announcement email.
type EventAnnouncementData struct {
	Title     string
	Date      string
	StartTime string
	Location  string
	EventType string
}

// AnnouncementService sends announcement emails for newly created
// events. Implementations are best-effort; callers must not fail the
// originating operation on error.
type AnnouncementService interface {
	AnnounceEvent(ctx context.Context, event *Event) error
}
