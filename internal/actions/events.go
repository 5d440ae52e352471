package actions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"zero-actions/internal/dates"
	"zero-actions/internal/models"
)

// rsvpExecutor replies to an event invitation and, on accept, adds the
// event to the device calendar.
type rsvpExecutor struct {
	deps Deps
}

var rsvpBodies = map[string]string{
	"accept":    "Thanks for the invitation. I'll be there.",
	"decline":   "Thanks for the invitation, but I can't make it.",
	"tentative": "Thanks for the invitation. I may be able to attend and will confirm closer to the date.",
}

func (e *rsvpExecutor) Preview(ctx context.Context, req *Request) *models.PreviewActionResponse {
	rc := req.Context.(RSVPContext)
	recipient := firstNonEmpty(rc.OrganizerEmail, req.Card.SenderEmail)

	rows := appendRow(nil, "Event", firstNonEmpty(rc.EventTitle, req.Card.Title))
	rows = appendRow(rows, "When", rc.EventDate)
	rows = appendRow(rows, "Where", rc.Location)
	rows = appendRow(rows, "Organizer", recipient)

	resp := &models.PreviewActionResponse{
		Title:        displayTitle(req.Action),
		Subtitle:     req.Card.Sender,
		DetailRows:   rows,
		PrimaryLabel: "Send RSVP",
	}
	if recipient == "" {
		resp.Warnings = append(resp.Warnings, "No organizer address found for this invitation")
		resp.Disabled = true
	} else if !e.deps.mailerAvailable() {
		resp.Warnings = append(resp.Warnings, "We'll prepare the reply for you to send")
	}
	return resp
}

func (e *rsvpExecutor) Execute(ctx context.Context, req *Request) (*Outcome, *ActionError) {
	rc := req.Context.(RSVPContext)

	response := strings.ToLower(strings.TrimSpace(req.Input["response"]))
	body, ok := rsvpBodies[response]
	if !ok {
		return nil, NewValidationError("response", "response must be accept, decline, or tentative")
	}

	recipient := firstNonEmpty(rc.OrganizerEmail, req.Card.SenderEmail)
	if recipient == "" {
		return nil, NewMissingContextError("organizerEmail")
	}

	event := firstNonEmpty(rc.EventTitle, req.Card.Title, "the event")
	subject := "RE: " + event

	var directives []models.Directive
	if response == "accept" && rc.EventDate != "" {
		when := dates.Resolve(rc.EventDate, e.deps.now())
		directives = append(directives, addCalendar(event, when.Format(time.RFC3339), rc.Location))
	}

	if !e.deps.mailerAvailable() {
		directives = append(directives, composeEmail(recipient, subject, body))
		return &Outcome{
			Banner:     warningBanner("Reply ready to send", "Sending isn't configured. Review the RSVP reply and send it yourself."),
			Directives: directives,
		}, nil
	}

	if err := e.deps.Mailer.Send(ctx, recipient, subject, body); err != nil {
		return nil, NewDeliveryFailedError(err)
	}
	return &Outcome{
		Banner:     successBanner("RSVP sent", fmt.Sprintf("Your %s reply went to %s", response, recipient)),
		Directives: directives,
		Effects:    []string{fmt.Sprintf("rsvp %s sent to %s", response, recipient)},
	}, nil
}

// calendarEventExecutor hands the event to the device calendar.
type calendarEventExecutor struct {
	deps Deps
}

func (e *calendarEventExecutor) Preview(ctx context.Context, req *Request) *models.PreviewActionResponse {
	ec := req.Context.(EventContext)
	when := dates.Resolve(ec.Date, e.deps.now())

	rows := appendRow(nil, "Event", firstNonEmpty(ec.Title, req.Card.Title))
	rows = appendRow(rows, "When", dates.FormatBanner(when))
	rows = appendRow(rows, "Where", ec.Location)

	return &models.PreviewActionResponse{
		Title:        displayTitle(req.Action),
		Subtitle:     req.Card.Sender,
		DetailRows:   rows,
		PrimaryLabel: "Add to Calendar",
	}
}

func (e *calendarEventExecutor) Execute(ctx context.Context, req *Request) (*Outcome, *ActionError) {
	ec := req.Context.(EventContext)
	title := firstNonEmpty(ec.Title, req.Card.Title)
	when := dates.Resolve(ec.Date, e.deps.now())

	return &Outcome{
		Banner:     successBanner("Event added", fmt.Sprintf("Adding %q on %s", title, dates.FormatBanner(when))),
		Directives: []models.Directive{addCalendar(title, when.Format(time.RFC3339), ec.Location)},
	}, nil
}

// setReminderExecutor mirrors the reminder to the device and, when a store
// is wired, keeps a server-side row so other surfaces can list it.
type setReminderExecutor struct {
	deps Deps
}

func (e *setReminderExecutor) Preview(ctx context.Context, req *Request) *models.PreviewActionResponse {
	rc := req.Context.(ReminderContext)
	when := dates.Resolve(rc.Date, e.deps.now())

	rows := appendRow(nil, "Reminder", reminderTitle(rc, req.Card))
	rows = appendRow(rows, "When", dates.FormatBanner(when))

	return &models.PreviewActionResponse{
		Title:        displayTitle(req.Action),
		Subtitle:     req.Card.Sender,
		DetailRows:   rows,
		PrimaryLabel: "Set Reminder",
	}
}

func (e *setReminderExecutor) Execute(ctx context.Context, req *Request) (*Outcome, *ActionError) {
	rc := req.Context.(ReminderContext)
	title := reminderTitle(rc, req.Card)
	now := e.deps.now()
	remindAt := dates.Resolve(rc.Date, now)

	var effects []string
	if e.deps.Reminders != nil {
		reminder := &models.Reminder{
			ID:        uuid.NewString(),
			UserID:    req.UserID,
			EmailID:   req.Card.ID,
			Title:     title,
			RemindAt:  remindAt,
			CreatedAt: now,
		}
		if err := e.deps.Reminders.Create(ctx, reminder); err != nil {
			return nil, NewSchedulingFailedError(err)
		}
		effects = append(effects, fmt.Sprintf("reminder %s saved", reminder.ID))
	}

	return &Outcome{
		Banner:     successBanner("Reminder set", fmt.Sprintf("We'll remind you on %s", dates.FormatBanner(remindAt))),
		Directives: []models.Directive{addReminder(title, remindAt.Format(time.RFC3339))},
		Effects:    effects,
	}, nil
}

func reminderTitle(rc ReminderContext, card *models.EmailCard) string {
	if rc.Title != "" {
		return rc.Title
	}
	return fmt.Sprintf("Follow up: %s", card.Title)
}
