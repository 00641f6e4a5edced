// Package compose is the anonymous sender's form: a recipient field with
// suggestions, a message body, and submission.
package compose

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"sync"

	"github.com/heartmarshall/truefeedback-backend/internal/client/api"
	"github.com/heartmarshall/truefeedback-backend/internal/client/notice"
	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

// ErrBusy is returned while a submission is in flight.
var ErrBusy = errors.New("compose: submission in flight")

// Sender delivers a note to a resolved handle.
type Sender interface {
	SendMessage(ctx context.Context, target, content string) (string, error)
}

// Suggestions is fed every change of the recipient field.
type Suggestions interface {
	Input(text string)
	Select(c domain.SuggestionCandidate)
	Clear()
}

// Composer holds the form state. Safe for concurrent use.
type Composer struct {
	sender      Sender
	notifier    notice.Notifier
	suggestions Suggestions
	maxLen      int
	log         *slog.Logger

	mu      sync.Mutex
	target  string
	content string
	sending bool
}

// Option configures a Composer.
type Option func(*Composer)

// WithSuggestions wires the recipient field to a suggestion engine.
func WithSuggestions(s Suggestions) Option { return func(c *Composer) { c.suggestions = s } }

// WithMaxLength sets the content limit checked before submission.
func WithMaxLength(n int) Option { return func(c *Composer) { c.maxLen = n } }

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option { return func(c *Composer) { c.log = l } }

// New creates an empty Composer.
func New(sender Sender, notifier notice.Notifier, opts ...Option) *Composer {
	c := &Composer{
		sender:   sender,
		notifier: notice.OrDiscard(notifier),
		maxLen:   domain.DefaultMaxContentLength,
		log:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.log = c.log.With("component", "compose")
	return c
}

// SetTarget updates the recipient field.
func (c *Composer) SetTarget(text string) {
	c.mu.Lock()
	c.target = text
	c.mu.Unlock()
	if c.suggestions != nil {
		c.suggestions.Input(text)
	}
}

// Choose fills the recipient field from a suggestion.
func (c *Composer) Choose(cand domain.SuggestionCandidate) {
	c.mu.Lock()
	c.target = cand.Handle
	c.mu.Unlock()
	if c.suggestions != nil {
		c.suggestions.Select(cand)
	}
}

// SetContent updates the message body.
func (c *Composer) SetContent(text string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.content = text
}

// Target returns the recipient field as typed.
func (c *Composer) Target() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.target
}

// Content returns the message body.
func (c *Composer) Content() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.content
}

// Sending reports whether a submission is in flight.
func (c *Composer) Sending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sending
}

// Submit checks the form locally, sends it, and clears the form and the
// suggestions only when the server accepted the note.
func (c *Composer) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.sending {
		c.mu.Unlock()
		return ErrBusy
	}
	target, content := c.target, c.content

	handle, ok := domain.ResolveRecipient(target)
	if !ok {
		c.mu.Unlock()
		c.notifier.Notify(notice.Notice{
			Title:       "Invalid target",
			Description: "Enter a valid username or profile link",
			Level:       notice.LevelError,
		})
		return domain.ErrInvalidTarget
	}
	if err := domain.ValidateContent(content, c.maxLen); err != nil {
		c.mu.Unlock()
		c.notifier.Notify(notice.Notice{
			Title:       "Invalid message",
			Description: contentProblem(err),
			Level:       notice.LevelError,
		})
		return err
	}
	c.sending = true
	c.mu.Unlock()

	confirmation, err := c.sender.SendMessage(ctx, handle, content)

	c.mu.Lock()
	c.sending = false
	if err == nil {
		c.target, c.content = "", ""
	}
	c.mu.Unlock()

	if err != nil {
		c.log.InfoContext(ctx, "send failed", slog.String("recipient", handle), slog.String("error", err.Error()))
		c.notifier.Notify(notice.Notice{
			Title:       "Error",
			Description: api.UserMessage(err, "Failed to send message"),
			Level:       notice.LevelError,
		})
		return fmt.Errorf("compose.Submit: %w", err)
	}

	if c.suggestions != nil {
		c.suggestions.Clear()
	}
	if confirmation == "" {
		confirmation = "Message sent successfully"
	}
	c.notifier.Notify(notice.Notice{Title: confirmation, Level: notice.LevelSuccess})
	return nil
}

func contentProblem(err error) string {
	var verr *domain.ValidationError
	if !errors.As(err, &verr) || len(verr.Errors) == 0 {
		return "Message content is invalid"
	}
	msg := verr.Errors[0].Message
	if msg == "required" {
		return "Message content is required"
	}
	return "Message content: " + strings.TrimSpace(msg)
}
