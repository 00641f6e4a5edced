// Package inbox is the dashboard's view of the signed-in account's messages.
package inbox

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"slices"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/truefeedback-backend/internal/client/api"
	"github.com/heartmarshall/truefeedback-backend/internal/client/notice"
	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

// Client is the server side of the inbox.
type Client interface {
	Messages(ctx context.Context) ([]domain.Message, error)
	DeleteMessage(ctx context.Context, id uuid.UUID) error
}

// View holds the last fetched inbox, newest first.
type View struct {
	client   Client
	notifier notice.Notifier
	log      *slog.Logger

	mu       sync.RWMutex
	messages []domain.Message
}

// NewView creates an empty View.
func NewView(client Client, notifier notice.Notifier, logger *slog.Logger) *View {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &View{
		client:   client,
		notifier: notice.OrDiscard(notifier),
		log:      logger.With("component", "inbox"),
	}
}

// Refresh replaces the view with the server's current inbox. explicit marks a
// user-requested refresh, which is acknowledged with a notice. On failure the
// previous list stays.
func (v *View) Refresh(ctx context.Context, explicit bool) error {
	msgs, err := v.client.Messages(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrUnauthorized) {
			v.log.WarnContext(ctx, "fetch messages failed", slog.String("error", err.Error()))
			v.notifier.Notify(notice.Notice{
				Title:       "Error",
				Description: api.UserMessage(err, "Failed to fetch messages"),
				Level:       notice.LevelError,
			})
		}
		return fmt.Errorf("inbox.Refresh: %w", err)
	}

	sorted := domain.SortByRecency(msgs)

	v.mu.Lock()
	v.messages = sorted
	v.mu.Unlock()

	if explicit {
		v.notifier.Notify(notice.Notice{Title: "Refreshed Messages", Description: "Showing latest messages"})
	}
	return nil
}

// Messages returns the current list, newest first.
func (v *View) Messages() []domain.Message {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return slices.Clone(v.messages)
}

// Remove deletes a message on the server and drops it from the view. A
// message the server no longer has is dropped without error; removing an id
// the view does not hold is a no-op.
func (v *View) Remove(ctx context.Context, id uuid.UUID) error {
	err := v.client.DeleteMessage(ctx, id)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		v.log.WarnContext(ctx, "delete message failed",
			slog.String("message_id", id.String()),
			slog.String("error", err.Error()),
		)
		v.notifier.Notify(notice.Notice{
			Title:       "Error",
			Description: api.UserMessage(err, "Failed to delete message"),
			Level:       notice.LevelError,
		})
		return fmt.Errorf("inbox.Remove: %w", err)
	}

	v.forget(id)
	v.notifier.Notify(notice.Notice{Title: "Message deleted", Level: notice.LevelSuccess})
	return nil
}

func (v *View) forget(id uuid.UUID) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.messages = slices.DeleteFunc(v.messages, func(m domain.Message) bool { return m.ID == id })
}

// ProfileURL is the public link senders use to reach handle.
func ProfileURL(baseURL, handle string) string {
	return strings.TrimRight(baseURL, "/") + "/u/" + url.PathEscape(handle)
}

// DashboardTitle renders the possessive heading for handle.
func DashboardTitle(handle string) string {
	if handle == "" {
		handle = "User"
	}
	if strings.HasSuffix(handle, "s") {
		return handle + "' Dashboard"
	}
	return handle + "'s Dashboard"
}
