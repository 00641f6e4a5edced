package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/truefeedback-backend/internal/domain"
)

type statusBody struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type candidateBody struct {
	Username            string `json:"username"`
	IsAcceptingMessages bool   `json:"isAcceptingMessages"`
}

// SearchUsers returns recipients whose handle starts with q, in server order.
func (c *Client) SearchUsers(ctx context.Context, q string) ([]domain.SuggestionCandidate, error) {
	var out struct {
		Users []candidateBody `json:"users"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/search-users", url.Values{"q": {q}}, nil, &out); err != nil {
		return nil, err
	}
	return lo.Map(out.Users, func(u candidateBody, _ int) domain.SuggestionCandidate {
		return domain.SuggestionCandidate{Handle: u.Username, AcceptingMessages: u.IsAcceptingMessages}
	}), nil
}

// SendMessage submits an anonymous note. target is sent as typed; the server
// resolves it again. Returns the server's confirmation text.
func (c *Client) SendMessage(ctx context.Context, target, content string) (string, error) {
	in := struct {
		Username string `json:"username"`
		Content  string `json:"content"`
	}{target, content}

	var out statusBody
	if err := c.do(ctx, http.MethodPost, "/api/send-message", nil, in, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// AcceptMessages reads the signed-in account's preference.
func (c *Client) AcceptMessages(ctx context.Context) (bool, error) {
	var out struct {
		IsAcceptingMessages bool `json:"isAcceptingMessages"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/accept-messages", nil, nil, &out); err != nil {
		return false, err
	}
	return out.IsAcceptingMessages, nil
}

// PreferenceAck is the server's confirmation of a preference update.
type PreferenceAck struct {
	Accepting bool
	Message   string
}

// SetAcceptMessages updates the signed-in account's preference. The returned
// value is what the server stored.
func (c *Client) SetAcceptMessages(ctx context.Context, accept bool) (PreferenceAck, error) {
	in := struct {
		AcceptMessages bool `json:"acceptMessages"`
	}{accept}

	var out struct {
		IsAcceptingMessages *bool  `json:"isAcceptingMessages"`
		Message             string `json:"message"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/accept-messages", nil, in, &out); err != nil {
		return PreferenceAck{}, err
	}

	ack := PreferenceAck{Accepting: accept, Message: out.Message}
	if out.IsAcceptingMessages != nil {
		ack.Accepting = *out.IsAcceptingMessages
	}
	return ack, nil
}

type messageBody struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// Messages fetches the signed-in account's inbox in server order.
func (c *Client) Messages(ctx context.Context) ([]domain.Message, error) {
	var out struct {
		Messages []messageBody `json:"messages"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/get-messages", nil, nil, &out); err != nil {
		return nil, err
	}

	msgs := make([]domain.Message, 0, len(out.Messages))
	for _, m := range out.Messages {
		id, err := uuid.Parse(m.ID)
		if err != nil {
			return nil, fmt.Errorf("api: message id %q: %w", m.ID, err)
		}
		msgs = append(msgs, domain.Message{ID: id, Content: m.Content, CreatedAt: m.CreatedAt})
	}
	return msgs, nil
}

// DeleteMessage removes a message from the signed-in account's inbox.
func (c *Client) DeleteMessage(ctx context.Context, id uuid.UUID) error {
	return c.do(ctx, http.MethodDelete, "/api/delete-message/"+url.PathEscape(id.String()), nil, nil, nil)
}

// SignUp registers an account and returns the server's confirmation text.
func (c *Client) SignUp(ctx context.Context, username, email, password string) (string, error) {
	in := struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}{username, email, password}

	var out statusBody
	if err := c.do(ctx, http.MethodPost, "/api/sign-up", nil, in, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// SignIn authenticates and stores the returned session token on the client.
// It returns the account's handle.
func (c *Client) SignIn(ctx context.Context, email, password string) (string, error) {
	in := struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}{email, password}

	var out struct {
		AccessToken string `json:"accessToken"`
		Username    string `json:"username"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/sign-in", nil, in, &out); err != nil {
		return "", err
	}
	c.SetToken(out.AccessToken)
	return out.Username, nil
}
