package rest

import (
	"net/http"

	"github.com/heartmarshall/truefeedback-backend/internal/transport/middleware"
)

// Handlers groups every REST handler the server mounts.
type Handlers struct {
	Account    *AccountHandler
	Preference *PreferenceHandler
	Inbox      *InboxHandler
	Recipient  *RecipientHandler
	Delivery   *DeliveryHandler
	Health     *HealthHandler
}

// Register mounts all routes on mux. sendLimit wraps only the anonymous
// submission route and may be nil.
func (h Handlers) Register(mux *http.ServeMux, sendLimit middleware.Middleware) {
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)

	mux.HandleFunc("POST /api/sign-up", h.Account.SignUp)
	mux.HandleFunc("POST /api/sign-in", h.Account.SignIn)

	mux.HandleFunc("GET /api/accept-messages", h.Preference.Get)
	mux.HandleFunc("POST /api/accept-messages", h.Preference.Set)

	mux.HandleFunc("GET /api/get-messages", h.Inbox.List)
	mux.HandleFunc("DELETE /api/delete-message/{id}", h.Inbox.Delete)

	mux.HandleFunc("GET /api/search-users", h.Recipient.Search)
	mux.Handle("POST /api/send-message", middleware.Chain(sendLimit)(http.HandlerFunc(h.Delivery.Send)))
}
