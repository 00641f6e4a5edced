package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/truefeedback-backend/internal/config"
)

// exposedHeaders lets browser senders read the rate-limit backoff and the
// request id they should quote in a report.
var exposedHeaders = strings.Join([]string{"Retry-After", RequestIDHeader}, ", ")

type originPolicy struct {
	any      bool
	explicit map[string]struct{}
}

func newOriginPolicy(list string) originPolicy {
	p := originPolicy{explicit: make(map[string]struct{})}
	for _, o := range strings.Split(list, ",") {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			p.any = true
		default:
			p.explicit[o] = struct{}{}
		}
	}
	return p
}

// allow reports whether origin may call the API and whether it may do so
// with credentials. Wildcard origins never get credentials.
func (p originPolicy) allow(origin string) (allowed, credentials bool) {
	if _, ok := p.explicit[origin]; ok {
		return true, true
	}
	return p.any, false
}

// CORS returns middleware that handles Cross-Origin Resource Sharing.
// Public sender routes are reachable from any configured origin; preflight
// requests are answered here and never reach the mux.
func CORS(cfg config.CORSConfig) Middleware {
	policy := newOriginPolicy(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if origin == "" {
				next.ServeHTTP(w, r)
				return
			}

			allowed, credentials := policy.allow(origin)
			if allowed {
				h := w.Header()
				h.Set("Access-Control-Allow-Origin", origin)
				h.Add("Vary", "Origin")
				h.Set("Access-Control-Expose-Headers", exposedHeaders)
				if credentials && cfg.AllowCredentials {
					h.Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
				if allowed {
					w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
					w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
					w.Header().Set("Access-Control-Max-Age", maxAge)
				}
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
