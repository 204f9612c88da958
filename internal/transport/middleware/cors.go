package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/heartmarshall/revisaquest-backend/internal/config"
)

// CORS answers preflight requests and stamps allow headers on responses
// for origins the config permits.
func CORS(cfg config.CORSConfig) Middleware {
	allowed := splitOrigins(cfg.AllowedOrigins)
	maxAge := strconv.Itoa(cfg.MaxAge)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if origin := r.Header.Get("Origin"); origin != "" && allowed.match(origin) {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				if cfg.AllowCredentials {
					w.Header().Set("Access-Control-Allow-Credentials", "true")
				}
			}

			if r.Method == http.MethodOptions {
				w.Header().Set("Access-Control-Allow-Methods", cfg.AllowedMethods)
				w.Header().Set("Access-Control-Allow-Headers", cfg.AllowedHeaders)
				w.Header().Set("Access-Control-Max-Age", maxAge)
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

type originSet []string

func splitOrigins(raw string) originSet {
	parts := strings.Split(raw, ",")
	set := make(originSet, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			set = append(set, p)
		}
	}
	return set
}

func (s originSet) match(origin string) bool {
	for _, a := range s {
		if a == "*" || a == origin {
			return true
		}
	}
	return false
}
