package server

import "net/http"

// SecurityConfig controls the security headers and CORS behavior of the
// evaluation service.
type SecurityConfig struct {
	// EnableCORS turns on CORS header handling.
	EnableCORS bool
	// AllowedOrigins lists origins allowed to call the API; "*" allows all.
	AllowedOrigins []string
	// AllowedMethods lists the HTTP methods advertised in CORS responses.
	AllowedMethods []string
}

// DefaultSecurityConfig returns the default security configuration: open
// CORS for the read-only GET API.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
	}
}

// SecurityMiddleware wraps a handler with security headers, CORS
// handling, and OPTIONS preflight termination.
//
// Parameters:
//   - config: The security configuration.
//   - next: The wrapped handler.
//
// Returns:
//   - http.HandlerFunc: The wrapping handler.
func SecurityMiddleware(config SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if config.EnableCORS {
			applyCORS(config, w, r)
		}

		// Terminate preflight requests here.
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next(w, r)
	}
}

// applyCORS sets the CORS response headers when the request origin is
// allowed. A wildcard entry matches any (or no) origin.
func applyCORS(config SecurityConfig, w http.ResponseWriter, r *http.Request) {
	origin := r.Header.Get("Origin")

	allowed := ""
	for _, o := range config.AllowedOrigins {
		if o == "*" {
			allowed = "*"
			break
		}
		if o == origin && origin != "" {
			allowed = origin
			break
		}
	}
	if allowed == "" {
		return
	}

	h := w.Header()
	h.Set("Access-Control-Allow-Origin", allowed)
	h.Set("Access-Control-Allow-Methods", joinMethods(config.AllowedMethods))
	h.Set("Access-Control-Allow-Headers", "Content-Type")
	h.Set("Access-Control-Max-Age", "86400")
}

// joinMethods renders the allowed method list for the CORS header.
func joinMethods(methods []string) string {
	out := ""
	for i, m := range methods {
		if i > 0 {
			out += ", "
		}
		out += m
	}
	return out
}
