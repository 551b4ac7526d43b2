package http

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"loanboard/internal/core"
	"loanboard/internal/log"
)

type contextKey string

const requestIDKey contextKey = "request_id"

// parseLoanQuery builds a loan query from URL parameters, applying the
// dashboard's defaults for anything omitted.
func parseLoanQuery(r *http.Request) core.Query {
	params := r.URL.Query()
	q := core.Query{
		Search: strings.TrimSpace(params.Get("search")),
		Bank:   strings.TrimSpace(params.Get("bank")),
		Status: strings.TrimSpace(params.Get("status")),
		Tab:    core.Tab(strings.TrimSpace(params.Get("tab"))),
		SortBy: core.SortKey(strings.TrimSpace(params.Get("sort"))),
	}
	if q.Tab == "" {
		q.Tab = core.TabAll
	}
	if q.SortBy == "" {
		q.SortBy = core.SortByAmount
	}
	return q
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("Failed to encode response", log.FieldError, err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// sanitizeInput removes control characters and trims whitespace.
func sanitizeInput(s string) string {
	s = strings.TrimSpace(s)
	return strings.Map(func(r rune) rune {
		if r < 32 && r != 9 && r != 10 && r != 13 {
			return -1
		}
		return r
	}, s)
}

// extractClientIP extracts the client IP, preferring forwarding headers.
func extractClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		if first := strings.TrimSpace(strings.Split(xff, ",")[0]); first != "" {
			return first
		}
	}
	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// generateRequestID creates a unique request ID for tracing.
func generateRequestID() string {
	bytes := make([]byte, 8)
	if _, err := rand.Read(bytes); err != nil {
		return fmt.Sprintf("req_%d", time.Now().UnixNano())
	}
	return "req_" + hex.EncodeToString(bytes)
}
