package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"loanboard/internal/log"
)

// Aggregate views are cached keyed on the store version, so every
// mutation naturally produces a fresh key and stale entries just age
// out of the LRU.

func (s *Server) handleStatistics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	version, err := s.loans.StoreVersion(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to read store version", log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to compute statistics")
		return
	}

	key := fmt.Sprintf("stats:v%d", version)
	if stats, ok := s.statsCache.Get(key); ok {
		writeJSON(w, http.StatusOK, stats)
		return
	}

	stats, err := s.loans.Statistics(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to compute statistics", log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to compute statistics")
		return
	}

	s.statsCache.Set(key, stats)
	writeJSON(w, http.StatusOK, stats)
}

func (s *Server) handleBanks(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	version, err := s.loans.StoreVersion(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to read store version", log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to compute bank summaries")
		return
	}

	key := fmt.Sprintf("banks:v%d", version)
	if summaries, ok := s.banksCache.Get(key); ok {
		writeJSON(w, http.StatusOK, summaries)
		return
	}

	summaries, err := s.loans.BankSummaries(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to compute bank summaries", log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to compute bank summaries")
		return
	}

	s.banksCache.Set(key, summaries)
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleSettings(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, http.StatusOK, s.loans.Settings())
}
