package http

import (
	"log/slog"
	"net/http"

	"loanboard/internal/log"
)

// handleExportCSV serves the loan collection as a CSV attachment in
// repository order, one row per loan plus the header.
func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", "GET")
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	csv, err := s.loans.ExportCSV(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to export loans", log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to export loans")
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="loans_export.csv"`)
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(csv))
}
