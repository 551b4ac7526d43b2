package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"loanboard/internal/core"
	"loanboard/internal/log"
	"loanboard/internal/store"
)

func (s *Server) handleLoans(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		s.listLoans(w, r)
	case http.MethodPost:
		s.saveLoan(w, r, false)
	case http.MethodPut:
		s.saveLoan(w, r, true)
	case http.MethodDelete:
		s.deleteLoan(w, r)
	default:
		w.Header().Set("Allow", "GET, POST, PUT, DELETE")
		w.WriteHeader(http.StatusMethodNotAllowed)
	}
}

// listLoans returns the filtered/sorted view described by the query
// parameters. With no parameters it is the full collection sorted by
// amount, the dashboard's default view.
func (s *Server) listLoans(w http.ResponseWriter, r *http.Request) {
	q := parseLoanQuery(r)
	loans, err := s.loans.FilteredLoans(r.Context(), q)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list loans", log.FieldError, err)
		writeError(w, http.StatusInternalServerError, "failed to list loans")
		return
	}
	if loans == nil {
		loans = []core.Loan{}
	}
	writeJSON(w, http.StatusOK, loans)
}

func (s *Server) saveLoan(w http.ResponseWriter, r *http.Request, isUpdate bool) {
	var loan core.Loan
	if err := json.NewDecoder(r.Body).Decode(&loan); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	loan.ID = sanitizeInput(loan.ID)
	loan.Bank = sanitizeInput(loan.Bank)
	loan.Notes = sanitizeInput(loan.Notes)

	saved, err := s.loans.SaveLoan(r.Context(), loan, isUpdate)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrDuplicateID):
		writeError(w, http.StatusConflict, "loan id already exists")
		return
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "loan not found")
		return
	case isValidationError(err):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	default:
		slog.ErrorContext(r.Context(), "Failed to save loan",
			log.FieldError, err, log.FieldLoanID, loan.ID)
		writeError(w, http.StatusInternalServerError, "failed to save loan")
		return
	}

	status := http.StatusCreated
	if isUpdate {
		status = http.StatusOK
	}
	writeJSON(w, status, saved)
}

// deleteLoan requires an explicit confirm=true parameter; without it
// the request is rejected and the collection stays unchanged.
func (s *Server) deleteLoan(w http.ResponseWriter, r *http.Request) {
	id := sanitizeInput(r.URL.Query().Get("id"))
	if id == "" {
		writeError(w, http.StatusBadRequest, "missing loan id")
		return
	}

	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))
	if !confirmed {
		writeError(w, http.StatusConflict, "deletion requires confirm=true")
		return
	}

	err := s.loans.DeleteLoan(r.Context(), id)
	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "loan not found")
		return
	default:
		slog.ErrorContext(r.Context(), "Failed to delete loan",
			log.FieldError, err, log.FieldLoanID, id)
		writeError(w, http.StatusInternalServerError, "failed to delete loan")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func isValidationError(err error) bool {
	for _, sentinel := range []error{
		core.ErrEmptyID,
		core.ErrEmptyBank,
		core.ErrNegativeAmount,
		core.ErrEmptyDisbursement,
		core.ErrEmptyMaturity,
		core.ErrInvalidStatus,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
