// Package worker maintains the on-disk CSV snapshot of the portfolio,
// driven by loan change events and a periodic safety-net rewrite.
package worker

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"loanboard/internal/amqp"
	"loanboard/internal/core"
	"loanboard/internal/log"
	"loanboard/internal/store"
)

// ExportWorker rewrites the full CSV snapshot on every change event.
// The snapshot always reflects the whole collection in repository
// order, so individual events only act as triggers and their payload
// beyond the loan id is informational.
type ExportWorker struct {
	store      store.LoanStore
	exportPath string
	logger     *log.Logger
}

func NewExportWorker(st store.LoanStore, exportPath string, logger *log.Logger) *ExportWorker {
	if logger == nil {
		logger = log.New(log.DefaultConfig())
	}
	return &ExportWorker{
		store:      st,
		exportPath: exportPath,
		logger:     logger.WithComponent(log.ComponentExport),
	}
}

// HandleChangeMessage processes a single loan change event by
// rewriting the snapshot.
func (w *ExportWorker) HandleChangeMessage(msg *amqp.LoanChangedMessage) error {
	w.logger.Info("Processing loan change",
		log.FieldLoanID, msg.ID,
		log.FieldOperation, msg.Op)
	return w.WriteSnapshot(context.Background())
}

// WriteSnapshot renders the current collection and atomically replaces
// the snapshot file. The write goes through a temp file in the same
// directory so readers never observe a partial snapshot.
func (w *ExportWorker) WriteSnapshot(ctx context.Context) error {
	loans, err := w.store.List(ctx)
	if err != nil {
		return fmt.Errorf("list loans: %w", err)
	}

	csv := core.ExportCSV(loans)

	dir := filepath.Dir(w.exportPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create export directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "loans_export_*.csv")
	if err != nil {
		return fmt.Errorf("create temp snapshot: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(csv); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, w.exportPath); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace snapshot: %w", err)
	}

	w.logger.Info("Snapshot written",
		log.FieldExportPath, w.exportPath,
		"loans", len(loans))
	return nil
}
