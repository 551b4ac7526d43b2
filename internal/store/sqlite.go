package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"loanboard/internal/core"

	_ "modernc.org/sqlite"
)

// SQLiteStore is the optional persistent backend. Insertion order is
// preserved through the autoincrement position column, and the store
// version lives in a meta row bumped inside every mutation's
// transaction.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// SeedIfEmpty loads the reference portfolio when the table holds no
// rows, mirroring the memory backend's seeding.
func (s *SQLiteStore) SeedIfEmpty(ctx context.Context) error {
	var count int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM loans`).Scan(&count); err != nil {
		return fmt.Errorf("count loans: %w", err)
	}
	if count > 0 {
		return nil
	}
	for _, l := range SeedLoans() {
		if err := s.Add(ctx, l); err != nil {
			return fmt.Errorf("seed loan %s: %w", l.ID, err)
		}
	}
	slog.InfoContext(ctx, "Seeded reference portfolio", "loans", len(SeedLoans()))
	return nil
}

func (s *SQLiteStore) Add(ctx context.Context, loan core.Loan) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var exists int
	if err := tx.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM loans WHERE id = ?`, loan.ID).Scan(&exists); err != nil {
		return fmt.Errorf("check id: %w", err)
	}
	if exists > 0 {
		return ErrDuplicateID
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO loans (id, bank, amount, rate, disbursement_date, maturity_date, term, status, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		loan.ID, loan.Bank, loan.Amount, loan.Rate,
		loan.DisbursementDate.String(), loan.MaturityDate.String(),
		loan.Term, string(loan.Status), loan.Notes)
	if err != nil {
		return fmt.Errorf("insert loan: %w", err)
	}

	if err := bumpVersion(ctx, tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Update(ctx context.Context, loan core.Loan) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `
		UPDATE loans
		SET bank = ?, amount = ?, rate = ?, disbursement_date = ?, maturity_date = ?, term = ?, status = ?, notes = ?
		WHERE id = ?`,
		loan.Bank, loan.Amount, loan.Rate,
		loan.DisbursementDate.String(), loan.MaturityDate.String(),
		loan.Term, string(loan.Status), loan.Notes, loan.ID)
	if err != nil {
		return fmt.Errorf("update loan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if err := bumpVersion(ctx, tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) Remove(ctx context.Context, id string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `DELETE FROM loans WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("delete loan: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}

	if err := bumpVersion(ctx, tx); err != nil {
		return err
	}
	return tx.Commit()
}

func (s *SQLiteStore) List(ctx context.Context) ([]core.Loan, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, bank, amount, rate, disbursement_date, maturity_date, term, status, notes
		FROM loans ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("query loans: %w", err)
	}
	defer rows.Close()

	var loans []core.Loan
	for rows.Next() {
		var (
			l              core.Loan
			disb, mat, sts string
		)
		if err := rows.Scan(&l.ID, &l.Bank, &l.Amount, &l.Rate, &disb, &mat, &l.Term, &sts, &l.Notes); err != nil {
			return nil, fmt.Errorf("scan loan: %w", err)
		}
		if l.DisbursementDate, err = core.ParseDate(disb); err != nil {
			return nil, fmt.Errorf("parse disbursement date %q: %w", disb, err)
		}
		if l.MaturityDate, err = core.ParseDate(mat); err != nil {
			return nil, fmt.Errorf("parse maturity date %q: %w", mat, err)
		}
		l.Status = core.Status(sts)
		loans = append(loans, l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate loans: %w", err)
	}
	return loans, nil
}

func (s *SQLiteStore) Version(ctx context.Context) (int64, error) {
	var v int64
	err := s.db.QueryRowContext(ctx, `SELECT value FROM store_meta WHERE key = 'version'`).Scan(&v)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("read version: %w", err)
	}
	return v, nil
}

func (s *SQLiteStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func bumpVersion(ctx context.Context, tx *sql.Tx) error {
	if _, err := tx.ExecContext(ctx,
		`UPDATE store_meta SET value = value + 1 WHERE key = 'version'`); err != nil {
		return fmt.Errorf("bump version: %w", err)
	}
	return nil
}
