package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomgiova97/freelance-dashboard/internal/models"
	"github.com/tomgiova97/freelance-dashboard/internal/timerange"
)

type sqlitePaymentRepo struct {
	db *sql.DB
}

// Record inserts the payment and bumps the project's cumulated compensation
// in one transaction, so the ledger and the running total cannot diverge.
func (r *sqlitePaymentRepo) Record(ctx context.Context, payment *models.Payment) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx,
		"SELECT COUNT(*) FROM projects WHERE id = ?", payment.ProjectID,
	).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check project: %w", err)
	}
	if exists == 0 {
		return ErrProjectNotFound
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO payments (id, project_id, amount, currency, date)
		VALUES (?, ?, ?, ?, ?)
	`, payment.ID, payment.ProjectID, payment.Amount, payment.Currency, encodeTime(payment.Date))
	if err != nil {
		return fmt.Errorf("insert payment: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE projects SET cumulated_compensation = cumulated_compensation + ?
		WHERE id = ?
	`, payment.Amount, payment.ProjectID)
	if err != nil {
		return fmt.Errorf("update cumulated compensation: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit payment: %w", err)
	}
	return nil
}

func (r *sqlitePaymentRepo) List(ctx context.Context, rng *timerange.Range) ([]*models.Payment, error) {
	query := `
		SELECT id, project_id, amount, currency, date
		FROM payments
	`
	var args []any
	if rng != nil {
		// Point filter: the single payment date must lie inside the range.
		query += " WHERE date >= ? AND date <= ?"
		args = append(args, encodeTime(rng.Start), encodeTime(rng.End))
	}
	query += " ORDER BY date DESC, rowid ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list payments: %w", err)
	}
	defer rows.Close()

	var payments []*models.Payment
	for rows.Next() {
		payment := &models.Payment{}
		var date string
		err := rows.Scan(
			&payment.ID, &payment.ProjectID, &payment.Amount,
			&payment.Currency, &date,
		)
		if err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		if payment.Date, err = decodeTime(date); err != nil {
			return nil, fmt.Errorf("scan payment: %w", err)
		}
		payments = append(payments, payment)
	}
	return payments, rows.Err()
}
