package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomgiova97/freelance-dashboard/internal/models"
	"github.com/tomgiova97/freelance-dashboard/internal/timerange"
)

type sqliteTaskRepo struct {
	db *sql.DB
}

func (r *sqliteTaskRepo) Create(ctx context.Context, task *models.Task) error {
	query := `
		INSERT INTO tasks (id, project_id, description, start_date, end_date, due_date)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	var endDate any
	if task.EndDate != nil {
		endDate = encodeTime(*task.EndDate)
	}
	_, err := r.db.ExecContext(ctx, query,
		task.ID, task.ProjectID, task.Description,
		encodeTime(task.StartDate), endDate, encodeTime(task.DueDate),
	)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

func (r *sqliteTaskRepo) List(ctx context.Context, rng *timerange.Range) ([]*models.Task, error) {
	query := `
		SELECT id, project_id, description, start_date, end_date, due_date
		FROM tasks
	`
	var args []any
	if rng != nil {
		// Tasks without an end date carry no interval and never match a
		// date filter; the NULL end_date fails the comparison.
		query += " WHERE start_date <= ? AND end_date >= ?"
		args = append(args, encodeTime(rng.End), encodeTime(rng.Start))
	}
	query += " ORDER BY start_date DESC, rowid ASC"

	return r.queryTasks(ctx, query, args...)
}

func (r *sqliteTaskRepo) ListByProject(ctx context.Context, projectID string) ([]*models.Task, error) {
	query := `
		SELECT id, project_id, description, start_date, end_date, due_date
		FROM tasks WHERE project_id = ?
		ORDER BY start_date DESC, rowid ASC
	`
	return r.queryTasks(ctx, query, projectID)
}

func (r *sqliteTaskRepo) queryTasks(ctx context.Context, query string, args ...any) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []*models.Task
	for rows.Next() {
		task := &models.Task{}
		var startDate, dueDate string
		var endDate sql.NullString
		err := rows.Scan(
			&task.ID, &task.ProjectID, &task.Description,
			&startDate, &endDate, &dueDate,
		)
		if err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if task.StartDate, err = decodeTime(startDate); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if task.DueDate, err = decodeTime(dueDate); err != nil {
			return nil, fmt.Errorf("scan task: %w", err)
		}
		if endDate.Valid {
			t, err := decodeTime(endDate.String)
			if err != nil {
				return nil, fmt.Errorf("scan task: %w", err)
			}
			task.EndDate = &t
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}
