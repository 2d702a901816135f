package storage

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tomgiova97/freelance-dashboard/internal/models"
	"github.com/tomgiova97/freelance-dashboard/internal/timerange"
)

type sqliteProjectRepo struct {
	db *sql.DB
}

func (r *sqliteProjectRepo) Create(ctx context.Context, project *models.Project) error {
	query := `
		INSERT INTO projects (id, title, company_name, description, compensation,
			currency, compensation_rate, start_date, end_date, cumulated_compensation)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`
	_, err := r.db.ExecContext(ctx, query,
		project.ID, project.Title, project.CompanyName, project.Description,
		project.Compensation, project.Currency, string(project.CompensationRate),
		encodeTime(project.StartDate), encodeTime(project.EndDate),
		project.CumulatedCompensation,
	)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

func (r *sqliteProjectRepo) GetByID(ctx context.Context, id string) (*models.Project, error) {
	query := `
		SELECT id, title, company_name, description, compensation,
			currency, compensation_rate, start_date, end_date, cumulated_compensation
		FROM projects WHERE id = ?
	`
	row := r.db.QueryRowContext(ctx, query, id)
	project, err := scanProject(row.Scan)
	if err == sql.ErrNoRows {
		//nolint:nilnil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get project by id: %w", err)
	}
	return project, nil
}

func (r *sqliteProjectRepo) List(ctx context.Context, rng *timerange.Range) ([]*models.Project, error) {
	query := `
		SELECT id, title, company_name, description, compensation,
			currency, compensation_rate, start_date, end_date, cumulated_compensation
		FROM projects
	`
	var args []any
	if rng != nil {
		// Inclusive interval overlap against the query range.
		query += " WHERE start_date <= ? AND end_date >= ?"
		args = append(args, encodeTime(rng.End), encodeTime(rng.Start))
	}
	// rowid preserves insertion order for equal start dates.
	query += " ORDER BY start_date DESC, rowid ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var projects []*models.Project
	for rows.Next() {
		project, err := scanProject(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		projects = append(projects, project)
	}
	return projects, rows.Err()
}

func scanProject(scan func(...any) error) (*models.Project, error) {
	project := &models.Project{}
	var description sql.NullString
	var rate, startDate, endDate string
	err := scan(
		&project.ID, &project.Title, &project.CompanyName, &description,
		&project.Compensation, &project.Currency, &rate,
		&startDate, &endDate, &project.CumulatedCompensation,
	)
	if err != nil {
		return nil, err
	}
	project.Description = description.String
	project.CompensationRate = models.CompensationRate(rate)
	if project.StartDate, err = decodeTime(startDate); err != nil {
		return nil, err
	}
	if project.EndDate, err = decodeTime(endDate); err != nil {
		return nil, err
	}
	return project, nil
}
