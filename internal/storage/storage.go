// Package storage provides database storage interfaces and implementations.
package storage

import (
	"context"
	"errors"

	"github.com/tomgiova97/freelance-dashboard/internal/models"
	"github.com/tomgiova97/freelance-dashboard/internal/timerange"
)

// ErrProjectNotFound is returned when an operation references a project
// identifier that does not exist.
var ErrProjectNotFound = errors.New("project not found")

// Storage is the main interface for database operations.
type Storage interface {
	// Open initializes the database connection.
	Open() error
	// Close closes the database connection.
	Close() error
	// Migrate runs database migrations.
	Migrate() error

	// Repository accessors
	Projects() ProjectRepository
	Tasks() TaskRepository
	Payments() PaymentRepository
}

// ProjectRepository defines operations for project management.
//
// List applies the inclusive overlap filter when rng is non-nil and returns
// projects sorted by start date descending, ties in insertion order.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id string) (*models.Project, error)
	List(ctx context.Context, rng *timerange.Range) ([]*models.Project, error)
}

// TaskRepository defines operations for task management. Tasks have no update
// or delete path.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	List(ctx context.Context, rng *timerange.Range) ([]*models.Task, error)
	ListByProject(ctx context.Context, projectID string) ([]*models.Task, error)
}

// PaymentRepository defines operations for the payments ledger.
//
// Record persists the payment and increments the referenced project's
// cumulated compensation in a single transaction. It returns
// ErrProjectNotFound, persisting nothing, when the project does not exist.
type PaymentRepository interface {
	Record(ctx context.Context, payment *models.Payment) error
	List(ctx context.Context, rng *timerange.Range) ([]*models.Payment, error)
}
