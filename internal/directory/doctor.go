// Package directory exposes read-only lookups against data owned by other
// services. Keeping these behind explicit interfaces makes the
// cross-service dependency visible and mockable.
package directory

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"
)

// ErrDoctorNotFound is returned when no doctor exists for the given id.
var ErrDoctorNotFound = errors.New("doctor not found")

// DoctorDirectory resolves a doctor's display name by id. Implementations
// are best-effort: callers degrade to a placeholder on any error instead
// of failing the operation they are part of.
type DoctorDirectory interface {
	GetName(ctx context.Context, doctorID int64) (string, error)
}

// PostgresDirectory reads doctor names from the appointment service's
// database node. Read-only: no writes ever cross the service boundary.
type PostgresDirectory struct {
	db *dbpg.DB
}

// NewPostgresDirectory creates a directory over the appointment DB node.
func NewPostgresDirectory(db *dbpg.DB) *PostgresDirectory {
	return &PostgresDirectory{db: db}
}

// GetName returns the doctor's display name.
func (d *PostgresDirectory) GetName(ctx context.Context, doctorID int64) (string, error) {
	query := `
		SELECT name
		FROM doctors
		WHERE id = $1;
    `

	var name string
	err := d.db.QueryRowContext(ctx, query, doctorID).Scan(&name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "", ErrDoctorNotFound
		}

		return "", fmt.Errorf("failed to get doctor name: %w", err)
	}

	return name, nil
}
