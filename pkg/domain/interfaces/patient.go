package interfaces

import (
	"context"

	"github.com/intellimed/scribe/pkg/domain/model"
)

// PatientRepository defines the interface for Patient data access
type PatientRepository interface {
	// Create creates a new patient with auto-generated ID
	Create(ctx context.Context, input *model.PatientInput) (*model.Patient, error)

	// Get retrieves a patient by ID
	Get(ctx context.Context, id int64) (*model.Patient, error)

	// GetByPatientID retrieves a patient by external patient identifier.
	// Returns nil, nil when no patient has the given identifier.
	GetByPatientID(ctx context.Context, patientID string) (*model.Patient, error)

	// List retrieves all patients in creation order
	List(ctx context.Context) ([]*model.Patient, error)
}
