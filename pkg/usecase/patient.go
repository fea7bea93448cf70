package usecase

import (
	"context"

	"github.com/m-mizutani/goerr/v2"

	"github.com/intellimed/scribe/pkg/domain/interfaces"
	"github.com/intellimed/scribe/pkg/domain/model"
)

// PatientUseCase handles patient registration and lookup
type PatientUseCase struct {
	repo interfaces.Repository
}

func NewPatientUseCase(repo interfaces.Repository) *PatientUseCase {
	return &PatientUseCase{repo: repo}
}

// CreatePatient validates and registers a new patient. The external patient
// identifier must be unique.
func (uc *PatientUseCase) CreatePatient(ctx context.Context, input *model.PatientInput) (*model.Patient, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	existing, err := uc.repo.Patient().GetByPatientID(ctx, input.PatientID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to check patient identifier")
	}
	if existing != nil {
		return nil, goerr.Wrap(model.ErrInvalidInput, "patient identifier already registered",
			goerr.V(model.FieldsKey, []string{"patientId"}),
			goerr.V(PatientIDKey, input.PatientID),
		)
	}

	created, err := uc.repo.Patient().Create(ctx, input)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create patient")
	}

	return created, nil
}

// GetPatient retrieves a patient by ID
func (uc *PatientUseCase) GetPatient(ctx context.Context, id int64) (*model.Patient, error) {
	return uc.repo.Patient().Get(ctx, id)
}

// ListPatients retrieves all patients
func (uc *PatientUseCase) ListPatients(ctx context.Context) ([]*model.Patient, error) {
	return uc.repo.Patient().List(ctx)
}
