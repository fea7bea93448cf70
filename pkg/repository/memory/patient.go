package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"

	"github.com/intellimed/scribe/pkg/domain/model"
)

type patientRepository struct {
	mu       sync.RWMutex
	patients map[int64]*model.Patient
	nextID   int64
}

func newPatientRepository() *patientRepository {
	return &patientRepository{
		patients: make(map[int64]*model.Patient),
		nextID:   1,
	}
}

func copyPatient(p *model.Patient) *model.Patient {
	copied := *p
	return &copied
}

func (r *patientRepository) Create(ctx context.Context, input *model.PatientInput) (*model.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := &model.Patient{
		PatientID:       input.PatientID,
		Name:            input.Name,
		DateOfBirth:     input.DateOfBirth,
		VisitType:       input.VisitType,
		AppointmentTime: input.AppointmentTime,
	}
	created.ID = r.nextID
	r.nextID++

	r.patients[created.ID] = created
	return copyPatient(created), nil
}

func (r *patientRepository) Get(ctx context.Context, id int64) (*model.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, exists := r.patients[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrNotFound, "patient not found", goerr.V("id", id))
	}

	return copyPatient(p), nil
}

func (r *patientRepository) GetByPatientID(ctx context.Context, patientID string) (*model.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, p := range r.patients {
		if p.PatientID == patientID {
			return copyPatient(p), nil
		}
	}

	return nil, nil
}

func (r *patientRepository) List(ctx context.Context) ([]*model.Patient, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*model.Patient, 0, len(r.patients))
	for _, p := range r.patients {
		result = append(result, copyPatient(p))
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})

	return result, nil
}
