package repository

import (
	"context"
	"fmt"

	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/internal/infrastructure/database"
)

const patientIDPrefix = "pat"

type patientRepository struct {
	db *database.Store
}

func NewPatientRepository(db *database.Store) domainRepo.PatientRepository {
	return &patientRepository{db: db}
}

// NextID draws from a strictly increasing counter and skips numbers already taken
// by seeded or imported rows, so concurrent signups never share an id.
func (r *patientRepository) NextID(ctx context.Context) (string, error) {
	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		id := fmt.Sprintf("%s%d", patientIDPrefix, r.db.PatientSeq.Add(1))
		if !r.db.Patients.Has(id) {
			return id, nil
		}
	}
}

func (r *patientRepository) Create(ctx context.Context, patient *entity.Patient) error {
	if !r.db.Patients.Insert(patient.ID, *patient) {
		return domainRepo.ErrDuplicateKey
	}
	return nil
}

func (r *patientRepository) FindByID(ctx context.Context, id string) (*entity.Patient, error) {
	patient, ok := r.db.Patients.Get(id)
	if !ok {
		return nil, nil
	}
	return &patient, nil
}

func (r *patientRepository) FindAll(ctx context.Context) ([]entity.Patient, error) {
	return r.db.Patients.Scan(nil), nil
}
