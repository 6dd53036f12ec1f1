package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"
)

type PatientRepository interface {
	// NextID allocates a patient id that is not in use and was never handed out before.
	NextID(ctx context.Context) (string, error)
	Create(ctx context.Context, patient *entity.Patient) error
	FindByID(ctx context.Context, id string) (*entity.Patient, error)
	FindAll(ctx context.Context) ([]entity.Patient, error)
}
