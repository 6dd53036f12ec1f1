package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"
)

type DoctorRepository interface {
	FindByID(ctx context.Context, id string) (*entity.Doctor, error)
	FindAll(ctx context.Context) ([]entity.Doctor, error)
}
