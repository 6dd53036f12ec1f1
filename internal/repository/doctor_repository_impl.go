package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/internal/infrastructure/database"
)

type doctorRepository struct {
	db *database.Store
}

func NewDoctorRepository(db *database.Store) domainRepo.DoctorRepository {
	return &doctorRepository{db: db}
}

func (r *doctorRepository) FindByID(ctx context.Context, id string) (*entity.Doctor, error) {
	doctor, ok := r.db.Doctors.Get(id)
	if !ok {
		return nil, nil
	}
	return &doctor, nil
}

func (r *doctorRepository) FindAll(ctx context.Context) ([]entity.Doctor, error) {
	return r.db.Doctors.Scan(nil), nil
}
