package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/internal/infrastructure/database"
)

type medicalRecordRepository struct {
	db *database.Store
}

func NewMedicalRecordRepository(db *database.Store) domainRepo.MedicalRecordRepository {
	return &medicalRecordRepository{db: db}
}

func (r *medicalRecordRepository) FindByPatientID(ctx context.Context, patientID string) ([]entity.MedicalRecord, error) {
	return r.db.MedicalRecords.Scan(func(rec entity.MedicalRecord) bool {
		return rec.PatientID == patientID
	}), nil
}

func (r *medicalRecordRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]entity.MedicalRecord, error) {
	return r.db.MedicalRecords.Scan(func(rec entity.MedicalRecord) bool {
		return rec.DoctorID == doctorID
	}), nil
}
