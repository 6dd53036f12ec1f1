package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"
)

type MedicalRecordRepository interface {
	FindByPatientID(ctx context.Context, patientID string) ([]entity.MedicalRecord, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]entity.MedicalRecord, error)
}
