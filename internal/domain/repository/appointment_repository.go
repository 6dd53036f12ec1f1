package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"
)

type AppointmentRepository interface {
	Create(ctx context.Context, appointment *entity.Appointment) error
	FindByPatientID(ctx context.Context, patientID string) ([]entity.Appointment, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]entity.Appointment, error)
}
