package repository

import (
	"context"

	"go-healthcare-records/internal/domain/entity"
	domainRepo "go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/internal/infrastructure/database"
)

type appointmentRepository struct {
	db *database.Store
}

func NewAppointmentRepository(db *database.Store) domainRepo.AppointmentRepository {
	return &appointmentRepository{db: db}
}

func (r *appointmentRepository) Create(ctx context.Context, appointment *entity.Appointment) error {
	if !r.db.Appointments.Insert(appointment.ID, *appointment) {
		return domainRepo.ErrDuplicateKey
	}
	return nil
}

func (r *appointmentRepository) FindByPatientID(ctx context.Context, patientID string) ([]entity.Appointment, error) {
	return r.db.Appointments.Scan(func(a entity.Appointment) bool {
		return a.PatientID == patientID
	}), nil
}

func (r *appointmentRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]entity.Appointment, error) {
	return r.db.Appointments.Scan(func(a entity.Appointment) bool {
		return a.DoctorID == doctorID
	}), nil
}
