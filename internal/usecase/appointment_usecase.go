package usecase

import (
	"context"

	"go-healthcare-records/internal/converter"
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/internal/service"
	"go-healthcare-records/pkg/apperror"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var ErrOnlyPatientsCanBook = apperror.Forbidden("Only patients can book appointments")

type AppointmentUsecase interface {
	GetAppointments(ctx context.Context, caller entity.Identity) ([]dto.AppointmentResponse, error)
	CreateAppointment(ctx context.Context, caller entity.Identity, req *dto.CreateAppointmentRequest) (*dto.CreateAppointmentResponse, error)
}

type appointmentUsecase struct {
	log             *logrus.Logger
	appointmentRepo repository.AppointmentRepository
	patientRepo     repository.PatientRepository
	doctorRepo      repository.DoctorRepository
	auditService    service.AuditService
	newID           func() string
}

func NewAppointmentUsecase(
	log *logrus.Logger,
	appointmentRepo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) AppointmentUsecase {
	return &appointmentUsecase{
		log:             log,
		appointmentRepo: appointmentRepo,
		patientRepo:     patientRepo,
		doctorRepo:      doctorRepo,
		auditService:    auditService,
		newID:           uuid.NewString,
	}
}

// GetAppointments never fails on access: patients get their own bookings, doctors the
// bookings made with them, any other role an empty list.
func (u *appointmentUsecase) GetAppointments(ctx context.Context, caller entity.Identity) ([]dto.AppointmentResponse, error) {
	var (
		appointments []entity.Appointment
		err          error
	)
	switch caller.Role {
	case entity.RolePatient:
		appointments, err = u.appointmentRepo.FindByPatientID(ctx, caller.ID)
	case entity.RoleDoctor:
		appointments, err = u.appointmentRepo.FindByDoctorID(ctx, caller.ID)
	}
	if err != nil {
		u.log.Warnf("Failed to find appointments for %s: %+v", caller.ID, err)
		return nil, err
	}

	responses := make([]dto.AppointmentResponse, 0, len(appointments))
	for _, appointment := range appointments {
		if !IsAppointmentParty(caller, appointment) {
			continue
		}

		patient, err := u.patientRepo.FindByID(ctx, appointment.PatientID)
		if err != nil {
			u.log.Warnf("Failed to find patient %s: %+v", appointment.PatientID, err)
			return nil, err
		}
		doctor, err := u.doctorRepo.FindByID(ctx, appointment.DoctorID)
		if err != nil {
			u.log.Warnf("Failed to find doctor %s: %+v", appointment.DoctorID, err)
			return nil, err
		}
		responses = append(responses, converter.AppointmentToResponse(appointment, patient, doctor))
	}

	return responses, nil
}

// CreateAppointment books as given. The body's patient_id is not required to match the
// caller (a guardian may book for a dependent); mismatches are logged.
func (u *appointmentUsecase) CreateAppointment(ctx context.Context, caller entity.Identity, req *dto.CreateAppointmentRequest) (*dto.CreateAppointmentResponse, error) {
	if !CanCreateAppointment(caller) {
		u.auditService.Record(ctx, &caller, service.AuditActionAccessDenied, "appointment", "")
		return nil, ErrOnlyPatientsCanBook
	}

	if req.PatientID != caller.ID {
		u.log.WithFields(logrus.Fields{
			"caller_id":  caller.ID,
			"patient_id": req.PatientID,
		}).Warn("Appointment booked for a different patient id")
	}

	appointment := &entity.Appointment{
		ID:              u.newID(),
		PatientID:       req.PatientID,
		DoctorID:        req.DoctorID,
		AppointmentDate: req.AppointmentDate,
		AppointmentTime: req.AppointmentTime,
		Status:          entity.AppointmentStatusScheduled,
		Reason:          req.Reason,
	}

	if err := u.appointmentRepo.Create(ctx, appointment); err != nil {
		u.log.Warnf("Failed to create appointment: %+v", err)
		return nil, err
	}

	u.auditService.Record(ctx, &caller, service.AuditActionAppointmentCreate, "appointment", appointment.ID)
	u.log.Infof("Appointment created: id=%s, patient=%s, doctor=%s", appointment.ID, appointment.PatientID, appointment.DoctorID)
	return &dto.CreateAppointmentResponse{Message: "Appointment created successfully", AppointmentID: appointment.ID}, nil
}
