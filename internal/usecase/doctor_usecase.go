package usecase

import (
	"context"

	"go-healthcare-records/internal/converter"
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/internal/service"

	"github.com/sirupsen/logrus"
)

type DoctorUsecase interface {
	GetAllDoctors(ctx context.Context) ([]dto.DoctorResponse, error)
	GetDoctorPatients(ctx context.Context, caller entity.Identity, doctorID string) ([]dto.PatientResponse, error)
}

type doctorUsecase struct {
	log               *logrus.Logger
	doctorRepo        repository.DoctorRepository
	patientRepo       repository.PatientRepository
	medicalRecordRepo repository.MedicalRecordRepository
	auditService      service.AuditService
}

func NewDoctorUsecase(
	log *logrus.Logger,
	doctorRepo repository.DoctorRepository,
	patientRepo repository.PatientRepository,
	medicalRecordRepo repository.MedicalRecordRepository,
	auditService service.AuditService,
) DoctorUsecase {
	return &doctorUsecase{
		log:               log,
		doctorRepo:        doctorRepo,
		patientRepo:       patientRepo,
		medicalRecordRepo: medicalRecordRepo,
		auditService:      auditService,
	}
}

func (u *doctorUsecase) GetAllDoctors(ctx context.Context) ([]dto.DoctorResponse, error) {
	doctors, err := u.doctorRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list doctors: %+v", err)
		return nil, err
	}
	return converter.DoctorsToResponses(doctors), nil
}

// GetDoctorPatients returns the distinct patients appearing in the doctor's medical records.
// Record references to patients that no longer resolve are skipped.
func (u *doctorUsecase) GetDoctorPatients(ctx context.Context, caller entity.Identity, doctorID string) ([]dto.PatientResponse, error) {
	if !CanViewDoctorPatients(caller, doctorID) {
		u.auditService.Record(ctx, &caller, service.AuditActionAccessDenied, "doctor_patients", doctorID)
		return nil, ErrAccessDenied
	}

	records, err := u.medicalRecordRepo.FindByDoctorID(ctx, doctorID)
	if err != nil {
		u.log.Warnf("Failed to find records for doctor %s: %+v", doctorID, err)
		return nil, err
	}

	seen := make(map[string]struct{}, len(records))
	patients := make([]dto.PatientResponse, 0, len(records))
	for _, record := range records {
		if _, dup := seen[record.PatientID]; dup {
			continue
		}
		seen[record.PatientID] = struct{}{}

		patient, err := u.patientRepo.FindByID(ctx, record.PatientID)
		if err != nil {
			u.log.Warnf("Failed to find patient %s: %+v", record.PatientID, err)
			return nil, err
		}
		if patient == nil {
			continue
		}
		patients = append(patients, *converter.PatientToResponse(patient))
	}

	return patients, nil
}
