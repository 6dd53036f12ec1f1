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

type MedicalRecordUsecase interface {
	GetPatientRecords(ctx context.Context, caller entity.Identity, patientID string) ([]dto.MedicalRecordResponse, error)
}

type medicalRecordUsecase struct {
	log               *logrus.Logger
	medicalRecordRepo repository.MedicalRecordRepository
	doctorRepo        repository.DoctorRepository
	auditService      service.AuditService
}

func NewMedicalRecordUsecase(
	log *logrus.Logger,
	medicalRecordRepo repository.MedicalRecordRepository,
	doctorRepo repository.DoctorRepository,
	auditService service.AuditService,
) MedicalRecordUsecase {
	return &medicalRecordUsecase{
		log:               log,
		medicalRecordRepo: medicalRecordRepo,
		doctorRepo:        doctorRepo,
		auditService:      auditService,
	}
}

// GetPatientRecords returns the patient's records, each joined with its doctor.
// A record whose doctor is missing is still returned, with placeholder doctor fields.
func (u *medicalRecordUsecase) GetPatientRecords(ctx context.Context, caller entity.Identity, patientID string) ([]dto.MedicalRecordResponse, error) {
	if !CanViewMedicalRecords(caller, patientID) {
		u.auditService.Record(ctx, &caller, service.AuditActionAccessDenied, "medical_records", patientID)
		return nil, ErrAccessDenied
	}

	records, err := u.medicalRecordRepo.FindByPatientID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find records for patient %s: %+v", patientID, err)
		return nil, err
	}

	doctors := make(map[string]*entity.Doctor)
	responses := make([]dto.MedicalRecordResponse, 0, len(records))
	for _, record := range records {
		doctor, ok := doctors[record.DoctorID]
		if !ok {
			doctor, err = u.doctorRepo.FindByID(ctx, record.DoctorID)
			if err != nil {
				u.log.Warnf("Failed to find doctor %s: %+v", record.DoctorID, err)
				return nil, err
			}
			doctors[record.DoctorID] = doctor
		}
		responses = append(responses, converter.MedicalRecordToResponse(record, doctor))
	}

	return responses, nil
}
