package usecase

import (
	"context"

	"go-healthcare-records/internal/converter"
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/internal/service"
	"go-healthcare-records/pkg/apperror"

	"github.com/sirupsen/logrus"
)

var ErrPatientNotFound = apperror.NotFound("Patient not found")

type PatientUsecase interface {
	GetAllPatients(ctx context.Context, caller entity.Identity) ([]dto.PatientResponse, error)
	GetPatient(ctx context.Context, caller entity.Identity, patientID string) (*dto.PatientResponse, error)
}

type patientUsecase struct {
	log          *logrus.Logger
	patientRepo  repository.PatientRepository
	auditService service.AuditService
}

func NewPatientUsecase(log *logrus.Logger, patientRepo repository.PatientRepository, auditService service.AuditService) PatientUsecase {
	return &patientUsecase{
		log:          log,
		patientRepo:  patientRepo,
		auditService: auditService,
	}
}

func (u *patientUsecase) GetAllPatients(ctx context.Context, caller entity.Identity) ([]dto.PatientResponse, error) {
	if !CanListPatients(caller) {
		u.auditService.Record(ctx, &caller, service.AuditActionAccessDenied, "patients", "")
		return nil, ErrAccessDenied
	}

	patients, err := u.patientRepo.FindAll(ctx)
	if err != nil {
		u.log.Warnf("Failed to list patients: %+v", err)
		return nil, err
	}
	return converter.PatientsToResponses(patients), nil
}

// GetPatient checks access before existence, so a patient probing other ids always sees Forbidden.
func (u *patientUsecase) GetPatient(ctx context.Context, caller entity.Identity, patientID string) (*dto.PatientResponse, error) {
	if !CanViewPatient(caller, patientID) {
		u.auditService.Record(ctx, &caller, service.AuditActionAccessDenied, "patient", patientID)
		return nil, ErrAccessDenied
	}

	patient, err := u.patientRepo.FindByID(ctx, patientID)
	if err != nil {
		u.log.Warnf("Failed to find patient %s: %+v", patientID, err)
		return nil, err
	}
	if patient == nil {
		return nil, ErrPatientNotFound
	}
	return converter.PatientToResponse(patient), nil
}
