package usecase

import (
	"testing"

	"go-healthcare-records/config"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/infrastructure/database"
	"go-healthcare-records/internal/repository"
	"go-healthcare-records/internal/service"
	"go-healthcare-records/pkg/jwt"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
)

var (
	drSharma = entity.Identity{ID: "doc1", Name: "Dr. Rajesh Sharma", Email: "rajesh.sharma@hospital.com", Role: entity.RoleDoctor}
	drPatel  = entity.Identity{ID: "doc2", Name: "Dr. Priya Patel", Email: "priya.patel@hospital.com", Role: entity.RoleDoctor}
	arjun    = entity.Identity{ID: "pat1", Name: "Arjun Mehta", Email: "arjun.mehta@email.com", Role: entity.RolePatient}
	kavya    = entity.Identity{ID: "pat2", Name: "Kavya Singh", Email: "kavya.singh@email.com", Role: entity.RolePatient}
)

type testEnv struct {
	db           *database.Store
	log          *logrus.Logger
	hook         *test.Hook
	sessions     service.SessionAuthority
	auth         AuthUsecase
	patients     PatientUsecase
	doctors      DoctorUsecase
	records      MedicalRecordUsecase
	appointments AppointmentUsecase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	seedLog, _ := test.NewNullLogger()
	db := database.NewStore()
	database.Seed(db, seedLog)
	return newTestEnvWithStore(t, db)
}

func newTestEnvWithStore(t *testing.T, db *database.Store) *testEnv {
	t.Helper()

	log, hook := test.NewNullLogger()

	userRepo := repository.NewUserRepository(db)
	patientRepo := repository.NewPatientRepository(db)
	doctorRepo := repository.NewDoctorRepository(db)
	medicalRecordRepo := repository.NewMedicalRecordRepository(db)
	appointmentRepo := repository.NewAppointmentRepository(db)

	jwtService := jwt.NewJWTService(config.SessionConfig{Secret: "test-secret"})
	sessions := service.NewSessionAuthority(log, repository.NewMemorySessionRepository(), jwtService)
	auditService := service.NewAuditService(log)

	return &testEnv{
		db:           db,
		log:          log,
		hook:         hook,
		sessions:     sessions,
		auth:         NewAuthUsecase(db, log, userRepo, patientRepo, sessions, auditService),
		patients:     NewPatientUsecase(log, patientRepo, auditService),
		doctors:      NewDoctorUsecase(log, doctorRepo, patientRepo, medicalRecordRepo, auditService),
		records:      NewMedicalRecordUsecase(log, medicalRecordRepo, doctorRepo, auditService),
		appointments: NewAppointmentUsecase(log, appointmentRepo, patientRepo, doctorRepo, auditService),
	}
}
