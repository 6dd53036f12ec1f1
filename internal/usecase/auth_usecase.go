package usecase

import (
	"context"
	"errors"

	"go-healthcare-records/internal/converter"
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/internal/domain/repository"
	"go-healthcare-records/internal/infrastructure/database"
	"go-healthcare-records/internal/service"
	"go-healthcare-records/pkg/apperror"

	"github.com/sirupsen/logrus"
)

var (
	ErrEmailAlreadyExists = apperror.Conflict("Email already registered")
	ErrInvalidCredentials = apperror.Unauthorized("Invalid credentials")
	ErrUserNotFound       = apperror.NotFound("User not found")
)

type AuthUsecase interface {
	Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
	Logout(ctx context.Context, caller entity.Identity, token string) error
	GetCurrentUser(ctx context.Context, caller entity.Identity) (*dto.UserResponse, error)
}

type authUsecase struct {
	db           *database.Store
	log          *logrus.Logger
	userRepo     repository.UserRepository
	patientRepo  repository.PatientRepository
	sessions     service.SessionAuthority
	auditService service.AuditService
}

func NewAuthUsecase(
	db *database.Store,
	log *logrus.Logger,
	userRepo repository.UserRepository,
	patientRepo repository.PatientRepository,
	sessions service.SessionAuthority,
	auditService service.AuditService,
) AuthUsecase {
	return &authUsecase{
		db:           db,
		log:          log,
		userRepo:     userRepo,
		patientRepo:  patientRepo,
		sessions:     sessions,
		auditService: auditService,
	}
}

// Signup creates a patient login together with its patient row. Both rows are written
// inside one store transaction after the email check, so a conflict leaves every table untouched.
func (u *authUsecase) Signup(ctx context.Context, req *dto.SignupRequest) (*dto.SignupResponse, error) {
	var patientID string

	err := u.db.Transaction(func() error {
		exists, err := u.userRepo.ExistsByEmail(ctx, req.Email)
		if err != nil {
			u.log.Warnf("Failed to check email: %+v", err)
			return err
		}
		if exists {
			return ErrEmailAlreadyExists
		}

		id, err := u.patientRepo.NextID(ctx)
		if err != nil {
			u.log.Warnf("Failed to allocate patient id: %+v", err)
			return err
		}

		patient := &entity.Patient{
			ID:               id,
			Name:             req.Name,
			Email:            req.Email,
			Phone:            req.Phone,
			DateOfBirth:      req.DateOfBirth,
			Address:          req.Address,
			BloodGroup:       req.BloodGroup,
			EmergencyContact: req.EmergencyContact,
		}
		if err := u.patientRepo.Create(ctx, patient); err != nil {
			u.log.Warnf("Failed to create patient: %+v", err)
			return err
		}

		user := &entity.User{
			ID:       id,
			Email:    req.Email,
			Password: req.Password,
			Name:     req.Name,
			Role:     entity.RolePatient,
		}
		if err := u.userRepo.Create(ctx, user); err != nil {
			if errors.Is(err, repository.ErrDuplicateKey) {
				return ErrEmailAlreadyExists
			}
			u.log.Warnf("Failed to create user: %+v", err)
			return err
		}

		patientID = id
		return nil
	})
	if err != nil {
		return nil, err
	}

	u.auditService.Record(ctx, &entity.Identity{ID: patientID, Email: req.Email, Role: entity.RolePatient}, service.AuditActionUserSignup, "patient", patientID)
	u.log.Infof("Patient signed up: id=%s", patientID)
	return &dto.SignupResponse{Message: "Account created successfully", PatientID: patientID}, nil
}

func (u *authUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := u.userRepo.FindByEmail(ctx, req.Email)
	if err != nil {
		u.log.Warnf("Failed to find user by email: %+v", err)
		return nil, err
	}
	if user == nil || user.Password != req.Password {
		u.auditService.Record(ctx, nil, service.AuditActionUserLoginFailed, "user", req.Email)
		return nil, ErrInvalidCredentials
	}

	identity := user.Identity()
	token, err := u.sessions.Issue(ctx, identity)
	if err != nil {
		return nil, err
	}

	u.auditService.Record(ctx, &identity, service.AuditActionUserLogin, "user", identity.ID)
	return &dto.LoginResponse{
		Token: token,
		User:  converter.IdentityToResponse(identity),
	}, nil
}

// Logout revokes the token that authenticated the request.
func (u *authUsecase) Logout(ctx context.Context, caller entity.Identity, token string) error {
	if err := u.sessions.Revoke(ctx, token); err != nil {
		return err
	}
	u.auditService.Record(ctx, &caller, service.AuditActionUserLogout, "user", caller.ID)
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, caller entity.Identity) (*dto.UserResponse, error) {
	user, err := u.userRepo.FindByID(ctx, caller.ID)
	if err != nil {
		u.log.Warnf("Failed to find user by ID: %+v", err)
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	response := converter.IdentityToResponse(user.Identity())
	return &response, nil
}
