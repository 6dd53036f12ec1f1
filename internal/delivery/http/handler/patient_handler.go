package handler

import (
	"net/http"

	"go-healthcare-records/internal/delivery/http/middleware"
	"go-healthcare-records/internal/usecase"
	"go-healthcare-records/pkg/response"

	"github.com/gorilla/mux"
)

type PatientHandler struct {
	patientUsecase usecase.PatientUsecase
}

func NewPatientHandler(patientUsecase usecase.PatientUsecase) *PatientHandler {
	return &PatientHandler{
		patientUsecase: patientUsecase,
	}
}

func (h *PatientHandler) GetAllPatients(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	patients, err := h.patientUsecase.GetAllPatients(r.Context(), identity)
	if err != nil {
		response.FromError(w, err, "Failed to get patients")
		return
	}

	response.JSON(w, http.StatusOK, patients)
}

func (h *PatientHandler) GetPatient(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	patient, err := h.patientUsecase.GetPatient(r.Context(), identity, vars["id"])
	if err != nil {
		switch err {
		case usecase.ErrAccessDenied:
			response.Forbidden(w, "Access denied")
		case usecase.ErrPatientNotFound:
			response.NotFound(w, "Patient not found")
		default:
			response.FromError(w, err, "Failed to get patient")
		}
		return
	}

	response.JSON(w, http.StatusOK, patient)
}
