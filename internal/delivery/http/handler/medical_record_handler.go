package handler

import (
	"net/http"

	"go-healthcare-records/internal/delivery/http/middleware"
	"go-healthcare-records/internal/usecase"
	"go-healthcare-records/pkg/response"

	"github.com/gorilla/mux"
)

type MedicalRecordHandler struct {
	medicalRecordUsecase usecase.MedicalRecordUsecase
}

func NewMedicalRecordHandler(medicalRecordUsecase usecase.MedicalRecordUsecase) *MedicalRecordHandler {
	return &MedicalRecordHandler{
		medicalRecordUsecase: medicalRecordUsecase,
	}
}

func (h *MedicalRecordHandler) GetPatientRecords(w http.ResponseWriter, r *http.Request) {
	identity, ok := middleware.GetIdentityFromContext(r.Context())
	if !ok {
		response.Unauthorized(w, "Invalid token")
		return
	}

	vars := mux.Vars(r)
	records, err := h.medicalRecordUsecase.GetPatientRecords(r.Context(), identity, vars["patient_id"])
	if err != nil {
		response.FromError(w, err, "Failed to get medical records")
		return
	}

	response.JSON(w, http.StatusOK, records)
}
