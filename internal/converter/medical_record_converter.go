package converter

import (
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
)

// UnknownPlaceholder stands in for fields of a referenced row that does not exist.
const UnknownPlaceholder = "Unknown"

// MedicalRecordToResponse copies a record and attaches its doctor's details.
// A nil doctor yields the placeholder for both fields.
func MedicalRecordToResponse(record entity.MedicalRecord, doctor *entity.Doctor) dto.MedicalRecordResponse {
	response := dto.MedicalRecordResponse{
		ID:                   record.ID,
		PatientID:            record.PatientID,
		DoctorID:             record.DoctorID,
		VisitDate:            record.VisitDate,
		Diagnosis:            record.Diagnosis,
		Treatment:            record.Treatment,
		Prescription:         record.Prescription,
		Notes:                record.Notes,
		DoctorName:           UnknownPlaceholder,
		DoctorSpecialization: UnknownPlaceholder,
	}

	if doctor != nil {
		response.DoctorName = doctor.Name
		response.DoctorSpecialization = doctor.Specialization
	}

	return response
}
