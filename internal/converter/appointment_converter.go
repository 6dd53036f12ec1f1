package converter

import (
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
)

// AppointmentToResponse copies an appointment and attaches patient and doctor details,
// falling back to the placeholder for whichever side is missing.
func AppointmentToResponse(appointment entity.Appointment, patient *entity.Patient, doctor *entity.Doctor) dto.AppointmentResponse {
	response := dto.AppointmentResponse{
		ID:                   appointment.ID,
		PatientID:            appointment.PatientID,
		DoctorID:             appointment.DoctorID,
		AppointmentDate:      appointment.AppointmentDate,
		AppointmentTime:      appointment.AppointmentTime,
		Status:               string(appointment.Status),
		Reason:               appointment.Reason,
		PatientName:          UnknownPlaceholder,
		DoctorName:           UnknownPlaceholder,
		DoctorSpecialization: UnknownPlaceholder,
	}

	if patient != nil {
		response.PatientName = patient.Name
	}
	if doctor != nil {
		response.DoctorName = doctor.Name
		response.DoctorSpecialization = doctor.Specialization
	}

	return response
}
