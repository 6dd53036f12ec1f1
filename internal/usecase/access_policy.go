package usecase

import (
	"go-healthcare-records/internal/domain/entity"
	"go-healthcare-records/pkg/apperror"
)

var ErrAccessDenied = apperror.Forbidden("Access denied")

// Access rules. Each takes the resolved caller and the owner of the requested resource.

// CanListPatients allows doctors only.
func CanListPatients(caller entity.Identity) bool {
	return caller.IsDoctor()
}

// CanViewPatient allows any doctor, or the patient themself.
func CanViewPatient(caller entity.Identity, patientID string) bool {
	return caller.IsDoctor() || (caller.IsPatient() && caller.ID == patientID)
}

// CanViewMedicalRecords follows the same rule as viewing the patient.
func CanViewMedicalRecords(caller entity.Identity, patientID string) bool {
	return CanViewPatient(caller, patientID)
}

// CanViewDoctorPatients allows a doctor to see only their own patient list.
func CanViewDoctorPatients(caller entity.Identity, doctorID string) bool {
	return caller.IsDoctor() && caller.ID == doctorID
}

func CanCreateAppointment(caller entity.Identity) bool {
	return caller.IsPatient()
}

// IsAppointmentParty reports whether caller is the side of the appointment matching their role.
func IsAppointmentParty(caller entity.Identity, appointment entity.Appointment) bool {
	switch caller.Role {
	case entity.RolePatient:
		return appointment.PatientID == caller.ID
	case entity.RoleDoctor:
		return appointment.DoctorID == caller.ID
	default:
		return false
	}
}
