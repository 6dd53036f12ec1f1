package dto

// MedicalRecordResponse is a stored record joined with its doctor's name and specialization.
type MedicalRecordResponse struct {
	ID                   string `json:"id"`
	PatientID            string `json:"patient_id"`
	DoctorID             string `json:"doctor_id"`
	VisitDate            string `json:"visit_date"`
	Diagnosis            string `json:"diagnosis"`
	Treatment            string `json:"treatment"`
	Prescription         string `json:"prescription"`
	Notes                string `json:"notes"`
	DoctorName           string `json:"doctor_name"`
	DoctorSpecialization string `json:"doctor_specialization"`
}
