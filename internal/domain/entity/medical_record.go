package entity

// MedicalRecord is immutable once stored. PatientID and DoctorID are not checked
// against their tables; readers must tolerate dangling references.
type MedicalRecord struct {
	ID           string `json:"id"`
	PatientID    string `json:"patient_id"`
	DoctorID     string `json:"doctor_id"`
	VisitDate    string `json:"visit_date"`
	Diagnosis    string `json:"diagnosis"`
	Treatment    string `json:"treatment"`
	Prescription string `json:"prescription"`
	Notes        string `json:"notes"`
}
