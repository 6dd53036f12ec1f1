package database

import (
	"go-healthcare-records/internal/domain/entity"

	"github.com/sirupsen/logrus"
)

const sampleDoctorPassword = "doc123"
const samplePatientPassword = "pat123"

// Seed loads the sample doctors, patients, logins, records and appointments.
func Seed(s *Store, log *logrus.Logger) {
	doctors := []entity.Doctor{
		{ID: "doc1", Name: "Dr. Rajesh Sharma", Email: "rajesh.sharma@hospital.com", Phone: "+91-9876543210", Specialization: "Cardiology", Qualification: "MD, DM Cardiology", ExperienceYears: 15},
		{ID: "doc2", Name: "Dr. Priya Patel", Email: "priya.patel@hospital.com", Phone: "+91-9876543211", Specialization: "Pediatrics", Qualification: "MBBS, MD Pediatrics", ExperienceYears: 10},
		{ID: "doc3", Name: "Dr. Amit Kumar", Email: "amit.kumar@hospital.com", Phone: "+91-9876543212", Specialization: "Orthopedics", Qualification: "MBBS, MS Orthopedics", ExperienceYears: 12},
		{ID: "doc4", Name: "Dr. Sunita Rao", Email: "sunita.rao@hospital.com", Phone: "+91-9876543213", Specialization: "Gynecology", Qualification: "MBBS, MD Gynecology", ExperienceYears: 8},
	}

	patients := []entity.Patient{
		{ID: "pat1", Name: "Arjun Mehta", Email: "arjun.mehta@email.com", Phone: "+91-9876543220", DateOfBirth: "1990-05-15", Address: "Mumbai, Maharashtra", BloodGroup: "A+", EmergencyContact: "+91-9876543221"},
		{ID: "pat2", Name: "Kavya Singh", Email: "kavya.singh@email.com", Phone: "+91-9876543222", DateOfBirth: "1985-08-22", Address: "Delhi, India", BloodGroup: "O+", EmergencyContact: "+91-9876543223"},
	}

	records := []entity.MedicalRecord{
		{ID: "rec1", PatientID: "pat1", DoctorID: "doc1", VisitDate: "2024-01-15", Diagnosis: "Hypertension", Treatment: "Lifestyle changes and medication", Prescription: "Amlodipine 5mg once daily", Notes: "Patient advised to reduce salt intake and exercise regularly"},
		{ID: "rec2", PatientID: "pat1", DoctorID: "doc3", VisitDate: "2024-02-20", Diagnosis: "Lower back pain", Treatment: "Physiotherapy and pain management", Prescription: "Ibuprofen 400mg twice daily", Notes: "Recommended ergonomic workplace setup"},
		{ID: "rec3", PatientID: "pat2", DoctorID: "doc2", VisitDate: "2024-01-10", Diagnosis: "Routine checkup", Treatment: "No treatment required", Prescription: "Multivitamin supplements", Notes: "Patient in good health, continue regular checkups"},
	}

	appointments := []entity.Appointment{
		{ID: "app1", PatientID: "pat1", DoctorID: "doc1", AppointmentDate: "2024-08-25", AppointmentTime: "10:00", Status: entity.AppointmentStatusScheduled, Reason: "Follow-up for hypertension"},
		{ID: "app2", PatientID: "pat2", DoctorID: "doc2", AppointmentDate: "2024-08-26", AppointmentTime: "14:00", Status: entity.AppointmentStatusScheduled, Reason: "Annual health checkup"},
	}

	for _, d := range doctors {
		s.Doctors.Put(d.ID, d)
		s.Users.Put(d.Email, entity.User{ID: d.ID, Email: d.Email, Password: sampleDoctorPassword, Name: d.Name, Role: entity.RoleDoctor})
	}
	for _, p := range patients {
		s.Patients.Put(p.ID, p)
		s.Users.Put(p.Email, entity.User{ID: p.ID, Email: p.Email, Password: samplePatientPassword, Name: p.Name, Role: entity.RolePatient})
	}
	for _, r := range records {
		s.MedicalRecords.Put(r.ID, r)
	}
	for _, a := range appointments {
		s.Appointments.Put(a.ID, a)
	}

	log.WithFields(logrus.Fields{
		"doctors":         len(doctors),
		"patients":        len(patients),
		"medical_records": len(records),
		"appointments":    len(appointments),
	}).Info("Sample data seeded")
}
