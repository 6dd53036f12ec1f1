package handler

import (
	"net/http"

	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/pkg/response"
)

// FacilityHandler serves the public hospital brochure and the API root.
type FacilityHandler struct {
	info dto.FacilityInfoResponse
}

func NewFacilityHandler() *FacilityHandler {
	return &FacilityHandler{info: facilityInfo()}
}

func (h *FacilityHandler) GetFacilityInfo(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.info)
}

func (h *FacilityHandler) Root(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, dto.MessageResponse{Message: "Healthcare Management System API"})
}

func facilityInfo() dto.FacilityInfoResponse {
	return dto.FacilityInfoResponse{
		HospitalName: "MedCare Hospital & Research Center",
		Tagline:      "Your Health, Our Priority",
		Description:  "A leading healthcare institution committed to providing world-class medical care with cutting-edge technology and compassionate service.",
		Services: []dto.FacilityService{
			{Name: "Emergency Care", Description: "24/7 emergency medical services with state-of-the-art trauma center", Icon: "🚑"},
			{Name: "Specialized Treatments", Description: "Expert care in Cardiology, Pediatrics, Orthopedics, and Gynecology", Icon: "🏥"},
			{Name: "Diagnostic Services", Description: "Advanced imaging, laboratory tests, and health screenings", Icon: "🔬"},
			{Name: "Telemedicine", Description: "Virtual consultations and remote patient monitoring", Icon: "💻"},
			{Name: "Pharmacy Services", Description: "Complete pharmaceutical care and medication management", Icon: "💊"},
			{Name: "Wellness Programs", Description: "Preventive care, health education, and lifestyle counseling", Icon: "🌟"},
		},
		Stats: []dto.FacilityStat{
			{Label: "Years of Excellence", Value: "25+", Icon: "⭐"},
			{Label: "Expert Doctors", Value: "50+", Icon: "👨‍⚕️"},
			{Label: "Patients Served", Value: "100K+", Icon: "👥"},
			{Label: "Success Rate", Value: "98%", Icon: "📈"},
		},
		ContactInfo: dto.FacilityContactInfo{
			Address:   "123 Health Street, Medical District, Mumbai, Maharashtra 400001",
			Phone:     "+91-22-2345-6789",
			Emergency: "+91-22-2345-6790",
			Email:     "info@medcare.com",
			Hours: dto.FacilityHours{
				OPD:       "8:00 AM - 8:00 PM",
				Emergency: "24/7",
				Pharmacy:  "24/7",
			},
		},
		Specializations: []dto.FacilitySpecialization{
			{Name: "Cardiology", Doctor: "Dr. Rajesh Sharma"},
			{Name: "Pediatrics", Doctor: "Dr. Priya Patel"},
			{Name: "Orthopedics", Doctor: "Dr. Amit Kumar"},
			{Name: "Gynecology", Doctor: "Dr. Sunita Rao"},
		},
	}
}
