package converter

import (
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
)

// DoctorsToResponses converts a slice of Doctor entities to slice of DoctorResponse DTOs
func DoctorsToResponses(doctors []entity.Doctor) []dto.DoctorResponse {
	responses := make([]dto.DoctorResponse, len(doctors))
	for i, doctor := range doctors {
		responses[i] = dto.DoctorResponse{
			ID:              doctor.ID,
			Name:            doctor.Name,
			Email:           doctor.Email,
			Phone:           doctor.Phone,
			Specialization:  doctor.Specialization,
			Qualification:   doctor.Qualification,
			ExperienceYears: doctor.ExperienceYears,
		}
	}
	return responses
}
