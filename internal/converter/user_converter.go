package converter

import (
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/domain/entity"
)

// IdentityToResponse converts a caller Identity to the public UserResponse DTO
func IdentityToResponse(identity entity.Identity) dto.UserResponse {
	return dto.UserResponse{
		ID:    identity.ID,
		Name:  identity.Name,
		Email: identity.Email,
		Role:  identity.Role.String(),
	}
}
