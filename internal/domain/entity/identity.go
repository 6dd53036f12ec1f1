package entity

// Identity is the resolved caller of an authenticated request.
type Identity struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

func (i Identity) IsDoctor() bool {
	return i.Role == RoleDoctor
}

func (i Identity) IsPatient() bool {
	return i.Role == RolePatient
}
