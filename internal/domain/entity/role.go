package entity

// Role is the caller category used by every access decision
type Role string

const (
	RoleDoctor  Role = "doctor"
	RolePatient Role = "patient"
)

func (r Role) String() string {
	return string(r)
}
