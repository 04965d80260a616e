package models

type Role int

const (
	RoleStudent Role = iota
	RoleTeacher
)

func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "STUDENT"
	case RoleTeacher:
		return "TEACHER"
	default:
		return "UNKNOWN"
	}
}

type User struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     Role   `json:"role"`
}
