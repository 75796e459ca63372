package person

import "time"

// Role is the account privilege level. The database stores the legacy
// numeric encoding (1 = recruiter, 2 = applicant); it is mapped to a Role
// at the repository boundary and never compared as a raw integer elsewhere.
type Role string

const (
	RoleRecruiter Role = "recruiter"
	RoleApplicant Role = "applicant"
)

const (
	roleIDRecruiter int16 = 1
	roleIDApplicant int16 = 2
)

// Privileged is the single comparison point for the recruiter gate.
func (r Role) Privileged() bool {
	return r == RoleRecruiter
}

func RoleFromID(id int16) (Role, bool) {
	switch id {
	case roleIDRecruiter:
		return RoleRecruiter, true
	case roleIDApplicant:
		return RoleApplicant, true
	default:
		return "", false
	}
}

func (r Role) ID() int16 {
	if r == RoleRecruiter {
		return roleIDRecruiter
	}
	return roleIDApplicant
}

type Person struct {
	ID           int64
	Name         string
	Surname      string
	Pnr          string
	Email        string
	Username     string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
}
