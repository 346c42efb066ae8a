package models

// Role is the closed set of account roles. Stored as a string column but
// only ever compared through the constants below.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleCFO      Role = "cfo"
	RoleManager  Role = "manager"
	RoleHR       Role = "hr"
	RoleEmployee Role = "employee"
	RoleTester   Role = "tester"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCFO, RoleManager, RoleHR, RoleEmployee, RoleTester:
		return true
	}
	return false
}

// Rank defines the seniority order used by the firing policy:
// admin > cfo > manager > hr > tester > employee.
func (r Role) Rank() int {
	switch r {
	case RoleAdmin:
		return 6
	case RoleCFO:
		return 5
	case RoleManager:
		return 4
	case RoleHR:
		return 3
	case RoleTester:
		return 2
	case RoleEmployee:
		return 1
	}
	return 0
}

// IsWorker reports whether the role gets an Employee extension row.
func (r Role) IsWorker() bool {
	return r == RoleEmployee || r == RoleTester
}

// CanFire reports whether an actor with role r may terminate a holder of
// target. Worker roles never fire anyone, only worker roles are fireable,
// and the actor must strictly outrank the target.
func (r Role) CanFire(target Role) bool {
	if r.IsWorker() || !target.IsWorker() {
		return false
	}
	return r.Rank() > target.Rank()
}

func (r Role) In(roles ...Role) bool {
	for _, candidate := range roles {
		if r == candidate {
			return true
		}
	}
	return false
}
