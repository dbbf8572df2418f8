package models

// Role is an admin account role.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleSuperuser Role = "superuser"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleSuperuser
}

// Known hostel options offered by the record form. Any other non-empty
// value is stored as a custom hostel.
const (
	HostelBoys       = "Boys Hostel"
	HostelGirls      = "Girls Hostel"
	HostelDayScholar = "Day Scholar"
)

// HostelOptions lists the fixed hostel choices in display order.
var HostelOptions = []string{HostelBoys, HostelGirls, HostelDayScholar}
