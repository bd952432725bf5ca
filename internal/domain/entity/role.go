package entity

// Role represents a user role in the system
type Role struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	RoleName    string `gorm:"type:varchar(50);uniqueIndex;not null" json:"role_name"`
	Description string `gorm:"type:text" json:"description,omitempty"`

	// Relationships
	Users []User `gorm:"foreignKey:RoleID" json:"users,omitempty"`
}

func (Role) TableName() string {
	return "roles"
}

// Role ID constants
const (
	RoleIDAdmin     = 1
	RoleIDFrontDesk = 2
	RoleIDDoctor    = 3
	RoleIDPatient   = 4
)

// RoleNames constants
const (
	RoleAdmin     = "admin"
	RoleFrontDesk = "front_desk"
	RoleDoctor    = "doctor"
	RolePatient   = "patient"
)

// RoleName resolves a role ID to its name, empty string when unknown.
func RoleName(roleID int) string {
	switch roleID {
	case RoleIDAdmin:
		return RoleAdmin
	case RoleIDFrontDesk:
		return RoleFrontDesk
	case RoleIDDoctor:
		return RoleDoctor
	case RoleIDPatient:
		return RolePatient
	default:
		return ""
	}
}

// DashboardPath returns the landing page for a role after login.
func DashboardPath(roleID int) string {
	switch roleID {
	case RoleIDAdmin:
		return "/admin/dashboard"
	case RoleIDFrontDesk:
		return "/reception/dashboard"
	case RoleIDDoctor:
		return "/doctor/dashboard"
	case RoleIDPatient:
		return "/patient/dashboard"
	default:
		return "/login"
	}
}
