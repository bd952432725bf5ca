package entity

// Department represents a clinical department
type Department struct {
	ID          int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:varchar(200)" json:"description,omitempty"`

	// Relationships
	Rooms        []Room        `gorm:"foreignKey:DepartmentID" json:"rooms,omitempty"`
	Doctors      []Doctor      `gorm:"foreignKey:DepartmentID" json:"doctors,omitempty"`
	Appointments []Appointment `gorm:"foreignKey:DepartmentID" json:"appointments,omitempty"`
}

func (Department) TableName() string {
	return "departments"
}
