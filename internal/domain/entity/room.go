package entity

// Room represents a consultation room, keyed by its room code
type Room struct {
	ID           string `gorm:"type:varchar(10);primaryKey" json:"id"`
	DepartmentID int    `gorm:"not null;index" json:"department_id"`
	Location     string `gorm:"type:varchar(50);not null" json:"location"`

	// Relationships
	Department Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

func (Room) TableName() string {
	return "rooms"
}
