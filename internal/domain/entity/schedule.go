package entity

import "time"

// Schedule represents a doctor's shift in a room on a date.
// The (doctor_id, schedule_date, time_slot) triple is unique.
type Schedule struct {
	ID           int       `gorm:"primaryKey;autoIncrement" json:"id"`
	DoctorID     int       `gorm:"not null;index;uniqueIndex:idx_doctor_date_slot" json:"doctor_id"`
	RoomID       string    `gorm:"type:varchar(10);not null;index" json:"room_id"`
	ScheduleDate time.Time `gorm:"type:date;not null;uniqueIndex:idx_doctor_date_slot" json:"schedule_date"`
	TimeSlot     string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_doctor_date_slot" json:"time_slot"`
	Bookable     *bool     `gorm:"not null;default:true" json:"bookable"`

	// Relationships
	Doctor Doctor `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
	Room   Room   `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

func (Schedule) TableName() string {
	return "schedules"
}
