package models

import "time"

// User is the owner profile record keyed by its identity's id. Email is
// immutable after creation; DisplayName is the only mutable field.
type User struct {
	ID          string       `gorm:"type:uuid;primaryKey" json:"id"`
	Email       string       `gorm:"not null" json:"email"`
	DisplayName string       `json:"display_name"`
	CreatedAt   time.Time    `json:"created_at"`
	Investments []Investment `gorm:"foreignKey:UserID" json:"investments,omitempty"`
}
