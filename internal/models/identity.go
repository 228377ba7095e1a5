package models

// Identity is a credential record held by the identity backend. It is
// separate from the User profile: an identity can exist without a profile
// (the login self-heal path covers that gap).
type Identity struct {
	Base
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	DisplayName  string `json:"display_name"`
	SessionHash  string `gorm:"size:64" json:"-"`
}
