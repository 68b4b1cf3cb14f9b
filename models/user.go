package models

import (
	"time"
)

// User is a system operator account. Password stores only the bcrypt hash
// and is never serialized into a response.
type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Login    string `gorm:"not null;uniqueIndex:idx_users_login_active,where:active" json:"login"`
	Password string `gorm:"not null" json:"-"`
	FullName string `gorm:"not null" json:"fullName"`
	Email    string `gorm:"not null;uniqueIndex:idx_users_email_active,where:active" json:"email"`

	Active    bool      `gorm:"default:true;index" json:"active"`
	CreatedAt time.Time `json:"createdAt"`
}

// PublicUser is the shape handed to clients after login; it is what the
// client-held session persists.
type PublicUser struct {
	ID       uint   `json:"id"`
	Login    string `json:"login"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
}

// Public strips everything a client is allowed to hold.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:       u.ID,
		Login:    u.Login,
		FullName: u.FullName,
		Email:    u.Email,
	}
}
