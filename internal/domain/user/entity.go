// internal/domain/user/entity.go
package user

import (
	"strings"
	"time"
)

// Role separates customers from back-office staff
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User represents a storefront account
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Email     string    `gorm:"uniqueIndex;not null;size:255" json:"email"`
	Password  string    `gorm:"size:255" json:"-"` // empty for Google-only accounts
	FirstName string    `gorm:"size:100" json:"firstName"`
	LastName  string    `gorm:"size:100" json:"lastName"`
	Role      Role      `gorm:"size:20;not null;default:'user';index" json:"role"`
	GoogleID  *string   `gorm:"uniqueIndex;size:100" json:"-"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FullName returns the user's display name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// IsAdmin reports whether the user can use the back office
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// HasPassword reports whether the account can sign in with a password
func (u *User) HasPassword() bool {
	return u.Password != ""
}

// splitName turns a single display name into first and last names.
// The last word is the given name, as Vietnamese names are family name first.
func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[len(parts)-1], strings.Join(parts[:len(parts)-1], " ")
	}
}
