package models

import "gorm.io/gorm"

type Account struct {
	gorm.Model

	// Identity
	Username string `gorm:"column:username;uniqueIndex;not null"` // globally unique, case-sensitive
	Email    string `gorm:"column:email"`
	Role     Role   `gorm:"column:role;type:varchar(16);not null"`
	Grade    Grade  `gorm:"column:grade;type:varchar(16);not null"`
	Title    string `gorm:"column:title"` // office held, e.g. secretary or treasurer

	// Login
	Password string `gorm:"column:password;not null"` // bcrypt (or legacy argon2id) digest
	IsActive bool   `gorm:"column:is_active;not null"`

	// Linked member profile
	MemberID    *uint   `gorm:"column:member_id;uniqueIndex"`
	DisplayName *string `gorm:"column:display_name"` // cached full name of the member

	Member *Member `gorm:"foreignKey:MemberID"`
}

// ResolvedDisplayName prefers the cached name and falls back to the linked member.
func (a *Account) ResolvedDisplayName() *string {
	if a.DisplayName != nil && *a.DisplayName != "" {
		return a.DisplayName
	}
	if a.Member != nil {
		name := a.Member.FullName()
		return &name
	}
	return nil
}
