package models

import (
	"time"

	"gorm.io/gorm"
)

type Member struct {
	gorm.Model

	// Basic information
	FirstNames string  `gorm:"column:first_names;not null"`
	LastNames  string  `gorm:"column:last_names;not null;index"`
	RUT        *string `gorm:"column:rut;uniqueIndex"` // national id number, absent for self-registered members
	Grade      Grade   `gorm:"column:grade;type:varchar(16);not null;index"`
	Title      string  `gorm:"column:title"`
	Active     bool    `gorm:"column:active;not null;index"` // "vigente": still an active member of the lodge

	// Contact
	Email   string `gorm:"column:email"`
	Phone   string `gorm:"column:phone"`
	Address string `gorm:"column:address"`

	// Professional
	Profession  string `gorm:"column:profession"`
	Occupation  string `gorm:"column:occupation"`
	WorkName    string `gorm:"column:work_name"`
	WorkAddress string `gorm:"column:work_address"`
	WorkPhone   string `gorm:"column:work_phone"`
	WorkEmail   string `gorm:"column:work_email"`

	// Family
	PartnerName           string `gorm:"column:partner_name"`
	PartnerPhone          string `gorm:"column:partner_phone"`
	EmergencyContactName  string `gorm:"column:emergency_contact_name"`
	EmergencyContactPhone string `gorm:"column:emergency_contact_phone"`

	// Dates
	BirthDate      *time.Time `gorm:"column:birth_date"`
	InitiationDate *time.Time `gorm:"column:initiation_date"`
	PassingDate    *time.Time `gorm:"column:passing_date"`    // raised to companion
	ExaltationDate *time.Time `gorm:"column:exaltation_date"` // raised to master

	// Health
	HealthNotes string `gorm:"column:health_notes"`
}

func (m *Member) FullName() string {
	return m.FirstNames + " " + m.LastNames
}
