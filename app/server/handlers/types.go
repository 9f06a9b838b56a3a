package handlers

import (
	"fmt"
	"orpheo-api/app/server/models"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// parseDate accepts a calendar date or an RFC 3339 timestamp. Blank input clears the date.
func parseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(dateLayout, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q", s)
	}
	return &t, nil
}

type memberInfo struct {
	ID         uint         `json:"id"`
	FirstNames string       `json:"firstNames"`
	LastNames  string       `json:"lastNames"`
	RUT        *string      `json:"rut"`
	Grade      models.Grade `json:"grade"`
	Title      string       `json:"title"`
	Active     bool         `json:"active"`

	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	Profession  string `json:"profession"`
	Occupation  string `json:"occupation"`
	WorkName    string `json:"workName"`
	WorkAddress string `json:"workAddress"`
	WorkPhone   string `json:"workPhone"`
	WorkEmail   string `json:"workEmail"`

	PartnerName           string `json:"partnerName"`
	PartnerPhone          string `json:"partnerPhone"`
	EmergencyContactName  string `json:"emergencyContactName"`
	EmergencyContactPhone string `json:"emergencyContactPhone"`

	BirthDate      *time.Time `json:"birthDate"`
	InitiationDate *time.Time `json:"initiationDate"`
	PassingDate    *time.Time `json:"passingDate"`
	ExaltationDate *time.Time `json:"exaltationDate"`

	HealthNotes string `json:"healthNotes"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toMemberInfo(m *models.Member) memberInfo {
	return memberInfo{
		ID:                    m.ID,
		FirstNames:            m.FirstNames,
		LastNames:             m.LastNames,
		RUT:                   m.RUT,
		Grade:                 m.Grade,
		Title:                 m.Title,
		Active:                m.Active,
		Email:                 m.Email,
		Phone:                 m.Phone,
		Address:               m.Address,
		Profession:            m.Profession,
		Occupation:            m.Occupation,
		WorkName:              m.WorkName,
		WorkAddress:           m.WorkAddress,
		WorkPhone:             m.WorkPhone,
		WorkEmail:             m.WorkEmail,
		PartnerName:           m.PartnerName,
		PartnerPhone:          m.PartnerPhone,
		EmergencyContactName:  m.EmergencyContactName,
		EmergencyContactPhone: m.EmergencyContactPhone,
		BirthDate:             m.BirthDate,
		InitiationDate:        m.InitiationDate,
		PassingDate:           m.PassingDate,
		ExaltationDate:        m.ExaltationDate,
		HealthNotes:           m.HealthNotes,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

func toMemberInfos(members []models.Member) []memberInfo {
	res := make([]memberInfo, 0, len(members))
	for i := range members {
		res = append(res, toMemberInfo(&members[i]))
	}
	return res
}

// memberInput carries a create or a partial update. Absent fields are left untouched.
type memberInput struct {
	FirstNames *string       `json:"firstNames"`
	LastNames  *string       `json:"lastNames"`
	RUT        *string       `json:"rut"`
	Grade      *models.Grade `json:"grade" validate:"omitempty,oneof=apprentice companion master"`
	Title      *string       `json:"title"`
	Active     *bool         `json:"active"`

	Email   *string `json:"email" validate:"omitempty,email"`
	Phone   *string `json:"phone"`
	Address *string `json:"address"`

	Profession  *string `json:"profession"`
	Occupation  *string `json:"occupation"`
	WorkName    *string `json:"workName"`
	WorkAddress *string `json:"workAddress"`
	WorkPhone   *string `json:"workPhone"`
	WorkEmail   *string `json:"workEmail" validate:"omitempty,email"`

	PartnerName           *string `json:"partnerName"`
	PartnerPhone          *string `json:"partnerPhone"`
	EmergencyContactName  *string `json:"emergencyContactName"`
	EmergencyContactPhone *string `json:"emergencyContactPhone"`

	BirthDate      *string `json:"birthDate"`
	InitiationDate *string `json:"initiationDate"`
	PassingDate    *string `json:"passingDate"`
	ExaltationDate *string `json:"exaltationDate"`

	HealthNotes *string `json:"healthNotes"`
}

type documentInfo struct {
	ID               uint         `json:"id"`
	Name             string       `json:"name"`
	Type             string       `json:"type"`
	Description      string       `json:"description"`
	Category         models.Grade `json:"category"`
	Keywords         []string     `json:"keywords"`
	AuthorID         *uint        `json:"authorId"`
	UploadedByID     uint         `json:"uploadedById"`
	OriginalFilename string       `json:"originalFilename"`
	MimeType         string       `json:"mimeType"`
	Size             int64        `json:"size"`
	CreatedAt        time.Time    `json:"createdAt"`
}

func toDocumentInfo(d *models.Document) documentInfo {
	keywords := []string(d.Keywords)
	if keywords == nil {
		keywords = []string{}
	}
	return documentInfo{
		ID:               d.ID,
		Name:             d.Name,
		Type:             d.Type,
		Description:      d.Description,
		Category:         d.Category,
		Keywords:         keywords,
		AuthorID:         d.AuthorID,
		UploadedByID:     d.UploadedByID,
		OriginalFilename: d.OriginalFilename,
		MimeType:         d.MimeType,
		Size:             d.Size,
		CreatedAt:        d.CreatedAt,
	}
}
