package models

import (
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type Document struct {
	gorm.Model

	// Descriptive information
	Name        string         `gorm:"column:name;not null"`
	Type        string         `gorm:"column:type"` // pdf, docx, ... as declared by the uploader
	Description string         `gorm:"column:description"`
	Category    Grade          `gorm:"column:category;type:varchar(16);not null;index"` // lowest grade allowed to read it
	Keywords    pq.StringArray `gorm:"column:keywords;type:text[]"`

	// Authorship
	AuthorID     *uint `gorm:"column:author_id;index"` // member who wrote it
	UploadedByID uint  `gorm:"column:uploaded_by_id;index"`

	// Stored object
	StorageKey       string `gorm:"column:storage_key;not null"`
	OriginalFilename string `gorm:"column:original_filename"`
	MimeType         string `gorm:"column:mime_type"`
	Size             int64  `gorm:"column:size"`

	Author     *Member  `gorm:"foreignKey:AuthorID"`
	UploadedBy *Account `gorm:"foreignKey:UploadedByID"`
}
