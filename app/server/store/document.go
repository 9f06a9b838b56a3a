package store

import (
	"context"
	"orpheo-api/app/server/models"

	"gorm.io/gorm"
)

// ListDocuments returns the documents whose category is one of categories, newest first.
func (s *Store) ListDocuments(ctx context.Context, categories []models.Grade, page Page) ([]models.Document, int64, error) {
	if len(categories) == 0 {
		return []models.Document{}, 0, nil
	}

	inCategories := func(q *gorm.DB) *gorm.DB {
		return q.Where("category IN ?", categories)
	}

	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Document{}).
		Scopes(inCategories).
		Count(&count).Error; err != nil {
		return nil, 0, translate("count documents", err)
	}

	var documents []models.Document
	if err := s.db.WithContext(ctx).
		Model(&models.Document{}).
		Scopes(inCategories, page.apply).
		Order("created_at DESC").
		Find(&documents).Error; err != nil {
		return nil, 0, translate("list documents", err)
	}

	return documents, count, nil
}

func (s *Store) DocumentByID(ctx context.Context, id uint) (*models.Document, error) {
	var document models.Document
	if err := s.db.WithContext(ctx).First(&document, "id = ?", id).Error; err != nil {
		return nil, translate("find document by id", err)
	}
	return &document, nil
}

func (s *Store) CreateDocument(ctx context.Context, document *models.Document) error {
	return translate("create document", s.db.WithContext(ctx).Omit("Author", "UploadedBy").Create(document).Error)
}

func (s *Store) DeleteDocument(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Delete(&models.Document{}, id)
	if res.Error != nil {
		return translate("delete document", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete document", ErrNotFound)
	}
	return nil
}
