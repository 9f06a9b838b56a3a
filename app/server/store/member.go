package store

import (
	"context"
	"orpheo-api/app/server/models"

	"gorm.io/gorm"
)

type MemberFilter struct {
	Grade  *models.Grade
	Active *bool
	Query  string // matched against names, email and rut
}

func (f MemberFilter) scope(q *gorm.DB) *gorm.DB {
	if f.Grade != nil {
		q = q.Where("grade = ?", *f.Grade)
	}
	if f.Active != nil {
		q = q.Where("active = ?", *f.Active)
	}
	if f.Query != "" {
		pattern := containsPattern(f.Query)
		q = q.Where(
			"first_names ILIKE ? OR last_names ILIKE ? OR email ILIKE ? OR rut ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}
	return q
}

// ListMembers returns one page of matching members ordered by last names, and the total match count.
func (s *Store) ListMembers(ctx context.Context, filter MemberFilter, page Page) ([]models.Member, int64, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Member{}).
		Scopes(filter.scope).
		Count(&count).Error; err != nil {
		return nil, 0, translate("count members", err)
	}

	var members []models.Member
	if err := s.db.WithContext(ctx).
		Model(&models.Member{}).
		Scopes(filter.scope, page.apply).
		Order("last_names ASC").
		Find(&members).Error; err != nil {
		return nil, 0, translate("list members", err)
	}

	return members, count, nil
}

func (s *Store) MemberByID(ctx context.Context, id uint) (*models.Member, error) {
	var member models.Member
	if err := s.db.WithContext(ctx).First(&member, "id = ?", id).Error; err != nil {
		return nil, translate("find member by id", err)
	}
	return &member, nil
}

func (s *Store) MemberByRUT(ctx context.Context, rut string) (*models.Member, error) {
	var member models.Member
	if err := s.db.WithContext(ctx).First(&member, "rut = ?", rut).Error; err != nil {
		return nil, translate("find member by rut", err)
	}
	return &member, nil
}

func (s *Store) CreateMember(ctx context.Context, member *models.Member) error {
	return translate("create member", s.db.WithContext(ctx).Create(member).Error)
}

// SaveMember writes every column of member, including zero values.
func (s *Store) SaveMember(ctx context.Context, member *models.Member) error {
	return translate("save member", s.db.WithContext(ctx).Save(member).Error)
}

// DeleteMember removes the row for good, so foreign keys from documents are enforced.
func (s *Store) DeleteMember(ctx context.Context, id uint) error {
	res := s.db.WithContext(ctx).Unscoped().Delete(&models.Member{}, id)
	if res.Error != nil {
		return translate("delete member", res.Error)
	}
	if res.RowsAffected == 0 {
		return translate("delete member", ErrNotFound)
	}
	return nil
}
