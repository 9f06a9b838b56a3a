package store

import (
	"context"
	"orpheo-api/app/server/models"

	"gorm.io/gorm"
)

func (s *Store) AccountByUsername(ctx context.Context, username string) (*models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).
		Preload("Member").
		First(&account, "username = ?", username).Error; err != nil {
		return nil, translate("find account by username", err)
	}
	return &account, nil
}

func (s *Store) AccountByID(ctx context.Context, id uint) (*models.Account, error) {
	var account models.Account
	if err := s.db.WithContext(ctx).
		Preload("Member").
		First(&account, "id = ?", id).Error; err != nil {
		return nil, translate("find account by id", err)
	}
	return &account, nil
}

// CreateAccount inserts the account. When member is not nil it is inserted first
// in the same transaction and linked to the account.
func (s *Store) CreateAccount(ctx context.Context, account *models.Account, member *models.Member) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if member != nil {
			if err := tx.Create(member).Error; err != nil {
				return err
			}
			account.MemberID = &member.ID
		}
		return tx.Omit("Member").Create(account).Error
	})
	if err != nil {
		return translate("create account", err)
	}

	account.Member = member
	return nil
}

func (s *Store) AccountExistsForMember(ctx context.Context, memberID uint) (bool, error) {
	var count int64
	if err := s.db.WithContext(ctx).
		Model(&models.Account{}).
		Where("member_id = ?", memberID).
		Count(&count).Error; err != nil {
		return false, translate("count accounts for member", err)
	}
	return count > 0, nil
}
