package inits

import (
	"fmt"
	"orpheo-api/app/server/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type hasher interface {
	Hash(plaintext string) (string, error)
}

func DB(conn string, h hasher) (db *gorm.DB, err error) {
	// Connect
	if db, err = gorm.Open(postgres.Open(conn), &gorm.Config{
		TranslateError: true,
	}); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Migrate
	if err = mig(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initial data
	if err = initData(db, h); err != nil {
		return nil, fmt.Errorf("failed to init data into database: %w", err)
	}

	return db, nil
}

func mig(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Member{},
		&models.Account{},
		&models.Document{},
	)
}

type seedAccount struct {
	username string
	role     models.Role
	title    string
	member   models.Member
}

var seedAccounts = []seedAccount{
	{
		username: "admin",
		role:     models.RoleAdmin,
		title:    "Venerable Master",
		member:   models.Member{FirstNames: "Juan Carlos", LastNames: "Pérez González", RUT: seedRUT("12345678-9"), Grade: models.GradeMaster, Email: "admin@orpheo.cl", Profession: "Ingeniero"},
	},
	{
		username: "maestro",
		role:     models.RoleGeneral,
		member:   models.Member{FirstNames: "Pedro Antonio", LastNames: "Soto Muñoz", RUT: seedRUT("11111111-1"), Grade: models.GradeMaster, Email: "maestro@orpheo.cl", Profession: "Abogado"},
	},
	{
		username: "companero",
		role:     models.RoleGeneral,
		member:   models.Member{FirstNames: "Luis Alberto", LastNames: "Rojas Díaz", RUT: seedRUT("22222222-2"), Grade: models.GradeCompanion, Email: "companero@orpheo.cl", Profession: "Profesor"},
	},
	{
		username: "aprendiz",
		role:     models.RoleGeneral,
		member:   models.Member{FirstNames: "Diego Andrés", LastNames: "Fuentes Vera", RUT: seedRUT("33333333-3"), Grade: models.GradeApprentice, Email: "aprendiz@orpheo.cl", Profession: "Contador"},
	},
	{
		username: "secretario",
		role:     models.RoleGeneral,
		title:    "Secretary",
		member:   models.Member{FirstNames: "Jorge Eduardo", LastNames: "Morales Castro", RUT: seedRUT("44444444-4"), Grade: models.GradeMaster, Email: "secretario@orpheo.cl", Profession: "Periodista"},
	},
	{
		username: "tesorero",
		role:     models.RoleGeneral,
		title:    "Treasurer",
		member:   models.Member{FirstNames: "Ricardo Javier", LastNames: "Herrera Silva", RUT: seedRUT("55555555-5"), Grade: models.GradeMaster, Email: "tesorero@orpheo.cl", Profession: "Economista"},
	},
}

func seedRUT(rut string) *string {
	return &rut
}

func initData(db *gorm.DB, h hasher) (err error) {
	var counter int64

	// Accounts
	if err = db.Model(&models.Account{}).Count(&counter).Error; err != nil {
		return fmt.Errorf("failed to get account count: %w", err)
	} else if counter > 0 {
		return nil
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, seed := range seedAccounts {
			member := seed.member
			member.Title = seed.title
			member.Active = true
			if err := tx.Create(&member).Error; err != nil {
				return fmt.Errorf("failed to create member for %s: %w", seed.username, err)
			}

			// Every seeded account logs in with "<username>123"
			password, err := h.Hash(seed.username + "123")
			if err != nil {
				return fmt.Errorf("failed to generate password: %w", err)
			}

			displayName := member.FullName()
			if err := tx.Omit("Member").Create(&models.Account{
				Username:    seed.username,
				Email:       member.Email,
				Role:        seed.role,
				Grade:       member.Grade,
				Title:       seed.title,
				Password:    password,
				IsActive:    true,
				MemberID:    &member.ID,
				DisplayName: &displayName,
			}).Error; err != nil {
				return fmt.Errorf("failed to create account %s: %w", seed.username, err)
			}
		}
		return nil
	})
}
