package auth

import (
	"context"
	"errors"
	"fmt"
	"orpheo-api/app/server/jwt"
	"orpheo-api/app/server/models"
	"orpheo-api/app/server/store"
	"strings"
	"time"
)

type Service struct {
	accounts     CredentialStore
	hasher       PasswordHasher
	tokens       TokenCodec
	ttl          time.Duration
	autoActivate bool
	dummyDigest  string
}

type Options struct {
	TokenTTL     time.Duration
	AutoActivate bool // activate self-registered accounts right away
}

func NewService(accounts CredentialStore, hasher PasswordHasher, tokens TokenCodec, opts Options) (*Service, error) {
	// Digest compared against when the username does not exist, so both failure paths cost the same
	dummy, err := hasher.Hash("orpheo-dummy-password")
	if err != nil {
		return nil, fmt.Errorf("prepare dummy digest: %w", err)
	}

	return &Service{
		accounts:     accounts,
		hasher:       hasher,
		tokens:       tokens,
		ttl:          opts.TokenTTL,
		autoActivate: opts.AutoActivate,
		dummyDigest:  dummy,
	}, nil
}

type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Profile   Profile
}

// Login verifies the credentials and issues a session token. Unknown usernames,
// wrong passwords and inactive accounts all fail with ErrInvalidCredentials.
func (s *Service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	account, err := s.accounts.AccountByUsername(ctx, username)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("find account: %w", err)
		}
		// Burn the same hashing time as a real comparison
		_, _ = s.hasher.Verify(password, s.dummyDigest)
		return nil, ErrInvalidCredentials
	}

	match, err := s.hasher.Verify(password, account.Password)
	if err != nil {
		return nil, fmt.Errorf("verify password of account %d: %w", account.ID, err)
	}
	if !match || !account.IsActive {
		return nil, ErrInvalidCredentials
	}

	user := &jwt.User{
		ID:       account.ID,
		Username: account.Username,
		Role:     account.Role,
		Grade:    account.Grade,
	}
	token, err := s.tokens.SignToken(user, s.ttl)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &LoginResult{
		Token:     token,
		ExpiresAt: time.Unix(user.Expires, 0),
		Profile:   ProfileOf(account),
	}, nil
}

type Registration struct {
	Username       string
	Password       string
	Email          string
	FirstNames     string
	LastNames      string
	RUT            string
	Phone          string
	Address        string
	Profession     string
	Occupation     string
	BirthDate      *time.Time
	InitiationDate *time.Time
}

type RegistrationResult struct {
	AccountID uint
	MemberID  *uint // nil when no names were supplied
	Active    bool
}

// Register creates a general apprentice account, preceded by its member profile
// when both name parts are present.
func (s *Service) Register(ctx context.Context, reg Registration) (*RegistrationResult, error) {
	// Username must be free
	if _, err := s.accounts.AccountByUsername(ctx, reg.Username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, store.ErrNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}

	// A member profile is only created when both name fields are given
	withMember := reg.FirstNames != "" && reg.LastNames != ""

	rut := strings.TrimSpace(reg.RUT)
	if withMember && rut != "" {
		if _, err := s.accounts.MemberByRUT(ctx, rut); err == nil {
			return nil, ErrRUTTaken
		} else if !errors.Is(err, store.ErrNotFound) {
			return nil, fmt.Errorf("check rut: %w", err)
		}
	}

	digest, err := s.hasher.Hash(reg.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &models.Account{
		Username: reg.Username,
		Email:    reg.Email,
		Password: digest,
		Role:     models.RoleGeneral,
		Grade:    models.GradeApprentice,
		IsActive: s.autoActivate,
	}

	var member *models.Member
	if withMember {
		member = &models.Member{
			FirstNames:     reg.FirstNames,
			LastNames:      reg.LastNames,
			Grade:          models.GradeApprentice,
			Active:         true,
			Email:          reg.Email,
			Phone:          reg.Phone,
			Address:        reg.Address,
			Profession:     reg.Profession,
			Occupation:     reg.Occupation,
			BirthDate:      reg.BirthDate,
			InitiationDate: reg.InitiationDate,
		}
		if rut != "" {
			member.RUT = &rut
		}
		displayName := member.FullName()
		account.DisplayName = &displayName
	}

	if err := s.accounts.CreateAccount(ctx, account, member); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			// Lost a race against a concurrent registration
			return nil, ErrUsernameTaken
		}
		return nil, fmt.Errorf("create account: %w", err)
	}

	return &RegistrationResult{
		AccountID: account.ID,
		MemberID:  account.MemberID,
		Active:    account.IsActive,
	}, nil
}

// Profile loads the current public profile of an account.
func (s *Service) Profile(ctx context.Context, id uint) (*Profile, error) {
	account, err := s.accounts.AccountByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidAccount
		}
		return nil, fmt.Errorf("find account: %w", err)
	}

	profile := ProfileOf(account)
	return &profile, nil
}
