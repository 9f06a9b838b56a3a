package auth

import (
	"context"
	"fmt"
	"orpheo-api/app/server/models"
	"orpheo-api/app/server/store"
	"sync"
)

// fakeStore is an in-memory CredentialStore.
type fakeStore struct {
	mu       sync.Mutex
	accounts map[uint]*models.Account
	members  map[uint]*models.Member
	nextID   uint
	writes   int
	err      error // returned by every call when set
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts: map[uint]*models.Account{},
		members:  map[uint]*models.Member{},
	}
}

func (f *fakeStore) add(account *models.Account) *models.Account {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	account.ID = f.nextID
	f.accounts[account.ID] = account
	return account
}

func (f *fakeStore) setActive(id uint, active bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.accounts[id].IsActive = active
}

func (f *fakeStore) AccountByUsername(_ context.Context, username string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, account := range f.accounts {
		if account.Username == username {
			clone := *account
			return &clone, nil
		}
	}
	return nil, fmt.Errorf("find account by username: %w", store.ErrNotFound)
}

func (f *fakeStore) AccountByID(_ context.Context, id uint) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	account, ok := f.accounts[id]
	if !ok {
		return nil, fmt.Errorf("find account by id: %w", store.ErrNotFound)
	}
	clone := *account
	return &clone, nil
}

func (f *fakeStore) CreateAccount(_ context.Context, account *models.Account, member *models.Member) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.accounts {
		if existing.Username == account.Username {
			return fmt.Errorf("create account: %w", store.ErrDuplicate)
		}
	}
	if member != nil {
		f.nextID++
		member.ID = f.nextID
		f.members[member.ID] = member
		account.MemberID = &member.ID
		account.Member = member
	}
	f.nextID++
	account.ID = f.nextID
	f.accounts[account.ID] = account
	f.writes++
	return nil
}

func (f *fakeStore) MemberByRUT(_ context.Context, rut string) (*models.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, member := range f.members {
		if member.RUT != nil && *member.RUT == rut {
			return member, nil
		}
	}
	return nil, fmt.Errorf("find member by rut: %w", store.ErrNotFound)
}
