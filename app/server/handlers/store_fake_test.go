package handlers

import (
	"context"
	"fmt"
	"orpheo-api/app/server/models"
	"orpheo-api/app/server/store"
	"sort"
	"strings"
	"sync"
	"time"
)

// fakeStore keeps everything in maps and mimics the store's error contract.
type fakeStore struct {
	mu sync.Mutex

	accounts  map[uint]*models.Account
	members   map[uint]*models.Member
	documents map[uint]*models.Document
	nextID    uint

	memberReads       int
	createDocumentErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		accounts:  map[uint]*models.Account{},
		members:   map[uint]*models.Member{},
		documents: map[uint]*models.Document{},
	}
}

func (f *fakeStore) id() uint {
	f.nextID++
	return f.nextID
}

func (f *fakeStore) withMember(a *models.Account) *models.Account {
	cp := *a
	if cp.MemberID != nil {
		if m, ok := f.members[*cp.MemberID]; ok {
			mc := *m
			cp.Member = &mc
		}
	}
	return &cp
}

func (f *fakeStore) AccountByUsername(_ context.Context, username string) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.Username == username {
			return f.withMember(a), nil
		}
	}
	return nil, fmt.Errorf("find account by username: %w", store.ErrNotFound)
}

func (f *fakeStore) AccountByID(_ context.Context, id uint) (*models.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if a, ok := f.accounts[id]; ok {
		return f.withMember(a), nil
	}
	return nil, fmt.Errorf("find account by id: %w", store.ErrNotFound)
}

func (f *fakeStore) CreateAccount(_ context.Context, account *models.Account, member *models.Member) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.Username == account.Username {
			return fmt.Errorf("create account: %w", store.ErrDuplicate)
		}
	}
	if member != nil {
		member.ID = f.id()
		mc := *member
		f.members[member.ID] = &mc
		account.MemberID = &member.ID
	}
	account.ID = f.id()
	account.CreatedAt = time.Now()
	ac := *account
	ac.Member = nil
	f.accounts[account.ID] = &ac
	account.Member = member
	return nil
}

func (f *fakeStore) AccountExistsForMember(_ context.Context, memberID uint) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, a := range f.accounts {
		if a.MemberID != nil && *a.MemberID == memberID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) ListMembers(_ context.Context, filter store.MemberFilter, page store.Page) ([]models.Member, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	query := strings.ToLower(filter.Query)
	var matched []models.Member
	for _, m := range f.members {
		if filter.Grade != nil && m.Grade != *filter.Grade {
			continue
		}
		if filter.Active != nil && m.Active != *filter.Active {
			continue
		}
		if query != "" {
			rut := ""
			if m.RUT != nil {
				rut = *m.RUT
			}
			haystack := strings.ToLower(strings.Join([]string{m.FirstNames, m.LastNames, m.Email, rut}, "\n"))
			if !strings.Contains(haystack, query) {
				continue
			}
		}
		matched = append(matched, *m)
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].LastNames < matched[j].LastNames })

	total := int64(len(matched))
	if page.Limit > 0 {
		start := min(page.Offset, len(matched))
		end := min(start+page.Limit, len(matched))
		matched = matched[start:end]
	}
	return matched, total, nil
}

func (f *fakeStore) MemberByID(_ context.Context, id uint) (*models.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.memberReads++
	if m, ok := f.members[id]; ok {
		cp := *m
		return &cp, nil
	}
	return nil, fmt.Errorf("find member by id: %w", store.ErrNotFound)
}

func (f *fakeStore) MemberByRUT(_ context.Context, rut string) (*models.Member, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.members {
		if m.RUT != nil && *m.RUT == rut {
			cp := *m
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("find member by rut: %w", store.ErrNotFound)
}

func (f *fakeStore) CreateMember(_ context.Context, member *models.Member) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	member.ID = f.id()
	member.CreatedAt = time.Now()
	cp := *member
	f.members[member.ID] = &cp
	return nil
}

func (f *fakeStore) SaveMember(_ context.Context, member *models.Member) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	member.UpdatedAt = time.Now()
	cp := *member
	f.members[member.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteMember(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.members[id]; !ok {
		return fmt.Errorf("delete member: %w", store.ErrNotFound)
	}
	for _, d := range f.documents {
		if d.AuthorID != nil && *d.AuthorID == id {
			return fmt.Errorf("delete member: %w", store.ErrInUse)
		}
	}
	delete(f.members, id)
	return nil
}

func (f *fakeStore) ListDocuments(_ context.Context, categories []models.Grade, page store.Page) ([]models.Document, int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var matched []models.Document
	for _, d := range f.documents {
		for _, c := range categories {
			if d.Category == c {
				matched = append(matched, *d)
				break
			}
		}
	}
	sort.Slice(matched, func(i, j int) bool { return matched[i].ID > matched[j].ID })

	total := int64(len(matched))
	if page.Limit > 0 {
		start := min(page.Offset, len(matched))
		end := min(start+page.Limit, len(matched))
		matched = matched[start:end]
	}
	return matched, total, nil
}

func (f *fakeStore) DocumentByID(_ context.Context, id uint) (*models.Document, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if d, ok := f.documents[id]; ok {
		cp := *d
		return &cp, nil
	}
	return nil, fmt.Errorf("find document by id: %w", store.ErrNotFound)
}

func (f *fakeStore) CreateDocument(_ context.Context, document *models.Document) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createDocumentErr != nil {
		return f.createDocumentErr
	}
	if document.AuthorID != nil {
		if _, ok := f.members[*document.AuthorID]; !ok {
			return fmt.Errorf("create document: %w", store.ErrInUse)
		}
	}
	document.ID = f.id()
	document.CreatedAt = time.Now()
	cp := *document
	f.documents[document.ID] = &cp
	return nil
}

func (f *fakeStore) DeleteDocument(_ context.Context, id uint) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.documents[id]; !ok {
		return fmt.Errorf("delete document: %w", store.ErrNotFound)
	}
	delete(f.documents, id)
	return nil
}
