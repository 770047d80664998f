package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pressroom/internal/errors"
	"pressroom/internal/model"
	"pressroom/internal/policy"
	"pressroom/internal/store"
)

// IdentityService owns the account collection. Accounts are created at
// signup, never deleted, and change only through AssignRole.
type IdentityService interface {
	Login(ctx context.Context, email string) (*model.Account, error)
	QuickLogin(ctx context.Context, role model.Role) (*model.Account, error)
	Signup(ctx context.Context, name, email, memberID string) (*model.Account, error)
	AssignRole(ctx context.Context, actor model.Account, targetID uuid.UUID, newRole model.Role) (*model.Account, error)
	GetAccount(ctx context.Context, id uuid.UUID) (*model.Account, error)
	Accounts(ctx context.Context) []model.Account
}

type identityService struct {
	mu       sync.Mutex
	accounts []model.Account
	store    store.Store
	log      *zap.Logger
}

// NewIdentityService loads the account collection. An empty or absent
// collection is seeded with the single default administrator and written
// back immediately, so the system is never without an admin.
func NewIdentityService(ctx context.Context, st store.Store, log *zap.Logger) (IdentityService, error) {
	s := &identityService{store: st, log: log}

	doc, err := st.Read(ctx, store.KeyAccounts)
	if err != nil {
		return nil, fmt.Errorf("read accounts: %w", err)
	}
	if doc != nil {
		if err := json.Unmarshal(doc, &s.accounts); err != nil {
			return nil, fmt.Errorf("decode accounts: %w", err)
		}
	}
	if len(s.accounts) == 0 {
		admin := model.DefaultAdmin()
		s.accounts = []model.Account{admin}
		s.persist(ctx)
		log.Info("seeded default administrator", zap.String("email", admin.Email))
	}
	return s, nil
}

// persist writes the full account collection through to the store. The
// in-memory collection stays authoritative even when the write fails.
func (s *identityService) persist(ctx context.Context) {
	doc, err := json.Marshal(s.accounts)
	if err != nil {
		s.log.Error("encode accounts", zap.Error(err))
		return
	}
	_ = s.store.Write(ctx, store.KeyAccounts, doc)
}

// Login matches the email exactly (case-sensitive) against existing accounts.
func (s *identityService) Login(ctx context.Context, email string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].Email == email {
			account := s.accounts[i]
			return &account, nil
		}
	}
	return nil, errors.ErrAccountNotFound
}

// QuickLogin picks the first account holding the given role. Used by the
// demo login shortcuts.
func (s *identityService) QuickLogin(ctx context.Context, role model.Role) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].Role == role {
			account := s.accounts[i]
			return &account, nil
		}
	}
	return nil, errors.ErrAccountNotFound
}

// Signup creates a new account. Self-registration always produces a
// reporter; elevated roles are only reachable through AssignRole.
func (s *identityService) Signup(ctx context.Context, name, email, memberID string) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account := model.Account{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Role:     model.RoleReporter,
		MemberID: memberID,
		JoinedAt: time.Now().UTC(),
	}
	s.accounts = append(s.accounts, account)
	s.persist(ctx)
	return &account, nil
}

// AssignRole delegates the decision to the policy predicate and mutates
// the target's role on success. A refused assignment leaves everything
// untouched.
func (s *identityService) AssignRole(ctx context.Context, actor model.Account, targetID uuid.UUID, newRole model.Role) (*model.Account, error) {
	if !newRole.Valid() {
		return nil, errors.ErrInvalidRole
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.accounts {
		if s.accounts[i].ID == targetID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, errors.ErrAccountNotFound
	}

	if !policy.CanAssignRole(actor, s.accounts[idx], newRole) {
		return nil, errors.ErrPermissionDenied
	}

	s.accounts[idx].Role = newRole
	s.persist(ctx)
	account := s.accounts[idx]
	return &account, nil
}

func (s *identityService) GetAccount(ctx context.Context, id uuid.UUID) (*model.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.accounts {
		if s.accounts[i].ID == id {
			account := s.accounts[i]
			return &account, nil
		}
	}
	return nil, errors.ErrAccountNotFound
}

// Accounts returns a copy of the full account collection.
func (s *identityService) Accounts(ctx context.Context) []model.Account {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Account, len(s.accounts))
	copy(out, s.accounts)
	return out
}
