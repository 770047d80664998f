package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"pressroom/internal/errors"
	"pressroom/internal/model"
	"pressroom/internal/policy"
	"pressroom/internal/store"
)

// SettingsService owns the singleton organization configuration.
type SettingsService interface {
	Get(ctx context.Context) model.OrgSettings
	Update(ctx context.Context, actor model.Account, settings model.OrgSettings) (model.OrgSettings, error)
}

type settingsService struct {
	mu      sync.Mutex
	current model.OrgSettings
	store   store.Store
	log     *zap.Logger
}

// NewSettingsService loads the saved configuration, or falls back to the
// defaults without persisting them; the defaults are only written on the
// first explicit save.
func NewSettingsService(ctx context.Context, st store.Store, log *zap.Logger) (SettingsService, error) {
	s := &settingsService{store: st, log: log}

	doc, err := st.Read(ctx, store.KeyOrgSettings)
	if err != nil {
		return nil, fmt.Errorf("read org settings: %w", err)
	}
	if doc == nil {
		s.current = model.DefaultOrgSettings()
		return s, nil
	}
	if err := json.Unmarshal(doc, &s.current); err != nil {
		return nil, fmt.Errorf("decode org settings: %w", err)
	}
	return s, nil
}

// Get returns a copy of the current configuration.
func (s *settingsService) Get(ctx context.Context) model.OrgSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *settingsService) snapshot() model.OrgSettings {
	out := s.current
	out.Categories = make([]string, len(s.current.Categories))
	copy(out.Categories, s.current.Categories)
	return out
}

// Update replaces the configuration wholesale. Category labels keep their
// order (it is display-significant) and must be unique and non-empty.
func (s *settingsService) Update(ctx context.Context, actor model.Account, settings model.OrgSettings) (model.OrgSettings, error) {
	if !policy.Allows(actor, policy.ManageOrgSettings) {
		return model.OrgSettings{}, errors.ErrPermissionDenied
	}
	if strings.TrimSpace(settings.Name) == "" {
		return model.OrgSettings{}, errors.ErrTitleRequired
	}
	seen := make(map[string]bool, len(settings.Categories))
	for _, label := range settings.Categories {
		if strings.TrimSpace(label) == "" {
			return model.OrgSettings{}, fmt.Errorf("%w: empty category label", errors.ErrValidation)
		}
		if seen[label] {
			return model.OrgSettings{}, errors.ErrDuplicateCategory
		}
		seen[label] = true
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.current = settings
	doc, err := json.Marshal(s.current)
	if err != nil {
		s.log.Error("encode org settings", zap.Error(err))
	} else {
		_ = s.store.Write(ctx, store.KeyOrgSettings, doc)
	}
	return s.snapshot(), nil
}
