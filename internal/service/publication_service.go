package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pressroom/internal/cache"
	"pressroom/internal/errors"
	"pressroom/internal/model"
	"pressroom/internal/policy"
	"pressroom/internal/store"
)

// Published issues never change, so cached reads cannot go stale.
const issueCacheTTL = time.Hour

// IssueDraft is an unpersisted issue being composed. The selection is a
// toggle set keeping insertion order; nothing is written anywhere until
// the draft is finalized.
type IssueDraft struct {
	Title       string
	PublishDate string
	Layout      model.Layout
	selection   []uuid.UUID
}

// NewIssueDraft starts composing an issue. An empty layout defaults to classic.
func NewIssueDraft(title, publishDate string, layout model.Layout) *IssueDraft {
	if layout == "" {
		layout = model.LayoutClassic
	}
	return &IssueDraft{Title: title, PublishDate: publishDate, Layout: layout}
}

// Toggle adds the article to the selection, or removes it if already selected.
func (d *IssueDraft) Toggle(articleID uuid.UUID) {
	for i, id := range d.selection {
		if id == articleID {
			d.selection = append(d.selection[:i], d.selection[i+1:]...)
			return
		}
	}
	d.selection = append(d.selection, articleID)
}

// Selected returns the selection in insertion order.
func (d *IssueDraft) Selected() []uuid.UUID {
	out := make([]uuid.UUID, len(d.selection))
	copy(out, d.selection)
	return out
}

// RenderedIssue is an issue together with its resolved articles. Articles
// whose ids no longer exist are simply absent.
type RenderedIssue struct {
	Issue    model.Newspaper `json:"issue"`
	Articles []model.Article `json:"articles"`
}

// PublicationService owns the newspaper collection. Issues are immutable
// once published.
type PublicationService interface {
	ApprovedArticles(ctx context.Context) []model.Article
	Finalize(ctx context.Context, actor model.Account, draft *IssueDraft) (*model.Newspaper, error)
	List(ctx context.Context) []model.Newspaper
	Get(ctx context.Context, id uuid.UUID) (*model.Newspaper, error)
	Render(ctx context.Context, id uuid.UUID) (*RenderedIssue, error)
}

type publicationService struct {
	mu         sync.Mutex
	newspapers []model.Newspaper
	store      store.Store
	editorial  EditorialService
	cache      *cache.Client
	log        *zap.Logger
}

// NewPublicationService loads the newspaper collection; an absent snapshot
// is an empty archive.
func NewPublicationService(ctx context.Context, st store.Store, editorial EditorialService, cache *cache.Client, log *zap.Logger) (PublicationService, error) {
	s := &publicationService{store: st, editorial: editorial, cache: cache, log: log}

	doc, err := st.Read(ctx, store.KeyNewspapers)
	if err != nil {
		return nil, fmt.Errorf("read newspapers: %w", err)
	}
	if doc != nil {
		if err := json.Unmarshal(doc, &s.newspapers); err != nil {
			return nil, fmt.Errorf("decode newspapers: %w", err)
		}
	}
	return s, nil
}

func (s *publicationService) persist(ctx context.Context) {
	doc, err := json.Marshal(s.newspapers)
	if err != nil {
		s.log.Error("encode newspapers", zap.Error(err))
		return
	}
	_ = s.store.Write(ctx, store.KeyNewspapers, doc)
}

func (s *publicationService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("newspaper:%s", id.String())
}

// ApprovedArticles is the candidate pool for composition: a snapshot taken
// at call time, not a live view.
func (s *publicationService) ApprovedArticles(ctx context.Context) []model.Article {
	return s.editorial.ListApproved(ctx)
}

// Finalize turns a draft into a published issue. All checks run before any
// mutation: publish capability, non-empty title, valid layout, at least one
// selection, and every selected article approved at this moment. A failed
// check leaves the newspaper collection unchanged.
func (s *publicationService) Finalize(ctx context.Context, actor model.Account, draft *IssueDraft) (*model.Newspaper, error) {
	if !policy.Allows(actor, policy.PublishNewspaper) {
		return nil, errors.ErrPermissionDenied
	}
	if strings.TrimSpace(draft.Title) == "" {
		return nil, errors.ErrTitleRequired
	}
	if !draft.Layout.Valid() {
		return nil, errors.ErrInvalidLayout
	}
	selected := draft.Selected()
	if len(selected) == 0 {
		return nil, errors.ErrNoArticlesSelected
	}
	for _, id := range selected {
		article, err := s.editorial.Get(ctx, id)
		if err != nil {
			return nil, errors.ErrArticleNotApproved
		}
		if article.Status != model.StatusApproved {
			return nil, errors.ErrArticleNotApproved
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	issue := model.Newspaper{
		ID:          uuid.New(),
		Title:       draft.Title,
		PublishDate: draft.PublishDate,
		ArticleIDs:  selected,
		Layout:      draft.Layout,
		Status:      model.IssuePublished,
		PublishedAt: time.Now().UTC(),
	}
	s.newspapers = append(s.newspapers, issue)
	s.persist(ctx)

	s.cache.SetJSON(ctx, s.cacheKey(issue.ID), issue, issueCacheTTL)
	return &issue, nil
}

func (s *publicationService) List(ctx context.Context) []model.Newspaper {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Newspaper, len(s.newspapers))
	copy(out, s.newspapers)
	return out
}

func (s *publicationService) Get(ctx context.Context, id uuid.UUID) (*model.Newspaper, error) {
	var cached model.Newspaper
	if s.cache.GetJSON(ctx, s.cacheKey(id), &cached) {
		return &cached, nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.newspapers {
		if s.newspapers[i].ID == id {
			issue := s.newspapers[i]
			s.cache.SetJSON(ctx, s.cacheKey(id), issue, issueCacheTTL)
			return &issue, nil
		}
	}
	return nil, errors.ErrNewspaperNotFound
}

// Render resolves the issue's article references freshly on every call.
// Articles deleted since publication are skipped rather than erroring; the
// frozen id list itself is never rewritten.
func (s *publicationService) Render(ctx context.Context, id uuid.UUID) (*RenderedIssue, error) {
	issue, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	articles := make([]model.Article, 0, len(issue.ArticleIDs))
	for _, articleID := range issue.ArticleIDs {
		article, err := s.editorial.Get(ctx, articleID)
		if err != nil {
			continue
		}
		articles = append(articles, *article)
	}
	return &RenderedIssue{Issue: *issue, Articles: articles}, nil
}
