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

	"pressroom/internal/errors"
	"pressroom/internal/model"
	"pressroom/internal/policy"
	"pressroom/internal/store"
)

// ArticleInput carries the author-editable fields of an article plus the
// save target: the editor explicitly chooses between keeping a draft and
// submitting for review.
type ArticleInput struct {
	Title    string
	Content  string
	Category string
	Image    string
	Status   model.ArticleStatus // draft or pending
}

// EditorialService owns the article collection and its lifecycle:
// draft -> pending -> approved | rejected. Review transitions are one-way
// and only defined out of pending; an author pushes a rejected article back
// through the normal edit+submit path.
type EditorialService interface {
	List(ctx context.Context) []model.Article
	Get(ctx context.Context, id uuid.UUID) (*model.Article, error)
	ListByAuthor(ctx context.Context, authorID uuid.UUID) []model.Article
	ListPending(ctx context.Context, actor model.Account) ([]model.Article, error)
	ListApproved(ctx context.Context) []model.Article
	Create(ctx context.Context, actor model.Account, input ArticleInput) (*model.Article, error)
	Update(ctx context.Context, actor model.Account, id uuid.UUID, input ArticleInput) (*model.Article, error)
	Review(ctx context.Context, actor model.Account, id uuid.UUID, approve bool) (*model.Article, error)
	Delete(ctx context.Context, actor model.Account, id uuid.UUID) error
}

type editorialService struct {
	mu       sync.Mutex
	articles []model.Article
	store    store.Store
	settings SettingsService
	log      *zap.Logger
}

// NewEditorialService loads the article collection; an absent snapshot is
// simply an empty newsroom.
func NewEditorialService(ctx context.Context, st store.Store, settings SettingsService, log *zap.Logger) (EditorialService, error) {
	s := &editorialService{store: st, settings: settings, log: log}

	doc, err := st.Read(ctx, store.KeyArticles)
	if err != nil {
		return nil, fmt.Errorf("read articles: %w", err)
	}
	if doc != nil {
		if err := json.Unmarshal(doc, &s.articles); err != nil {
			return nil, fmt.Errorf("decode articles: %w", err)
		}
	}
	return s, nil
}

func (s *editorialService) persist(ctx context.Context) {
	doc, err := json.Marshal(s.articles)
	if err != nil {
		s.log.Error("encode articles", zap.Error(err))
		return
	}
	_ = s.store.Write(ctx, store.KeyArticles, doc)
}

// validateInput checks the save target and required fields. A pending
// target additionally requires real text to survive markup stripping, so
// an editor full of empty paragraphs cannot be submitted for review.
func (s *editorialService) validateInput(ctx context.Context, input ArticleInput) error {
	if input.Status != model.StatusDraft && input.Status != model.StatusPending {
		return fmt.Errorf("%w: save target must be draft or pending", errors.ErrValidation)
	}
	if strings.TrimSpace(input.Title) == "" {
		return errors.ErrTitleRequired
	}
	if input.Content == "" {
		return errors.ErrContentRequired
	}
	if input.Status == model.StatusPending && !hasContent(input.Content) {
		return errors.ErrContentRequired
	}
	if !s.settings.Get(ctx).HasCategory(input.Category) {
		return errors.ErrUnknownCategory
	}
	return nil
}

func (s *editorialService) List(ctx context.Context) []model.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(model.Article) bool { return true })
}

func (s *editorialService) Get(ctx context.Context, id uuid.UUID) (*model.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := s.index(id); idx >= 0 {
		article := s.articles[idx]
		return &article, nil
	}
	return nil, errors.ErrArticleNotFound
}

func (s *editorialService) ListByAuthor(ctx context.Context, authorID uuid.UUID) []model.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(a model.Article) bool { return a.AuthorID == authorID })
}

// ListPending is the review queue; reading it already requires the review
// capability so reporters cannot see each other's unreviewed work.
func (s *editorialService) ListPending(ctx context.Context, actor model.Account) ([]model.Article, error) {
	if !policy.Allows(actor, policy.ReviewArticles) {
		return nil, errors.ErrPermissionDenied
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(a model.Article) bool { return a.Status == model.StatusPending }), nil
}

// ListApproved is the candidate pool for newspaper composition. The
// returned slice is a snapshot, not a live view.
func (s *editorialService) ListApproved(ctx context.Context) []model.Article {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter(func(a model.Article) bool { return a.Status == model.StatusApproved })
}

func (s *editorialService) Create(ctx context.Context, actor model.Account, input ArticleInput) (*model.Article, error) {
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	article := model.Article{
		ID:        uuid.New(),
		Title:     input.Title,
		Content:   input.Content,
		Author:    actor.Name,
		AuthorID:  actor.ID,
		Category:  input.Category,
		Image:     input.Image,
		Status:    input.Status,
		CreatedAt: time.Now().UTC(),
	}
	s.articles = append(s.articles, article)
	s.persist(ctx)
	return &article, nil
}

func (s *editorialService) Update(ctx context.Context, actor model.Account, id uuid.UUID, input ArticleInput) (*model.Article, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return nil, errors.ErrArticleNotFound
	}
	if !policy.CanEditArticle(actor, s.articles[idx]) {
		return nil, errors.ErrPermissionDenied
	}
	if err := s.validateInput(ctx, input); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	article := &s.articles[idx]
	article.Title = input.Title
	article.Content = input.Content
	article.Category = input.Category
	article.Image = input.Image
	article.Status = input.Status
	article.UpdatedAt = &now

	s.persist(ctx)
	out := *article
	return &out, nil
}

// Review decides a pending article. There is no re-review: approved and
// rejected are final as far as reviewers are concerned.
func (s *editorialService) Review(ctx context.Context, actor model.Account, id uuid.UUID, approve bool) (*model.Article, error) {
	if !policy.Allows(actor, policy.ReviewArticles) {
		return nil, errors.ErrPermissionDenied
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return nil, errors.ErrArticleNotFound
	}
	if s.articles[idx].Status != model.StatusPending {
		return nil, errors.ErrInvalidTransition
	}

	now := time.Now().UTC()
	if approve {
		s.articles[idx].Status = model.StatusApproved
	} else {
		s.articles[idx].Status = model.StatusRejected
	}
	s.articles[idx].UpdatedAt = &now

	s.persist(ctx)
	article := s.articles[idx]
	return &article, nil
}

// Delete removes the article outright. Published issues keep their article
// id lists untouched; a dangling reference resolves to "absent" at render
// time.
func (s *editorialService) Delete(ctx context.Context, actor model.Account, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.index(id)
	if idx < 0 {
		return errors.ErrArticleNotFound
	}
	if !policy.CanDeleteArticle(actor, s.articles[idx]) {
		return errors.ErrPermissionDenied
	}

	s.articles = append(s.articles[:idx], s.articles[idx+1:]...)
	s.persist(ctx)
	return nil
}

func (s *editorialService) index(id uuid.UUID) int {
	for i := range s.articles {
		if s.articles[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *editorialService) filter(keep func(model.Article) bool) []model.Article {
	out := make([]model.Article, 0, len(s.articles))
	for _, a := range s.articles {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}
