package model

import (
	"time"

	"github.com/google/uuid"
)

// ArticleStatus is the lifecycle state of an article.
type ArticleStatus string

const (
	StatusDraft    ArticleStatus = "draft"
	StatusPending  ArticleStatus = "pending"
	StatusApproved ArticleStatus = "approved"
	StatusRejected ArticleStatus = "rejected"
)

// Valid reports whether s is a known article status.
func (s ArticleStatus) Valid() bool {
	switch s {
	case StatusDraft, StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Article is a piece written by a reporter. The body is an opaque markup
// blob produced by the rich-text editor; the core never interprets it
// beyond the empty-content check at submit time.
type Article struct {
	ID        uuid.UUID     `json:"id"`
	Title     string        `json:"title"`
	Content   string        `json:"content"`
	Author    string        `json:"author"`    // denormalized display name
	AuthorID  uuid.UUID     `json:"author_id"` // ownership key
	Category  string        `json:"category"`
	Image     string        `json:"image,omitempty"` // cover image reference, optional
	Status    ArticleStatus `json:"status"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
}
