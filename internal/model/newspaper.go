package model

import (
	"time"

	"github.com/google/uuid"
)

// Layout is the page layout variant of a published issue.
type Layout string

const (
	LayoutClassic  Layout = "classic"
	LayoutMagazine Layout = "magazine"
	LayoutGrid     Layout = "grid"
)

// Valid reports whether l is a known layout variant.
func (l Layout) Valid() bool {
	switch l {
	case LayoutClassic, LayoutMagazine, LayoutGrid:
		return true
	}
	return false
}

// IssueStatus is the state of a newspaper issue. Composition happens in an
// unpersisted draft value, so a persisted issue is always published.
type IssueStatus string

const IssuePublished IssueStatus = "published"

// Newspaper is a published issue: a frozen, ordered list of article
// references. Once Status is published no operation may alter it; article
// ids that no longer resolve are skipped at render time.
type Newspaper struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	PublishDate string      `json:"publish_date"` // calendar date (YYYY-MM-DD), independent of PublishedAt
	ArticleIDs  []uuid.UUID `json:"articles"`
	Layout      Layout      `json:"layout"`
	Status      IssueStatus `json:"status"`
	PublishedAt time.Time   `json:"published_at"`
}
