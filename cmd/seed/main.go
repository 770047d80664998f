package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"pressroom/internal/config"
	"pressroom/internal/db"
	"pressroom/internal/model"
	"pressroom/internal/store"
)

// Seeds a demo newsroom: one member per role and a few articles in various
// lifecycle states, so the quick-login buttons and the review queue have
// something to show. Existing data is left alone.
func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	logger, err := zap.NewDevelopment()
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	gormDB, err := db.Open(cfg.MySQLDSN, cfg.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	snapshots, err := store.NewSnapshotStore(gormDB, logger)
	if err != nil {
		log.Fatalf("Failed to init snapshot store: %v", err)
	}

	seeded, err := seedDemo(context.Background(), snapshots)
	if err != nil {
		log.Fatalf("Failed to seed: %v", err)
	}
	if !seeded {
		log.Println("Store already holds data, nothing to do")
		return
	}
	log.Println("Seeded demo accounts and articles")
}

// seedDemo writes the demo newsroom and reports whether it did. It only
// runs against a completely fresh store: if any collection it would write
// already exists (a booted server has at least the bootstrapped admin),
// nothing is touched.
func seedDemo(ctx context.Context, st store.Store) (bool, error) {
	for _, key := range []string{store.KeyAccounts, store.KeyArticles} {
		doc, err := st.Read(ctx, key)
		if err != nil {
			return false, fmt.Errorf("read %s: %w", key, err)
		}
		if doc != nil {
			return false, nil
		}
	}

	now := time.Now().UTC()
	chief := demoAccount("Morgan Avery", "morgan@newspaper.com", model.RoleChiefEditor, now)
	editor := demoAccount("Jamie Ortiz", "jamie@newspaper.com", model.RoleEditor, now)
	reporterOne := demoAccount("Riley Chen", "riley@newspaper.com", model.RoleReporter, now)
	reporterTwo := demoAccount("Sam Keller", "sam@newspaper.com", model.RoleReporter, now)

	accounts := []model.Account{
		model.DefaultAdmin(),
		chief,
		editor,
		reporterOne,
		reporterTwo,
	}

	articles := []model.Article{
		demoArticle(reporterOne, "Spring Fair Draws Record Crowd",
			"<p>The annual spring fair brought more visitors than ever before.</p>",
			"Events", model.StatusApproved, now),
		demoArticle(reporterOne, "Interview: The New Library Director",
			"<p>We sat down with the incoming director to talk plans and priorities.</p>",
			"Interviews", model.StatusPending, now),
		demoArticle(reporterTwo, "Opinion: Why We Need More Bike Lanes",
			"<p>Cycling infrastructure is long overdue in our town.</p>",
			"Opinion", model.StatusDraft, now),
	}

	if err := writeSnapshot(ctx, st, store.KeyAccounts, accounts); err != nil {
		return false, fmt.Errorf("write accounts: %w", err)
	}
	if err := writeSnapshot(ctx, st, store.KeyArticles, articles); err != nil {
		return false, fmt.Errorf("write articles: %w", err)
	}
	return true, nil
}

func demoAccount(name, email string, role model.Role, joined time.Time) model.Account {
	return model.Account{
		ID:       uuid.New(),
		Name:     name,
		Email:    email,
		Role:     role,
		JoinedAt: joined,
	}
}

func demoArticle(author model.Account, title, content, category string, status model.ArticleStatus, created time.Time) model.Article {
	return model.Article{
		ID:        uuid.New(),
		Title:     title,
		Content:   content,
		Author:    author.Name,
		AuthorID:  author.ID,
		Category:  category,
		Status:    status,
		CreatedAt: created,
	}
}

func writeSnapshot(ctx context.Context, st store.Store, key string, v interface{}) error {
	doc, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return st.Write(ctx, key, doc)
}
