// bookfetch populates the catalog from the Aladin open API: fetch the
// bestseller list and upsert each record by ISBN-13. Run it as a one-off; it
// is idempotent.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/shelftalk/shelftalk/config"
	"github.com/shelftalk/shelftalk/internal/model"
	"github.com/shelftalk/shelftalk/internal/repository"
	"github.com/shelftalk/shelftalk/internal/service"
	"github.com/shelftalk/shelftalk/pkg/database"
	"github.com/shelftalk/shelftalk/pkg/logger"
)

const aladinItemList = "http://www.aladin.co.kr/ttb/api/ItemList.aspx"

type aladinItem struct {
	ISBN13      string `json:"isbn13"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	Publisher   string `json:"publisher"`
	Cover       string `json:"cover"`
	Description string `json:"description"`
}

type aladinResponse struct {
	Item []aladinItem `json:"item"`
}

func fetchBestsellers(ctx context.Context, ttbKey string) ([]aladinItem, error) {
	params := url.Values{}
	params.Set("ttbkey", ttbKey)
	params.Set("QueryType", "Bestseller")
	params.Set("MaxResults", "50")
	params.Set("start", "1")
	params.Set("SearchTarget", "Book")
	params.Set("output", "js")
	params.Set("Version", "20131101")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, aladinItemList+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	client := &http.Client{Timeout: 30 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("aladin api: unexpected status %d", resp.StatusCode)
	}
	var out aladinResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out.Item, nil
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Log.Level, cfg.Log.Development); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ttbKey := cfg.Aladin.TTBKey
	if ttbKey == "" {
		logger.Error("aladin.ttb_key not configured (or APP_ALADIN_TTB_KEY)")
		os.Exit(1)
	}

	db, err := database.InitDB(cfg)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}
	books := service.NewBookService(repository.NewBookRepository(db))

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	items, err := fetchBestsellers(ctx, ttbKey)
	if err != nil {
		logger.Fatal("fetch bestsellers", zap.Error(err))
	}
	logger.Info("fetched items", zap.Int("count", len(items)))

	var created, updated, skipped int
	for _, it := range items {
		if it.ISBN13 == "" {
			skipped++
			continue
		}
		wasCreated, err := books.Upsert(ctx, &model.Book{
			ISBN13:      it.ISBN13,
			Title:       it.Title,
			Author:      it.Author,
			Publisher:   it.Publisher,
			Cover:       it.Cover,
			Description: it.Description,
		})
		if err != nil {
			logger.Warn("upsert failed", zap.String("isbn13", it.ISBN13), zap.Error(err))
			skipped++
			continue
		}
		if wasCreated {
			created++
		} else {
			updated++
		}
		logger.Info("upserted book",
			zap.String("isbn13", it.ISBN13),
			zap.String("title", it.Title),
			zap.Bool("created", wasCreated),
		)
	}
	logger.Info("done", zap.Int("created", created), zap.Int("updated", updated), zap.Int("skipped", skipped))
}
