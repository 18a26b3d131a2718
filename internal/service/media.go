package service

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"digishield-backend/internal/domain"
	"digishield-backend/internal/logger"
	"digishield-backend/internal/repository"
)

var imageExtensions = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
	".svg":  true,
}

type mediaService struct {
	repo      repository.MediaRepository
	publicDir string
	category  string
}

func NewMediaService(repo repository.MediaRepository, publicDir, category string) MediaService {
	return &mediaService{repo: repo, publicDir: publicDir, category: category}
}

// Sync walks the public asset directory and inserts any image not already
// present in the media table. De-duplication is by URL, so repeated runs
// are idempotent.
func (s *mediaService) Sync(ctx context.Context) (*domain.MediaSyncResult, error) {
	if _, err := os.Stat(s.publicDir); err != nil {
		return nil, fmt.Errorf("public directory not found: %w", err)
	}

	var files []string
	err := filepath.WalkDir(s.publicDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if imageExtensions[strings.ToLower(filepath.Ext(d.Name()))] {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk public directory: %w", err)
	}

	items := make([]domain.MediaItem, 0, len(files))
	urls := make([]string, 0, len(files))
	for _, path := range files {
		rel, err := filepath.Rel(s.publicDir, path)
		if err != nil {
			return nil, err
		}
		url := "/" + filepath.ToSlash(rel)
		items = append(items, domain.MediaItem{
			Title:    titleFromFilename(filepath.Base(path)),
			Category: s.category,
			ImageURL: url,
		})
		urls = append(urls, url)
	}

	existing, err := s.repo.ExistingURLs(ctx, urls)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing media: %w", err)
	}

	toInsert := make([]domain.MediaItem, 0, len(items))
	for _, item := range items {
		if !existing[item.ImageURL] {
			toInsert = append(toInsert, item)
		}
	}

	inserted := 0
	if len(toInsert) > 0 {
		inserted, err = s.repo.Insert(ctx, toInsert)
		if err != nil {
			return nil, fmt.Errorf("failed to insert media items: %w", err)
		}
	}

	logger.Info("Media sync completed", "scanned", len(files), "inserted", inserted)
	return &domain.MediaSyncResult{Scanned: len(files), Inserted: inserted}, nil
}

// titleFromFilename turns "cyber-safety_tips.png" into "Cyber Safety Tips":
// separators to spaces, extension stripped, word starts upper-cased.
func titleFromFilename(name string) string {
	spaced := strings.Map(func(r rune) rune {
		if r == '-' || r == '_' {
			return ' '
		}
		return r
	}, name)
	spaced = strings.Join(strings.Fields(spaced), " ")
	if ext := filepath.Ext(spaced); ext != "" {
		spaced = strings.TrimSuffix(spaced, ext)
	}

	var b strings.Builder
	startOfWord := true
	for _, r := range spaced {
		if startOfWord {
			b.WriteRune(unicode.ToUpper(r))
		} else {
			b.WriteRune(r)
		}
		startOfWord = r == ' '
	}
	return strings.TrimSpace(b.String())
}
