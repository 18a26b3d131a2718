package service

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"digishield-backend/internal/domain"
)

func writeFile(t *testing.T, dir, name string) {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))
}

func TestMediaService_Sync(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "gallery/cyber-safety_tips.png")
	writeFile(t, dir, "gallery/team-photo.jpg")
	writeFile(t, dir, "notes.txt")

	repo := new(mockMediaRepo)
	svc := NewMediaService(repo, dir, "gallery")

	// One of the two images already exists; only the other is inserted.
	repo.On("ExistingURLs", mock.Anything, mock.AnythingOfType("[]string")).
		Return(map[string]bool{"/gallery/team-photo.jpg": true}, nil).Once()
	repo.On("Insert", mock.Anything, mock.MatchedBy(func(items []domain.MediaItem) bool {
		return len(items) == 1 &&
			items[0].ImageURL == "/gallery/cyber-safety_tips.png" &&
			items[0].Title == "Cyber Safety Tips" &&
			items[0].Category == "gallery"
	})).Return(1, nil).Once()

	result, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Scanned, "non-image files are skipped")
	assert.Equal(t, 1, result.Inserted)
	repo.AssertExpectations(t)
}

func TestMediaService_Sync_NothingNew(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "logo.svg")

	repo := new(mockMediaRepo)
	svc := NewMediaService(repo, dir, "gallery")

	repo.On("ExistingURLs", mock.Anything, []string{"/logo.svg"}).
		Return(map[string]bool{"/logo.svg": true}, nil).Once()

	result, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Inserted)
	repo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestMediaService_Sync_MissingDirectory(t *testing.T) {
	repo := new(mockMediaRepo)
	svc := NewMediaService(repo, filepath.Join(t.TempDir(), "nope"), "gallery")

	_, err := svc.Sync(context.Background())
	assert.Error(t, err)
	repo.AssertNotCalled(t, "ExistingURLs", mock.Anything, mock.Anything)
}

func TestTitleFromFilename(t *testing.T) {
	cases := map[string]string{
		"cyber-safety_tips.png": "Cyber Safety Tips",
		"team-photo.jpg":        "Team Photo",
		"logo.svg":              "Logo",
		"a__b--c.webp":          "A B C",
	}
	for in, want := range cases {
		assert.Equal(t, want, titleFromFilename(in), in)
	}
}
