package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

// HighScoreFile persists a single best score as a decimal integer in a text file.
// It is safe for concurrent use; SSH sessions share one instance.
type HighScoreFile struct {
	path string
	mu   sync.Mutex
}

// NewHighScoreFile returns an adapter for the file at path (~ is expanded).
// The file does not need to exist.
func NewHighScoreFile(path string) (*HighScoreFile, error) {
	expanded, err := ExpandPath(path)
	if err != nil {
		return nil, err
	}
	return &HighScoreFile{path: expanded}, nil
}

// Path returns the resolved file location.
func (f *HighScoreFile) Path() string {
	return f.path
}

// Load returns the stored high score.
// A missing, unreadable, non-numeric or negative file counts as 0.
func (f *HighScoreFile) Load() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	data, err := os.ReadFile(f.path)
	if err != nil {
		return 0
	}
	return parseHighScore(data)
}

func parseHighScore(data []byte) int {
	n, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Save overwrites the file with score, creating parent directories as needed.
// The file is only written when score beats the value currently stored, so
// sessions sharing the file can never lower it.
func (f *HighScoreFile) Save(score int) error {
	if score < 0 {
		return fmt.Errorf("storage: negative high score %d", score)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	if data, err := os.ReadFile(f.path); err == nil && parseHighScore(data) >= score {
		return nil
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return fmt.Errorf("storage: cannot create directory for %s: %w", f.path, err)
	}
	if err := os.WriteFile(f.path, []byte(strconv.Itoa(score)), 0o644); err != nil {
		return fmt.Errorf("storage: cannot write high score: %w", err)
	}
	return nil
}
