package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHighScoreFileLoad(t *testing.T) {
	tests := []struct {
		name     string
		content  *string
		expected int
	}{
		{"absent file", nil, 0},
		{"plain number", strp("7"), 7},
		{"trailing newline", strp("42\n"), 42},
		{"non-numeric", strp("abc"), 0},
		{"empty", strp(""), 0},
		{"negative", strp("-3"), 0},
		{"float", strp("3.5"), 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "high_score.txt")
			if tc.content != nil {
				if err := os.WriteFile(path, []byte(*tc.content), 0o600); err != nil {
					t.Fatal(err)
				}
			}

			f, err := NewHighScoreFile(path)
			if err != nil {
				t.Fatalf("NewHighScoreFile() failed: %v", err)
			}
			if got := f.Load(); got != tc.expected {
				t.Errorf("Load() = %d, expected %d", got, tc.expected)
			}
		})
	}
}

func TestHighScoreFileSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "high_score.txt")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("9\n# stale trailer"), 0o600); err != nil {
		t.Fatal(err)
	}

	f, err := NewHighScoreFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Save(123); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("file not written: %v", err)
	}
	if string(data) != "123" {
		t.Errorf("file content = %q, expected whole file to be replaced with %q", data, "123")
	}
	if got := f.Load(); got != 123 {
		t.Errorf("Load() after Save = %d, expected 123", got)
	}
}

func TestHighScoreFileSaveCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "high_score.txt")
	f, err := NewHighScoreFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Save(1); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}
	if got := f.Load(); got != 1 {
		t.Errorf("Load() = %d, expected 1", got)
	}
}

func TestHighScoreFileNeverLowers(t *testing.T) {
	f, err := NewHighScoreFile(filepath.Join(t.TempDir(), "high_score.txt"))
	if err != nil {
		t.Fatal(err)
	}

	// Two sessions that both loaded 0 finish out of order
	if err := f.Save(8); err != nil {
		t.Fatal(err)
	}
	if err := f.Save(6); err != nil {
		t.Fatal(err)
	}

	if got := f.Load(); got != 8 {
		t.Errorf("Load() = %d, a lower score must not replace 8", got)
	}
}

func TestHighScoreFileRejectsNegative(t *testing.T) {
	f, err := NewHighScoreFile(filepath.Join(t.TempDir(), "hs.txt"))
	if err != nil {
		t.Fatal(err)
	}
	if err := f.Save(-1); err == nil {
		t.Error("Save(-1) should fail")
	}
}

func strp(s string) *string { return &s }
