package migrations

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMigrationVersion(t *testing.T) {
	cases := []struct {
		filename string
		want     string
	}{
		{"001_init.sql", "001"},
		{"002_add_indexes.sql", "002"},
		{"010_multi_word_name.sql", "010"},
		{"nounderscore.sql", "nounderscore.sql"},
	}
	for _, tc := range cases {
		if got := migrationVersion(tc.filename); got != tc.want {
			t.Errorf("migrationVersion(%q) = %q, want %q", tc.filename, got, tc.want)
		}
	}
}

func TestListMigrationFiles(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"002_second.sql", "001_first.sql", "010_tenth.sql", "notes.md"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("SELECT 1;"), 0o644); err != nil {
			t.Fatalf("writing %s: %v", name, err)
		}
	}
	if err := os.Mkdir(filepath.Join(dir, "archive.sql"), 0o755); err != nil {
		t.Fatalf("creating subdirectory: %v", err)
	}

	files, err := listMigrationFiles(dir)
	if err != nil {
		t.Fatalf("listMigrationFiles: %v", err)
	}

	want := []string{"001_first.sql", "002_second.sql", "010_tenth.sql"}
	if len(files) != len(want) {
		t.Fatalf("files = %v, want %v", files, want)
	}
	for i := range want {
		if files[i] != want[i] {
			t.Fatalf("files = %v, want %v", files, want)
		}
	}
}

func TestListMigrationFilesMissingDirectory(t *testing.T) {
	if _, err := listMigrationFiles(filepath.Join(t.TempDir(), "absent")); err == nil {
		t.Fatal("listMigrationFiles accepted a missing directory")
	}
}
