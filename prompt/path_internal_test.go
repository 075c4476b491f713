package prompt

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixtureTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	for _, name := range []string{"zebra.txt", "apple.txt", ".hidden"} {
		if err := os.WriteFile(filepath.Join(dir, name), nil, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	for _, name := range []string{"vendor", "cmd"} {
		if err := os.Mkdir(filepath.Join(dir, name), 0o755); err != nil {
			t.Fatal(err)
		}
	}
	return dir
}

func TestListDir_DirsFirstThenLexicographic(t *testing.T) {
	dir := writeFixtureTree(t)

	entries := listDir(dir, "", false)

	want := []struct {
		name  string
		isDir bool
	}{
		{"cmd", true},
		{"vendor", true},
		{"apple.txt", false},
		{"zebra.txt", false},
	}
	if len(entries) != len(want) {
		t.Fatalf("listDir returned %d entries, want %d", len(entries), len(want))
	}
	for i, w := range want {
		if entries[i].name != w.name || entries[i].isDir != w.isDir {
			t.Errorf("entry %d = %q (dir=%v), want %q (dir=%v)",
				i, entries[i].name, entries[i].isDir, w.name, w.isDir)
		}
	}
}

func TestListDir_HiddenFiles(t *testing.T) {
	dir := writeFixtureTree(t)

	for _, e := range listDir(dir, "", false) {
		if e.name == ".hidden" {
			t.Fatal("dotfile listed without ShowHidden")
		}
	}

	found := false
	for _, e := range listDir(dir, "", true) {
		if e.name == ".hidden" {
			found = true
		}
	}
	if !found {
		t.Error("dotfile missing with ShowHidden")
	}
}

func TestListDir_PrefixFilterCaseInsensitive(t *testing.T) {
	dir := writeFixtureTree(t)

	entries := listDir(dir, "APP", false)
	if len(entries) != 1 || entries[0].name != "apple.txt" {
		t.Errorf("filter APP returned %v", entries)
	}

	if entries := listDir(dir, "nope", false); len(entries) != 0 {
		t.Errorf("filter nope returned %v", entries)
	}
}

func TestListDir_UnreadableDirectory(t *testing.T) {
	entries := listDir(filepath.Join(t.TempDir(), "missing"), "", false)
	if entries != nil {
		t.Errorf("missing directory listed as %v, want nil", entries)
	}
}

func TestSingleMatch(t *testing.T) {
	up := pathEntry{name: "..", isDir: true, goUp: true}
	file := pathEntry{name: "only.txt"}

	if m, ok := singleMatch([]pathEntry{up, file}); !ok || m.name != "only.txt" {
		t.Errorf("singleMatch = %v, %v; the up row must not count", m, ok)
	}
	if _, ok := singleMatch([]pathEntry{up, file, {name: "other.txt"}}); ok {
		t.Error("two real entries must not report a single match")
	}
	if _, ok := singleMatch([]pathEntry{up}); ok {
		t.Error("only the up row must not report a single match")
	}
}
