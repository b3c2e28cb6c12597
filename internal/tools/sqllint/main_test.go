package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeGo(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("package q\n\n"+body), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLintFlagsMissingMarker(t *testing.T) {
	dir := t.TempDir()
	writeGo(t, dir, "a.go", "const QBad = `select 1`\n\nconst Label = \"not sql\"\n")

	l := newLinter()
	if err := l.lintPath(dir); err != nil {
		t.Fatalf("lintPath: %v", err)
	}
	if len(l.violations) != 1 || l.violations[0].name != "QBad" {
		t.Fatalf("unexpected violations: %+v", l.violations)
	}
}

func TestLintFlagsDuplicateMarkersAcrossFiles(t *testing.T) {
	dir := t.TempDir()
	marker := "--sql 0f0c9f0e-3c1a-4b59-9a52-1d5e8f3b7a11"
	writeGo(t, dir, "a.go", "const QOne = `"+marker+"\nselect 1`\n")
	writeGo(t, dir, "b.go", "const QTwo = `"+marker+"\nselect 2`\n")

	l := newLinter()
	if err := l.lintPath(dir); err != nil {
		t.Fatalf("lintPath: %v", err)
	}
	if len(l.violations) != 1 {
		t.Fatalf("expected one duplicate, got %+v", l.violations)
	}
	if !strings.Contains(l.violations[0].message, "a.go") {
		t.Fatalf("duplicate should point at the first use: %q", l.violations[0].message)
	}
}

func TestLintAcceptsMarkedQueries(t *testing.T) {
	dir := t.TempDir()
	writeGo(t, dir, "a.go", "const QOk = `\n--sql 6d1d1c2e-8b0a-4f7e-a4f3-2b9c0d7e5a10\nselect 1`\n")

	l := newLinter()
	if err := l.lintPath(dir); err != nil {
		t.Fatalf("lintPath: %v", err)
	}
	if len(l.violations) != 0 {
		t.Fatalf("unexpected violations: %+v", l.violations)
	}
}

func TestFirstLine(t *testing.T) {
	if got := firstLine("\n  --sql x  \nselect"); got != "--sql x" {
		t.Fatalf("firstLine = %q", got)
	}
}
