package codefile

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/mdsplit/models"
	"github.com/dtnitsch/mdsplit/pkg/storage"
)

const sampleCode = "print('hi')\n"

func samplePage(filename string) string {
	return "before\n<!-- code-file: " + filename + " -->\n```\n" + sampleCode + "```\nafter\n"
}

func contentTag(content string) string {
	sum := sha1.Sum([]byte(content))
	return hex.EncodeToString(sum[:])[:8]
}

func setupTestExtractor(t *testing.T) (*Extractor, *models.Options) {
	t.Helper()
	dir := t.TempDir()
	opts := &models.Options{
		ImagesSubdir: "img",
		ImagesPath:   filepath.Join(dir, "img"),
		CodeSubdir:   "code",
		CodePath:     filepath.Join(dir, "code"),
	}
	for _, p := range []string{opts.ImagesPath, opts.CodePath} {
		if err := os.MkdirAll(p, 0755); err != nil {
			t.Fatalf("failed to create %s: %v", p, err)
		}
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewExtractor(opts, &storage.Storage{}, logger), opts
}

func codeDirNames(t *testing.T, opts *models.Options) []string {
	t.Helper()
	entries, err := os.ReadDir(opts.CodePath)
	if err != nil {
		t.Fatalf("failed to read code dir: %v", err)
	}
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestProcess_NoOpWithoutConfiguredPaths(t *testing.T) {
	e, opts := setupTestExtractor(t)
	opts.CodePath = ""

	text := samplePage("hello.py")
	got, err := e.Process(text)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if got != text {
		t.Errorf("Process() = %q, want text unchanged", got)
	}
}

func TestProcess_FenceWithoutDirectivePassesThrough(t *testing.T) {
	e, opts := setupTestExtractor(t)

	// The page has a directive elsewhere so the pass runs, but the second
	// fence has no directive of its own.
	text := samplePage("hello.py") + "\n```\nplain fence\n```\n"
	got, err := e.Process(text)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if !strings.Contains(got, "```\nplain fence\n```\n") {
		t.Errorf("Process() = %q, want undirected fence kept with markers", got)
	}
	if names := codeDirNames(t, opts); len(names) != 1 {
		t.Errorf("code dir has %d files, want 1 (only the directed block)", len(names))
	}
}

func TestProcess_WritesHashNamedCodeFile(t *testing.T) {
	e, opts := setupTestExtractor(t)

	got, err := e.Process(samplePage("hello.py"))
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	target := fmt.Sprintf("hello.%s.py", contentTag(sampleCode))
	data, err := os.ReadFile(filepath.Join(opts.CodePath, target))
	if err != nil {
		t.Fatalf("code file not written: %v", err)
	}
	if string(data) != sampleCode {
		t.Errorf("code file content = %q, want %q", data, sampleCode)
	}

	if strings.Contains(got, "print('hi')") {
		t.Errorf("Process() output still contains the code block: %q", got)
	}
	if strings.Contains(got, "<!-- code-file:") {
		t.Errorf("Process() output still contains the directive: %q", got)
	}

	// No image exists, so the block degrades to a visible warning.
	if !strings.Contains(got, "No code image for '"+target+"'") {
		t.Errorf("Process() = %q, want warning paragraph naming %q", got, target)
	}
	if len(e.Warnings()) != 1 {
		t.Errorf("Warnings() = %v, want one entry", e.Warnings())
	}
}

func TestProcess_IdempotentAcrossRuns(t *testing.T) {
	e1, opts := setupTestExtractor(t)
	if _, err := e1.Process(samplePage("hello.py")); err != nil {
		t.Fatalf("first Process() error = %v", err)
	}

	target := fmt.Sprintf("hello.%s.py", contentTag(sampleCode))
	targetPath := filepath.Join(opts.CodePath, target)
	before, err := os.Stat(targetPath)
	if err != nil {
		t.Fatalf("stat after first run: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e2 := NewExtractor(opts, &storage.Storage{}, logger)
	if _, err := e2.Process(samplePage("hello.py")); err != nil {
		t.Fatalf("second Process() error = %v", err)
	}

	after, err := os.Stat(targetPath)
	if err != nil {
		t.Fatalf("stat after second run: %v", err)
	}
	if !after.ModTime().Equal(before.ModTime()) {
		t.Error("code file was rewritten on the second run")
	}
	if names := codeDirNames(t, opts); len(names) != 1 {
		t.Errorf("code dir has %d files, want 1", len(names))
	}
}

func TestProcess_ChangedContentReplacesObsoleteVersions(t *testing.T) {
	e1, opts := setupTestExtractor(t)
	if _, err := e1.Process(samplePage("hello.py")); err != nil {
		t.Fatalf("first Process() error = %v", err)
	}

	oldTag := contentTag(sampleCode)
	oldImage := filepath.Join(opts.ImagesPath, fmt.Sprintf("codeimg_hello.%s.png", oldTag))
	if err := os.WriteFile(oldImage, []byte("png"), 0644); err != nil {
		t.Fatalf("failed to seed old image: %v", err)
	}

	changed := "print('changed')\n"
	page := "<!-- code-file: hello.py -->\n```\n" + changed + "```\n"
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e2 := NewExtractor(opts, &storage.Storage{}, logger)
	if _, err := e2.Process(page); err != nil {
		t.Fatalf("second Process() error = %v", err)
	}

	names := codeDirNames(t, opts)
	wantName := fmt.Sprintf("hello.%s.py", contentTag(changed))
	if len(names) != 1 || names[0] != wantName {
		t.Errorf("code dir = %v, want only %q", names, wantName)
	}
	if _, err := os.Stat(oldImage); !os.IsNotExist(err) {
		t.Error("obsolete paired image was not deleted")
	}
}

func TestProcess_EmitsImageReferenceWhenImageExists(t *testing.T) {
	_, opts := setupTestExtractor(t)

	tag := contentTag(sampleCode)
	imageName := fmt.Sprintf("codeimg_hello.%s.png", tag)
	if err := os.WriteFile(filepath.Join(opts.ImagesPath, imageName), []byte("png"), 0644); err != nil {
		t.Fatalf("failed to seed image: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := NewExtractor(opts, &storage.Storage{}, logger)
	got, err := e.Process(samplePage("hello.py"))
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	want := fmt.Sprintf("![hello.py](img/%s)", imageName)
	if !strings.Contains(got, want) {
		t.Errorf("Process() = %q, want image reference %q", got, want)
	}
	if len(e.Warnings()) != 0 {
		t.Errorf("Warnings() = %v, want none", e.Warnings())
	}
}

func TestProcess_EmptyBlockConsumedWithoutArtifacts(t *testing.T) {
	e, opts := setupTestExtractor(t)

	got, err := e.Process("<!-- code-file: hello.py -->\n```\n```\ntext\n")
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}

	if got != "text\n" {
		t.Errorf("Process() = %q, want %q", got, "text\n")
	}
	if names := codeDirNames(t, opts); len(names) != 0 {
		t.Errorf("code dir = %v, want empty", names)
	}
	if len(e.Warnings()) != 0 {
		t.Errorf("Warnings() = %v, want none", e.Warnings())
	}
}
