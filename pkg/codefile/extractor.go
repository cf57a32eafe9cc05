// Package codefile extracts directive-marked fenced code blocks from page
// text into content-hash-named files and substitutes image references for
// them.
package codefile

import (
	"crypto/sha1"
	"encoding/hex"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/dtnitsch/mdsplit/models"
	"github.com/dtnitsch/mdsplit/pkg/directive"
	"github.com/dtnitsch/mdsplit/pkg/storage"
	"github.com/dtnitsch/mdsplit/pkg/textutil"
)

const (
	// DirectivePrefix marks a comment line binding a filename to the next
	// fenced code block.
	DirectivePrefix = "<!-- code-file: "

	fenceMarker = "```"

	// ImagePrefix names the externally produced image paired with an
	// extracted code file.
	ImagePrefix = "codeimg_"
)

// Extractor runs the code-file pass over page texts. Warnings for missing
// code images accumulate on the extractor and are surfaced once at the end
// of the run; filesystem errors propagate and abort the run.
type Extractor struct {
	opts      *models.Options
	store     *storage.Storage
	logger    *slog.Logger
	warnings  []string
	codeFiles []string
}

func NewExtractor(opts *models.Options, store *storage.Storage, logger *slog.Logger) *Extractor {
	return &Extractor{opts: opts, store: store, logger: logger}
}

// Warnings returns the accumulated missing-image warnings in the order
// they occurred.
func (e *Extractor) Warnings() []string {
	return e.warnings
}

// CodeFiles returns the hash-named code files produced or confirmed by
// this run, in encounter order.
func (e *Extractor) CodeFiles() []string {
	return e.codeFiles
}

// Process extracts directive-marked code blocks from text and returns the
// text with directive lines removed and each extracted block replaced by
// an image reference, or by a warning paragraph when no paired image
// exists. When no code or images location is configured the text passes
// through unchanged. Fences without a preceding directive also pass
// through untouched, markers included, so the Markdown renderer formats
// them inline.
func (e *Extractor) Process(text string) (string, error) {
	if e.opts.CodePath == "" || e.opts.ImagesPath == "" || !strings.Contains(text, DirectivePrefix) {
		return text, nil
	}

	var out strings.Builder
	var code strings.Builder
	pending := ""
	inFence := false

	for _, line := range textutil.SplitLines(text) {
		s := strings.TrimSpace(line)
		switch {
		case inFence && !strings.HasPrefix(s, fenceMarker):
			code.WriteString(line)
		case strings.HasPrefix(s, fenceMarker):
			if inFence {
				sub, err := e.finishBlock(pending, code.String())
				if err != nil {
					return "", err
				}
				out.WriteString(sub)
				pending = ""
				code.Reset()
				inFence = false
			} else if pending != "" {
				inFence = true
			} else {
				out.WriteString(line)
			}
		default:
			if inner, ok := directive.Inner(line, DirectivePrefix); ok {
				pending = inner
			} else {
				out.WriteString(line)
			}
		}
	}

	return out.String(), nil
}

// finishBlock writes one completed code block and returns the replacement
// text for the page. A block with no directive filename or no content
// produces nothing.
func (e *Extractor) finishBlock(filename, content string) (string, error) {
	if filename == "" || content == "" {
		return "", nil
	}

	// The content hash is embedded in the filename so the paired image is
	// invalidated whenever the code changes. Eight hex characters are
	// enough for an identity tag.
	sum := sha1.Sum([]byte(content))
	tag := hex.EncodeToString(sum[:])[:8]

	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	target := fmt.Sprintf("%s.%s%s", stem, tag, ext)
	targetPath := filepath.Join(e.opts.CodePath, target)

	if err := e.removeObsolete(stem, target); err != nil {
		return "", err
	}

	// The hash in the name makes the write idempotent: an existing target
	// already holds this exact content.
	if e.store.HasFile(targetPath) {
		e.logger.Info("code file unchanged", "path", targetPath)
	} else {
		e.logger.Info("writing code file", "path", targetPath)
		if err := e.store.SaveFile(targetPath, []byte(content)); err != nil {
			return "", err
		}
	}
	e.codeFiles = append(e.codeFiles, target)

	imageName := ImagePrefix + strings.TrimSuffix(target, ext) + ".png"
	imagePath := filepath.Join(e.opts.ImagesPath, imageName)

	if e.opts.ImageDelay > 0 && !e.store.HasFile(imagePath) {
		e.logger.Info("waiting for code image", "image", imageName, "seconds", e.opts.ImageDelay)
		time.Sleep(time.Duration(e.opts.ImageDelay) * time.Second)
	}

	if e.store.HasFile(imagePath) {
		ref := path.Join(e.opts.ImagesSubdir, imageName)
		return fmt.Sprintf("\n![%s](%s)\n", filename, ref), nil
	}

	e.warnings = append(e.warnings, fmt.Sprintf("No code image for '%s'", target))
	e.logger.Warn("missing code image", "code_file", target)
	return fmt.Sprintf("\n<p style=\"color: red;\">No code image for '%s'</p>\n", target), nil
}

// removeObsolete deletes every file in the code directory sharing the
// original stem prefix but named differently from target, along with its
// paired image if present.
func (e *Extractor) removeObsolete(stem, target string) error {
	names, err := e.store.ListDir(e.opts.CodePath)
	if err != nil {
		return err
	}
	for _, name := range names {
		if name == target || !strings.HasPrefix(name, stem) {
			continue
		}
		e.logger.Info("deleting obsolete code file", "name", name)
		if err := e.store.Remove(filepath.Join(e.opts.CodePath, name)); err != nil {
			return err
		}
		imageName := ImagePrefix + strings.TrimSuffix(name, filepath.Ext(name)) + ".png"
		imagePath := filepath.Join(e.opts.ImagesPath, imageName)
		if e.store.HasFile(imagePath) {
			e.logger.Info("deleting obsolete code image", "name", imageName)
			if err := e.store.Remove(imagePath); err != nil {
				return err
			}
		}
	}
	return nil
}
