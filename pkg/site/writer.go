// Package site writes the build output: per-page HTML files, the index,
// the one-page view, the links-extract view, and the copied images
// directory.
package site

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/mdsplit/models"
	"github.com/dtnitsch/mdsplit/pkg/render"
	"github.com/dtnitsch/mdsplit/pkg/storage"
)

// pageBreak visually separates pages in the one-page and links views.
const pageBreak = "\n<p>&nbsp;</p>\n<hr>\n<p>&nbsp;</p>\n"

// PageFilenames returns the filenames of the current, previous, and next
// pages. When there is no previous or next page the corresponding
// filename is an empty string.
func PageFilenames(base string, num, total int) (filename, prevPage, nextPage string) {
	filename = fmt.Sprintf("%s-%03d.html", base, num)
	if num > 1 {
		prevPage = fmt.Sprintf("%s-%03d.html", base, num-1)
	}
	if num < total {
		nextPage = fmt.Sprintf("%s-%03d.html", base, num+1)
	}
	return filename, prevPage, nextPage
}

// Writer persists build output into the configured output directory.
type Writer struct {
	opts   *models.Options
	store  *storage.Storage
	logger *slog.Logger
	footer string
}

func NewWriter(opts *models.Options, store *storage.Storage, logger *slog.Logger, footer string) *Writer {
	return &Writer{opts: opts, store: store, logger: logger, footer: footer}
}

// SeedCSS prepares the configured CSS file and returns the link tag to
// reference it from page heads, or "" when no CSS file is configured and
// the default style should be embedded instead. An existing CSS file is
// left untouched; a missing one is seeded with the default style.
func (w *Writer) SeedCSS() (string, error) {
	if w.opts.CSSPath == "" {
		return "", nil
	}
	if !w.store.HasFile(w.opts.CSSPath) {
		w.logger.Info("writing css file", "path", w.opts.CSSPath)
		if err := w.store.SaveFile(w.opts.CSSPath, []byte(render.DefaultCSS)); err != nil {
			return "", err
		}
	}
	return render.CSSLink(filepath.Base(w.opts.CSSPath)), nil
}

// WritePage writes one complete page document under the output directory.
func (w *Writer) WritePage(filename, html string) error {
	p := filepath.Join(w.opts.OutputDir, filename)
	w.logger.Info("writing page", "path", p)
	return w.store.SaveFile(p, []byte(html))
}

// CopyImages copies the source images subdirectory into the output
// directory, overwriting existing files. Only regular files are copied.
// Without a configured images subdirectory nothing is done.
func (w *Writer) CopyImages() error {
	if w.opts.ImagesSubdir == "" {
		return nil
	}
	dstDir := filepath.Join(w.opts.OutputDir, w.opts.ImagesSubdir)
	if err := os.MkdirAll(dstDir, 0755); err != nil {
		return fmt.Errorf("failed to create images directory: %w", err)
	}
	names, err := w.store.ListDir(w.opts.ImagesPath)
	if err != nil {
		return err
	}
	for _, name := range names {
		src := filepath.Join(w.opts.ImagesPath, name)
		dst := filepath.Join(dstDir, name)
		w.logger.Info("copying image", "from", src, "to", dst)
		if err := w.store.CopyFile(src, dst); err != nil {
			return err
		}
	}
	return nil
}

// WriteIndex writes index.html linking every retained page by title, each
// entry classed by its heading level.
func (w *Writer) WriteIndex(items []models.PageResult) error {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang='en'>
<head>
  <title>Index</title>
  <style>
    body { font-family: sans-serif; }
    li {
        border: 1px solid #dde;
        border-radius: 5px;
        margin: 0.3rem;
        padding: 0.3rem;
    }
    #container { display: flex; justify-content: center; }
    #content { max-width: 900px; }
    #foot {
        border-top: 1px solid gray;
        font-family: monospace;
        font-size: small;
        margin-top: 3rem;
        padding-top: 1rem;
    }
    a:link, a:visited { color: navy; text-decoration: none; }
    a:hover { text-decoration: underline; }
  </style>
  <link rel="stylesheet" type="text/css" href="custom.css">
  <base target="_blank">
</head>
<body>
<div id="container">
<div id="content">
<p>
Navigate pages using Left and Right arrow, Page Up, and Page Down.</p>
<p>See also:
<a href="links.html">Extracted links</a>,
<a href="one-page.html">One-page version</a>
</p>
<h1>Index of Pages</h1>
<ol>
`)

	for _, item := range items {
		fmt.Fprintf(&b, "  <li class=\"index-lev-%d\"><a href=%q>%s</a></li>\n",
			item.HeadingLevel, item.Filename, item.Title)
	}

	fmt.Fprintf(&b, "</ol>\n<div id=\"foot\">\n%s\n</div>\n\n</div>\n</div>\n</body>\n</html>\n", w.footer)

	p := filepath.Join(w.opts.OutputDir, "index.html")
	w.logger.Info("writing index", "path", p)
	return w.store.SaveFile(p, []byte(b.String()))
}

// WriteOnePage writes one-page.html concatenating every page body with a
// visual separator between pages.
func (w *Writer) WriteOnePage(bodies []string) error {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang='en'>
<head>
  <title>One-Page</title>
  <style>
    body {
        font-family: sans-serif;
        margin: 4rem;
    }
    #foot {
        border-top: 1px solid gray;
        font-family: monospace;
        font-size: small;
        margin-top: 3rem;
        padding-top: 1rem;
    }
  </style>
</head>
<body>
`)

	for _, body := range bodies {
		for _, line := range bodyLines(body) {
			b.WriteString(line + "\n")
		}
		b.WriteString(pageBreak)
	}

	fmt.Fprintf(&b, "<div id=\"foot\">%s</div>\n</body>\n</html>\n", w.footer)

	p := filepath.Join(w.opts.OutputDir, "one-page.html")
	w.logger.Info("writing one-page view", "path", p)
	return w.store.SaveFile(p, []byte(b.String()))
}

// WriteLinksPage writes links.html containing, per page, its first
// heading line plus every line containing an anchor tag. A page
// contributes a section only if it has a top-level heading or at least
// one anchor line.
func (w *Writer) WriteLinksPage(bodies []string) error {
	var b strings.Builder
	b.WriteString(`<!DOCTYPE html>
<html lang='en'>
<head>
  <title>Extracted Links</title>
  <style>
    body {
        font-family: sans-serif;
        margin: 4rem;
    }
    #foot {
        border-top: 1px solid gray;
        font-family: monospace;
        font-size: small;
        margin-top: 3rem;
        padding-top: 1rem;
    }
  </style>
</head>
<body>
`)

	for _, body := range bodies {
		foundHeading := false
		isH1 := false
		foundLink := false
		var pg strings.Builder

		for _, line := range bodyLines(body) {
			s := strings.ToLower(strings.TrimSpace(line))

			if !foundHeading && (strings.HasPrefix(s, "<h1>") || strings.HasPrefix(s, "<h2>") ||
				strings.HasPrefix(s, "<h3>") || strings.HasPrefix(s, "<h4>")) {
				foundHeading = true
				if strings.HasPrefix(s, "<h1>") {
					isH1 = true
				}
				pg.WriteString(line + "\n")
			}

			if strings.Contains(s, "<a ") {
				foundLink = true
				pg.WriteString(line + "\n")
			}
		}

		if foundLink || isH1 {
			b.WriteString(pg.String() + pageBreak)
		}
	}

	fmt.Fprintf(&b, "<div id=\"foot\">%s</div>\n</body>\n</html>\n", w.footer)

	p := filepath.Join(w.opts.OutputDir, "links.html")
	w.logger.Info("writing links view", "path", p)
	return w.store.SaveFile(p, []byte(b.String()))
}

// bodyLines splits a rendered body into lines without terminators.
func bodyLines(body string) []string {
	return strings.Split(strings.TrimRight(body, "\n"), "\n")
}
