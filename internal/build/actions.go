// Package build implements the build command: the full Markdown-to-pages
// pipeline from source document to written output directory.
package build

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dtnitsch/mdsplit/models"
	"github.com/dtnitsch/mdsplit/pkg/codefile"
	"github.com/dtnitsch/mdsplit/pkg/db"
	"github.com/dtnitsch/mdsplit/pkg/directive"
	"github.com/dtnitsch/mdsplit/pkg/langdetect"
	"github.com/dtnitsch/mdsplit/pkg/markdown"
	"github.com/dtnitsch/mdsplit/pkg/render"
	"github.com/dtnitsch/mdsplit/pkg/site"
	"github.com/dtnitsch/mdsplit/pkg/splitter"
	"github.com/dtnitsch/mdsplit/pkg/storage"
	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"
)

const (
	AppName = "mdsplit"
	Version = "0.2.0"
)

func BuildAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	if c.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Error: No Markdown file provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, "  mdsplit build notes.md --output-dir ./pages")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: mdsplit build --help")
		os.Exit(1)
	}

	opts := resolveOptions(c, startTime, logger)

	report, err := Run(logger, opts)
	if err != nil {
		return err
	}
	report.TotalTimeSeconds = time.Since(startTime).Seconds()

	recordRun(logger, opts, report)

	var outputData []byte
	var marshalErr error
	if strings.ToLower(c.String("format")) == "yaml" {
		outputData, marshalErr = yaml.Marshal(report)
	} else {
		outputData, marshalErr = json.MarshalIndent(report, "", "  ")
	}
	if marshalErr != nil {
		logger.Error("failed to marshal build report", "error", marshalErr)
		os.Exit(2)
	}
	fmt.Println(string(outputData))

	return nil
}

// resolveOptions validates the user-input preconditions and resolves all
// flags into an immutable Options. Each precondition failure reports to
// stderr and exits 1.
func resolveOptions(c *cli.Context, runTime time.Time, logger *slog.Logger) *models.Options {
	mdPath := c.Args().First()
	if _, err := os.Stat(mdPath); err != nil {
		fmt.Fprintf(os.Stderr, "\nFile not found: %s\n", mdPath)
		os.Exit(1)
	}
	srcDir := filepath.Dir(mdPath)

	outputDir := c.String("output-dir")
	if outputDir != "" {
		// An explicitly specified output directory must exist.
		if info, err := os.Stat(outputDir); err != nil || !info.IsDir() {
			fmt.Fprintf(os.Stderr, "\nDirectory not found: %s\n", outputDir)
			os.Exit(1)
		}
	} else {
		// The default directory is created fresh and must not pre-exist.
		outputDir = filepath.Join(srcDir, "Pages_"+runTime.Format("20060102_150405"))
		if _, err := os.Stat(outputDir); err == nil {
			fmt.Fprintf(os.Stderr, "\nDirectory already exists: %s\n", outputDir)
			os.Exit(1)
		}
		if err := os.Mkdir(outputDir, 0755); err != nil {
			fmt.Fprintf(os.Stderr, "\nFailed to create directory: %s\n", err)
			os.Exit(1)
		}
	}

	opts := &models.Options{
		MarkdownPath: mdPath,
		OutputDir:    outputDir,
		OutputName:   c.String("output-name"),
		ImageDelay:   c.Int("img-delay"),
		RunTime:      runTime,
	}
	if opts.OutputName == "" {
		opts.OutputName = "page"
	}

	if sub := c.String("images-subdir"); sub != "" {
		opts.ImagesSubdir = sub
		opts.ImagesPath = filepath.Join(srcDir, sub)
		ensureDir(logger, opts.ImagesPath)
	}
	if sub := c.String("code-subdir"); sub != "" {
		opts.CodeSubdir = sub
		opts.CodePath = filepath.Join(srcDir, sub)
		ensureDir(logger, opts.CodePath)
	}
	if css := c.String("css-file"); css != "" {
		opts.CSSPath = filepath.Join(outputDir, css)
	}

	return opts
}

func ensureDir(logger *slog.Logger, path string) {
	if _, err := os.Stat(path); err == nil {
		return
	}
	logger.Info("creating subdirectory", "path", path)
	if err := os.MkdirAll(path, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "\nFailed to create directory: %s\n", err)
		os.Exit(1)
	}
}

// Run executes the pipeline: split, per-page directive and code-file
// extraction, Markdown rendering, page wrapping, and output writing.
// Filesystem errors propagate and abort the run; missing code images only
// degrade output and land in the report's warnings.
func Run(logger *slog.Logger, opts *models.Options) (*models.BuildReport, error) {
	logger.Info("reading source", "path", opts.MarkdownPath)
	store := &storage.Storage{}
	src, err := store.ReadFile(opts.MarkdownPath)
	if err != nil {
		return nil, err
	}

	pages := splitter.Split(string(src))

	report := &models.BuildReport{
		Status:     "success",
		SourcePath: opts.MarkdownPath,
		OutputDir:  opts.OutputDir,
		Language:   "en",
	}
	if len(pages) == 0 {
		logger.Info("no publishable pages found")
		return report, nil
	}

	report.Language = langdetect.New().Detect(string(src))

	footer := fmt.Sprintf("Created by %s v%s at %s", AppName, Version, opts.RunTime.Format("2006-01-02 15:04"))
	writer := site.NewWriter(opts, store, logger, footer)

	cssLink, err := writer.SeedCSS()
	if err != nil {
		return nil, err
	}

	extractor := codefile.NewExtractor(opts, store, logger)
	md := markdown.NewRenderer()

	var bodies []string
	var items []models.PageResult

	for i, text := range pages {
		num := i + 1

		cleaned, title := directive.ExtractTitle(text)
		heading, level := directive.Heading(num, text)
		if title == "" {
			title = heading
		}
		cleaned, classes := directive.ExtractClasses(cleaned)

		cleaned, err = extractor.Process(cleaned)
		if err != nil {
			return nil, err
		}

		filename, prevPage, nextPage := site.PageFilenames(opts.OutputName, num, len(pages))
		items = append(items, models.PageResult{
			Number:       num,
			Filename:     filename,
			Title:        title,
			HeadingLevel: level,
		})

		body, err := md.Render(cleaned)
		if err != nil {
			return nil, err
		}
		body = render.AddTargetBlank(body)
		bodies = append(bodies, body)

		doc := render.Head(fmt.Sprintf("%d. %s", num, title), num, prevPage, cssLink, classes, report.Language) +
			body +
			render.Tail(prevPage, nextPage)
		if err := writer.WritePage(filename, doc); err != nil {
			return nil, err
		}
	}

	if err := writer.CopyImages(); err != nil {
		return nil, err
	}
	if err := writer.WriteIndex(items); err != nil {
		return nil, err
	}
	if err := writer.WriteOnePage(bodies); err != nil {
		return nil, err
	}
	if err := writer.WriteLinksPage(bodies); err != nil {
		return nil, err
	}

	report.Pages = items
	report.CodeFiles = extractor.CodeFiles()
	report.Warnings = extractor.Warnings()
	return report, nil
}

// recordRun appends the build to the run-history database. History
// failures never fail a build that already wrote its output.
func recordRun(logger *slog.Logger, opts *models.Options, report *models.BuildReport) {
	database, err := db.Open()
	if err != nil {
		logger.Warn("failed to open run history database", "error", err)
		return
	}
	defer database.Close()

	if _, err := database.InsertRun(opts.MarkdownPath, opts.OutputDir,
		len(report.Pages), len(report.CodeFiles), len(report.Warnings), report.Language); err != nil {
		logger.Warn("failed to record run", "error", err)
	}
}
