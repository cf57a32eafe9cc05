// Package history implements the history command over the run-history
// database.
package history

import (
	"fmt"
	"strings"

	dbpkg "github.com/dtnitsch/mdsplit/pkg/db"
	"github.com/urfave/cli/v2"
)

func HistoryAction(c *cli.Context) error {
	database, err := dbpkg.Open()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer database.Close()

	runs, err := database.ListRuns(c.Int("limit"))
	if err != nil {
		return fmt.Errorf("failed to list runs: %w", err)
	}

	if len(runs) == 0 {
		fmt.Println("No runs found")
		return nil
	}

	fmt.Printf("%-6s %-20s %-6s %-6s %-6s %-5s %-40s\n",
		"ID", "Created", "Pages", "Code", "Warns", "Lang", "Source")
	fmt.Println(strings.Repeat("-", 100))

	for _, r := range runs {
		fmt.Printf("%-6d %-20s %-6d %-6d %-6d %-5s %-40s\n",
			r.RunID,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
			r.PageCount,
			r.CodeFileCount,
			r.WarningCount,
			r.Language,
			r.SourcePath,
		)
	}

	fmt.Printf("\nTotal: %d runs\n", len(runs))

	return nil
}
