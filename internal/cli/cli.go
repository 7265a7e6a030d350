package cli

import (
	"os"

	"github.com/fatih/color"
	"github.com/jiahut/relget/pkg/github"
	"github.com/rodaine/table"
	"golang.org/x/term"
)

// CreateTable is a helper that creates a headered table and returns the
// terminal width, for callers that need to truncate cell content.
func CreateTable(columns ...string) (table.Table, int) {
	terminalWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	// Not really important, if we cant get the size, we'll render fixed
	// width.
	if err != nil {
		terminalWidth = 130
	}

	columnsAny := make([]any, len(columns))
	for index, column := range columns {
		columnsAny[index] = column
	}

	headerColor := color.New(color.FgGreen, color.Bold)
	table := table.
		New(columnsAny...).
		WithHeaderFormatter(headerColor.SprintfFunc()).
		WithPadding(2)

	return table, terminalWidth
}

// PrintAssets renders the assets as a name/size table, in input order.
func PrintAssets(assets []github.Asset) {
	assetTable, terminalWidth := CreateTable("Name", "Size")
	for _, asset := range assets {
		name := asset.Name
		// Size column and padding take up to 20 cells, keep rows on one
		// line where the terminal allows it.
		if maxName := terminalWidth - 20; maxName > 10 {
			name = truncate(name, maxName)
		}
		assetTable.AddRow(name, github.FormatSize(asset.Size))
	}
	assetTable.Print()
}

// truncate shortens value to at most max runes, marking the cut with an
// ellipsis. Cutting on runes keeps multi-byte names intact.
func truncate(value string, max int) string {
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max-3]) + "..."
}
