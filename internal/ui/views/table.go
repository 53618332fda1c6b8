package views

import (
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
)

// WriteTable writes items as a borderless table with owner and name columns.
// Entries without an owner, such as the placeholder, leave that column empty.
func WriteTable(w io.Writer, items []string) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "OWNER", "NAME"})
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoWrapText(false)
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetNoWhiteSpace(true)
	table.SetTablePadding("    ")

	for i, item := range items {
		owner, name := splitFullName(item)
		table.Append([]string{strconv.Itoa(i + 1), owner, name})
	}
	table.Render()
}

func splitFullName(item string) (string, string) {
	owner, name, ok := strings.Cut(item, "/")
	if !ok {
		return "", item
	}
	return owner, name
}
