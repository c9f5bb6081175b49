package ui

import (
	"fmt"
	"io"

	"github.com/pterm/pterm"
)

// PrintTable renders rows as a boxed table whose first row is the header.
func PrintTable(w io.Writer, header []string, rows [][]string) error {
	data := make([][]string, 0, len(rows)+1)
	data = append(data, header)
	data = append(data, rows...)

	str, err := pterm.DefaultTable.
		WithBoxed().
		WithHasHeader().
		WithData(data).
		Srender()
	if err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}

	_, err = fmt.Fprintln(w, str)

	return err
}

// PrintKV prints label/value pairs aligned on the label column.
func PrintKV(w io.Writer, pairs [][2]string) {
	width := 0
	for _, p := range pairs {
		width = max(width, len(p[0]))
	}

	for _, p := range pairs {
		fmt.Fprintf(w, "%-*s  %s\n", width+1, p[0]+":", p[1])
	}
}
