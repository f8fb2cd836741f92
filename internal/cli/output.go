package cli

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/loriab/libcerf/internal/format"
	"github.com/loriab/libcerf/internal/sweep"
)

// WriteTableToFile writes a tabulation result to a file. A ".csv"
// extension selects CSV output with an x,re,im header row; anything
// else gets the plain-text table preceded by a comment header.
//
// Parameters:
//   - path: The destination file path.
//   - res: The sweep result.
//
// Returns:
//   - error: An error if the file cannot be written.
func WriteTableToFile(path string, res sweep.Result) error {
	// Ensure directory exists
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return writeCSV(file, res)
	}

	fmt.Fprintf(file, "# Function: %s\n", res.Function)
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Points: %d\n", len(res.Rows))
	fmt.Fprintf(file, "# Duration: %s\n", res.Duration)
	fmt.Fprintf(file, "\n")
	for _, row := range res.Rows {
		fmt.Fprintf(file, "%-24s  %s\n", format.Float(row.X), FormatRow(row))
	}
	return nil
}

// writeCSV emits the rows as x,re,im records.
func writeCSV(file *os.File, res sweep.Result) error {
	w := csv.NewWriter(file)
	if err := w.Write([]string{"x", "re", "im"}); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range res.Rows {
		record := []string{
			format.Float(row.X),
			format.Float(real(row.Value)),
			format.Float(imag(row.Value)),
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write csv row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush csv output: %w", err)
	}
	return nil
}
