package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"tictactoe/solver"
)

// Writer persists solve artifacts into a base directory.
type Writer struct {
	baseDir string
}

func NewWriter(baseDir string) (*Writer, error) {
	err := os.MkdirAll(baseDir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &Writer{baseDir: baseDir}, nil
}

// WriteTree saves the solved table as compact JSON (keys sorted, one object
// per canonical state) and returns the number of bytes written.
func (w *Writer) WriteTree(table solver.Table) (int, error) {
	data, err := json.Marshal(table)
	if err != nil {
		return 0, fmt.Errorf("failed to encode game tree: %w", err)
	}

	path := filepath.Join(w.baseDir, "game_tree.json")
	err = os.WriteFile(path, data, 0644)
	if err != nil {
		return 0, fmt.Errorf("failed to write game tree: %w", err)
	}
	return len(data), nil
}

// WriteSummary saves the per-ply state counts as CSV.
func (w *Writer) WriteSummary(sum Summary) error {
	path := filepath.Join(w.baseDir, "summary.csv")
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	header := []string{"ply", "states"}
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write summary header: %w", err)
	}

	for _, pc := range sum.ByPly {
		record := []string{strconv.Itoa(pc.Ply), strconv.Itoa(pc.States)}
		err = writer.Write(record)
		if err != nil {
			return fmt.Errorf("failed to write summary record: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("failed to flush summary: %w", err)
	}
	return nil
}
