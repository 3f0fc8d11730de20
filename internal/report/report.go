// Package report serializes sweep results for external tooling. Plotting
// itself lives outside this module; these writers produce the JSON and CSV
// a plotting layer consumes.
package report

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/contactkeval/option-fourier/internal/study"
)

// WriteJSON writes sweep rows as indented JSON to <outdir>/<name>.json.
func WriteJSON(rows []study.Row, outdir, name string) error {
	b, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(outdir, name+".json"), b, 0644)
}

// WriteCSV writes sweep rows as CSV to <outdir>/<name>.csv. Unused sweep
// dimensions are left zero, matching the Row JSON shape.
func WriteCSV(rows []study.Row, outdir, name string) error {
	f, err := os.Create(filepath.Join(outdir, name+".csv"))
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	if err := w.Write([]string{"order", "alpha", "bound", "price"}); err != nil {
		return err
	}
	for _, r := range rows {
		row := []string{
			fmt.Sprintf("%d", r.Order),
			fmt.Sprintf("%g", r.Alpha),
			fmt.Sprintf("%g", r.Bound),
			fmt.Sprintf("%.12g", r.Price),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
