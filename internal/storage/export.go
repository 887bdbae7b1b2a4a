package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/odelab/internal/ode"
)

type runExport struct {
	RunMetadata
	Times  []float64 `json:"times"`
	Values []float64 `json:"values"`
}

// ExportJSON writes a run's metadata and full sampled curve as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, sol *ode.Solution) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(runExport{
		RunMetadata: *meta,
		Times:       sol.Times,
		Values:      sol.Values,
	})
}

// ExportCSV writes a run's sampled curve as time,y rows with a header.
func ExportCSV(w io.Writer, sol *ode.Solution) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"time", "y"}); err != nil {
		return err
	}
	for i := 0; i < sol.Len(); i++ {
		t, y := sol.At(i)
		row := []string{
			strconv.FormatFloat(t, 'f', 6, 64),
			strconv.FormatFloat(y, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
