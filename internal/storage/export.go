package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
)

// ExportData is the JSON shape of a run export.
type ExportData struct {
	ID         string             `json:"id"`
	R          float64            `json:"r"`
	Density    string             `json:"density"`
	Iterations int                `json:"iterations"`
	GridPoints int                `json:"grid_points"`
	Grid       []float64          `json:"grid"`
	Curves     [][]float64        `json:"curves"`
	Metrics    map[string]float64 `json:"metrics"`
}

// ExportJSON writes a run to w as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, grid []float64, curves [][]float64) error {
	data := ExportData{
		ID:         meta.ID,
		R:          meta.R,
		Density:    meta.Density,
		Iterations: meta.Iterations,
		GridPoints: meta.GridPoints,
		Grid:       grid,
		Curves:     curves,
		Metrics:    meta.Metrics,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}

// ExportCSV writes the grid and curves to w, one column per iterate.
func ExportCSV(w io.Writer, grid []float64, curves [][]float64) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"x"}
	for k := range curves {
		header = append(header, "T"+strconv.Itoa(k))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, x := range grid {
		row := []string{strconv.FormatFloat(x, 'f', 6, 64)}
		for _, curve := range curves {
			row = append(row, strconv.FormatFloat(curve[i], 'f', 8, 64))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	return nil
}
