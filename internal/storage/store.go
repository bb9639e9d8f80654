package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/perron/internal/experiment"
)

// Store persists experiment runs under a base directory, one subdirectory
// per run holding metadata.json and curves.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Timestamp  time.Time          `json:"timestamp"`
	R          float64            `json:"r"`
	Density    string             `json:"density"`
	Iterations int                `json:"iterations"`
	GridPoints int                `json:"grid_points"`
	Resample   bool               `json:"resample"`
	Metrics    map[string]float64 `json:"metrics"`
}

func (s *Store) Save(cfg experiment.Config, result *experiment.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", cfg.Density, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:         runID,
		Timestamp:  time.Now(),
		R:          cfg.R,
		Density:    cfg.Density,
		Iterations: cfg.Iterations,
		GridPoints: cfg.GridPoints,
		Resample:   cfg.Resample,
		Metrics:    result.Metrics,
	}

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, "curves.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if len(result.Curves) == 0 {
		return runID, nil
	}

	header := []string{"x"}
	for k := range result.Curves {
		header = append(header, fmt.Sprintf("T%d", k))
	}
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, x := range result.Grid {
		row := []string{strconv.FormatFloat(x, 'f', 6, 64)}
		for _, curve := range result.Curves {
			row = append(row, strconv.FormatFloat(curve[i], 'f', 8, 64))
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadCurves reads back the grid and every iterate curve of a run.
// Curves[k] corresponds to the T^k column.
func (s *Store) LoadCurves(runID string) ([]float64, [][]float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "curves.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return []float64{}, [][]float64{}, nil
	}

	numCurves := len(records[0]) - 1
	grid := make([]float64, 0, len(records)-1)
	curves := make([][]float64, numCurves)
	for k := range curves {
		curves[k] = make([]float64, 0, len(records)-1)
	}

	for _, record := range records[1:] {
		if len(record) != numCurves+1 {
			continue
		}

		x, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		grid = append(grid, x)

		for k := 0; k < numCurves; k++ {
			v, err := strconv.ParseFloat(record[k+1], 64)
			if err != nil {
				v = 0
			}
			curves[k] = append(curves[k], v)
		}
	}

	return grid, curves, nil
}
