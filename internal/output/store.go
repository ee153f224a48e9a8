// Package output persists run results under a data directory, one
// directory per run with JSON metadata and CSV stand/tree tables, and
// derives post-run summaries from them.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/forestlab/silva/internal/forest"
	"github.com/forestlab/silva/internal/model"
)

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
	ID        string             `json:"id"`
	Project   string             `json:"project"`
	Timestamp time.Time          `json:"timestamp"`
	Seed      int64              `json:"seed"`
	Years     int                `json:"years"`
	Metrics   map[string]float64 `json:"metrics"`
}

var standHeader = []string{
	"year", "species", "count", "basal_area_m2", "volume_m3",
	"stem_mass_kg", "branch_mass_kg", "foliage_mass_kg",
	"coarse_root_mass_kg", "fine_root_mass_kg", "carbon_kg",
}

var treeHeader = []string{
	"year", "id", "species", "x", "y", "dbh", "height", "age",
	"stem_mass_kg", "branch_mass_kg", "foliage_mass_kg",
	"coarse_root_mass_kg", "fine_root_mass_kg",
}

// Save writes one run's metadata and tables and returns the run id.
func (s *Store) Save(project string, seed int64, result *model.RunResult) (string, error) {
	runID := fmt.Sprintf("%s_%d", project, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Project:   project,
		Timestamp: time.Now(),
		Seed:      seed,
		Years:     result.Years,
		Metrics:   result.Metrics,
	}

	if err := writeJSON(filepath.Join(runDir, "metadata.json"), meta); err != nil {
		return "", err
	}
	if err := s.writeStand(filepath.Join(runDir, "stand.csv"), result.Stand); err != nil {
		return "", err
	}
	if err := s.writeTrees(filepath.Join(runDir, "tree.csv"), result.Trees); err != nil {
		return "", err
	}

	return runID, nil
}

func writeJSON(path string, v any) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func f(v float64) string { return strconv.FormatFloat(v, 'f', 4, 64) }

func (s *Store) writeStand(path string, rows []forest.StandRow) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(standHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.Year), r.Species, strconv.Itoa(r.Count),
			f(r.BasalArea), f(r.Volume),
			f(r.StemMass), f(r.BranchMass), f(r.FoliageMass),
			f(r.CoarseRootMass), f(r.FineRootMass), f(r.Carbon),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) writeTrees(path string, rows []forest.TreeRow) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	w := csv.NewWriter(file)
	defer w.Flush()

	if err := w.Write(treeHeader); err != nil {
		return err
	}
	for _, r := range rows {
		rec := []string{
			strconv.Itoa(r.Year), strconv.Itoa(r.ID), r.Species,
			f(r.X), f(r.Y), f(r.Dbh), f(r.Height), strconv.Itoa(r.Age),
			f(r.StemMass), f(r.BranchMass), f(r.FoliageMass),
			f(r.CoarseRootMass), f(r.FineRootMass),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	return nil
}

// List returns metadata for all runs in the data directory. Entries
// without readable metadata are skipped.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
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

// LoadStand reads a run's per-species yearly aggregates back from disk.
func (s *Store) LoadStand(runID string) ([]forest.StandRow, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "stand.csv"))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return []forest.StandRow{}, nil
	}

	rows := make([]forest.StandRow, 0, len(records)-1)
	for _, rec := range records[1:] {
		if len(rec) < len(standHeader) {
			continue
		}
		year, err := strconv.Atoi(rec[0])
		if err != nil {
			continue
		}
		count, _ := strconv.Atoi(rec[2])
		row := forest.StandRow{Year: year, Species: rec[1], Count: count}
		vals := make([]float64, 0, 8)
		for _, field := range rec[3:11] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				v = 0
			}
			vals = append(vals, v)
		}
		row.BasalArea, row.Volume = vals[0], vals[1]
		row.StemMass, row.BranchMass, row.FoliageMass = vals[2], vals[3], vals[4]
		row.CoarseRootMass, row.FineRootMass, row.Carbon = vals[5], vals[6], vals[7]
		rows = append(rows, row)
	}
	return rows, nil
}

// CarbonSeries returns the total carbon stock per year, ordered by year.
func (s *Store) CarbonSeries(runID string) ([]float64, error) {
	rows, err := s.LoadStand(runID)
	if err != nil {
		return nil, err
	}
	byYear := make(map[int]float64)
	maxYear := -1
	for _, r := range rows {
		byYear[r.Year] += r.Carbon
		if r.Year > maxYear {
			maxYear = r.Year
		}
	}
	series := make([]float64, maxYear+1)
	for year, c := range byYear {
		if year >= 0 {
			series[year] = c
		}
	}
	return series, nil
}
