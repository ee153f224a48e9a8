package output

import (
	"encoding/json"
	"io"

	"github.com/forestlab/silva/internal/forest"
)

// ExportData is the JSON export layout for one run.
type ExportData struct {
	ID      string             `json:"id"`
	Project string             `json:"project"`
	Seed    int64              `json:"seed"`
	Years   int                `json:"years"`
	Stand   []forest.StandRow  `json:"stand"`
	Metrics map[string]float64 `json:"metrics"`
	Summary Summary            `json:"summary"`
}

// ExportJSON writes a run's metadata, stand table and summary as
// indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, stand []forest.StandRow) error {
	data := ExportData{
		ID:      meta.ID,
		Project: meta.Project,
		Seed:    meta.Seed,
		Years:   meta.Years,
		Stand:   stand,
		Metrics: meta.Metrics,
		Summary: Summarize(stand),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
