package export

import (
	"encoding/json"
	"io"

	"github.com/san-kum/lorenz/internal/dynamo"
)

type ExportData struct {
	Model    string             `json:"model"`
	Params   map[string]float64 `json:"params"`
	Start    float64            `json:"start"`
	End      float64            `json:"end"`
	Steps    int                `json:"steps"`
	Checksum string             `json:"checksum,omitempty"`
	Samples  []Record           `json:"samples"`
}

// NewExportData describes tr as a run of the named model.
func NewExportData(model string, params map[string]float64, tr *dynamo.Trajectory) ExportData {
	d := ExportData{
		Model:   model,
		Params:  params,
		Steps:   max(tr.Len()-1, 0),
		Samples: Records(tr),
	}
	if n := tr.Len(); n > 0 {
		d.Start, d.End = tr.Times[0], tr.Times[n-1]
	}
	return d
}

// WriteJSON writes data as indented JSON.
func WriteJSON(w io.Writer, data ExportData) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}
