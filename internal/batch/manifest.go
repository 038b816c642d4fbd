package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Index  int       `json:"index"`
	T      float64   `json:"t"`
	Angles []float64 `json:"angles"`
	Image  string    `json:"image"`
}

// Manifest describes a rendered sequence.
type Manifest struct {
	Pattern string          `json:"pattern"`
	Frames  []ManifestEntry `json:"frames"`
}

// WriteManifest writes manifest.json for the successful results.
func WriteManifest(path, pattern string, results []Result) error {
	m := Manifest{Pattern: pattern, Frames: []ManifestEntry{}}
	for _, r := range results {
		if !r.Success {
			continue
		}
		m.Frames = append(m.Frames, ManifestEntry{
			Index:  r.Frame.Index,
			T:      r.Frame.T,
			Angles: r.Frame.Angles,
			Image:  r.Image,
		})
	}

	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
