package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry describes one rendered frame in the output manifest.
type ManifestEntry struct {
	Frame     int        `json:"frame"`
	Azimuth   float64    `json:"azimuth_deg"`
	Elevation float64    `json:"elevation_deg"`
	Radius    float64    `json:"radius"`
	Eye       [3]float64 `json:"eye"`
	Image     string     `json:"image"`
}

// WriteManifest writes the frame manifest as indented JSON.
func WriteManifest(path string, frames []Frame, format string) error {
	entries := make([]ManifestEntry, len(frames))
	for i, fr := range frames {
		entries[i] = ManifestEntry{
			Frame:     fr.Index,
			Azimuth:   fr.Camera.Azimuth,
			Elevation: fr.Camera.Elevation,
			Radius:    fr.Camera.Radius,
			Eye:       [3]float64{fr.Eye.X, fr.Eye.Y, fr.Eye.Z},
			Image:     FrameFileName(fr.Index, format),
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
