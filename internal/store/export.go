package store

import (
	"encoding/json"
	"io"
	"os"

	"github.com/macma/seamtrace/internal/signature"
)

// ExportData is the on-disk shape of a signature bundle. Field names
// follow the bundle contract consumed by external plotting and export
// collaborators: t, u/v or 3D coordinates, theta, delta, w1, coords_3d,
// frames. Export is append-only source data; nothing here is read back
// into the pipeline.
type ExportData struct {
	Manifold string `json:"manifold"`
	Samples  int    `json:"samples"`

	T []float64 `json:"t"`

	U []float64 `json:"u,omitempty"`
	V []float64 `json:"v,omitempty"`
	X []float64 `json:"x,omitempty"`
	Y []float64 `json:"y,omitempty"`
	Z []float64 `json:"z,omitempty"`

	Theta []float64 `json:"theta"`
	Delta []float64 `json:"delta"`
	W1    []int     `json:"w1"`

	Coords3D [][3]float64    `json:"coords_3d"`
	Frames   [][3][3]float64 `json:"frames"`

	Helicity      []float64 `json:"helicity,omitempty"`
	SeamCrossings int       `json:"seam_crossings,omitempty"`

	Transitions []TransitionData `json:"chart_transitions,omitempty"`
}

type TransitionData struct {
	Index int     `json:"index"`
	Time  float64 `json:"time"`
	From  int     `json:"from"`
	To    int     `json:"to"`
}

func toExportData(b *signature.Bundle) ExportData {
	data := ExportData{
		Manifold:      b.Manifold,
		Samples:       b.Len(),
		T:             b.T,
		U:             b.U,
		V:             b.V,
		X:             b.X,
		Y:             b.Y,
		Z:             b.Z,
		Theta:         b.Theta,
		Delta:         b.Delta,
		W1:            b.W1,
		Coords3D:      make([][3]float64, b.Len()),
		Frames:        make([][3][3]float64, b.Len()),
		Helicity:      b.Helicity,
		SeamCrossings: b.SeamCrossings,
	}

	for i, p := range b.Coords {
		data.Coords3D[i] = [3]float64{p.X, p.Y, p.Z}
	}
	for i, f := range b.Frames {
		data.Frames[i] = [3][3]float64{
			{f.Ru.X, f.Ru.Y, f.Ru.Z},
			{f.Rv.X, f.Rv.Y, f.Rv.Z},
			{f.Normal.X, f.Normal.Y, f.Normal.Z},
		}
	}
	for _, tr := range b.Transitions {
		data.Transitions = append(data.Transitions, TransitionData{
			Index: tr.Index, Time: tr.Time, From: tr.From, To: tr.To,
		})
	}

	return data
}

func ExportJSON(path string, b *signature.Bundle) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return writeJSON(file, b)
}

func ExportJSONStdout(b *signature.Bundle) error {
	return writeJSON(os.Stdout, b)
}

func writeJSON(w io.Writer, b *signature.Bundle) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(toExportData(b))
}
