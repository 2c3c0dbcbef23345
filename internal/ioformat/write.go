// SPDX-License-Identifier: MIT

package ioformat

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/graphon/matrix"
	"github.com/katalvlaran/graphon/usvt"
	"gopkg.in/yaml.v3"
)

// Record is the serialized form of a usvt.Result.
type Record struct {
	Vertices       []string    `json:"vertices,omitempty" yaml:"vertices,omitempty"`
	Observations   int         `json:"observations" yaml:"observations"`
	Eta            float64     `json:"eta" yaml:"eta"`
	Threshold      float64     `json:"threshold" yaml:"threshold"`
	Rank           int         `json:"rank" yaml:"rank"`
	Retained       []int       `json:"retained" yaml:"retained"`
	SingularValues []float64   `json:"singular_values" yaml:"singular_values"`
	Probability    [][]float64 `json:"probability" yaml:"probability"`
}

// NewRecord flattens res. vertices may be nil.
func NewRecord(res *usvt.Result, vertices []matrix.VertexID) Record {
	rec := Record{
		Observations:   res.Observations,
		Eta:            res.Eta,
		Threshold:      res.Threshold,
		Rank:           res.Rank,
		Retained:       res.Retained,
		SingularValues: res.SingularValues,
		Probability:    res.Probability.ToRows(),
	}
	if len(vertices) > 0 {
		rec.Vertices = make([]string, len(vertices))
		copy(rec.Vertices, vertices)
	}

	return rec
}

// WriteRecord encodes rec to w as "json" or "yaml". pretty indents JSON.
func WriteRecord(w io.Writer, rec Record, format string, pretty bool) error {
	switch strings.ToLower(format) {
	case FormatJSON:
		enc := json.NewEncoder(w)
		if pretty {
			enc.SetIndent("", "  ")
		}
		return enc.Encode(rec)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: output %q", ErrUnknownFormat, format)
	}
}
