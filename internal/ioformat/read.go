// SPDX-License-Identifier: MIT

package ioformat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/graphon/matrix"
	"gopkg.in/yaml.v3"
)

// Input format names.
const (
	FormatYAML  = "yaml"
	FormatJSON  = "json"
	FormatEdges = "edges"
)

// edgeSeparator starts a new observation in the edge-list format.
const edgeSeparator = "---"

// Input is a decoded set of observations over one vertex set.
type Input struct {
	// Vertices labels rows/columns; nil when the source carried no labels.
	Vertices    []matrix.VertexID
	Adjacencies []matrix.Matrix
}

// document is the YAML/JSON wire shape.
type document struct {
	Vertices     []string      `yaml:"vertices"`
	Observations [][][]float64 `yaml:"observations"`
}

// ReadObservations decodes r according to format.
// Matrix contents are not checked for the adjacency invariants here.
func ReadObservations(r io.Reader, format string) (*Input, error) {
	switch strings.ToLower(format) {
	case FormatYAML, FormatJSON:
		return readDocument(r)
	case FormatEdges:
		return readEdges(r)
	default:
		return nil, fmt.Errorf("%w: input %q", ErrUnknownFormat, format)
	}
}

func readDocument(r io.Reader) (*Input, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrMalformed)
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(doc.Observations) == 0 {
		return nil, fmt.Errorf("%w: no observations", ErrMalformed)
	}

	in := &Input{Adjacencies: make([]matrix.Matrix, 0, len(doc.Observations))}
	for i, rows := range doc.Observations {
		m, err := matrix.NewDenseFromRows(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: observation %d: %w", ErrMalformed, i, err)
		}
		in.Adjacencies = append(in.Adjacencies, m)
	}
	if len(doc.Vertices) > 0 {
		if n := in.Adjacencies[0].Rows(); len(doc.Vertices) != n {
			return nil, fmt.Errorf("%w: %d vertex labels for %d rows", ErrMalformed, len(doc.Vertices), n)
		}
		in.Vertices = make([]matrix.VertexID, len(doc.Vertices))
		copy(in.Vertices, doc.Vertices)
	}

	return in, nil
}

func readEdges(r io.Reader) (*Input, error) {
	var (
		groups  [][]matrix.Edge
		current []matrix.Edge
		all     []matrix.VertexID
		line    int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		switch {
		case text == "" || strings.HasPrefix(text, "#"):
			continue
		case text == edgeSeparator:
			if len(current) > 0 {
				groups = append(groups, current)
			}
			current = nil
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 2 {
			return nil, fmt.Errorf("%w: line %d: want \"u v\", got %q", ErrMalformed, line, text)
		}
		current = append(current, matrix.Edge{From: fields[0], To: fields[1]})
		all = append(all, fields[0], fields[1])
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if len(current) > 0 {
		groups = append(groups, current)
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("%w: no edges", ErrMalformed)
	}

	in := &Input{Adjacencies: make([]matrix.Matrix, 0, len(groups))}
	for i, edges := range groups {
		adj, ids, err := matrix.AdjacencyFromEdges(edges, all...)
		if err != nil {
			return nil, fmt.Errorf("%w: observation %d: %w", ErrMalformed, i, err)
		}
		in.Vertices = ids
		in.Adjacencies = append(in.Adjacencies, adj)
	}

	return in, nil
}
