// SPDX-License-Identifier: MIT

// Package ioformat reads adjacency observations from files and writes
// estimation results.
//
// Input formats:
//
//   - "yaml" / "json": a document with an `observations` list of square 0/1
//     matrices, plus optional `vertices` labels. JSON is read through the same
//     YAML decoder.
//   - "edges": whitespace-separated "u v" pairs, one edge per line. Lines
//     starting with '#' and blank lines are ignored; a line "---" starts the
//     next observation. Separators that would delimit an observation without
//     edges (leading, trailing or repeated "---") are ignored, so every
//     observation has at least one edge. All observations share the union of
//     every endpoint as vertex set, ordered lexicographically.
//
// Output formats: "json" (optionally indented) and "yaml".
package ioformat
