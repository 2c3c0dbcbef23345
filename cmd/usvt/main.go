// SPDX-License-Identifier: MIT

// Command usvt estimates an edge-probability matrix from adjacency observations.
//
//	usvt [flags] [input-file|-]
package main

import "os"

var version = "dev"

func main() {
	os.Exit(Execute(version, os.Args[1:]))
}
