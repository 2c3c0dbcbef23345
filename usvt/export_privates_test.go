// SPDX-License-Identifier: MIT

package usvt

// Test-only access to the reconstruction paths.
var (
	ReconstructRankOne = reconstructRankOne
	ReconstructLowRank = reconstructLowRank
)
