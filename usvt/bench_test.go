// SPDX-License-Identifier: MIT
package usvt_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/graphon/usvt"
)

var sinkResult *usvt.Result

func BenchmarkEstimate(b *testing.B) {
	for _, n := range []int{32, 64, 128} {
		a := blockAdjacency(b, n, 0.7, 0.1, 42)
		for name, dec := range decomposers() {
			if name == "jacobi" && n > 64 {
				continue
			}
			dec := dec
			b.Run(fmt.Sprintf("%s/n=%d", name, n), func(b *testing.B) {
				b.ReportAllocs()
				for i := 0; i < b.N; i++ {
					res, err := usvt.EstimateMatrix(a, usvt.WithDecomposer(dec))
					if err != nil {
						b.Fatal(err)
					}
					sinkResult = res
				}
			})
		}
	}
}
