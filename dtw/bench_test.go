// SPDX-License-Identifier: MIT
package dtw_test

import (
	"testing"

	"github.com/katalvlaran/reservoir/dtw"
	"github.com/katalvlaran/reservoir/matrix"
)

// benchmarkDTW runs DTW on ramps of lengths n and m using opts.
func benchmarkDTW(b *testing.B, n, m int, opts dtw.Options) {
	a := make([]float64, n)
	bSeq := make([]float64, m)
	for i := range a {
		a[i] = float64(i)
	}
	for j := range bSeq {
		bSeq[j] = float64(j)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dtw.DTW(a, bSeq, &opts); err != nil {
			b.Fatalf("DTW failed: %v", err)
		}
	}
}

func BenchmarkDTW_FullMatrix500(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.FullMatrix
	benchmarkDTW(b, 500, 500, opts)
}

func BenchmarkDTW_TwoRows500(b *testing.B) {
	benchmarkDTW(b, 500, 500, dtw.DefaultOptions())
}

func BenchmarkDTW_NoMemory500(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.MemoryMode = dtw.NoMemory
	benchmarkDTW(b, 500, 500, opts)
}

// BenchmarkDTW_Window forces +Inf cells with a strict band on mismatched lengths.
func BenchmarkDTW_Window(b *testing.B) {
	opts := dtw.DefaultOptions()
	opts.Window = 0
	benchmarkDTW(b, 100, 101, opts)
}

func BenchmarkTrajectories(b *testing.B) {
	const channels, n = 8, 256
	data := make([]float64, channels*n)
	for i := range data {
		data[i] = float64(i%n) / n
	}
	x, err := matrix.NewDenseFrom(channels, n, data)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err = dtw.Trajectories(x, x, nil); err != nil {
			b.Fatal(err)
		}
	}
}
