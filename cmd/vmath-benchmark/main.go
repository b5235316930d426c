package main

import (
	"flag"
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"
	"time"

	"github.com/lixenwraith/vmath-kit/core"
	"github.com/lixenwraith/vmath-kit/logger"
	"github.com/lixenwraith/vmath-kit/vmath"
)

var (
	filterFlag = flag.String("filter", "", "Only run benchmarks whose name contains this substring")
	seedFlag   = flag.Uint64("seed", 12345, "Seed for deterministic sources")
)

// calls per benchmark iteration
const n = 100

type benchmark struct {
	name string
	fn   func(b *testing.B)
}

// sources pairs each RNG under test with a fresh-instance constructor
var sources = []struct {
	name string
	new  func(seed uint64) vmath.Source
}{
	{"FastRand", func(seed uint64) vmath.Source { return vmath.NewFastRand(seed) }},
	{"rand/v2 PCG", func(seed uint64) vmath.Source { return rand.New(rand.NewPCG(seed, 0)) }},
	{"rand/v2 global", func(uint64) vmath.Source { return nil }},
}

func randomBenchmarks(seed uint64) []benchmark {
	var list []benchmark
	for _, src := range sources {
		list = append(list,
			benchmark{"Random choke=1 / " + src.name, func(b *testing.B) {
				rng := src.new(seed)
				for b.Loop() {
					for i := 0; i < n; i++ {
						_ = vmath.Random(rng, 0, 1000, 1)
					}
				}
			}},
			benchmark{"Random choke=4 / " + src.name, func(b *testing.B) {
				rng := src.new(seed)
				for b.Loop() {
					for i := 0; i < n; i++ {
						_ = vmath.Random(rng, 0, 1000, 4)
					}
				}
			}},
			benchmark{"RandomInt / " + src.name, func(b *testing.B) {
				rng := src.new(seed)
				for b.Loop() {
					for i := 0; i < n; i++ {
						_ = vmath.RandomInt(rng, 0, 1000, 1)
					}
				}
			}},
			benchmark{"Shuffle 100 / " + src.name, func(b *testing.B) {
				rng := src.new(seed)
				items := make([]int, n)
				for i := range items {
					items[i] = i
				}
				for b.Loop() {
					vmath.Shuffle(rng, items, false)
				}
			}},
		)
	}
	return list
}

func deterministicBenchmarks() []benchmark {
	return []benchmark{
		{"Primes(10000)", func(b *testing.B) {
			for b.Loop() {
				_ = vmath.Primes(10000)
			}
		}},
		{"Luhn x100", func(b *testing.B) {
			for b.Loop() {
				for i := uint64(0); i < n; i++ {
					_ = vmath.Luhn(4111111111111111 + i)
				}
			}
		}},
		{"CircleIntersection x100", func(b *testing.B) {
			a := core.Point{X: 0, Y: 0}
			for b.Loop() {
				for i := 0; i < n; i++ {
					c := core.Point{X: float64(i % 10), Y: 5}
					_ = vmath.CircleIntersection(a, 5, c, 5)
				}
			}
		}},
		{"Ease x100", func(b *testing.B) {
			v := 0.0
			for b.Loop() {
				for i := 0; i < n; i++ {
					vmath.EaseProp(&v, 100, vmath.DefaultEaseSpeed)
				}
			}
		}},
		{"Modulo x100", func(b *testing.B) {
			for b.Loop() {
				for i := 0; i < n; i++ {
					_ = vmath.Modulo(float64(-i), 360)
				}
			}
		}},
		{"SplitUint x100", func(b *testing.B) {
			for b.Loop() {
				for i := uint64(0); i < n; i++ {
					_ = vmath.SplitUint(9876543210 + i)
				}
			}
		}},
	}
}

func main() {
	flag.Parse()
	logger.SetConsoleWriter()

	all := append(randomBenchmarks(*seedFlag), deterministicBenchmarks()...)

	fmt.Printf("vmath Benchmark (%d calls per iteration where noted)\n", n)
	fmt.Println("══════════════════════════════════════════════════════════════")
	fmt.Printf("%-40s %12s %12s\n", "Name", "ns/op", "allocs/op")
	fmt.Println("──────────────────────────────────────────────────────────────")

	start := time.Now()
	ran := 0
	for _, bm := range all {
		if *filterFlag != "" && !strings.Contains(bm.name, *filterFlag) {
			continue
		}
		result := testing.Benchmark(bm.fn)
		nsPerOp := float64(result.T.Nanoseconds()) / float64(result.N)
		fmt.Printf("%-40s %10.1f ns %12d\n", bm.name, nsPerOp, result.AllocsPerOp())
		ran++
	}

	fmt.Println("══════════════════════════════════════════════════════════════")
	logger.Log().Info().Int("benchmarks", ran).Dur("elapsed", time.Since(start)).Msg("done")
}
