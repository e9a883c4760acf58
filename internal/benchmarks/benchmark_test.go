package benchmarks

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/tools/txtar"
	"znkr.io/algebra"
	"znkr.io/algebra/internal/random"
)

type testdata struct {
	name string
	x, y string
}

func loadTestdata(t testing.TB) []testdata {
	t.Helper()
	testFiles, err := filepath.Glob("testdata/*.test")
	if err != nil {
		t.Fatalf("Failed to read testdata: %v", err)
	}
	var tests []testdata
	for _, filename := range testFiles {
		ar, err := txtar.ParseFile(filename)
		if err != nil {
			t.Fatalf("failed to parse test case: %v", err)
		}
		name := strings.TrimPrefix(filename, "testdata/")
		test := testdata{
			name: name,
		}

		for _, f := range ar.Files {
			switch f.Name {
			case "x":
				test.x = string(bytes.TrimSpace(f.Data))
			case "y":
				test.y = string(bytes.TrimSpace(f.Data))
			default:
				t.Fatalf("unknown file in archive: %v", f)
			}
		}
		tests = append(tests, test)
	}
	return tests
}

// Implementations that always find a minimal alignment agree on the distance.
func TestMinimalImpls(t *testing.T) {
	minimal := map[string]bool{"algebra": true, "algebra-graph": true, "algebra-extract": true, "mb0": true}
	rng := random.New(1, 2)
	for range 200 {
		x, y := random.Sequence(rng, 0, 50), random.Sequence(rng, 0, 50)
		want := algebra.EditDistance(x, y)
		for _, impl := range Impls {
			if !minimal[impl.Name] {
				continue
			}
			if got := impl.Distance(x, y); got != want {
				t.Errorf("%s: Distance(%q, %q) = %d, want %d", impl.Name, x, y, got, want)
			}
		}
	}
}

func BenchmarkDistance(b *testing.B) {
	for _, impl := range Impls {
		b.Run("impl="+impl.Name, func(b *testing.B) {
			for _, td := range loadTestdata(b) {
				b.Run("name="+td.name, func(b *testing.B) {
					for b.Loop() {
						_ = impl.Distance(td.x, td.y)
					}
					b.StopTimer()

					b.ReportMetric(float64(impl.Distance(td.x, td.y)), "distance")
				})
			}
		})
	}
}
