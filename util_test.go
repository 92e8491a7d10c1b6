package catenary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// approx compares floats with a relative tolerance of fraction and an
// absolute tolerance of margin.
func approx(fraction, margin float64) cmp.Option {
	return cmpopts.EquateApprox(fraction, margin)
}

type config struct {
	distH, distV, slack float64
}

// configs covers flat and steep chains, tight and loose chains, and chains
// with and without a visible minimum. The last two span less than half a
// pixel.
var configs = []config{
	{100, 100, 150},
	{100, 100, 1},
	{100, -100, 1},
	{100, 0, 0},
	{100, 0, 50},
	{1500, 1000, 1000},
	{1500, -1000, 0.5},
	{20, 500, 50},
	{20, -500, 50},
	{10, 0, 5000},
	{1, 1000, 2500},
	{2048, 37, 3000},
	{0.5, 0.25, 0.1},
	{0.3, -100, 50},
	{0.01, -3, 50},
}
