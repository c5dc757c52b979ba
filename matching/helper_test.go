package matching

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"rfmatch/unit"
)

var (
	w275  = 2 * math.Pi * 275e9
	w175M = 2 * math.Pi * 175e6
	zA    = complex(42.4, -19.6)
	zB    = complex(212.3, 43.2)
)

// 数值比较容忍 NaN 与 1e-9 相对误差
var approx = cmp.Options{
	cmpopts.EquateNaNs(),
	cmpopts.EquateApprox(1e-9, 1e-12),
}

func check[T any](t *testing.T, name string, want, got T) {
	t.Helper()
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("%s mismatch (-want +got):\n%s", name, diff)
	}
}

const (
	fF = unit.Femto
	pH = unit.Pico
)
