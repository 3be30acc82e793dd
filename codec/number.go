package codec

import (
	"context"
	"math"

	wktcrs "github.com/reoring/wktcrs"
)

// Float64 returns a Codec between numeric literals and float64. Decoding
// trusts the literal over the cached value; encoding uses the shortest
// literal that reads back to the same float.
func Float64() wktcrs.Codec[wktcrs.Number, float64] { return float64Codec{} }

type float64Codec struct{}

func (float64Codec) Decode(ctx context.Context, a wktcrs.Number) (float64, error) {
	if a.Literal == "" {
		return a.Value, nil
	}
	n, err := wktcrs.ParseNumber(a.Literal)
	if err != nil {
		return 0, invalid(a.Literal, "number", err)
	}
	return n.Value, nil
}

func (float64Codec) Encode(ctx context.Context, b float64) (wktcrs.Number, error) {
	if math.IsNaN(b) || math.IsInf(b, 0) {
		return wktcrs.Number{}, invalid(wktcrs.Num(b).String(), "finite number", nil)
	}
	return wktcrs.Num(b), nil
}
