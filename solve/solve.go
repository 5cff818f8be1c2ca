package solve

import "github.com/katalvlaran/redpath/core"

// Solve routes a query to its variant solver. It is a convenience over
// the exported per-variant entry points; validation, options, and
// result semantics are identical.
//
// Errors: ErrNilGraph, ErrVertexNotFound, ErrUnknownVariant, plus the
// option sentinels from types.go.
func Solve(g *core.Graph, sourceID, targetID string, variant Variant, opts ...Option) (Result, error) {
	switch variant {
	case VariantNone:
		return None(g, sourceID, targetID, opts...)
	case VariantAlternate:
		return Alternate(g, sourceID, targetID, opts...)
	case VariantFew:
		return Few(g, sourceID, targetID, opts...)
	case VariantSome:
		return Some(g, sourceID, targetID, opts...)
	case VariantMany:
		return Many(g, sourceID, targetID, opts...)
	default:
		return Result{}, ErrUnknownVariant
	}
}
