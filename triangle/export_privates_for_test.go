package triangle

// Test-only re-exports. Keeping them in a separate file makes the surface
// easy to audit; nothing here is part of the public API.

type SpanClass = spanClass

const (
	SpanEmpty      = spanEmpty
	SpanSingle     = spanSingle
	SpanFullRow    = spanFullRow
	SpanShallowRow = spanShallowRow
	SpanInterior   = spanInterior
	SpanFringe     = spanFringe
	SpanMixed      = spanMixed
)

// ClassifySpan exposes the range-sum dispatch decision for per-tier tests.
func ClassifySpan(s Span, row int) SpanClass {
	return classifySpan(s, row)
}
