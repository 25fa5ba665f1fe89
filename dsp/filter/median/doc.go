// Package median implements a strided median filter over caller-owned
// buffers with a pluggable median selector.
//
// [Filter] evaluates windows of order samples starting at 0, window,
// 2*window and so on. Output is compacted: dst[0:order] is zero-filled as
// an alignment prefix and the medians follow from dst[order]. Use
// [RequiredLen] to size dst.
//
// The selector is the only place a median is computed. [SortSelector] works
// in the caller's scratch buffer and never allocates; [StatsSelector]
// delegates to github.com/montanaflynn/stats for float64 data.
package median
