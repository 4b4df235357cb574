package img2ascii

import (
	"cmp"
	"math"
)

// EvenBucket spreads items over bucketCount buckets by striding through
// them at len(items)/bucketCount, rounding each fractional index to the
// nearest integer (halves to even). Bucket m holds the item found at
// step m, so the whole range of items is covered even when the two sizes
// do not divide each other.
//
// When bucketCount <= len(items) the chosen source indices are strictly
// increasing and every bucket in [0, bucketCount) is present. When there
// are more buckets than items, items repeat and the walk stops as soon as
// the rounded index runs past the last item, so only the highest buckets
// can be missing.
func EvenBucket[T any](items []T, bucketCount int) *OrderedMap[int, T] {
	buckets := NewOrderedMap[int, T]()
	if bucketCount <= 0 || len(items) == 0 {
		return buckets
	}

	step := float64(len(items)) / float64(bucketCount)
	for m := 0; m < bucketCount; m++ {
		idx := int(math.RoundToEven(float64(m) * step))
		if idx >= len(items) {
			break
		}
		buckets.Set(m, items[idx])
	}
	return buckets
}

// KeyToValueJoin chains primary with secondary: each primary key is
// mapped to secondary[primary[key]]. A primary value missing from
// secondary is dropped, unless useFallback is set, in which case the key
// receives the value stored under the largest key of secondary.
func KeyToValueJoin[K1 comparable, V1 cmp.Ordered, V2 any](
	primary *OrderedMap[K1, V1],
	secondary *OrderedMap[V1, V2],
	useFallback bool,
) *OrderedMap[K1, V2] {
	out := NewOrderedMap[K1, V2]()

	var fallback V2
	haveFallback := false
	if useFallback {
		fallback, haveFallback = LastByKey(secondary)
	}

	for k, v := range primary.All() {
		if w, ok := secondary.Get(v); ok {
			out.Set(k, w)
		} else if haveFallback {
			out.Set(k, fallback)
		}
	}
	return out
}

// ValueToValueJoin re-indexes secondary by the values of primary: for
// every key shared by both maps, primary[key] is mapped to
// secondary[key]. Misses follow the same fallback rule as
// KeyToValueJoin. When several primary keys carry the same value the
// last one wins.
func ValueToValueJoin[K1 cmp.Ordered, V1 comparable, V2 any](
	primary *OrderedMap[K1, V1],
	secondary *OrderedMap[K1, V2],
	useFallback bool,
) *OrderedMap[V1, V2] {
	out := NewOrderedMap[V1, V2]()

	var fallback V2
	haveFallback := false
	if useFallback {
		fallback, haveFallback = LastByKey(secondary)
	}

	for k, v := range primary.All() {
		if w, ok := secondary.Get(k); ok {
			out.Set(v, w)
		} else if haveFallback {
			out.Set(v, fallback)
		}
	}
	return out
}

// BrightnessToGlyph builds the brightness value -> glyph table used by
// AssignCharacters. The distinct brightness values and the glyphs are
// both bucketed over the same K = len(distinct) indices and joined on
// the bucket index.
//
// A single distinct value is clamped to the last-ranked glyph, the same
// extreme glyph unmatched values fall back to.
func BrightnessToGlyph(distinct []int, glyphs GlyphSequence) *OrderedMap[int, rune] {
	k := len(distinct)
	if k == 1 && len(glyphs) > 0 {
		table := NewOrderedMap[int, rune]()
		table.Set(distinct[0], glyphs[len(glyphs)-1])
		return table
	}

	glyphBuckets := EvenBucket([]rune(glyphs), k)
	brightnessBuckets := EvenBucket(distinct, k)
	return ValueToValueJoin(brightnessBuckets, glyphBuckets, false)
}

// AssignCharacters derives a character for every coordinate of grid.
// Darker blocks get glyphs from the front of glyphs, brighter blocks
// from the back; coordinates sharing a brightness value always share a
// character. Every coordinate of grid is present in the result.
//
// An empty glyph sequence is a configuration error when there is
// anything to assign.
func AssignCharacters(grid *BrightnessGrid, glyphs GlyphSequence) (*CharGrid, error) {
	if grid.Len() == 0 {
		return NewOrderedMap[Coordinate, rune](), nil
	}
	if len(glyphs) == 0 {
		return nil, &ConfigError{
			Field:  "glyphs",
			Reason: "cannot assign characters",
			Err:    ErrEmptyGlyphs,
		}
	}

	table := BrightnessToGlyph(DistinctBrightness(grid), glyphs)
	return KeyToValueJoin(grid, table, true), nil
}
