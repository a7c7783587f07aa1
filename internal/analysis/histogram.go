package analysis

import "playhist/internal/history"

// DefaultBins is the bin count for the playtime-duration histogram.
const DefaultBins = 50

// Plays shorter than this are treated as skips and excluded from the
// duration histogram (only there - they still count everywhere else).
const minPlaySeconds = 5.0

// HourlyPlays counts plays per hour of day. The result always has exactly 24
// entries in ascending hour order; hours with no plays report zero.
func HourlyPlays(view []history.Record) []HourCount {
	counts := make([]HourCount, 24)
	for h := range counts {
		counts[h].Hour = h
	}
	for _, r := range view {
		counts[r.Timestamp.Hour()].Plays++
	}
	return counts
}

// PlaytimeBuckets bins playtime_s into equal-width buckets spanning the
// observed min-max range of the 5s+ subset. A degenerate range (all values
// equal) collapses to a single bucket; an empty subset yields no buckets.
func PlaytimeBuckets(view []history.Record, bins int) []Bucket {
	var secs []float64
	for _, r := range view {
		if r.PlaytimeSeconds >= minPlaySeconds {
			secs = append(secs, r.PlaytimeSeconds)
		}
	}
	if len(secs) == 0 {
		return nil
	}

	lo, hi := secs[0], secs[0]
	for _, s := range secs[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}

	if bins <= 1 || lo == hi {
		return []Bucket{{Low: lo, High: hi, Count: len(secs)}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]Bucket, bins)
	for i := range out {
		out[i].Low = lo + float64(i)*width
		out[i].High = lo + float64(i+1)*width
	}
	for _, s := range secs {
		i := int((s - lo) / width)
		if i >= bins {
			// The max value falls exactly on the upper edge.
			i = bins - 1
		}
		out[i].Count++
	}
	return out
}
