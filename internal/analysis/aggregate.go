package analysis

import (
	"sort"

	"playhist/internal/history"
)

// DefaultTopN is how many groups the ranked tables keep by default.
const DefaultTopN = 10

const msPerHour = 3_600_000

// Aggregate computes every derived view over the filtered records. An empty
// view yields a well-defined zero result.
func Aggregate(view []history.Record) Result {
	return Result{
		TotalHours:      TotalHours(view),
		TotalPlays:      len(view),
		TopArtists:      TopArtists(view, DefaultTopN),
		TopTracks:       TopTracks(view, DefaultTopN),
		HourlyPlays:     HourlyPlays(view),
		PlaytimeBuckets: PlaytimeBuckets(view, DefaultBins),
		PlatformCounts:  PlatformCounts(view),
	}
}

// TotalHours sums ms_played over the view and converts to hours. The sum is
// accumulated as an int64 so large histories don't lose precision before the
// final conversion.
func TotalHours(view []history.Record) float64 {
	var ms int64
	for _, r := range view {
		ms += r.MsPlayed
	}
	return float64(ms) / msPerHour
}

// TopArtists groups the view by artist, sums listening time per artist, and
// returns the n biggest groups. n <= 0 returns all groups.
func TopArtists(view []history.Record, n int) []GroupHours {
	return topGroups(view, n, func(r history.Record) string { return r.Artist })
}

// TopTracks is TopArtists grouped by track name.
func TopTracks(view []history.Record, n int) []GroupHours {
	return topGroups(view, n, func(r history.Record) string { return r.Track })
}

func topGroups(view []history.Record, n int, key func(history.Record) string) []GroupHours {
	type group struct {
		name  string
		ms    int64
		plays int
	}

	byName := make(map[string]*group)
	var order []*group
	for _, r := range view {
		k := key(r)
		g, ok := byName[k]
		if !ok {
			g = &group{name: k}
			byName[k] = g
			order = append(order, g)
		}
		g.ms += r.MsPlayed
		g.plays++
	}

	// Stable sort so that groups with equal playtime keep their
	// first-appearance order.
	sort.SliceStable(order, func(i, j int) bool {
		return order[i].ms > order[j].ms
	})
	if n > 0 && len(order) > n {
		order = order[:n]
	}

	out := make([]GroupHours, len(order))
	for i, g := range order {
		out[i] = GroupHours{
			Name:  g.name,
			Hours: float64(g.ms) / msPerHour,
			Plays: g.plays,
		}
	}
	return out
}

// PlatformCounts counts plays per platform, most-played first. All distinct
// platforms are returned, not just a top N.
func PlatformCounts(view []history.Record) []PlatformCount {
	counts := make(map[string]int)
	var order []string
	for _, r := range view {
		if _, ok := counts[r.Platform]; !ok {
			order = append(order, r.Platform)
		}
		counts[r.Platform]++
	}

	out := make([]PlatformCount, 0, len(order))
	for _, p := range order {
		out = append(out, PlatformCount{Platform: p, Count: counts[p]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
