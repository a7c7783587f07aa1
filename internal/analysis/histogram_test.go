package analysis

import (
	"testing"

	"playhist/internal/history"
)

func TestHourlyPlays(t *testing.T) {
	view := []history.Record{
		record("A", "T1", 180000, 10),
		record("B", "T2", 60000, 10),
		record("C", "T3", 60000, 23),
	}

	hourly := HourlyPlays(view)
	if len(hourly) != 24 {
		t.Fatalf("HourlyPlays len = %d, want 24", len(hourly))
	}

	total := 0
	for i, h := range hourly {
		if h.Hour != i {
			t.Errorf("entry %d has hour %d, want ascending hours", i, h.Hour)
		}
		total += h.Plays
	}
	if total != len(view) {
		t.Errorf("sum of counts = %d, want %d", total, len(view))
	}
	if hourly[10].Plays != 2 {
		t.Errorf("hour 10 plays = %d, want 2", hourly[10].Plays)
	}
	if hourly[0].Plays != 0 {
		t.Errorf("hour 0 plays = %d, want 0", hourly[0].Plays)
	}
}

func TestPlaytimeBucketsExcludesSkips(t *testing.T) {
	view := []history.Record{
		record("A", "T1", 2000, 10),  // 2s: skip, excluded
		record("B", "T2", 60000, 10), // 60s
		record("C", "T3", 90000, 10), // 90s
	}

	buckets := PlaytimeBuckets(view, 10)
	total := 0
	for _, b := range buckets {
		total += b.Count
	}
	if total != 2 {
		t.Errorf("bucketed records = %d, want 2 (skip excluded)", total)
	}
	if len(buckets) != 10 {
		t.Errorf("bucket count = %d, want 10", len(buckets))
	}
	if buckets[0].Low != 60 {
		t.Errorf("first bucket low = %v, want observed min 60", buckets[0].Low)
	}
	if buckets[len(buckets)-1].High != 90 {
		t.Errorf("last bucket high = %v, want observed max 90", buckets[len(buckets)-1].High)
	}
}

func TestPlaytimeBucketsMaxValueLandsInLastBucket(t *testing.T) {
	view := []history.Record{
		record("A", "T1", 10000, 10),
		record("B", "T2", 20000, 10),
	}

	buckets := PlaytimeBuckets(view, 5)
	if buckets[len(buckets)-1].Count != 1 {
		t.Errorf("last bucket count = %d, want 1 (max value)", buckets[len(buckets)-1].Count)
	}
}

func TestPlaytimeBucketsDegenerateRange(t *testing.T) {
	view := []history.Record{
		record("A", "T1", 60000, 10),
		record("B", "T2", 60000, 11),
	}

	buckets := PlaytimeBuckets(view, 50)
	if len(buckets) != 1 {
		t.Fatalf("degenerate range buckets = %d, want 1", len(buckets))
	}
	if buckets[0].Count != 2 {
		t.Errorf("single bucket count = %d, want 2", buckets[0].Count)
	}
}

func TestPlaytimeBucketsAllSkips(t *testing.T) {
	view := []history.Record{
		record("A", "T1", 1000, 10),
		record("B", "T2", 3000, 11),
	}

	if buckets := PlaytimeBuckets(view, 50); len(buckets) != 0 {
		t.Errorf("all-skip view buckets = %v, want none", buckets)
	}
}
