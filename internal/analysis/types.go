package analysis

// Result bundles every derived view computed from one filtered set of
// records. All fields are pure functions of the input view.
type Result struct {
	TotalHours      float64         `yaml:"total_hours"`
	TotalPlays      int             `yaml:"total_plays"`
	TopArtists      []GroupHours    `yaml:"top_artists"`
	TopTracks       []GroupHours    `yaml:"top_tracks"`
	HourlyPlays     []HourCount     `yaml:"hourly_plays"`
	PlaytimeBuckets []Bucket        `yaml:"playtime_buckets"`
	PlatformCounts  []PlatformCount `yaml:"platform_counts"`
}

// GroupHours is one row of a ranked table: a group (artist or track) with
// its summed listening time.
type GroupHours struct {
	Name  string  `yaml:"name"`
	Hours float64 `yaml:"hours"`
	Plays int     `yaml:"plays"`
}

type HourCount struct {
	Hour  int `yaml:"hour"`
	Plays int `yaml:"plays"`
}

// Bucket is one bin of the playtime-duration histogram, covering
// [Low, High) seconds.
type Bucket struct {
	Low   float64 `yaml:"low"`
	High  float64 `yaml:"high"`
	Count int     `yaml:"count"`
}

type PlatformCount struct {
	Platform string `yaml:"platform"`
	Count    int    `yaml:"count"`
}
