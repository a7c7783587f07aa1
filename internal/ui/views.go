package ui

import (
	"fmt"
	"strings"

	"playhist/internal/analysis"
)

const viewBarWidth = 30

func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	if a.mode == modeFilter {
		return a.picker.view() + helpStyle.Render(
			"space toggle · a all · n none · enter/esc back")
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Spotify History"))
	b.WriteString("  ")
	b.WriteString(a.tabBar())
	b.WriteString("\n\n")

	if len(a.view) == 0 {
		b.WriteString(warningStyle.Render("No data matches the current filters."))
	} else {
		switch a.mode {
		case modeOverview:
			b.WriteString(a.overviewView())
		case modeHourly:
			b.WriteString(a.hourlyView())
		case modeDurations:
			b.WriteString(a.durationsView())
		case modePlatforms:
			b.WriteString(a.platformsView())
		}
	}

	b.WriteString(helpStyle.Render(
		"\n1-4 views · A artists · B albums · P platforms · r reset filters · q quit"))
	return b.String()
}

func (a App) tabBar() string {
	labels := []string{"1 Overview", "2 Hourly", "3 Durations", "4 Platforms"}
	var tabs []string
	for i, label := range labels {
		if mode(i) == a.mode {
			tabs = append(tabs, activeTabStyle.Render(label))
		} else {
			tabs = append(tabs, tabStyle.Render(label))
		}
	}
	return strings.Join(tabs, " ")
}

func (a App) overviewView() string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s %s\n\n",
		metricStyle.Render(fmt.Sprintf("Total listening time: %.1f h", a.res.TotalHours)),
		mutedStyle.Render(fmt.Sprintf("(%d plays)", a.res.TotalPlays)))

	b.WriteString(rankingView("Top Artists", a.res.TopArtists))
	b.WriteString("\n")
	b.WriteString(rankingView("Top Tracks", a.res.TopTracks))
	return b.String()
}

func rankingView(title string, groups []analysis.GroupHours) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	for i, g := range groups {
		fmt.Fprintf(&b, "%2d. %-40s %6.1f h  %s\n",
			i+1, truncate(g.Name, 40), g.Hours,
			mutedStyle.Render(fmt.Sprintf("%d plays", g.Plays)))
	}
	return b.String()
}

func (a App) hourlyView() string {
	max := 0
	for _, h := range a.res.HourlyPlays {
		if h.Plays > max {
			max = h.Plays
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Listening by Hour of Day"))
	b.WriteString("\n")
	for _, h := range a.res.HourlyPlays {
		fmt.Fprintf(&b, "%02d  %-*s %d\n", h.Hour, viewBarWidth, viewBar(h.Plays, max), h.Plays)
	}
	return b.String()
}

func (a App) durationsView() string {
	buckets := a.res.PlaytimeBuckets
	if len(buckets) == 0 {
		return warningStyle.Render("No plays of 5 seconds or longer.")
	}

	max := 0
	for _, bkt := range buckets {
		if bkt.Count > max {
			max = bkt.Count
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Playtime Distribution (s)"))
	b.WriteString("\n")
	for _, bkt := range buckets {
		fmt.Fprintf(&b, "%9.0f  %-*s %d\n", bkt.Low, viewBarWidth, viewBar(bkt.Count, max), bkt.Count)
	}
	return b.String()
}

func (a App) platformsView() string {
	max := 0
	for _, p := range a.res.PlatformCounts {
		if p.Count > max {
			max = p.Count
		}
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Top Platforms"))
	b.WriteString("\n")
	for _, p := range a.res.PlatformCounts {
		fmt.Fprintf(&b, "%-25s %-*s %d\n", truncate(p.Platform, 25), viewBarWidth, viewBar(p.Count, max), p.Count)
	}
	return b.String()
}

func viewBar(count, max int) string {
	if max == 0 {
		return ""
	}
	return strings.Repeat("▇", count*viewBarWidth/max)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
