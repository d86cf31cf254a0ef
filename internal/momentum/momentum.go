// Package momentum measures how quickly vendors ship features over a trailing window.
package momentum

import (
	"math"
	"sort"
	"time"

	"platform-finder/internal/models"
)

const (
	DefaultWindowDays = 90
	MaxWindowDays     = 730
	SparklineWeeks    = 12

	trendingRatio = 1.2
	slowingRatio  = 0.8
)

// releaseDate parses a date-only release (midnight UTC) or a full RFC 3339 timestamp.
func releaseDate(s string) (time.Time, bool) {
	if t, err := time.Parse(time.DateOnly, s); err == nil {
		return t, true
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, true
	}
	return time.Time{}, false
}

// inRange is inclusive at both ends. Unparseable dates are never in range.
func inRange(f models.SystemFeature, start, end time.Time) bool {
	t, ok := releaseDate(f.ReleaseDate)
	return ok && !t.Before(start) && !t.After(end)
}

func featuresInRange(features []models.SystemFeature, start, end time.Time) []models.SystemFeature {
	out := []models.SystemFeature{}
	for _, f := range features {
		if inRange(f, start, end) {
			out = append(out, f)
		}
	}
	return out
}

func countInRange(features []models.SystemFeature, start, end time.Time) int {
	n := 0
	for _, f := range features {
		if inRange(f, start, end) {
			n++
		}
	}
	return n
}

// halves splits the window at its midpoint. A release exactly on the
// midpoint counts in both halves.
func halves(features []models.SystemFeature, start, end time.Time) (recent, previous int) {
	mid := start.Add(end.Sub(start) / 2)
	return countInRange(features, mid, end), countInRange(features, start, mid)
}

func roundHalfUp(x float64) int {
	return int(math.Floor(x + 0.5))
}

// TrendOf classifies the later half against the earlier one.
func TrendOf(recent, previous int) models.Trend {
	if previous == 0 {
		if recent > 0 {
			return models.TrendTrending
		}
		return models.TrendStable
	}
	ratio := float64(recent) / float64(previous)
	switch {
	case ratio > trendingRatio:
		return models.TrendTrending
	case ratio < slowingRatio:
		return models.TrendSlowing
	default:
		return models.TrendStable
	}
}

// Velocity is the rounded percentage growth from previous to recent.
// Growth from nothing counts as 100.
func Velocity(recent, previous int) int {
	if previous == 0 {
		if recent > 0 {
			return 100
		}
		return 0
	}
	return roundHalfUp(float64(recent-previous) / float64(previous) * 100)
}

// Sparkline counts releases per week for the given number of weeks ending at end, oldest first.
func Sparkline(features []models.SystemFeature, end time.Time, weeks int) []int {
	data := make([]int, 0, weeks)
	for i := weeks - 1; i >= 0; i-- {
		weekEnd := end.AddDate(0, 0, -7*i)
		weekStart := weekEnd.AddDate(0, 0, -7)
		data = append(data, countInRange(features, weekStart, weekEnd))
	}
	return data
}

// ToolFeatureCounts ranks vendors by releases in the window, most first.
func ToolFeatureCounts(systems []models.SystemFeatures, start, end time.Time) []models.ToolFeatureCount {
	out := make([]models.ToolFeatureCount, 0, len(systems))
	for _, s := range systems {
		recent, previous := halves(s.Features, start, end)
		in := featuresInRange(s.Features, start, end)
		out = append(out, models.ToolFeatureCount{
			ToolName:      s.CompanyName,
			Count:         len(in),
			Features:      in,
			Trend:         TrendOf(recent, previous),
			SparklineData: Sparkline(s.Features, end, SparklineWeeks),
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// CategoryDistribution shares the window's releases out by category.
// Every category is present, zero counts included.
func CategoryDistribution(systems []models.SystemFeatures, start, end time.Time) []models.CategoryDistribution {
	counts := make(map[models.FeatureCategory]int, len(models.FeatureCategories))
	total := 0
	for _, s := range systems {
		for _, f := range s.Features {
			if inRange(f, start, end) {
				counts[f.Category]++
				total++
			}
		}
	}

	out := make([]models.CategoryDistribution, 0, len(models.FeatureCategories))
	for _, c := range models.FeatureCategories {
		d := models.CategoryDistribution{Category: c, Count: counts[c]}
		if total > 0 {
			d.Percentage = roundHalfUp(float64(counts[c]) / float64(total) * 100)
		}
		out = append(out, d)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Count > out[j].Count })
	return out
}

// FastestGrowing ranks vendors by velocity, highest first.
func FastestGrowing(systems []models.SystemFeatures, start, end time.Time) []models.VelocityScore {
	out := make([]models.VelocityScore, 0, len(systems))
	for _, s := range systems {
		recent, previous := halves(s.Features, start, end)
		out = append(out, models.VelocityScore{
			ToolName:      s.CompanyName,
			Score:         Velocity(recent, previous),
			Trend:         TrendOf(recent, previous),
			RecentCount:   recent,
			PreviousCount: previous,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Score > out[j].Score })
	return out
}

// Timeline buckets the window's releases by release date, oldest first.
func Timeline(systems []models.SystemFeatures, start, end time.Time) []models.TimelineDataPoint {
	index := map[string]int{}
	var points []models.TimelineDataPoint
	for _, s := range systems {
		for _, f := range s.Features {
			if !inRange(f, start, end) {
				continue
			}
			i, ok := index[f.ReleaseDate]
			if !ok {
				i = len(points)
				index[f.ReleaseDate] = i
				points = append(points, models.TimelineDataPoint{Date: f.ReleaseDate})
			}
			points[i].Count++
			points[i].Features = append(points[i].Features, models.TimelineFeature{
				ToolName:    s.CompanyName,
				FeatureName: f.FeatureName,
				Category:    f.Category,
			})
		}
	}

	sort.SliceStable(points, func(i, j int) bool {
		a, _ := releaseDate(points[i].Date)
		b, _ := releaseDate(points[j].Date)
		return a.Before(b)
	})
	if points == nil {
		return []models.TimelineDataPoint{}
	}
	return points
}

// Calculate builds the tracker data for the days before now. A non-positive
// days selects DefaultWindowDays.
func Calculate(systems []models.SystemFeatures, days int, now time.Time) models.MomentumData {
	if days <= 0 {
		days = DefaultWindowDays
	}
	end := now.UTC()
	start := end.AddDate(0, 0, -days)

	return models.MomentumData{
		ToolFeatureCounts:    ToolFeatureCounts(systems, start, end),
		CategoryDistribution: CategoryDistribution(systems, start, end),
		FastestGrowingTools:  FastestGrowing(systems, start, end),
		TimelineData:         Timeline(systems, start, end),
		DateRange:            models.DateRange{Start: start, End: end, Days: days},
	}
}
