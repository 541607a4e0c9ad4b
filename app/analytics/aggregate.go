package analytics

import (
	"sort"
	"time"

	"github.com/Pranav-2024-Mishra/Social-Media-Post-Engagement-Dashboard/app/dataset"
)

type Metric string

const (
	MetricLikes    Metric = "likes"
	MetricShares   Metric = "shares"
	MetricComments Metric = "comments"
)

var AllMetrics = []Metric{MetricLikes, MetricShares, MetricComments}

// Summary is the KPI block shown at the top of the dashboard.
type Summary struct {
	TotalPosts    int     `json:"total_posts"`
	TotalLikes    int     `json:"total_likes"`
	TotalShares   int     `json:"total_shares"`
	TotalComments int     `json:"total_comments"`
	AvgEngagement float64 `json:"avg_engagement"`
}

type CategoryTotals struct {
	ContentType string         `json:"content_type"`
	Totals      map[Metric]int `json:"totals"`
}

type CategoryCount struct {
	ContentType string `json:"content_type"`
	Count       int    `json:"count"`
}

type DailyTotal struct {
	Date       time.Time `json:"date"`
	Engagement int       `json:"engagement"`
}

type WeekdayTotal struct {
	Weekday    string `json:"weekday"`
	Engagement int    `json:"engagement"`
}

// Summarize computes the KPI block. Average engagement is zero on an empty
// input rather than NaN.
func Summarize(posts []dataset.Post) Summary {
	summary := Summary{TotalPosts: len(posts)}

	totalEngagement := 0
	for _, post := range posts {
		summary.TotalLikes += post.Likes
		summary.TotalShares += post.Shares
		summary.TotalComments += post.Comments
		totalEngagement += post.Engagement()
	}

	if len(posts) > 0 {
		summary.AvgEngagement = float64(totalEngagement) / float64(len(posts))
	}

	return summary
}

// TopNByEngagement returns at most n posts ranked by engagement descending.
// The sort is stable: ties keep their original row order.
func TopNByEngagement(posts []dataset.Post, n int) []dataset.Post {
	if n <= 0 || len(posts) == 0 {
		return []dataset.Post{}
	}

	ranked := make([]dataset.Post, len(posts))
	copy(ranked, posts)

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Engagement() > ranked[j].Engagement()
	})

	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}

// GroupSumByCategory sums each listed metric per distinct content type.
// Categories appear in first-seen order.
func GroupSumByCategory(posts []dataset.Post, metrics []Metric) []CategoryTotals {
	order := []string{}
	byCategory := map[string]*CategoryTotals{}

	for _, post := range posts {
		totals, ok := byCategory[post.ContentType]
		if !ok {
			totals = &CategoryTotals{
				ContentType: post.ContentType,
				Totals:      make(map[Metric]int, len(metrics)),
			}
			byCategory[post.ContentType] = totals
			order = append(order, post.ContentType)
		}
		for _, metric := range metrics {
			totals.Totals[metric] += metricValue(post, metric)
		}
	}

	result := make([]CategoryTotals, 0, len(order))
	for _, category := range order {
		result = append(result, *byCategory[category])
	}
	return result
}

// CountByCategory counts posts per content type in first-seen order.
func CountByCategory(posts []dataset.Post) []CategoryCount {
	order := []string{}
	counts := map[string]int{}

	for _, post := range posts {
		if _, ok := counts[post.ContentType]; !ok {
			order = append(order, post.ContentType)
		}
		counts[post.ContentType]++
	}

	result := make([]CategoryCount, 0, len(order))
	for _, category := range order {
		result = append(result, CategoryCount{ContentType: category, Count: counts[category]})
	}
	return result
}

// GroupSumByDay sums engagement per calendar date in chronological order.
// Posts without a date are skipped.
func GroupSumByDay(posts []dataset.Post) []DailyTotal {
	totals := map[time.Time]int{}

	for _, post := range posts {
		day, ok := post.Day()
		if !ok {
			continue
		}
		totals[day] += post.Engagement()
	}

	result := make([]DailyTotal, 0, len(totals))
	for day, engagement := range totals {
		result = append(result, DailyTotal{Date: day, Engagement: engagement})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Date.Before(result[j].Date)
	})
	return result
}

// GroupSumByWeekday sums engagement per weekday, ordered Monday through
// Sunday. Weekdays with no posts are omitted rather than zero-filled.
func GroupSumByWeekday(posts []dataset.Post) []WeekdayTotal {
	totals := map[string]int{}

	for _, post := range posts {
		weekday, ok := post.Weekday()
		if !ok {
			continue
		}
		totals[weekday] += post.Engagement()
	}

	result := make([]WeekdayTotal, 0, len(totals))
	for _, weekday := range dataset.WeekdayOrder {
		if engagement, ok := totals[weekday]; ok {
			result = append(result, WeekdayTotal{Weekday: weekday, Engagement: engagement})
		}
	}
	return result
}

// ArgmaxByEngagement returns the single post with the highest engagement.
// Ties resolve to the first occurrence. The second return value is false on
// empty input.
func ArgmaxByEngagement(posts []dataset.Post) (dataset.Post, bool) {
	if len(posts) == 0 {
		return dataset.Post{}, false
	}

	top := posts[0]
	for _, post := range posts[1:] {
		if post.Engagement() > top.Engagement() {
			top = post
		}
	}
	return top, true
}

func metricValue(post dataset.Post, metric Metric) int {
	switch metric {
	case MetricLikes:
		return post.Likes
	case MetricShares:
		return post.Shares
	case MetricComments:
		return post.Comments
	default:
		return 0
	}
}
