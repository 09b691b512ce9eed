package index

import (
	"slices"
	"time"

	"github.com/pfassina/postindex/internal/post"
)

// MonthGroup holds the posts of one calendar month, most recent first.
type MonthGroup struct {
	Month time.Month
	Posts []post.Post
}

// YearGroup holds the non-empty months of one year, most recent first.
type YearGroup struct {
	Year   int
	Months []MonthGroup
}

// Timeline is the chronological index: years, most recent first.
type Timeline []YearGroup

// TagEntry collects the posts referencing one tag.
type TagEntry struct {
	Slug  string
	Name  string
	Posts []post.Post
}

// Sort orders posts by date, most recent first. Posts with the same date
// keep their relative order.
func Sort(posts []post.Post) {
	slices.SortStableFunc(posts, func(a, b post.Post) int {
		return b.Date.Compare(a.Date)
	})
}

// BuildTimeline groups date-sorted posts by year, then by month.
func BuildTimeline(posts []post.Post) Timeline {
	var tl Timeline
	for _, p := range posts {
		year, month := p.Date.Year(), p.Date.Month()

		if len(tl) == 0 || tl[len(tl)-1].Year != year {
			tl = append(tl, YearGroup{Year: year})
		}
		yg := &tl[len(tl)-1]

		if len(yg.Months) == 0 || yg.Months[len(yg.Months)-1].Month != month {
			yg.Months = append(yg.Months, MonthGroup{Month: month})
		}
		mg := &yg.Months[len(yg.Months)-1]
		mg.Posts = append(mg.Posts, p)
	}
	return tl
}

// CollectTags groups date-sorted posts by tag. Tags referenced by more
// posts come first; ties keep the order in which tags were first seen.
func CollectTags(posts []post.Post) []TagEntry {
	var entries []TagEntry
	bySlug := map[string]int{}

	for _, p := range posts {
		for _, slug := range p.TagSlugs() {
			i, ok := bySlug[slug]
			if !ok {
				i = len(entries)
				bySlug[slug] = i
				entries = append(entries, TagEntry{Slug: slug, Name: p.Tags[slug]})
			}
			entries[i].Posts = append(entries[i].Posts, p)
		}
	}

	slices.SortStableFunc(entries, func(a, b TagEntry) int {
		return len(b.Posts) - len(a.Posts)
	})
	return entries
}

// Posts returns the year's posts across all months.
func (yg YearGroup) Posts() []post.Post {
	var out []post.Post
	for _, mg := range yg.Months {
		out = append(out, mg.Posts...)
	}
	return out
}

// Count returns the number of posts in the timeline.
func (tl Timeline) Count() int {
	n := 0
	for _, yg := range tl {
		for _, mg := range yg.Months {
			n += len(mg.Posts)
		}
	}
	return n
}
