package render

import (
	"time"

	"github.com/pfassina/postindex/internal/index"
	"github.com/pfassina/postindex/internal/post"
)

// Template data is flattened into plain structs so templates only ever
// read fields, never call methods.

type TagView struct {
	Slug string
	Name string
}

type PostView struct {
	Name     string
	Title    string // falls back to Name
	HasTitle bool
	Date     time.Time
	DateISO  string // 2006-01-02
	Year     int
	Month    int
	Day      int
	Summary  string
	Tags     []TagView
}

type MonthView struct {
	Month     int
	MonthName string
	Posts     []PostView
}

type YearView struct {
	Year   int
	Count  int
	Months []MonthView
}

type TagEntryView struct {
	Slug  string
	Name  string
	Count int
	Posts []PostView
}

func newPostView(p post.Post) PostView {
	v := PostView{
		Name:     p.Name,
		Title:    p.DisplayTitle(),
		HasTitle: p.HasTitle(),
		Date:     p.Date,
		DateISO:  p.Date.Format("2006-01-02"),
		Year:     p.Date.Year(),
		Month:    int(p.Date.Month()),
		Day:      p.Date.Day(),
		Summary:  p.Summary,
	}
	for _, slug := range p.TagSlugs() {
		v.Tags = append(v.Tags, TagView{Slug: slug, Name: p.Tags[slug]})
	}
	return v
}

func newPostViews(posts []post.Post) []PostView {
	views := make([]PostView, len(posts))
	for i, p := range posts {
		views[i] = newPostView(p)
	}
	return views
}

func newTimelineView(tl index.Timeline) []YearView {
	years := make([]YearView, 0, len(tl))
	for _, yg := range tl {
		yv := YearView{Year: yg.Year}
		for _, mg := range yg.Months {
			yv.Months = append(yv.Months, MonthView{
				Month:     int(mg.Month),
				MonthName: mg.Month.String(),
				Posts:     newPostViews(mg.Posts),
			})
			yv.Count += len(mg.Posts)
		}
		years = append(years, yv)
	}
	return years
}

func newTagEntryView(e index.TagEntry) TagEntryView {
	return TagEntryView{
		Slug:  e.Slug,
		Name:  e.Name,
		Count: len(e.Posts),
		Posts: newPostViews(e.Posts),
	}
}

func newTagIndexView(tags []index.TagEntry) []TagEntryView {
	views := make([]TagEntryView, len(tags))
	for i, e := range tags {
		views[i] = newTagEntryView(e)
	}
	return views
}
