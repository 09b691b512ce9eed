package post

import (
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/pfassina/postindex/internal/markdown"
)

// dateLayout is the yyyymmdd prefix of a post folder name.
const dateLayout = "20060102"

// ErrInvalidDate is returned for folder names without a yyyymmdd prefix.
var ErrInvalidDate = errors.New("invalid date format, 'yyyymmdd[-suffix]' expected")

// Post represents one blog post folder.
type Post struct {
	Name     string            // folder name, unique within the posts directory
	Title    *string           // nil when index.md has no level-1 heading
	Date     time.Time         // from the folder name
	Tags     map[string]string // slug -> display name
	Summary  string
	Headings []markdown.Heading
}

// ParseDate derives the publication date from a folder name of the form
// yyyymmdd[-suffix].
func ParseDate(name string) (time.Time, error) {
	prefix, _, _ := strings.Cut(name, "-")
	d, err := time.Parse(dateLayout, prefix)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// DisplayTitle returns the title, or the folder name when there is none.
func (p Post) DisplayTitle() string {
	if p.Title != nil {
		return *p.Title
	}
	return p.Name
}

// HasTitle reports whether a level-1 heading was found.
func (p Post) HasTitle() bool {
	return p.Title != nil
}

// TagSlugs returns the post's tag slugs in lexical order.
func (p Post) TagSlugs() []string {
	slugs := make([]string, 0, len(p.Tags))
	for s := range p.Tags {
		slugs = append(slugs, s)
	}
	slices.Sort(slugs)
	return slugs
}

// TagNames returns the display names ordered by slug.
func (p Post) TagNames() []string {
	slugs := p.TagSlugs()
	names := make([]string, len(slugs))
	for i, s := range slugs {
		names[i] = p.Tags[s]
	}
	return names
}
