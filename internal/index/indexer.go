package index

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pfassina/postindex/internal/post"
)

// IndexPosts writes posts into the catalog. Posts are expected in date
// order so that the first display name seen for a tag is kept, as in
// CollectTags.
func (db *DB) IndexPosts(posts []post.Post) error {
	for _, p := range posts {
		if err := db.indexPost(p); err != nil {
			return fmt.Errorf("index %s: %w", p.Name, err)
		}
	}
	return nil
}

func (db *DB) indexPost(p post.Post) error {
	title := ""
	if p.Title != nil {
		title = *p.Title
	}

	postID, err := db.InsertPost(p.Name, title, p.HasTitle(), p.Date.Format("2006-01-02"), p.Summary)
	if err != nil {
		return fmt.Errorf("insert post: %w", err)
	}

	for _, slug := range p.TagSlugs() {
		tagID, err := db.UpsertTag(slug, p.Tags[slug])
		if err != nil {
			return fmt.Errorf("upsert tag %q: %w", slug, err)
		}
		if err := db.LinkPostTag(postID, tagID); err != nil {
			return fmt.Errorf("link post tag %q: %w", slug, err)
		}
	}

	headingTexts := make([]string, len(p.Headings))
	for i, h := range p.Headings {
		headingTexts[i] = h.Text
		if err := db.InsertHeading(postID, h.Level, h.Text, h.Line); err != nil {
			return fmt.Errorf("insert heading %q: %w", h.Text, err)
		}
	}

	tagStr := strings.Join(p.TagNames(), " ")
	headingStr := strings.Join(headingTexts, " ")
	if err := db.UpdateFTS(postID, title, p.Summary, tagStr, headingStr); err != nil {
		return fmt.Errorf("update FTS: %w", err)
	}
	return nil
}

// WriteCatalog creates a fresh catalog at path from posts. Any previous
// catalog at path is replaced.
func WriteCatalog(path string, posts []post.Post) (err error) {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove old catalog: %w", err)
	}

	db, err := Open(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close catalog: %w", closeErr)
		}
	}()

	return db.IndexPosts(posts)
}
