// Package render writes the generated index pages from pongo2 templates.
//
// Templates use Django/Jinja syntax and receive these variables:
//
//	post_index:  grouped_posts ([]YearView), post_count
//	tag_index:   tag_index ([]TagEntryView)
//	tag_page:    tag_name, tag_slug, data_list ([]PostView), tag (TagEntryView)
//
// Every template also gets generated_at (time.Time) and the function
// tag_anchor(name), which returns the slug used for tag links.
package render

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/flosch/pongo2/v6"

	"github.com/pfassina/postindex/internal/index"
	"github.com/pfassina/postindex/internal/post"
)

// ErrPathOccupied is returned when the tag pages directory path exists but
// is not a directory.
var ErrPathOccupied = errors.New("path name occupied by a file")

func init() {
	// Output is markdown, not HTML.
	pongo2.SetAutoescape(false)
}

// Renderer renders templates from a single templates directory.
type Renderer struct {
	set *pongo2.TemplateSet
	now time.Time
}

func New(templatesDir string) (*Renderer, error) {
	loader, err := pongo2.NewLocalFileSystemLoader(templatesDir)
	if err != nil {
		return nil, fmt.Errorf("templates loader: %w", err)
	}

	set := pongo2.NewSet("postindex", loader)
	set.Globals = pongo2.Context{
		"tag_anchor": post.Slugify,
	}

	return &Renderer{set: set, now: time.Now()}, nil
}

// RenderMainIndex renders the chronological index to path.
func (r *Renderer) RenderMainIndex(path, templateName string, tl index.Timeline) error {
	return r.renderFile(path, templateName, pongo2.Context{
		"grouped_posts": newTimelineView(tl),
		"post_count":    tl.Count(),
	})
}

// RenderTagIndex renders the tag index to path.
func (r *Renderer) RenderTagIndex(path, templateName string, tags []index.TagEntry) error {
	return r.renderFile(path, templateName, pongo2.Context{
		"tag_index": newTagIndexView(tags),
	})
}

// RenderTagPages renders one <slug>.md page per tag into dir, creating dir
// when needed. It returns ErrPathOccupied without writing anything if dir
// exists as a file.
func (r *Renderer) RenderTagPages(dir, templateName string, tags []index.TagEntry) error {
	info, err := os.Stat(dir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create tag pages dir: %w", err)
		}
	case err != nil:
		return fmt.Errorf("stat tag pages dir: %w", err)
	case !info.IsDir():
		return fmt.Errorf("create %s: %w", dir, ErrPathOccupied)
	}

	tpl, err := r.template(templateName)
	if err != nil {
		return err
	}

	for _, e := range tags {
		view := newTagEntryView(e)
		path := filepath.Join(dir, e.Slug+".md")
		err := r.execute(tpl, path, pongo2.Context{
			"tag_name":  view.Name,
			"tag_slug":  view.Slug,
			"data_list": view.Posts,
			"tag":       view,
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderFile(path, templateName string, ctx pongo2.Context) error {
	tpl, err := r.template(templateName)
	if err != nil {
		return err
	}
	return r.execute(tpl, path, ctx)
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	tpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("load template %s: %w", name, err)
	}
	return tpl, nil
}

func (r *Renderer) execute(tpl *pongo2.Template, path string, ctx pongo2.Context) error {
	ctx["generated_at"] = r.now

	out, err := tpl.Execute(ctx)
	if err != nil {
		return fmt.Errorf("render %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, []byte(out), 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
