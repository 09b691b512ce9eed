// Package app wires the scanner, aggregator and renderer into a single run.
package app

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/pfassina/postindex/internal/config"
	"github.com/pfassina/postindex/internal/index"
	"github.com/pfassina/postindex/internal/post"
	"github.com/pfassina/postindex/internal/render"
)

// ErrNoCatalog is returned by Search when no catalog path is configured.
var ErrNoCatalog = errors.New("catalog_path is not configured")

// Result summarizes a run.
type Result struct {
	Posts           int
	Tags            int
	TagPagesSkipped bool
}

// Run scans the posts directory, groups the posts and renders the index
// pages. Problems with individual posts are logged and skipped; any
// template or write error aborts the run.
func Run(cfg config.Config, logger *log.Logger) (Result, error) {
	var res Result

	cfg, err := cfg.Resolve()
	if err != nil {
		return res, fmt.Errorf("resolve paths: %w", err)
	}
	logger.Debug("scanning posts", "path", cfg.PostsDir)

	posts, err := post.NewScanner(logger).Scan(cfg.PostsDir)
	if err != nil {
		return res, err
	}
	index.Sort(posts)
	timeline := index.BuildTimeline(posts)
	tags := index.CollectTags(posts)
	res.Posts, res.Tags = len(posts), len(tags)

	r, err := render.New(cfg.TemplatesDir)
	if err != nil {
		return res, err
	}

	if err := r.RenderMainIndex(cfg.MainIndexOutput, cfg.MainIndexTemplate, timeline); err != nil {
		return res, err
	}
	logger.Debug("wrote main index", "path", cfg.MainIndexOutput)

	if err := r.RenderTagIndex(cfg.TagIndexOutput, cfg.TagIndexTemplate, tags); err != nil {
		return res, err
	}
	logger.Debug("wrote tag index", "path", cfg.TagIndexOutput)

	if cfg.TagPages {
		err := r.RenderTagPages(cfg.TagPagesDir, cfg.TagPageTemplate, tags)
		switch {
		case errors.Is(err, render.ErrPathOccupied):
			logger.Warn("skipping tag pages", "path", cfg.TagPagesDir, "reason", render.ErrPathOccupied)
			res.TagPagesSkipped = true
		case err != nil:
			return res, err
		default:
			logger.Debug("wrote tag pages", "path", cfg.TagPagesDir, "count", len(tags))
		}
	}

	if cfg.CatalogPath != "" {
		if err := index.WriteCatalog(cfg.CatalogPath, posts); err != nil {
			return res, fmt.Errorf("write catalog: %w", err)
		}
		logger.Debug("wrote catalog", "path", cfg.CatalogPath)
	}

	logger.Info("generated indexes", "posts", res.Posts, "tags", res.Tags)
	return res, nil
}

// Search runs a full-text query against the catalog written by Run.
func Search(cfg config.Config, query string, limit int) ([]index.SearchResult, error) {
	cfg, err := cfg.Resolve()
	if err != nil {
		return nil, fmt.Errorf("resolve paths: %w", err)
	}
	if cfg.CatalogPath == "" {
		return nil, ErrNoCatalog
	}
	if _, err := os.Stat(cfg.CatalogPath); err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}

	db, err := index.Open(cfg.CatalogPath)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	results, err := db.Search(query, limit)
	if err != nil {
		return nil, fmt.Errorf("search %q: %w", query, err)
	}
	return results, nil
}
