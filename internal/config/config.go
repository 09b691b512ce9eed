package config

import (
	"path/filepath"
)

type Config struct {
	Root string // site root; relative paths below resolve against it

	PostsDir        string
	TemplatesDir    string
	MainIndexOutput string
	TagIndexOutput  string
	TagPagesDir     string

	MainIndexTemplate string
	TagIndexTemplate  string
	TagPageTemplate   string

	TagPages    bool
	CatalogPath string // empty disables the catalog
	LogLevel    string
}

func Default() Config {
	return Config{
		Root:              ".",
		PostsDir:          "content/posts",
		TemplatesDir:      "content/templates",
		MainIndexOutput:   "content/post_index.md",
		TagIndexOutput:    "content/tag_index.md",
		TagPagesDir:       "content/tags",
		MainIndexTemplate: "post_index.md.jinja",
		TagIndexTemplate:  "tag_index.md.jinja",
		TagPageTemplate:   "tag_page.md.jinja",
		TagPages:          true,
		LogLevel:          "info",
	}
}

// Resolve returns a copy of c with every path made absolute against Root.
// Template names are file names inside TemplatesDir and stay as they are.
func (c Config) Resolve() (Config, error) {
	root, err := filepath.Abs(ExpandHome(c.Root))
	if err != nil {
		return c, err
	}
	c.Root = root

	for _, p := range []*string{&c.PostsDir, &c.TemplatesDir, &c.MainIndexOutput, &c.TagIndexOutput, &c.TagPagesDir, &c.CatalogPath} {
		if *p == "" {
			continue
		}
		*p = ExpandHome(*p)
		if !filepath.IsAbs(*p) {
			*p = filepath.Join(root, *p)
		}
	}
	return c, nil
}
