package app

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/pfassina/postindex/internal/config"
)

var templates = map[string]string{
	"post_index.md.jinja": "{% for year in grouped_posts %}## {{ year.Year }}\n" +
		"{% for month in year.Months %}### {{ month.Month }}\n" +
		"{% for post in month.Posts %}- {{ post.Title }}\n{% endfor %}{% endfor %}{% endfor %}",
	"tag_index.md.jinja": "{% for tag in tag_index %}- {{ tag.Slug }}: {{ tag.Count }}\n{% endfor %}",
	"tag_page.md.jinja":  "# {{ tag_name }}\n{% for post in data_list %}- {{ post.Name }}\n{% endfor %}",
}

type site struct {
	root string
	cfg  config.Config
}

func newSite(t *testing.T) *site {
	t.Helper()
	root := t.TempDir()
	cfg := config.Default()
	cfg.Root = root

	tplDir := filepath.Join(root, cfg.TemplatesDir)
	require.NoError(t, os.MkdirAll(tplDir, 0755))
	for name, body := range templates {
		require.NoError(t, os.WriteFile(filepath.Join(tplDir, name), []byte(body), 0644))
	}
	require.NoError(t, os.MkdirAll(filepath.Join(root, cfg.PostsDir), 0755))
	return &site{root: root, cfg: cfg}
}

func (s *site) post(t *testing.T, name, content string) {
	t.Helper()
	dir := filepath.Join(s.root, s.cfg.PostsDir, name)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.md"), []byte(content), 0644))
}

func (s *site) read(t *testing.T, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(s.root, rel))
	require.NoError(t, err)
	return string(data)
}

func testLogger() (*log.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return log.New(&buf), &buf
}

func TestRun(t *testing.T) {
	s := newSite(t)
	s.post(t, "20240101", "---\ntags: [Go]\n---\n# First\n")
	s.post(t, "20240215-x", "---\ntags: [Go, \"go lang\"]\n---\n# Second\n")
	s.post(t, "20230704", "---\ntags: [\"go lang\", Go, Web]\n---\n# Third\n")

	logger, buf := testLogger()
	res, err := Run(s.cfg, logger)
	require.NoError(t, err)
	require.Equal(t, Result{Posts: 3, Tags: 3}, res)
	require.NotContains(t, buf.String(), "WARN")

	require.Equal(t, "## 2024\n### 2\n- Second\n### 1\n- First\n## 2023\n### 7\n- Third\n",
		s.read(t, "content/post_index.md"))
	require.Equal(t, "- go: 3\n- go-lang: 2\n- web: 1\n", s.read(t, "content/tag_index.md"))
	require.Equal(t, "# go lang\n- 20240215-x\n- 20230704\n", s.read(t, "content/tags/go-lang.md"))
}

func TestRun_EmptyPosts(t *testing.T) {
	s := newSite(t)

	logger, _ := testLogger()
	res, err := Run(s.cfg, logger)
	require.NoError(t, err)
	require.Zero(t, res.Posts)
	require.Equal(t, "", s.read(t, "content/post_index.md"))
	require.Equal(t, "", s.read(t, "content/tag_index.md"))
}

func TestRun_MissingIndexWarns(t *testing.T) {
	s := newSite(t)
	s.post(t, "20240101", "# Kept\n")
	require.NoError(t, os.MkdirAll(filepath.Join(s.root, s.cfg.PostsDir, "20240102"), 0755))

	logger, buf := testLogger()
	res, err := Run(s.cfg, logger)
	require.NoError(t, err)
	require.Equal(t, 1, res.Posts)
	require.Equal(t, 1, strings.Count(buf.String(), "WARN"))
}

func TestRun_TagPagesPathOccupied(t *testing.T) {
	s := newSite(t)
	s.post(t, "20240101", "---\ntags: [Go]\n---\n# First\n")
	require.NoError(t, os.WriteFile(filepath.Join(s.root, s.cfg.TagPagesDir), []byte("x"), 0644))

	logger, buf := testLogger()
	res, err := Run(s.cfg, logger)
	require.NoError(t, err)
	require.True(t, res.TagPagesSkipped)
	require.Contains(t, buf.String(), "skipping tag pages")
	require.Contains(t, s.read(t, "content/tag_index.md"), "- go: 1")
}

func TestRun_TagPagesDisabled(t *testing.T) {
	s := newSite(t)
	s.post(t, "20240101", "---\ntags: [Go]\n---\n# First\n")
	s.cfg.TagPages = false

	logger, _ := testLogger()
	_, err := Run(s.cfg, logger)
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(s.root, s.cfg.TagPagesDir))
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func TestRun_MissingTemplateIsFatal(t *testing.T) {
	s := newSite(t)
	s.cfg.TagIndexTemplate = "nope.md.jinja"

	logger, _ := testLogger()
	_, err := Run(s.cfg, logger)
	require.Error(t, err)
}

func TestRun_MissingPostsDirIsFatal(t *testing.T) {
	s := newSite(t)
	s.cfg.PostsDir = "does/not/exist"

	logger, _ := testLogger()
	_, err := Run(s.cfg, logger)
	require.Error(t, err)
}

func TestRunAndSearch(t *testing.T) {
	s := newSite(t)
	s.post(t, "20240101", "# Channels\n\nNotes on buffered channels.\n")
	s.post(t, "20240102", "# Maps\n\nHash maps.\n")
	s.cfg.CatalogPath = "public/catalog.db"
	require.NoError(t, os.MkdirAll(filepath.Join(s.root, "public"), 0755))

	logger, _ := testLogger()
	_, err := Run(s.cfg, logger)
	require.NoError(t, err)

	results, err := Search(s.cfg, "buffered", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Equal(t, "20240101", results[0].Name)
	require.Equal(t, "Channels", results[0].Title)
}

func TestSearch_NoCatalog(t *testing.T) {
	s := newSite(t)

	_, err := Search(s.cfg, "x", 10)
	require.True(t, errors.Is(err, ErrNoCatalog))

	s.cfg.CatalogPath = "missing.db"
	_, err = Search(s.cfg, "x", 10)
	require.Error(t, err)
}
