package post

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/pfassina/postindex/internal/markdown"
)

// IndexFile is the markdown file every post folder must contain.
const IndexFile = "index.md"

// Scanner collects post records from a posts directory.
// Problems with a single post are logged as warnings and never abort a scan.
type Scanner struct {
	parser *markdown.Parser
	log    *log.Logger
}

func NewScanner(logger *log.Logger) *Scanner {
	if logger == nil {
		logger = log.Default()
	}
	return &Scanner{
		parser: markdown.NewParser(),
		log:    logger,
	}
}

// Scan reads every immediate subdirectory of dir and returns one Post per
// valid post folder, in directory order. It only fails if dir itself
// cannot be read.
func (s *Scanner) Scan(dir string) ([]Post, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read posts dir: %w", err)
	}

	posts := make([]Post, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(dir, entry.Name())
		if !isDir(path, entry) {
			continue
		}
		p, ok := s.scanPost(path, entry.Name())
		if ok {
			posts = append(posts, p)
		}
	}
	return posts, nil
}

func (s *Scanner) scanPost(path, name string) (Post, bool) {
	date, err := ParseDate(name)
	if err != nil {
		s.log.Warn("ignoring post", "path", path, "reason", err)
		return Post{}, false
	}

	filename := filepath.Join(path, IndexFile)
	info, err := os.Stat(filename)
	if errors.Is(err, os.ErrNotExist) {
		s.log.Warn("ignoring post", "path", path, "reason", IndexFile+" doesn't exist")
		return Post{}, false
	}
	if err != nil {
		s.log.Warn("ignoring post", "path", path, "reason", err)
		return Post{}, false
	}
	if !info.Mode().IsRegular() {
		s.log.Warn("ignoring post", "path", path, "reason", IndexFile+" is not a file")
		return Post{}, false
	}

	content, err := os.ReadFile(filename)
	if err != nil {
		s.log.Warn("ignoring post", "path", path, "reason", err)
		return Post{}, false
	}
	content = bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))

	parsed := s.parser.Parse(content)
	if parsed.FrontmatterErr != nil {
		s.log.Warn("ignoring frontmatter", "path", filename, "reason", parsed.FrontmatterErr)
	}

	p := Post{
		Name:     name,
		Date:     date,
		Tags:     s.tags(filename, parsed.Meta),
		Summary:  parsed.Summary,
		Headings: parsed.Headings,
	}
	if parsed.HasTitle {
		title := parsed.Title
		p.Title = &title
	} else {
		s.log.Warn("title not found, using the default title", "path", filename)
	}
	return p, true
}

// tags maps slug -> display name. Slug collisions keep the last name.
func (s *Scanner) tags(filename string, meta map[string]any) map[string]string {
	tags := map[string]string{}

	names, ok, err := markdown.Tags(meta)
	if !ok {
		return tags
	}
	if err != nil {
		s.log.Warn("ignoring tags", "path", filename, "reason", err)
		return tags
	}

	for _, name := range names {
		tags[Slugify(name)] = name
	}
	return tags
}

// isDir follows symlinks the way a stat-based directory check does.
func isDir(path string, entry os.DirEntry) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&os.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
