package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestExpandHome(t *testing.T) {
	home, _ := os.UserHomeDir()
	tests := []struct {
		input string
		want  string
	}{
		{"~/blog", filepath.Join(home, "blog")},
		{"~", home},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got := ExpandHome(tt.input)
			if got != tt.want {
				t.Errorf("ExpandHome(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	tmp := t.TempDir()

	cfg := Default()
	exists, err := LoadFile(ConfigPath(tmp), &cfg)
	if err != nil {
		t.Fatal(err)
	}
	if exists {
		t.Error("LoadFile should return false for missing file")
	}
	if cfg != Default() {
		t.Errorf("config changed unexpectedly: %+v", cfg)
	}
}

func TestLoadFile_Partial(t *testing.T) {
	tmp := t.TempDir()
	os.WriteFile(ConfigPath(tmp), []byte(`posts_dir = "blog/posts"`+"\n"), 0644)

	cfg := Default()
	exists, err := LoadFile(ConfigPath(tmp), &cfg)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("LoadFile should return true for existing file")
	}
	if cfg.PostsDir != "blog/posts" {
		t.Errorf("PostsDir = %q, want %q", cfg.PostsDir, "blog/posts")
	}
	// Unset keys keep their defaults.
	if cfg.TemplatesDir != "content/templates" {
		t.Errorf("TemplatesDir changed unexpectedly: %q", cfg.TemplatesDir)
	}
	if !cfg.TagPages {
		t.Error("TagPages changed unexpectedly")
	}
}

func TestLoadFile_Full(t *testing.T) {
	tmp := t.TempDir()
	content := `posts_dir = "p"
templates_dir = "t"
main_index_output = "out/index.md"
tag_index_output = "out/tags.md"
tag_pages_dir = "out/tags"
main_index_template = "main.jinja"
tag_index_template = "tags.jinja"
tag_page_template = "tag.jinja"
tag_pages = false
catalog_path = "out/catalog.db"
log_level = "debug"
`
	os.WriteFile(ConfigPath(tmp), []byte(content), 0644)

	cfg := Default()
	if _, err := LoadFile(ConfigPath(tmp), &cfg); err != nil {
		t.Fatal(err)
	}

	want := Config{
		Root:              ".",
		PostsDir:          "p",
		TemplatesDir:      "t",
		MainIndexOutput:   "out/index.md",
		TagIndexOutput:    "out/tags.md",
		TagPagesDir:       "out/tags",
		MainIndexTemplate: "main.jinja",
		TagIndexTemplate:  "tags.jinja",
		TagPageTemplate:   "tag.jinja",
		TagPages:          false,
		CatalogPath:       "out/catalog.db",
		LogLevel:          "debug",
	}
	if cfg != want {
		t.Errorf("LoadFile:\n got %+v\nwant %+v", cfg, want)
	}
}

func TestLoadFile_Invalid(t *testing.T) {
	tmp := t.TempDir()
	os.WriteFile(ConfigPath(tmp), []byte("posts_dir = \n"), 0644)

	cfg := Default()
	exists, err := LoadFile(ConfigPath(tmp), &cfg)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !exists {
		t.Error("LoadFile should return true for existing file")
	}
}

func TestSaveFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site", FileName)

	cfg := Default()
	cfg.CatalogPath = "public/catalog.db"
	if err := SaveFile(path, cfg); err != nil {
		t.Fatal(err)
	}

	loaded := Default()
	exists, err := LoadFile(path, &loaded)
	if err != nil {
		t.Fatal(err)
	}
	if !exists {
		t.Error("config file should exist after SaveFile")
	}
	if loaded != cfg {
		t.Errorf("round trip:\n got %+v\nwant %+v", loaded, cfg)
	}

	if err := SaveFile(path, cfg); !errors.Is(err, ErrConfigExists) {
		t.Errorf("second SaveFile: got %v, want %v", err, ErrConfigExists)
	}
}

func TestResolve(t *testing.T) {
	root := t.TempDir()

	cfg := Default()
	cfg.Root = root
	cfg.TagPagesDir = "/srv/tags"

	got, err := cfg.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if got.PostsDir != filepath.Join(root, "content", "posts") {
		t.Errorf("PostsDir = %q", got.PostsDir)
	}
	if got.TagPagesDir != "/srv/tags" {
		t.Errorf("TagPagesDir = %q, want absolute path kept", got.TagPagesDir)
	}
	if got.CatalogPath != "" {
		t.Errorf("CatalogPath = %q, want empty", got.CatalogPath)
	}
	if got.MainIndexTemplate != "post_index.md.jinja" {
		t.Errorf("MainIndexTemplate = %q, want name unchanged", got.MainIndexTemplate)
	}
}
