package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// FileName is the config file looked up in the site root.
const FileName = "postindex.toml"

// fileConfig mirrors Config with pointer fields so we can distinguish
// "not set" from zero values when merging TOML.
type fileConfig struct {
	PostsDir          *string `toml:"posts_dir"`
	TemplatesDir      *string `toml:"templates_dir"`
	MainIndexOutput   *string `toml:"main_index_output"`
	TagIndexOutput    *string `toml:"tag_index_output"`
	TagPagesDir       *string `toml:"tag_pages_dir"`
	MainIndexTemplate *string `toml:"main_index_template"`
	TagIndexTemplate  *string `toml:"tag_index_template"`
	TagPageTemplate   *string `toml:"tag_page_template"`
	TagPages          *bool   `toml:"tag_pages"`
	CatalogPath       *string `toml:"catalog_path"`
	LogLevel          *string `toml:"log_level"`
}

// ConfigPath returns the default config file path for a site root.
func ConfigPath(root string) string {
	return filepath.Join(root, FileName)
}

// LoadFile reads the TOML file at path and merges non-nil fields into cfg.
// Returns true if the file existed, false otherwise.
func LoadFile(path string, cfg *Config) (bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return true, fmt.Errorf("parse %s: %w", path, err)
	}

	setString(&cfg.PostsDir, fc.PostsDir)
	setString(&cfg.TemplatesDir, fc.TemplatesDir)
	setString(&cfg.MainIndexOutput, fc.MainIndexOutput)
	setString(&cfg.TagIndexOutput, fc.TagIndexOutput)
	setString(&cfg.TagPagesDir, fc.TagPagesDir)
	setString(&cfg.MainIndexTemplate, fc.MainIndexTemplate)
	setString(&cfg.TagIndexTemplate, fc.TagIndexTemplate)
	setString(&cfg.TagPageTemplate, fc.TagPageTemplate)
	setString(&cfg.CatalogPath, fc.CatalogPath)
	setString(&cfg.LogLevel, fc.LogLevel)
	if fc.TagPages != nil {
		cfg.TagPages = *fc.TagPages
	}

	return true, nil
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

// ErrConfigExists is returned by SaveFile when path already exists.
var ErrConfigExists = errors.New("config file already exists")

// SaveFile writes every setting of cfg to a new TOML file at path.
func SaveFile(path string, cfg Config) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, ErrConfigExists)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	fc := fileConfig{
		PostsDir:          &cfg.PostsDir,
		TemplatesDir:      &cfg.TemplatesDir,
		MainIndexOutput:   &cfg.MainIndexOutput,
		TagIndexOutput:    &cfg.TagIndexOutput,
		TagPagesDir:       &cfg.TagPagesDir,
		MainIndexTemplate: &cfg.MainIndexTemplate,
		TagIndexTemplate:  &cfg.TagIndexTemplate,
		TagPageTemplate:   &cfg.TagPageTemplate,
		TagPages:          &cfg.TagPages,
		CatalogPath:       &cfg.CatalogPath,
		LogLevel:          &cfg.LogLevel,
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return toml.NewEncoder(f).Encode(fc)
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) string {
	if !strings.HasPrefix(path, "~") {
		return path
	}
	home, _ := os.UserHomeDir()
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
