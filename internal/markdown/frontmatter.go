package markdown

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

var (
	// ErrTagsNotList is returned when the tags field is not a sequence.
	ErrTagsNotList = errors.New("invalid data type of 'tags'")
	// ErrTagNotString is returned when a tags entry is not a string.
	ErrTagNotString = errors.New("invalid data type of values of 'tags'")
)

// Supported metadata blocks: YAML between --- lines, TOML between +++ lines.
var formats = []*frontmatter.Format{
	frontmatter.NewFormat("---", "---", yaml.Unmarshal),
	frontmatter.NewFormat("+++", "+++", toml.Unmarshal),
}

// SplitFrontmatter separates the metadata block from the markdown body.
// Content without a metadata block yields empty metadata and the whole
// content as body.
func SplitFrontmatter(content []byte) (map[string]any, []byte, error) {
	var meta map[string]any
	body, err := frontmatter.Parse(bytes.NewReader(content), &meta, formats...)
	if err != nil {
		return map[string]any{}, content, fmt.Errorf("parse frontmatter: %w", err)
	}
	if meta == nil {
		meta = map[string]any{}
	}
	return meta, body, nil
}

// Tags reads the tags field of a metadata block.
// ok is false when the field is absent.
func Tags(meta map[string]any) (tags []string, ok bool, err error) {
	raw, ok := meta["tags"]
	if !ok {
		return nil, false, nil
	}

	list, isList := raw.([]any)
	if !isList {
		return nil, true, ErrTagsNotList
	}

	tags = make([]string, 0, len(list))
	for _, v := range list {
		s, isString := v.(string)
		if !isString {
			return nil, true, ErrTagNotString
		}
		tags = append(tags, s)
	}
	return tags, true, nil
}
