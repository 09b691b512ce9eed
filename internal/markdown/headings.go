package markdown

import (
	"bufio"
	"bytes"
	"regexp"
	"strings"
)

// titlePattern matches a level-1 ATX heading line. The line must end with a
// newline; trailing blanks are part of the captured title.
var titlePattern = regexp.MustCompile(`(?m)^#[^\S\r\n]+((?:\S+[^\S\r\n]*)+)\n`)

// Heading represents a markdown heading.
type Heading struct {
	Level int
	Text  string
	Line  int // 1-based line number within the body
}

// ExtractTitle returns the text of the first level-1 heading in body.
func ExtractTitle(body []byte) (string, bool) {
	m := titlePattern.FindSubmatch(body)
	if m == nil {
		return "", false
	}
	return string(m[1]), true
}

// ExtractHeadings extracts all ATX headings from a markdown body,
// ignoring fenced code blocks.
func ExtractHeadings(body []byte) []Heading {
	var headings []Heading
	scanner := bufio.NewScanner(bytes.NewReader(body))

	inFence := false
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := scanner.Text()

		trimmed := strings.TrimLeft(line, " ")
		if strings.HasPrefix(trimmed, "```") || strings.HasPrefix(trimmed, "~~~") {
			inFence = !inFence
			continue
		}
		if inFence || !strings.HasPrefix(trimmed, "#") {
			continue
		}

		level := 0
		for _, ch := range trimmed {
			if ch == '#' {
				level++
			} else {
				break
			}
		}

		if level > 6 {
			continue
		}
		rest := trimmed[level:]
		if rest != "" && rest[0] != ' ' && rest[0] != '\t' {
			continue // "#tag", not a heading
		}

		text := strings.TrimSpace(rest)
		// Remove closing # sequence
		text = strings.TrimRight(text, "# ")
		text = strings.TrimSpace(text)

		if text != "" {
			headings = append(headings, Heading{
				Level: level,
				Text:  text,
				Line:  lineNum,
			})
		}
	}

	return headings
}
