package filesystem

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"timelog/internal/domain"
)

const delimiter = "---"

var errNoFrontmatter = errors.New("no front matter")

// splitFrontmatter separates the YAML header from the markdown body. ok is
// false when content does not open with a terminated --- block.
func splitFrontmatter(content string) (header, body string, ok bool) {
	first, rest, found := strings.Cut(content, "\n")
	if !found || strings.TrimSpace(first) != delimiter {
		return "", content, false
	}

	var fm strings.Builder
	for rest != "" {
		line, remaining, _ := strings.Cut(rest, "\n")
		if strings.TrimSpace(line) == delimiter {
			return fm.String(), remaining, true
		}
		fm.WriteString(line)
		fm.WriteString("\n")
		rest = remaining
	}
	return "", content, false
}

// parseFrontmatter decodes the document header and returns the body as is
func parseFrontmatter(content string) (*domain.Metadata, string, error) {
	header, body, ok := splitFrontmatter(content)
	if !ok {
		return nil, "", errNoFrontmatter
	}

	var meta domain.Metadata
	if err := yaml.Unmarshal([]byte(header), &meta); err != nil {
		return nil, "", fmt.Errorf("invalid front matter: %w", err)
	}
	return &meta, body, nil
}

func marshalFrontmatter(meta *domain.Metadata) (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(meta); err != nil {
		return "", fmt.Errorf("failed to encode front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return "", fmt.Errorf("failed to encode front matter: %w", err)
	}
	return buf.String(), nil
}

// replaceFrontmatter swaps the header of content for header, or prepends
// one when content has none
func replaceFrontmatter(content, header string) string {
	_, body, ok := splitFrontmatter(content)
	if !ok {
		body = content
	}
	return delimiter + "\n" + header + delimiter + "\n" + body
}
