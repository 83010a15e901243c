package markdown

import (
	"bytes"
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
	"unicode"

	"github.com/adrg/frontmatter"

	"github.com/goliatone/go-supportdocs/pkg/interfaces"
)

var (
	// headerPattern matches a metadata block anchored at the start of the
	// file: a "---" line, the body, and the first closing "---" line.
	headerPattern = regexp.MustCompile(`(?s)\A---\s*\n(.*?)\n---\s*\n`)
	titlePattern  = regexp.MustCompile(`(?m)^title:\s*["']?([^"'\n]+)["']?\s*$`)
)

// splitHeader returns the full header block (delimiters included), its
// inner body, and whether a header was found.
func splitHeader(content string) (block string, body string, ok bool) {
	loc := headerPattern.FindStringSubmatchIndex(content)
	if loc == nil {
		return "", "", false
	}
	return content[loc[0]:loc[1]], content[loc[2]:loc[3]], true
}

// ExtractTitle returns the title declared in the metadata header, falling
// back to a title derived from the file name when there is no header or the
// header has no title line.
func ExtractTitle(content string, path string) string {
	if _, body, ok := splitHeader(content); ok {
		if match := titlePattern.FindStringSubmatch(body); match != nil {
			if title := strings.TrimSpace(match[1]); title != "" {
				return title
			}
		}
	}
	return TitleFromFilename(path)
}

// StripFrontMatter removes the leading metadata header block. Text without a
// header is returned unchanged.
func StripFrontMatter(content string) string {
	block, _, ok := splitHeader(content)
	if !ok {
		return content
	}
	return content[len(block):]
}

// TitleFromFilename derives a display title from a file name: the extension
// is dropped, hyphens and underscores become spaces, and every word is title
// cased ("getting-started.mdx" -> "Getting Started", "v2-api" -> "V2 Api").
func TitleFromFilename(path string) string {
	stem := fileStem(path)
	stem = strings.NewReplacer("-", " ", "_", " ").Replace(stem)
	return titleCase(stem)
}

// fileStem strips the final extension from the base name. A leading dot
// does not start an extension, so ".mdx" keeps its name.
func fileStem(path string) string {
	base := filepath.Base(filepath.FromSlash(path))
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 {
		return base
	}
	return base[:idx]
}

// titleCase upper-cases the first letter of every run of letters and
// lower-cases the rest. Any non-letter, digits included, ends a word.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inWord := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) && !inWord:
			b.WriteRune(unicode.ToTitle(r))
			inWord = true
		case unicode.IsLetter(r):
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
			inWord = false
		}
	}
	return b.String()
}

type frontMatterEnvelope struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Custom      map[string]any `yaml:",inline"`
}

// ParseFrontMatter decodes the metadata header with adrg/frontmatter. The
// returned Title follows ExtractTitle rather than the YAML decoder so both
// paths agree. A malformed header yields Present=true, an empty Raw map, and
// the decode error.
func ParseFrontMatter(content string, path string) (interfaces.FrontMatter, error) {
	fm := interfaces.FrontMatter{
		Title: ExtractTitle(content, path),
		Raw:   map[string]any{},
	}

	block, _, ok := splitHeader(content)
	if !ok {
		return fm, nil
	}
	fm.Present = true

	var env frontMatterEnvelope
	if _, err := frontmatter.Parse(bytes.NewReader([]byte(block)), &env); err != nil {
		return fm, fmt.Errorf("parse frontmatter: %w", err)
	}

	for key, value := range env.Custom {
		fm.Raw[key] = value
	}
	if env.Title != "" {
		fm.Raw["title"] = env.Title
	}
	if env.Description != "" {
		fm.Raw["description"] = env.Description
	}
	fm.Description = strings.TrimSpace(env.Description)
	return fm, nil
}
