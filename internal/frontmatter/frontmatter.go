// Package frontmatter separates a document's leading metadata block from
// its body.
//
// Two layouts are accepted. The line layout puts the title on the first
// line, an optional description on the following lines up to a blank line,
// and an optional "tags:" block of "- name" lines:
//
//	# My Post
//	A short description.
//
//	tags:
//	- go
//	- html
//
//	Body starts here.
//
// The YAML layout wraps title, description and tags in "---" fences.
package frontmatter

import (
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Meta is the metadata extracted from the head of a document.
type Meta struct {
	Title       string   `yaml:"title" json:"title"`
	Description string   `yaml:"description" json:"description,omitempty"`
	Tags        []string `yaml:"tags" json:"tags,omitempty"`
}

const fence = "---"

// ErrUnterminated is returned when a YAML block has no closing fence.
var ErrUnterminated = errors.New("front matter: missing closing ---")

// Split returns the metadata and the remaining body of text.
func Split(text string) (Meta, string, error) {
	if firstLine(text) == fence {
		return splitYAML(text)
	}
	meta, body := splitLines(text)
	return meta, body, nil
}

type state int

const (
	stDescription state = iota
	stAfterDescription
	stTags
	stBody
)

func splitLines(text string) (Meta, string) {
	var meta Meta
	lines := strings.Split(text, "\n")
	if len(lines) == 0 {
		return meta, ""
	}
	meta.Title = CleanTitle(lines[0])

	var desc, body []string
	st := stDescription
	for _, line := range lines[1:] {
		trimmed := strings.TrimSpace(line)
		switch st {
		case stDescription:
			switch {
			case trimmed == "tags:":
				st = stTags
			case trimmed == "":
				st = stAfterDescription
			default:
				desc = append(desc, line)
			}
		case stAfterDescription:
			switch {
			case trimmed == "":
			case trimmed == "tags:":
				st = stTags
			default:
				st = stBody
				body = append(body, line)
			}
		case stTags:
			switch {
			case strings.HasPrefix(trimmed, "-"):
				if tag := strings.TrimSpace(strings.TrimLeft(trimmed, "-")); tag != "" {
					meta.Tags = append(meta.Tags, tag)
				}
			case trimmed == "":
				st = stBody
			default:
				st = stBody
				body = append(body, line)
			}
		case stBody:
			body = append(body, line)
		}
	}
	meta.Description = strings.TrimSpace(strings.Join(desc, "\n"))
	return meta, strings.Join(body, "\n")
}

func splitYAML(text string) (Meta, string, error) {
	var meta Meta
	lines := strings.SplitAfter(text, "\n")

	offset := len(lines[0])
	var head []string
	closed := false
	for _, line := range lines[1:] {
		offset += len(line)
		if strings.TrimSpace(line) == fence {
			closed = true
			break
		}
		head = append(head, line)
	}
	if !closed {
		return meta, "", ErrUnterminated
	}
	if err := yaml.Unmarshal([]byte(strings.Join(head, "")), &meta); err != nil {
		return meta, "", fmt.Errorf("front matter: %w", err)
	}
	meta.Title = CleanTitle(meta.Title)
	meta.Description = strings.TrimSpace(meta.Description)

	return meta, strings.TrimLeft(text[offset:], "\r\n"), nil
}

// CleanTitle strips Markdown heading markers and surrounding whitespace.
func CleanTitle(s string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(s), "#"))
}

func firstLine(text string) string {
	line, _, _ := strings.Cut(text, "\n")
	return strings.TrimSpace(line)
}
