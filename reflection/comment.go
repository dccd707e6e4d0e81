package reflection

import (
	"strings"
)

// Tag represents a single @tag in a doc comment
type Tag struct {
	Name string `yaml:"name"`
	Text string `yaml:"text,omitempty"`
}

// Comment represents a structured doc comment
type Comment struct {
	ShortText string `yaml:"shortText,omitempty"` // First paragraph
	Text      string `yaml:"text,omitempty"`      // Remaining paragraphs
	Tags      []*Tag `yaml:"tags,omitempty"`
}

// IsEmpty returns true if comment carries neither text nor tags
func (c *Comment) IsEmpty() bool {
	if c == nil {
		return true
	}
	return strings.TrimSpace(c.ShortText) == "" && strings.TrimSpace(c.Text) == "" && len(c.Tags) == 0
}

// HasTag returns true if comment has any of the supplied tags
func (c *Comment) HasTag(names ...string) bool {
	return c.Tag(names...) != nil
}

// Tag returns the first tag matching any of the supplied names
func (c *Comment) Tag(names ...string) *Tag {
	if c == nil {
		return nil
	}
	for _, tag := range c.Tags {
		for _, name := range names {
			if strings.EqualFold(tag.Name, name) {
				return tag
			}
		}
	}
	return nil
}

// RemoveTags removes all tags with the supplied names, it returns number of removed tags
func (c *Comment) RemoveTags(names ...string) int {
	if c == nil || len(c.Tags) == 0 {
		return 0
	}
	kept := c.Tags[:0]
	removed := 0
outer:
	for _, tag := range c.Tags {
		for _, name := range names {
			if strings.EqualFold(tag.Name, name) {
				removed++
				continue outer
			}
		}
		kept = append(kept, tag)
	}
	for i := len(kept); i < len(c.Tags); i++ {
		c.Tags[i] = nil
	}
	c.Tags = kept
	return removed
}

// Clone creates a deep copy of the comment
func (c *Comment) Clone() *Comment {
	if c == nil {
		return nil
	}
	clone := &Comment{ShortText: c.ShortText, Text: c.Text}
	for _, tag := range c.Tags {
		clone.Tags = append(clone.Tags, &Tag{Name: tag.Name, Text: tag.Text})
	}
	return clone
}

// ParseComment converts raw doc comment text into a structured comment.
// Line (//) and block (/* */) decorations are stripped; lines starting with @name open a tag.
func ParseComment(raw string) *Comment {
	lines := commentLines(raw)
	if len(lines) == 0 {
		return nil
	}
	comment := &Comment{}
	var paragraphs []string
	var current strings.Builder
	var tag *Tag
	flush := func() {
		if text := strings.TrimSpace(current.String()); text != "" {
			paragraphs = append(paragraphs, text)
		}
		current.Reset()
	}
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "@") && len(trimmed) > 1 {
			if tag == nil {
				flush()
			}
			name, text, _ := strings.Cut(trimmed[1:], " ")
			tag = &Tag{Name: strings.TrimSpace(name), Text: strings.TrimSpace(text)}
			comment.Tags = append(comment.Tags, tag)
			continue
		}
		if tag != nil {
			if trimmed != "" {
				tag.Text = strings.TrimSpace(tag.Text + "\n" + trimmed)
			}
			continue
		}
		if trimmed == "" {
			flush()
			continue
		}
		if current.Len() > 0 {
			current.WriteString("\n")
		}
		current.WriteString(trimmed)
	}
	if tag == nil {
		flush()
	}
	if len(paragraphs) > 0 {
		comment.ShortText = paragraphs[0]
		comment.Text = strings.Join(paragraphs[1:], "\n\n")
	}
	if comment.IsEmpty() {
		return nil
	}
	return comment
}

func commentLines(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	var result []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(line, "//"):
			line = strings.TrimPrefix(line, "//")
		case strings.HasPrefix(line, "/**"):
			line = strings.TrimPrefix(line, "/**")
		case strings.HasPrefix(line, "/*"):
			line = strings.TrimPrefix(line, "/*")
		}
		line = strings.TrimSuffix(strings.TrimSpace(line), "*/")
		if strings.HasPrefix(line, "*") {
			line = strings.TrimPrefix(line, "*")
		}
		result = append(result, strings.TrimSpace(line))
	}
	return result
}
