package module

import (
	"regexp"
	"strings"

	"github.com/viant/docgraph/reflection"
)

const (
	moduleTag    = "module"
	preferredTag = "preferred"
)

var (
	moduleExpr    = regexp.MustCompile(`@module[ \t]+([\p{L}\p{N}_$.\-/:"' \t]+)`)
	preferredExpr = regexp.MustCompile(`@preferred\b`)
)

// Directive represents a module rename request collected in the declaration phase
type Directive struct {
	TargetPath string
	Preferred  bool
	SourceID   int
}

// Segments returns non-empty dotted path segments
func (d *Directive) Segments() []string {
	var result []string
	for _, segment := range strings.Split(d.TargetPath, ".") {
		if segment = strings.TrimSpace(segment); segment != "" {
			result = append(result, segment)
		}
	}
	return result
}

// ParseDirective extracts module directive from the comment text, ok is false if none is found
func ParseDirective(text string) (target string, preferred bool, ok bool) {
	match := moduleExpr.FindStringSubmatch(text)
	if len(match) < 2 {
		return "", false, false
	}
	target = strings.Trim(strings.TrimSpace(match[1]), `"'`)
	target = strings.TrimSpace(target)
	if target == "" {
		return "", false, false
	}
	return target, preferredExpr.MatchString(text), true
}

// stripMarkers removes directive tags and inline markers from the comment
func stripMarkers(comment *reflection.Comment) {
	if comment == nil {
		return
	}
	comment.RemoveTags(moduleTag, preferredTag)
	comment.ShortText = stripText(comment.ShortText)
	comment.Text = stripText(comment.Text)
}

func stripText(text string) string {
	if !strings.Contains(text, "@") {
		return text
	}
	text = moduleExpr.ReplaceAllString(text, "")
	text = preferredExpr.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// commentText returns comment text to look for a directive when no raw comment is available
func commentText(comment *reflection.Comment) string {
	if comment == nil {
		return ""
	}
	builder := strings.Builder{}
	builder.WriteString(comment.ShortText)
	builder.WriteString("\n")
	builder.WriteString(comment.Text)
	for _, tag := range comment.Tags {
		builder.WriteString("\n@")
		builder.WriteString(tag.Name)
		builder.WriteString(" ")
		builder.WriteString(tag.Text)
	}
	return builder.String()
}
