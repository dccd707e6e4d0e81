package render

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/viant/docgraph/reflection"
)

// reservedPrefix marks URLs that must never be reassigned
var reservedPrefix = regexp.MustCompile(`^(http|ftp)s?://`)

var nonAlphanumeric = regexp.MustCompile(`[^a-zA-Z0-9]`)

// URLMapping represents a document produced for a reflection
type URLMapping struct {
	URL          string          `yaml:"url"`
	ReflectionID int             `yaml:"id"`
	Name         string          `yaml:"name"`
	Kind         reflection.Kind `yaml:"kind"`
	Template     string          `yaml:"template"`
}

type urlBuilder struct {
	project  *reflection.Project
	mappings []*Mapping
	aliases  map[int]string
	taken    map[int]map[string]bool
	urls     []*URLMapping
}

// AssignURLs assigns a document URL or an in-page anchor to every reflection,
// it returns the documents to render. DefaultMappings are used when none are supplied.
func AssignURLs(project *reflection.Project, mappings ...*Mapping) []*URLMapping {
	if len(mappings) == 0 {
		mappings = DefaultMappings()
	}
	builder := &urlBuilder{
		project:  project,
		mappings: mappings,
		aliases:  make(map[int]string),
		taken:    make(map[int]map[string]bool),
	}
	root := project.Root()
	if !hasReservedURL(root) {
		root.URL = IndexURL
		root.HasOwnDocument = true
		builder.urls = append(builder.urls, builder.mapping(root, indexTemplate))
	}
	for _, child := range root.Children {
		builder.build(child)
	}
	return builder.urls
}

func (b *urlBuilder) build(r *reflection.Reflection) {
	mapping := lookupMapping(b.mappings, r.Kind)
	if mapping == nil {
		if parent := b.project.Parent(r); parent != nil {
			b.applyAnchor(r, parent)
		}
		return
	}
	if !hasReservedURL(r) {
		r.URL = mapping.Directory + "/" + b.path(r, nil) + ".html"
		r.HasOwnDocument = true
		r.Anchor = ""
		b.urls = append(b.urls, b.mapping(r, mapping.Template))
	}
	for _, child := range r.Children {
		if mapping.IsLeaf {
			b.applyAnchor(child, r)
			continue
		}
		b.build(child)
	}
}

// applyAnchor places reflection and its subtree within the container document
func (b *urlBuilder) applyAnchor(r, container *reflection.Reflection) {
	if !hasReservedURL(r) {
		anchor := b.path(r, container)
		r.URL = documentURL(container) + "#" + anchor
		r.Anchor = anchor
		r.HasOwnDocument = false
	}
	for _, child := range r.Children {
		b.applyAnchor(child, container)
	}
}

func (b *urlBuilder) mapping(r *reflection.Reflection, template string) *URLMapping {
	return &URLMapping{URL: r.URL, ReflectionID: r.ID, Name: r.Name, Kind: r.Kind, Template: template}
}

// path returns dotted alias path up to (excluding) the relative container or the project
func (b *urlBuilder) path(r, relative *reflection.Reflection) string {
	segments := []string{b.alias(r)}
	for parent := b.project.Parent(r); parent != nil && parent != relative && parent.Kind != reflection.KindProject; parent = b.project.Parent(parent) {
		segments = append(segments, b.alias(parent))
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return strings.Join(segments, ".")
}

// alias returns URL safe name, unique among siblings
func (b *urlBuilder) alias(r *reflection.Reflection) string {
	if alias, ok := b.aliases[r.ID]; ok {
		return alias
	}
	alias := strings.ToLower(nonAlphanumeric.ReplaceAllString(r.Name, "_"))
	if alias == "" {
		alias = "reflection-" + strconv.Itoa(r.ID)
	}
	taken, ok := b.taken[r.ParentID]
	if !ok {
		taken = make(map[string]bool)
		b.taken[r.ParentID] = taken
	}
	candidate := alias
	for index := 1; taken[candidate]; index++ {
		candidate = alias + "-" + strconv.Itoa(index)
	}
	taken[candidate] = true
	b.aliases[r.ID] = candidate
	return candidate
}

func documentURL(r *reflection.Reflection) string {
	if idx := strings.Index(r.URL, "#"); idx != -1 {
		return r.URL[:idx]
	}
	return r.URL
}

func hasReservedURL(r *reflection.Reflection) bool {
	return r.URL != "" && reservedPrefix.MatchString(r.URL)
}
