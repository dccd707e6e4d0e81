package visibility

import (
	"fmt"
	"sort"
	"strings"

	"github.com/viant/docgraph/reflection"
)

const remediation = `Every exported declaration must be documented or explicitly excluded. Resolve each one above by either:
  - adding a doc comment, to publish it in the documentation;
  - adding @hidden, to exclude it from the documentation while keeping its type information;
  - adding @internal, to exclude it from both the documentation and the emitted type information.`

// Missing represents an undocumented module-level declaration
type Missing struct {
	Name     string
	Kind     reflection.Kind
	Location string
}

func newMissing(r *reflection.Reflection) *Missing {
	return &Missing{Name: r.Name, Kind: r.Kind, Location: r.Location()}
}

func (m *Missing) String() string {
	return fmt.Sprintf("%s (%s) at %s", m.Name, m.Kind, m.Location)
}

// MissingDocumentationError represents the fatal end of cycle diagnostic
type MissingDocumentationError struct {
	Lines []string
}

// NewMissingDocumentationError creates an error with deduplicated report lines sorted by location
func NewMissingDocumentationError(missing []*Missing) *MissingDocumentationError {
	unique := make(map[string]*Missing, len(missing))
	for _, item := range missing {
		unique[item.String()] = item
	}
	items := make([]*Missing, 0, len(unique))
	for _, item := range unique {
		items = append(items, item)
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].Location != items[j].Location {
			return items[i].Location < items[j].Location
		}
		return items[i].String() < items[j].String()
	})
	ret := &MissingDocumentationError{Lines: make([]string, 0, len(items))}
	for _, item := range items {
		ret.Lines = append(ret.Lines, item.String())
	}
	return ret
}

func (e *MissingDocumentationError) Error() string {
	return fmt.Sprintf("%d exported declaration(s) without documentation", len(e.Lines))
}

// Report returns human readable report
func (e *MissingDocumentationError) Report() string {
	builder := strings.Builder{}
	builder.WriteString("Missing documentation:\n")
	for _, line := range e.Lines {
		builder.WriteString("  ")
		builder.WriteString(line)
		builder.WriteString("\n")
	}
	builder.WriteString("\n")
	builder.WriteString(remediation)
	builder.WriteString("\n")
	return builder.String()
}

// Digest returns fingerprint of the report, identical reports share a digest
func (e *MissingDocumentationError) Digest() uint64 {
	digest, _ := reflection.Fingerprint([]byte(e.Report()))
	return digest
}
