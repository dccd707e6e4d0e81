package reflection

import "fmt"

// Kind identifies the documentable entity a reflection represents
type Kind int

const (
	KindProject Kind = iota
	KindModule
	KindExternalModule
	KindClass
	KindInterface
	KindFunction
	KindMethod
	KindConstructor
	KindProperty
	KindAccessor
	KindEnum
	KindEnumMember
	KindVariable
	KindTypeAlias
	KindCallSignature
	KindParameter
	KindEvent
)

var kindNames = map[Kind]string{
	KindProject:        "Project",
	KindModule:         "Module",
	KindExternalModule: "ExternalModule",
	KindClass:          "Class",
	KindInterface:      "Interface",
	KindFunction:       "Function",
	KindMethod:         "Method",
	KindConstructor:    "Constructor",
	KindProperty:       "Property",
	KindAccessor:       "Accessor",
	KindEnum:           "Enum",
	KindEnumMember:     "EnumMember",
	KindVariable:       "Variable",
	KindTypeAlias:      "TypeAlias",
	KindCallSignature:  "CallSignature",
	KindParameter:      "Parameter",
	KindEvent:          "Event",
}

var kindByName = func() map[string]Kind {
	result := make(map[string]Kind, len(kindNames))
	for k, name := range kindNames {
		result[name] = k
	}
	return result
}()

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Is returns true if kind is one of supplied kinds
func (k Kind) Is(kinds ...Kind) bool {
	for _, candidate := range kinds {
		if k == candidate {
			return true
		}
	}
	return false
}

// IsModule returns true for module container kinds
func (k Kind) IsModule() bool {
	return k == KindModule || k == KindExternalModule
}

// MarshalText implements encoding.TextMarshaler
func (k Kind) MarshalText() ([]byte, error) {
	name, ok := kindNames[k]
	if !ok {
		return nil, fmt.Errorf("unknown kind: %d", int(k))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (k *Kind) UnmarshalText(text []byte) error {
	kind, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// ParseKind returns kind for its name
func ParseKind(name string) (Kind, error) {
	if kind, ok := kindByName[name]; ok {
		return kind, nil
	}
	return 0, fmt.Errorf("unknown kind: %q", name)
}
