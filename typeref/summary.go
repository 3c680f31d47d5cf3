package typeref

// Summary is a flat, serializable view of a Reference for tools that print
// or transmit references.
type Summary struct {
	Kind            string   `json:"kind"                       yaml:"kind"`
	Name            string   `json:"name,omitempty"             yaml:"name,omitempty"`
	Container       string   `json:"container,omitempty"        yaml:"container,omitempty"`
	ElementType     string   `json:"element_type,omitempty"     yaml:"element_type,omitempty"`
	ValueType       string   `json:"value_type,omitempty"       yaml:"value_type,omitempty"`
	FreeFormMap     bool     `json:"map,omitempty"              yaml:"map,omitempty"`
	AllowableValues []string `json:"allowable_values,omitempty" yaml:"allowable_values,omitempty"`
}

// Summarize flattens ref.
func Summarize(ref Reference) Summary {
	s := Summary{Kind: ref.Kind().String()}
	switch r := ref.(type) {
	case *ScalarRef:
		s.Name = r.Name
	case *ContainerRef:
		s.Container = r.ContainerKind
		s.ElementType = r.ElementTypeName
	case *MapRef:
		s.Container = r.ContainerKind()
		s.ValueType = r.ValueTypeName
		s.FreeFormMap = r.HasMapMarker()
	default:
		s.Name = ref.TypeName()
	}
	if values := ref.Values(); values != nil {
		s.AllowableValues = values.Values
	}
	return s
}
