package domain

// MarkerKind identifies which marker made a type injectable.
type MarkerKind int

const (
	// TypeLevelMarker means the type itself carries the type-level marker.
	TypeLevelMarker MarkerKind = iota
	// FieldLevelMarker means at least one declared field carries the field-level marker.
	FieldLevelMarker
)

// String returns the string representation of the MarkerKind.
func (k MarkerKind) String() string {
	switch k {
	case TypeLevelMarker:
		return "type"
	case FieldLevelMarker:
		return "field"
	default:
		return "unknown"
	}
}

// MarkerSpec names the annotations that qualify a type as injectable.
type MarkerSpec struct {
	TypeLevel  string
	FieldLevel string
}

// DefaultMarkers are the syringe configuration annotations.
// Changing them is a code change, not a runtime parameter.
var DefaultMarkers = MarkerSpec{
	TypeLevel:  "com.avast.syringe.config.ConfigBean",
	FieldLevel: "com.avast.syringe.config.ConfigProperty",
}

// CandidateType is a type the scanner found to be injectable.
type CandidateType struct {
	// Name is the fully-qualified binary name.
	Name string
	// Marker is the marker that matched.
	Marker MarkerKind
	// Field is the first matching field for FieldLevelMarker matches.
	Field string
	// Origin is the classpath entry the type was found in.
	Origin string
}

// CandidateNames returns the names of candidates in order.
func CandidateNames(candidates []CandidateType) []string {
	names := make([]string, len(candidates))
	for i, c := range candidates {
		names[i] = c.Name
	}
	return names
}
