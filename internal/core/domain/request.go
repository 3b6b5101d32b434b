package domain

import (
	"path/filepath"
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// ProducerKind selects the artifact producer for a generation run.
type ProducerKind int

const (
	// ProducerSchema emits one schema file per injectable.
	ProducerSchema ProducerKind = iota + 1
	// ProducerModule emits one aggregate module source for all injectables.
	ProducerModule
	// ProducerInstance emits one instance document for a single selected injectable.
	ProducerInstance
)

// String returns the string representation of the ProducerKind.
func (k ProducerKind) String() string {
	switch k {
	case ProducerSchema:
		return "schema"
	case ProducerModule:
		return "module"
	case ProducerInstance:
		return "instance"
	default:
		return "unknown"
	}
}

// ParseProducerKind parses the string form of a ProducerKind.
func ParseProducerKind(s string) (ProducerKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "schema":
		return ProducerSchema, nil
	case "module":
		return ProducerModule, nil
	case "instance":
		return ProducerInstance, nil
	default:
		return 0, zerr.With(zerr.Wrap(ErrUnknownProducer, "cannot parse producer kind"), "kind", s)
	}
}

// TraitMapping extends every builder whose component type matches Pattern with Trait.
type TraitMapping struct {
	Pattern string `yaml:"pattern"`
	Trait   string `yaml:"trait"`
}

// GenerationRequest carries the caller-supplied parameters of one run.
// The core only reads Kind and TypeFilter; the rest is passed to the producer.
type GenerationRequest struct {
	Kind ProducerKind

	// OutputDir is the root directory the artifacts are written under.
	OutputDir string

	ModuleName        string
	ModuleDescription string
	ModulePackage     string
	ModuleTraits      []string
	BuilderTraits     []TraitMapping

	// TypeFilter narrows the injectable set to one type for the instance producer.
	TypeFilter string
	// ConfigName is the instance document name; defaults to the filter's simple name.
	ConfigName      string
	IncludeOptional bool
}

// InstanceName returns the instance document file name, with the .xml
// extension appended when missing.
func (r GenerationRequest) InstanceName() string {
	name := r.ConfigName
	if name == "" {
		name = SimpleName(r.TypeFilter)
	}
	if !strings.HasSuffix(name, ".xml") {
		name += ".xml"
	}
	return name
}

var moduleIdentifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// ValidateModuleName checks that name is a plain Scala identifier.
func ValidateModuleName(name string) error {
	if !moduleIdentifier.MatchString(name) {
		return zerr.With(zerr.Wrap(ErrInvalidRequest, "module name must be a Scala identifier"), "module", name)
	}
	return nil
}

// ValidateInstanceName checks that the instance document stays below the
// output directory: no absolute path and no ".." element.
func ValidateInstanceName(name string) error {
	if !filepath.IsLocal(filepath.FromSlash(name)) {
		return zerr.With(zerr.Wrap(ErrInvalidRequest, "instance name must stay inside the output directory"), "name", name)
	}
	return nil
}

// Validate checks the parameters the selected producer needs, so a bad
// request fails before the classpath is resolved.
func (r GenerationRequest) Validate() error {
	switch r.Kind {
	case ProducerModule:
		return ValidateModuleName(r.ModuleName)
	case ProducerInstance:
		if r.TypeFilter == "" {
			return zerr.Wrap(ErrInvalidRequest, "instance generation needs a type filter")
		}
		return ValidateInstanceName(r.InstanceName())
	default:
		return nil
	}
}
