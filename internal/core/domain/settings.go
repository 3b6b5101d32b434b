package domain

import "path/filepath"

// Settings is the resolved project configuration for a run.
type Settings struct {
	// Root is the project directory all relative paths are resolved against.
	Root     string
	Layout   Layout
	Schema   SchemaSettings
	Module   ModuleSettings
	Instance InstanceSettings
}

// SchemaSettings configures the schema producer.
type SchemaSettings struct {
	Resources string
}

// ModuleSettings configures the module producer.
type ModuleSettings struct {
	Sources       string
	Name          string
	Description   string
	Package       string
	Traits        []string
	BuilderTraits []TraitMapping
}

// InstanceSettings configures the instance producer.
type InstanceSettings struct {
	ConfigDir       string
	IncludeOptional bool
}

// DefaultSettings returns the settings used when no configuration file exists.
func DefaultSettings(root string) *Settings {
	return &Settings{
		Root:     root,
		Layout:   NewLayout(filepath.Join(root, DefaultTargetDir)),
		Schema:   SchemaSettings{Resources: filepath.Join(root, "src", "main", "resources")},
		Module:   ModuleSettings{Sources: filepath.Join(root, "src", "main", "scala")},
		Instance: InstanceSettings{ConfigDir: filepath.Join(root, "src", "config")},
	}
}

// Request builds the generation request of the given kind from the settings.
// Instance requests still need a TypeFilter from the caller.
func (s *Settings) Request(kind ProducerKind) GenerationRequest {
	req := GenerationRequest{Kind: kind}
	switch kind {
	case ProducerSchema:
		req.OutputDir = s.Schema.Resources
	case ProducerModule:
		req.OutputDir = s.Module.Sources
		req.ModuleName = s.Module.Name
		req.ModuleDescription = s.Module.Description
		req.ModulePackage = s.Module.Package
		req.ModuleTraits = append([]string(nil), s.Module.Traits...)
		req.BuilderTraits = append([]TraitMapping(nil), s.Module.BuilderTraits...)
	case ProducerInstance:
		req.OutputDir = s.Instance.ConfigDir
		req.IncludeOptional = s.Instance.IncludeOptional
	}
	return req
}
