package config

import "go.trai.ch/syringe/internal/core/domain"

// Syringefile represents the structure of the syringe.yaml configuration file.
// Relative paths are resolved against the directory holding the file.
type Syringefile struct {
	Target   string      `yaml:"target"`
	Schema   SchemaDTO   `yaml:"schema"`
	Module   ModuleDTO   `yaml:"module"`
	Instance InstanceDTO `yaml:"instance"`
}

// SchemaDTO configures the schema producer.
type SchemaDTO struct {
	Resources string `yaml:"resources"`
}

// ModuleDTO configures the module producer.
type ModuleDTO struct {
	Sources       string                `yaml:"sources"`
	Name          string                `yaml:"name"`
	Description   string                `yaml:"description"`
	Package       string                `yaml:"package"`
	Traits        []string              `yaml:"traits"`
	BuilderTraits []domain.TraitMapping `yaml:"builderTraits"`
}

// InstanceDTO configures the instance producer.
type InstanceDTO struct {
	ConfigDir string `yaml:"configDir"`
	Optional  bool   `yaml:"optional"`
}

// Environment variables that override the configuration file.
const (
	EnvTarget        = "SYRINGE_TARGET"
	EnvModuleName    = "SYRINGE_MODULE_NAME"
	EnvModulePackage = "SYRINGE_MODULE_PACKAGE"
)
