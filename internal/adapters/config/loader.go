// Package config provides the configuration loader for syringe.
package config

import (
	"bytes"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/joho/godotenv"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file and an optional .env
// file in the same directory.
type Loader struct {
	Filename string
	EnvFile  string
	// LookupEnv reads the process environment. Variables set there take
	// precedence over the .env file.
	LookupEnv func(key string) (string, bool)
	logger    ports.Logger
}

// NewLoader creates a new Loader reading syringe.yaml and .env.
func NewLoader(log ports.Logger) *Loader {
	return &Loader{
		Filename:  domain.ConfigFileName,
		EnvFile:   domain.EnvFileName,
		LookupEnv: os.LookupEnv,
		logger:    log,
	}
}

// Load resolves the settings for the project rooted at cwd: defaults, then
// the configuration file, then environment overrides.
func (l *Loader) Load(cwd string) (*domain.Settings, error) {
	root, err := filepath.Abs(cwd)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to resolve project root"), "path", cwd)
	}
	settings := domain.DefaultSettings(root)

	file, err := l.readFile(filepath.Join(root, l.Filename))
	if err != nil {
		return nil, err
	}
	if file != nil {
		if err := apply(settings, file); err != nil {
			return nil, err
		}
	}

	env, err := l.environment(filepath.Join(root, l.EnvFile))
	if err != nil {
		return nil, err
	}
	applyEnv(settings, env)

	return settings, nil
}

func (l *Loader) readFile(path string) (*Syringefile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is derived from the working directory
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			l.logger.Debug("no configuration file, using defaults", "path", path)
			return nil, nil //nolint:nilnil // Absent file is not an error
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read config file"), "path", path)
	}

	var file Syringefile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "failed to parse config file: "+err.Error()), "path", path)
	}
	return &file, nil
}

// environment merges the .env file with the process environment for the
// recognized variables.
func (l *Loader) environment(path string) (map[string]string, error) {
	env := make(map[string]string)

	dotenv, err := godotenv.Read(path)
	switch {
	case err == nil:
		env = dotenv
	case errors.Is(err, iofs.ErrNotExist):
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "failed to read env file: "+err.Error()), "path", path)
	}

	lookup := l.LookupEnv
	if lookup == nil {
		lookup = os.LookupEnv
	}
	for _, key := range []string{EnvTarget, EnvModuleName, EnvModulePackage} {
		if v, ok := lookup(key); ok {
			env[key] = v
		}
	}
	return env, nil
}

func apply(s *domain.Settings, file *Syringefile) error {
	resolve := func(p string) string {
		if filepath.IsAbs(p) {
			return filepath.Clean(p)
		}
		return filepath.Join(s.Root, p)
	}

	if file.Target != "" {
		s.Layout = domain.NewLayout(resolve(file.Target))
	}
	if file.Schema.Resources != "" {
		s.Schema.Resources = resolve(file.Schema.Resources)
	}
	if file.Module.Sources != "" {
		s.Module.Sources = resolve(file.Module.Sources)
	}
	s.Module.Name = file.Module.Name
	s.Module.Description = file.Module.Description
	s.Module.Package = file.Module.Package
	s.Module.Traits = file.Module.Traits
	for i, m := range file.Module.BuilderTraits {
		if m.Pattern == "" || m.Trait == "" {
			return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "builder trait needs a pattern and a trait"), "index", i)
		}
		if _, err := path.Match(m.Pattern, ""); err != nil {
			return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "bad builder trait pattern "+m.Pattern), "index", i)
		}
	}
	s.Module.BuilderTraits = file.Module.BuilderTraits
	if file.Instance.ConfigDir != "" {
		s.Instance.ConfigDir = resolve(file.Instance.ConfigDir)
	}
	s.Instance.IncludeOptional = file.Instance.Optional
	return nil
}

func applyEnv(s *domain.Settings, env map[string]string) {
	if v := env[EnvTarget]; v != "" {
		if !filepath.IsAbs(v) {
			v = filepath.Join(s.Root, v)
		}
		s.Layout = domain.NewLayout(v)
	}
	if v := env[EnvModuleName]; v != "" {
		s.Module.Name = v
	}
	if v := env[EnvModulePackage]; v != "" {
		s.Module.Package = v
	}
}
