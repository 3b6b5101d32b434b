package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syringe/internal/adapters/config"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newLoader(t *testing.T, env map[string]string) *config.Loader {
	t.Helper()
	log := mocks.NewMockLogger(gomock.NewController(t))
	log.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()
	l := config.NewLoader(log)
	l.LookupEnv = func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
	return l
}

func write(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	dir := t.TempDir()

	s, err := newLoader(t, nil).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultSettings(dir), s)
	assert.Equal(t, filepath.Join(dir, "target", "classes"), s.Layout.ClassesDir())
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, domain.ConfigFileName, `
target: build/out
schema:
  resources: gen/xsd
module:
  sources: /abs/scala
  name: CoreModule
  description: Core services
  package: com.example.core
  traits: [Logging, Metrics]
  builderTraits:
    - pattern: "com.example.*Service"
      trait: ServiceBuilder
    - pattern: "*"
      trait: DefaultBuilder
instance:
  configDir: conf
  optional: true
`)

	s, err := newLoader(t, nil).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "build", "out"), s.Layout.Target)
	assert.Equal(t, filepath.Join(dir, "gen", "xsd"), s.Schema.Resources)
	assert.Equal(t, "/abs/scala", s.Module.Sources)
	assert.Equal(t, "CoreModule", s.Module.Name)
	assert.Equal(t, "Core services", s.Module.Description)
	assert.Equal(t, "com.example.core", s.Module.Package)
	assert.Equal(t, []string{"Logging", "Metrics"}, s.Module.Traits)
	assert.Equal(t, []domain.TraitMapping{
		{Pattern: "com.example.*Service", Trait: "ServiceBuilder"},
		{Pattern: "*", Trait: "DefaultBuilder"},
	}, s.Module.BuilderTraits)
	assert.Equal(t, filepath.Join(dir, "conf"), s.Instance.ConfigDir)
	assert.True(t, s.Instance.IncludeOptional)
}

func TestLoad_EnvOverrides(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, domain.ConfigFileName, "module:\n  name: FromFile\n  package: file.pkg\n")
	write(t, dir, domain.EnvFileName, "SYRINGE_MODULE_NAME=FromDotenv\nSYRINGE_TARGET=alt\n")

	s, err := newLoader(t, map[string]string{config.EnvModulePackage: "env.pkg"}).Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "FromDotenv", s.Module.Name)
	assert.Equal(t, "env.pkg", s.Module.Package)
	assert.Equal(t, filepath.Join(dir, "alt"), s.Layout.Target)
}

func TestLoad_ProcessEnvBeatsDotenv(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, domain.EnvFileName, "SYRINGE_MODULE_NAME=FromDotenv\n")

	s, err := newLoader(t, map[string]string{config.EnvModuleName: "FromProcess"}).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "FromProcess", s.Module.Name)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "malformed yaml", content: "module: [unclosed"},
		{name: "unknown key", content: "markers:\n  typeLevel: x\n"},
		{name: "incomplete trait", content: "module:\n  builderTraits:\n    - pattern: \"*\"\n"},
		{name: "bad pattern", content: "module:\n  builderTraits:\n    - pattern: \"[\"\n      trait: T\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			write(t, dir, domain.ConfigFileName, tt.content)

			_, err := newLoader(t, nil).Load(dir)
			require.ErrorIs(t, err, domain.ErrInvalidConfig)
		})
	}
}

func TestLoad_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	write(t, dir, domain.ConfigFileName, "")

	s, err := newLoader(t, nil).Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultSettings(dir), s)
}
