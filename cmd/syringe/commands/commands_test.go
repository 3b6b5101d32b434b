package commands_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syringe/cmd/syringe/commands"
	"go.trai.ch/syringe/internal/adapters/telemetry"
	"go.trai.ch/syringe/internal/app"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports/mocks"
	"go.trai.ch/syringe/internal/engine/dispatcher"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

type harness struct {
	cli      *commands.CLI
	out      *bytes.Buffer
	loader   *mocks.MockConfigLoader
	resolver *mocks.MockClasspathResolver
	scanner  *mocks.MockScanner
	hasher   *mocks.MockHasher
	logger   *mocks.MockLogger
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	ctrl := gomock.NewController(t)
	h := &harness{
		out:      &bytes.Buffer{},
		loader:   mocks.NewMockConfigLoader(ctrl),
		resolver: mocks.NewMockClasspathResolver(ctrl),
		scanner:  mocks.NewMockScanner(ctrl),
		hasher:   mocks.NewMockHasher(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}
	h.logger.EXPECT().Debug(gomock.Any(), gomock.Any()).AnyTimes()

	a := app.New(
		h.resolver,
		h.scanner,
		mocks.NewMockLoaderFactory(ctrl),
		mocks.NewMockDefiner(ctrl),
		dispatcher.New(),
		mocks.NewMockArtifactWriter(ctrl),
		h.hasher,
		h.logger,
		telemetry.NewNoOp(),
	)
	h.cli = commands.New(app.NewComponents(a, h.logger, h.loader, telemetry.NewNoOp()))
	h.cli.SetOutput(h.out)
	return h
}

func (h *harness) run(args ...string) error {
	h.cli.SetArgs(args)
	return h.cli.Execute(context.Background())
}

func TestVersion(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("version"))
	assert.Contains(t, h.out.String(), "syringe version dev")
}

func TestRoot_Help(t *testing.T) {
	h := newHarness(t)
	require.NoError(t, h.run("--help"))
	for _, cmd := range []string{"schema", "module", "instance", "scan", "version"} {
		assert.Contains(t, h.out.String(), cmd)
	}
}

func TestSchema_TargetFlagOverridesConfig(t *testing.T) {
	h := newHarness(t)
	root := t.TempDir()
	h.loader.EXPECT().Load("proj").Return(domain.DefaultSettings(root), nil)
	h.resolver.EXPECT().ResolveManifest(domain.NewLayout(filepath.Join(root, "out"))).
		Return(domain.Classpath{}, zerr.Wrap(domain.ErrResolution, "manifest missing"))

	err := h.run("schema", "--dir", "proj", "--target", "out")
	require.ErrorIs(t, err, domain.ErrResolution)
}

func TestSchema_ConfigError(t *testing.T) {
	h := newHarness(t)
	h.loader.EXPECT().Load(".").Return(nil, zerr.Wrap(domain.ErrInvalidConfig, "bad yaml"))

	err := h.run("schema")
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestVerboseSwitchesToDebug(t *testing.T) {
	h := newHarness(t)
	h.logger.EXPECT().SetLevel(domain.LogLevelDebug).Times(1)
	require.NoError(t, h.run("--verbose", "version"))
}

func TestInstance_RequiresClass(t *testing.T) {
	h := newHarness(t)
	err := h.run("instance")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "class")
}

func TestScan_ListsCandidates(t *testing.T) {
	h := newHarness(t)
	root := t.TempDir()
	settings := domain.DefaultSettings(root)
	classes := domain.NewClasspathEntry(settings.Layout.ClassesDir())
	dep := domain.NewClasspathEntry(filepath.Join(root, "dep.jar"))
	classpath := domain.NewClasspath(classes, []domain.ClasspathEntry{dep})

	h.loader.EXPECT().Load(".").Return(settings, nil)
	h.resolver.EXPECT().ResolveManifest(settings.Layout).Return(classpath, nil)
	h.scanner.EXPECT().Scan(gomock.Any(), classpath.Entries(), domain.DefaultMarkers).Return([]domain.CandidateType{
		{Name: "a.Foo", Marker: domain.TypeLevelMarker, Origin: classes.Path},
		{Name: "b.Bar", Marker: domain.FieldLevelMarker, Field: "host", Origin: dep.Path},
	}, nil)
	h.hasher.EXPECT().ComputeTreeHash(classes.Path, domain.ClassExt).Return("00000000deadbeef", nil)

	require.NoError(t, h.run("scan", "--deps"))
	out := h.out.String()
	assert.Contains(t, out, "a.Foo")
	assert.Contains(t, out, "host")
	assert.Contains(t, out, "2 candidate(s), classes 00000000deadbeef")
}
