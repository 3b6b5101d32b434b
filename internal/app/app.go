// Package app implements the discovery and generation pipeline of syringe.
package app

import (
	"context"
	"fmt"
	"path/filepath"

	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
	"go.trai.ch/syringe/internal/engine/dispatcher"
	"go.trai.ch/zerr"
)

// App runs one generation pipeline per call. It holds no per-run state.
type App struct {
	resolver   ports.ClasspathResolver
	scanner    ports.Scanner
	loaders    ports.LoaderFactory
	parent     ports.Definer
	dispatcher *dispatcher.Dispatcher
	writer     ports.ArtifactWriter
	hasher     ports.Hasher
	logger     ports.Logger
	telemetry  ports.Telemetry
}

// New creates a new App instance.
func New(
	resolver ports.ClasspathResolver,
	scanner ports.Scanner,
	loaders ports.LoaderFactory,
	parent ports.Definer,
	d *dispatcher.Dispatcher,
	writer ports.ArtifactWriter,
	hasher ports.Hasher,
	logger ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		resolver:   resolver,
		scanner:    scanner,
		loaders:    loaders,
		parent:     parent,
		dispatcher: d,
		writer:     writer,
		hasher:     hasher,
		logger:     logger,
		telemetry:  telemetry,
	}
}

// Result summarizes a generation run.
type Result struct {
	// Artifacts are the absolute paths of every produced artifact, sorted.
	Artifacts []string
	// Unchanged counts artifacts whose content was already up to date.
	Unchanged int
}

// ScanReport is the outcome of a discovery-only run.
type ScanReport struct {
	Candidates []domain.CandidateType
	// Fingerprint identifies the compiled output the scan ran over.
	Fingerprint string
}

// Generate resolves the classpath of layout, discovers and materializes the
// injectables req.Kind needs, and writes the artifacts its producer returns
// under req.OutputDir. Nothing is written unless every step succeeds.
func (a *App) Generate(ctx context.Context, layout domain.Layout, req domain.GenerationRequest) (Result, error) {
	if err := req.Validate(); err != nil {
		return Result{}, err
	}

	classpath, err := a.resolve(ctx, layout, req.Kind)
	if err != nil {
		return Result{}, err
	}

	candidates, err := a.scan(ctx, scanEntries(classpath, req.Kind))
	if err != nil {
		return Result{}, err
	}
	if req.Kind == domain.ProducerInstance {
		selected, errSel := dispatcher.SelectCandidate(candidates, req.TypeFilter)
		if errSel != nil {
			return Result{}, errSel
		}
		candidates = []domain.CandidateType{selected}
	}

	lc, err := a.loaders.Open(classpath, a.parent)
	if err != nil {
		return Result{}, zerr.Wrap(err, "failed to open loading context")
	}
	defer func() {
		if errClose := lc.Close(); errClose != nil {
			a.logger.Warn(fmt.Sprintf("failed to close loading context %s: %v", lc.ID(), errClose))
		}
	}()

	injectables, err := a.materialize(ctx, lc, candidates)
	if err != nil {
		return Result{}, err
	}

	set, err := a.generate(ctx, injectables, req)
	if err != nil {
		return Result{}, err
	}
	return a.write(ctx, set, req)
}

// Scan resolves the manifest classpath of layout and reports the candidates
// of the compiled output, or of the whole classpath when withDependencies is set.
func (a *App) Scan(ctx context.Context, layout domain.Layout, withDependencies bool) (ScanReport, error) {
	classpath, err := a.resolve(ctx, layout, domain.ProducerSchema)
	if err != nil {
		return ScanReport{}, err
	}

	entries := []domain.ClasspathEntry{classpath.Output()}
	if withDependencies {
		entries = classpath.Entries()
	}
	candidates, err := a.scan(ctx, entries)
	if err != nil {
		return ScanReport{}, err
	}

	fingerprint, err := a.hasher.ComputeTreeHash(classpath.Output().Path, domain.ClassExt)
	if err != nil {
		return ScanReport{}, zerr.With(zerr.Wrap(err, "failed to fingerprint compiled output"), "path", classpath.Output().Path)
	}
	return ScanReport{Candidates: candidates, Fingerprint: fingerprint}, nil
}

func (a *App) resolve(ctx context.Context, layout domain.Layout, kind domain.ProducerKind) (domain.Classpath, error) {
	_, vertex := a.telemetry.Record(ctx, domain.PhaseResolve)

	var (
		classpath domain.Classpath
		err       error
	)
	if kind == domain.ProducerInstance {
		classpath, err = a.resolver.ResolveLibDir(layout)
	} else {
		classpath, err = a.resolver.ResolveManifest(layout)
	}
	vertex.Complete(err)
	if err != nil {
		return domain.Classpath{}, err
	}

	a.logger.Debug("classpath resolved", "entries", len(classpath.Entries()), "target", layout.Target)
	return classpath, nil
}

// scanEntries returns the entries searched for candidates. Schema and module
// runs only consider the project's own compiled output.
func scanEntries(classpath domain.Classpath, kind domain.ProducerKind) []domain.ClasspathEntry {
	if kind == domain.ProducerInstance {
		return classpath.Entries()
	}
	return []domain.ClasspathEntry{classpath.Output()}
}

func (a *App) scan(ctx context.Context, entries []domain.ClasspathEntry) ([]domain.CandidateType, error) {
	ctx, vertex := a.telemetry.Record(ctx, domain.PhaseScan)
	candidates, err := a.scanner.Scan(ctx, entries, domain.DefaultMarkers)
	vertex.Complete(err)
	if err != nil {
		return nil, err
	}
	return candidates, nil
}

func (a *App) materialize(
	ctx context.Context,
	lc ports.LoadingContext,
	candidates []domain.CandidateType,
) ([]domain.LoadedInjectable, error) {
	ctx, vertex := a.telemetry.Record(ctx, domain.PhaseMaterialize)
	injectables, err := lc.Materialize(ctx, candidates)
	vertex.Complete(err)
	return injectables, err
}

func (a *App) generate(
	ctx context.Context,
	injectables []domain.LoadedInjectable,
	req domain.GenerationRequest,
) (domain.ArtifactSet, error) {
	ctx, vertex := a.telemetry.Record(ctx, domain.PhaseDispatch)
	set, err := a.dispatcher.Dispatch(ctx, injectables, req)
	vertex.Complete(err)
	return set, err
}

func (a *App) write(ctx context.Context, set domain.ArtifactSet, req domain.GenerationRequest) (Result, error) {
	_, vertex := a.telemetry.Record(ctx, domain.PhaseWrite)

	var result Result
	for _, artifact := range set.Artifacts {
		dest := filepath.Join(req.OutputDir, filepath.FromSlash(artifact.Path))
		a.logger.Info(fmt.Sprintf("Generating %s for %s into %s", req.Kind, artifact.Source, dest))

		written, err := a.writer.Write(req.OutputDir, artifact)
		if err != nil {
			err = zerr.With(zerr.Wrap(err, "failed to write artifact"), "path", dest)
			vertex.Complete(err)
			return Result{}, err
		}
		if !written {
			result.Unchanged++
			vertex.Log(domain.LogLevelDebug, "unchanged "+dest)
		}
		result.Artifacts = append(result.Artifacts, dest)
	}
	vertex.Complete(nil)
	return result, nil
}
