// Package loader materializes scanned types inside isolated loading contexts.
//
// A context resolves names against exactly the classpath it was opened with,
// after first asking its parent environment. Handles it issues are bound to
// the context and become invalid once it is closed.
package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
	"go.trai.ch/syringe/internal/adapters/classfile"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.LoaderFactory  = (*Factory)(nil)
	_ ports.LoadingContext = (*Context)(nil)
)

// Factory opens loading contexts. It holds no state between contexts.
type Factory struct {
	opener ports.SourceOpener
	logger ports.Logger
}

// NewFactory creates a new Factory.
func NewFactory(opener ports.SourceOpener, logger ports.Logger) *Factory {
	return &Factory{opener: opener, logger: logger}
}

// Open opens every entry of classpath, output directory first. Entries that
// cannot be opened are logged and left out, so types only they define fail
// to materialize.
func (f *Factory) Open(classpath domain.Classpath, parent ports.Definer) (ports.LoadingContext, error) {
	id := uuid.NewString()
	c := &Context{
		id:      id,
		scope:   domain.NewScope(id),
		parent:  parent,
		defined: make(map[string]*domain.TypeHandle),
	}

	for _, entry := range classpath.Entries() {
		src, err := f.opener.Open(entry)
		if err != nil {
			f.logger.Warn(fmt.Sprintf("classpath entry %s is unavailable: %v", entry.Path, err))
			continue
		}
		c.sources = append(c.sources, src)
	}

	f.logger.Debug("loading context opened", "id", id, "entries", len(c.sources))
	return c, nil
}

// Context is an isolated loading context.
type Context struct {
	id     string
	scope  *domain.Scope
	parent ports.Definer

	mu      sync.Mutex
	sources []ports.ClassSource
	defined map[string]*domain.TypeHandle
	closed  bool
}

// ID returns the unique identifier of the context.
func (c *Context) ID() string {
	return c.id
}

// Materialize resolves every candidate through the context. It returns no
// injectables if any candidate fails.
func (c *Context) Materialize(
	ctx context.Context,
	candidates []domain.CandidateType,
) ([]domain.LoadedInjectable, error) {
	loaded := make([]domain.LoadedInjectable, 0, len(candidates))
	for _, candidate := range candidates {
		if err := ctx.Err(); err != nil {
			return nil, zerr.Wrap(err, "materialization cancelled")
		}
		h, err := c.Lookup(candidate.Name)
		if err != nil {
			return nil, zerr.Wrap(err, "materialization aborted")
		}
		loaded = append(loaded, domain.LoadedInjectable{Type: h, Candidate: candidate})
	}
	return loaded, nil
}

// Lookup resolves name, asking the parent environment first and then each
// entry in order. The first entry defining the name wins.
func (c *Context) Lookup(name string) (*domain.TypeHandle, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil, zerr.With(zerr.Wrap(domain.ErrContextClosed, "lookup of "+name), "context", c.id)
	}
	return c.lookupLocked(name)
}

func (c *Context) lookupLocked(name string) (*domain.TypeHandle, error) {
	if c.parent != nil {
		if h, ok := c.parent.Define(name); ok {
			return h, nil
		}
	}
	if h, ok := c.defined[name]; ok {
		return h, nil
	}

	resource := domain.ResourcePath(name)
	for _, src := range c.sources {
		data, found, err := src.ReadClass(resource)
		if err != nil {
			return nil, c.fail(name, "cannot read class file", err)
		}
		if !found {
			continue
		}
		return c.define(name, src.Entry(), data)
	}
	return nil, c.fail(name, "not found on classpath", nil)
}

// define parses data and records the resulting handle before linking its
// super type, so circular hierarchies in corrupt input terminate.
func (c *Context) define(name string, entry domain.ClasspathEntry, data []byte) (*domain.TypeHandle, error) {
	cf, err := classfile.Parse(data)
	if err != nil {
		return nil, c.fail(name, "cannot parse class file from "+entry.Path, err)
	}
	if cf.Name != name {
		return nil, c.fail(name, "class file in "+entry.Path+" declares "+cf.Name, nil)
	}

	h := (&domain.TypeHandle{
		Name:        cf.Name,
		SuperName:   cf.SuperName,
		Interfaces:  cf.Interfaces,
		Access:      cf.Access,
		Fields:      cf.Fields,
		Annotations: cf.Annotations,
		Origin:      entry.Path,
		Digest:      xxhash.Sum64(data),
	}).Bind(c.scope)
	c.defined[name] = h

	if cf.SuperName != "" {
		if super, err := c.lookupLocked(cf.SuperName); err == nil {
			h.Super = super
		}
	}
	return h, nil
}

func (c *Context) fail(name, reason string, cause error) error {
	if cause != nil {
		reason += ": " + cause.Error()
	}
	err := zerr.Wrap(domain.ErrMaterialization, "type "+name+" "+reason)
	return zerr.With(zerr.With(err, "type", name), "context", c.id)
}

// Close releases every entry and invalidates the handles issued by the
// context. Calling Close again has no effect.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true
	c.scope.Release()
	clear(c.defined)

	var errs []error
	for _, src := range c.sources {
		if err := src.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.sources = nil
	if err := errors.Join(errs...); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to close loading context"), "context", c.id)
	}
	return nil
}
