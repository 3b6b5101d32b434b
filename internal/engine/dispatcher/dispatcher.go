// Package dispatcher routes materialized injectables to the artifact producer
// selected by a generation request.
package dispatcher

import (
	"context"
	"strings"

	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports"
	"go.trai.ch/zerr"
)

// Dispatcher forwards a generation request to exactly one producer.
// It performs no generation itself.
type Dispatcher struct {
	producers map[domain.ProducerKind]ports.ArtifactProducer
}

// New creates a Dispatcher serving the given producers. A later producer of
// the same kind replaces an earlier one.
func New(producers ...ports.ArtifactProducer) *Dispatcher {
	d := &Dispatcher{producers: make(map[domain.ProducerKind]ports.ArtifactProducer, len(producers))}
	for _, p := range producers {
		d.producers[p.Kind()] = p
	}
	return d
}

// Kinds returns the registered producer kinds in ascending order.
func (d *Dispatcher) Kinds() []domain.ProducerKind {
	var kinds []domain.ProducerKind
	for _, k := range []domain.ProducerKind{domain.ProducerSchema, domain.ProducerModule, domain.ProducerInstance} {
		if _, ok := d.producers[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Dispatch checks the preconditions of req.Kind and hands the injectables to
// its producer. Producer errors are returned as they are.
func (d *Dispatcher) Dispatch(
	ctx context.Context,
	injectables []domain.LoadedInjectable,
	req domain.GenerationRequest,
) (domain.ArtifactSet, error) {
	switch req.Kind {
	case domain.ProducerSchema, domain.ProducerModule:
		if len(injectables) == 0 {
			return domain.ArtifactSet{}, zerr.With(
				zerr.Wrap(domain.ErrNoInjectables, "nothing to generate"), "producer", req.Kind.String())
		}
	case domain.ProducerInstance:
		selected, err := Select(injectables, req.TypeFilter, domain.LoadedInjectable.Name)
		if err != nil {
			return domain.ArtifactSet{}, err
		}
		injectables = []domain.LoadedInjectable{selected}
	default:
		return domain.ArtifactSet{}, zerr.With(
			zerr.Wrap(domain.ErrUnknownProducer, "cannot dispatch"), "kind", int(req.Kind))
	}

	producer, ok := d.producers[req.Kind]
	if !ok {
		return domain.ArtifactSet{}, zerr.With(
			zerr.Wrap(domain.ErrUnknownProducer, "no producer registered for "+req.Kind.String()), "kind", req.Kind.String())
	}
	return producer.Produce(ctx, injectables, req)
}

// Matches reports whether a fully-qualified name satisfies a type filter: the
// name equals the filter or ends with it.
func Matches(name, filter string) bool {
	return filter != "" && strings.HasSuffix(name, filter)
}

// Select returns the single item whose name matches filter. Zero or several
// matches are a selection error; ambiguous names are listed in the message
// and attached as metadata.
func Select[T any](items []T, filter string, name func(T) string) (T, error) {
	var zero T
	if strings.TrimSpace(filter) == "" {
		return zero, zerr.Wrap(domain.ErrSelection, "no type filter given")
	}

	var matched []T
	var names []string
	for _, item := range items {
		if n := name(item); Matches(n, filter) {
			matched = append(matched, item)
			names = append(names, n)
		}
	}

	switch len(matched) {
	case 1:
		return matched[0], nil
	case 0:
		return zero, zerr.With(zerr.Wrap(domain.ErrSelection, "no injectable type matches "+filter), "filter", filter)
	default:
		err := zerr.Wrap(domain.ErrSelection, "type filter "+filter+" is ambiguous: "+strings.Join(names, ", "))
		return zero, zerr.With(zerr.With(err, "filter", filter), "matches", names)
	}
}

// SelectCandidate narrows scanned candidates before materialization.
func SelectCandidate(candidates []domain.CandidateType, filter string) (domain.CandidateType, error) {
	return Select(candidates, filter, func(c domain.CandidateType) string { return c.Name })
}
