package dispatcher_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/syringe/internal/core/domain"
	"go.trai.ch/syringe/internal/core/ports/mocks"
	"go.trai.ch/syringe/internal/engine/dispatcher"
	"go.trai.ch/zerr"
	"go.uber.org/mock/gomock"
)

func injectable(name string) domain.LoadedInjectable {
	return domain.LoadedInjectable{
		Type:      &domain.TypeHandle{Name: name},
		Candidate: domain.CandidateType{Name: name, Marker: domain.TypeLevelMarker},
	}
}

func producer(ctrl *gomock.Controller, kind domain.ProducerKind) *mocks.MockArtifactProducer {
	p := mocks.NewMockArtifactProducer(ctrl)
	p.EXPECT().Kind().Return(kind).AnyTimes()
	return p
}

func TestDispatch_RoutesByKind(t *testing.T) {
	ctrl := gomock.NewController(t)
	schema := producer(ctrl, domain.ProducerSchema)
	module := producer(ctrl, domain.ProducerModule)
	d := dispatcher.New(schema, module)

	all := []domain.LoadedInjectable{injectable("a.Foo"), injectable("a.Bar")}
	req := domain.GenerationRequest{Kind: domain.ProducerModule, ModuleName: "M"}
	want := domain.NewArtifactSet(domain.Artifact{Path: "M.scala"})

	module.EXPECT().Produce(gomock.Any(), all, req).Return(want, nil)

	got, err := d.Dispatch(context.Background(), all, req)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, []domain.ProducerKind{domain.ProducerSchema, domain.ProducerModule}, d.Kinds())
}

func TestDispatch_EmptySet(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := dispatcher.New(producer(ctrl, domain.ProducerSchema), producer(ctrl, domain.ProducerModule))

	for _, kind := range []domain.ProducerKind{domain.ProducerSchema, domain.ProducerModule} {
		_, err := d.Dispatch(context.Background(), nil, domain.GenerationRequest{Kind: kind})
		require.ErrorIs(t, err, domain.ErrNoInjectables)
	}
}

func TestDispatch_InstanceSelectsOne(t *testing.T) {
	ctrl := gomock.NewController(t)
	instance := producer(ctrl, domain.ProducerInstance)
	d := dispatcher.New(instance)

	all := []domain.LoadedInjectable{injectable("a.Foo"), injectable("b.FooBar"), injectable("c.Baz")}
	req := domain.GenerationRequest{Kind: domain.ProducerInstance, TypeFilter: "FooBar"}

	instance.EXPECT().
		Produce(gomock.Any(), []domain.LoadedInjectable{all[1]}, req).
		Return(domain.NewArtifactSet(domain.Artifact{Path: "FooBar.xml"}), nil)

	got, err := d.Dispatch(context.Background(), all, req)
	require.NoError(t, err)
	assert.Equal(t, []string{"FooBar.xml"}, got.Paths())
}

func TestDispatch_InstanceSelectionErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := dispatcher.New(producer(ctrl, domain.ProducerInstance))
	all := []domain.LoadedInjectable{injectable("a.Foo"), injectable("b.Foo"), injectable("c.Baz")}

	tests := []struct {
		name     string
		filter   string
		contains string
	}{
		{name: "no filter", filter: "", contains: "no type filter"},
		{name: "no match", filter: "Qux", contains: "no injectable type matches Qux"},
		{name: "ambiguous", filter: "Foo", contains: "a.Foo, b.Foo"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := d.Dispatch(context.Background(), all, domain.GenerationRequest{
				Kind:       domain.ProducerInstance,
				TypeFilter: tt.filter,
			})
			require.ErrorIs(t, err, domain.ErrSelection)
			assert.Contains(t, err.Error(), tt.contains)
		})
	}
}

func TestDispatch_UnknownProducer(t *testing.T) {
	ctrl := gomock.NewController(t)
	d := dispatcher.New(producer(ctrl, domain.ProducerSchema))

	_, err := d.Dispatch(context.Background(), []domain.LoadedInjectable{injectable("a.Foo")},
		domain.GenerationRequest{Kind: domain.ProducerModule})
	require.ErrorIs(t, err, domain.ErrUnknownProducer)

	_, err = d.Dispatch(context.Background(), []domain.LoadedInjectable{injectable("a.Foo")},
		domain.GenerationRequest{Kind: domain.ProducerKind(99)})
	require.ErrorIs(t, err, domain.ErrUnknownProducer)
}

func TestDispatch_ProducerErrorIsUnmodified(t *testing.T) {
	ctrl := gomock.NewController(t)
	schema := producer(ctrl, domain.ProducerSchema)
	d := dispatcher.New(schema)

	boom := errors.New("template exploded")
	schema.EXPECT().Produce(gomock.Any(), gomock.Any(), gomock.Any()).Return(domain.ArtifactSet{}, boom)

	_, err := d.Dispatch(context.Background(), []domain.LoadedInjectable{injectable("a.Foo")},
		domain.GenerationRequest{Kind: domain.ProducerSchema})
	assert.Same(t, boom, err)
}

func TestSelectCandidate(t *testing.T) {
	candidates := []domain.CandidateType{
		{Name: "com.acme.Server"},
		{Name: "com.acme.http.HttpServer"},
		{Name: "com.acme.Client"},
	}

	tests := []struct {
		filter string
		want   string
		err    bool
	}{
		{filter: "com.acme.Server", want: "com.acme.Server"},
		{filter: "acme.Server", want: "com.acme.Server"},
		{filter: "HttpServer", want: "com.acme.http.HttpServer"},
		{filter: "Client", want: "com.acme.Client"},
		{filter: "Server", err: true},
		{filter: "Missing", err: true},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			got, err := dispatcher.SelectCandidate(candidates, tt.filter)
			if tt.err {
				require.ErrorIs(t, err, domain.ErrSelection)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.Name)
		})
	}
}

func TestSelect_AmbiguousMetadata(t *testing.T) {
	_, err := dispatcher.SelectCandidate([]domain.CandidateType{{Name: "a.X"}, {Name: "b.X"}}, "X")
	require.Error(t, err)

	var zErr *zerr.Error
	require.ErrorAs(t, err, &zErr)
	assert.Equal(t, []string{"a.X", "b.X"}, zErr.Metadata()["matches"])
}
