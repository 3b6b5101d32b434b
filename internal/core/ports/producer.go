package ports

import (
	"context"

	"go.trai.ch/syringe/internal/core/domain"
)

// ArtifactProducer derives artifacts from materialized injectables.
// Producers return content only; nothing is written until every artifact is produced.
//
//go:generate go run go.uber.org/mock/mockgen -source=producer.go -destination=mocks/mock_producer.go -package=mocks
type ArtifactProducer interface {
	// Kind returns the producer kind this producer serves.
	Kind() domain.ProducerKind

	// Produce renders the artifacts for the injectables.
	Produce(ctx context.Context, injectables []domain.LoadedInjectable, req domain.GenerationRequest) (domain.ArtifactSet, error)
}

// ArtifactWriter persists produced artifacts.
type ArtifactWriter interface {
	// Write stores the artifact under root. It reports false when the file
	// already had identical content and was left untouched.
	Write(root string, artifact domain.Artifact) (bool, error)
}
