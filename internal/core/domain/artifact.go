package domain

import "sort"

// Artifact is a produced file, held in memory until it is written.
type Artifact struct {
	// Path is the destination path, relative to the request's OutputDir.
	Path    string
	Content []byte
	// Source is the injectable type the artifact was derived from, if any.
	Source string
}

// ArtifactSet is the output of a single producer run.
type ArtifactSet struct {
	Artifacts []Artifact
}

// NewArtifactSet returns a set sorted by path.
func NewArtifactSet(artifacts ...Artifact) ArtifactSet {
	sorted := make([]Artifact, len(artifacts))
	copy(sorted, artifacts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Path < sorted[j].Path
	})
	return ArtifactSet{Artifacts: sorted}
}

// Len returns the number of artifacts.
func (s ArtifactSet) Len() int {
	return len(s.Artifacts)
}

// Paths returns the artifact paths in order.
func (s ArtifactSet) Paths() []string {
	paths := make([]string, len(s.Artifacts))
	for i, a := range s.Artifacts {
		paths[i] = a.Path
	}
	return paths
}
