package domain

// LoadedInjectable is a materialized injectable type paired with the scan
// result that selected it.
type LoadedInjectable struct {
	Type      *TypeHandle
	Candidate CandidateType
}

// Name returns the fully-qualified type name.
func (l LoadedInjectable) Name() string {
	return l.Candidate.Name
}

// Valid reports whether the loading context that produced the handle is still open.
func (l LoadedInjectable) Valid() bool {
	return l.Type != nil && l.Type.Valid()
}
