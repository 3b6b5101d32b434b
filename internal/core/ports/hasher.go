package ports

//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks

// Hasher computes content digests of files and directory trees.
type Hasher interface {
	// ComputeFileHash returns the digest of a file's content.
	ComputeFileHash(path string) (uint64, error)

	// ComputeTreeHash returns a single digest over the relative paths and
	// contents of every file below root whose name ends in ext.
	ComputeTreeHash(root, ext string) (string, error)
}
