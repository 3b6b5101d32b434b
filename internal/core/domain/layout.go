package domain

import "path/filepath"

const (
	// ConfigFileName is the name of the optional project configuration file.
	ConfigFileName = "syringe.yaml"

	// EnvFileName is the name of the optional environment override file.
	EnvFileName = ".env"

	// DefaultTargetDir is the build output directory, relative to the project root.
	DefaultTargetDir = "target"

	// ClassesDirName is the compiled-output directory inside the target directory.
	ClassesDirName = "classes"

	// LibDirName is the dependency archive directory inside the target directory.
	LibDirName = "lib"

	// ManifestFileName is the classpath manifest inside the target directory.
	ManifestFileName = "classpath"

	// ArchiveExt is the extension of dependency archives.
	ArchiveExt = ".jar"

	// ClassExt is the extension of compiled class files.
	ClassExt = ".class"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644
)

// Layout locates the well-known build outputs of a project.
type Layout struct {
	// Target is the build output directory.
	Target string
}

// NewLayout returns the layout rooted at the given target directory.
func NewLayout(target string) Layout {
	return Layout{Target: filepath.Clean(target)}
}

// ClassesDir returns the compiled-output directory.
func (l Layout) ClassesDir() string {
	return filepath.Join(l.Target, ClassesDirName)
}

// LibDir returns the dependency archive directory.
func (l Layout) LibDir() string {
	return filepath.Join(l.Target, LibDirName)
}

// ManifestPath returns the classpath manifest file.
func (l Layout) ManifestPath() string {
	return filepath.Join(l.Target, ManifestFileName)
}
