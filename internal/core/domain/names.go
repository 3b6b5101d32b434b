package domain

import "strings"

// BinaryName converts an internal class name ("a/b/Foo$Bar") to its
// fully-qualified binary form ("a.b.Foo$Bar").
func BinaryName(internal string) string {
	return strings.ReplaceAll(internal, "/", ".")
}

// InternalName converts a fully-qualified binary name to its internal form.
func InternalName(binary string) string {
	return strings.ReplaceAll(binary, ".", "/")
}

// ResourcePath returns the class-file path of a binary name inside a classpath entry.
func ResourcePath(binary string) string {
	return InternalName(binary) + ClassExt
}

// NameFromResource returns the binary name for a class-file path inside a
// classpath entry, and false if the path is not a class file.
func NameFromResource(resource string) (string, bool) {
	resource = strings.TrimPrefix(strings.ReplaceAll(resource, "\\", "/"), "/")
	if !strings.HasSuffix(resource, ClassExt) {
		return "", false
	}
	return BinaryName(strings.TrimSuffix(resource, ClassExt)), true
}

// TypeFromDescriptor converts an object field descriptor ("La/b/Foo;") to a
// binary name. Other descriptors are returned unchanged.
func TypeFromDescriptor(desc string) string {
	if len(desc) >= 2 && desc[0] == 'L' && desc[len(desc)-1] == ';' {
		return BinaryName(desc[1 : len(desc)-1])
	}
	return desc
}

// SimpleName returns the part of a binary name after the last package separator.
func SimpleName(binary string) string {
	if i := strings.LastIndexByte(binary, '.'); i >= 0 {
		return binary[i+1:]
	}
	return binary
}

// PackageName returns the package part of a binary name, or "" for the default package.
func PackageName(binary string) string {
	if i := strings.LastIndexByte(binary, '.'); i >= 0 {
		return binary[:i]
	}
	return ""
}

// IsMetadataResource reports whether a class-file path holds module or
// package metadata rather than a type.
func IsMetadataResource(resource string) bool {
	base := resource
	if i := strings.LastIndexByte(resource, '/'); i >= 0 {
		base = resource[i+1:]
	}
	return base == "module-info.class" || base == "package-info.class"
}
