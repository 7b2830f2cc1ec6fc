package common

import "path"

// QualifiedName renders a type as "<package name>.<Name>", for example
// "formvalue/examples/blog" and "Post" as "blog.Post". Types without a
// package path (predeclared or unnamed) are returned as name alone.
func QualifiedName(pkgPath, name string) string {
	if pkgPath == "" {
		return name
	}

	return path.Base(pkgPath) + "." + name
}
