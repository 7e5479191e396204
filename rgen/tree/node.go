// Package tree holds the in-memory model of a resource directory and the
// scanner that builds it.
package tree

// ResourceNode is a folder in the resource tree. The zero node with empty
// RawName and RelPath is the resources root itself.
type ResourceNode struct {
	// RawName is the original filesystem segment, "" at the root.
	RawName string

	// RelPath is the slash-joined path from the resources root, "" at the
	// root. A child's RelPath is always its parent's RelPath joined with
	// its RawName using "/".
	RelPath string

	// Children are the subfolders in enumeration order. RawNames are unique
	// by construction since they come from distinct directory entries.
	Children []*ResourceNode

	// Files are the regular files directly in this folder, in enumeration
	// order.
	Files []*ResourceFile

	// Ident is the declaration identifier derived from RawName by the
	// naming pass (PascalCase). Empty until the tree is resolved.
	Ident string
}

// ResourceFile is one regular file under the resources root.
type ResourceFile struct {
	// RawName is the filename including its extension.
	RawName string

	// RelPath is the slash-joined path from the resources root.
	RelPath string

	// Ident is the field identifier derived from RawName by the naming
	// pass (lowerCamelCase). Empty until the tree is resolved.
	Ident string
}

// CountFiles returns the number of files in the tree rooted at n.
func (n *ResourceNode) CountFiles() int {
	count := len(n.Files)
	for _, child := range n.Children {
		count += child.CountFiles()
	}
	return count
}

// CountFolders returns the number of folders in the tree rooted at n, not
// counting n itself.
func (n *ResourceNode) CountFolders() int {
	count := len(n.Children)
	for _, child := range n.Children {
		count += child.CountFolders()
	}
	return count
}

// IsEmpty reports whether the tree rooted at n contains no files and no
// folders.
func (n *ResourceNode) IsEmpty() bool {
	return len(n.Files) == 0 && len(n.Children) == 0
}
