package naming

import (
	"strconv"

	"github.com/enosistudio/rgen/rgen/tree"
)

// Resolver hands out unique identifiers within one sibling scope.
// Sanitization is lossy ("report.v1" and "report-v1" sanitize identically),
// so an unresolved scope could declare the same field twice.
type Resolver struct {
	taken map[string]struct{}
}

// NewResolver creates a resolver whose scope already contains the reserved
// identifiers.
func NewResolver(reserved ...string) *Resolver {
	r := &Resolver{taken: make(map[string]struct{}, len(reserved))}
	for _, id := range reserved {
		r.taken[id] = struct{}{}
	}
	return r
}

// Claim returns candidate unchanged when it is free in this scope, otherwise
// candidate with the smallest unused numeric suffix appended (2, 3, ...).
// The returned identifier is marked as taken.
func (r *Resolver) Claim(candidate string) string {
	id := candidate
	for n := 2; ; n++ {
		if _, ok := r.taken[id]; !ok {
			break
		}
		id = candidate + strconv.Itoa(n)
	}
	r.taken[id] = struct{}{}
	return id
}

// supportTypeNames are declared in every emitted source unit and must never
// be shadowed by a derived folder identifier.
var supportTypeNames = []string{"RFile", "RFolder"}

// ResolveTree assigns declaration identifiers to every file and folder in
// the tree. File fields use FieldStyle and folder declarations TypeStyle;
// each kind is resolved in its own sibling scope, in enumeration order. The
// folder scope is additionally seeded with the file identifiers of the same
// level and with the support type names, because files, folders, and the
// embedded folder metadata all share one struct namespace in the emitted
// code.
func ResolveTree(root *tree.ResourceNode) {
	resolveNode(root)
}

func resolveNode(node *tree.ResourceNode) {
	fileScope := NewResolver()
	for _, f := range node.Files {
		f.Ident = fileScope.Claim(Sanitize(f.RawName, FieldStyle))
	}

	reserved := make([]string, 0, len(node.Files)+len(supportTypeNames))
	reserved = append(reserved, supportTypeNames...)
	for _, f := range node.Files {
		reserved = append(reserved, f.Ident)
	}

	folderScope := NewResolver(reserved...)
	for _, child := range node.Children {
		child.Ident = folderScope.Claim(Sanitize(child.RawName, TypeStyle))
		resolveNode(child)
	}
}
