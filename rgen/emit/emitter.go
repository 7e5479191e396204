// Package emit renders a resolved resource tree as a single self-contained
// Go source unit.
package emit

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/enosistudio/rgen/rgen/naming"
	"github.com/enosistudio/rgen/rgen/tree"

	"github.com/ZanzyTHEbar/assert-lib"
)

// Emitter renders resource trees. The emitter performs no validation that
// the result parses; a malformed emission is a programming defect guarded
// by the assert handler, not a recoverable runtime condition.
type Emitter struct {
	assert *assert.AssertHandler
}

func NewEmitter(assertHandler *assert.AssertHandler) *Emitter {
	return &Emitter{assert: assertHandler}
}

// Emit produces the generated source unit for a resolved tree: the package
// clause (packageName copied verbatim), the root aggregate R, one nested
// aggregate type per folder, and the two runtime support types appended
// once at the end. resourcesDir becomes the default runtime binding of the
// emitted accessors.
func (e *Emitter) Emit(ctx context.Context, root *tree.ResourceNode, packageName, resourcesDir string) string {
	var b strings.Builder
	fmt.Fprintf(&b, fileHeader, packageName)

	types := typeNamesFor(root)

	b.WriteString("// R is the root of the generated resource accessor tree. Its fields\n")
	b.WriteString("// mirror the folder and file layout of the resources directory.\n")
	b.WriteString("var R = ")
	e.writeLiteral(ctx, &b, root, types, 0)
	b.WriteString("\n\n")

	e.writeTypeDecl(&b, root, types)

	fmt.Fprintf(&b, stateTemplate, strconv.Quote(resourcesDir))
	b.WriteString(supportRFile)
	b.WriteString(supportRFolder)

	return b.String()
}

// typeNamesFor assigns a package-unique struct type name to every folder.
// Sibling identifiers are only unique within their own scope, so each name
// is prefixed with its full parent chain, and one package-level resolver
// guards the rare cases where two chains still meet. The scope starts with
// every package-level name the support templates declare that a chained
// folder name could reproduce: rState and rSource are reachable from
// folders named "state" or "source".
func typeNamesFor(root *tree.ResourceNode) map[*tree.ResourceNode]string {
	names := make(map[*tree.ResourceNode]string)
	scope := naming.NewResolver("R", "RFile", "RFolder", "rState", "rSource")
	names[root] = scope.Claim("rRoot")

	var assign func(node *tree.ResourceNode, prefix string)
	assign = func(node *tree.ResourceNode, prefix string) {
		for _, child := range node.Children {
			name := scope.Claim(prefix + child.Ident)
			names[child] = name
			assign(child, name)
		}
	}
	assign(root, "r")

	return names
}

// writeLiteral writes the composite literal initializing the aggregate for
// node: one RFolder entry carrying the folder metadata (omitted at the
// root), one RFile entry per file, then one nested literal per subfolder.
func (e *Emitter) writeLiteral(ctx context.Context, b *strings.Builder, node *tree.ResourceNode, types map[*tree.ResourceNode]string, depth int) {
	indent := strings.Repeat("\t", depth)
	fmt.Fprintf(b, "%s{\n", types[node])

	if node.RawName != "" {
		fmt.Fprintf(b, "%s\tRFolder: NewRFolder(%q, %q),\n", indent, node.RawName, node.RelPath)
	}
	for _, f := range node.Files {
		e.assert.Assert(ctx, f.Ident != "", "file identifier must be resolved before emission")
		fmt.Fprintf(b, "%s\t%s: NewRFile(%q),\n", indent, f.Ident, f.RelPath)
	}
	for _, child := range node.Children {
		e.assert.Assert(ctx, child.Ident != "", "folder identifier must be resolved before emission")
		fmt.Fprintf(b, "%s\t%s: ", indent, child.Ident)
		e.writeLiteral(ctx, b, child, types, depth+1)
	}

	if depth == 0 {
		fmt.Fprintf(b, "%s}", indent)
	} else {
		fmt.Fprintf(b, "%s},\n", indent)
	}
}

// writeTypeDecl writes the struct declaration for node, then recurses into
// its subfolders. Folder aggregates embed RFolder so the folder metadata is
// reachable directly on the field, while the root aggregate carries none.
func (e *Emitter) writeTypeDecl(b *strings.Builder, node *tree.ResourceNode, types map[*tree.ResourceNode]string) {
	if node.RawName == "" {
		fmt.Fprintf(b, "type %s struct {\n", types[node])
	} else {
		fmt.Fprintf(b, "// %s mirrors the resource folder %q.\ntype %s struct {\n\tRFolder\n", types[node], node.RelPath, types[node])
		if len(node.Files)+len(node.Children) > 0 {
			b.WriteString("\n")
		}
	}
	for _, f := range node.Files {
		fmt.Fprintf(b, "\t%s RFile\n", f.Ident)
	}
	for _, child := range node.Children {
		fmt.Fprintf(b, "\t%s %s\n", child.Ident, types[child])
	}
	b.WriteString("}\n\n")

	for _, child := range node.Children {
		e.writeTypeDecl(b, child, types)
	}
}
