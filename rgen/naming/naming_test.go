package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/enosistudio/rgen/rgen/tree"
)

func TestSanitize(t *testing.T) {
	cases := []struct {
		raw   string
		style Style
		want  string
	}{
		{"database.properties", FieldStyle, "databaseProperties"},
		{"app-settings.yml", FieldStyle, "appSettingsYml"},
		{"email.html", FieldStyle, "emailHtml"},
		{"invoice.pdf", FieldStyle, "invoicePdf"},
		{"logo.png", FieldStyle, "logoPng"},
		{"README.md", FieldStyle, "readmeMd"},
		{"config", TypeStyle, "Config"},
		{"templates", TypeStyle, "Templates"},
		{"my folder (old)", TypeStyle, "MyFolderOld"},
		{"2fa.png", FieldStyle, "_2faPng"},
		{"42", TypeStyle, "_42"},
		{"a.b", FieldStyle, "aB"},
		{"a-b", FieldStyle, "aB"},
		{"a_b", FieldStyle, "aB"},
		{"type", FieldStyle, "_type"},
		{"range", FieldStyle, "_range"},
		{"func", FieldStyle, "_func"},
		{"type", TypeStyle, "Type"},
		{"type.css", FieldStyle, "typeCss"},
		{"...", FieldStyle, "unnamed"},
		{"---", TypeStyle, "Unnamed"},
		{"", FieldStyle, "unnamed"},
		{"héllo", FieldStyle, "hLlo"},
	}

	for _, tc := range cases {
		t.Run(tc.raw, func(t *testing.T) {
			assert.Equal(t, tc.want, Sanitize(tc.raw, tc.style))
		})
	}
}

func TestSanitize_Deterministic(t *testing.T) {
	names := []string{"database.properties", "2fa.png", "...", "my folder (old)"}
	for _, name := range names {
		assert.Equal(t, Sanitize(name, FieldStyle), Sanitize(name, FieldStyle))
		assert.Equal(t, Sanitize(name, TypeStyle), Sanitize(name, TypeStyle))
	}
}

func TestResolver(t *testing.T) {
	t.Run("colliding siblings get smallest unused suffix in order", func(t *testing.T) {
		r := NewResolver()
		assert.Equal(t, "aB", r.Claim(Sanitize("a.b", FieldStyle)))
		assert.Equal(t, "aB2", r.Claim(Sanitize("a-b", FieldStyle)))
		assert.Equal(t, "aB3", r.Claim(Sanitize("a_b", FieldStyle)))
	})

	t.Run("distinct candidates pass through unchanged", func(t *testing.T) {
		r := NewResolver()
		assert.Equal(t, "logoPng", r.Claim("logoPng"))
		assert.Equal(t, "emailHtml", r.Claim("emailHtml"))
	})

	t.Run("reserved identifiers are never handed out", func(t *testing.T) {
		r := NewResolver("RFolder")
		assert.Equal(t, "RFolder2", r.Claim("RFolder"))
	})

	t.Run("suffixed identifier already taken", func(t *testing.T) {
		r := NewResolver()
		assert.Equal(t, "aB2", r.Claim("aB2"))
		assert.Equal(t, "aB", r.Claim("aB"))
		assert.Equal(t, "aB3", r.Claim("aB"))
	})
}

func TestResolveTree(t *testing.T) {
	t.Run("file and folder scopes are resolved independently per level", func(t *testing.T) {
		root := &tree.ResourceNode{
			Files: []*tree.ResourceFile{
				{RawName: "a.b", RelPath: "a.b"},
				{RawName: "a-b", RelPath: "a-b"},
			},
			Children: []*tree.ResourceNode{
				{RawName: "a.b", RelPath: "a.b.d"},
				{
					RawName: "sub",
					RelPath: "sub",
					Files: []*tree.ResourceFile{
						{RawName: "a_b", RelPath: "sub/a_b"},
					},
				},
			},
		}

		ResolveTree(root)

		assert.Equal(t, "aB", root.Files[0].Ident)
		assert.Equal(t, "aB2", root.Files[1].Ident)
		// Folder scope is independent of the file scope casing-wise.
		assert.Equal(t, "AB", root.Children[0].Ident)
		assert.Equal(t, "Sub", root.Children[1].Ident)
		// A fresh scope per level: no suffix carried into the subfolder.
		assert.Equal(t, "aB", root.Children[1].Files[0].Ident)
	})

	t.Run("folder identifiers avoid the support type names", func(t *testing.T) {
		root := &tree.ResourceNode{
			Children: []*tree.ResourceNode{
				{RawName: "r-folder", RelPath: "r-folder"},
				{RawName: "r.file", RelPath: "r.file"},
			},
		}

		ResolveTree(root)

		assert.Equal(t, "RFolder2", root.Children[0].Ident)
		assert.Equal(t, "RFile2", root.Children[1].Ident)
	})

	t.Run("folder identifiers avoid file identifiers at the same level", func(t *testing.T) {
		root := &tree.ResourceNode{
			Files: []*tree.ResourceFile{
				{RawName: "2-fa", RelPath: "2-fa"},
			},
			Children: []*tree.ResourceNode{
				{RawName: "2.fa", RelPath: "2.fa"},
			},
		}

		ResolveTree(root)

		// Both sanitize to "_2Fa"; the folder yields to the file because
		// they end up in the same struct namespace.
		assert.Equal(t, "_2Fa", root.Files[0].Ident)
		assert.Equal(t, "_2Fa2", root.Children[0].Ident)
	})
}
