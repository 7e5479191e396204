package emit

// The generated source is self-contained: besides the accessor tree it
// carries the two runtime support types and their binding state. The
// support code lives here as literal templates rather than files read from
// disk, so the generator has no runtime dependency on its own packaging
// layout.

// fileHeader is interpolated once with the configured package name.
const fileHeader = `// Code generated by rgen. DO NOT EDIT.

package %s

import (
	"fmt"
	"io/fs"
	"mime"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
)

`

// stateTemplate is interpolated once with the quoted resources directory.
const stateTemplate = `// rState holds the runtime binding between the generated accessors and the
// place the resources actually live. By default that is the resources
// directory captured at generation time, resolved against the working
// directory of the running process.
var rState = struct {
	mu   sync.Mutex
	dir  string
	fsys fs.FS
	temp map[string]string
}{dir: %s, temp: map[string]string{}}

// RUseDir binds all accessors to a resource directory on the OS filesystem.
func RUseDir(dir string) {
	rState.mu.Lock()
	defer rState.mu.Unlock()
	rState.dir = dir
	rState.fsys = nil
}

// RUse binds all accessors to an fs.FS, typically an embed.FS packaging the
// resources into the binary.
func RUse(fsys fs.FS) {
	rState.mu.Lock()
	defer rState.mu.Unlock()
	rState.fsys = fsys
}

func rSource() fs.FS {
	rState.mu.Lock()
	defer rState.mu.Unlock()
	if rState.fsys != nil {
		return rState.fsys
	}
	return os.DirFS(rState.dir)
}

// RCleanup removes the temporary files materialized by OSPath. Call it once
// before process exit.
func RCleanup() {
	rState.mu.Lock()
	defer rState.mu.Unlock()
	for _, p := range rState.temp {
		os.Remove(p)
	}
	rState.temp = map[string]string{}
}

`

// supportRFile is appended verbatim.
const supportRFile = `// RFile is a typed accessor for one bundled resource file. Resource files
// are read-only files shipped with the application and are never modified
// at runtime.
type RFile struct {
	resourcePath string
	fileName     string
}

// NewRFile creates an accessor for the resource at relPath. The path is
// relative to the resources root and uses "/" separators on every platform.
func NewRFile(relPath string) RFile {
	relPath = strings.TrimPrefix(relPath, "/")
	name := relPath
	if i := strings.LastIndex(relPath, "/"); i >= 0 {
		name = relPath[i+1:]
	}
	return RFile{resourcePath: relPath, fileName: name}
}

// Path returns the resource path relative to the resources root.
func (r RFile) Path() string { return r.resourcePath }

// PathWithSlash returns the resource path with a leading slash.
func (r RFile) PathWithSlash() string { return "/" + r.resourcePath }

// Name returns just the filename part of the resource.
func (r RFile) Name() string { return r.fileName }

// BaseName returns the filename without its final extension.
func (r RFile) BaseName() string {
	if i := strings.LastIndex(r.fileName, "."); i >= 0 {
		return r.fileName[:i]
	}
	return r.fileName
}

// Ext returns the extension without the dot, or "" when there is none.
func (r RFile) Ext() string {
	if i := strings.LastIndex(r.fileName, "."); i >= 0 {
		return r.fileName[i+1:]
	}
	return ""
}

// ParentPath returns the path of the folder containing this resource, ""
// for a resource directly under the root.
func (r RFile) ParentPath() string {
	if i := strings.LastIndex(r.resourcePath, "/"); i >= 0 {
		return r.resourcePath[:i]
	}
	return ""
}

// MimeType guesses the MIME type from the file extension, "" when unknown.
func (r RFile) MimeType() string {
	return mime.TypeByExtension(path.Ext(r.fileName))
}

// String returns the resource path.
func (r RFile) String() string { return r.resourcePath }

// Open opens the resource for reading. It fails with an error satisfying
// errors.Is(err, fs.ErrNotExist) when the bound source does not contain the
// resource at runtime.
func (r RFile) Open() (fs.File, error) {
	f, err := rSource().Open(r.resourcePath)
	if err != nil {
		return nil, fmt.Errorf("open resource %s: %w", r.resourcePath, err)
	}
	return f, nil
}

// ReadBytes reads the entire content of the resource.
func (r RFile) ReadBytes() ([]byte, error) {
	data, err := fs.ReadFile(rSource(), r.resourcePath)
	if err != nil {
		return nil, fmt.Errorf("read resource %s: %w", r.resourcePath, err)
	}
	return data, nil
}

// ReadString reads the entire content of the resource as a string.
func (r RFile) ReadString() (string, error) {
	data, err := r.ReadBytes()
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Exists reports whether the resource is present in the bound source.
func (r RFile) Exists() bool {
	_, err := fs.Stat(rSource(), r.resourcePath)
	return err == nil
}

// Size returns the resource size in bytes, or -1 when it does not exist.
func (r RFile) Size() int64 {
	info, err := fs.Stat(rSource(), r.resourcePath)
	if err != nil {
		return -1
	}
	return info.Size()
}

// OSPath returns a real filesystem path for the resource. When the bound
// source is a plain directory the returned path points directly into it.
// When the source is an fs.FS the resource is copied to a temporary file on
// first access; RCleanup removes the copies.
func (r RFile) OSPath() (string, error) {
	rState.mu.Lock()
	defer rState.mu.Unlock()

	if rState.fsys == nil {
		p := filepath.Join(rState.dir, filepath.FromSlash(r.resourcePath))
		if _, err := os.Stat(p); err != nil {
			return "", fmt.Errorf("resource not found: %s: %w", r.resourcePath, err)
		}
		return p, nil
	}

	if p, ok := rState.temp[r.resourcePath]; ok {
		return p, nil
	}

	data, err := fs.ReadFile(rState.fsys, r.resourcePath)
	if err != nil {
		return "", fmt.Errorf("read resource %s: %w", r.resourcePath, err)
	}
	tmp, err := os.CreateTemp("", "res-*-"+r.fileName)
	if err != nil {
		return "", fmt.Errorf("materialize resource %s: %w", r.resourcePath, err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return "", fmt.Errorf("materialize resource %s: %w", r.resourcePath, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return "", fmt.Errorf("materialize resource %s: %w", r.resourcePath, err)
	}
	rState.temp[r.resourcePath] = tmp.Name()
	return tmp.Name(), nil
}

`

// supportRFolder is appended verbatim.
const supportRFolder = `// RFolder carries the metadata of one resource folder. It is read-only and
// offers no file operations.
type RFolder struct {
	folderName string
	folderPath string
}

// NewRFolder creates a folder accessor from its name and its path relative
// to the resources root.
func NewRFolder(name, relPath string) RFolder {
	return RFolder{folderName: name, folderPath: relPath}
}

// Name returns the folder name.
func (r RFolder) Name() string { return r.folderName }

// Path returns the full folder path relative to the resources root.
func (r RFolder) Path() string { return r.folderPath }

// String returns the folder path.
func (r RFolder) String() string { return r.folderPath }
`
