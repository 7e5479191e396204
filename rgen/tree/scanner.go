package tree

import (
	"log/slog"
	"os"
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// Scanner builds a ResourceNode tree mirroring a resource directory on disk.
type Scanner struct {
	logger  *slog.Logger
	matcher *ignore.GitIgnore
}

// ScannerOption allows for customization of Scanner
type ScannerOption func(*Scanner)

// WithLogger sets a custom logger
func WithLogger(logger *slog.Logger) ScannerOption {
	return func(s *Scanner) {
		s.logger = logger
	}
}

// WithIgnorePatterns installs gitignore-style patterns. Entries whose
// root-relative path matches a pattern are skipped during the scan.
func WithIgnorePatterns(patterns ...string) ScannerOption {
	return func(s *Scanner) {
		if len(patterns) == 0 {
			return
		}
		s.matcher = ignore.CompileIgnoreLines(patterns...)
	}
}

func NewScanner(opts ...ScannerOption) *Scanner {
	s := &Scanner{logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan walks rootDir depth-first and returns the resource tree. A missing
// or non-directory root yields an empty root node rather than an error;
// generating an empty accessor tree is a valid outcome that must not abort
// the build. Unreadable entries are skipped with a warning and the scan
// continues with their siblings.
func (s *Scanner) Scan(rootDir string) *ResourceNode {
	root := &ResourceNode{RawName: "", RelPath: ""}

	info, err := os.Stat(rootDir)
	if err != nil || !info.IsDir() {
		s.logger.Warn("resources root missing or not a directory, tree is empty",
			"root", rootDir)
		return root
	}

	s.scanDir(rootDir, root)
	return root
}

func (s *Scanner) scanDir(dir string, node *ResourceNode) {
	// os.ReadDir returns entries sorted by name, which keeps the generated
	// output stable across runs and filesystems.
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.logger.Warn("skipping unreadable directory",
			"dir", dir,
			"error", err)
		return
	}

	for _, entry := range entries {
		relPath := entry.Name()
		if node.RelPath != "" {
			relPath = node.RelPath + "/" + entry.Name()
		}

		if s.matcher != nil && s.matcher.MatchesPath(relPath) {
			s.logger.Debug("ignoring entry", "path", relPath)
			continue
		}

		switch {
		case entry.Type().IsRegular():
			node.Files = append(node.Files, &ResourceFile{
				RawName: entry.Name(),
				RelPath: relPath,
			})
		case entry.IsDir():
			child := &ResourceNode{
				RawName: entry.Name(),
				RelPath: relPath,
			}
			node.Children = append(node.Children, child)
			s.scanDir(filepath.Join(dir, entry.Name()), child)
		default:
			// Symlinks and special files are not resources.
			s.logger.Warn("skipping special entry", "path", relPath)
		}
	}
}
