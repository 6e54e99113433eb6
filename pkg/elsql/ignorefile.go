package elsql

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// IgnoreFile is the parsed form of a .elsqlignore file: a set of
// gitignore-style glob patterns naming `.elsql` resources `elsql
// validate` should skip (generated or vendored bundles, typically).
type IgnoreFile struct {
	patterns []string
}

// LoadIgnoreFile searches the current directory and its parents for a
// .elsqlignore file. A missing file yields an empty, always-false
// IgnoreFile rather than an error.
func LoadIgnoreFile() (*IgnoreFile, error) {
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}

	for {
		path := filepath.Join(dir, ".elsqlignore")
		if content, err := os.ReadFile(path); err == nil {
			return &IgnoreFile{patterns: parseIgnorePatterns(string(content))}, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return &IgnoreFile{}, nil
}

func parseIgnorePatterns(content string) []string {
	var patterns []string
	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, line)
	}
	return patterns
}

// ShouldIgnore reports whether filePath matches any loaded pattern.
func (ig *IgnoreFile) ShouldIgnore(filePath string) bool {
	if len(ig.patterns) == 0 {
		return false
	}

	relPath, err := filepath.Rel(".", filePath)
	if err != nil {
		relPath = filePath
	}
	relPath = filepath.ToSlash(relPath)

	for _, pattern := range ig.patterns {
		if ig.matchPattern(relPath, pattern) {
			return true
		}
	}
	return false
}

func (ig *IgnoreFile) matchPattern(path, pattern string) bool {
	if strings.HasSuffix(pattern, "/") {
		trimmed := strings.TrimSuffix(pattern, "/")
		if strings.HasPrefix(path, trimmed+"/") || path == trimmed {
			return true
		}
	}

	if matched, err := filepath.Match(pattern, filepath.Base(path)); err == nil && matched {
		return true
	}
	if matched, err := filepath.Match(pattern, path); err == nil && matched {
		return true
	}
	if strings.Contains(pattern, "**") {
		return ig.matchGlobstar(path, pattern)
	}
	return false
}

func (ig *IgnoreFile) matchGlobstar(path, pattern string) bool {
	parts := strings.SplitN(pattern, "**", 2)
	if len(parts) != 2 {
		return false
	}

	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")

	if prefix != "" && !strings.HasPrefix(path, prefix+"/") && path != prefix {
		return false
	}
	if suffix != "" && !strings.HasSuffix(path, "/"+suffix) && path != suffix {
		return false
	}
	return true
}
