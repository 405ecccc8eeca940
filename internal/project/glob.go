// Package project selects the stylesheet files a build run operates on,
// expanding include globs from minify.properties and filtering excludes.
package project

import (
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Expand resolves include patterns relative to baseDir and drops paths
// matching any exclude pattern. Patterns support * and ? via
// filepath.Match plus ** for recursive descent. Returned paths are
// relative to baseDir, deduplicated, sorted, files only.
func Expand(baseDir string, includes, excludes []string) ([]string, error) {
	seen := make(map[string]bool)

	for _, pattern := range includes {
		matches, err := expandPattern(baseDir, pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if !IsExcluded(m, excludes) {
				seen[m] = true
			}
		}
	}

	results := make([]string, 0, len(seen))
	for path := range seen {
		results = append(results, path)
	}
	sort.Strings(results)
	return results, nil
}

func expandPattern(baseDir, pattern string) ([]string, error) {
	if strings.Contains(pattern, "**") {
		return expandRecursive(baseDir, pattern)
	}

	if !hasGlobChars(pattern) {
		// literal path, keep it if it names a file
		info, err := os.Stat(filepath.Join(baseDir, pattern))
		if err != nil || info.IsDir() {
			return walkDir(baseDir, pattern, info, err)
		}
		return []string{pattern}, nil
	}

	matches, err := filepath.Glob(filepath.Join(baseDir, pattern))
	if err != nil {
		return nil, err
	}
	var results []string
	for _, m := range matches {
		info, err := os.Stat(m)
		if err != nil || info.IsDir() {
			continue
		}
		rel, err := filepath.Rel(baseDir, m)
		if err != nil {
			continue
		}
		results = append(results, rel)
	}
	return results, nil
}

// walkDir collects every regular file under a literal directory pattern.
// A stat failure means no matches rather than an error, the way a glob
// with no hits behaves.
func walkDir(baseDir, pattern string, info os.FileInfo, statErr error) ([]string, error) {
	if statErr != nil || !info.IsDir() {
		return nil, nil
	}
	var results []string
	root := filepath.Join(baseDir, pattern)
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if rel, err := filepath.Rel(baseDir, path); err == nil {
			results = append(results, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// expandRecursive handles patterns containing **, e.g. css/**/*.css.
func expandRecursive(baseDir, pattern string) ([]string, error) {
	prefix, suffix, _ := strings.Cut(pattern, "**")
	prefix = strings.TrimSuffix(prefix, "/")
	suffix = strings.TrimPrefix(suffix, "/")

	start := baseDir
	if prefix != "" {
		start = filepath.Join(baseDir, prefix)
	}
	if _, err := os.Stat(start); err != nil {
		return nil, nil
	}

	var results []string
	err := filepath.WalkDir(start, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || strings.HasPrefix(d.Name(), ".") {
			return nil
		}
		if suffix != "" {
			matched, _ := filepath.Match(suffix, d.Name())
			if !matched {
				relFromStart, _ := filepath.Rel(start, path)
				matched, _ = filepath.Match(suffix, relFromStart)
			}
			if !matched {
				return nil
			}
		}
		if rel, err := filepath.Rel(baseDir, path); err == nil {
			results = append(results, rel)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return results, nil
}

// IsExcluded reports whether path matches any of the exclude patterns
func IsExcluded(path string, excludes []string) bool {
	for _, pattern := range excludes {
		if matchPattern(path, pattern) {
			return true
		}
	}
	return false
}

func matchPattern(path, pattern string) bool {
	if rest, found := strings.CutPrefix(pattern, "**/"); found {
		if ok, _ := filepath.Match(rest, filepath.Base(path)); ok {
			return true
		}
		if ok, _ := filepath.Match(rest, path); ok {
			return true
		}
		return false
	}
	if ok, _ := filepath.Match(pattern, path); ok {
		return true
	}
	return path == pattern
}

func hasGlobChars(s string) bool {
	return strings.ContainsAny(s, "*?[")
}
