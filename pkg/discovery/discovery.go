// Package discovery finds rule documents under a rules root.
//
// The layout is exactly two levels: category directories directly under the
// root, rule files directly inside each category. Deeper nesting is not
// discovered. Traversal order is lexicographic (os.ReadDir order), so the
// same tree always yields the same file sequence.
package discovery

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/winclean/rulepack/pkg/errors"
	"github.com/winclean/rulepack/pkg/logging"
)

// RuleFile is one discovered rule document.
type RuleFile struct {
	Path     string // absolute or root-relative path to the file
	Category string // immediate parent directory name
	Filename string // base name including extension
}

// DiscoverRules walks <root>/<category>/<glob> and returns the matching
// files in traversal order. Hidden directories are skipped. An empty glob
// matches every regular file.
func DiscoverRules(root, glob string) ([]RuleFile, error) {
	logger := logging.GetLogger("discovery")
	logger.Trace().Str("root", root).Str("glob", glob).Msg("Discovering rule files")

	info, err := os.Stat(root)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(err, errors.ErrDiscoveryRoot, "rules root does not exist").
				WithDetail("path", root)
		}
		return nil, errors.Wrap(err, errors.ErrFileAccess, "cannot access rules root").
			WithDetail("path", root)
	}
	if !info.IsDir() {
		return nil, errors.New(errors.ErrDiscoveryRoot, "rules root is not a directory").
			WithDetail("path", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDiscoveryScan, "cannot read rules root").
			WithDetail("path", root)
	}

	var files []RuleFile
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			logger.Trace().Str("name", name).Msg("Skipping hidden directory")
			continue
		}

		categoryFiles, err := scanCategory(filepath.Join(root, name), name, glob)
		if err != nil {
			return nil, err
		}
		files = append(files, categoryFiles...)
	}

	logger.Info().Int("count", len(files)).Msg("Found rule files")
	return files, nil
}

// scanCategory lists the rule files directly inside one category directory.
func scanCategory(dir, category, glob string) ([]RuleFile, error) {
	logger := logging.GetLogger("discovery")

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDiscoveryScan, "cannot read category directory").
			WithDetail("path", dir)
	}

	var files []RuleFile
	for _, entry := range entries {
		if entry.IsDir() {
			// Nested directories are not part of the layout.
			continue
		}
		name := entry.Name()
		if glob != "" {
			matched, err := filepath.Match(glob, name)
			if err != nil {
				return nil, errors.Wrap(err, errors.ErrDiscoveryScan, "invalid rule file glob").
					WithDetail("glob", glob)
			}
			if !matched {
				continue
			}
		}

		files = append(files, RuleFile{
			Path:     filepath.Join(dir, name),
			Category: category,
			Filename: name,
		})
		logger.Trace().Str("path", filepath.Join(dir, name)).Str("category", category).Msg("Found rule file")
	}

	return files, nil
}
