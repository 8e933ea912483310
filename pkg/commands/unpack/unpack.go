// Package unpack implements the unpack command: package file in, original
// rule documents out.
package unpack

import (
	"os"
	"path/filepath"

	"github.com/winclean/rulepack/pkg/codec"
	"github.com/winclean/rulepack/pkg/compress"
	"github.com/winclean/rulepack/pkg/errors"
	"github.com/winclean/rulepack/pkg/logging"
	"github.com/winclean/rulepack/pkg/types"
)

// UnpackRulesOptions defines the options for the UnpackRules command.
type UnpackRulesOptions struct {
	// InputPath is the package file to read.
	InputPath string
	// OutputDir receives <category>/<filename> per rule.
	OutputDir string
}

// UnpackRules reads a package file and re-materializes every rule document
// verbatim under <OutputDir>/<category>/<filename>. Existing files are
// overwritten.
func UnpackRules(opts UnpackRulesOptions) (*types.UnpackResult, error) {
	log := logging.GetLogger("commands.unpack")
	log.Debug().Str("input", opts.InputPath).Str("output", opts.OutputDir).Msg("Executing command")

	data, err := os.ReadFile(opts.InputPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileRead, "cannot read package file").
			WithDetail("path", opts.InputPath)
	}

	decompressed, err := compress.Decompress(data)
	if err != nil {
		return nil, err
	}

	pkg, err := codec.Decode(decompressed)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(opts.OutputDir, 0755); err != nil {
		return nil, errors.Wrap(err, errors.ErrDirCreate, "cannot create output directory").
			WithDetail("path", opts.OutputDir)
	}

	written := make([]string, 0, len(pkg.Rules))
	for _, rule := range pkg.Rules {
		categoryDir := filepath.Join(opts.OutputDir, rule.Metadata.Category)
		if err := os.MkdirAll(categoryDir, 0755); err != nil {
			return nil, errors.Wrap(err, errors.ErrDirCreate, "cannot create category directory").
				WithDetail("path", categoryDir)
		}

		outPath := filepath.Join(categoryDir, rule.Metadata.Filename)
		if err := os.WriteFile(outPath, []byte(rule.YamlContent), 0644); err != nil {
			return nil, errors.Wrap(err, errors.ErrFileWrite, "cannot write rule document").
				WithDetail("path", outPath)
		}
		written = append(written, outPath)
		log.Trace().Str("path", outPath).Msg("Extracted rule")
	}

	log.Info().Int("ruleCount", len(pkg.Rules)).Msg("Command finished")

	return &types.UnpackResult{
		OutputDir:    opts.OutputDir,
		RuleCount:    len(pkg.Rules),
		WrittenFiles: written,
	}, nil
}
