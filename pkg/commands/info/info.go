// Package info implements the info command: a read-only package summary.
package info

import (
	"os"

	"github.com/winclean/rulepack/pkg/codec"
	"github.com/winclean/rulepack/pkg/compress"
	"github.com/winclean/rulepack/pkg/errors"
	"github.com/winclean/rulepack/pkg/logging"
	"github.com/winclean/rulepack/pkg/types"
)

// ShowInfoOptions defines the options for the ShowInfo command.
type ShowInfoOptions struct {
	// InputPath is the package file to inspect.
	InputPath string
}

// ShowInfo reads a package file and returns its header and per-rule
// summary. It performs no filesystem writes.
func ShowInfo(opts ShowInfoOptions) (*types.InfoResult, error) {
	log := logging.GetLogger("commands.info")
	log.Debug().Str("input", opts.InputPath).Msg("Executing command")

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

	rules := make([]types.InfoRule, 0, len(pkg.Rules))
	for _, rule := range pkg.Rules {
		rules = append(rules, types.InfoRule{
			ID:   rule.Metadata.ID,
			Name: rule.Metadata.Name,
			Risk: rule.Metadata.Risk,
		})
	}

	log.Info().Int("ruleCount", len(rules)).Msg("Command finished")

	return &types.InfoResult{
		Header:    pkg.Header,
		FileSize:  len(data),
		Rules:     rules,
		InputPath: opts.InputPath,
	}, nil
}
