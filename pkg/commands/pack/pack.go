// Package pack implements the pack command: rules directory in, binary
// package file out.
package pack

import (
	"os"
	"path/filepath"
	"time"

	"github.com/winclean/rulepack/pkg/assembler"
	"github.com/winclean/rulepack/pkg/codec"
	"github.com/winclean/rulepack/pkg/compress"
	"github.com/winclean/rulepack/pkg/discovery"
	"github.com/winclean/rulepack/pkg/errors"
	"github.com/winclean/rulepack/pkg/extract"
	"github.com/winclean/rulepack/pkg/logging"
	"github.com/winclean/rulepack/pkg/types"
)

// PackRulesOptions defines the options for the PackRules command.
type PackRulesOptions struct {
	// InputDir is the rules root (two levels: category dirs, rule files).
	InputDir string
	// OutputPath is the package file to write.
	OutputPath string
	// Compression is the algorithm to apply ("none" or "zstd").
	Compression string
	// Glob filters rule files inside category directories.
	Glob string
	// Clock overrides the assembly timestamp; nil means wall clock.
	Clock func() time.Time
}

// PackRules discovers, extracts, assembles, encodes and compresses a rules
// directory into a single package file. The output is written atomically: a
// failed pack never leaves a truncated file behind.
func PackRules(opts PackRulesOptions) (*types.PackResult, error) {
	log := logging.GetLogger("commands.pack")
	log.Debug().Str("input", opts.InputDir).Str("output", opts.OutputPath).Msg("Executing command")

	// Reject a bad algorithm before touching the filesystem.
	if !compress.IsSupported(opts.Compression) {
		return nil, errors.Newf(errors.ErrConfigCompression, "unsupported compression algorithm: %s", opts.Compression).
			WithDetail("algorithm", opts.Compression)
	}

	files, err := discovery.DiscoverRules(opts.InputDir, opts.Glob)
	if err != nil {
		return nil, err
	}

	rules := make([]types.SerializedRule, 0, len(files))
	packed := make([]string, 0, len(files))
	for _, file := range files {
		content, err := os.ReadFile(file.Path)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrFileRead, "cannot read rule document").
				WithDetail("path", file.Path)
		}
		rule, err := extract.Extract(content, file.Path)
		if err != nil {
			return nil, err
		}
		rules = append(rules, *rule)
		packed = append(packed, file.Path)
	}

	asm := assembler.New()
	if opts.Clock != nil {
		asm = assembler.NewWithClock(opts.Clock)
	}
	pkg := asm.Assemble(rules, opts.Compression)

	encoded := codec.Encode(pkg)
	compressed, err := compress.Compress(encoded, opts.Compression)
	if err != nil {
		return nil, err
	}

	if err := writeAtomic(opts.OutputPath, compressed); err != nil {
		return nil, err
	}

	log.Info().
		Int("ruleCount", len(rules)).
		Int("encodedSize", len(encoded)).
		Int("compressedSize", len(compressed)).
		Msg("Command finished")

	return &types.PackResult{
		OutputPath:     opts.OutputPath,
		RuleCount:      len(rules),
		Categories:     pkg.Header.Categories,
		EncodedSize:    len(encoded),
		CompressedSize: len(compressed),
		Compression:    opts.Compression,
		PackedFiles:    packed,
	}, nil
}

// writeAtomic writes data to path via a temp file and rename, creating the
// parent directory first.
func writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrap(err, errors.ErrDirCreate, "cannot create output directory").
			WithDetail("path", dir)
	}

	tmp, err := os.CreateTemp(dir, ".rulepack-*")
	if err != nil {
		return errors.Wrap(err, errors.ErrFileWrite, "cannot create temporary output file").
			WithDetail("dir", dir)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrFileWrite, "cannot write package").
			WithDetail("path", path)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrFileWrite, "cannot finalize package").
			WithDetail("path", path)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return errors.Wrap(err, errors.ErrFileWrite, "cannot move package into place").
			WithDetail("path", path)
	}
	return nil
}
