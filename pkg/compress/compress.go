// Package compress wraps the codec's byte sequence in optional stream
// compression.
//
// Reading is self-detecting: Decompress probes the input for a zstd frame
// and falls back to returning the bytes unchanged when the probe fails. The
// package header's compression tag is advisory only and is never consulted.
package compress

import (
	"github.com/klauspost/compress/zstd"
	"github.com/winclean/rulepack/pkg/errors"
	"github.com/winclean/rulepack/pkg/types"
)

// Compress applies the named algorithm to data. Supported algorithms are
// "none" and "zstd"; anything else is a configuration error naming the
// offending algorithm.
func Compress(data []byte, algorithm string) ([]byte, error) {
	switch algorithm {
	case types.CompressionNone:
		return data, nil
	case types.CompressionZstd:
		enc, err := zstd.NewWriter(nil)
		if err != nil {
			return nil, errors.Wrap(err, errors.ErrCompress, "cannot initialize zstd encoder")
		}
		out := enc.EncodeAll(data, nil)
		if err := enc.Close(); err != nil {
			return nil, errors.Wrap(err, errors.ErrCompress, "cannot finalize zstd stream")
		}
		return out, nil
	default:
		return nil, errors.Newf(errors.ErrConfigCompression, "unsupported compression algorithm: %s", algorithm).
			WithDetail("algorithm", algorithm)
	}
}

// Decompress recovers the codec bytes from a package file. The input is
// first treated as a zstd stream; if it does not decode as one, it is
// returned unchanged on the assumption that it is uncompressed codec
// output.
func Decompress(data []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrDecompress, "cannot initialize zstd decoder")
	}
	defer dec.Close()

	out, err := dec.DecodeAll(data, nil)
	if err != nil {
		// Not a zstd stream; assume uncompressed.
		return data, nil
	}
	return out, nil
}

// IsSupported reports whether algorithm is a known compression tag.
func IsSupported(algorithm string) bool {
	return algorithm == types.CompressionNone || algorithm == types.CompressionZstd
}
