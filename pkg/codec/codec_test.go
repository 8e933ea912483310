// Test Type: Unit Test
// Description: Tests for the codec package - binary encode/decode round-trips

package codec_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/winclean/rulepack/pkg/codec"
	"github.com/winclean/rulepack/pkg/errors"
	"github.com/winclean/rulepack/pkg/types"
)

func strptr(s string) *string { return &s }

func samplePackage() *types.RulesPackage {
	return &types.RulesPackage{
		Header: types.PackageHeader{
			Version:     types.FormatVersion,
			CreatedAt:   1700000000,
			RuleCount:   2,
			Compression: "zstd",
			Categories:  []string{"browsers", "privacy"},
		},
		Rules: []types.SerializedRule{
			{
				Metadata: types.RuleMetadata{
					ID:          "clear-chrome-cache",
					Name:        "Clear Chrome Cache",
					Risk:        "medium",
					SystemInfo:  []string{"windows10", "windows11"},
					Update:      "2024-01-15",
					Author:      strptr("winclean"),
					Description: strptr("Removes Chrome's disk cache"),
					Category:    "browsers",
					Filename:    "clear-chrome-cache.yaml",
				},
				YamlContent: "id: clear-chrome-cache\nname: Clear Chrome Cache\n",
				Paths:       []string{"%LOCALAPPDATA%/Google/Chrome/User Data/Default/Cache"},
				RegistryEntries: []types.RegistryEntry{
					{
						Path:      `HKCU\Software\Google\Chrome`,
						Key:       "CacheSize",
						Value:     strptr("dword"),
						ValueData: strptr("0"),
						Action:    "delete_value",
					},
				},
			},
			{
				Metadata: types.RuleMetadata{
					ID:       "clear-temp",
					Risk:     types.DefaultRisk,
					Category: "privacy",
					Filename: "clear-temp.yaml",
				},
				YamlContent: "id: clear-temp\n",
				RegistryEntries: []types.RegistryEntry{
					{
						Path:   `HKLM\Software\Temp`,
						Key:    types.DefaultRegistryKey,
						Action: types.DefaultRegistryAction,
					},
				},
			},
		},
	}
}

func TestRoundTrip(t *testing.T) {
	pkg := samplePackage()

	encoded := codec.Encode(pkg)
	decoded, err := codec.Decode(encoded)
	require.NoError(t, err)

	assert.Equal(t, pkg, decoded)
}

func TestRoundTripEmptyPackage(t *testing.T) {
	pkg := &types.RulesPackage{
		Header: types.PackageHeader{
			Version:     types.FormatVersion,
			CreatedAt:   1,
			Compression: "none",
		},
	}

	decoded, err := codec.Decode(codec.Encode(pkg))
	require.NoError(t, err)
	assert.Equal(t, pkg, decoded)
}

func TestEncodeDeterministic(t *testing.T) {
	pkg := samplePackage()
	assert.Equal(t, codec.Encode(pkg), codec.Encode(pkg))
}

func TestDecodeTruncated(t *testing.T) {
	encoded := codec.Encode(samplePackage())

	// Any prefix of a valid encoding must fail cleanly, never panic.
	for _, n := range []int{0, 1, 3, 4, 11, 20, len(encoded) / 2, len(encoded) - 1} {
		_, err := codec.Decode(encoded[:n])
		require.Error(t, err, "prefix of %d bytes", n)
		code := errors.GetErrorCode(err)
		assert.Contains(t, []errors.ErrorCode{errors.ErrCodecTruncated, errors.ErrCodecDecode}, code)
	}
}

func TestDecodeTrailingBytes(t *testing.T) {
	encoded := codec.Encode(samplePackage())
	_, err := codec.Decode(append(encoded, 0xFF))
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCodecDecode))
}

func TestDecodeCorruptedLengthPrefix(t *testing.T) {
	encoded := codec.Encode(samplePackage())

	// Blow up the compression-string length prefix (first string, after
	// version + created_at + rule_count).
	corrupt := append([]byte(nil), encoded...)
	for i := 20; i < 28; i++ {
		corrupt[i] = 0xFF
	}

	_, err := codec.Decode(corrupt)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCodecDecode))
}

func TestDecodeInvalidOptionalTag(t *testing.T) {
	pkg := samplePackage()
	encoded := codec.Encode(pkg)

	// Flip every byte one at a time; decode must never panic regardless of
	// where the corruption lands.
	for i := range encoded {
		corrupt := append([]byte(nil), encoded...)
		corrupt[i] ^= 0xA5
		_, _ = codec.Decode(corrupt)
	}
}

func TestDecodeGarbage(t *testing.T) {
	_, err := codec.Decode([]byte("this is not a rules package at all"))
	require.Error(t, err)
}

func TestDecodeHugeRuleCount(t *testing.T) {
	pkg := &types.RulesPackage{
		Header: types.PackageHeader{Version: 1, Compression: "none"},
	}
	encoded := codec.Encode(pkg)

	// Overwrite the rule-sequence count (the final 8 bytes of an empty
	// package) with an absurd value; decode must reject it before
	// allocating.
	corrupt := append([]byte(nil), encoded...)
	for i := len(corrupt) - 8; i < len(corrupt); i++ {
		corrupt[i] = 0xFF
	}

	_, err := codec.Decode(corrupt)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrCodecDecode))
}
