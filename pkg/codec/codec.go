// Package codec implements the deterministic binary serialization of rules
// packages.
//
// The layout is schema-driven and fixed: integers are little-endian with
// fixed widths (u32 for the format version, u64 for counts, timestamps and
// length prefixes), strings and sequences carry a u64 length prefix, and
// optional fields a single present/absent tag byte. Field order follows the
// struct declarations in pkg/types exactly, so encode and decode are mutual
// inverses by construction.
//
// Decoding is defensive: every read is bounds-checked, length prefixes are
// validated against the remaining input before any allocation, and trailing
// bytes after the last rule are rejected. Malformed input yields a
// CODEC_DECODE or CODEC_TRUNCATED error, never a panic.
package codec

import (
	"bytes"
	"encoding/binary"

	"github.com/winclean/rulepack/pkg/errors"
	"github.com/winclean/rulepack/pkg/types"
)

// Encode serializes a rules package to its canonical byte sequence.
func Encode(pkg *types.RulesPackage) []byte {
	var buf bytes.Buffer

	writeU32(&buf, pkg.Header.Version)
	writeU64(&buf, pkg.Header.CreatedAt)
	writeU64(&buf, pkg.Header.RuleCount)
	writeString(&buf, pkg.Header.Compression)
	writeStringSlice(&buf, pkg.Header.Categories)

	writeU64(&buf, uint64(len(pkg.Rules)))
	for _, rule := range pkg.Rules {
		encodeRule(&buf, rule)
	}

	return buf.Bytes()
}

func encodeRule(buf *bytes.Buffer, rule types.SerializedRule) {
	m := rule.Metadata
	writeString(buf, m.ID)
	writeString(buf, m.Name)
	writeString(buf, m.Risk)
	writeStringSlice(buf, m.SystemInfo)
	writeString(buf, m.Update)
	writeOptString(buf, m.Author)
	writeOptString(buf, m.Description)
	writeString(buf, m.Category)
	writeString(buf, m.Filename)

	writeString(buf, rule.YamlContent)
	writeStringSlice(buf, rule.Paths)

	writeU64(buf, uint64(len(rule.RegistryEntries)))
	for _, entry := range rule.RegistryEntries {
		writeString(buf, entry.Path)
		writeString(buf, entry.Key)
		writeOptString(buf, entry.Value)
		writeOptString(buf, entry.ValueData)
		writeString(buf, entry.Action)
	}
}

// Decode parses a byte sequence produced by Encode back into a package.
func Decode(data []byte) (*types.RulesPackage, error) {
	r := &reader{data: data}

	var pkg types.RulesPackage
	var err error

	if pkg.Header.Version, err = r.u32(); err != nil {
		return nil, err
	}
	if pkg.Header.CreatedAt, err = r.u64(); err != nil {
		return nil, err
	}
	if pkg.Header.RuleCount, err = r.u64(); err != nil {
		return nil, err
	}
	if pkg.Header.Compression, err = r.str(); err != nil {
		return nil, err
	}
	if pkg.Header.Categories, err = r.strSlice(); err != nil {
		return nil, err
	}

	count, err := r.u64()
	if err != nil {
		return nil, err
	}
	// Every rule occupies at least one byte per field prefix; a count that
	// exceeds the remaining input is a corrupted prefix, not a real package.
	if count > uint64(r.remaining()) {
		return nil, errors.Newf(errors.ErrCodecDecode, "rule count %d exceeds input size", count)
	}

	if count > 0 {
		rules := make([]types.SerializedRule, 0, count)
		for i := uint64(0); i < count; i++ {
			rule, err := decodeRule(r)
			if err != nil {
				return nil, err
			}
			rules = append(rules, rule)
		}
		pkg.Rules = rules
	}

	if r.remaining() != 0 {
		return nil, errors.Newf(errors.ErrCodecDecode, "%d trailing bytes after package", r.remaining())
	}

	return &pkg, nil
}

func decodeRule(r *reader) (types.SerializedRule, error) {
	var rule types.SerializedRule
	var err error

	m := &rule.Metadata
	if m.ID, err = r.str(); err != nil {
		return rule, err
	}
	if m.Name, err = r.str(); err != nil {
		return rule, err
	}
	if m.Risk, err = r.str(); err != nil {
		return rule, err
	}
	if m.SystemInfo, err = r.strSlice(); err != nil {
		return rule, err
	}
	if m.Update, err = r.str(); err != nil {
		return rule, err
	}
	if m.Author, err = r.optStr(); err != nil {
		return rule, err
	}
	if m.Description, err = r.optStr(); err != nil {
		return rule, err
	}
	if m.Category, err = r.str(); err != nil {
		return rule, err
	}
	if m.Filename, err = r.str(); err != nil {
		return rule, err
	}

	if rule.YamlContent, err = r.str(); err != nil {
		return rule, err
	}
	if rule.Paths, err = r.strSlice(); err != nil {
		return rule, err
	}

	count, err := r.u64()
	if err != nil {
		return rule, err
	}
	if count > uint64(r.remaining()) {
		return rule, errors.Newf(errors.ErrCodecDecode, "registry entry count %d exceeds input size", count)
	}
	entries := make([]types.RegistryEntry, 0, count)
	for i := uint64(0); i < count; i++ {
		var entry types.RegistryEntry
		if entry.Path, err = r.str(); err != nil {
			return rule, err
		}
		if entry.Key, err = r.str(); err != nil {
			return rule, err
		}
		if entry.Value, err = r.optStr(); err != nil {
			return rule, err
		}
		if entry.ValueData, err = r.optStr(); err != nil {
			return rule, err
		}
		if entry.Action, err = r.str(); err != nil {
			return rule, err
		}
		entries = append(entries, entry)
	}
	if len(entries) > 0 {
		rule.RegistryEntries = entries
	}

	return rule, nil
}

// Write helpers. bytes.Buffer writes cannot fail.

func writeU32(buf *bytes.Buffer, v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	buf.Write(b[:])
}

func writeU64(buf *bytes.Buffer, v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	buf.Write(b[:])
}

func writeString(buf *bytes.Buffer, s string) {
	writeU64(buf, uint64(len(s)))
	buf.WriteString(s)
}

func writeStringSlice(buf *bytes.Buffer, ss []string) {
	writeU64(buf, uint64(len(ss)))
	for _, s := range ss {
		writeString(buf, s)
	}
}

func writeOptString(buf *bytes.Buffer, s *string) {
	if s == nil {
		buf.WriteByte(0)
		return
	}
	buf.WriteByte(1)
	writeString(buf, *s)
}

// reader is a bounds-checked cursor over the encoded bytes.
type reader struct {
	data []byte
	pos  int
}

func (r *reader) remaining() int {
	return len(r.data) - r.pos
}

func (r *reader) take(n int) ([]byte, error) {
	if n < 0 || r.remaining() < n {
		return nil, errors.Newf(errors.ErrCodecTruncated,
			"need %d bytes at offset %d, have %d", n, r.pos, r.remaining())
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

func (r *reader) u32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

func (r *reader) u64() (uint64, error) {
	b, err := r.take(8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

func (r *reader) str() (string, error) {
	n, err := r.u64()
	if err != nil {
		return "", err
	}
	if n > uint64(r.remaining()) {
		return "", errors.Newf(errors.ErrCodecDecode,
			"string length %d at offset %d exceeds remaining input %d", n, r.pos, r.remaining())
	}
	b, err := r.take(int(n))
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (r *reader) optStr() (*string, error) {
	b, err := r.take(1)
	if err != nil {
		return nil, err
	}
	switch b[0] {
	case 0:
		return nil, nil
	case 1:
		s, err := r.str()
		if err != nil {
			return nil, err
		}
		return &s, nil
	default:
		return nil, errors.Newf(errors.ErrCodecDecode,
			"invalid optional tag %d at offset %d", b[0], r.pos-1)
	}
}

func (r *reader) strSlice() ([]string, error) {
	count, err := r.u64()
	if err != nil {
		return nil, err
	}
	if count > uint64(r.remaining()) {
		return nil, errors.Newf(errors.ErrCodecDecode,
			"sequence length %d at offset %d exceeds remaining input %d", count, r.pos, r.remaining())
	}
	if count == 0 {
		return nil, nil
	}
	out := make([]string, 0, count)
	for i := uint64(0); i < count; i++ {
		s, err := r.str()
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, nil
}
