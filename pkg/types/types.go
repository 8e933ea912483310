// Package types defines the core data model for rule packages.
//
// A rule package is an immutable snapshot of a rules directory: a header
// describing the package plus one SerializedRule per source document. The
// structured metadata fields are a read-optimization index; the verbatim
// yaml_content is the source of truth and is what unpack writes back out.
package types

// Default values applied when a rule document omits a field.
const (
	DefaultRisk           = "low"
	DefaultRegistryKey    = "*"
	DefaultRegistryAction = "delete_key"
)

// FormatVersion is the current binary package format revision.
const FormatVersion uint32 = 1

// Compression algorithm tags. The vocabulary is open: the header field
// carries whatever tag was requested at pack time.
const (
	CompressionNone = "none"
	CompressionZstd = "zstd"
)

// RuleMetadata holds the structured fields extracted from one rule document.
type RuleMetadata struct {
	ID          string
	Name        string
	Risk        string
	SystemInfo  []string
	Update      string
	Author      *string
	Description *string

	// Category is the immediate parent directory of the source document;
	// Filename is its base name. Together they determine where unpack
	// re-materializes the rule.
	Category string
	Filename string
}

// RegistryEntry is one registry-key matcher declared in a rule document.
// Action is carried opaquely; the packer does not validate the vocabulary.
type RegistryEntry struct {
	Path      string
	Key       string
	Value     *string
	ValueData *string
	Action    string
}

// SerializedRule is one rule record inside a package. YamlContent is the
// original document text, byte for byte.
type SerializedRule struct {
	Metadata        RuleMetadata
	YamlContent     string
	Paths           []string
	RegistryEntries []RegistryEntry
}

// PackageHeader describes a rules package. Categories preserves first-seen
// order; Compression records the algorithm requested at pack time and is
// advisory only (readers probe the bytes instead of trusting it).
type PackageHeader struct {
	Version     uint32
	CreatedAt   uint64
	RuleCount   uint64
	Compression string
	Categories  []string
}

// RulesPackage is the in-memory form of a packed rules directory. Rules
// keep discovery order; no sorting or deduplication is applied.
type RulesPackage struct {
	Header PackageHeader
	Rules  []SerializedRule
}

// PackResult reports what a pack operation produced.
type PackResult struct {
	OutputPath     string
	RuleCount      int
	Categories     []string
	EncodedSize    int
	CompressedSize int
	Compression    string
	PackedFiles    []string
}

// UnpackResult reports what an unpack operation wrote.
type UnpackResult struct {
	OutputDir    string
	RuleCount    int
	WrittenFiles []string
}

// InfoRule is the per-rule slice of an info summary.
type InfoRule struct {
	ID   string
	Name string
	Risk string
}

// InfoResult is the read-only summary of a package file.
type InfoResult struct {
	Header    PackageHeader
	FileSize  int
	Rules     []InfoRule
	InputPath string
}
