package info

// Message constants
const (
	MsgShort = "Show the contents of a binary rules package"
	MsgLong  = `The 'info' command prints a package's header (format version, creation time,
rule count, compression, categories) and a per-rule summary. It reads the
package but never writes anything.`

	MsgExample = `  # Inspect a package
  rulepack info --input ./dist/rules.bin`
)
