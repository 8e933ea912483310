package pack

// Message constants
const (
	MsgShort = "Pack a rules directory into a binary package"
	MsgLong  = `The 'pack' command walks a rules directory (category subdirectories holding
YAML rule documents), extracts each rule's metadata and matchers, and writes
everything into a single binary package file.

The original document text is preserved verbatim inside the package, so
'unpack' reconstructs the source files byte for byte.`

	MsgExample = `  # Pack ./rules into ./dist/rules.bin with zstd compression
  rulepack pack

  # Pack a specific directory without compression
  rulepack pack --input ./my-rules --output ./out/rules.bin --compress none`
)
