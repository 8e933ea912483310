package unpack

// Message constants
const (
	MsgShort = "Unpack a binary package back into rule documents"
	MsgLong  = `The 'unpack' command reads a binary rules package (compressed or not; the
format is auto-detected) and writes every rule document back to
<output>/<category>/<filename>, byte-identical to the packed source.

Existing files at those paths are overwritten.`

	MsgExample = `  # Unpack into ./rules_unpacked
  rulepack unpack --input ./dist/rules.bin

  # Unpack into a specific directory
  rulepack unpack --input ./dist/rules.bin --output ./restored`
)
