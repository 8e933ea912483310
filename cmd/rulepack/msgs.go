package rulepack

// Message constants for the root command
const (
	MsgRootShort = "Pack YAML cleanup rules into a single binary package"
	MsgRootLong  = `rulepack converts a directory tree of YAML rule documents into one compact,
versioned binary package, and reconstructs the original documents from it.

The rules layout is two levels: category directories under the rules root,
rule files inside each category. Packages can be zstd-compressed and are
auto-detected on read.`

	MsgFlagVerbose = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagQuiet   = "Suppress per-file progress output"
)
