package genconfig

// Message constants
const (
	MsgShort = "Generate a rulepack configuration file"
	MsgLong  = `The 'genconfig' command prints the default configuration as TOML. With
--write it is saved to .rulepack.toml in the current directory, where pack
and unpack will pick it up.`

	MsgExample = `  # Print the default configuration
  rulepack genconfig

  # Write it to ./.rulepack.toml
  rulepack genconfig --write`
)
