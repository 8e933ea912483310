// Package commands provides high-level command implementations for rulepack.
//
// This package contains the command orchestration layer that coordinates
// between the CLI interface and the core packer functionality.
//
// Each command is implemented in its own subdirectory:
//   - pack/   - PackRules command
//   - unpack/ - UnpackRules command
//   - info/   - ShowInfo command
//
// This file serves as the main entry point and re-exports all command
// functions.
package commands

import (
	"github.com/winclean/rulepack/pkg/commands/info"
	"github.com/winclean/rulepack/pkg/commands/pack"
	"github.com/winclean/rulepack/pkg/commands/unpack"
	"github.com/winclean/rulepack/pkg/types"
)

// PackRules converts a rules directory into a single binary package file.
type PackRulesOptions = pack.PackRulesOptions

func PackRules(opts PackRulesOptions) (*types.PackResult, error) {
	return pack.PackRules(opts)
}

// UnpackRules re-materializes the rule documents from a package file.
type UnpackRulesOptions = unpack.UnpackRulesOptions

func UnpackRules(opts UnpackRulesOptions) (*types.UnpackResult, error) {
	return unpack.UnpackRules(opts)
}

// ShowInfo summarizes a package file without writing anything.
type ShowInfoOptions = info.ShowInfoOptions

func ShowInfo(opts ShowInfoOptions) (*types.InfoResult, error) {
	return info.ShowInfo(opts)
}
