// Package assembler aggregates extracted rules into an in-memory package.
package assembler

import (
	"time"

	"github.com/winclean/rulepack/pkg/logging"
	"github.com/winclean/rulepack/pkg/types"
)

// Assembler builds RulesPackage values. The clock is injectable so tests
// can hold time fixed.
type Assembler struct {
	clock func() time.Time
}

// New returns an Assembler using the wall clock.
func New() *Assembler {
	return &Assembler{clock: time.Now}
}

// NewWithClock returns an Assembler with a fixed clock.
func NewWithClock(clock func() time.Time) *Assembler {
	return &Assembler{clock: clock}
}

// Assemble builds a RulesPackage from rules in discovery order. Categories
// are recorded in first-seen order; rules are neither sorted nor
// deduplicated, duplicate ids included.
func (a *Assembler) Assemble(rules []types.SerializedRule, compression string) *types.RulesPackage {
	logger := logging.GetLogger("assembler")

	var categories []string
	seen := make(map[string]bool)
	for _, rule := range rules {
		category := rule.Metadata.Category
		if !seen[category] {
			seen[category] = true
			categories = append(categories, category)
		}
	}

	pkg := &types.RulesPackage{
		Header: types.PackageHeader{
			Version:     types.FormatVersion,
			CreatedAt:   uint64(a.clock().Unix()),
			RuleCount:   uint64(len(rules)),
			Compression: compression,
			Categories:  categories,
		},
		Rules: rules,
	}

	logger.Debug().
		Uint64("ruleCount", pkg.Header.RuleCount).
		Strs("categories", categories).
		Msg("Assembled rules package")

	return pkg
}
