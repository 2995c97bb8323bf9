package domain

import (
	"strconv"

	"github.com/louisbranch/spoils/internal/platform/errors"
)

// Method selects how contested loot entries are resolved.
type Method uint8

const (
	// MethodUnspecified is the zero value and never valid on a stored rule.
	MethodUnspecified Method = iota
	// MethodFreeForAll lets any eligible player claim immediately.
	MethodFreeForAll
	// MethodRotateWinner assigns contested entries round-robin across the
	// eligible team members.
	MethodRotateWinner
	// MethodLootMaster routes every grant to the designated master.
	MethodLootMaster
	// MethodPublic opens entries to everyone and never mandates a roll.
	MethodPublic
)

func (m Method) String() string {
	switch m {
	case MethodFreeForAll:
		return "free for all"
	case MethodRotateWinner:
		return "rotate winner"
	case MethodLootMaster:
		return "loot master"
	case MethodPublic:
		return "public"
	default:
		return "unspecified"
	}
}

// Rule is the looting policy applied to a session. A team's live rule is
// cloned into each session at generation time so later rule changes never
// retroactively alter sessions already in flight.
type Rule struct {
	Method Method
	// MinimumGrade forces an explicit roll for items at or above this
	// grade. Zero disables grade-based roll forcing.
	MinimumGrade Grade
	// LootMaster receives all grants under MethodLootMaster.
	LootMaster PlayerID
	// RollForBindOnPickup forces a roll for bind-on-pickup items.
	RollForBindOnPickup bool
}

// DefaultPartyRule mirrors the default settings a newly formed team starts
// with: round-robin wins, rolls for grand quality and above, rolls for
// bind-on-pickup items.
func DefaultPartyRule() Rule {
	return Rule{
		Method:              MethodRotateWinner,
		MinimumGrade:        2,
		RollForBindOnPickup: true,
	}
}

// SoloRule is the rule synthesized for a kill with no team involved.
func SoloRule(killer PlayerID) Rule {
	return Rule{
		Method:     MethodFreeForAll,
		LootMaster: killer,
	}
}

// Clone returns an independent copy of the rule.
func (r Rule) Clone() Rule {
	return r
}

// Validate checks the rule fields against their allowed ranges.
func (r Rule) Validate() error {
	switch r.Method {
	case MethodFreeForAll, MethodRotateWinner, MethodLootMaster, MethodPublic:
	default:
		return errors.New(errors.CodeRuleInvalidMethod, "invalid looting method")
	}
	if r.MinimumGrade > GradeMax {
		return errors.WithMetadata(errors.CodeRuleInvalidGrade, "minimum grade out of range", map[string]string{
			"Min": "0",
			"Max": strconv.Itoa(int(GradeMax)),
		})
	}
	if r.Method == MethodLootMaster && r.LootMaster == 0 {
		return errors.New(errors.CodeRuleMasterRequired, "loot master method requires a designated master")
	}
	return nil
}

// RollMandatory reports whether the rule forces an explicit roll for an item
// with the given grade and bind type. MethodPublic overrides both roll
// triggers.
func (r Rule) RollMandatory(grade Grade, bind BindType) bool {
	if r.Method == MethodPublic {
		return false
	}
	if r.MinimumGrade > 0 && grade >= r.MinimumGrade {
		return true
	}
	return r.RollForBindOnPickup && bind.BindsOnPickup()
}
