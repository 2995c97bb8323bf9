package storage

import (
	"context"
	"errors"

	"github.com/louisbranch/spoils/internal/loot/domain"
)

// ErrNotFound indicates a requested record is missing.
var ErrNotFound = errors.New("record not found")

// Probability scales used by the drop tables. Rates are stored as integers
// against these denominators so catalog data stays exact.
const (
	// ItemRateScale is the denominator for per-item drop rates. A rate
	// equal to the scale is the "always drops" sentinel.
	ItemRateScale = 10_000_000
	// GroupRateScale is the denominator for group-level drop rates.
	// Rates of 0 or 1 mean the group is entered unconditionally.
	GroupRateScale = 100_000
	// SkillRateScale is the denominator for skill-bonus gate ceilings.
	SkillRateScale = 10_000
)

// LootEntry is one candidate drop inside a pack group.
type LootEntry struct {
	ID         uint32
	Group      uint32
	ItemID     domain.ItemID
	DropRate   uint32
	MinAmount  int32
	MaxAmount  int32
	GradeID    domain.Grade
	AlwaysDrop bool
}

// LootGroup holds the optional group-level gate and grade ladder reference
// for one group number within a pack.
type LootGroup struct {
	GroupNo             uint32
	DropRate            uint32
	GradeDistributionID uint32
}

// SkillBonusGroup gates a group behind a skill-scaled dice ceiling.
type SkillBonusGroup struct {
	GroupNo   uint32
	SkillType uint32
	MaxDice   uint32
}

// LootPack is a full drop table: candidate entries plus per-group gating.
type LootPack struct {
	ID          uint32
	Entries     []LootEntry
	Groups      map[uint32]LootGroup
	SkillGroups map[uint32]SkillBonusGroup
}

// GradeDistribution is a weighted 0-11 grade ladder.
type GradeDistribution struct {
	ID      uint32
	Weights [12]uint32
}

// TotalWeight sums the ladder weights.
func (d GradeDistribution) TotalWeight() uint32 {
	var total uint32
	for _, w := range d.Weights {
		total += w
	}
	return total
}

// ItemTemplate is the catalog record for one item kind.
type ItemTemplate struct {
	ID          domain.ItemID
	Name        string
	LootQuestID domain.QuestID
	BindType    domain.BindType
	FixedGrade  int16
	MaxStack    int32
}

// Catalog exposes the read-only drop-table reference data.
type Catalog interface {
	// PackIDsForUnit lists the drop tables a unit template rolls on death.
	PackIDsForUnit(ctx context.Context, unitTemplateID uint32) ([]uint32, error)
	// Pack loads one drop table. Returns ErrNotFound for unknown ids.
	Pack(ctx context.Context, id uint32) (LootPack, error)
	// ItemTemplate loads one item record. Returns ErrNotFound for unknown ids.
	ItemTemplate(ctx context.Context, id domain.ItemID) (ItemTemplate, error)
	// GradeDistribution loads one grade ladder. Returns ErrNotFound for
	// unknown ids.
	GradeDistribution(ctx context.Context, id uint32) (GradeDistribution, error)
}
