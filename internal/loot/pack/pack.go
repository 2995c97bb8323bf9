// Package pack rolls drop tables into concrete loot. Generation is driven
// by a shared random source and is deliberately not idempotent: callers
// that need "preview without applying" must retain the returned list.
package pack

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/louisbranch/spoils/internal/loot/domain"
	platformerrors "github.com/louisbranch/spoils/internal/platform/errors"
	"github.com/louisbranch/spoils/internal/storage"
)

// PlayerContext carries the per-player lookups generation depends on.
// Zero-value funcs default to "no quest" and multiplier 1.0.
type PlayerContext struct {
	HasQuest        func(quest domain.QuestID) bool
	SkillMultiplier func(skillType uint32) float64
}

func (p PlayerContext) hasQuest(quest domain.QuestID) bool {
	if p.HasQuest == nil {
		return false
	}
	return p.HasQuest(quest)
}

func (p PlayerContext) skillMultiplier(skillType uint32) float64 {
	if p.SkillMultiplier == nil {
		return 1.0
	}
	mult := p.SkillMultiplier(skillType)
	if mult <= 0 {
		return 1.0
	}
	return mult
}

// Input parameterizes one generation run.
type Input struct {
	// DropRate is the effective drop-rate multiplier (1.0 = 100%).
	DropRate float64
	// GoldRate is the coin-quantity multiplier (1.0 = 100%).
	GoldRate float64
	// Player is the requesting player's context for quest gating and
	// skill-gated groups.
	Player PlayerContext
}

// Config wires a Generator.
type Config struct {
	Catalog storage.Catalog
	// Rand is the shared random source. Tests inject a seeded generator.
	Rand *rand.Rand
	// WorldDropRate and WorldGoldRate are the server-wide multipliers
	// applied on top of per-run rates. Zero values default to 1.0.
	WorldDropRate float64
	WorldGoldRate float64
}

// Generator rolls loot packs against the catalog.
type Generator struct {
	catalog       storage.Catalog
	rng           *rand.Rand
	worldDropRate float64
	worldGoldRate float64
}

// NewGenerator creates a Generator from the config.
func NewGenerator(cfg Config) (*Generator, error) {
	if cfg.Catalog == nil {
		return nil, errors.New("catalog is required")
	}
	if cfg.Rand == nil {
		return nil, errors.New("random source is required")
	}
	worldDrop := cfg.WorldDropRate
	if worldDrop <= 0 {
		worldDrop = 1.0
	}
	worldGold := cfg.WorldGoldRate
	if worldGold <= 0 {
		worldGold = 1.0
	}
	return &Generator{
		catalog:       cfg.Catalog,
		rng:           cfg.Rand,
		worldDropRate: worldDrop,
		worldGoldRate: worldGold,
	}, nil
}

// groupGate is one independent "does this group qualify?" filter. Gates
// compose into an ordered chain so new gating kinds slot in without
// touching existing ones.
type groupGate func(groupNo uint32) bool

// Generate rolls one drop table and returns the produced items, lowest
// group first. Group 0 is always entered unconditionally.
func (g *Generator) Generate(ctx context.Context, packID uint32, in Input) ([]domain.GeneratedItem, error) {
	lootPack, err := g.catalog.Pack(ctx, packID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, platformerrors.WithMetadata(platformerrors.CodePackNotFound,
				"loot pack not found", map[string]string{"PackID": fmt.Sprint(packID)})
		}
		return nil, err
	}

	dropRate := in.DropRate
	if dropRate <= 0 {
		dropRate = 1.0
	}
	dropRate *= g.worldDropRate

	goldRate := in.GoldRate
	if goldRate <= 0 {
		goldRate = 1.0
	}
	goldRate *= g.worldGoldRate

	gates := []groupGate{
		g.groupRateGate(lootPack, dropRate),
		g.skillBonusGate(lootPack, dropRate, in.Player),
	}

	byGroup := map[uint32][]storage.LootEntry{}
	groupNos := make([]uint32, 0, len(lootPack.Entries))
	for _, entry := range lootPack.Entries {
		if _, seen := byGroup[entry.Group]; !seen {
			groupNos = append(groupNos, entry.Group)
		}
		byGroup[entry.Group] = append(byGroup[entry.Group], entry)
	}
	sort.Slice(groupNos, func(i, j int) bool { return groupNos[i] < groupNos[j] })

	var items []domain.GeneratedItem
	for _, groupNo := range groupNos {
		if !admits(gates, groupNo) {
			continue
		}

		for _, entry := range byGroup[groupNo] {
			if !g.entryDrops(entry, groupNo, dropRate) {
				continue
			}
			if gated, quest := g.questGate(ctx, entry.ItemID); gated && !in.Player.hasQuest(quest) {
				continue
			}

			quantity := g.rollQuantity(entry, goldRate)
			if quantity <= 0 {
				continue
			}

			grade := entry.GradeID
			if group, ok := lootPack.Groups[groupNo]; ok && group.GradeDistributionID > 0 {
				grade, err = g.rollGrade(ctx, group.GradeDistributionID)
				if err != nil {
					return nil, err
				}
			}

			items = append(items, domain.GeneratedItem{
				ItemID:      entry.ItemID,
				Quantity:    quantity,
				Grade:       grade,
				OriginGroup: groupNo,
			})
		}
	}
	return items, nil
}

func admits(gates []groupGate, groupNo uint32) bool {
	for _, gate := range gates {
		if !gate(groupNo) {
			return false
		}
	}
	return true
}

// groupRateGate rolls the group-level drop rate. Group 0 and groups
// without a configured rate are entered unconditionally.
func (g *Generator) groupRateGate(lootPack storage.LootPack, dropRate float64) groupGate {
	return func(groupNo uint32) bool {
		if groupNo == 0 {
			return true
		}
		group, ok := lootPack.Groups[groupNo]
		if !ok || group.DropRate <= 1 {
			return true
		}
		chance := float64(group.DropRate) / storage.GroupRateScale * dropRate
		return g.rng.Float64() < chance
	}
}

// skillBonusGate rolls the skill-gated ceiling with an independent draw.
// The drawn dice shrink with the drop rate, then the player's skill
// multiplier scales them before the ceiling comparison.
func (g *Generator) skillBonusGate(lootPack storage.LootPack, dropRate float64, player PlayerContext) groupGate {
	return func(groupNo uint32) bool {
		group, ok := lootPack.SkillGroups[groupNo]
		if !ok {
			return true
		}
		dice := math.Floor(g.rng.Float64() * storage.SkillRateScale / dropRate)
		mult := player.skillMultiplier(group.SkillType)
		return dice*mult <= float64(group.MaxDice)
	}
}

// entryDrops rolls one candidate item. Always-drop items, items at the
// maximum rate sentinel and all of group 0 bypass the roll.
func (g *Generator) entryDrops(entry storage.LootEntry, groupNo uint32, dropRate float64) bool {
	if entry.AlwaysDrop || entry.DropRate >= storage.ItemRateScale || groupNo == 0 {
		return true
	}
	chance := float64(entry.DropRate) / storage.ItemRateScale * dropRate
	return g.rng.Float64() < chance
}

// questGate reports whether the item is quest-gated and by which quest.
// Unknown templates simply have no gate.
func (g *Generator) questGate(ctx context.Context, item domain.ItemID) (bool, domain.QuestID) {
	tmpl, err := g.catalog.ItemTemplate(ctx, item)
	if err != nil {
		return false, 0
	}
	return tmpl.LootQuestID > 0, tmpl.LootQuestID
}

func (g *Generator) rollQuantity(entry storage.LootEntry, goldRate float64) int32 {
	low, high := entry.MinAmount, entry.MaxAmount
	if high < low {
		high = low
	}
	quantity := low
	if high > low {
		quantity = low + g.rng.Int31n(high-low+1)
	}
	if entry.ItemID == domain.CoinItemID {
		quantity = int32(math.Round(float64(quantity) * goldRate))
	}
	return quantity
}

// rollGrade draws from the weighted 0-11 ladder: the first bucket whose
// cumulative weight meets or exceeds the roll wins.
func (g *Generator) rollGrade(ctx context.Context, distributionID uint32) (domain.Grade, error) {
	dist, err := g.catalog.GradeDistribution(ctx, distributionID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return 0, platformerrors.WithMetadata(platformerrors.CodeGradeLadderUnknownReference,
				"grade distribution not found", map[string]string{"ID": fmt.Sprint(distributionID)})
		}
		return 0, err
	}
	total := dist.TotalWeight()
	if total == 0 {
		// Catalog validation rejects these at load; reaching one here is a
		// configuration-data error.
		return 0, platformerrors.WithMetadata(platformerrors.CodeGradeLadderZeroWeight,
			"grade distribution has zero total weight", map[string]string{"ID": fmt.Sprint(distributionID)})
	}

	roll := uint32(g.rng.Int63n(int64(total))) + 1
	var cumulative uint32
	for grade, weight := range dist.Weights {
		cumulative += weight
		if cumulative >= roll {
			return domain.Grade(grade), nil
		}
	}
	return domain.GradeMax, nil
}
