// Package gateway declares the collaborator boundaries the loot engine
// consumes: player storage, currency, quests, team rosters and the outbound
// notification sink. Implementations live in the surrounding world server;
// tests substitute fakes.
package gateway

import "github.com/louisbranch/spoils/internal/loot/domain"

// TaskTag labels an inventory mutation for the receiving side's audit trail.
type TaskTag string

const (
	// TaskLoot marks a single-item loot pickup.
	TaskLoot TaskTag = "loot"
	// TaskLootAll marks a pickup made through the loot-all shortcut.
	TaskLootAll TaskTag = "loot_all"
)

// Inventory is the player-storage side of the distribution gateway.
// Any internal locking of player storage is the implementation's concern;
// the loot engine only ever touches one player per grant.
type Inventory interface {
	// SpaceLeftFor reports how many more of the item the player can hold.
	SpaceLeftFor(player domain.PlayerID, item domain.ItemID, quantity int32) int32
	// Deposit adds the item to the player's storage. Returns false when the
	// deposit could not be completed.
	Deposit(task TaskTag, player domain.PlayerID, item domain.ItemID, quantity int32, grade domain.Grade) bool
}

// Currency credits funds directly, bypassing item storage.
type Currency interface {
	Credit(player domain.PlayerID, amount int64)
}

// Quests answers quest-gating lookups.
type Quests interface {
	HasQuest(player domain.PlayerID, quest domain.QuestID) bool
}

// RosterMember is one team member's membership record. HadTurn is the
// round-robin rotation flag; it lives on the membership record itself so
// roster changes and rotation state can never drift apart.
type RosterMember struct {
	Player  domain.PlayerID
	HadTurn bool
}

// Roster exposes team membership and the team's live looting rule.
type Roster interface {
	// TeamOf returns the player's team, or zero when solo.
	TeamOf(player domain.PlayerID) domain.TeamID
	// Members returns the live membership records for a team. The returned
	// pointers are shared; rotation flags set through them persist across
	// sessions.
	Members(team domain.TeamID) []*RosterMember
	// Rule returns the team's current looting rule.
	Rule(team domain.TeamID) (domain.Rule, bool)
	// SetRule replaces the team's looting rule.
	SetRule(team domain.TeamID, rule domain.Rule) error
}

// Proximity answers range checks against a unit's position.
type Proximity interface {
	// InLootRange reports whether the player is close enough to the unit
	// to hold a loot claim.
	InLootRange(player domain.PlayerID, unit domain.UnitID) bool
}

// Modifiers exposes per-player loot rate bonuses.
type Modifiers interface {
	// DropRateBonus is the player's drop-rate bonus in percent (0 = none).
	DropRateBonus(player domain.PlayerID) float64
	// GoldRateBonus is the player's coin-drop bonus in percent (0 = none).
	GoldRateBonus(player domain.PlayerID) float64
	// SkillLootMultiplier is the player's multiplier for skill-gated drop
	// groups (1.0 = none).
	SkillLootMultiplier(player domain.PlayerID, skillType uint32) float64
}

// ItemIDs issues durable item identifiers at grant time.
type ItemIDs interface {
	Next() uint64
	Release(id uint64)
}

// Spawns lets the engine adjust a defeated unit's despawn schedule when
// loot is generated and when the last entry is removed.
type Spawns interface {
	ExtendDespawn(unit domain.UnitID, seconds float64)
	ShortenDespawn(unit domain.UnitID, seconds float64)
}
