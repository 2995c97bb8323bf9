// Package world provides the in-memory gateway implementations the
// standalone server runs on. A hosting game server replaces these with
// adapters over its own player, team and storage systems.
package world

import (
	"log"
	"sync"

	"github.com/louisbranch/spoils/internal/loot/domain"
	"github.com/louisbranch/spoils/internal/loot/gateway"
	"github.com/louisbranch/spoils/internal/platform/errors"
)

// World is an in-memory implementation of every collaborator gateway the
// loot engine consumes. All methods are safe for concurrent use.
type World struct {
	mu sync.Mutex

	holdings   map[domain.PlayerID]map[domain.ItemID]int32
	capacities map[domain.PlayerID]map[domain.ItemID]int32
	funds      map[domain.PlayerID]int64
	quests     map[domain.PlayerID]map[domain.QuestID]struct{}
	teams      map[domain.PlayerID]domain.TeamID
	members    map[domain.TeamID][]*gateway.RosterMember
	rules      map[domain.TeamID]domain.Rule
	dropBonus  map[domain.PlayerID]float64
	goldBonus  map[domain.PlayerID]float64
	nextItemID uint64
}

// New creates an empty world.
func New() *World {
	return &World{
		holdings:   map[domain.PlayerID]map[domain.ItemID]int32{},
		capacities: map[domain.PlayerID]map[domain.ItemID]int32{},
		funds:      map[domain.PlayerID]int64{},
		quests:     map[domain.PlayerID]map[domain.QuestID]struct{}{},
		teams:      map[domain.PlayerID]domain.TeamID{},
		members:    map[domain.TeamID][]*gateway.RosterMember{},
		rules:      map[domain.TeamID]domain.Rule{},
		dropBonus:  map[domain.PlayerID]float64{},
		goldBonus:  map[domain.PlayerID]float64{},
	}
}

// SpaceLeftFor reports how many more of the item the player can hold.
// Players hold unlimited quantities unless a capacity was set.
func (w *World) SpaceLeftFor(player domain.PlayerID, item domain.ItemID, quantity int32) int32 {
	w.mu.Lock()
	defer w.mu.Unlock()
	caps, ok := w.capacities[player]
	if !ok {
		return quantity
	}
	limit, ok := caps[item]
	if !ok {
		return quantity
	}
	left := limit - w.holdings[player][item]
	if left < 0 {
		return 0
	}
	return left
}

// Deposit adds the item to the player's holdings.
func (w *World) Deposit(task gateway.TaskTag, player domain.PlayerID, item domain.ItemID, quantity int32, grade domain.Grade) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.holdings[player] == nil {
		w.holdings[player] = map[domain.ItemID]int32{}
	}
	w.holdings[player][item] += quantity
	return true
}

// SetCapacity caps how many of the item the player can hold in total.
func (w *World) SetCapacity(player domain.PlayerID, item domain.ItemID, limit int32) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.capacities[player] == nil {
		w.capacities[player] = map[domain.ItemID]int32{}
	}
	w.capacities[player][item] = limit
}

// Held reports the player's current quantity of the item.
func (w *World) Held(player domain.PlayerID, item domain.ItemID) int32 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.holdings[player][item]
}

// Credit adds funds to the player's balance.
func (w *World) Credit(player domain.PlayerID, amount int64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.funds[player] += amount
}

// Balance reports the player's fund balance.
func (w *World) Balance(player domain.PlayerID) int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.funds[player]
}

// GrantQuest marks the quest active for the player.
func (w *World) GrantQuest(player domain.PlayerID, quest domain.QuestID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.quests[player] == nil {
		w.quests[player] = map[domain.QuestID]struct{}{}
	}
	w.quests[player][quest] = struct{}{}
}

// CompleteQuest removes the quest from the player's active set.
func (w *World) CompleteQuest(player domain.PlayerID, quest domain.QuestID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.quests[player], quest)
}

// HasQuest answers quest-gating lookups.
func (w *World) HasQuest(player domain.PlayerID, quest domain.QuestID) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.quests[player][quest]
	return ok
}

// FormTeam creates (or replaces) a team with the given members. Membership
// records are fresh, so any prior rotation state is discarded.
func (w *World) FormTeam(team domain.TeamID, rule domain.Rule, players ...domain.PlayerID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	members := make([]*gateway.RosterMember, 0, len(players))
	for _, p := range players {
		members = append(members, &gateway.RosterMember{Player: p})
		w.teams[p] = team
	}
	w.members[team] = members
	w.rules[team] = rule
}

// DisbandTeam removes the team and its members' affiliations.
func (w *World) DisbandTeam(team domain.TeamID) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, member := range w.members[team] {
		delete(w.teams, member.Player)
	}
	delete(w.members, team)
	delete(w.rules, team)
}

// TeamOf returns the player's team, or zero when solo.
func (w *World) TeamOf(player domain.PlayerID) domain.TeamID {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.teams[player]
}

// Members returns the team's live membership records.
func (w *World) Members(team domain.TeamID) []*gateway.RosterMember {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.members[team]
}

// Rule returns the team's current looting rule.
func (w *World) Rule(team domain.TeamID) (domain.Rule, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	rule, ok := w.rules[team]
	return rule, ok
}

// SetRule replaces the team's looting rule.
func (w *World) SetRule(team domain.TeamID, rule domain.Rule) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.members[team]; !ok {
		return errors.New(errors.CodeRuleTeamNotFound, "team not found")
	}
	w.rules[team] = rule
	return nil
}

// SetDropRateBonus sets the player's drop-rate bonus in percent.
func (w *World) SetDropRateBonus(player domain.PlayerID, percent float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.dropBonus[player] = percent
}

// SetGoldRateBonus sets the player's coin-drop bonus in percent.
func (w *World) SetGoldRateBonus(player domain.PlayerID, percent float64) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.goldBonus[player] = percent
}

// DropRateBonus is the player's drop-rate bonus in percent.
func (w *World) DropRateBonus(player domain.PlayerID) float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dropBonus[player]
}

// GoldRateBonus is the player's coin-drop bonus in percent.
func (w *World) GoldRateBonus(player domain.PlayerID) float64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.goldBonus[player]
}

// SkillLootMultiplier is always 1 in the standalone world.
func (w *World) SkillLootMultiplier(domain.PlayerID, uint32) float64 { return 1 }

// Next issues a durable item identifier.
func (w *World) Next() uint64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextItemID++
	return w.nextItemID
}

// Release is a no-op; the standalone world never reuses identifiers.
func (w *World) Release(uint64) {}

// LogNotifier writes player-facing loot events to the process log. It
// stands in for a real network push layer.
type LogNotifier struct{}

func (LogNotifier) LootableStateChanged(players []domain.PlayerID, unit domain.UnitID, lootable bool) {
	log.Printf("unit %d lootable=%t for %d players", unit, lootable, len(players))
}

func (LogNotifier) RollRequested(player domain.PlayerID, unit domain.UnitID, index domain.EntryIndex, item domain.GeneratedItem) {
	log.Printf("roll requested: player %d unit %d entry %d item %d", player, unit, index, item.ItemID)
}

func (LogNotifier) RollResult(to domain.PlayerID, roller domain.PlayerID, unit domain.UnitID, index domain.EntryIndex, value domain.RollValue) {
	log.Printf("roll result to %d: player %d rolled %d on unit %d entry %d", to, roller, value, unit, index)
}

func (LogNotifier) RollSummary(to domain.PlayerID, unit domain.UnitID, index domain.EntryIndex, rolls map[domain.PlayerID]domain.RollValue) {
	log.Printf("roll summary to %d: unit %d entry %d (%d rolls)", to, unit, index, len(rolls))
}

func (LogNotifier) ItemTaken(player domain.PlayerID, unit domain.UnitID, index domain.EntryIndex, itemUID uint64, item domain.GeneratedItem) {
	log.Printf("item taken: player %d unit %d entry %d item %d x%d uid %d", player, unit, index, item.ItemID, item.Quantity, itemUID)
}

func (LogNotifier) ClaimFailed(player domain.PlayerID, unit domain.UnitID, index domain.EntryIndex, item domain.ItemID, reason domain.FailReason) {
	log.Printf("claim failed: player %d unit %d entry %d reason %d", player, unit, index, reason)
}

func (LogNotifier) BagContents(player domain.PlayerID, unit domain.UnitID, entries []domain.EntrySummary) {
	log.Printf("bag push: player %d unit %d (%d entries)", player, unit, len(entries))
}
