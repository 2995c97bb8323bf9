package gateway

import "github.com/louisbranch/spoils/internal/loot/domain"

// Notifier is the opaque outbound sink for player-facing loot events.
// The network layer implements it; the engine never learns about framing.
type Notifier interface {
	// LootableStateChanged tells players whether the unit still has loot.
	LootableStateChanged(players []domain.PlayerID, unit domain.UnitID, lootable bool)
	// RollRequested asks a player to submit a roll for an entry.
	RollRequested(player domain.PlayerID, unit domain.UnitID, index domain.EntryIndex, item domain.GeneratedItem)
	// RollResult broadcasts one participant's roll to another participant.
	RollResult(to domain.PlayerID, roller domain.PlayerID, unit domain.UnitID, index domain.EntryIndex, value domain.RollValue)
	// RollSummary broadcasts the complete roll table once everyone rolled.
	RollSummary(to domain.PlayerID, unit domain.UnitID, index domain.EntryIndex, rolls map[domain.PlayerID]domain.RollValue)
	// ItemTaken confirms a successful grant to the receiving player.
	// itemUID is the durable item identifier assigned at grant time (coins
	// keep the synthetic bag identifier, since no item object persists).
	ItemTaken(player domain.PlayerID, unit domain.UnitID, index domain.EntryIndex, itemUID uint64, item domain.GeneratedItem)
	// ClaimFailed surfaces a refused claim attempt. Refusals are
	// notifications, never errors.
	ClaimFailed(player domain.PlayerID, unit domain.UnitID, index domain.EntryIndex, item domain.ItemID, reason domain.FailReason)
	// BagContents pushes the remaining entries to a viewing player.
	BagContents(player domain.PlayerID, unit domain.UnitID, entries []domain.EntrySummary)
}

// NopNotifier discards every notification. Useful as a default and in tests
// that do not assert on outbound traffic.
type NopNotifier struct{}

func (NopNotifier) LootableStateChanged([]domain.PlayerID, domain.UnitID, bool) {}
func (NopNotifier) RollRequested(domain.PlayerID, domain.UnitID, domain.EntryIndex, domain.GeneratedItem) {
}
func (NopNotifier) RollResult(domain.PlayerID, domain.PlayerID, domain.UnitID, domain.EntryIndex, domain.RollValue) {
}
func (NopNotifier) RollSummary(domain.PlayerID, domain.UnitID, domain.EntryIndex, map[domain.PlayerID]domain.RollValue) {
}
func (NopNotifier) ItemTaken(domain.PlayerID, domain.UnitID, domain.EntryIndex, uint64, domain.GeneratedItem) {
}
func (NopNotifier) ClaimFailed(domain.PlayerID, domain.UnitID, domain.EntryIndex, domain.ItemID, domain.FailReason) {
}
func (NopNotifier) BagContents(domain.PlayerID, domain.UnitID, []domain.EntrySummary) {}
