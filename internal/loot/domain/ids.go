package domain

// PlayerID identifies a player character. Zero means "nobody".
type PlayerID uint32

// TeamID identifies a party or raid. Zero means "no team".
type TeamID uint32

// UnitID identifies a defeated unit (NPC or destructible object) in the world.
type UnitID uint32

// ItemID identifies an item template in the catalog.
type ItemID uint32

// QuestID identifies a quest that can gate item pickup.
type QuestID uint32

// CoinItemID is the catalog identifier of the currency item. Generated coin
// entries are credited as funds instead of deposited as items.
const CoinItemID ItemID = 500

// EntryIndex is the stable per-session identifier of a claim entry.
// Indices start at 1; zero is never assigned.
type EntryIndex uint16

// SyntheticItemID builds the provisional identifier a generated item carries
// while it sits in a loot session. The durable identifier replaces it at
// grant time.
func SyntheticItemID(unit UnitID, index EntryIndex) uint64 {
	return uint64(unit)<<32 | uint64(index)
}
