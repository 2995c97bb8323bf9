package domain

// Grade is a discrete item-quality tier on the 0-11 ladder.
type Grade uint8

// GradeMax is the highest grade on the ladder.
const GradeMax Grade = 11

// BindType is a bit set of item binding behaviors.
type BindType uint8

const (
	// BindNone marks freely tradeable items.
	BindNone BindType = 0
	// BindOnPickup marks items that bind to the looter the moment they are
	// picked up. Some looting rules force a roll for these.
	BindOnPickup BindType = 1 << 0
	// BindOnEquip marks items that bind when first equipped.
	BindOnEquip BindType = 1 << 1
)

// BindsOnPickup reports whether the bind-on-pickup flag is set.
func (b BindType) BindsOnPickup() bool {
	return b&BindOnPickup != 0
}

// GeneratedItem is one concrete drop produced by the pack generator.
// Immutable once produced.
type GeneratedItem struct {
	ItemID      ItemID
	Quantity    int32
	Grade       Grade
	OriginGroup uint32
}

// RollValue is a submitted tiebreak roll: 0 = not yet rolled, -1 = passed,
// 1..99 = rolled value.
type RollValue int8

const (
	// RollPending marks a participant who has not responded yet.
	RollPending RollValue = 0
	// RollPassed marks an explicit (or forced) pass.
	RollPassed RollValue = -1
)

// EntrySummary is the read-model view of one remaining claim entry.
type EntrySummary struct {
	Index       EntryIndex
	ItemID      ItemID
	Quantity    int32
	Grade       Grade
	ClaimedBy   PlayerID
	RollPending bool
}

// FailReason is the notification kind sent when a claim attempt is refused.
// Claim refusals are player-facing signals, not errors.
type FailReason uint8

const (
	// FailNone means the attempt was not refused.
	FailNone FailReason = iota
	// FailAlreadyClaimed means another player holds the entry.
	FailAlreadyClaimed
	// FailQuestRequired means the item is quest-gated and the player lacks
	// the quest.
	FailQuestRequired
	// FailStorageFull means the grant step could not deposit the item.
	FailStorageFull
	// FailNotFound means the entry or session no longer exists.
	FailNotFound
)

func (r FailReason) String() string {
	switch r {
	case FailNone:
		return "none"
	case FailAlreadyClaimed:
		return "already claimed"
	case FailQuestRequired:
		return "quest required"
	case FailStorageFull:
		return "storage full"
	case FailNotFound:
		return "not found"
	default:
		return "unknown"
	}
}
