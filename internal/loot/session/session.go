// Package session owns the per-unit looting containers: the generated
// claim entries, the active roll state and the policy enforcement that
// resolves contention to exactly one winner per entry.
//
// All mutations to one session are expected to arrive from the single
// logical thread that owns the defeated unit's region tick. Only the
// registry in Manager and the eligibility trackers carry locks.
package session

import (
	"math/rand"
	"sort"
	"time"

	"github.com/louisbranch/spoils/internal/loot/domain"
	"github.com/louisbranch/spoils/internal/loot/gateway"
	"github.com/louisbranch/spoils/internal/platform/errors"
)

const (
	// PublicAfter is the session age past which MakePublic is accepted.
	PublicAfter = 180 * time.Second
	// DespawnExtensionSeconds is added to the owning unit's despawn
	// countdown when loot generates.
	DespawnExtensionSeconds = 300
	// PostLootGraceSeconds replaces the countdown once the last entry is
	// removed.
	PostLootGraceSeconds = 2
	// MaxRollValue is the top of the 1..99 tiebreak roll range.
	MaxRollValue = 99
)

// ClaimOutcome classifies one claim attempt.
type ClaimOutcome uint8

const (
	// ClaimRefused means the attempt was rejected; Reason says why.
	ClaimRefused ClaimOutcome = iota
	// ClaimGranted means the item was handed to the grant target.
	ClaimGranted
	// ClaimPending means a roll is collecting, or the rotation picked
	// someone else. The attempt was accepted but produced no grant.
	ClaimPending
)

// ClaimResult is the outcome of one AttemptClaim call. Refusals are
// player-facing notifications, never errors.
type ClaimResult struct {
	Outcome ClaimOutcome
	Reason  domain.FailReason
	// Winner is the player the entry was granted or assigned to, when any.
	Winner domain.PlayerID
}

// deps are the collaborators a session needs to resolve claims. The
// manager shares one value across all of its sessions.
type deps struct {
	inventory gateway.Inventory
	currency  gateway.Currency
	quests    gateway.Quests
	roster    gateway.Roster
	itemIDs   gateway.ItemIDs
	notifier  gateway.Notifier
	rng       *rand.Rand
	now       func() time.Time
}

// entry is one claim entry: the pending-to-resolved ownership record of a
// single generated item.
type entry struct {
	index domain.EntryIndex
	item  domain.GeneratedItem
	bind  domain.BindType
	quest domain.QuestID

	// itemUID is the synthetic bag identifier while the entry sits in the
	// session; the grant step swaps in a durable identifier, and a failed
	// deposit restores the synthetic one.
	itemUID uint64

	// claimant is zero while unclaimed and immutable once set. The entry
	// leaves the session the moment the item is actually handed over.
	claimant domain.PlayerID
	// rolls collects tiebreak submissions while a roll is in flight.
	rolls map[domain.PlayerID]domain.RollValue
	// noRoll is set after an all-pass roll: the entry stays contested but
	// no further roll is ever initiated for it.
	noRoll bool
}

func (e *entry) rolling() bool {
	return len(e.rolls) > 0
}

// Session is the looting container for one defeated unit.
type Session struct {
	deps *deps

	unit      domain.UnitID
	rule      domain.Rule
	team      domain.TeamID
	eligible  map[domain.PlayerID]struct{}
	entries   map[domain.EntryIndex]*entry
	createdAt time.Time
	openedBy  map[domain.PlayerID]struct{}

	// onEmpty fires once when the last entry is removed.
	onEmpty func()
}

func newSession(d *deps, unit domain.UnitID, rule domain.Rule, team domain.TeamID, eligible []domain.PlayerID, onEmpty func()) *Session {
	s := &Session{
		deps:      d,
		unit:      unit,
		rule:      rule.Clone(),
		team:      team,
		eligible:  make(map[domain.PlayerID]struct{}, len(eligible)),
		entries:   map[domain.EntryIndex]*entry{},
		createdAt: d.now(),
		openedBy:  map[domain.PlayerID]struct{}{},
		onEmpty:   onEmpty,
	}
	for _, p := range eligible {
		s.eligible[p] = struct{}{}
	}
	return s
}

func (s *Session) addItems(items []domain.GeneratedItem, templates func(domain.ItemID) (domain.BindType, domain.QuestID)) {
	for i, item := range items {
		index := domain.EntryIndex(i + 1)
		bind, quest := templates(item.ItemID)
		s.entries[index] = &entry{
			index:   index,
			item:    item,
			bind:    bind,
			quest:   quest,
			itemUID: domain.SyntheticItemID(s.unit, index),
		}
	}
}

// Unit returns the owning unit.
func (s *Session) Unit() domain.UnitID { return s.unit }

// CreatedAt returns the generation timestamp.
func (s *Session) CreatedAt() time.Time { return s.createdAt }

// Rule returns the session's resolved rule (a clone taken at generation).
func (s *Session) Rule() domain.Rule { return s.rule }

// HasUnclaimed reports whether any entry remains.
func (s *Session) HasUnclaimed() bool { return len(s.entries) > 0 }

// EntryCount reports the number of unclaimed entries, quest-gated included.
func (s *Session) EntryCount() int { return len(s.entries) }

// EligiblePlayers returns the frozen claim set, sorted for stable output.
func (s *Session) EligiblePlayers() []domain.PlayerID {
	players := make([]domain.PlayerID, 0, len(s.eligible))
	for p := range s.eligible {
		players = append(players, p)
	}
	sort.Slice(players, func(i, j int) bool { return players[i] < players[j] })
	return players
}

func (s *Session) isEligible(player domain.PlayerID) bool {
	_, ok := s.eligible[player]
	return ok
}

// RemainingEntries returns the viewer's visible entry summaries in index
// order. Quest-gated entries the viewer cannot pick up are omitted.
func (s *Session) RemainingEntries(viewer domain.PlayerID) []domain.EntrySummary {
	indices := make([]domain.EntryIndex, 0, len(s.entries))
	for idx := range s.entries {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	summaries := make([]domain.EntrySummary, 0, len(indices))
	for _, idx := range indices {
		e := s.entries[idx]
		if e.quest != 0 && !s.deps.quests.HasQuest(viewer, e.quest) {
			continue
		}
		summaries = append(summaries, domain.EntrySummary{
			Index:       e.index,
			ItemID:      e.item.ItemID,
			Quantity:    e.item.Quantity,
			Grade:       e.item.Grade,
			ClaimedBy:   e.claimant,
			RollPending: e.rolling(),
		})
	}
	return summaries
}

// Open registers the player as a viewer and pushes the bag contents.
func (s *Session) Open(player domain.PlayerID) []domain.EntrySummary {
	s.openedBy[player] = struct{}{}
	summaries := s.RemainingEntries(player)
	s.deps.notifier.BagContents(player, s.unit, summaries)
	return summaries
}

// Close removes the player from the viewer set.
func (s *Session) Close(player domain.PlayerID) {
	delete(s.openedBy, player)
}

// LootAll attempts to claim every remaining entry in index order on the
// player's behalf. Quest-gated entries the player cannot pick up are
// skipped without a refusal notification.
func (s *Session) LootAll(player domain.PlayerID) int {
	indices := make([]domain.EntryIndex, 0, len(s.entries))
	for idx := range s.entries {
		indices = append(indices, idx)
	}
	sort.Slice(indices, func(i, j int) bool { return indices[i] < indices[j] })

	granted := 0
	for _, idx := range indices {
		e, ok := s.entries[idx]
		if !ok {
			continue
		}
		if e.quest != 0 && !s.deps.quests.HasQuest(player, e.quest) {
			continue
		}
		if res := s.attemptClaim(player, idx, gateway.TaskLootAll); res.Outcome == ClaimGranted {
			granted++
		}
	}
	return granted
}

// AttemptClaim runs the claim protocol for one entry. It never returns an
// error: refusals surface as ClaimFailed notifications and a refused
// result.
func (s *Session) AttemptClaim(player domain.PlayerID, index domain.EntryIndex) ClaimResult {
	return s.attemptClaim(player, index, gateway.TaskLoot)
}

func (s *Session) attemptClaim(player domain.PlayerID, index domain.EntryIndex, task gateway.TaskTag) ClaimResult {
	e, ok := s.entries[index]
	if !ok {
		s.deps.notifier.ClaimFailed(player, s.unit, index, 0, domain.FailNotFound)
		return ClaimResult{Outcome: ClaimRefused, Reason: domain.FailNotFound}
	}
	if e.claimant != 0 && e.claimant != player {
		s.deps.notifier.ClaimFailed(player, s.unit, index, e.item.ItemID, domain.FailAlreadyClaimed)
		return ClaimResult{Outcome: ClaimRefused, Reason: domain.FailAlreadyClaimed}
	}
	if e.quest != 0 && !s.deps.quests.HasQuest(player, e.quest) {
		s.deps.notifier.ClaimFailed(player, s.unit, index, e.item.ItemID, domain.FailQuestRequired)
		return ClaimResult{Outcome: ClaimRefused, Reason: domain.FailQuestRequired}
	}
	if e.claimant == player {
		return s.grant(e, player, task)
	}
	if s.rule.Method != domain.MethodPublic && !s.isEligible(player) {
		s.deps.notifier.ClaimFailed(player, s.unit, index, e.item.ItemID, domain.FailAlreadyClaimed)
		return ClaimResult{Outcome: ClaimRefused, Reason: domain.FailAlreadyClaimed}
	}
	if e.rolling() && len(e.rolls) > 1 {
		return ClaimResult{Outcome: ClaimPending}
	}
	if e.noRoll {
		// an abandoned roll leaves the entry effectively public: first
		// eligible claimer takes it, no rotation, no further roll
		return s.grant(e, player, task)
	}

	if s.rule.RollMandatory(e.item.Grade, e.bind) && len(s.eligible) > 1 {
		s.startRoll(e)
		return ClaimResult{Outcome: ClaimPending}
	}

	target := player
	switch s.rule.Method {
	case domain.MethodLootMaster:
		target = s.rule.LootMaster
	case domain.MethodRotateWinner:
		if len(s.eligible) > 1 {
			pick := s.pickRotation()
			if pick != 0 {
				// the pick receives the item right away; the caller only
				// hears "granted" when the pick is the caller
				e.claimant = pick
				res := s.grant(e, pick, task)
				if pick != player {
					return ClaimResult{Outcome: ClaimRefused, Reason: domain.FailAlreadyClaimed, Winner: pick}
				}
				return res
			}
		}
	}
	return s.grant(e, target, task)
}

// pickRotation draws the next turn holder uniformly among the eligible
// members who have not had one this cycle. The membership snapshot is
// taken once here; flags live on the shared membership records so roster
// changes and rotation state cannot drift apart.
func (s *Session) pickRotation() domain.PlayerID {
	if s.deps.roster == nil || s.team == 0 {
		return 0
	}
	var candidates []*gateway.RosterMember
	for _, member := range s.deps.roster.Members(s.team) {
		if member == nil || !s.isEligible(member.Player) {
			continue
		}
		candidates = append(candidates, member)
	}
	if len(candidates) == 0 {
		return 0
	}

	var fresh []*gateway.RosterMember
	for _, member := range candidates {
		if !member.HadTurn {
			fresh = append(fresh, member)
		}
	}
	if len(fresh) == 0 {
		for _, member := range candidates {
			member.HadTurn = false
		}
		fresh = candidates
	}

	pick := fresh[s.deps.rng.Intn(len(fresh))]
	pick.HadTurn = true
	return pick.Player
}

func (s *Session) startRoll(e *entry) {
	e.rolls = make(map[domain.PlayerID]domain.RollValue, len(s.eligible))
	for p := range s.eligible {
		e.rolls[p] = domain.RollPending
	}
	for p := range e.rolls {
		s.deps.notifier.RollRequested(p, s.unit, e.index, e.item)
	}
}

// SubmitRoll records one participant's tiebreak submission and, once the
// table is complete, resolves the winner. Submissions from players who are
// not pending participants are ignored.
func (s *Session) SubmitRoll(player domain.PlayerID, index domain.EntryIndex, wantsToRoll bool) {
	e, ok := s.entries[index]
	if !ok || !e.rolling() {
		return
	}
	current, participating := e.rolls[player]
	if !participating || current != domain.RollPending {
		return
	}

	value := domain.RollPassed
	if wantsToRoll {
		value = domain.RollValue(1 + s.deps.rng.Intn(MaxRollValue))
	}
	e.rolls[player] = value

	for to := range e.rolls {
		s.deps.notifier.RollResult(to, player, s.unit, e.index, value)
	}

	for _, v := range e.rolls {
		if v == domain.RollPending {
			return
		}
	}
	s.resolveRoll(e)
}

// ForceExpireRolls forces every non-responding participant to a pass and
// resolves any completed roll tables.
func (s *Session) ForceExpireRolls() {
	for _, e := range s.entries {
		if !e.rolling() {
			continue
		}
		for p, v := range e.rolls {
			if v == domain.RollPending {
				e.rolls[p] = domain.RollPassed
				for to := range e.rolls {
					s.deps.notifier.RollResult(to, p, s.unit, e.index, domain.RollPassed)
				}
			}
		}
		s.resolveRoll(e)
	}
}

func (s *Session) resolveRoll(e *entry) {
	table := make(map[domain.PlayerID]domain.RollValue, len(e.rolls))
	for p, v := range e.rolls {
		table[p] = v
	}
	for to := range e.rolls {
		s.deps.notifier.RollSummary(to, s.unit, e.index, table)
	}

	best := domain.RollPassed
	var winners []domain.PlayerID
	for p, v := range e.rolls {
		switch {
		case v > best:
			best = v
			winners = winners[:0]
			winners = append(winners, p)
		case v == best && v > 0:
			winners = append(winners, p)
		}
	}
	e.rolls = nil

	if best <= 0 {
		// Everyone passed: the entry stays contested but no further roll
		// is ever initiated for it.
		e.noRoll = true
		return
	}

	winner := winners[0]
	if len(winners) > 1 {
		winner = winners[s.deps.rng.Intn(len(winners))]
	}
	e.claimant = winner
	s.grant(e, winner, gateway.TaskLoot)
}

// grant hands the entry's item to the target. Coins are credited as funds;
// everything else deposits through the inventory gateway. On a failed
// deposit the claim state is left untouched so the same player can retry.
func (s *Session) grant(e *entry, target domain.PlayerID, task gateway.TaskTag) ClaimResult {
	if e.item.ItemID == domain.CoinItemID {
		s.deps.currency.Credit(target, int64(e.item.Quantity))
	} else {
		if s.deps.inventory.SpaceLeftFor(target, e.item.ItemID, e.item.Quantity) < e.item.Quantity {
			s.deps.notifier.ClaimFailed(target, s.unit, e.index, e.item.ItemID, domain.FailStorageFull)
			return ClaimResult{Outcome: ClaimRefused, Reason: domain.FailStorageFull, Winner: target}
		}
		syntheticID := e.itemUID
		e.itemUID = s.deps.itemIDs.Next()
		if !s.deps.inventory.Deposit(task, target, e.item.ItemID, e.item.Quantity, e.item.Grade) {
			s.deps.itemIDs.Release(e.itemUID)
			e.itemUID = syntheticID
			s.deps.notifier.ClaimFailed(target, s.unit, e.index, e.item.ItemID, domain.FailStorageFull)
			return ClaimResult{Outcome: ClaimRefused, Reason: domain.FailStorageFull, Winner: target}
		}
	}

	delete(s.entries, e.index)
	s.deps.notifier.ItemTaken(target, s.unit, e.index, e.itemUID, e.item)
	s.pushViewers()
	if len(s.entries) == 0 && s.onEmpty != nil {
		s.onEmpty()
	}
	return ClaimResult{Outcome: ClaimGranted, Winner: target}
}

func (s *Session) pushViewers() {
	for viewer := range s.openedBy {
		s.deps.notifier.BagContents(viewer, s.unit, s.RemainingEntries(viewer))
	}
}

// MakePublic force-expires pending rolls and opens every remaining entry
// to free claiming. Valid only once the session is old enough and only if
// the rule is not already public.
func (s *Session) MakePublic() error {
	if s.rule.Method == domain.MethodPublic {
		return errors.New(errors.CodeLootAlreadyPublic, "session is already public")
	}
	if s.deps.now().Sub(s.createdAt) < PublicAfter {
		return errors.New(errors.CodeLootSessionNotPublicYet, "session is not old enough to be made public")
	}
	s.ForceExpireRolls()
	s.rule.Method = domain.MethodPublic
	s.deps.notifier.LootableStateChanged(s.EligiblePlayers(), s.unit, len(s.entries) > 0)
	return nil
}
