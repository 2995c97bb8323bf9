package session

import (
	"context"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"github.com/louisbranch/spoils/internal/loot/domain"
	"github.com/louisbranch/spoils/internal/loot/gateway"
	"github.com/louisbranch/spoils/internal/loot/pack"
	"github.com/louisbranch/spoils/internal/loot/tracker"
	"github.com/louisbranch/spoils/internal/platform/errors"
	"github.com/louisbranch/spoils/internal/storage"
)

// Config wires a Manager's collaborators. Catalog, Generator, Inventory,
// Currency, Quests and Roster are required; the rest default to no-ops.
type Config struct {
	Catalog   storage.Catalog
	Generator *pack.Generator
	Inventory gateway.Inventory
	Currency  gateway.Currency
	Quests    gateway.Quests
	Roster    gateway.Roster
	Proximity gateway.Proximity
	Modifiers gateway.Modifiers
	ItemIDs   gateway.ItemIDs
	Spawns    gateway.Spawns
	Notifier  gateway.Notifier

	// Rand is the shared random source for rotation picks and tiebreaks.
	Rand *rand.Rand
	// Now is injected for tests. Defaults to time.Now.
	Now func() time.Time
}

// Manager is the session registry: one lazily created looting container
// per defeated unit, plus the per-unit eligibility trackers that feed
// them. The registry maps are the only state it locks; everything inside
// a session runs on the owning unit's tick.
type Manager struct {
	cfg  Config
	deps *deps

	mu       sync.Mutex
	sessions map[domain.UnitID]*Session
	trackers map[domain.UnitID]*tracker.Tracker
}

// NewManager creates an empty registry from the config.
func NewManager(cfg Config) (*Manager, error) {
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("catalog is required")
	}
	if cfg.Generator == nil {
		return nil, fmt.Errorf("pack generator is required")
	}
	if cfg.Inventory == nil || cfg.Currency == nil || cfg.Quests == nil || cfg.Roster == nil {
		return nil, fmt.Errorf("inventory, currency, quests and roster gateways are required")
	}
	if cfg.Rand == nil {
		return nil, fmt.Errorf("random source is required")
	}
	if cfg.Notifier == nil {
		cfg.Notifier = gateway.NopNotifier{}
	}
	if cfg.ItemIDs == nil {
		cfg.ItemIDs = sequentialItemIDs()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Manager{
		cfg: cfg,
		deps: &deps{
			inventory: cfg.Inventory,
			currency:  cfg.Currency,
			quests:    cfg.Quests,
			roster:    cfg.Roster,
			itemIDs:   cfg.ItemIDs,
			notifier:  cfg.Notifier,
			rng:       cfg.Rand,
			now:       cfg.Now,
		},
		sessions: map[domain.UnitID]*Session{},
		trackers: map[domain.UnitID]*tracker.Tracker{},
	}, nil
}

// RegisterUnit creates (or replaces) the eligibility tracker for a unit
// life-cycle. resolveOwner folds companion attackers into their owning
// player; a nil resolver treats attacker ids as player ids directly.
func (m *Manager) RegisterUnit(unit domain.UnitID, maxHealth int64, resolveOwner func(uint32) (domain.PlayerID, bool)) {
	if resolveOwner == nil {
		resolveOwner = func(attacker uint32) (domain.PlayerID, bool) {
			return domain.PlayerID(attacker), attacker != 0
		}
	}
	inRange := func(player domain.PlayerID) bool {
		if m.cfg.Proximity == nil {
			return true
		}
		return m.cfg.Proximity.InLootRange(player, unit)
	}
	t := tracker.New(tracker.Config{
		UnitMaxHealth: maxHealth,
		ResolveOwner:  resolveOwner,
		Roster:        m.cfg.Roster,
		InRange:       inRange,
	})
	m.mu.Lock()
	m.trackers[unit] = t
	m.mu.Unlock()
}

// RecordDamage feeds one damage event into the unit's tracker. Events for
// unregistered units are dropped.
func (m *Manager) RecordDamage(unit domain.UnitID, attacker uint32, amount int64) {
	m.mu.Lock()
	t := m.trackers[unit]
	m.mu.Unlock()
	t.RecordDamage(attacker, amount)
}

// ResetUnit discards the unit's session and claim state for a new
// life-cycle (respawn).
func (m *Manager) ResetUnit(unit domain.UnitID) {
	m.mu.Lock()
	delete(m.sessions, unit)
	if t := m.trackers[unit]; t != nil {
		t.Reset()
	}
	m.mu.Unlock()
}

// Session returns the unit's looting container, when one exists.
func (m *Manager) Session(unit domain.UnitID) (*Session, bool) {
	m.mu.Lock()
	s, ok := m.sessions[unit]
	m.mu.Unlock()
	return s, ok
}

// Sessions returns every live session sorted by unit id.
func (m *Manager) Sessions() []*Session {
	m.mu.Lock()
	all := make([]*Session, 0, len(m.sessions))
	for _, s := range m.sessions {
		all = append(all, s)
	}
	m.mu.Unlock()
	sort.Slice(all, func(i, j int) bool { return all[i].unit < all[j].unit })
	return all
}

// GenerateLoot rolls the unit's drop tables and creates its looting
// container. Idempotent: a unit that already has a session (or that
// produced no items) is left untouched and false is returned.
//
// Eligibility is frozen here: the claiming team's members when a team
// claim exists, otherwise the primary claimant, otherwise the sole
// killer. The team's live rule is cloned so later rule changes never
// alter this session.
func (m *Manager) GenerateLoot(ctx context.Context, unit domain.UnitID, unitTemplateID uint32, killer domain.PlayerID) (bool, error) {
	m.mu.Lock()
	_, exists := m.sessions[unit]
	t := m.trackers[unit]
	m.mu.Unlock()
	if exists {
		return false, nil
	}

	eligible, team := m.resolveEligibility(unit, t, killer)
	rule := m.resolveRule(team, killer)

	dropRate, goldRate := m.rateMultipliers(eligible)
	input := pack.Input{
		DropRate: dropRate,
		GoldRate: goldRate,
		Player: pack.PlayerContext{
			HasQuest: func(quest domain.QuestID) bool {
				return m.cfg.Quests.HasQuest(killer, quest)
			},
			SkillMultiplier: func(skillType uint32) float64 {
				if m.cfg.Modifiers == nil {
					return 1.0
				}
				return m.cfg.Modifiers.SkillLootMultiplier(killer, skillType)
			},
		},
	}

	packIDs, err := m.cfg.Catalog.PackIDsForUnit(ctx, unitTemplateID)
	if err != nil {
		return false, err
	}
	var items []domain.GeneratedItem
	for _, packID := range packIDs {
		generated, err := m.cfg.Generator.Generate(ctx, packID, input)
		if err != nil {
			return false, err
		}
		items = append(items, generated...)
	}
	if len(items) == 0 {
		return false, nil
	}

	s := newSession(m.deps, unit, rule, team, eligible, func() { m.sessionEmptied(unit) })
	s.addItems(items, func(item domain.ItemID) (domain.BindType, domain.QuestID) {
		tmpl, err := m.cfg.Catalog.ItemTemplate(ctx, item)
		if err != nil {
			return domain.BindNone, 0
		}
		return tmpl.BindType, tmpl.LootQuestID
	})

	m.mu.Lock()
	if _, raced := m.sessions[unit]; raced {
		m.mu.Unlock()
		return false, nil
	}
	m.sessions[unit] = s
	m.mu.Unlock()

	if m.cfg.Spawns != nil {
		m.cfg.Spawns.ExtendDespawn(unit, DespawnExtensionSeconds)
	}
	m.cfg.Notifier.LootableStateChanged(s.EligiblePlayers(), unit, true)
	return true, nil
}

// resolveEligibility freezes the claim set for a new session. Team members
// out of loot range at the moment of generation are excluded, the same way
// the tracker excludes their damage from the team aggregate.
func (m *Manager) resolveEligibility(unit domain.UnitID, t *tracker.Tracker, killer domain.PlayerID) ([]domain.PlayerID, domain.TeamID) {
	if t != nil {
		if team := t.ClaimingTeam(); team != 0 {
			var eligible []domain.PlayerID
			for _, member := range m.cfg.Roster.Members(team) {
				if member == nil {
					continue
				}
				if m.cfg.Proximity != nil && !m.cfg.Proximity.InLootRange(member.Player, unit) {
					continue
				}
				eligible = append(eligible, member.Player)
			}
			if len(eligible) > 0 {
				return eligible, team
			}
		}
		if primary := t.PrimaryClaimant(); primary != 0 {
			return []domain.PlayerID{primary}, 0
		}
	}
	return []domain.PlayerID{killer}, 0
}

func (m *Manager) resolveRule(team domain.TeamID, killer domain.PlayerID) domain.Rule {
	if team != 0 {
		if rule, ok := m.cfg.Roster.Rule(team); ok {
			return rule.Clone()
		}
		return domain.DefaultPartyRule()
	}
	return domain.SoloRule(killer)
}

// rateMultipliers converts the best per-player bonus percentages among the
// eligible players into drop and gold multipliers.
func (m *Manager) rateMultipliers(eligible []domain.PlayerID) (float64, float64) {
	if m.cfg.Modifiers == nil {
		return 1.0, 1.0
	}
	var bestDrop, bestGold float64
	for _, player := range eligible {
		if bonus := m.cfg.Modifiers.DropRateBonus(player); bonus > bestDrop {
			bestDrop = bonus
		}
		if bonus := m.cfg.Modifiers.GoldRateBonus(player); bonus > bestGold {
			bestGold = bonus
		}
	}
	return 1.0 + bestDrop/100, 1.0 + bestGold/100
}

// sessionEmptied runs when the last entry leaves a session: the container
// is dropped and the unit's despawn countdown collapses to the grace
// period.
func (m *Manager) sessionEmptied(unit domain.UnitID) {
	m.mu.Lock()
	s := m.sessions[unit]
	delete(m.sessions, unit)
	m.mu.Unlock()
	if s != nil {
		m.cfg.Notifier.LootableStateChanged(s.EligiblePlayers(), unit, false)
	}
	if m.cfg.Spawns != nil {
		m.cfg.Spawns.ShortenDespawn(unit, PostLootGraceSeconds)
	}
}

// AttemptClaim runs the claim protocol against the unit's session.
func (m *Manager) AttemptClaim(unit domain.UnitID, player domain.PlayerID, index domain.EntryIndex) ClaimResult {
	s, ok := m.Session(unit)
	if !ok {
		m.cfg.Notifier.ClaimFailed(player, unit, index, 0, domain.FailNotFound)
		return ClaimResult{Outcome: ClaimRefused, Reason: domain.FailNotFound}
	}
	return s.AttemptClaim(player, index)
}

// SubmitRoll records a tiebreak submission for the unit's session.
func (m *Manager) SubmitRoll(unit domain.UnitID, player domain.PlayerID, index domain.EntryIndex, wantsToRoll bool) {
	if s, ok := m.Session(unit); ok {
		s.SubmitRoll(player, index, wantsToRoll)
	}
}

// MakePublic opens the unit's session to free claiming.
func (m *Manager) MakePublic(unit domain.UnitID) error {
	s, ok := m.Session(unit)
	if !ok {
		return sessionNotFound(unit)
	}
	return s.MakePublic()
}

// ForceExpireRolls resolves every incomplete roll in the unit's session.
func (m *Manager) ForceExpireRolls(unit domain.UnitID) {
	if s, ok := m.Session(unit); ok {
		s.ForceExpireRolls()
	}
}

// OpenSession registers the player as a viewer and returns the visible
// entries. With lootAll set, every visible entry is claimed in index
// order first.
func (m *Manager) OpenSession(unit domain.UnitID, player domain.PlayerID, lootAll bool) ([]domain.EntrySummary, error) {
	s, ok := m.Session(unit)
	if !ok {
		return nil, sessionNotFound(unit)
	}
	if lootAll {
		s.LootAll(player)
		// the loot-all sweep may have emptied and dropped the session
		if _, alive := m.Session(unit); !alive {
			return nil, nil
		}
	}
	return s.Open(player), nil
}

// CloseSession removes the player from the viewer set. Closing a session
// that no longer exists is a no-op.
func (m *Manager) CloseSession(unit domain.UnitID, player domain.PlayerID) {
	if s, ok := m.Session(unit); ok {
		s.Close(player)
	}
}

// HasUnclaimedLoot reports whether the unit still holds claimable entries.
func (m *Manager) HasUnclaimedLoot(unit domain.UnitID) bool {
	s, ok := m.Session(unit)
	return ok && s.HasUnclaimed()
}

// RemainingEntries lists the viewer's visible entries for the unit.
func (m *Manager) RemainingEntries(unit domain.UnitID, viewer domain.PlayerID) ([]domain.EntrySummary, error) {
	s, ok := m.Session(unit)
	if !ok {
		return nil, sessionNotFound(unit)
	}
	return s.RemainingEntries(viewer), nil
}

// SetLootingRule validates and installs a team's live looting rule.
// Sessions already generated keep their cloned rule.
func (m *Manager) SetLootingRule(team domain.TeamID, rule domain.Rule) error {
	if err := rule.Validate(); err != nil {
		return err
	}
	members := m.cfg.Roster.Members(team)
	if len(members) == 0 {
		return errors.WithMetadata(errors.CodeRuleTeamNotFound, "team not found", map[string]string{
			"TeamID": fmt.Sprint(team),
		})
	}
	if rule.Method == domain.MethodLootMaster {
		found := false
		for _, member := range members {
			if member != nil && member.Player == rule.LootMaster {
				found = true
				break
			}
		}
		if !found {
			return errors.New(errors.CodeRuleMasterNotInTeam, "designated master is not a member of the team")
		}
	}
	return m.cfg.Roster.SetRule(team, rule)
}

func sessionNotFound(unit domain.UnitID) error {
	return errors.WithMetadata(errors.CodeLootSessionNotFound, "no loot session for unit", map[string]string{
		"UnitID": fmt.Sprint(unit),
	})
}

// sequentialItemIDs is the default durable-id source when the embedding
// world does not provide one.
func sequentialItemIDs() gateway.ItemIDs {
	return &seqIDs{}
}

type seqIDs struct {
	mu   sync.Mutex
	next uint64
}

func (s *seqIDs) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.next++
	return s.next
}

func (s *seqIDs) Release(uint64) {}
