// Package tracker accumulates per-attacker damage contributions for a
// defeated unit and derives who holds a legitimate claim on its loot.
//
// RecordDamage is the one loot-engine entry point reached from concurrent
// combat-calculation paths, so the tracker guards its state with a mutex.
// Everything downstream of it runs on the owning unit's tick.
package tracker

import (
	"sync"

	"github.com/louisbranch/spoils/internal/loot/domain"
	"github.com/louisbranch/spoils/internal/loot/gateway"
)

// Config wires the tracker's collaborator lookups.
type Config struct {
	// UnitMaxHealth is the owning unit's maximum health; claim thresholds
	// are percentages of it.
	UnitMaxHealth int64
	// ResolveOwner maps a raw attacker identity to the owning player,
	// folding companion damage into its owner. Unrecognized identities
	// are silently ignored.
	ResolveOwner func(attacker uint32) (domain.PlayerID, bool)
	// Roster resolves team membership for team claim aggregation.
	Roster gateway.Roster
	// InRange reports whether a player is within loot range of the unit.
	InRange func(player domain.PlayerID) bool
}

// Tracker is the per-unit damage contribution ledger.
type Tracker struct {
	mu sync.Mutex

	cfg           Config
	contributions map[domain.PlayerID]int64
	primary       domain.PlayerID
	claimingTeam  domain.TeamID
}

// New creates an empty tracker for one unit life-cycle.
func New(cfg Config) *Tracker {
	return &Tracker{
		cfg:           cfg,
		contributions: map[domain.PlayerID]int64{},
	}
}

// RecordDamage adds a damage contribution and recomputes the claim state.
// The first contributor becomes the primary claimant; a player whose own
// contribution exceeds half the unit's max health takes it over. Once a
// team's range-filtered aggregate exceeds half the unit's max health the
// team claim is set and never reverts for this life-cycle.
func (t *Tracker) RecordDamage(attacker uint32, amount int64) {
	if t == nil || t.cfg.ResolveOwner == nil {
		return
	}
	player, ok := t.cfg.ResolveOwner(attacker)
	if !ok || player == 0 {
		return
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	if _, seen := t.contributions[player]; !seen && t.primary == 0 {
		t.primary = player
	}
	t.contributions[player] += amount

	threshold := t.cfg.UnitMaxHealth / 2

	if t.contributions[player] > threshold {
		t.primary = player
	}

	team := domain.TeamID(0)
	if t.cfg.Roster != nil {
		team = t.cfg.Roster.TeamOf(player)
	}
	if team == 0 || t.claimingTeam != 0 {
		return
	}
	var teamDamage int64
	for _, member := range t.cfg.Roster.Members(team) {
		if member == nil {
			continue
		}
		if t.cfg.InRange != nil && !t.cfg.InRange(member.Player) {
			continue
		}
		teamDamage += t.contributions[member.Player]
	}
	if teamDamage > threshold {
		t.claimingTeam = team
	}
}

// PrimaryClaimant returns the player holding the individual claim.
func (t *Tracker) PrimaryClaimant() domain.PlayerID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.primary
}

// ClaimingTeam returns the team holding the group claim, or zero.
func (t *Tracker) ClaimingTeam() domain.TeamID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.claimingTeam
}

// Contribution returns one player's accumulated damage.
func (t *Tracker) Contribution(player domain.PlayerID) int64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.contributions[player]
}

// Contributors returns a snapshot of every player with a recorded
// contribution.
func (t *Tracker) Contributors() []domain.PlayerID {
	t.mu.Lock()
	defer t.mu.Unlock()
	players := make([]domain.PlayerID, 0, len(t.contributions))
	for player := range t.contributions {
		players = append(players, player)
	}
	return players
}

// Reset clears all claim state for a new unit life-cycle.
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.contributions = map[domain.PlayerID]int64{}
	t.primary = 0
	t.claimingTeam = 0
}
