package session

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/louisbranch/spoils/internal/loot/domain"
	"github.com/louisbranch/spoils/internal/loot/gateway"
	"github.com/louisbranch/spoils/internal/loot/pack"
	platformerrors "github.com/louisbranch/spoils/internal/platform/errors"
	"github.com/louisbranch/spoils/internal/storage"
)

type fakeCatalog struct {
	unitPacks     map[uint32][]uint32
	packs         map[uint32]storage.LootPack
	templates     map[domain.ItemID]storage.ItemTemplate
	distributions map[uint32]storage.GradeDistribution
}

func (f *fakeCatalog) PackIDsForUnit(ctx context.Context, unitTemplateID uint32) ([]uint32, error) {
	return f.unitPacks[unitTemplateID], nil
}

func (f *fakeCatalog) Pack(ctx context.Context, id uint32) (storage.LootPack, error) {
	p, ok := f.packs[id]
	if !ok {
		return storage.LootPack{}, storage.ErrNotFound
	}
	return p, nil
}

func (f *fakeCatalog) ItemTemplate(ctx context.Context, id domain.ItemID) (storage.ItemTemplate, error) {
	t, ok := f.templates[id]
	if !ok {
		return storage.ItemTemplate{}, storage.ErrNotFound
	}
	return t, nil
}

func (f *fakeCatalog) GradeDistribution(ctx context.Context, id uint32) (storage.GradeDistribution, error) {
	d, ok := f.distributions[id]
	if !ok {
		return storage.GradeDistribution{}, storage.ErrNotFound
	}
	return d, nil
}

type deposit struct {
	task     gateway.TaskTag
	player   domain.PlayerID
	item     domain.ItemID
	quantity int32
}

type fakeInventory struct {
	space        map[domain.PlayerID]int32
	deposits     []deposit
	failDeposits bool
}

func (f *fakeInventory) SpaceLeftFor(player domain.PlayerID, item domain.ItemID, quantity int32) int32 {
	if space, ok := f.space[player]; ok {
		return space
	}
	return 1 << 30
}

func (f *fakeInventory) Deposit(task gateway.TaskTag, player domain.PlayerID, item domain.ItemID, quantity int32, grade domain.Grade) bool {
	if f.failDeposits {
		return false
	}
	f.deposits = append(f.deposits, deposit{task: task, player: player, item: item, quantity: quantity})
	return true
}

type fakeCurrency struct {
	credits map[domain.PlayerID]int64
}

func (f *fakeCurrency) Credit(player domain.PlayerID, amount int64) {
	if f.credits == nil {
		f.credits = map[domain.PlayerID]int64{}
	}
	f.credits[player] += amount
}

type fakeQuests struct {
	held map[domain.PlayerID][]domain.QuestID
}

func (f *fakeQuests) HasQuest(player domain.PlayerID, quest domain.QuestID) bool {
	for _, q := range f.held[player] {
		if q == quest {
			return true
		}
	}
	return false
}

type fakeRoster struct {
	teams   map[domain.PlayerID]domain.TeamID
	members map[domain.TeamID][]*gateway.RosterMember
	rules   map[domain.TeamID]domain.Rule
}

func (f *fakeRoster) TeamOf(player domain.PlayerID) domain.TeamID {
	return f.teams[player]
}

func (f *fakeRoster) Members(team domain.TeamID) []*gateway.RosterMember {
	return f.members[team]
}

func (f *fakeRoster) Rule(team domain.TeamID) (domain.Rule, bool) {
	rule, ok := f.rules[team]
	return rule, ok
}

func (f *fakeRoster) SetRule(team domain.TeamID, rule domain.Rule) error {
	if f.rules == nil {
		f.rules = map[domain.TeamID]domain.Rule{}
	}
	f.rules[team] = rule
	return nil
}

type rollRequest struct {
	player domain.PlayerID
	index  domain.EntryIndex
}

type claimFail struct {
	player domain.PlayerID
	index  domain.EntryIndex
	reason domain.FailReason
}

type itemTaken struct {
	player domain.PlayerID
	index  domain.EntryIndex
	item   domain.ItemID
	uid    uint64
}

type fakeNotifier struct {
	gateway.NopNotifier

	rollRequests []rollRequest
	claimFails   []claimFail
	itemsTaken   []itemTaken
	summaries    []map[domain.PlayerID]domain.RollValue
	bagPushes    map[domain.PlayerID]int
}

func (f *fakeNotifier) RollRequested(player domain.PlayerID, unit domain.UnitID, index domain.EntryIndex, item domain.GeneratedItem) {
	f.rollRequests = append(f.rollRequests, rollRequest{player: player, index: index})
}

func (f *fakeNotifier) ClaimFailed(player domain.PlayerID, unit domain.UnitID, index domain.EntryIndex, item domain.ItemID, reason domain.FailReason) {
	f.claimFails = append(f.claimFails, claimFail{player: player, index: index, reason: reason})
}

func (f *fakeNotifier) ItemTaken(player domain.PlayerID, unit domain.UnitID, index domain.EntryIndex, itemUID uint64, item domain.GeneratedItem) {
	f.itemsTaken = append(f.itemsTaken, itemTaken{player: player, index: index, item: item.ItemID, uid: itemUID})
}

func (f *fakeNotifier) RollSummary(to domain.PlayerID, unit domain.UnitID, index domain.EntryIndex, rolls map[domain.PlayerID]domain.RollValue) {
	f.summaries = append(f.summaries, rolls)
}

func (f *fakeNotifier) BagContents(player domain.PlayerID, unit domain.UnitID, entries []domain.EntrySummary) {
	if f.bagPushes == nil {
		f.bagPushes = map[domain.PlayerID]int{}
	}
	f.bagPushes[player]++
}

type despawnChange struct {
	unit    domain.UnitID
	seconds float64
}

type fakeSpawns struct {
	extended  []despawnChange
	shortened []despawnChange
}

func (f *fakeSpawns) ExtendDespawn(unit domain.UnitID, seconds float64) {
	f.extended = append(f.extended, despawnChange{unit: unit, seconds: seconds})
}

func (f *fakeSpawns) ShortenDespawn(unit domain.UnitID, seconds float64) {
	f.shortened = append(f.shortened, despawnChange{unit: unit, seconds: seconds})
}

type fakeProximity struct {
	outOfRange map[domain.PlayerID]bool
}

func (f *fakeProximity) InLootRange(player domain.PlayerID, unit domain.UnitID) bool {
	return !f.outOfRange[player]
}

type fakeModifiers struct {
	drop map[domain.PlayerID]float64
	gold map[domain.PlayerID]float64
}

func (f *fakeModifiers) DropRateBonus(player domain.PlayerID) float64 { return f.drop[player] }
func (f *fakeModifiers) GoldRateBonus(player domain.PlayerID) float64 { return f.gold[player] }
func (f *fakeModifiers) SkillLootMultiplier(player domain.PlayerID, skillType uint32) float64 {
	return 1.0
}

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

type harness struct {
	manager   *Manager
	catalog   *fakeCatalog
	inventory *fakeInventory
	currency  *fakeCurrency
	quests    *fakeQuests
	roster    *fakeRoster
	notifier  *fakeNotifier
	spawns    *fakeSpawns
	proximity *fakeProximity
	modifiers *fakeModifiers
	clock     *fakeClock
}

// singleItemCatalog maps unit template 1 to one pack dropping the given
// items unconditionally.
func singleItemCatalog(items ...storage.LootEntry) *fakeCatalog {
	for i := range items {
		items[i].ID = uint32(i + 1)
		items[i].Group = 1
		items[i].AlwaysDrop = true
		if items[i].MinAmount == 0 {
			items[i].MinAmount = 1
		}
		if items[i].MaxAmount < items[i].MinAmount {
			items[i].MaxAmount = items[i].MinAmount
		}
	}
	return &fakeCatalog{
		unitPacks: map[uint32][]uint32{1: {100}},
		packs: map[uint32]storage.LootPack{
			100: {ID: 100, Entries: items},
		},
		templates: map[domain.ItemID]storage.ItemTemplate{},
	}
}

func newHarness(t *testing.T, catalog *fakeCatalog) *harness {
	t.Helper()
	h := &harness{
		catalog:   catalog,
		inventory: &fakeInventory{},
		currency:  &fakeCurrency{},
		quests:    &fakeQuests{},
		roster:    &fakeRoster{},
		notifier:  &fakeNotifier{},
		spawns:    &fakeSpawns{},
		proximity: &fakeProximity{},
		modifiers: &fakeModifiers{},
		clock:     &fakeClock{now: time.Unix(1_000_000, 0)},
	}
	gen, err := pack.NewGenerator(pack.Config{
		Catalog: catalog,
		Rand:    rand.New(rand.NewSource(7)),
	})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	h.manager, err = NewManager(Config{
		Catalog:   catalog,
		Generator: gen,
		Inventory: h.inventory,
		Currency:  h.currency,
		Quests:    h.quests,
		Roster:    h.roster,
		Proximity: h.proximity,
		Modifiers: h.modifiers,
		Spawns:    h.spawns,
		Notifier:  h.notifier,
		Rand:      rand.New(rand.NewSource(11)),
		Now:       h.clock.Now,
	})
	if err != nil {
		t.Fatalf("NewManager: %v", err)
	}
	return h
}

func (h *harness) generate(t *testing.T, unit domain.UnitID, killer domain.PlayerID) {
	t.Helper()
	created, err := h.manager.GenerateLoot(context.Background(), unit, 1, killer)
	if err != nil {
		t.Fatalf("GenerateLoot: %v", err)
	}
	if !created {
		t.Fatal("expected loot generation to create a session")
	}
}

// team wires a party of the given players with the rule installed.
func (h *harness) team(id domain.TeamID, rule domain.Rule, players ...domain.PlayerID) {
	h.roster.teams = map[domain.PlayerID]domain.TeamID{}
	members := make([]*gateway.RosterMember, 0, len(players))
	for _, p := range players {
		h.roster.teams[p] = id
		members = append(members, &gateway.RosterMember{Player: p})
	}
	h.roster.members = map[domain.TeamID][]*gateway.RosterMember{id: members}
	h.roster.rules = map[domain.TeamID]domain.Rule{id: rule}
}

// teamKill registers the unit and records enough team damage to establish
// the team claim.
func (h *harness) teamKill(t *testing.T, unit domain.UnitID, players ...domain.PlayerID) {
	t.Helper()
	h.manager.RegisterUnit(unit, 100, nil)
	for _, p := range players {
		h.manager.RecordDamage(unit, uint32(p), 60)
	}
	if got := h.manager.Sessions(); len(got) != 0 {
		t.Fatalf("no session expected before generation, got %d", len(got))
	}
}

func TestGenerateLootIdempotent(t *testing.T) {
	h := newHarness(t, singleItemCatalog(storage.LootEntry{ItemID: 1000}))
	h.generate(t, 5, 1)

	created, err := h.manager.GenerateLoot(context.Background(), 5, 1, 1)
	if err != nil {
		t.Fatalf("GenerateLoot: %v", err)
	}
	if created {
		t.Fatal("second generation must be a no-op")
	}
	entries, err := h.manager.RemainingEntries(5, 1)
	if err != nil {
		t.Fatalf("RemainingEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
}

func TestGenerateLootNoItemsNoSession(t *testing.T) {
	catalog := &fakeCatalog{
		unitPacks: map[uint32][]uint32{1: {100}},
		packs: map[uint32]storage.LootPack{
			100: {ID: 100, Entries: []storage.LootEntry{
				{ID: 1, Group: 1, ItemID: 1000, DropRate: 0, MinAmount: 1, MaxAmount: 1},
			}},
		},
	}
	h := newHarness(t, catalog)

	created, err := h.manager.GenerateLoot(context.Background(), 5, 1, 1)
	if err != nil {
		t.Fatalf("GenerateLoot: %v", err)
	}
	if created {
		t.Fatal("empty generation must not create a session")
	}
	if h.manager.HasUnclaimedLoot(5) {
		t.Fatal("no loot expected")
	}
}

func TestSoloKillClaimsImmediately(t *testing.T) {
	h := newHarness(t, singleItemCatalog(storage.LootEntry{ItemID: 1000}))
	h.generate(t, 5, 1)

	res := h.manager.AttemptClaim(5, 1, 1)
	if res.Outcome != ClaimGranted || res.Winner != 1 {
		t.Fatalf("expected immediate grant to killer, got %+v", res)
	}
	if len(h.inventory.deposits) != 1 || h.inventory.deposits[0].item != 1000 {
		t.Fatalf("unexpected deposits: %+v", h.inventory.deposits)
	}
	if h.manager.HasUnclaimedLoot(5) {
		t.Fatal("session should be empty")
	}
}

func TestDespawnHooks(t *testing.T) {
	h := newHarness(t, singleItemCatalog(storage.LootEntry{ItemID: 1000}))
	h.generate(t, 5, 1)

	if len(h.spawns.extended) != 1 || h.spawns.extended[0].seconds != DespawnExtensionSeconds {
		t.Fatalf("expected despawn extension on generation, got %+v", h.spawns.extended)
	}

	h.manager.AttemptClaim(5, 1, 1)
	if len(h.spawns.shortened) != 1 || h.spawns.shortened[0].seconds != PostLootGraceSeconds {
		t.Fatalf("expected grace period after last entry, got %+v", h.spawns.shortened)
	}
}

func TestCoinsCreditedAsFunds(t *testing.T) {
	h := newHarness(t, singleItemCatalog(storage.LootEntry{ItemID: domain.CoinItemID, MinAmount: 100, MaxAmount: 100}))
	h.generate(t, 5, 1)

	res := h.manager.AttemptClaim(5, 1, 1)
	if res.Outcome != ClaimGranted {
		t.Fatalf("expected grant, got %+v", res)
	}
	if h.currency.credits[1] != 100 {
		t.Fatalf("expected 100 credited, got %d", h.currency.credits[1])
	}
	if len(h.inventory.deposits) != 0 {
		t.Fatalf("coins must not deposit as items: %+v", h.inventory.deposits)
	}
}

func TestGoldRateBonusScalesCoins(t *testing.T) {
	h := newHarness(t, singleItemCatalog(storage.LootEntry{ItemID: domain.CoinItemID, MinAmount: 100, MaxAmount: 100}))
	h.modifiers.gold = map[domain.PlayerID]float64{1: 100}
	h.generate(t, 5, 1)

	h.manager.AttemptClaim(5, 1, 1)
	if h.currency.credits[1] != 200 {
		t.Fatalf("expected doubled coin quantity, got %d", h.currency.credits[1])
	}
}

func TestQuestGating(t *testing.T) {
	catalog := singleItemCatalog(storage.LootEntry{ItemID: 2000})
	catalog.templates[2000] = storage.ItemTemplate{ID: 2000, LootQuestID: 77}
	h := newHarness(t, catalog)
	h.quests.held = map[domain.PlayerID][]domain.QuestID{1: {77}}
	h.generate(t, 5, 1)

	// a viewer without the quest never sees the entry
	entries, err := h.manager.RemainingEntries(5, 2)
	if err != nil {
		t.Fatalf("RemainingEntries: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("quest-gated entry visible without the quest: %+v", entries)
	}

	res := h.manager.AttemptClaim(5, 2, 1)
	if res.Outcome != ClaimRefused || res.Reason != domain.FailQuestRequired {
		t.Fatalf("expected quest-required refusal, got %+v", res)
	}

	res = h.manager.AttemptClaim(5, 1, 1)
	if res.Outcome != ClaimGranted {
		t.Fatalf("quest holder should claim, got %+v", res)
	}
}

func TestStorageFullRetry(t *testing.T) {
	h := newHarness(t, singleItemCatalog(storage.LootEntry{ItemID: 1000}))
	h.generate(t, 5, 1)
	h.inventory.space = map[domain.PlayerID]int32{1: 0}

	res := h.manager.AttemptClaim(5, 1, 1)
	if res.Outcome != ClaimRefused || res.Reason != domain.FailStorageFull {
		t.Fatalf("expected storage-full refusal, got %+v", res)
	}
	if !h.manager.HasUnclaimedLoot(5) {
		t.Fatal("entry must survive a failed grant")
	}

	h.inventory.space = nil
	res = h.manager.AttemptClaim(5, 1, 1)
	if res.Outcome != ClaimGranted {
		t.Fatalf("retry after freeing storage should grant, got %+v", res)
	}
}

func TestContestedRollResolvesToHigherRoll(t *testing.T) {
	catalog := singleItemCatalog(storage.LootEntry{ItemID: 3000, GradeID: 5})
	h := newHarness(t, catalog)
	h.team(9, domain.DefaultPartyRule(), 1, 2)
	h.teamKill(t, 5, 1, 2)
	h.generate(t, 5, 1)

	res := h.manager.AttemptClaim(5, 1, 1)
	if res.Outcome != ClaimPending {
		t.Fatalf("first claim must start a roll, got %+v", res)
	}
	if len(h.notifier.rollRequests) != 2 {
		t.Fatalf("both participants must be asked to roll, got %+v", h.notifier.rollRequests)
	}

	// a second attempt while the roll collects stays pending
	res = h.manager.AttemptClaim(5, 2, 1)
	if res.Outcome != ClaimPending {
		t.Fatalf("claim during roll must stay pending, got %+v", res)
	}

	h.manager.SubmitRoll(5, 1, 1, true)
	if len(h.notifier.itemsTaken) != 0 {
		t.Fatal("roll must not resolve before all participants respond")
	}
	h.manager.SubmitRoll(5, 2, 1, true)

	if len(h.notifier.itemsTaken) != 1 {
		t.Fatalf("exactly one grant expected, got %+v", h.notifier.itemsTaken)
	}
	if len(h.notifier.summaries) != 2 {
		t.Fatalf("both participants should get the roll table, got %d", len(h.notifier.summaries))
	}
	table := h.notifier.summaries[0]
	winner := h.notifier.itemsTaken[0].player
	for player, value := range table {
		if value > table[winner] {
			t.Fatalf("player %d rolled %d > winner %d's %d", player, value, winner, table[winner])
		}
	}
	if h.manager.HasUnclaimedLoot(5) {
		t.Fatal("entry should be removed after the grant")
	}
}

func TestPublicMethodNeverRolls(t *testing.T) {
	catalog := singleItemCatalog(storage.LootEntry{ItemID: 3000, GradeID: 11})
	catalog.templates[3000] = storage.ItemTemplate{ID: 3000, BindType: domain.BindOnPickup}
	h := newHarness(t, catalog)
	rule := domain.Rule{Method: domain.MethodPublic, MinimumGrade: 1, RollForBindOnPickup: true}
	h.team(9, rule, 1, 2)
	h.teamKill(t, 5, 1, 2)
	h.generate(t, 5, 1)

	res := h.manager.AttemptClaim(5, 2, 1)
	if res.Outcome != ClaimGranted {
		t.Fatalf("public method must grant immediately, got %+v", res)
	}
	if len(h.notifier.rollRequests) != 0 {
		t.Fatalf("no roll may start under the public method: %+v", h.notifier.rollRequests)
	}
}

func TestRotationFairness(t *testing.T) {
	catalog := singleItemCatalog(
		storage.LootEntry{ItemID: 1000},
		storage.LootEntry{ItemID: 1001},
		storage.LootEntry{ItemID: 1002},
	)
	h := newHarness(t, catalog)
	rule := domain.Rule{Method: domain.MethodRotateWinner}
	h.team(9, rule, 1, 2, 3)
	h.teamKill(t, 5, 1, 2, 3)
	h.generate(t, 5, 1)

	winners := map[domain.PlayerID]int{}
	for index := domain.EntryIndex(1); index <= 3; index++ {
		res := h.manager.AttemptClaim(5, 1, index)
		switch res.Outcome {
		case ClaimGranted:
			if res.Winner != 1 {
				t.Fatalf("entry %d granted to %d through player 1's call", index, res.Winner)
			}
		case ClaimRefused:
			// the turn went to someone else; they were granted directly
			if res.Reason != domain.FailAlreadyClaimed || res.Winner == 1 {
				t.Fatalf("entry %d unexpected refusal: %+v", index, res)
			}
		default:
			t.Fatalf("entry %d unexpected outcome: %+v", index, res)
		}
		winners[res.Winner]++
	}
	if len(winners) != 3 {
		t.Fatalf("each member must win exactly once per cycle, got %v", winners)
	}
	if len(h.notifier.itemsTaken) != 3 {
		t.Fatalf("every entry must be delivered during the cycle, got %+v", h.notifier.itemsTaken)
	}
}

func TestRotationPickGrantedImmediately(t *testing.T) {
	h := newHarness(t, singleItemCatalog(storage.LootEntry{ItemID: 1000}))
	rule := domain.Rule{Method: domain.MethodRotateWinner}
	h.team(9, rule, 1, 2)
	h.teamKill(t, 5, 1, 2)
	h.generate(t, 5, 1)

	// the pick receives the item on this single call, whoever it is;
	// the caller only hears "granted" when the pick is the caller
	res := h.manager.AttemptClaim(5, 1, 1)
	switch res.Outcome {
	case ClaimGranted:
		if res.Winner != 1 {
			t.Fatalf("granted result must name the caller, got %+v", res)
		}
	case ClaimRefused:
		if res.Reason != domain.FailAlreadyClaimed || res.Winner != 2 {
			t.Fatalf("expected already-claimed naming the other member, got %+v", res)
		}
	default:
		t.Fatalf("unexpected outcome: %+v", res)
	}

	if len(h.notifier.itemsTaken) != 1 || h.notifier.itemsTaken[0].player != res.Winner {
		t.Fatalf("item must reach the pick without a second call: %+v", h.notifier.itemsTaken)
	}
	if len(h.inventory.deposits) != 1 || h.inventory.deposits[0].player != res.Winner {
		t.Fatalf("deposit must target the pick: %+v", h.inventory.deposits)
	}
	if h.manager.HasUnclaimedLoot(5) {
		t.Fatal("entry must be removed after the rotation grant")
	}
}

func TestLootMasterReceivesGrants(t *testing.T) {
	h := newHarness(t, singleItemCatalog(storage.LootEntry{ItemID: 1000}))
	rule := domain.Rule{Method: domain.MethodLootMaster, LootMaster: 2}
	h.team(9, rule, 1, 2)
	h.teamKill(t, 5, 1, 2)
	h.generate(t, 5, 1)

	res := h.manager.AttemptClaim(5, 1, 1)
	if res.Outcome != ClaimGranted || res.Winner != 2 {
		t.Fatalf("grant must route to the master, got %+v", res)
	}
	if len(h.inventory.deposits) != 1 || h.inventory.deposits[0].player != 2 {
		t.Fatalf("deposit must target the master: %+v", h.inventory.deposits)
	}
}

func TestAllPassAbandonsRoll(t *testing.T) {
	catalog := singleItemCatalog(storage.LootEntry{ItemID: 3000, GradeID: 5})
	h := newHarness(t, catalog)
	h.team(9, domain.DefaultPartyRule(), 1, 2)
	h.teamKill(t, 5, 1, 2)
	h.generate(t, 5, 1)

	h.manager.AttemptClaim(5, 1, 1)
	h.manager.SubmitRoll(5, 1, 1, false)
	h.manager.SubmitRoll(5, 2, 1, false)

	if len(h.notifier.itemsTaken) != 0 {
		t.Fatalf("all-pass must not grant: %+v", h.notifier.itemsTaken)
	}
	if !h.manager.HasUnclaimedLoot(5) {
		t.Fatal("entry must remain after an abandoned roll")
	}

	// no further roll: the next attempt claims outright
	res := h.manager.AttemptClaim(5, 2, 1)
	if res.Outcome != ClaimGranted || res.Winner != 2 {
		t.Fatalf("post-abandon claim must grant immediately, got %+v", res)
	}
	if len(h.notifier.rollRequests) != 2 {
		t.Fatalf("no second roll may start, got %+v", h.notifier.rollRequests)
	}
}

func TestForceExpireRollsResolvesWithResponders(t *testing.T) {
	catalog := singleItemCatalog(storage.LootEntry{ItemID: 3000, GradeID: 5})
	h := newHarness(t, catalog)
	h.team(9, domain.DefaultPartyRule(), 1, 2)
	h.teamKill(t, 5, 1, 2)
	h.generate(t, 5, 1)

	h.manager.AttemptClaim(5, 1, 1)
	h.manager.SubmitRoll(5, 1, 1, true)
	h.manager.ForceExpireRolls(5)

	if len(h.notifier.itemsTaken) != 1 || h.notifier.itemsTaken[0].player != 1 {
		t.Fatalf("the sole responder must win, got %+v", h.notifier.itemsTaken)
	}
}

func TestStorageFullAfterRollKeepsClaimant(t *testing.T) {
	catalog := singleItemCatalog(storage.LootEntry{ItemID: 3000, GradeID: 5})
	h := newHarness(t, catalog)
	h.team(9, domain.DefaultPartyRule(), 1, 2)
	h.teamKill(t, 5, 1, 2)
	h.generate(t, 5, 1)
	h.inventory.space = map[domain.PlayerID]int32{1: 0, 2: 0}

	h.manager.AttemptClaim(5, 1, 1)
	h.manager.SubmitRoll(5, 1, 1, true)
	h.manager.SubmitRoll(5, 2, 1, false)
	// player 1 won the roll but had no room

	res := h.manager.AttemptClaim(5, 2, 1)
	if res.Outcome != ClaimRefused || res.Reason != domain.FailAlreadyClaimed {
		t.Fatalf("the roll winner keeps the claim, got %+v", res)
	}

	h.inventory.space = nil
	res = h.manager.AttemptClaim(5, 1, 1)
	if res.Outcome != ClaimGranted || res.Winner != 1 {
		t.Fatalf("roll winner must collect after freeing storage, got %+v", res)
	}
}

func TestMakePublicTimeoutRelease(t *testing.T) {
	catalog := singleItemCatalog(storage.LootEntry{ItemID: 3000, GradeID: 5})
	h := newHarness(t, catalog)
	h.team(9, domain.DefaultPartyRule(), 1, 2)
	h.teamKill(t, 5, 1, 2)
	h.generate(t, 5, 1)

	// an unresolved mandatory roll is in flight
	h.manager.AttemptClaim(5, 1, 1)

	err := h.manager.MakePublic(5)
	if !platformerrors.IsCode(err, platformerrors.CodeLootSessionNotPublicYet) {
		t.Fatalf("expected not-public-yet error, got %v", err)
	}

	h.clock.Advance(PublicAfter)
	if err := h.manager.MakePublic(5); err != nil {
		t.Fatalf("MakePublic: %v", err)
	}

	err = h.manager.MakePublic(5)
	if !platformerrors.IsCode(err, platformerrors.CodeLootAlreadyPublic) {
		t.Fatalf("expected already-public error, got %v", err)
	}
}

func TestMakePublicOpensToEveryone(t *testing.T) {
	h := newHarness(t, singleItemCatalog(storage.LootEntry{ItemID: 1000}))
	h.generate(t, 5, 1)

	// player 9 is not in the eligible set
	res := h.manager.AttemptClaim(5, 9, 1)
	if res.Outcome != ClaimRefused {
		t.Fatalf("ineligible player must be refused, got %+v", res)
	}

	h.clock.Advance(PublicAfter)
	if err := h.manager.MakePublic(5); err != nil {
		t.Fatalf("MakePublic: %v", err)
	}

	res = h.manager.AttemptClaim(5, 9, 1)
	if res.Outcome != ClaimGranted || res.Winner != 9 {
		t.Fatalf("public session must accept any claimer, got %+v", res)
	}
}

func TestOpenSessionLootAll(t *testing.T) {
	catalog := singleItemCatalog(
		storage.LootEntry{ItemID: 1000},
		storage.LootEntry{ItemID: 1001},
		storage.LootEntry{ItemID: domain.CoinItemID, MinAmount: 50, MaxAmount: 50},
	)
	h := newHarness(t, catalog)
	h.generate(t, 5, 1)

	entries, err := h.manager.OpenSession(5, 1, true)
	if err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("loot-all should empty the bag, got %+v", entries)
	}
	if len(h.inventory.deposits) != 2 {
		t.Fatalf("expected 2 deposits, got %+v", h.inventory.deposits)
	}
	for _, d := range h.inventory.deposits {
		if d.task != gateway.TaskLootAll {
			t.Fatalf("loot-all deposits must carry the loot-all tag: %+v", d)
		}
	}
	if h.currency.credits[1] != 50 {
		t.Fatalf("coin entry must credit funds, got %d", h.currency.credits[1])
	}
}

func TestViewersReceiveBagUpdates(t *testing.T) {
	catalog := singleItemCatalog(
		storage.LootEntry{ItemID: 1000},
		storage.LootEntry{ItemID: 1001},
	)
	h := newHarness(t, catalog)
	h.generate(t, 5, 1)

	if _, err := h.manager.OpenSession(5, 1, false); err != nil {
		t.Fatalf("OpenSession: %v", err)
	}
	if h.notifier.bagPushes[1] != 1 {
		t.Fatalf("open must push the bag once, got %d", h.notifier.bagPushes[1])
	}

	h.manager.AttemptClaim(5, 1, 1)
	if h.notifier.bagPushes[1] != 2 {
		t.Fatalf("claims must push updates to viewers, got %d", h.notifier.bagPushes[1])
	}

	h.manager.CloseSession(5, 1)
	h.manager.AttemptClaim(5, 1, 2)
	if h.notifier.bagPushes[1] != 2 {
		t.Fatalf("closed viewers must not receive pushes, got %d", h.notifier.bagPushes[1])
	}
}

func TestSessionRuleUnaffectedByLaterRuleChange(t *testing.T) {
	catalog := singleItemCatalog(storage.LootEntry{ItemID: 3000, GradeID: 5})
	h := newHarness(t, catalog)
	h.team(9, domain.DefaultPartyRule(), 1, 2)
	h.teamKill(t, 5, 1, 2)
	h.generate(t, 5, 1)

	public := domain.Rule{Method: domain.MethodPublic}
	if err := h.manager.SetLootingRule(9, public); err != nil {
		t.Fatalf("SetLootingRule: %v", err)
	}

	// the session still enforces the cloned party rule
	res := h.manager.AttemptClaim(5, 1, 1)
	if res.Outcome != ClaimPending {
		t.Fatalf("session rule must be the generation-time clone, got %+v", res)
	}
}

func TestSetLootingRuleValidation(t *testing.T) {
	h := newHarness(t, singleItemCatalog(storage.LootEntry{ItemID: 1000}))
	h.team(9, domain.DefaultPartyRule(), 1, 2)

	err := h.manager.SetLootingRule(9, domain.Rule{})
	if !platformerrors.IsCode(err, platformerrors.CodeRuleInvalidMethod) {
		t.Fatalf("expected invalid-method error, got %v", err)
	}

	err = h.manager.SetLootingRule(42, domain.Rule{Method: domain.MethodFreeForAll})
	if !platformerrors.IsCode(err, platformerrors.CodeRuleTeamNotFound) {
		t.Fatalf("expected team-not-found error, got %v", err)
	}

	err = h.manager.SetLootingRule(9, domain.Rule{Method: domain.MethodLootMaster, LootMaster: 42})
	if !platformerrors.IsCode(err, platformerrors.CodeRuleMasterNotInTeam) {
		t.Fatalf("expected master-not-in-team error, got %v", err)
	}

	if err := h.manager.SetLootingRule(9, domain.Rule{Method: domain.MethodLootMaster, LootMaster: 2}); err != nil {
		t.Fatalf("SetLootingRule: %v", err)
	}
	if rule, _ := h.roster.Rule(9); rule.LootMaster != 2 {
		t.Fatalf("rule not installed: %+v", rule)
	}
}

func TestResetUnitDropsSessionAndClaims(t *testing.T) {
	h := newHarness(t, singleItemCatalog(storage.LootEntry{ItemID: 1000}))
	h.manager.RegisterUnit(5, 100, nil)
	h.manager.RecordDamage(5, 1, 60)
	h.generate(t, 5, 1)

	h.manager.ResetUnit(5)
	if h.manager.HasUnclaimedLoot(5) {
		t.Fatal("reset must drop the session")
	}
	res := h.manager.AttemptClaim(5, 1, 1)
	if res.Outcome != ClaimRefused || res.Reason != domain.FailNotFound {
		t.Fatalf("expected not-found refusal after reset, got %+v", res)
	}
}

func TestClaimUnknownEntry(t *testing.T) {
	h := newHarness(t, singleItemCatalog(storage.LootEntry{ItemID: 1000}))
	h.generate(t, 5, 1)

	res := h.manager.AttemptClaim(5, 1, 99)
	if res.Outcome != ClaimRefused || res.Reason != domain.FailNotFound {
		t.Fatalf("expected not-found refusal, got %+v", res)
	}
	if len(h.notifier.claimFails) != 1 || h.notifier.claimFails[0].reason != domain.FailNotFound {
		t.Fatalf("refusal must notify, got %+v", h.notifier.claimFails)
	}
}

func TestOutOfRangeMembersExcludedFromEligibility(t *testing.T) {
	h := newHarness(t, singleItemCatalog(storage.LootEntry{ItemID: 1000}))
	h.team(9, domain.DefaultPartyRule(), 1, 2, 3)
	h.teamKill(t, 5, 1, 2, 3)

	// player 2 wandered off before the kill resolved
	h.proximity.outOfRange = map[domain.PlayerID]bool{2: true}
	h.generate(t, 5, 1)

	sess, ok := h.manager.Session(5)
	if !ok {
		t.Fatal("session expected")
	}
	eligible := sess.EligiblePlayers()
	if len(eligible) != 2 || eligible[0] != 1 || eligible[1] != 3 {
		t.Fatalf("eligible = %v, want the in-range members [1 3]", eligible)
	}

	res := h.manager.AttemptClaim(5, 2, 1)
	if res.Outcome != ClaimRefused {
		t.Fatalf("out-of-range member must not hold a claim, got %+v", res)
	}
}

func TestGrantSwapsSyntheticForDurableID(t *testing.T) {
	h := newHarness(t, singleItemCatalog(storage.LootEntry{ItemID: 1000}))
	h.generate(t, 5, 1)

	res := h.manager.AttemptClaim(5, 1, 1)
	if res.Outcome != ClaimGranted {
		t.Fatalf("expected grant, got %+v", res)
	}
	if len(h.notifier.itemsTaken) != 1 {
		t.Fatalf("one delivery expected, got %+v", h.notifier.itemsTaken)
	}
	got := h.notifier.itemsTaken[0].uid
	if got == domain.SyntheticItemID(5, 1) {
		t.Fatal("delivered item still carries the synthetic bag identifier")
	}
	if got == 0 {
		t.Fatal("delivered item has no durable identifier")
	}
}

func TestFailedDepositRestoresSyntheticID(t *testing.T) {
	h := newHarness(t, singleItemCatalog(storage.LootEntry{ItemID: 1000}))
	h.generate(t, 5, 1)
	h.inventory.failDeposits = true

	res := h.manager.AttemptClaim(5, 1, 1)
	if res.Outcome != ClaimRefused || res.Reason != domain.FailStorageFull {
		t.Fatalf("expected storage-full refusal, got %+v", res)
	}

	h.inventory.failDeposits = false
	res = h.manager.AttemptClaim(5, 1, 1)
	if res.Outcome != ClaimGranted {
		t.Fatalf("retry should grant, got %+v", res)
	}
	// the failed attempt's identifier was released; the retry draws a
	// fresh one instead of reusing a dangling value
	first := domain.SyntheticItemID(5, 1)
	got := h.notifier.itemsTaken[0].uid
	if got == first || got == 0 {
		t.Fatalf("uid = %d, want a durable identifier", got)
	}
}
