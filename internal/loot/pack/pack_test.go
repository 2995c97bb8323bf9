package pack

import (
	"context"
	"math/rand"
	"testing"

	"github.com/louisbranch/spoils/internal/loot/domain"
	platformerrors "github.com/louisbranch/spoils/internal/platform/errors"
	"github.com/louisbranch/spoils/internal/storage"
)

type fakeCatalog struct {
	packs         map[uint32]storage.LootPack
	templates     map[domain.ItemID]storage.ItemTemplate
	distributions map[uint32]storage.GradeDistribution
}

func (f *fakeCatalog) PackIDsForUnit(ctx context.Context, unitTemplateID uint32) ([]uint32, error) {
	return nil, storage.ErrNotFound
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

func newTestGenerator(t *testing.T, catalog *fakeCatalog) *Generator {
	t.Helper()
	gen, err := NewGenerator(Config{
		Catalog: catalog,
		Rand:    rand.New(rand.NewSource(1)),
	})
	if err != nil {
		t.Fatalf("NewGenerator: %v", err)
	}
	return gen
}

func TestGenerateAlwaysDrop(t *testing.T) {
	catalog := &fakeCatalog{
		packs: map[uint32]storage.LootPack{
			1: {
				ID: 1,
				Entries: []storage.LootEntry{
					{ID: 10, Group: 1, ItemID: 1000, DropRate: 1, MinAmount: 1, MaxAmount: 1, GradeID: 0, AlwaysDrop: true},
					{ID: 11, Group: 1, ItemID: 1001, DropRate: storage.ItemRateScale, MinAmount: 2, MaxAmount: 2},
				},
			},
		},
	}
	gen := newTestGenerator(t, catalog)

	items, err := gen.Generate(context.Background(), 1, Input{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(items))
	}
	if items[0].ItemID != 1000 || items[0].Quantity != 1 {
		t.Errorf("unexpected first item: %+v", items[0])
	}
	if items[1].ItemID != 1001 || items[1].Quantity != 2 {
		t.Errorf("unexpected second item: %+v", items[1])
	}
}

func TestGenerateZeroRateNeverDrops(t *testing.T) {
	catalog := &fakeCatalog{
		packs: map[uint32]storage.LootPack{
			1: {
				ID: 1,
				Entries: []storage.LootEntry{
					{ID: 10, Group: 1, ItemID: 1000, DropRate: 0, MinAmount: 1, MaxAmount: 1},
				},
			},
		},
	}
	gen := newTestGenerator(t, catalog)

	for i := 0; i < 50; i++ {
		items, err := gen.Generate(context.Background(), 1, Input{})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(items) != 0 {
			t.Fatalf("zero-rate entry dropped: %+v", items)
		}
	}
}

func TestGenerateGroupZeroUnconditional(t *testing.T) {
	catalog := &fakeCatalog{
		packs: map[uint32]storage.LootPack{
			1: {
				ID: 1,
				Entries: []storage.LootEntry{
					// Group 0 entries skip both the group gate and the
					// per-item roll.
					{ID: 10, Group: 0, ItemID: 1000, DropRate: 0, MinAmount: 1, MaxAmount: 1},
				},
				Groups: map[uint32]storage.LootGroup{
					0: {GroupNo: 0, DropRate: 0},
				},
			},
		},
	}
	gen := newTestGenerator(t, catalog)

	items, err := gen.Generate(context.Background(), 1, Input{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(items) != 1 || items[0].ItemID != 1000 {
		t.Fatalf("expected group 0 entry, got %+v", items)
	}
}

func TestGenerateGroupGate(t *testing.T) {
	catalog := &fakeCatalog{
		packs: map[uint32]storage.LootPack{
			1: {
				ID: 1,
				Entries: []storage.LootEntry{
					{ID: 10, Group: 2, ItemID: 1000, AlwaysDrop: true, MinAmount: 1, MaxAmount: 1},
					{ID: 11, Group: 3, ItemID: 1001, AlwaysDrop: true, MinAmount: 1, MaxAmount: 1},
				},
				Groups: map[uint32]storage.LootGroup{
					// Full-scale rate always passes; a rate of 1 is treated
					// as unconditional rather than one-in-a-hundred-thousand.
					2: {GroupNo: 2, DropRate: storage.GroupRateScale},
					3: {GroupNo: 3, DropRate: 1},
				},
			},
		},
	}
	gen := newTestGenerator(t, catalog)

	items, err := gen.Generate(context.Background(), 1, Input{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("expected both groups to pass, got %+v", items)
	}
}

func TestGenerateSkillBonusGate(t *testing.T) {
	skillPack := storage.LootPack{
		ID: 1,
		Entries: []storage.LootEntry{
			{ID: 10, Group: 2, ItemID: 1000, AlwaysDrop: true, MinAmount: 1, MaxAmount: 1},
		},
		SkillGroups: map[uint32]storage.SkillBonusGroup{
			2: {GroupNo: 2, SkillType: 4, MaxDice: 5000},
		},
	}
	catalog := &fakeCatalog{packs: map[uint32]storage.LootPack{1: skillPack}}

	// A larger skill multiplier scales the drawn dice toward the ceiling,
	// so it suppresses the gated group; at 1000x almost nothing passes.
	count := func(mult float64) int {
		gen := newTestGenerator(t, catalog)
		in := Input{Player: PlayerContext{
			SkillMultiplier: func(skillType uint32) float64 {
				if skillType != 4 {
					t.Fatalf("unexpected skill type %d", skillType)
				}
				return mult
			},
		}}
		drops := 0
		for i := 0; i < 200; i++ {
			items, err := gen.Generate(context.Background(), 1, in)
			if err != nil {
				t.Fatalf("Generate: %v", err)
			}
			drops += len(items)
		}
		return drops
	}

	low := count(1)
	high := count(1000)
	if low == 0 {
		t.Fatal("expected some drops at multiplier 1")
	}
	if high >= low {
		t.Fatalf("drops with multiplier 1000 = %d, want fewer than %d", high, low)
	}
}

func TestGenerateQuestGating(t *testing.T) {
	catalog := &fakeCatalog{
		packs: map[uint32]storage.LootPack{
			1: {
				ID: 1,
				Entries: []storage.LootEntry{
					{ID: 10, Group: 1, ItemID: 2000, AlwaysDrop: true, MinAmount: 1, MaxAmount: 1},
				},
			},
		},
		templates: map[domain.ItemID]storage.ItemTemplate{
			2000: {ID: 2000, LootQuestID: 77},
		},
	}
	gen := newTestGenerator(t, catalog)

	items, err := gen.Generate(context.Background(), 1, Input{})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("quest item dropped without the quest: %+v", items)
	}

	items, err = gen.Generate(context.Background(), 1, Input{
		Player: PlayerContext{HasQuest: func(q domain.QuestID) bool { return q == 77 }},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("quest item missing with the quest active: %+v", items)
	}
}

func TestGenerateCoinScaling(t *testing.T) {
	catalog := &fakeCatalog{
		packs: map[uint32]storage.LootPack{
			1: {
				ID: 1,
				Entries: []storage.LootEntry{
					{ID: 10, Group: 1, ItemID: domain.CoinItemID, AlwaysDrop: true, MinAmount: 100, MaxAmount: 100},
				},
			},
		},
	}
	gen := newTestGenerator(t, catalog)

	items, err := gen.Generate(context.Background(), 1, Input{GoldRate: 2.5})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected one coin drop, got %+v", items)
	}
	if items[0].Quantity != 250 {
		t.Errorf("expected coin quantity 250, got %d", items[0].Quantity)
	}
}

func TestGenerateQuantityRange(t *testing.T) {
	catalog := &fakeCatalog{
		packs: map[uint32]storage.LootPack{
			1: {
				ID: 1,
				Entries: []storage.LootEntry{
					{ID: 10, Group: 1, ItemID: 1000, AlwaysDrop: true, MinAmount: 3, MaxAmount: 7},
				},
			},
		},
	}
	gen := newTestGenerator(t, catalog)

	for i := 0; i < 100; i++ {
		items, err := gen.Generate(context.Background(), 1, Input{})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(items) != 1 {
			t.Fatalf("expected one item, got %+v", items)
		}
		if q := items[0].Quantity; q < 3 || q > 7 {
			t.Fatalf("quantity %d outside [3,7]", q)
		}
	}
}

func TestGenerateGradeLadder(t *testing.T) {
	dist := storage.GradeDistribution{ID: 5}
	dist.Weights[4] = 10 // single bucket, every roll lands on grade 4

	catalog := &fakeCatalog{
		packs: map[uint32]storage.LootPack{
			1: {
				ID: 1,
				Entries: []storage.LootEntry{
					{ID: 10, Group: 1, ItemID: 1000, AlwaysDrop: true, MinAmount: 1, MaxAmount: 1, GradeID: 0},
				},
				Groups: map[uint32]storage.LootGroup{
					1: {GroupNo: 1, GradeDistributionID: 5},
				},
			},
		},
		distributions: map[uint32]storage.GradeDistribution{5: dist},
	}
	gen := newTestGenerator(t, catalog)

	for i := 0; i < 20; i++ {
		items, err := gen.Generate(context.Background(), 1, Input{})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(items) != 1 || items[0].Grade != 4 {
			t.Fatalf("expected grade 4, got %+v", items)
		}
	}
}

func TestGenerateZeroWeightLadder(t *testing.T) {
	catalog := &fakeCatalog{
		packs: map[uint32]storage.LootPack{
			1: {
				ID: 1,
				Entries: []storage.LootEntry{
					{ID: 10, Group: 1, ItemID: 1000, AlwaysDrop: true, MinAmount: 1, MaxAmount: 1},
				},
				Groups: map[uint32]storage.LootGroup{
					1: {GroupNo: 1, GradeDistributionID: 9},
				},
			},
		},
		distributions: map[uint32]storage.GradeDistribution{9: {ID: 9}},
	}
	gen := newTestGenerator(t, catalog)

	_, err := gen.Generate(context.Background(), 1, Input{})
	if !platformerrors.IsCode(err, platformerrors.CodeGradeLadderZeroWeight) {
		t.Fatalf("expected zero-weight ladder error, got %v", err)
	}
}

func TestGenerateUnknownPack(t *testing.T) {
	gen := newTestGenerator(t, &fakeCatalog{})

	_, err := gen.Generate(context.Background(), 42, Input{})
	if !platformerrors.IsCode(err, platformerrors.CodePackNotFound) {
		t.Fatalf("expected pack-not-found error, got %v", err)
	}
}

func TestGenerateDeterministicWithSeed(t *testing.T) {
	newCatalog := func() *fakeCatalog {
		return &fakeCatalog{
			packs: map[uint32]storage.LootPack{
				1: {
					ID: 1,
					Entries: []storage.LootEntry{
						{ID: 10, Group: 1, ItemID: 1000, DropRate: storage.ItemRateScale / 2, MinAmount: 1, MaxAmount: 5},
						{ID: 11, Group: 2, ItemID: 1001, DropRate: storage.ItemRateScale / 4, MinAmount: 1, MaxAmount: 3},
					},
				},
			},
		}
	}

	first := newTestGenerator(t, newCatalog())
	second := newTestGenerator(t, newCatalog())

	for i := 0; i < 10; i++ {
		a, err := first.Generate(context.Background(), 1, Input{})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		b, err := second.Generate(context.Background(), 1, Input{})
		if err != nil {
			t.Fatalf("Generate: %v", err)
		}
		if len(a) != len(b) {
			t.Fatalf("runs diverged: %+v vs %+v", a, b)
		}
		for j := range a {
			if a[j] != b[j] {
				t.Fatalf("runs diverged at %d: %+v vs %+v", j, a[j], b[j])
			}
		}
	}
}
