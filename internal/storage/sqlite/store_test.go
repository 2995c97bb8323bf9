package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	platformerrors "github.com/louisbranch/spoils/internal/platform/errors"
	"github.com/louisbranch/spoils/internal/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "catalog.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		if err := store.Close(); err != nil {
			t.Errorf("close store: %v", err)
		}
	})
	return store
}

func seedCatalog(t *testing.T, store *Store, statements ...string) {
	t.Helper()
	for _, stmt := range statements {
		if _, err := store.sqlDB.Exec(stmt); err != nil {
			t.Fatalf("seed catalog: %v\n%s", err, stmt)
		}
	}
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

func TestPackRoundTrip(t *testing.T) {
	store := openTestStore(t)
	seedCatalog(t, store,
		`INSERT INTO unit_loot_packs (unit_template_id, pack_id) VALUES (1000, 42), (1000, 43)`,
		`INSERT INTO loots (id, pack_id, group_no, item_id, drop_rate, min_amount, max_amount, grade_id, always_drop)
		 VALUES (1, 42, 0, 500, 10000000, 5, 25, 0, 0),
		        (2, 42, 1, 2001, 250000, 1, 1, 2, 0),
		        (3, 42, 1, 2002, 100000, 1, 2, 0, 1)`,
		`INSERT INTO loot_groups (pack_id, group_no, drop_rate, item_grade_distribution_id) VALUES (42, 1, 50000, 7)`,
		`INSERT INTO skill_bonus_groups (pack_id, group_no, skill_type, max_dice) VALUES (42, 1, 3, 2500)`,
	)

	ctx := context.Background()

	ids, err := store.PackIDsForUnit(ctx, 1000)
	if err != nil {
		t.Fatalf("pack ids: %v", err)
	}
	if len(ids) != 2 || ids[0] != 42 || ids[1] != 43 {
		t.Fatalf("unexpected pack ids %v", ids)
	}

	pack, err := store.Pack(ctx, 42)
	if err != nil {
		t.Fatalf("pack: %v", err)
	}
	if len(pack.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(pack.Entries))
	}
	if !pack.Entries[2].AlwaysDrop {
		t.Fatal("expected always-drop flag on entry 3")
	}
	group, ok := pack.Groups[1]
	if !ok {
		t.Fatal("expected loot group 1")
	}
	if group.DropRate != 50000 || group.GradeDistributionID != 7 {
		t.Fatalf("unexpected group %+v", group)
	}
	skill, ok := pack.SkillGroups[1]
	if !ok {
		t.Fatal("expected skill bonus group 1")
	}
	if skill.MaxDice != 2500 {
		t.Fatalf("unexpected skill group %+v", skill)
	}
}

func TestPackNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Pack(context.Background(), 99)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestItemTemplateRoundTrip(t *testing.T) {
	store := openTestStore(t)
	seedCatalog(t, store,
		`INSERT INTO item_templates (id, name, loot_quest_id, bind_type, fixed_grade, max_stack)
		 VALUES (2001, 'worn dagger', 0, 1, -1, 1)`,
	)

	tmpl, err := store.ItemTemplate(context.Background(), 2001)
	if err != nil {
		t.Fatalf("item template: %v", err)
	}
	if tmpl.Name != "worn dagger" {
		t.Fatalf("unexpected name %q", tmpl.Name)
	}
	if !tmpl.BindType.BindsOnPickup() {
		t.Fatal("expected bind-on-pickup")
	}

	_, err = store.ItemTemplate(context.Background(), 9999)
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGradeDistributionRoundTrip(t *testing.T) {
	store := openTestStore(t)
	seedCatalog(t, store,
		`INSERT INTO item_grade_distributions (id, weight_0, weight_1, weight_2)
		 VALUES (7, 70, 25, 5)`,
	)

	dist, err := store.GradeDistribution(context.Background(), 7)
	if err != nil {
		t.Fatalf("grade distribution: %v", err)
	}
	if dist.Weights[0] != 70 || dist.Weights[1] != 25 || dist.Weights[2] != 5 {
		t.Fatalf("unexpected weights %v", dist.Weights)
	}
	if dist.TotalWeight() != 100 {
		t.Fatalf("unexpected total weight %d", dist.TotalWeight())
	}
}

func TestValidateRejectsZeroWeightLadder(t *testing.T) {
	store := openTestStore(t)
	seedCatalog(t, store,
		`INSERT INTO loot_groups (pack_id, group_no, drop_rate, item_grade_distribution_id) VALUES (1, 1, 0, 8)`,
		`INSERT INTO item_grade_distributions (id) VALUES (8)`,
	)

	err := store.Validate(context.Background())
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !platformerrors.IsCode(err, platformerrors.CodeGradeLadderZeroWeight) {
		t.Fatalf("expected zero weight code, got %v", err)
	}
}

func TestValidateRejectsDanglingLadderReference(t *testing.T) {
	store := openTestStore(t)
	seedCatalog(t, store,
		`INSERT INTO loot_groups (pack_id, group_no, drop_rate, item_grade_distribution_id) VALUES (1, 1, 0, 9)`,
	)

	err := store.Validate(context.Background())
	if !platformerrors.IsCode(err, platformerrors.CodeGradeLadderUnknownReference) {
		t.Fatalf("expected dangling reference code, got %v", err)
	}
}
