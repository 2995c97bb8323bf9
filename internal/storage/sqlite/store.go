// Package sqlite provides the SQLite-backed catalog store. The drop tables
// are reference data shipped as a SQLite database and read-mostly at runtime.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/louisbranch/spoils/internal/loot/domain"
	platformerrors "github.com/louisbranch/spoils/internal/platform/errors"
	"github.com/louisbranch/spoils/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/spoils/internal/storage"
	"github.com/louisbranch/spoils/internal/storage/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Store reads the loot catalog from SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite catalog store and applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Validate walks every grade ladder referenced by a loot group and rejects
// zero-weight ladders and dangling references. Data errors are reported
// once at load time, never during generation.
func (s *Store) Validate(ctx context.Context) error {
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT DISTINCT item_grade_distribution_id FROM loot_groups WHERE item_grade_distribution_id > 0`)
	if err != nil {
		return fmt.Errorf("list grade distribution references: %w", err)
	}
	defer rows.Close()

	var referenced []uint32
	for rows.Next() {
		var id uint32
		if err := rows.Scan(&id); err != nil {
			return fmt.Errorf("scan grade distribution reference: %w", err)
		}
		referenced = append(referenced, id)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate grade distribution references: %w", err)
	}

	for _, id := range referenced {
		dist, err := s.GradeDistribution(ctx, id)
		if errors.Is(err, storage.ErrNotFound) {
			return platformerrors.WithMetadata(platformerrors.CodeGradeLadderUnknownReference,
				"grade distribution referenced but not defined",
				map[string]string{"ID": fmt.Sprint(id)})
		}
		if err != nil {
			return err
		}
		if dist.TotalWeight() == 0 {
			return platformerrors.WithMetadata(platformerrors.CodeGradeLadderZeroWeight,
				"grade distribution has zero total weight",
				map[string]string{"ID": fmt.Sprint(id)})
		}
	}
	return nil
}

// PackIDsForUnit lists the drop tables a unit template rolls on death.
func (s *Store) PackIDsForUnit(ctx context.Context, unitTemplateID uint32) ([]uint32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT pack_id FROM unit_loot_packs WHERE unit_template_id = ? ORDER BY pack_id`,
		unitTemplateID)
	if err != nil {
		return nil, fmt.Errorf("list unit loot packs: %w", err)
	}
	defer rows.Close()

	var ids []uint32
	for rows.Next() {
		var id uint32
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan unit loot pack: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate unit loot packs: %w", err)
	}
	return ids, nil
}

// Pack loads one drop table with its group gates.
func (s *Store) Pack(ctx context.Context, id uint32) (storage.LootPack, error) {
	if err := ctx.Err(); err != nil {
		return storage.LootPack{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.LootPack{}, fmt.Errorf("storage is not configured")
	}

	pack := storage.LootPack{
		ID:          id,
		Groups:      map[uint32]storage.LootGroup{},
		SkillGroups: map[uint32]storage.SkillBonusGroup{},
	}

	rows, err := s.sqlDB.QueryContext(ctx,
		`SELECT id, group_no, item_id, drop_rate, min_amount, max_amount, grade_id, always_drop
		 FROM loots WHERE pack_id = ? ORDER BY group_no, id`, id)
	if err != nil {
		return storage.LootPack{}, fmt.Errorf("list loot entries: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var entry storage.LootEntry
		var alwaysDrop int
		if err := rows.Scan(&entry.ID, &entry.Group, &entry.ItemID, &entry.DropRate,
			&entry.MinAmount, &entry.MaxAmount, &entry.GradeID, &alwaysDrop); err != nil {
			return storage.LootPack{}, fmt.Errorf("scan loot entry: %w", err)
		}
		entry.AlwaysDrop = alwaysDrop != 0
		pack.Entries = append(pack.Entries, entry)
	}
	if err := rows.Err(); err != nil {
		return storage.LootPack{}, fmt.Errorf("iterate loot entries: %w", err)
	}
	if len(pack.Entries) == 0 {
		return storage.LootPack{}, storage.ErrNotFound
	}

	groupRows, err := s.sqlDB.QueryContext(ctx,
		`SELECT group_no, drop_rate, item_grade_distribution_id
		 FROM loot_groups WHERE pack_id = ?`, id)
	if err != nil {
		return storage.LootPack{}, fmt.Errorf("list loot groups: %w", err)
	}
	defer groupRows.Close()

	for groupRows.Next() {
		var group storage.LootGroup
		if err := groupRows.Scan(&group.GroupNo, &group.DropRate, &group.GradeDistributionID); err != nil {
			return storage.LootPack{}, fmt.Errorf("scan loot group: %w", err)
		}
		pack.Groups[group.GroupNo] = group
	}
	if err := groupRows.Err(); err != nil {
		return storage.LootPack{}, fmt.Errorf("iterate loot groups: %w", err)
	}

	skillRows, err := s.sqlDB.QueryContext(ctx,
		`SELECT group_no, skill_type, max_dice
		 FROM skill_bonus_groups WHERE pack_id = ?`, id)
	if err != nil {
		return storage.LootPack{}, fmt.Errorf("list skill bonus groups: %w", err)
	}
	defer skillRows.Close()

	for skillRows.Next() {
		var group storage.SkillBonusGroup
		if err := skillRows.Scan(&group.GroupNo, &group.SkillType, &group.MaxDice); err != nil {
			return storage.LootPack{}, fmt.Errorf("scan skill bonus group: %w", err)
		}
		pack.SkillGroups[group.GroupNo] = group
	}
	if err := skillRows.Err(); err != nil {
		return storage.LootPack{}, fmt.Errorf("iterate skill bonus groups: %w", err)
	}

	return pack, nil
}

// ItemTemplate loads one item record.
func (s *Store) ItemTemplate(ctx context.Context, id domain.ItemID) (storage.ItemTemplate, error) {
	if err := ctx.Err(); err != nil {
		return storage.ItemTemplate{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.ItemTemplate{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, name, loot_quest_id, bind_type, fixed_grade, max_stack
		 FROM item_templates WHERE id = ?`, id)

	var tmpl storage.ItemTemplate
	err := row.Scan(&tmpl.ID, &tmpl.Name, &tmpl.LootQuestID, &tmpl.BindType, &tmpl.FixedGrade, &tmpl.MaxStack)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.ItemTemplate{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.ItemTemplate{}, fmt.Errorf("get item template: %w", err)
	}
	return tmpl, nil
}

// GradeDistribution loads one grade ladder.
func (s *Store) GradeDistribution(ctx context.Context, id uint32) (storage.GradeDistribution, error) {
	if err := ctx.Err(); err != nil {
		return storage.GradeDistribution{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.GradeDistribution{}, fmt.Errorf("storage is not configured")
	}

	row := s.sqlDB.QueryRowContext(ctx,
		`SELECT id, weight_0, weight_1, weight_2, weight_3, weight_4, weight_5,
		        weight_6, weight_7, weight_8, weight_9, weight_10, weight_11
		 FROM item_grade_distributions WHERE id = ?`, id)

	var dist storage.GradeDistribution
	scanTargets := make([]any, 0, 13)
	scanTargets = append(scanTargets, &dist.ID)
	for i := range dist.Weights {
		scanTargets = append(scanTargets, &dist.Weights[i])
	}
	err := row.Scan(scanTargets...)
	if errors.Is(err, sql.ErrNoRows) {
		return storage.GradeDistribution{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.GradeDistribution{}, fmt.Errorf("get grade distribution: %w", err)
	}
	return dist, nil
}
