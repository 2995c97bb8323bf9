package server

import (
	"context"
	"database/sql"
	"testing"
	"time"

	lootv1 "github.com/louisbranch/spoils/api/gen/go/loot/v1"
	"github.com/louisbranch/spoils/internal/storage/sqlite"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	_ "modernc.org/sqlite"
)

// seedCatalog migrates the schema and inserts a minimal drop table: unit
// template 1 always drops one of item 10.
func seedCatalog(t *testing.T, dbPath string) {
	t.Helper()

	store, err := sqlite.Open(dbPath)
	if err != nil {
		t.Fatalf("open store for migration: %v", err)
	}
	if err := store.Close(); err != nil {
		t.Fatalf("close store: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatalf("open seed db: %v", err)
	}
	defer db.Close()

	stmts := []string{
		`INSERT INTO unit_loot_packs (unit_template_id, pack_id) VALUES (1, 100)`,
		`INSERT INTO loots (id, pack_id, group_no, item_id, min_amount, max_amount, always_drop)
		 VALUES (1, 100, 1, 10, 1, 1, 1)`,
		`INSERT INTO item_templates (id, name, max_stack) VALUES (10, 'iron ingot', 100)`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("seed catalog: %v", err)
		}
	}
}

func TestServer_KillAndClaimRoundTrip(t *testing.T) {
	dbPath := t.TempDir() + "/loot.db"
	seedCatalog(t, dbPath)
	t.Setenv("SPOILS_LOOT_DB_PATH", dbPath)

	srv, err := NewWithAddr("127.0.0.1:0")
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	runCtx, runCancel := context.WithCancel(context.Background())
	defer runCancel()

	serveDone := make(chan error, 1)
	go func() {
		serveDone <- srv.Serve(runCtx)
	}()
	t.Cleanup(func() {
		runCancel()
		select {
		case serveErr := <-serveDone:
			if serveErr != nil {
				t.Fatalf("serve: %v", serveErr)
			}
		case <-time.After(5 * time.Second):
			t.Fatal("timeout waiting for server shutdown")
		}
	})

	conn, err := grpc.NewClient(srv.Addr(), grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("dial loot server: %v", err)
	}
	t.Cleanup(func() {
		if closeErr := conn.Close(); closeErr != nil {
			t.Fatalf("close gRPC connection: %v", closeErr)
		}
	})

	client := lootv1.NewLootServiceClient(conn)
	ctx := context.Background()

	if _, err := client.RegisterUnit(ctx, &lootv1.RegisterUnitRequest{UnitId: 1, MaxHealth: 100}); err != nil {
		t.Fatalf("register unit: %v", err)
	}
	if _, err := client.ReportDamage(ctx, &lootv1.ReportDamageRequest{UnitId: 1, AttackerId: 7, Amount: 100}); err != nil {
		t.Fatalf("report damage: %v", err)
	}

	genResp, err := client.GenerateLoot(ctx, &lootv1.GenerateLootRequest{
		UnitId:         1,
		UnitTemplateId: 1,
		KillerId:       7,
	})
	if err != nil {
		t.Fatalf("generate loot: %v", err)
	}
	if !genResp.GetCreated() {
		t.Fatal("expected a looting session")
	}
	if len(genResp.GetEntries()) != 1 {
		t.Fatalf("entries len = %d, want 1", len(genResp.GetEntries()))
	}
	entry := genResp.GetEntries()[0]
	if entry.GetItemId() != 10 {
		t.Fatalf("item_id = %d, want 10", entry.GetItemId())
	}

	claimResp, err := client.AttemptClaim(ctx, &lootv1.AttemptClaimRequest{
		UnitId:     1,
		PlayerId:   7,
		EntryIndex: entry.GetIndex(),
	})
	if err != nil {
		t.Fatalf("attempt claim: %v", err)
	}
	if got := claimResp.GetOutcome(); got != lootv1.ClaimOutcome_CLAIM_OUTCOME_GRANTED {
		t.Fatalf("outcome = %v, want granted", got)
	}

	hasResp, err := client.HasUnclaimedLoot(ctx, &lootv1.HasUnclaimedLootRequest{UnitId: 1})
	if err != nil {
		t.Fatalf("has unclaimed loot: %v", err)
	}
	if hasResp.GetUnclaimed() {
		t.Fatal("expected the bag to be empty after the claim")
	}
}
