// Package lootctl implements the loot service admin CLI: it dials a
// running server and drives single operations from the command line.
package lootctl

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	lootv1 "github.com/louisbranch/spoils/api/gen/go/loot/v1"
	entrypoint "github.com/louisbranch/spoils/internal/platform/cmd"
	platformgrpc "github.com/louisbranch/spoils/internal/platform/grpc"
)

// Config holds lootctl command configuration.
type Config struct {
	GRPCAddr string        `env:"SPOILS_LOOT_ADDR"    envDefault:"localhost:8095"`
	Timeout  time.Duration `env:"SPOILS_LOOT_TIMEOUT" envDefault:"10s"`

	// Command and Args are the subcommand and its positional arguments.
	Command string
	Args    []string
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.GRPCAddr, "addr", cfg.GRPCAddr, "loot server address")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "dial and call timeout")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		return Config{}, fmt.Errorf("usage: lootctl [flags] <sessions|entries|kill|claim|public> [args]")
	}
	cfg.Command = rest[0]
	cfg.Args = rest[1:]
	return cfg, nil
}

// Run executes one lootctl subcommand against the configured server.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}

	conn, err := platformgrpc.DialWithHealth(ctx, nil, cfg.GRPCAddr, cfg.Timeout, nil,
		platformgrpc.DefaultClientDialOptions()...)
	if err != nil {
		return fmt.Errorf("dial loot server: %w", err)
	}
	defer conn.Close()

	client := lootv1.NewLootServiceClient(conn)
	callCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	switch cfg.Command {
	case "sessions":
		return listSessions(callCtx, client, out)
	case "entries":
		return listEntries(callCtx, client, out, cfg.Args)
	case "kill":
		return kill(callCtx, client, out, cfg.Args)
	case "claim":
		return claim(callCtx, client, out, cfg.Args)
	case "public":
		return makePublic(callCtx, client, out, cfg.Args)
	default:
		return fmt.Errorf("unknown command %q", cfg.Command)
	}
}

func listSessions(ctx context.Context, client lootv1.LootServiceClient, out io.Writer) error {
	token := ""
	for {
		resp, err := client.ListSessions(ctx, &lootv1.ListSessionsRequest{PageToken: token})
		if err != nil {
			return fmt.Errorf("list sessions: %w", err)
		}
		for _, s := range resp.GetSessions() {
			fmt.Fprintf(out, "unit %d: %d entries, %d eligible, method %s, created %s\n",
				s.GetUnitId(), s.GetRemainingEntries(), len(s.GetEligiblePlayerIds()),
				s.GetRule().GetMethod(), time.Unix(s.GetCreatedAtUnix(), 0).Format(time.RFC3339))
		}
		token = resp.GetNextPageToken()
		if token == "" {
			return nil
		}
	}
}

func listEntries(ctx context.Context, client lootv1.LootServiceClient, out io.Writer, args []string) error {
	ids, err := parseUints("entries <unit> <player>", args, 2)
	if err != nil {
		return err
	}
	resp, err := client.ListRemainingEntries(ctx, &lootv1.ListRemainingEntriesRequest{
		UnitId:   ids[0],
		PlayerId: ids[1],
	})
	if err != nil {
		return fmt.Errorf("list entries: %w", err)
	}
	for _, e := range resp.GetEntries() {
		fmt.Fprintf(out, "entry %d: item %d x%d grade %d claimed_by %d roll_pending %t\n",
			e.GetIndex(), e.GetItemId(), e.GetQuantity(), e.GetGrade(), e.GetClaimedBy(), e.GetRollPending())
	}
	return nil
}

func kill(ctx context.Context, client lootv1.LootServiceClient, out io.Writer, args []string) error {
	ids, err := parseUints("kill <unit> <template> <killer>", args, 3)
	if err != nil {
		return err
	}
	if _, err := client.RegisterUnit(ctx, &lootv1.RegisterUnitRequest{UnitId: ids[0], MaxHealth: 1}); err != nil {
		return fmt.Errorf("register unit: %w", err)
	}
	if _, err := client.ReportDamage(ctx, &lootv1.ReportDamageRequest{UnitId: ids[0], AttackerId: ids[2], Amount: 1}); err != nil {
		return fmt.Errorf("report damage: %w", err)
	}
	resp, err := client.GenerateLoot(ctx, &lootv1.GenerateLootRequest{
		UnitId:         ids[0],
		UnitTemplateId: ids[1],
		KillerId:       ids[2],
	})
	if err != nil {
		return fmt.Errorf("generate loot: %w", err)
	}
	fmt.Fprintf(out, "created=%t entries=%d\n", resp.GetCreated(), len(resp.GetEntries()))
	return nil
}

func claim(ctx context.Context, client lootv1.LootServiceClient, out io.Writer, args []string) error {
	ids, err := parseUints("claim <unit> <player> <entry>", args, 3)
	if err != nil {
		return err
	}
	resp, err := client.AttemptClaim(ctx, &lootv1.AttemptClaimRequest{
		UnitId:     ids[0],
		PlayerId:   ids[1],
		EntryIndex: ids[2],
	})
	if err != nil {
		return fmt.Errorf("attempt claim: %w", err)
	}
	fmt.Fprintf(out, "outcome=%s reason=%s winner=%d\n",
		resp.GetOutcome(), resp.GetReason(), resp.GetWinnerId())
	return nil
}

func makePublic(ctx context.Context, client lootv1.LootServiceClient, out io.Writer, args []string) error {
	ids, err := parseUints("public <unit>", args, 1)
	if err != nil {
		return err
	}
	if _, err := client.MakePublic(ctx, &lootv1.MakePublicRequest{UnitId: ids[0]}); err != nil {
		return fmt.Errorf("make public: %w", err)
	}
	fmt.Fprintf(out, "unit %d is public\n", ids[0])
	return nil
}

func parseUints(usage string, args []string, want int) ([]uint32, error) {
	if len(args) != want {
		return nil, fmt.Errorf("usage: lootctl %s", usage)
	}
	ids := make([]uint32, 0, want)
	for _, arg := range args {
		v, err := strconv.ParseUint(arg, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid id %q: %w", arg, err)
		}
		ids = append(ids, uint32(v))
	}
	return ids, nil
}
