// Package service exposes the loot engine as loot.v1 gRPC operations.
package service

import (
	"context"
	"sort"
	"strconv"

	lootv1 "github.com/louisbranch/spoils/api/gen/go/loot/v1"
	"github.com/louisbranch/spoils/internal/loot/domain"
	"github.com/louisbranch/spoils/internal/loot/session"
	"github.com/louisbranch/spoils/internal/platform/errors"
	"github.com/louisbranch/spoils/internal/platform/grpc/pagination"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	defaultListSessionsPageSize = 20
	maxListSessionsPageSize     = 100
)

// Service exposes loot.v1 gRPC operations.
type Service struct {
	lootv1.UnimplementedLootServiceServer
	manager *session.Manager

	// resolveOwner folds companion attackers into their owning player for
	// damage reports. Nil treats attacker ids as player ids.
	resolveOwner func(attacker uint32) (domain.PlayerID, bool)
	locale       string
}

// Option configures optional service dependencies.
type Option func(*Service)

// WithOwnerResolver installs the companion-to-owner resolver used when
// registering units.
func WithOwnerResolver(resolve func(attacker uint32) (domain.PlayerID, bool)) Option {
	return func(s *Service) {
		s.resolveOwner = resolve
	}
}

// NewService creates a loot service backed by the session manager.
func NewService(manager *session.Manager, opts ...Option) *Service {
	s := &Service{
		manager: manager,
		locale:  "en-US",
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterUnit starts a fresh eligibility life-cycle for a unit.
func (s *Service) RegisterUnit(ctx context.Context, in *lootv1.RegisterUnitRequest) (*lootv1.RegisterUnitResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "register unit request is required")
	}
	if s == nil || s.manager == nil {
		return nil, status.Error(codes.Internal, "loot manager is not configured")
	}
	if in.GetUnitId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "unit id is required")
	}
	if in.GetMaxHealth() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "max health must be greater than zero")
	}

	s.manager.RegisterUnit(domain.UnitID(in.GetUnitId()), in.GetMaxHealth(), s.resolveOwner)
	return &lootv1.RegisterUnitResponse{}, nil
}

// ReportDamage feeds one damage contribution into the unit's tracker.
func (s *Service) ReportDamage(ctx context.Context, in *lootv1.ReportDamageRequest) (*lootv1.ReportDamageResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "report damage request is required")
	}
	if s == nil || s.manager == nil {
		return nil, status.Error(codes.Internal, "loot manager is not configured")
	}
	if in.GetUnitId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "unit id is required")
	}

	s.manager.RecordDamage(domain.UnitID(in.GetUnitId()), in.GetAttackerId(), in.GetAmount())
	return &lootv1.ReportDamageResponse{}, nil
}

// GenerateLoot rolls the unit's drop tables. Idempotent per life-cycle.
func (s *Service) GenerateLoot(ctx context.Context, in *lootv1.GenerateLootRequest) (*lootv1.GenerateLootResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "generate loot request is required")
	}
	if s == nil || s.manager == nil {
		return nil, status.Error(codes.Internal, "loot manager is not configured")
	}
	if in.GetUnitId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "unit id is required")
	}
	if in.GetKillerId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "killer id is required")
	}

	unit := domain.UnitID(in.GetUnitId())
	killer := domain.PlayerID(in.GetKillerId())
	created, err := s.manager.GenerateLoot(ctx, unit, in.GetUnitTemplateId(), killer)
	if err != nil {
		return nil, errors.HandleError(err, s.locale)
	}

	resp := &lootv1.GenerateLootResponse{Created: created}
	if entries, err := s.manager.RemainingEntries(unit, killer); err == nil {
		resp.Entries = entrySummariesToProto(entries)
	}
	return resp, nil
}

// AttemptClaim runs the claim protocol for one entry.
func (s *Service) AttemptClaim(ctx context.Context, in *lootv1.AttemptClaimRequest) (*lootv1.AttemptClaimResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "attempt claim request is required")
	}
	if s == nil || s.manager == nil {
		return nil, status.Error(codes.Internal, "loot manager is not configured")
	}
	if in.GetUnitId() == 0 || in.GetPlayerId() == 0 || in.GetEntryIndex() == 0 {
		return nil, status.Error(codes.InvalidArgument, "unit id, player id and entry index are required")
	}

	res := s.manager.AttemptClaim(
		domain.UnitID(in.GetUnitId()),
		domain.PlayerID(in.GetPlayerId()),
		domain.EntryIndex(in.GetEntryIndex()),
	)
	return &lootv1.AttemptClaimResponse{
		Outcome:  claimOutcomeToProto(res.Outcome),
		Reason:   failReasonToProto(res.Reason),
		WinnerId: uint32(res.Winner),
	}, nil
}

// SubmitRoll records a tiebreak roll (or pass) for a contested entry.
func (s *Service) SubmitRoll(ctx context.Context, in *lootv1.SubmitRollRequest) (*lootv1.SubmitRollResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "submit roll request is required")
	}
	if s == nil || s.manager == nil {
		return nil, status.Error(codes.Internal, "loot manager is not configured")
	}
	if in.GetUnitId() == 0 || in.GetPlayerId() == 0 || in.GetEntryIndex() == 0 {
		return nil, status.Error(codes.InvalidArgument, "unit id, player id and entry index are required")
	}

	s.manager.SubmitRoll(
		domain.UnitID(in.GetUnitId()),
		domain.PlayerID(in.GetPlayerId()),
		domain.EntryIndex(in.GetEntryIndex()),
		in.GetWantsToRoll(),
	)
	return &lootv1.SubmitRollResponse{}, nil
}

// MakePublic opens an aged session to free claiming.
func (s *Service) MakePublic(ctx context.Context, in *lootv1.MakePublicRequest) (*lootv1.MakePublicResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "make public request is required")
	}
	if s == nil || s.manager == nil {
		return nil, status.Error(codes.Internal, "loot manager is not configured")
	}
	if in.GetUnitId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "unit id is required")
	}

	if err := s.manager.MakePublic(domain.UnitID(in.GetUnitId())); err != nil {
		return nil, errors.HandleError(err, s.locale)
	}
	return &lootv1.MakePublicResponse{}, nil
}

// OpenSession registers a viewer, optionally claiming everything first.
func (s *Service) OpenSession(ctx context.Context, in *lootv1.OpenSessionRequest) (*lootv1.OpenSessionResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "open session request is required")
	}
	if s == nil || s.manager == nil {
		return nil, status.Error(codes.Internal, "loot manager is not configured")
	}
	if in.GetUnitId() == 0 || in.GetPlayerId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "unit id and player id are required")
	}

	entries, err := s.manager.OpenSession(
		domain.UnitID(in.GetUnitId()),
		domain.PlayerID(in.GetPlayerId()),
		in.GetLootAll(),
	)
	if err != nil {
		return nil, errors.HandleError(err, s.locale)
	}
	return &lootv1.OpenSessionResponse{Entries: entrySummariesToProto(entries)}, nil
}

// CloseSession removes a viewer.
func (s *Service) CloseSession(ctx context.Context, in *lootv1.CloseSessionRequest) (*lootv1.CloseSessionResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "close session request is required")
	}
	if s == nil || s.manager == nil {
		return nil, status.Error(codes.Internal, "loot manager is not configured")
	}
	if in.GetUnitId() == 0 || in.GetPlayerId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "unit id and player id are required")
	}

	s.manager.CloseSession(domain.UnitID(in.GetUnitId()), domain.PlayerID(in.GetPlayerId()))
	return &lootv1.CloseSessionResponse{}, nil
}

// HasUnclaimedLoot reports whether claimable entries remain.
func (s *Service) HasUnclaimedLoot(ctx context.Context, in *lootv1.HasUnclaimedLootRequest) (*lootv1.HasUnclaimedLootResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "has unclaimed loot request is required")
	}
	if s == nil || s.manager == nil {
		return nil, status.Error(codes.Internal, "loot manager is not configured")
	}
	if in.GetUnitId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "unit id is required")
	}

	return &lootv1.HasUnclaimedLootResponse{
		Unclaimed: s.manager.HasUnclaimedLoot(domain.UnitID(in.GetUnitId())),
	}, nil
}

// ListRemainingEntries lists the viewer's visible entries.
func (s *Service) ListRemainingEntries(ctx context.Context, in *lootv1.ListRemainingEntriesRequest) (*lootv1.ListRemainingEntriesResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list remaining entries request is required")
	}
	if s == nil || s.manager == nil {
		return nil, status.Error(codes.Internal, "loot manager is not configured")
	}
	if in.GetUnitId() == 0 || in.GetPlayerId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "unit id and player id are required")
	}

	entries, err := s.manager.RemainingEntries(
		domain.UnitID(in.GetUnitId()),
		domain.PlayerID(in.GetPlayerId()),
	)
	if err != nil {
		return nil, errors.HandleError(err, s.locale)
	}
	return &lootv1.ListRemainingEntriesResponse{Entries: entrySummariesToProto(entries)}, nil
}

// ListSessions pages through the live looting sessions ordered by unit id.
func (s *Service) ListSessions(ctx context.Context, in *lootv1.ListSessionsRequest) (*lootv1.ListSessionsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list sessions request is required")
	}
	if s == nil || s.manager == nil {
		return nil, status.Error(codes.Internal, "loot manager is not configured")
	}

	pageSize := pagination.ClampPageSize(in.GetPageSize(), pagination.PageSizeConfig{
		Default: defaultListSessionsPageSize,
		Max:     maxListSessionsPageSize,
	})
	var after domain.UnitID
	if token := in.GetPageToken(); token != "" {
		parsed, err := strconv.ParseUint(token, 10, 32)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, "invalid page token")
		}
		after = domain.UnitID(parsed)
	}

	all := s.manager.Sessions()
	start := sort.Search(len(all), func(i int) bool { return all[i].Unit() > after })

	resp := &lootv1.ListSessionsResponse{}
	for _, sess := range all[start:] {
		if len(resp.Sessions) == pageSize {
			resp.NextPageToken = strconv.FormatUint(uint64(resp.Sessions[len(resp.Sessions)-1].GetUnitId()), 10)
			break
		}
		resp.Sessions = append(resp.Sessions, sessionToProto(sess))
	}
	return resp, nil
}

// SetLootingRule installs a team's live looting rule.
func (s *Service) SetLootingRule(ctx context.Context, in *lootv1.SetLootingRuleRequest) (*lootv1.SetLootingRuleResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "set looting rule request is required")
	}
	if s == nil || s.manager == nil {
		return nil, status.Error(codes.Internal, "loot manager is not configured")
	}
	if in.GetTeamId() == 0 {
		return nil, status.Error(codes.InvalidArgument, "team id is required")
	}
	if in.GetRule() == nil {
		return nil, status.Error(codes.InvalidArgument, "rule is required")
	}

	err := s.manager.SetLootingRule(domain.TeamID(in.GetTeamId()), ruleFromProto(in.GetRule()))
	if err != nil {
		return nil, errors.HandleError(err, s.locale)
	}
	return &lootv1.SetLootingRuleResponse{}, nil
}

func ruleFromProto(in *lootv1.LootingRule) domain.Rule {
	return domain.Rule{
		Method:              methodFromProto(in.GetMethod()),
		MinimumGrade:        domain.Grade(in.GetMinimumGrade()),
		LootMaster:          domain.PlayerID(in.GetLootMasterId()),
		RollForBindOnPickup: in.GetRollForBindOnPickup(),
	}
}

func ruleToProto(rule domain.Rule) *lootv1.LootingRule {
	return &lootv1.LootingRule{
		Method:              methodToProto(rule.Method),
		MinimumGrade:        uint32(rule.MinimumGrade),
		LootMasterId:        uint32(rule.LootMaster),
		RollForBindOnPickup: rule.RollForBindOnPickup,
	}
}

func methodFromProto(in lootv1.LootMethod) domain.Method {
	switch in {
	case lootv1.LootMethod_LOOT_METHOD_FREE_FOR_ALL:
		return domain.MethodFreeForAll
	case lootv1.LootMethod_LOOT_METHOD_ROTATE_WINNER:
		return domain.MethodRotateWinner
	case lootv1.LootMethod_LOOT_METHOD_LOOT_MASTER:
		return domain.MethodLootMaster
	case lootv1.LootMethod_LOOT_METHOD_PUBLIC:
		return domain.MethodPublic
	default:
		return domain.MethodUnspecified
	}
}

func methodToProto(in domain.Method) lootv1.LootMethod {
	switch in {
	case domain.MethodFreeForAll:
		return lootv1.LootMethod_LOOT_METHOD_FREE_FOR_ALL
	case domain.MethodRotateWinner:
		return lootv1.LootMethod_LOOT_METHOD_ROTATE_WINNER
	case domain.MethodLootMaster:
		return lootv1.LootMethod_LOOT_METHOD_LOOT_MASTER
	case domain.MethodPublic:
		return lootv1.LootMethod_LOOT_METHOD_PUBLIC
	default:
		return lootv1.LootMethod_LOOT_METHOD_UNSPECIFIED
	}
}

func claimOutcomeToProto(in session.ClaimOutcome) lootv1.ClaimOutcome {
	switch in {
	case session.ClaimGranted:
		return lootv1.ClaimOutcome_CLAIM_OUTCOME_GRANTED
	case session.ClaimPending:
		return lootv1.ClaimOutcome_CLAIM_OUTCOME_PENDING
	case session.ClaimRefused:
		return lootv1.ClaimOutcome_CLAIM_OUTCOME_REFUSED
	default:
		return lootv1.ClaimOutcome_CLAIM_OUTCOME_UNSPECIFIED
	}
}

func failReasonToProto(in domain.FailReason) lootv1.FailReason {
	switch in {
	case domain.FailAlreadyClaimed:
		return lootv1.FailReason_FAIL_REASON_ALREADY_CLAIMED
	case domain.FailQuestRequired:
		return lootv1.FailReason_FAIL_REASON_QUEST_REQUIRED
	case domain.FailStorageFull:
		return lootv1.FailReason_FAIL_REASON_STORAGE_FULL
	case domain.FailNotFound:
		return lootv1.FailReason_FAIL_REASON_NOT_FOUND
	default:
		return lootv1.FailReason_FAIL_REASON_UNSPECIFIED
	}
}

func entrySummariesToProto(entries []domain.EntrySummary) []*lootv1.EntrySummary {
	out := make([]*lootv1.EntrySummary, 0, len(entries))
	for _, e := range entries {
		out = append(out, &lootv1.EntrySummary{
			Index:       uint32(e.Index),
			ItemId:      uint32(e.ItemID),
			Quantity:    e.Quantity,
			Grade:       uint32(e.Grade),
			ClaimedBy:   uint32(e.ClaimedBy),
			RollPending: e.RollPending,
		})
	}
	return out
}

func sessionToProto(sess *session.Session) *lootv1.SessionInfo {
	eligible := sess.EligiblePlayers()
	ids := make([]uint32, 0, len(eligible))
	for _, p := range eligible {
		ids = append(ids, uint32(p))
	}
	return &lootv1.SessionInfo{
		UnitId:            uint32(sess.Unit()),
		Rule:              ruleToProto(sess.Rule()),
		EligiblePlayerIds: ids,
		CreatedAtUnix:     sess.CreatedAt().Unix(),
		RemainingEntries:  uint32(sess.EntryCount()),
	}
}
