// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Loot session errors
	CodeLootSessionNotFound     Code = "LOOT_SESSION_NOT_FOUND"
	CodeLootEntryNotFound       Code = "LOOT_ENTRY_NOT_FOUND"
	CodeLootAlreadyClaimed      Code = "LOOT_ALREADY_CLAIMED"
	CodeLootQuestRequired       Code = "LOOT_QUEST_REQUIRED"
	CodeLootStorageFull         Code = "LOOT_STORAGE_FULL"
	CodeLootRollInProgress      Code = "LOOT_ROLL_IN_PROGRESS"
	CodeLootNotEligible         Code = "LOOT_NOT_ELIGIBLE"
	CodeLootSessionNotPublicYet Code = "LOOT_SESSION_NOT_PUBLIC_YET"
	CodeLootAlreadyPublic       Code = "LOOT_ALREADY_PUBLIC"

	// Looting rule errors
	CodeRuleInvalidMethod      Code = "RULE_INVALID_METHOD"
	CodeRuleInvalidGrade       Code = "RULE_INVALID_GRADE"
	CodeRuleMasterNotInTeam    Code = "RULE_MASTER_NOT_IN_TEAM"
	CodeRuleTeamNotFound       Code = "RULE_TEAM_NOT_FOUND"
	CodeRuleEmptyTeam          Code = "RULE_EMPTY_TEAM"
	CodeRuleMasterRequired     Code = "RULE_MASTER_REQUIRED"
	CodeRuleUnknownParticipant Code = "RULE_UNKNOWN_PARTICIPANT"

	// Catalog errors
	CodePackNotFound                Code = "PACK_NOT_FOUND"
	CodePackInvalidGroupRate        Code = "PACK_INVALID_GROUP_RATE"
	CodePackInvalidAmountRange      Code = "PACK_INVALID_AMOUNT_RANGE"
	CodeGradeLadderZeroWeight       Code = "GRADE_LADDER_ZERO_WEIGHT"
	CodeGradeLadderUnknownReference Code = "GRADE_LADDER_UNKNOWN_REFERENCE"
	CodeItemTemplateNotFound        Code = "ITEM_TEMPLATE_NOT_FOUND"

	// Storage errors
	CodeNotFound Code = "NOT_FOUND"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeRuleInvalidMethod,
		CodeRuleInvalidGrade,
		CodeRuleMasterRequired,
		CodePackInvalidGroupRate,
		CodePackInvalidAmountRange:
		return codes.InvalidArgument

	// FailedPrecondition - state doesn't allow operation
	case CodeLootAlreadyClaimed,
		CodeLootRollInProgress,
		CodeLootSessionNotPublicYet,
		CodeLootAlreadyPublic,
		CodeLootQuestRequired,
		CodeLootStorageFull,
		CodeRuleMasterNotInTeam,
		CodeRuleEmptyTeam,
		CodeGradeLadderZeroWeight:
		return codes.FailedPrecondition

	// NotFound - resource doesn't exist
	case CodeNotFound,
		CodeLootSessionNotFound,
		CodeLootEntryNotFound,
		CodeRuleTeamNotFound,
		CodeRuleUnknownParticipant,
		CodePackNotFound,
		CodeGradeLadderUnknownReference,
		CodeItemTemplateNotFound:
		return codes.NotFound

	// PermissionDenied - actor has no claim on the resource
	case CodeLootNotEligible:
		return codes.PermissionDenied

	default:
		return codes.Internal
	}
}
