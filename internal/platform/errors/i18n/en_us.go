package i18n

// Error codes must match the codes defined in internal/platform/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeLootSessionNotFound     = "LOOT_SESSION_NOT_FOUND"
	CodeLootEntryNotFound       = "LOOT_ENTRY_NOT_FOUND"
	CodeLootAlreadyClaimed      = "LOOT_ALREADY_CLAIMED"
	CodeLootQuestRequired       = "LOOT_QUEST_REQUIRED"
	CodeLootStorageFull         = "LOOT_STORAGE_FULL"
	CodeLootRollInProgress      = "LOOT_ROLL_IN_PROGRESS"
	CodeLootNotEligible         = "LOOT_NOT_ELIGIBLE"
	CodeLootSessionNotPublicYet = "LOOT_SESSION_NOT_PUBLIC_YET"
	CodeLootAlreadyPublic       = "LOOT_ALREADY_PUBLIC"

	CodeRuleInvalidMethod      = "RULE_INVALID_METHOD"
	CodeRuleInvalidGrade       = "RULE_INVALID_GRADE"
	CodeRuleMasterNotInTeam    = "RULE_MASTER_NOT_IN_TEAM"
	CodeRuleTeamNotFound       = "RULE_TEAM_NOT_FOUND"
	CodeRuleEmptyTeam          = "RULE_EMPTY_TEAM"
	CodeRuleMasterRequired     = "RULE_MASTER_REQUIRED"
	CodeRuleUnknownParticipant = "RULE_UNKNOWN_PARTICIPANT"

	CodePackNotFound                = "PACK_NOT_FOUND"
	CodePackInvalidGroupRate        = "PACK_INVALID_GROUP_RATE"
	CodePackInvalidAmountRange      = "PACK_INVALID_AMOUNT_RANGE"
	CodeGradeLadderZeroWeight       = "GRADE_LADDER_ZERO_WEIGHT"
	CodeGradeLadderUnknownReference = "GRADE_LADDER_UNKNOWN_REFERENCE"
	CodeItemTemplateNotFound        = "ITEM_TEMPLATE_NOT_FOUND"

	CodeNotFound = "NOT_FOUND"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Loot session errors
		CodeLootSessionNotFound:     "No loot is available for this target",
		CodeLootEntryNotFound:       "That item is no longer available",
		CodeLootAlreadyClaimed:      "Item already claimed by another player",
		CodeLootQuestRequired:       "You need an active quest to pick up this item",
		CodeLootStorageFull:         "Not enough room in your bag",
		CodeLootRollInProgress:      "A roll for this item is still in progress",
		CodeLootNotEligible:         "You have no claim on this kill",
		CodeLootSessionNotPublicYet: "This loot cannot be opened to everyone yet",
		CodeLootAlreadyPublic:       "This loot is already public",

		// Looting rule errors
		CodeRuleInvalidMethod:      "Invalid looting method specified",
		CodeRuleInvalidGrade:       "Minimum roll grade must be between {{.Min}} and {{.Max}}",
		CodeRuleMasterNotInTeam:    "The designated loot master is not a member of this team",
		CodeRuleTeamNotFound:       "Team not found",
		CodeRuleEmptyTeam:          "Team has no members",
		CodeRuleMasterRequired:     "A loot master must be designated for this method",
		CodeRuleUnknownParticipant: "Player is not part of this team",

		// Catalog errors
		CodePackNotFound:                "Drop table {{.PackID}} is not defined",
		CodePackInvalidGroupRate:        "Drop table group rate is out of range",
		CodePackInvalidAmountRange:      "Item amount range is invalid (min {{.Min}}, max {{.Max}})",
		CodeGradeLadderZeroWeight:       "Grade distribution {{.ID}} has zero total weight",
		CodeGradeLadderUnknownReference: "Grade distribution {{.ID}} is referenced but not defined",
		CodeItemTemplateNotFound:        "Item template {{.ItemID}} is not defined",

		// Storage errors
		CodeNotFound: "The requested resource was not found",
	},
}
