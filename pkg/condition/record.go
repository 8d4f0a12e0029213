// Package condition implements the gamebook's condition evaluation
// engine: a dispatcher over the closed set of story opcodes. Each record
// is one declarative instruction authored in book content; evaluating it
// reads and mutates party state, may block on player prompts, and always
// yields a uniform Result.
package condition

import (
	"github.com/battlepits/gamebook-engine/pkg/book"
)

// Opcode tags one kind of condition record.
type Opcode string

const (
	OpNone Opcode = ""

	// Roster and state queries (pure).
	OpInParty        Opcode = "IN_PARTY"
	OpNotInParty     Opcode = "NOT_IN_PARTY"
	OpSolo           Opcode = "SOLO"
	OpHaveColleagues Opcode = "HAVE_COLLEAGUES"
	OpPartyCount     Opcode = "PARTY_COUNT"
	OpIsAlive        Opcode = "IS_ALIVE"
	OpIsDead         Opcode = "IS_DEAD"
	OpHasItem        Opcode = "HAS_ITEM"
	OpHasStatus      Opcode = "HAS_STATUS"
	OpStatusAll      Opcode = "STATUS_ALL"
	OpCountStatus    Opcode = "COUNT_STATUS"
	OpHasSpell       Opcode = "HAS_SPELL"
	OpHasMoney       Opcode = "HAS_MONEY"
	OpQuantityIs     Opcode = "QUANTITY_IS"
	OpAttributeIs    Opcode = "ATTRIBUTE_IS"
	OpChosenPlayerIs Opcode = "CHOSEN_PLAYER_IS"
	OpChosenNumberIs Opcode = "CHOSEN_NUMBER_IS"
	OpFirstAlive     Opcode = "FIRST_ALIVE"

	// Attribute tests (collaborator-resolved; may hard-fail to a branch).
	OpTestAttribute  Opcode = "TEST_ATTRIBUTE"
	OpTestParty      Opcode = "TEST_PARTY"
	OpFailThenDie    Opcode = "FAIL_THEN_DIE"
	OpTestGainStatus Opcode = "TEST_GAIN_STATUS"

	// Attribute mutation.
	OpRaiseAttribute   Opcode = "RAISE_ATTRIBUTE"
	OpLowerAttribute   Opcode = "LOWER_ATTRIBUTE"
	OpSetAttribute     Opcode = "SET_ATTRIBUTE"
	OpRestoreAttribute Opcode = "RESTORE_ATTRIBUTE"

	// Status mutation.
	OpGainStatus  Opcode = "GAIN_STATUS"
	OpLoseStatus  Opcode = "LOSE_STATUS"
	OpClearStatus Opcode = "CLEAR_STATUS"

	// Item mutation.
	OpReceiveItem  Opcode = "RECEIVE_ITEM"
	OpTakeItem     Opcode = "TAKE_ITEM"
	OpDropItem     Opcode = "DROP_ITEM"
	OpLoseItem     Opcode = "LOSE_ITEM"
	OpLoseAll      Opcode = "LOSE_ALL"
	OpDiscardItems Opcode = "DISCARD_ITEMS"
	OpItemQuantity Opcode = "ITEM_QUANTITY"
	OpAddToItem    Opcode = "ADD_TO_ITEM"
	OpTransferItem Opcode = "TRANSFER_ITEM"
	OpGiveMoney    Opcode = "GIVE_MONEY"
	OpTakeMoney    Opcode = "TAKE_MONEY"
	OpRechargeItem Opcode = "RECHARGE_ITEM"

	// Variable store arithmetic.
	OpSet            Opcode = "SET"
	OpCopy           Opcode = "COPY"
	OpMath           Opcode = "MATH"
	OpIf             Opcode = "IF"
	OpIfMath         Opcode = "IF_MATH"
	OpAnd            Opcode = "AND"
	OpOr             Opcode = "OR"
	OpShowVariables  Opcode = "SHOW_VARIABLES"
	OpClearVariables Opcode = "CLEAR_VARIABLES"

	// Interactive selection (blocks on the prompter).
	OpChooseNumber   Opcode = "CHOOSE_NUMBER"
	OpSelectPlayer   Opcode = "SELECT_PLAYER"
	OpSelectMultiple Opcode = "SELECT_MULTIPLE"
	OpSelectDice     Opcode = "SELECT_DICE"
	OpRoll           Opcode = "ROLL"
	OpConfirm        Opcode = "CONFIRM"
	OpTextBox        Opcode = "TEXTBOX"
	OpMessage        Opcode = "MESSAGE"

	// Last-battle outcome queries.
	OpBattleVictory     Opcode = "BATTLE_VICTORY"
	OpBattleFlee        Opcode = "BATTLE_FLEE"
	OpBattleEnthralment Opcode = "BATTLE_ENTHRALMENT"

	// Endurance and damage.
	OpLoseEndurance Opcode = "LOSE_ENDURANCE"
	OpGainEndurance Opcode = "GAIN_ENDURANCE"
	OpDamagePlayer  Opcode = "DAMAGE_PLAYER"
	OpDamageAll     Opcode = "DAMAGE_ALL"
	OpKillPlayer    Opcode = "KILL_PLAYER"
	OpRevivePlayer  Opcode = "REVIVE_PLAYER"
	OpFullRecovery  Opcode = "FULL_RECOVERY"

	// Spells.
	OpCallToMind     Opcode = "CALL_TO_MIND"
	OpForgetSpell    Opcode = "FORGET_SPELL"
	OpForgetAllSpell Opcode = "FORGET_ALL_SPELLS"
	OpCastSpell      Opcode = "CAST_SPELL"

	// Meta and minigame bookkeeping.
	OpPreviousLocation Opcode = "PREVIOUS_LOCATION"
	OpGoto             Opcode = "GOTO"
	OpStake            Opcode = "STAKE"
	OpCollect          Opcode = "COLLECT"
	OpKalugenDeal      Opcode = "KALUGEN_DEAL"
	OpKalugenPick      Opcode = "KALUGEN_PICK"
	OpKalugenList      Opcode = "KALUGEN_LIST"
	OpKalugenScore     Opcode = "KALUGEN_SCORE"
)

// opcodeInfo is the per-opcode metadata the dispatcher and the content
// validator share. MinArgs is the documented argument minimum; partyGate
// marks character-addressed opcodes, which report "party is dead" ahead
// of everything else, arity included.
type opcodeInfo struct {
	minArgs   int
	partyGate bool
	pure      bool
}

var opcodes = map[Opcode]opcodeInfo{
	OpInParty:        {minArgs: 1, partyGate: true, pure: true},
	OpNotInParty:     {minArgs: 1, partyGate: true, pure: true},
	OpSolo:           {minArgs: 1, partyGate: true, pure: true},
	OpHaveColleagues: {minArgs: 1, partyGate: true, pure: true},
	OpPartyCount:     {minArgs: 2, pure: true},
	OpIsAlive:        {minArgs: 1, partyGate: true, pure: true},
	OpIsDead:         {minArgs: 1, partyGate: true, pure: true},
	OpHasItem:        {minArgs: 1, pure: true},
	OpHasStatus:      {minArgs: 2, partyGate: true, pure: true},
	OpStatusAll:      {minArgs: 1, partyGate: true, pure: true},
	OpCountStatus:    {minArgs: 3, pure: true},
	OpHasSpell:       {minArgs: 2, partyGate: true, pure: true},
	OpHasMoney:       {minArgs: 1, pure: true},
	OpQuantityIs:     {minArgs: 3, pure: true},
	OpAttributeIs:    {minArgs: 4, partyGate: true, pure: true},
	OpChosenPlayerIs: {minArgs: 1, pure: true},
	OpChosenNumberIs: {minArgs: 2, pure: true},
	OpFirstAlive:     {minArgs: 0, partyGate: true},

	OpTestAttribute:  {minArgs: 2, partyGate: true},
	OpTestParty:      {minArgs: 1, partyGate: true},
	OpFailThenDie:    {minArgs: 2, partyGate: true},
	OpTestGainStatus: {minArgs: 3, partyGate: true},

	OpRaiseAttribute:   {minArgs: 3, partyGate: true},
	OpLowerAttribute:   {minArgs: 3, partyGate: true},
	OpSetAttribute:     {minArgs: 3, partyGate: true},
	OpRestoreAttribute: {minArgs: 2, partyGate: true},

	OpGainStatus:  {minArgs: 2, partyGate: true},
	OpLoseStatus:  {minArgs: 2, partyGate: true},
	OpClearStatus: {minArgs: 1, partyGate: true},

	OpReceiveItem:  {minArgs: 1, partyGate: true},
	OpTakeItem:     {minArgs: 2, partyGate: true},
	OpDropItem:     {minArgs: 2, partyGate: true},
	OpLoseItem:     {minArgs: 1},
	OpLoseAll:      {minArgs: 0},
	OpDiscardItems: {minArgs: 2, partyGate: true},
	OpItemQuantity: {minArgs: 3, partyGate: true},
	OpAddToItem:    {minArgs: 2, partyGate: true},
	OpTransferItem: {minArgs: 3, partyGate: true},
	OpGiveMoney:    {minArgs: 1, partyGate: true},
	OpTakeMoney:    {minArgs: 1, partyGate: true},
	OpRechargeItem: {minArgs: 3, partyGate: true},

	OpSet:            {minArgs: 2},
	OpCopy:           {minArgs: 2},
	OpMath:           {minArgs: 3},
	OpIf:             {minArgs: 3, pure: true},
	OpIfMath:         {minArgs: 6},
	OpAnd:            {minArgs: 6, pure: true},
	OpOr:             {minArgs: 6, pure: true},
	OpShowVariables:  {minArgs: 0, pure: true},
	OpClearVariables: {minArgs: 0},

	OpChooseNumber:   {minArgs: 2},
	OpSelectPlayer:   {minArgs: 0, partyGate: true},
	OpSelectMultiple: {minArgs: 3},
	OpSelectDice:     {minArgs: 1},
	OpRoll:           {minArgs: 4},
	OpConfirm:        {minArgs: 1},
	OpTextBox:        {minArgs: 1},
	OpMessage:        {minArgs: 1},

	OpBattleVictory:     {minArgs: 0, pure: true},
	OpBattleFlee:        {minArgs: 0, pure: true},
	OpBattleEnthralment: {minArgs: 0, pure: true},

	OpLoseEndurance: {minArgs: 2, partyGate: true},
	OpGainEndurance: {minArgs: 2, partyGate: true},
	OpDamagePlayer:  {minArgs: 2, partyGate: true},
	OpDamageAll:     {minArgs: 1, partyGate: true},
	OpKillPlayer:    {minArgs: 1, partyGate: true},
	OpRevivePlayer:  {minArgs: 1},
	OpFullRecovery:  {minArgs: 0},

	OpCallToMind:     {minArgs: 2, partyGate: true},
	OpForgetSpell:    {minArgs: 2, partyGate: true},
	OpForgetAllSpell: {minArgs: 0, partyGate: true},
	OpCastSpell:      {minArgs: 2, partyGate: true},

	OpPreviousLocation: {minArgs: 0},
	OpGoto:             {minArgs: 0},
	OpStake:            {minArgs: 2},
	OpCollect:          {minArgs: 1, partyGate: true},
	OpKalugenDeal:      {minArgs: 0},
	OpKalugenPick:      {minArgs: 1},
	OpKalugenList:      {minArgs: 0, pure: true},
	OpKalugenScore:     {minArgs: 2, pure: true},
}

// ParseOpcode matches an authored opcode name, case-sensitively, against
// the opcode table. Unmatched names map to OpNone, which the dispatcher
// reports as an internal error.
func ParseOpcode(name string) Opcode {
	op := Opcode(name)
	if _, ok := opcodes[op]; ok {
		return op
	}
	return OpNone
}

// Known reports whether an opcode is in the table.
func Known(op Opcode) bool {
	_, ok := opcodes[op]
	return ok
}

// MinArgs returns the documented argument minimum for a known opcode.
func MinArgs(op Opcode) int {
	return opcodes[op].minArgs
}

// Pure reports whether the opcode never mutates state.
func Pure(op Opcode) bool {
	return opcodes[op].pure
}

// Record is a single condition instruction, immutable once constructed.
type Record struct {
	Opcode Opcode
	Args   []string
	Branch *book.Location
	Invert bool
}

// FromSchema converts an authoring-format record to its typed form.
// Unknown type names produce a record with OpNone.
func FromSchema(s book.RecordSchema) Record {
	return Record{
		Opcode: ParseOpcode(s.Type),
		Args:   append([]string(nil), s.Variables...),
		Branch: s.Location,
		Invert: s.Invert,
	}
}

// FromSchemas converts a section's record list in order.
func FromSchemas(schemas []book.RecordSchema) []Record {
	out := make([]Record, len(schemas))
	for i, s := range schemas {
		out[i] = FromSchema(s)
	}
	return out
}

// arg returns the i-th argument, or "" when out of range. Handlers use
// it for optional trailing arguments; required arguments are covered by
// the central arity check.
func (r Record) arg(i int) string {
	if i < 0 || i >= len(r.Args) {
		return ""
	}
	return r.Args[i]
}
