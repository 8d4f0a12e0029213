package condition

import (
	"fmt"

	"github.com/battlepits/gamebook-engine/pkg/book"
	"github.com/battlepits/gamebook-engine/pkg/party"
)

// Fixed player-facing messages shared across opcodes.
const (
	msgPartyDead     = "YOUR PARTY IS DEAD!"
	msgNotVictorious = "YOU WERE NOT VICTORIOUS IN THE LAST BATTLE!"
	msgNotFled       = "YOU DID NOT FLEE FROM THE LAST BATTLE!"
	msgNotEnthralled = "YOUR ENEMIES WERE NOT ENTHRALLED IN THE LAST BATTLE!"
)

// evalState carries one evaluation through dispatch. It exists for the
// duration of a single Evaluate call; the engine keeps no state between
// calls beyond the party aggregate it was handed.
type evalState struct {
	svc   Services
	party *party.Party
	index *book.Index
	rec   Record

	success  bool
	hardFail bool
	internal bool
	branch   *book.Location
	message  string
}

// Evaluate runs one condition record against the party. The story index
// is passed explicitly so branch destinations can be verified without
// any global current-book; a nil index skips that verification.
//
// The contract, uniform across every opcode:
//   - character-addressed opcodes short-circuit with the party-dead
//     message when no member is living, ahead of the arity check;
//   - an unknown opcode or an argument list below the opcode's minimum
//     is an internal (authoring) error, reported and never mutating;
//   - the record's invert flag negates the reported success after the
//     handler ran — side effects are never undone;
//   - the final tuple is logged unconditionally.
func Evaluate(svc Services, p *party.Party, idx *book.Index, rec Record) Result {
	st := &evalState{svc: svc, party: p, index: idx, rec: rec}

	info, known := opcodes[rec.Opcode]
	switch {
	case !known:
		st.internalf("unknown opcode %q", string(rec.Opcode))
	case info.partyGate && !p.Alive():
		st.message = msgPartyDead
	case len(rec.Args) < info.minArgs:
		st.internalf("%s requires at least %d arguments, got %d",
			rec.Opcode, info.minArgs, len(rec.Args))
	default:
		st.dispatch()
	}

	if st.internal {
		svc.ReportError(st.message)
	}

	success := st.success
	if rec.Invert {
		success = !success
	}
	svc.Log(rec.Opcode, success, st.hardFail, st.message, rec.Invert)

	res := Result{Success: success, HardFail: st.hardFail, Message: st.message}
	if st.hardFail {
		res.Branch = st.branch
	}
	return res
}

// EvaluateAll runs a section's record list strictly in order, as later
// records may read variables or statuses written by earlier ones.
func EvaluateAll(svc Services, p *party.Party, idx *book.Index, recs []Record) []Result {
	out := make([]Result, len(recs))
	for i, rec := range recs {
		out[i] = Evaluate(svc, p, idx, rec)
	}
	return out
}

func (st *evalState) dispatch() {
	switch st.rec.Opcode {
	case OpInParty:
		st.inParty()
	case OpNotInParty:
		st.notInParty()
	case OpSolo:
		st.solo()
	case OpHaveColleagues:
		st.haveColleagues()
	case OpPartyCount:
		st.partyCount()
	case OpIsAlive:
		st.isAlive()
	case OpIsDead:
		st.isDead()
	case OpHasItem:
		st.hasItem()
	case OpHasStatus:
		st.hasStatus()
	case OpStatusAll:
		st.statusAll()
	case OpCountStatus:
		st.countStatus()
	case OpHasSpell:
		st.hasSpell()
	case OpHasMoney:
		st.hasMoney()
	case OpQuantityIs:
		st.quantityIs()
	case OpAttributeIs:
		st.attributeIs()
	case OpChosenPlayerIs:
		st.chosenPlayerIs()
	case OpChosenNumberIs:
		st.chosenNumberIs()
	case OpFirstAlive:
		st.firstAlive()

	case OpTestAttribute:
		st.testAttribute()
	case OpTestParty:
		st.testParty()
	case OpFailThenDie:
		st.failThenDie()
	case OpTestGainStatus:
		st.testGainStatus()

	case OpRaiseAttribute:
		st.adjustAttribute(1)
	case OpLowerAttribute:
		st.adjustAttribute(-1)
	case OpSetAttribute:
		st.setAttribute()
	case OpRestoreAttribute:
		st.restoreAttribute()

	case OpGainStatus:
		st.gainStatus()
	case OpLoseStatus:
		st.loseStatus()
	case OpClearStatus:
		st.clearStatus()

	case OpReceiveItem:
		st.receiveItem()
	case OpTakeItem:
		st.takeItem()
	case OpDropItem:
		st.dropItem()
	case OpLoseItem:
		st.loseItem()
	case OpLoseAll:
		st.loseAll()
	case OpDiscardItems:
		st.discardItems()
	case OpItemQuantity:
		st.itemQuantity()
	case OpAddToItem:
		st.addToItem()
	case OpTransferItem:
		st.transferItem()
	case OpGiveMoney:
		st.giveMoney()
	case OpTakeMoney:
		st.takeMoney()
	case OpRechargeItem:
		st.rechargeItem()

	case OpSet:
		st.setVar()
	case OpCopy:
		st.copyVar()
	case OpMath:
		st.mathVar()
	case OpIf:
		st.ifVar()
	case OpIfMath:
		st.ifMath()
	case OpAnd:
		st.andOr(true)
	case OpOr:
		st.andOr(false)
	case OpShowVariables:
		st.showVariables()
	case OpClearVariables:
		st.clearVariables()

	case OpChooseNumber:
		st.chooseNumber()
	case OpSelectPlayer:
		st.selectPlayer()
	case OpSelectMultiple:
		st.selectMultiple()
	case OpSelectDice:
		st.selectDice()
	case OpRoll:
		st.roll()
	case OpConfirm:
		st.confirm()
	case OpTextBox:
		st.textBox()
	case OpMessage:
		st.messageBox()

	case OpBattleVictory:
		st.battleOutcome(party.BattleVictory, msgNotVictorious)
	case OpBattleFlee:
		st.battleOutcome(party.BattleFlee, msgNotFled)
	case OpBattleEnthralment:
		st.battleOutcome(party.BattleEnthralment, msgNotEnthralled)

	case OpLoseEndurance:
		st.loseEndurance()
	case OpGainEndurance:
		st.gainEndurance()
	case OpDamagePlayer:
		st.damagePlayer()
	case OpDamageAll:
		st.damageAll()
	case OpKillPlayer:
		st.killPlayer()
	case OpRevivePlayer:
		st.revivePlayer()
	case OpFullRecovery:
		st.fullRecovery()

	case OpCallToMind:
		st.callToMind()
	case OpForgetSpell:
		st.forgetSpell()
	case OpForgetAllSpell:
		st.forgetAllSpells()
	case OpCastSpell:
		st.castSpell()

	case OpPreviousLocation:
		st.previousLocation()
	case OpGoto:
		st.gotoBranch()
	case OpStake:
		st.stake()
	case OpCollect:
		st.collect()
	case OpKalugenDeal:
		st.kalugenDeal()
	case OpKalugenPick:
		st.kalugenPick()
	case OpKalugenList:
		st.kalugenList()
	case OpKalugenScore:
		st.kalugenScore()

	default:
		st.internalf("opcode %s has no handler", st.rec.Opcode)
	}
}

// internalf marks the evaluation as a content-authoring error. No
// handler mutates state after calling it.
func (st *evalState) internalf(format string, args ...any) {
	st.internal = true
	st.success = false
	st.message = fmt.Sprintf(format, args...)
}

// failf records an expected domain failure with a player-facing message.
func (st *evalState) failf(format string, args ...any) {
	st.success = false
	st.message = fmt.Sprintf(format, args...)
}

// okf records success with a player-facing message.
func (st *evalState) okf(format string, args ...any) {
	st.success = true
	st.message = fmt.Sprintf(format, args...)
}

// branchTo records a hard failure redirecting the narrative.
func (st *evalState) branchTo(loc *book.Location, message string) {
	st.success = false
	st.hardFail = true
	st.branch = loc
	st.message = message
	if loc == nil {
		st.internalf("%s has no branch destination", st.rec.Opcode)
		st.hardFail = false
		return
	}
	if st.index != nil {
		if _, ok := st.index.ResolveSection(*loc); !ok {
			st.internalf("%s branch destination %s does not exist", st.rec.Opcode, loc)
			st.hardFail = false
			st.branch = nil
		}
	}
}
