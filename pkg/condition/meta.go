package condition

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/battlepits/gamebook-engine/pkg/names"
)

// Meta bookkeeping and the card-table minigame. The minigame opcodes
// keep only pick/stake/collect state on the party; the table's own
// scoring presentation belongs to the collaborator.

func (st *evalState) previousLocation() {
	loc := st.party.PreviousLocation
	st.branchTo(&loc, "YOU RETURN THE WAY YOU CAME")
}

func (st *evalState) gotoBranch() {
	st.branchTo(st.rec.Branch, "YOU ARE SWEPT ONWARD")
}

func (st *evalState) stake() {
	varName := st.rec.arg(0)
	min, ok := st.intArg(1)
	if !ok {
		return
	}
	max, ok := st.optIntArg(2, min)
	if !ok {
		return
	}
	amount := st.svc.SelectNumber("HOW MUCH WILL YOU STAKE?", min, max)
	if st.party.Quantity(names.Gold) < amount {
		st.failf("NOT ENOUGH [GOLD]!")
		return
	}
	st.adjustPartyQuantity(names.Gold, -amount)
	if !st.success {
		return
	}
	st.party.SetVar(varName, strconv.Itoa(amount))
	st.okf("YOU STAKE %d [GOLD]", amount)
}

func (st *evalState) collect() {
	varName := st.rec.arg(0)
	amount, _ := strconv.Atoi(st.party.GetVar(varName))
	if amount <= 0 {
		st.failf("THERE IS NOTHING TO COLLECT")
		return
	}
	c, ok := st.recipient(1)
	if !ok {
		return
	}
	st.adjustMemberQuantity(c, names.Gold, amount)
	if !st.success {
		return
	}
	st.party.SetVar(varName, "0")
	st.okf("YOU COLLECT %d [GOLD]", amount)
}

// kalugenOptions returns the card labels on offer: the record's own
// arguments when present, a standard table of 25 face-down cards
// otherwise.
func (st *evalState) kalugenOptions() []string {
	if len(st.rec.Args) > 0 {
		return st.rec.Args
	}
	options := make([]string, 25)
	for i := range options {
		options[i] = fmt.Sprintf("CARD %d", i+1)
	}
	return options
}

func (st *evalState) kalugenDeal() {
	options := st.kalugenOptions()
	picks := st.svc.SelectIcons("CHOOSE YOUR CARDS", options, 4, 4)
	if len(picks) == 0 {
		st.internalf("%s: no cards selected", st.rec.Opcode)
		return
	}
	st.party.Cards = append([]int(nil), picks...)
	st.okf("YOU TAKE %d CARDS", len(picks))
}

func (st *evalState) kalugenPick() {
	n, ok := st.intArg(0)
	if !ok {
		return
	}
	st.party.Cards = append(st.party.Cards, n)
	st.okf("YOU TAKE CARD %d", n)
}

func (st *evalState) kalugenList() {
	if len(st.party.Cards) == 0 {
		st.okf("YOU HOLD NO CARDS")
		return
	}
	labels := make([]string, len(st.party.Cards))
	for i, card := range st.party.Cards {
		labels[i] = strconv.Itoa(card)
	}
	listing := "YOUR CARDS: " + strings.Join(labels, ", ")
	st.svc.MessageBox(listing)
	st.okf("%s", listing)
}

func (st *evalState) kalugenScore() {
	op, ok := st.compareOp(0)
	if !ok {
		return
	}
	n, ok := st.intArg(1)
	if !ok {
		return
	}
	score := 0
	for _, card := range st.party.Cards {
		score += card
	}
	if compareInts(op, score, n) {
		st.okf("YOUR CARDS SCORE %d", score)
		return
	}
	st.failf("YOUR CARDS SCORE %d", score)
}
