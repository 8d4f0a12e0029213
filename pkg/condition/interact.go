package condition

import (
	"strings"

	"github.com/battlepits/gamebook-engine/pkg/names"
)

// Interactive opcodes block inside the collaborator prompt and report
// success once the prompt returns; prompts are not cancellable from
// inside the engine. A mandatory selection coming back empty is an
// authoring/internal error, not a domain failure.

func (st *evalState) promptText(argIndex int, fallback string) string {
	if t := st.rec.arg(argIndex); t != "" {
		return st.svc.MapTokens(st.party, t)
	}
	return fallback
}

func (st *evalState) chooseNumber() {
	min, ok := st.intArg(0)
	if !ok {
		return
	}
	max, ok := st.intArg(1)
	if !ok {
		return
	}
	msg := st.promptText(2, "CHOOSE A NUMBER")
	n := st.svc.SelectNumber(msg, min, max)
	st.party.ChosenNumber = n
	st.okf("YOU CHOOSE %d", n)
}

func (st *evalState) selectPlayer() {
	msg := st.promptText(0, "CHOOSE A PARTY MEMBER")
	cls := st.svc.SelectCharacter(msg, st.party, true)
	if cls == names.ClassNone {
		st.internalf("%s: no character selected", st.rec.Opcode)
		return
	}
	st.party.ChosenCharacter = cls
	st.okf("%s IS CHOSEN", cls)
}

func (st *evalState) selectMultiple() {
	varName := st.rec.arg(0)
	min, ok := st.intArg(1)
	if !ok {
		return
	}
	max, ok := st.intArg(2)
	if !ok {
		return
	}
	options := st.rec.Args[3:]
	if len(options) == 0 {
		st.internalf("%s: no options to select from", st.rec.Opcode)
		return
	}
	picks := st.svc.SelectIcons("MAKE YOUR CHOICE", options, min, max)
	if len(picks) < min {
		st.internalf("%s: selection returned %d of %d required picks",
			st.rec.Opcode, len(picks), min)
		return
	}
	chosen := make([]string, len(picks))
	for i, p := range picks {
		if p < 0 || p >= len(options) {
			st.internalf("%s: selection index out of range", st.rec.Opcode)
			return
		}
		chosen[i] = options[p]
	}
	st.party.SetVar(varName, strings.Join(chosen, ","))
	st.okf("YOU CHOOSE %s", strings.Join(chosen, ", "))
}

func (st *evalState) selectDice() {
	msg := st.promptText(0, "ROLL THE DICE")
	count, ok := st.optIntArg(1, 2)
	if !ok {
		return
	}
	sum := st.svc.SelectDice(msg, count)
	st.party.ChosenNumber = sum
	st.okf("YOU ROLL %d", sum)
}

func (st *evalState) roll() {
	actor, ok := st.assetArg(0)
	if !ok {
		return
	}
	action, ok := st.assetArg(1)
	if !ok {
		return
	}
	dice, ok := st.intArg(2)
	if !ok {
		return
	}
	modifier, ok := st.intArg(3)
	if !ok {
		return
	}
	sum := st.svc.Roll(actor, action, dice, modifier)
	st.party.ChosenNumber = sum
	st.okf("YOU ROLL %d", sum)
}

func (st *evalState) confirm() {
	msg := st.promptText(0, "ARE YOU SURE?")
	if st.svc.Confirm(msg) {
		st.okf("YOU AGREE")
		return
	}
	st.failf("YOU REFUSE")
}

func (st *evalState) textBox() {
	text := st.svc.MapTokens(st.party, st.rec.arg(0))
	st.svc.TextBox(text, st.rec.arg(1))
	st.okf("%s", text)
}

func (st *evalState) messageBox() {
	text := st.svc.MapTokens(st.party, st.rec.arg(0))
	st.svc.MessageBox(text)
	st.okf("%s", text)
}
