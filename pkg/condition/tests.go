package condition

import (
	"strings"

	"github.com/battlepits/gamebook-engine/pkg/names"
)

// Attribute-test opcodes delegate the roll itself to the collaborator's
// AttributeTest and never touch the attribute — except FAIL_THEN_DIE,
// which zeroes endurance on failure. A failed test hard-fails to the
// record's branch destination.

// testFailureMessage returns the authored failure text when the record
// carries one past the fixed arguments, or a default.
func (st *evalState) testFailureMessage(argIndex int, c names.Class, attr names.Attribute) string {
	if msg := st.rec.arg(argIndex); msg != "" {
		return msg
	}
	return string(c) + " FAILS THE " + string(attr) + " TEST!"
}

func (st *evalState) testAttribute() {
	c, ok := st.liveMember(0)
	if !ok {
		return
	}
	attr, ok := st.attrArg(1)
	if !ok {
		return
	}
	if st.svc.AttributeTest(c, attr) {
		st.okf("%s PASSES THE %s TEST", c.Class, attr)
		return
	}
	st.branchTo(st.rec.Branch, st.testFailureMessage(2, c.Class, attr))
}

func (st *evalState) testParty() {
	attr, ok := st.attrArg(0)
	if !ok {
		return
	}
	for _, c := range st.party.Living() {
		if !st.svc.AttributeTest(c, attr) {
			st.branchTo(st.rec.Branch, st.testFailureMessage(1, c.Class, attr))
			return
		}
	}
	st.okf("EVERYONE PASSES THE %s TEST", attr)
}

func (st *evalState) failThenDie() {
	c, ok := st.liveMember(0)
	if !ok {
		return
	}
	attr, ok := st.attrArg(1)
	if !ok {
		return
	}
	if st.svc.AttributeTest(c, attr) {
		st.okf("%s PASSES THE %s TEST", c.Class, attr)
		return
	}
	c.Kill()
	st.branchTo(st.rec.Branch, st.testFailureMessage(2, c.Class, attr))
}

func (st *evalState) testGainStatus() {
	c, ok := st.liveMember(0)
	if !ok {
		return
	}
	attr, ok := st.attrArg(1)
	if !ok {
		return
	}
	status, ok := st.statusArg(2)
	if !ok {
		return
	}
	if st.svc.AttributeTest(c, attr) {
		st.okf("%s PASSES THE %s TEST", c.Class, attr)
		return
	}
	c.GainStatus(status)
	st.failf("%s FAILS AND GAINS [%s]!", c.Class, status)
}

// Attribute mutation.

func (st *evalState) adjustAttribute(sign int) {
	targets, ok := st.targets(0)
	if !ok {
		return
	}
	attr, ok := st.attrArg(1)
	if !ok {
		return
	}
	n, ok := st.intArg(2)
	if !ok {
		return
	}
	delta := sign * n
	var fallen []names.Class
	for _, c := range targets {
		c.Adjust(attr, delta)
		if attr == names.Endurance && delta < 0 && !c.Alive() {
			fallen = append(fallen, c.Class)
		}
	}
	verb := "RAISED"
	if delta < 0 {
		verb = "LOWERED"
	}
	if st.targetIsAll(0) {
		st.okf("EVERYONE'S %s IS %s BY %d", attr, verb, n)
	} else {
		st.okf("%s'S %s IS %s BY %d", targets[0].Class, attr, verb, n)
	}

	// Lowering endurance can kill; report it rather than leaving the
	// narrative to discover a corpse.
	if len(fallen) == 1 {
		st.okf("%s DIES!", fallen[0])
	} else if len(fallen) > 1 {
		classes := make([]string, len(fallen))
		for i, cls := range fallen {
			classes[i] = string(cls)
		}
		st.okf("%s FALL!", strings.Join(classes, ", "))
	}
}

func (st *evalState) setAttribute() {
	c, ok := st.liveMember(0)
	if !ok {
		return
	}
	attr, ok := st.attrArg(1)
	if !ok {
		return
	}
	n, ok := st.intArg(2)
	if !ok {
		return
	}
	c.SetAttribute(attr, n)
	st.okf("%s'S %s IS NOW %d", c.Class, attr, c.Attribute(attr))
}

func (st *evalState) restoreAttribute() {
	c, ok := st.liveMember(0)
	if !ok {
		return
	}
	attr, ok := st.attrArg(1)
	if !ok {
		return
	}
	c.Restore(attr)
	st.okf("%s'S %s IS RESTORED TO %d", c.Class, attr, c.Attribute(attr))
}
