package condition

import (
	"strconv"

	"github.com/battlepits/gamebook-engine/pkg/names"
	"github.com/battlepits/gamebook-engine/pkg/party"
)

// Argument resolution helpers. Every helper that fails marks the
// evaluation as an internal error — an unresolvable name is equivalent
// to a missing argument — and the caller returns immediately on !ok.

// classArg resolves argument i as a single character class.
func (st *evalState) classArg(i int) (names.Class, bool) {
	raw := st.rec.arg(i)
	cls := names.ToClass(raw)
	if cls == names.ClassNone {
		st.internalf("%s: unresolvable character %q", st.rec.Opcode, raw)
		return names.ClassNone, false
	}
	return cls, true
}

// targetArg resolves argument i as a class or the ALL sentinel.
func (st *evalState) targetArg(i int) (names.Class, bool) {
	raw := st.rec.arg(i)
	cls := names.ToTarget(raw)
	if cls == names.ClassNone {
		st.internalf("%s: unresolvable target %q", st.rec.Opcode, raw)
		return names.ClassNone, false
	}
	return cls, true
}

// member resolves argument i to a party member, applying the "not in
// party" step of the failure-precedence rule but allowing dead members.
func (st *evalState) member(i int) (*party.Character, bool) {
	cls, ok := st.classArg(i)
	if !ok {
		return nil, false
	}
	c, present := st.party.Member(cls)
	if !present {
		st.failf("%s IS NOT IN THE PARTY!", cls)
		return nil, false
	}
	return c, true
}

// liveMember resolves argument i to a living party member, applying the
// full precedence order: not in party, then dead.
func (st *evalState) liveMember(i int) (*party.Character, bool) {
	c, ok := st.member(i)
	if !ok {
		return nil, false
	}
	if !c.Alive() {
		st.failf("%s IS DEAD!", c.Class)
		return nil, false
	}
	return c, true
}

// targets resolves argument i to the addressed living members: every
// living member for ALL, otherwise the single member it names.
func (st *evalState) targets(i int) ([]*party.Character, bool) {
	cls, ok := st.targetArg(i)
	if !ok {
		return nil, false
	}
	if cls == names.ClassAll {
		return st.party.Living(), true
	}
	c, ok := st.liveMember(i)
	if !ok {
		return nil, false
	}
	return []*party.Character{c}, true
}

// targetIsAll reports whether argument i names the ALL sentinel. The
// EVERYONE message forms key on it, not on how many members survive.
func (st *evalState) targetIsAll(i int) bool {
	return names.ToTarget(st.rec.arg(i)) == names.ClassAll
}

// intArg parses argument i as an integer.
func (st *evalState) intArg(i int) (int, bool) {
	raw := st.rec.arg(i)
	n, err := strconv.Atoi(raw)
	if err != nil {
		st.internalf("%s: argument %d is not a number: %q", st.rec.Opcode, i, raw)
		return 0, false
	}
	return n, true
}

// optIntArg parses optional argument i, returning def when absent.
func (st *evalState) optIntArg(i, def int) (int, bool) {
	if i >= len(st.rec.Args) || st.rec.Args[i] == "" {
		return def, true
	}
	return st.intArg(i)
}

func (st *evalState) itemArg(i int) (names.Item, bool) {
	raw := st.rec.arg(i)
	it := names.ToItem(raw)
	if it == names.ItemNone {
		st.internalf("%s: unresolvable item %q", st.rec.Opcode, raw)
		return names.ItemNone, false
	}
	return it, true
}

func (st *evalState) statusArg(i int) (names.Status, bool) {
	raw := st.rec.arg(i)
	s := names.ToStatus(raw)
	if s == names.StatusNone {
		st.internalf("%s: unresolvable status %q", st.rec.Opcode, raw)
		return names.StatusNone, false
	}
	return s, true
}

func (st *evalState) attrArg(i int) (names.Attribute, bool) {
	raw := st.rec.arg(i)
	a := names.ToAttribute(raw)
	if a == names.AttributeNone {
		st.internalf("%s: unresolvable attribute %q", st.rec.Opcode, raw)
		return names.AttributeNone, false
	}
	return a, true
}

func (st *evalState) spellArg(i int) (names.Spell, bool) {
	raw := st.rec.arg(i)
	sp := names.ToSpell(raw)
	if sp == names.SpellNone {
		st.internalf("%s: unresolvable spell %q", st.rec.Opcode, raw)
		return names.SpellNone, false
	}
	return sp, true
}

func (st *evalState) assetArg(i int) (names.Asset, bool) {
	raw := st.rec.arg(i)
	a := names.ToAsset(raw)
	if a == names.AssetNone {
		st.internalf("%s: unresolvable asset %q", st.rec.Opcode, raw)
		return names.AssetNone, false
	}
	return a, true
}

// compareOp validates a relational operator argument.
func (st *evalState) compareOp(i int) (string, bool) {
	op := st.rec.arg(i)
	switch op {
	case "=", "!=", "<", ">", "<=", ">=":
		return op, true
	}
	st.internalf("%s: unknown comparison operator %q", st.rec.Opcode, op)
	return "", false
}
