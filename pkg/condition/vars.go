package condition

import (
	"sort"
	"strings"
)

// Variable-store opcodes. Operands resolve through the store first: an
// operand matching a variable name reads that variable's value, anything
// else is a literal. Unset numeric reads default to 0.

func (st *evalState) setVar() {
	name := st.rec.arg(0)
	value := st.party.ResolveOperand(st.rec.arg(1))
	st.party.SetVar(name, value)
	st.okf("%s = %s", name, value)
}

func (st *evalState) copyVar() {
	dst := st.rec.arg(0)
	src := st.rec.arg(1)
	value := st.party.ResolveOperand(src)
	st.party.SetVar(dst, value)
	st.okf("%s = %s", dst, value)
}

func (st *evalState) mathVar() {
	op := st.rec.arg(0)
	dst := st.rec.arg(1)
	operand := st.rec.arg(2)
	if !st.party.Math(op, dst, operand) {
		st.internalf("%s: unknown arithmetic operator %q", st.rec.Opcode, op)
		return
	}
	st.okf("%s = %s", dst, st.party.GetVar(dst))
}

// ifTriple evaluates one relational triple starting at argument base.
func (st *evalState) ifTriple(base int) (bool, bool) {
	op := st.rec.arg(base)
	a := st.rec.arg(base + 1)
	b := st.rec.arg(base + 2)
	result, valid := st.party.Compare(op, a, b)
	if !valid {
		st.internalf("%s: unknown comparison operator %q", st.rec.Opcode, op)
		return false, false
	}
	return result, true
}

func (st *evalState) ifVar() {
	result, ok := st.ifTriple(0)
	if !ok {
		return
	}
	av := st.party.ResolveOperand(st.rec.arg(1))
	bv := st.party.ResolveOperand(st.rec.arg(2))
	if result {
		st.okf("%s %s %s HOLDS", av, st.rec.arg(0), bv)
		return
	}
	st.failf("%s %s %s DOES NOT HOLD", av, st.rec.arg(0), bv)
}

func (st *evalState) ifMath() {
	result, ok := st.ifTriple(0)
	if !ok {
		return
	}
	if !result {
		st.failf("%s %s %s DOES NOT HOLD",
			st.party.ResolveOperand(st.rec.arg(1)),
			st.rec.arg(0),
			st.party.ResolveOperand(st.rec.arg(2)))
		return
	}
	op := st.rec.arg(3)
	dst := st.rec.arg(4)
	operand := st.rec.arg(5)
	if !st.party.Math(op, dst, operand) {
		st.internalf("%s: unknown arithmetic operator %q", st.rec.Opcode, op)
		return
	}
	st.okf("%s = %s", dst, st.party.GetVar(dst))
}

// andOr composes two independent relational triples.
func (st *evalState) andOr(conjunction bool) {
	first, ok := st.ifTriple(0)
	if !ok {
		return
	}
	second, ok := st.ifTriple(3)
	if !ok {
		return
	}
	var result bool
	if conjunction {
		result = first && second
	} else {
		result = first || second
	}
	if result {
		st.okf("THE CONDITION HOLDS")
		return
	}
	st.failf("THE CONDITION DOES NOT HOLD")
}

func (st *evalState) showVariables() {
	names := st.rec.Args
	if len(names) == 0 {
		names = make([]string, 0, len(st.party.Vars))
		for name := range st.party.Vars {
			names = append(names, name)
		}
		sort.Strings(names)
	}
	if len(names) == 0 {
		st.okf("NO VARIABLES SET")
		return
	}
	pairs := make([]string, len(names))
	for i, name := range names {
		pairs[i] = name + " = " + st.party.GetVar(name)
	}
	listing := strings.Join(pairs, ", ")
	st.svc.MessageBox(listing)
	st.okf("%s", listing)
}

func (st *evalState) clearVariables() {
	st.party.ClearVars()
	st.okf("ALL VARIABLES CLEARED")
}
