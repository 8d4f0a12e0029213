package party

import "strconv"

// The variable store backs the SET/COPY/MATH/IF opcode family. Values
// are strings; arithmetic coerces through int with unset or malformed
// values reading as 0. Operands passed to Math and Compare resolve
// variable names first, literals second.

// GetVar returns the variable's value, or "" when unset.
func (p *Party) GetVar(name string) string {
	return p.Vars[name]
}

// SetVar stores a value.
func (p *Party) SetVar(name, value string) {
	if p.Vars == nil {
		p.Vars = make(map[string]string)
	}
	p.Vars[name] = value
}

// ClearVars empties the variable store.
func (p *Party) ClearVars() {
	p.Vars = make(map[string]string)
}

// ResolveOperand maps an operand string to its value: a variable name
// resolves to the variable's value, anything else is taken literally.
func (p *Party) ResolveOperand(s string) string {
	if v, ok := p.Vars[s]; ok {
		return v
	}
	return s
}

// operandInt resolves an operand and coerces it to int, defaulting to 0.
func (p *Party) operandInt(s string) int {
	n, _ := strconv.Atoi(p.ResolveOperand(s))
	return n
}

// Math applies dst = dst op operand on the variable store. The
// destination is always a variable name; an unset destination reads as
// "0". Supported ops: + - *.
func (p *Party) Math(op, dst, operand string) bool {
	lhs, _ := strconv.Atoi(p.GetVar(dst))
	rhs := p.operandInt(operand)
	var result int
	switch op {
	case "+":
		result = lhs + rhs
	case "-":
		result = lhs - rhs
	case "*":
		result = lhs * rhs
	default:
		return false
	}
	p.SetVar(dst, strconv.Itoa(result))
	return true
}

// Compare evaluates a relational test over two operands. Numeric
// comparison is used when both operands coerce cleanly to int, string
// comparison otherwise. Supported ops: = != < > <= >=.
func (p *Party) Compare(op, a, b string) (bool, bool) {
	av := p.ResolveOperand(a)
	bv := p.ResolveOperand(b)

	an, aerr := strconv.Atoi(av)
	bn, berr := strconv.Atoi(bv)
	if aerr == nil && berr == nil {
		switch op {
		case "=":
			return an == bn, true
		case "!=":
			return an != bn, true
		case "<":
			return an < bn, true
		case ">":
			return an > bn, true
		case "<=":
			return an <= bn, true
		case ">=":
			return an >= bn, true
		}
		return false, false
	}

	switch op {
	case "=":
		return av == bv, true
	case "!=":
		return av != bv, true
	case "<":
		return av < bv, true
	case ">":
		return av > bv, true
	case "<=":
		return av <= bv, true
	case ">=":
		return av >= bv, true
	}
	return false, false
}
