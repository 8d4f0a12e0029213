package condition

import "testing"

func TestOpcodeNamesRoundTrip(t *testing.T) {
	for op := range opcodes {
		if got := ParseOpcode(string(op)); got != op {
			t.Errorf("ParseOpcode(%q) = %q", op, got)
		}
		if !Known(op) {
			t.Errorf("Known(%q) = false", op)
		}
	}
	if Known(OpNone) {
		t.Error("OpNone must not be in the opcode table")
	}
	if ParseOpcode("in_party") != OpNone {
		t.Error("opcode names are case sensitive")
	}
}

func TestOpcodeMetadata(t *testing.T) {
	tests := []struct {
		op        Opcode
		minArgs   int
		partyGate bool
		pure      bool
	}{
		{OpInParty, 1, true, true},
		{OpAttributeIs, 4, true, true},
		{OpIfMath, 6, false, false},
		{OpFullRecovery, 0, false, false},
		{OpBattleVictory, 0, false, true},
		{OpKalugenScore, 2, false, true},
	}
	for _, tt := range tests {
		info := opcodes[tt.op]
		if info.minArgs != tt.minArgs || info.partyGate != tt.partyGate || info.pure != tt.pure {
			t.Errorf("%s: got %+v", tt.op, info)
		}
	}
	if MinArgs(OpAttributeIs) != 4 {
		t.Error("MinArgs should read the table")
	}
	if !Pure(OpIf) || Pure(OpMath) {
		t.Error("IF is pure, MATH is not")
	}
}
