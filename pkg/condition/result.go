package condition

import "github.com/battlepits/gamebook-engine/pkg/book"

// Result is the uniform outcome of evaluating one condition record.
// Success carries the opcode's judgement after the record's invert flag
// has been applied. HardFail marks a failed test that redirects the
// narrative; Branch is only set alongside it. Message is always
// player-facing text describing what happened.
type Result struct {
	Success  bool
	HardFail bool
	Branch   *book.Location
	Message  string
}
