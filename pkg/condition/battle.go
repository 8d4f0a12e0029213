package condition

import "github.com/battlepits/gamebook-engine/pkg/party"

// Last-battle outcome queries. Pure reads of the party's recorded
// result, each with its fixed failure message.

func (st *evalState) battleOutcome(want party.BattleResult, failMessage string) {
	if st.party.LastBattle == want {
		st.okf("THE LAST BATTLE ENDED IN %s", want)
		return
	}
	st.failf("%s", failMessage)
}
