package condition

// Status mutation. The ALL sentinel addresses every living member and
// switches the message to its EVERYONE form.

func (st *evalState) gainStatus() {
	targets, ok := st.targets(0)
	if !ok {
		return
	}
	status, ok := st.statusArg(1)
	if !ok {
		return
	}
	for _, c := range targets {
		c.GainStatus(status)
	}
	if st.targetIsAll(0) {
		st.okf("EVERYONE GAINS [%s]", status)
		return
	}
	st.okf("YOU GAIN [%s]", status)
}

func (st *evalState) loseStatus() {
	targets, ok := st.targets(0)
	if !ok {
		return
	}
	status, ok := st.statusArg(1)
	if !ok {
		return
	}
	for _, c := range targets {
		c.LoseStatus(status)
	}
	if st.targetIsAll(0) {
		st.okf("EVERYONE LOSES [%s]", status)
		return
	}
	st.okf("YOU LOSE [%s]", status)
}

func (st *evalState) clearStatus() {
	targets, ok := st.targets(0)
	if !ok {
		return
	}
	for _, c := range targets {
		c.ClearStatuses()
	}
	if st.targetIsAll(0) {
		st.okf("EVERYONE'S STATUSES ARE CLEARED")
		return
	}
	st.okf("%s'S STATUSES ARE CLEARED", targets[0].Class)
}
