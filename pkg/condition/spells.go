package condition

// Spell opcodes operate on the called-to-mind set. Casting goes through
// the collaborator; a successfully cast spell leaves the caster's mind.

func (st *evalState) callToMind() {
	c, ok := st.liveMember(0)
	if !ok {
		return
	}
	spell, ok := st.spellArg(1)
	if !ok {
		return
	}
	c.CallToMind(spell)
	st.okf("%s CALLS [%s] TO MIND", c.Class, spell)
}

func (st *evalState) forgetSpell() {
	c, ok := st.liveMember(0)
	if !ok {
		return
	}
	spell, ok := st.spellArg(1)
	if !ok {
		return
	}
	c.Forget(spell)
	st.okf("%s FORGETS [%s]", c.Class, spell)
}

func (st *evalState) forgetAllSpells() {
	if len(st.rec.Args) > 0 {
		c, ok := st.liveMember(0)
		if !ok {
			return
		}
		c.ForgetAll()
		st.okf("%s'S MIND IS EMPTIED", c.Class)
		return
	}
	for _, c := range st.party.Living() {
		c.ForgetAll()
	}
	st.okf("ALL SPELLS LEAVE YOUR MINDS")
}

func (st *evalState) castSpell() {
	c, ok := st.liveMember(0)
	if !ok {
		return
	}
	spell, ok := st.spellArg(1)
	if !ok {
		return
	}
	if !c.HasSpell(spell) {
		st.failf("%s DOES NOT HAVE [%s] CALLED TO MIND", c.Class, spell)
		return
	}
	if !st.svc.CastSpell(c, spell) {
		st.failf("THE SPELL FAILS!")
		return
	}
	c.Forget(spell)
	st.okf("%s CASTS [%s]", c.Class, spell)
}
