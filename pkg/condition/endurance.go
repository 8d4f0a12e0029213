package condition

import (
	"strings"

	"github.com/battlepits/gamebook-engine/pkg/names"
	"github.com/battlepits/gamebook-engine/pkg/party"
)

// Endurance and damage opcodes. Every mutation re-checks liveness
// afterwards: a character can die as a side effect, and the message must
// say so.

// armourFlag reports whether an optional trailing argument asks for the
// armour deduction.
func (st *evalState) armourFlag(argIndex int) bool {
	return strings.EqualFold(st.rec.arg(argIndex), "ARMOUR")
}

// applyEnduranceLoss deducts endurance and reports, including death.
func (st *evalState) applyEnduranceLoss(c *party.Character, loss int) {
	if loss < 0 {
		loss = 0
	}
	c.Adjust(names.Endurance, -loss)
	if !c.Alive() {
		st.okf("%s LOSES %d ENDURANCE AND DIES!", c.Class, loss)
		return
	}
	st.okf("%s LOSES %d ENDURANCE!", c.Class, loss)
}

func (st *evalState) loseEndurance() {
	c, ok := st.liveMember(0)
	if !ok {
		return
	}
	n, ok := st.intArg(1)
	if !ok {
		return
	}
	if st.armourFlag(2) {
		n -= c.Attribute(names.Armour)
	}
	st.applyEnduranceLoss(c, n)
}

func (st *evalState) gainEndurance() {
	c, ok := st.liveMember(0)
	if !ok {
		return
	}
	n, ok := st.intArg(1)
	if !ok {
		return
	}
	before := c.Attribute(names.Endurance)
	c.Adjust(names.Endurance, n)
	gained := c.Attribute(names.Endurance) - before
	st.okf("%s GAINS %d ENDURANCE", c.Class, gained)
}

func (st *evalState) damagePlayer() {
	c, ok := st.liveMember(0)
	if !ok {
		return
	}
	dice, ok := st.intArg(1)
	if !ok {
		return
	}
	modifier, ok := st.optIntArg(2, 0)
	if !ok {
		return
	}
	ignoreArmour := strings.EqualFold(st.rec.arg(3), "IGNORE_ARMOUR")
	damage := st.svc.CombatDamage(c, dice, modifier, ignoreArmour)
	st.applyEnduranceLoss(c, damage)
}

func (st *evalState) damageAll() {
	dice, ok := st.intArg(0)
	if !ok {
		return
	}
	modifier, ok := st.optIntArg(1, 0)
	if !ok {
		return
	}
	var fallen []names.Class
	for _, c := range st.party.Living() {
		damage := st.svc.CombatDamage(c, dice, modifier, false)
		if damage < 0 {
			damage = 0
		}
		c.Adjust(names.Endurance, -damage)
		if !c.Alive() {
			fallen = append(fallen, c.Class)
		}
	}
	if len(fallen) > 0 {
		names := make([]string, len(fallen))
		for i, cls := range fallen {
			names[i] = string(cls)
		}
		st.okf("EVERYONE IS HURT; %s FALL!", strings.Join(names, ", "))
		return
	}
	st.okf("EVERYONE IS HURT!")
}

func (st *evalState) killPlayer() {
	targets, ok := st.targets(0)
	if !ok {
		return
	}
	for _, c := range targets {
		c.Kill()
	}
	if st.targetIsAll(0) {
		st.okf("EVERYONE DIES!")
		return
	}
	st.okf("%s DIES!", targets[0].Class)
}

func (st *evalState) revivePlayer() {
	c, ok := st.member(0)
	if !ok {
		return
	}
	if c.Alive() {
		st.okf("%s IS ALREADY ALIVE", c.Class)
		return
	}
	n, ok := st.optIntArg(1, 1)
	if !ok {
		return
	}
	c.Revive(n)
	st.okf("%s RETURNS TO LIFE WITH %d ENDURANCE", c.Class, c.Attribute(names.Endurance))
}

func (st *evalState) fullRecovery() {
	var targets []*party.Character
	all := len(st.rec.Args) == 0 || st.targetIsAll(0)
	if len(st.rec.Args) > 0 {
		var ok bool
		targets, ok = st.targets(0)
		if !ok {
			return
		}
	} else {
		targets = st.party.Living()
	}
	if len(targets) == 0 {
		st.failf(msgPartyDead)
		return
	}
	for _, c := range targets {
		c.Restore(names.Endurance)
	}
	if all {
		st.okf("EVERYONE'S ENDURANCE IS RESTORED")
		return
	}
	st.okf("%s'S ENDURANCE IS RESTORED", targets[0].Class)
}
