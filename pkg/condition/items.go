package condition

import (
	"fmt"

	"github.com/battlepits/gamebook-engine/pkg/names"
	"github.com/battlepits/gamebook-engine/pkg/party"
)

// Item mutation. Container quantities clamp at zero; an opcode that only
// decrements rejects the whole mutation and reports "not enough" when
// the held quantity is insufficient.

// recipient resolves the member who receives an item: the class at
// argIndex when present, otherwise the chosen character, otherwise the
// first living member.
func (st *evalState) recipient(argIndex int) (*party.Character, bool) {
	if argIndex < len(st.rec.Args) && st.rec.Args[argIndex] != "" {
		return st.liveMember(argIndex)
	}
	if st.party.ChosenCharacter != names.ClassNone {
		if c, ok := st.party.Member(st.party.ChosenCharacter); ok && c.Alive() {
			return c, true
		}
	}
	if first, ok := st.party.First(); ok {
		return first, true
	}
	st.failf(msgPartyDead)
	return nil, false
}

func (st *evalState) receiveItem() {
	item, ok := st.itemArg(0)
	if !ok {
		return
	}
	c, ok := st.recipient(1)
	if !ok {
		return
	}
	c.AddItem(party.NewItem(item, 0))
	st.okf("%s RECEIVES A [%s]", c.Class, item)
}

func (st *evalState) takeItem() {
	c, ok := st.liveMember(0)
	if !ok {
		return
	}
	item, ok := st.itemArg(1)
	if !ok {
		return
	}
	if !c.RemoveItem(item) {
		st.failf("%s DOES NOT HAVE [%s]!", c.Class, item)
		return
	}
	st.okf("%s LOSES THE [%s]", c.Class, item)
}

func (st *evalState) dropItem() {
	c, ok := st.liveMember(0)
	if !ok {
		return
	}
	item, ok := st.itemArg(1)
	if !ok {
		return
	}
	// Dropping what you don't carry is a no-op, not a failure.
	c.RemoveItem(item)
	st.okf("%s THROWS AWAY THE [%s]", c.Class, item)
}

func (st *evalState) loseItem() {
	item, ok := st.itemArg(0)
	if !ok {
		return
	}
	holder, found := st.party.Holder(item)
	if !found {
		st.failf("YOU DO NOT HAVE [%s]!", item)
		return
	}
	holder.RemoveItem(item)
	st.okf("%s LOSES THE [%s]", holder.Class, item)
}

func (st *evalState) loseAll() {
	if len(st.rec.Args) > 0 {
		item, ok := st.itemArg(0)
		if !ok {
			return
		}
		for _, c := range st.party.Members() {
			for c.RemoveItem(item) {
			}
		}
		st.okf("ALL [%s] ARE LOST", item)
		return
	}
	for _, c := range st.party.Members() {
		c.Items = nil
	}
	st.okf("EVERYTHING YOU CARRIED IS LOST")
}

func (st *evalState) discardItems() {
	c, ok := st.liveMember(0)
	if !ok {
		return
	}
	limit, ok := st.intArg(1)
	if !ok {
		return
	}
	if limit < 0 {
		limit = 0
	}
	for len(c.Items) > limit {
		options := make([]string, len(c.Items))
		for i, it := range c.Items {
			options[i] = string(it.Type)
		}
		msg := fmt.Sprintf("%s MUST DISCARD DOWN TO %d ITEMS", c.Class, limit)
		picks := st.svc.SelectIcons(msg, options, 1, 1)
		if len(picks) == 0 {
			// A mandatory selection came back empty.
			st.internalf("%s: no discard selection returned", st.rec.Opcode)
			return
		}
		i := picks[0]
		if i < 0 || i >= len(c.Items) {
			st.internalf("%s: discard selection out of range", st.rec.Opcode)
			return
		}
		c.Items = append(c.Items[:i], c.Items[i+1:]...)
	}
	st.okf("%s CARRIES %d ITEMS", c.Class, len(c.Items))
}

func (st *evalState) itemQuantity() {
	c, ok := st.liveMember(0)
	if !ok {
		return
	}
	item, ok := st.itemArg(1)
	if !ok {
		return
	}
	n, ok := st.intArg(2)
	if !ok {
		return
	}
	if !c.AdjustQuantity(item, n) {
		if n < 0 {
			st.failf("NOT ENOUGH [%s]!", item)
		} else {
			st.failf("%s HAS NO CONTAINER FOR [%s]!", c.Class, item)
		}
		return
	}
	st.okf("%s: %+d [%s]", c.Class, n, item)
}

func (st *evalState) addToItem() {
	item, ok := st.itemArg(0)
	if !ok {
		return
	}
	n, ok := st.intArg(1)
	if !ok {
		return
	}
	if len(st.rec.Args) > 2 {
		c, ok := st.liveMember(2)
		if !ok {
			return
		}
		st.adjustMemberQuantity(c, item, n)
		return
	}
	st.adjustPartyQuantity(item, n)
}

func (st *evalState) adjustMemberQuantity(c *party.Character, item names.Item, n int) {
	if !c.AdjustQuantity(item, n) {
		if n < 0 {
			st.failf("NOT ENOUGH [%s]!", item)
		} else {
			st.failf("%s HAS NO CONTAINER FOR [%s]!", c.Class, item)
		}
		return
	}
	st.okf("%s: %+d [%s]", c.Class, n, item)
}

// adjustPartyQuantity spreads a decrement across members in class order,
// or adds to the first member able to hold the content type. The whole
// mutation is rejected when the party total is insufficient.
func (st *evalState) adjustPartyQuantity(item names.Item, n int) {
	if n >= 0 {
		for _, c := range st.party.Living() {
			if c.AdjustQuantity(item, n) {
				st.okf("%+d [%s]", n, item)
				return
			}
		}
		st.failf("NO ONE HAS A CONTAINER FOR [%s]!", item)
		return
	}
	if st.party.Quantity(item) < -n {
		st.failf("NOT ENOUGH [%s]!", item)
		return
	}
	remaining := -n
	for _, c := range st.party.Members() {
		if remaining == 0 {
			break
		}
		held := c.Quantity(item)
		if held == 0 {
			continue
		}
		take := held
		if take > remaining {
			take = remaining
		}
		if !c.AdjustQuantity(item, -take) {
			continue
		}
		remaining -= take
	}
	if remaining != 0 {
		// Unreachable once the sufficiency check passed, kept for safety.
		st.failf("NOT ENOUGH [%s]!", item)
		return
	}
	st.okf("%+d [%s]", n, item)
}

func (st *evalState) transferItem() {
	from, ok := st.liveMember(0)
	if !ok {
		return
	}
	to, ok := st.liveMember(1)
	if !ok {
		return
	}
	item, ok := st.itemArg(2)
	if !ok {
		return
	}
	var record party.Item
	found := false
	for i, it := range from.Items {
		if it.Type == item {
			record = it
			from.Items = append(from.Items[:i], from.Items[i+1:]...)
			found = true
			break
		}
	}
	if !found {
		st.failf("%s DOES NOT HAVE [%s]!", from.Class, item)
		return
	}
	to.AddItem(record)
	st.okf("%s GIVES THE [%s] TO %s", from.Class, item, to.Class)
}

func (st *evalState) giveMoney() {
	n, ok := st.intArg(0)
	if !ok {
		return
	}
	c, ok := st.recipient(1)
	if !ok {
		return
	}
	st.adjustMemberQuantity(c, names.Gold, n)
}

func (st *evalState) takeMoney() {
	n, ok := st.intArg(0)
	if !ok {
		return
	}
	if len(st.rec.Args) > 1 {
		c, ok := st.liveMember(1)
		if !ok {
			return
		}
		st.adjustMemberQuantity(c, names.Gold, -n)
		return
	}
	st.adjustPartyQuantity(names.Gold, -n)
}

func (st *evalState) rechargeItem() {
	c, ok := st.liveMember(0)
	if !ok {
		return
	}
	item, ok := st.itemArg(1)
	if !ok {
		return
	}
	n, ok := st.intArg(2)
	if !ok {
		return
	}
	for i := range c.Items {
		if c.Items[i].Type == item {
			c.Items[i].Charge = n
			st.okf("THE [%s] NOW HOLDS %d CHARGES", item, n)
			return
		}
	}
	st.failf("%s DOES NOT HAVE [%s]!", c.Class, item)
}
