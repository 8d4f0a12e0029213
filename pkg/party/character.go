package party

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/jwebster45206/d20"

	"github.com/battlepits/gamebook-engine/pkg/names"
)

// CharacterSpec is the serializable form of a character, used by content
// files and the session store.
type CharacterSpec struct {
	Class      names.Class               `json:"class"`
	Name       string                    `json:"name,omitempty"`
	Attributes map[names.Attribute]int   `json:"attributes"`
	Maxima     map[names.Attribute]int   `json:"maxima,omitempty"`
	Endurance  int                       `json:"endurance"`
	MaxEnd     int                       `json:"max_endurance"`
	Armour     int                       `json:"armour,omitempty"`
	Items      []Item                    `json:"items,omitempty"`
	Statuses   []names.Status            `json:"statuses,omitempty"`
	Spells     []names.Spell             `json:"spells,omitempty"`
}

// Character is the runtime representation of one party member. Endurance
// and armour live on a d20.Actor (HP and AC); the remaining attributes
// are mirrored into the actor so combat resolution can read everything
// from one place.
type Character struct {
	Class names.Class
	Name  string

	attributes map[names.Attribute]int
	maxima     map[names.Attribute]int
	statuses   map[names.Status]bool
	spells     map[names.Spell]bool

	Items []Item

	actor *d20.Actor
}

// NewCharacter builds a character and its backing actor. The attribute
// map supplies starting (and maximum) values for everything except
// endurance and armour, which are passed separately.
func NewCharacter(class names.Class, name string, attrs map[names.Attribute]int, endurance, armour int) (*Character, error) {
	if class == names.ClassNone || class == names.ClassAll {
		return nil, fmt.Errorf("invalid character class %q", class)
	}
	c := &Character{
		Class:      class,
		Name:       name,
		attributes: make(map[names.Attribute]int, len(attrs)),
		maxima:     make(map[names.Attribute]int, len(attrs)),
		statuses:   make(map[names.Status]bool),
		spells:     make(map[names.Spell]bool),
	}
	for a, v := range attrs {
		c.attributes[a] = v
		c.maxima[a] = v
	}
	c.attributes[names.Armour] = armour
	c.maxima[names.Armour] = armour
	c.maxima[names.Endurance] = endurance

	if err := c.rebuildActor(endurance); err != nil {
		return nil, err
	}
	return c, nil
}

// rebuildActor reconstructs the backing d20.Actor from the current
// attribute maps, preserving the given current endurance. Rebuilding is
// how attribute changes reach the actor.
func (c *Character) rebuildActor(endurance int) error {
	attrs := make(map[string]int, len(c.attributes))
	for a, v := range c.attributes {
		attrs[string(a)] = v
	}
	maxEnd := c.maxima[names.Endurance]
	if maxEnd < 1 {
		maxEnd = 1
	}
	actor, err := d20.NewActor(string(c.Class)).
		WithHP(maxEnd).
		WithAC(c.attributes[names.Armour]).
		WithAttributes(attrs).
		Build()
	if err != nil {
		return fmt.Errorf("failed to build actor: %w", err)
	}
	if endurance < 0 {
		endurance = 0
	}
	if endurance > maxEnd {
		endurance = maxEnd
	}
	if endurance != maxEnd {
		if err := actor.SetHP(endurance); err != nil {
			return fmt.Errorf("failed to set endurance: %w", err)
		}
	}
	c.actor = actor
	return nil
}

// Actor exposes the backing d20 actor for combat resolution.
func (c *Character) Actor() *d20.Actor {
	return c.actor
}

// Alive reports whether endurance is above zero.
func (c *Character) Alive() bool {
	return c.actor.HP() > 0
}

// Attribute returns the current value of an attribute. Endurance reads
// from the actor; armour and the rest from the attribute map.
func (c *Character) Attribute(a names.Attribute) int {
	if a == names.Endurance {
		return c.actor.HP()
	}
	return c.attributes[a]
}

// Maximum returns the attribute's maximum value.
func (c *Character) Maximum(a names.Attribute) int {
	return c.maxima[a]
}

// SetAttribute sets an attribute to an exact value, clamped at zero.
// Endurance additionally clamps at its maximum; other attributes pushed
// past their recorded maximum raise the maximum with them.
func (c *Character) SetAttribute(a names.Attribute, v int) {
	if v < 0 {
		v = 0
	}
	if a == names.Endurance {
		if v > c.maxima[names.Endurance] {
			v = c.maxima[names.Endurance]
		}
		_ = c.actor.SetHP(v)
		return
	}
	c.attributes[a] = v
	if v > c.maxima[a] {
		c.maxima[a] = v
	}
	_ = c.rebuildActor(c.actor.HP())
}

// Adjust shifts an attribute by delta (negative to lower), clamped at
// zero. Lowering endurance through zero kills the character.
func (c *Character) Adjust(a names.Attribute, delta int) {
	c.SetAttribute(a, c.Attribute(a)+delta)
}

// Restore sets an attribute back to its maximum.
func (c *Character) Restore(a names.Attribute) {
	c.SetAttribute(a, c.maxima[a])
}

// Kill zeroes endurance.
func (c *Character) Kill() {
	_ = c.actor.SetHP(0)
}

// Revive sets endurance on a dead character. A non-positive value
// revives with one point.
func (c *Character) Revive(endurance int) {
	if endurance < 1 {
		endurance = 1
	}
	c.SetAttribute(names.Endurance, endurance)
}

// HasStatus reports whether the status is active.
func (c *Character) HasStatus(s names.Status) bool {
	return c.statuses[s]
}

// GainStatus activates a status. Gaining an already-active status is a
// no-op, not an error.
func (c *Character) GainStatus(s names.Status) {
	c.statuses[s] = true
}

// LoseStatus deactivates a status.
func (c *Character) LoseStatus(s names.Status) {
	delete(c.statuses, s)
}

// ClearStatuses removes every active status.
func (c *Character) ClearStatuses() {
	c.statuses = make(map[names.Status]bool)
}

// Statuses returns the active statuses in a stable order.
func (c *Character) Statuses() []names.Status {
	var out []names.Status
	for s := range c.statuses {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// HasSpell reports whether the spell is called to mind.
func (c *Character) HasSpell(sp names.Spell) bool {
	return c.spells[sp]
}

// CallToMind adds a spell to the called-to-mind set.
func (c *Character) CallToMind(sp names.Spell) {
	c.spells[sp] = true
}

// Forget removes a spell from the called-to-mind set.
func (c *Character) Forget(sp names.Spell) {
	delete(c.spells, sp)
}

// ForgetAll clears the called-to-mind set.
func (c *Character) ForgetAll() {
	c.spells = make(map[names.Spell]bool)
}

// HasItem reports whether the character carries at least one item of the
// given type.
func (c *Character) HasItem(t names.Item) bool {
	for _, it := range c.Items {
		if it.Type == t {
			return true
		}
	}
	return false
}

// AddItem appends an inventory record.
func (c *Character) AddItem(it Item) {
	c.Items = append(c.Items, it)
}

// RemoveItem removes one item of the given type. Reports whether an item
// was removed.
func (c *Character) RemoveItem(t names.Item) bool {
	for i, it := range c.Items {
		if it.Type == t {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Quantity returns the total quantity of a content type across the
// character's containers, plus loose items of that type counted one each.
func (c *Character) Quantity(content names.Item) int {
	total := 0
	for _, it := range c.Items {
		if it.Content == content {
			total += it.Quantity
		} else if it.Type == content {
			total++
		}
	}
	return total
}

// AdjustQuantity shifts the quantity of a content type by delta. A
// decrement drains the character's containers first, then loose items of
// the content type, one record each; a decrement larger than the held
// quantity is rejected with the state left unchanged. Increments require
// a container able to hold the content type.
func (c *Character) AdjustQuantity(content names.Item, delta int) (ok bool) {
	if delta == 0 {
		return true
	}
	if delta > 0 {
		for i := range c.Items {
			if c.Items[i].Content == content {
				c.Items[i].Quantity += delta
				return true
			}
		}
		return false
	}
	if c.Quantity(content) < -delta {
		return false
	}
	remaining := -delta
	for i := range c.Items {
		if remaining == 0 {
			break
		}
		if c.Items[i].Content != content {
			continue
		}
		take := c.Items[i].Quantity
		if take > remaining {
			take = remaining
		}
		c.Items[i].Quantity -= take
		remaining -= take
	}
	for remaining > 0 && c.RemoveItem(content) {
		remaining--
	}
	return remaining == 0
}

// Spec snapshots the character into its serializable form.
func (c *Character) Spec() CharacterSpec {
	spec := CharacterSpec{
		Class:      c.Class,
		Name:       c.Name,
		Attributes: make(map[names.Attribute]int, len(c.attributes)),
		Maxima:     make(map[names.Attribute]int, len(c.maxima)),
		Endurance:  c.actor.HP(),
		MaxEnd:     c.maxima[names.Endurance],
		Armour:     c.attributes[names.Armour],
		Items:      append([]Item(nil), c.Items...),
		Statuses:   c.Statuses(),
	}
	for a, v := range c.attributes {
		spec.Attributes[a] = v
	}
	for a, v := range c.maxima {
		spec.Maxima[a] = v
	}
	for sp := range c.spells {
		spec.Spells = append(spec.Spells, sp)
	}
	sort.Slice(spec.Spells, func(i, j int) bool { return spec.Spells[i] < spec.Spells[j] })
	return spec
}

// FromSpec rebuilds a runtime character from its serialized form.
func FromSpec(spec CharacterSpec) (*Character, error) {
	attrs := make(map[names.Attribute]int, len(spec.Attributes))
	for a, v := range spec.Attributes {
		if a == names.Endurance || a == names.Armour {
			continue
		}
		attrs[a] = v
	}
	c, err := NewCharacter(spec.Class, spec.Name, attrs, spec.MaxEnd, spec.Armour)
	if err != nil {
		return nil, err
	}
	for a, v := range spec.Maxima {
		if v > c.maxima[a] {
			c.maxima[a] = v
		}
	}
	c.SetAttribute(names.Endurance, spec.Endurance)
	c.Items = append([]Item(nil), spec.Items...)
	for _, s := range spec.Statuses {
		c.GainStatus(s)
	}
	for _, sp := range spec.Spells {
		c.CallToMind(sp)
	}
	return c, nil
}

// MarshalJSON serializes through the spec form.
func (c *Character) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.Spec())
}

// UnmarshalJSON rebuilds the character, including its actor, from the
// spec form.
func (c *Character) UnmarshalJSON(data []byte) error {
	var spec CharacterSpec
	if err := json.Unmarshal(data, &spec); err != nil {
		return fmt.Errorf("failed to unmarshal character spec: %w", err)
	}
	rebuilt, err := FromSpec(spec)
	if err != nil {
		return err
	}
	*c = *rebuilt
	return nil
}
