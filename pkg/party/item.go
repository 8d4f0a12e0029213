package party

import "github.com/battlepits/gamebook-engine/pkg/names"

// Item is one inventory record. A container item additionally holds a
// quantity of a content type (quiver holds arrows, money-pouch holds
// gold). Quantity is meaningless for non-containers and stays zero.
type Item struct {
	Type     names.Item `json:"type"`
	Content  names.Item `json:"content,omitempty"`
	Quantity int        `json:"quantity,omitempty"`
	Charge   int        `json:"charge,omitempty"`
}

// NewItem creates an inventory record for the given type. Containers
// start with the given quantity of their content type.
func NewItem(t names.Item, quantity int) Item {
	it := Item{Type: t}
	if content, ok := names.ContainerContent(t); ok {
		it.Content = content
		if quantity > 0 {
			it.Quantity = quantity
		}
	}
	return it
}

// IsContainer reports whether this item holds a content quantity.
func (it Item) IsContainer() bool {
	return it.Content != names.ItemNone
}
