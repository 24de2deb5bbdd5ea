// Package editor implements the quantity-aware multi-select state used when
// an operator composes the card contents of a bundle or pack. The quantity
// map is the source of truth while editing; the flat card-id list submitted
// to the catalog is always derived from it, never edited directly.
package editor

import (
	"famand_admin/internal/catalog"

	"github.com/google/uuid"
)

// Filter narrows the visible card list by exact type and rarity match. The
// zero value matches every card.
type Filter struct {
	Type   string
	Rarity catalog.Rarity
}

// Matches reports whether a card passes the filter.
func (f Filter) Matches(card catalog.Card) bool {
	if f.Type != "" && card.Type != f.Type {
		return false
	}
	if f.Rarity != "" && card.Rarity != f.Rarity {
		return false
	}
	return true
}

// Editor holds the selection state of one contents-composition form.
// Quantities are kept strictly positive: a card at zero is removed from the
// map entirely. Insertion order is tracked so the derived card list is
// deterministic across calls.
type Editor struct {
	quantities map[uuid.UUID]int
	order      []uuid.UUID
}

// New returns an empty editor.
func New() *Editor {
	return &Editor{quantities: make(map[uuid.UUID]int)}
}

// Load rebuilds the editor state from a stored flat card list, counting
// repeated identifiers into quantities. Loading the list produced by
// CardList reconstructs the original state exactly.
func Load(cardIDs []uuid.UUID) *Editor {
	e := New()
	for _, id := range cardIDs {
		e.set(id, e.quantities[id]+1)
	}
	return e
}

// Toggle flips a card's membership: excluded cards are included with
// quantity 1, included cards are removed regardless of their quantity.
func (e *Editor) Toggle(cardID uuid.UUID) {
	if e.quantities[cardID] > 0 {
		e.set(cardID, 0)
		return
	}
	e.set(cardID, 1)
}

// Increment raises a card's quantity by one, including it if absent.
func (e *Editor) Increment(cardID uuid.UUID) {
	e.set(cardID, e.quantities[cardID]+1)
}

// Decrement lowers a card's quantity by one, floored at zero; reaching zero
// removes the card from the selection.
func (e *Editor) Decrement(cardID uuid.UUID) {
	current := e.quantities[cardID]
	if current == 0 {
		return
	}
	e.set(cardID, current-1)
}

// SelectAllVisible includes every card passing the filter with quantity 1.
// Cards the operator already included keep their chosen quantity; bulk
// selection is additive, never a reset.
func (e *Editor) SelectAllVisible(cards []catalog.Card, filter Filter) {
	for _, card := range cards {
		if !filter.Matches(card) {
			continue
		}
		if e.quantities[card.ID] == 0 {
			e.set(card.ID, 1)
		}
	}
}

// DeselectAll clears the selection. Calling it on an empty editor is a no-op.
func (e *Editor) DeselectAll() {
	e.quantities = make(map[uuid.UUID]int)
	e.order = nil
}

// Quantity returns a card's current quantity; absent cards report zero.
func (e *Editor) Quantity(cardID uuid.UUID) int {
	return e.quantities[cardID]
}

// Count returns the number of distinct cards currently selected.
func (e *Editor) Count() int {
	return len(e.quantities)
}

// Quantities returns a copy of the quantity map. Every value is positive.
func (e *Editor) Quantities() map[uuid.UUID]int {
	out := make(map[uuid.UUID]int, len(e.quantities))
	for id, qty := range e.quantities {
		out[id] = qty
	}
	return out
}

// CardList derives the flat submission list, repeating each card id by its
// quantity in selection order. This is the value stored in the catalog
// item's contents; each id appears exactly Quantity(id) times.
func (e *Editor) CardList() []uuid.UUID {
	var out []uuid.UUID
	for _, id := range e.order {
		for i := 0; i < e.quantities[id]; i++ {
			out = append(out, id)
		}
	}
	return out
}

// set applies a quantity, maintaining the zero-entries-absent invariant and
// the insertion order list.
func (e *Editor) set(cardID uuid.UUID, quantity int) {
	_, present := e.quantities[cardID]
	switch {
	case quantity <= 0 && present:
		delete(e.quantities, cardID)
		for i, id := range e.order {
			if id == cardID {
				e.order = append(e.order[:i], e.order[i+1:]...)
				break
			}
		}
	case quantity > 0 && !present:
		e.quantities[cardID] = quantity
		e.order = append(e.order, cardID)
	case quantity > 0:
		e.quantities[cardID] = quantity
	}
}
