package inventory

import "github.com/google/uuid"

// Direction tells how a document moves stock
type Direction int

const (
	// Inbound documents (purchases) raise stock
	Inbound Direction = 1
	// Outbound documents (orders) lower stock
	Outbound Direction = -1
)

// String returns the direction name
func (d Direction) String() string {
	if d == Outbound {
		return "outbound"
	}
	return "inbound"
}

// Adjustment is one relative stock update
type Adjustment struct {
	ProductID uuid.UUID
	Delta     int
}

// Plan turns line-item deltas into the stock adjustments a document of this
// direction implies. Zero deltas are dropped. Adjustments come out ordered by
// product id so that concurrent transactions lock product rows in the same order.
func (d Direction) Plan(deltas Deltas) []Adjustment {
	ids := make([]uuid.UUID, 0, len(deltas))
	for productID, delta := range deltas {
		if delta != 0 {
			ids = append(ids, productID)
		}
	}
	sortIDs(ids)

	plan := make([]Adjustment, 0, len(ids))
	for _, productID := range ids {
		plan = append(plan, Adjustment{ProductID: productID, Delta: int(d) * deltas[productID]})
	}
	return plan
}

// OnCreate is the plan for a new document with the given lines
func (d Direction) OnCreate(lines Quantities) []Adjustment {
	return d.Plan(Of(lines))
}

// OnUpdate is the plan for replacing a document's lines
func (d Direction) OnUpdate(old, updated Quantities) []Adjustment {
	return d.Plan(Diff(old, updated))
}

// OnTrash reverses the document's effect when it moves to the trash
func (d Direction) OnTrash(lines Quantities) []Adjustment {
	return d.Plan(Of(lines).Negate())
}

// OnRestore re-applies the document's effect when it leaves the trash
func (d Direction) OnRestore(lines Quantities) []Adjustment {
	return d.Plan(Of(lines))
}

// OwnedSet is the set of product ids a business owns
type OwnedSet map[uuid.UUID]struct{}

// NewOwnedSet builds an OwnedSet from product ids
func NewOwnedSet(ids ...uuid.UUID) OwnedSet {
	set := make(OwnedSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

// Contains reports whether the business owns productID
func (s OwnedSet) Contains(productID uuid.UUID) bool {
	_, ok := s[productID]
	return ok
}

// FilterOwned keeps only the items whose product the business owns.
// Foreign products are dropped without error.
func FilterOwned[T any](items []T, owned OwnedSet, productOf func(T) uuid.UUID) []T {
	kept := make([]T, 0, len(items))
	for _, item := range items {
		if owned.Contains(productOf(item)) {
			kept = append(kept, item)
		}
	}
	return kept
}
