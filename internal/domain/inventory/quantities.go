// Package inventory holds the pure stock reconciliation rules shared by
// purchases and orders.
package inventory

import (
	"sort"

	"github.com/google/uuid"
)

// Quantities maps a product to the quantity a document carries for it
type Quantities map[uuid.UUID]int

// Add accumulates qty for productID, merging repeated lines
func (q Quantities) Add(productID uuid.UUID, qty int) {
	q[productID] += qty
}

// ProductIDs returns the products present, sorted
func (q Quantities) ProductIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(q))
	for id := range q {
		ids = append(ids, id)
	}
	sortIDs(ids)
	return ids
}

// Total returns the summed quantity
func (q Quantities) Total() int {
	total := 0
	for _, qty := range q {
		total += qty
	}
	return total
}

// Deltas maps a product to a signed quantity change
type Deltas map[uuid.UUID]int

// Diff computes the item diff between an old and a new line-item set:
// products in both sets get new-old (zero when unchanged), products only in
// the new set get their full quantity, products only in the old set get the
// negated old quantity.
func Diff(old, updated Quantities) Deltas {
	deltas := make(Deltas, len(old)+len(updated))
	for productID, qty := range updated {
		deltas[productID] = qty - old[productID]
	}
	for productID, qty := range old {
		if _, kept := updated[productID]; !kept {
			deltas[productID] = -qty
		}
	}
	return deltas
}

// Of treats a whole line-item set as newly added
func Of(q Quantities) Deltas {
	return Diff(nil, q)
}

// Negate flips the sign of every delta
func (d Deltas) Negate() Deltas {
	out := make(Deltas, len(d))
	for productID, delta := range d {
		out[productID] = -delta
	}
	return out
}

// Net returns the summed delta
func (d Deltas) Net() int {
	net := 0
	for _, delta := range d {
		net += delta
	}
	return net
}

func sortIDs(ids []uuid.UUID) {
	sort.Slice(ids, func(i, j int) bool {
		return ids[i].String() < ids[j].String()
	})
}
