// Package ordercalc merges newly selected products, menus and all-you-can-eat
// formulas into an order's line items and recomputes its totals. It performs
// no I/O; persistence belongs to the callers.
package ordercalc

import (
	"sort"

	"github.com/restopos/restopos-api/models"
)

// taxDivisor converts a tax-inclusive total into its pre-tax subtotal at the
// fixed 10% rate applied to every order.
const taxDivisor = 1.1

type ProductSelection struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

type FormulaSelection struct {
	Name      string
	Quantity  int
	UnitPrice float64
}

type Totals struct {
	AmountTotal    float64 `json:"amount_total"`
	AmountSubtotal float64 `json:"amount_subtotal"`
	AmountTax      float64 `json:"amount_tax"`
}

// MergeProducts folds selected products into existing items. A plain product
// line (no menu, option or formula reference) matching a selected product id
// has the selected quantity added and its subtotal recomputed; selections
// with no matching line are appended as new lines, in ascending product id
// order. Menu, option and formula lines pass through untouched. Each product
// id appears at most once in the result.
func MergeProducts(existing []models.OrderItem, selected map[uint]ProductSelection) []models.OrderItem {
	consumed := make(map[uint]bool, len(selected))
	merged := make([]models.OrderItem, 0, len(existing)+len(selected))

	for _, item := range existing {
		if isPlainProduct(item) {
			if sel, ok := selected[*item.ProductID]; ok {
				item.Quantity += sel.Quantity
				item.Subtotal = item.UnitPrice * float64(item.Quantity)
				consumed[*item.ProductID] = true
			}
		}
		merged = append(merged, item)
	}

	for _, id := range sortedKeys(selected) {
		if consumed[id] {
			continue
		}
		sel := selected[id]
		productID := id
		merged = append(merged, models.OrderItem{
			Name:      sel.Name,
			Quantity:  sel.Quantity,
			UnitPrice: sel.UnitPrice,
			Subtotal:  sel.UnitPrice * float64(sel.Quantity),
			ProductID: &productID,
		})
	}

	return merged
}

// MergeFormulas is MergeProducts keyed by all-you-can-eat formula id.
func MergeFormulas(existing []models.OrderItem, selected map[uint]FormulaSelection) []models.OrderItem {
	consumed := make(map[uint]bool, len(selected))
	merged := make([]models.OrderItem, 0, len(existing)+len(selected))

	for _, item := range existing {
		if item.AllYouCanEatID != nil {
			if sel, ok := selected[*item.AllYouCanEatID]; ok {
				item.Quantity += sel.Quantity
				item.Subtotal = item.UnitPrice * float64(item.Quantity)
				consumed[*item.AllYouCanEatID] = true
			}
		}
		merged = append(merged, item)
	}

	for _, id := range sortedKeys(selected) {
		if consumed[id] {
			continue
		}
		sel := selected[id]
		formulaID := id
		merged = append(merged, models.OrderItem{
			Name:           sel.Name,
			Quantity:       sel.Quantity,
			UnitPrice:      sel.UnitPrice,
			Subtotal:       sel.UnitPrice * float64(sel.Quantity),
			AllYouCanEatID: &formulaID,
		})
	}

	return merged
}

// RecomputeTotals derives order totals from the item list. Option lines
// (ParentOrderItemID set) are excluded: their price is already folded into
// the parent menu line's subtotal.
func RecomputeTotals(items []models.OrderItem) Totals {
	var total float64
	for _, item := range items {
		if item.ParentOrderItemID == nil {
			total += item.Subtotal
		}
	}
	subtotal := total / taxDivisor
	return Totals{
		AmountTotal:    total,
		AmountSubtotal: subtotal,
		AmountTax:      total - subtotal,
	}
}

// RemoveItem filters out the item with the given id. Option children of a
// removed line are kept; see DESIGN.md.
func RemoveItem(items []models.OrderItem, id uint) []models.OrderItem {
	kept := make([]models.OrderItem, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	return kept
}

func ClearItems() []models.OrderItem {
	return []models.OrderItem{}
}

func isPlainProduct(item models.OrderItem) bool {
	return item.ProductID != nil && item.MenuID == nil && item.MenuOptionID == nil && item.AllYouCanEatID == nil
}

func sortedKeys[V any](m map[uint]V) []uint {
	keys := make([]uint, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
