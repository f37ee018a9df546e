package ordercalc

import (
	"math"
	"testing"

	"github.com/restopos/restopos-api/models"
)

func uintPtr(v uint) *uint { return &v }

func TestMergeProducts(t *testing.T) {
	tests := []struct {
		name     string
		existing []models.OrderItem
		selected map[uint]ProductSelection
		want     []models.OrderItem
	}{
		{
			name:     "append to empty order",
			existing: nil,
			selected: map[uint]ProductSelection{
				7: {Name: "Ramen", Quantity: 2, UnitPrice: 12},
			},
			want: []models.OrderItem{
				{Name: "Ramen", Quantity: 2, UnitPrice: 12, Subtotal: 24, ProductID: uintPtr(7)},
			},
		},
		{
			name: "accumulate into matching line",
			existing: []models.OrderItem{
				{Name: "Gyoza", Quantity: 2, UnitPrice: 5, Subtotal: 10, ProductID: uintPtr(1)},
			},
			selected: map[uint]ProductSelection{
				1: {Name: "Gyoza", Quantity: 1, UnitPrice: 5},
				2: {Name: "Edamame", Quantity: 2, UnitPrice: 3},
			},
			want: []models.OrderItem{
				{Name: "Gyoza", Quantity: 3, UnitPrice: 5, Subtotal: 15, ProductID: uintPtr(1)},
				{Name: "Edamame", Quantity: 2, UnitPrice: 3, Subtotal: 6, ProductID: uintPtr(2)},
			},
		},
		{
			name: "menu and formula lines pass through",
			existing: []models.OrderItem{
				{Name: "Lunch menu", Quantity: 1, UnitPrice: 18, Subtotal: 18, MenuID: uintPtr(4)},
				{Name: "Buffet", Quantity: 2, UnitPrice: 25, Subtotal: 50, AllYouCanEatID: uintPtr(9)},
			},
			selected: map[uint]ProductSelection{
				3: {Name: "Soda", Quantity: 1, UnitPrice: 2.5},
			},
			want: []models.OrderItem{
				{Name: "Lunch menu", Quantity: 1, UnitPrice: 18, Subtotal: 18, MenuID: uintPtr(4)},
				{Name: "Buffet", Quantity: 2, UnitPrice: 25, Subtotal: 50, AllYouCanEatID: uintPtr(9)},
				{Name: "Soda", Quantity: 1, UnitPrice: 2.5, Subtotal: 2.5, ProductID: uintPtr(3)},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MergeProducts(tt.existing, tt.selected)
			assertItemsEqual(t, got, tt.want)
		})
	}
}

// Merging the same product twice accumulates quantity regardless of how the
// selections are split across calls.
func TestMergeProductsAccumulatesAcrossCalls(t *testing.T) {
	sel := func(q int) map[uint]ProductSelection {
		return map[uint]ProductSelection{1: {Name: "Gyoza", Quantity: q, UnitPrice: 5}}
	}

	items := MergeProducts(nil, sel(2))
	items = MergeProducts(items, sel(3))

	if len(items) != 1 {
		t.Fatalf("expected a single line, got %d", len(items))
	}
	if items[0].Quantity != 5 || items[0].Subtotal != 25 {
		t.Errorf("got quantity=%d subtotal=%v, want quantity=5 subtotal=25", items[0].Quantity, items[0].Subtotal)
	}
}

func TestMergeFormulas(t *testing.T) {
	existing := []models.OrderItem{
		{Name: "Buffet", Quantity: 1, UnitPrice: 25, Subtotal: 25, AllYouCanEatID: uintPtr(9)},
		{Name: "Soda", Quantity: 1, UnitPrice: 2.5, Subtotal: 2.5, ProductID: uintPtr(3)},
	}
	selected := map[uint]FormulaSelection{
		9:  {Name: "Buffet", Quantity: 2, UnitPrice: 25},
		11: {Name: "Buffet kids", Quantity: 1, UnitPrice: 14},
	}

	got := MergeFormulas(existing, selected)
	want := []models.OrderItem{
		{Name: "Buffet", Quantity: 3, UnitPrice: 25, Subtotal: 75, AllYouCanEatID: uintPtr(9)},
		{Name: "Soda", Quantity: 1, UnitPrice: 2.5, Subtotal: 2.5, ProductID: uintPtr(3)},
		{Name: "Buffet kids", Quantity: 1, UnitPrice: 14, Subtotal: 14, AllYouCanEatID: uintPtr(11)},
	}
	assertItemsEqual(t, got, want)
}

func TestRecomputeTotals(t *testing.T) {
	items := []models.OrderItem{
		{Subtotal: 15, ProductID: uintPtr(1)},
		{Subtotal: 6, ProductID: uintPtr(2)},
		{Subtotal: 2, MenuOptionID: uintPtr(5), ParentOrderItemID: uintPtr(1)},
	}

	got := RecomputeTotals(items)

	if got.AmountTotal != 21 {
		t.Errorf("AmountTotal = %v, want 21 (option lines must not be counted)", got.AmountTotal)
	}
	if math.Abs(got.AmountSubtotal-21/1.1) > 1e-9 {
		t.Errorf("AmountSubtotal = %v, want %v", got.AmountSubtotal, 21/1.1)
	}
	if math.Abs(got.AmountSubtotal+got.AmountTax-got.AmountTotal) > 1e-9 {
		t.Errorf("subtotal+tax = %v, want %v", got.AmountSubtotal+got.AmountTax, got.AmountTotal)
	}

	again := RecomputeTotals(items)
	if again != got {
		t.Errorf("RecomputeTotals is not idempotent: %+v then %+v", got, again)
	}
}

func TestRecomputeTotalsEmpty(t *testing.T) {
	got := RecomputeTotals(ClearItems())
	if got.AmountTotal != 0 || got.AmountSubtotal != 0 || got.AmountTax != 0 {
		t.Errorf("totals of an empty order = %+v, want zeros", got)
	}
}

// The worked end-to-end case: an order holding 2 of product A at 5 merged
// with {A: 1, B: 2} where B costs 3.
func TestMergeThenTotals(t *testing.T) {
	existing := []models.OrderItem{
		{Name: "A", Quantity: 2, UnitPrice: 5, Subtotal: 10, ProductID: uintPtr(1)},
	}
	selected := map[uint]ProductSelection{
		1: {Name: "A", Quantity: 1, UnitPrice: 5},
		2: {Name: "B", Quantity: 2, UnitPrice: 3},
	}

	items := MergeProducts(existing, selected)
	totals := RecomputeTotals(items)

	if items[0].Quantity != 3 || items[0].Subtotal != 15 {
		t.Errorf("A: quantity=%d subtotal=%v, want 3 and 15", items[0].Quantity, items[0].Subtotal)
	}
	if items[1].Quantity != 2 || items[1].Subtotal != 6 {
		t.Errorf("B: quantity=%d subtotal=%v, want 2 and 6", items[1].Quantity, items[1].Subtotal)
	}
	if totals.AmountTotal != 21 {
		t.Errorf("AmountTotal = %v, want 21", totals.AmountTotal)
	}
	if math.Abs(totals.AmountSubtotal-19.09) > 0.01 || math.Abs(totals.AmountTax-1.91) > 0.01 {
		t.Errorf("subtotal=%v tax=%v, want ~19.09 and ~1.91", totals.AmountSubtotal, totals.AmountTax)
	}
}

func TestRemoveItem(t *testing.T) {
	items := []models.OrderItem{
		{Model: withID(1), Name: "Menu", MenuID: uintPtr(4)},
		{Model: withID(2), Name: "Extra cheese", MenuOptionID: uintPtr(5), ParentOrderItemID: uintPtr(1)},
		{Model: withID(3), Name: "Soda", ProductID: uintPtr(3)},
	}

	got := RemoveItem(items, 1)

	if len(got) != 2 {
		t.Fatalf("expected 2 items, got %d", len(got))
	}
	// Removing a parent keeps its option children; current behavior, kept
	// deliberately (see DESIGN.md).
	if got[0].ID != 2 || got[1].ID != 3 {
		t.Errorf("remaining ids = %d, %d; want 2, 3", got[0].ID, got[1].ID)
	}
	if got[0].Name != "Extra cheese" || got[0].ParentOrderItemID == nil {
		t.Errorf("orphaned option line was altered: %+v", got[0])
	}
}

func TestRemoveItemMissingID(t *testing.T) {
	items := []models.OrderItem{{Model: withID(1), Name: "Soda"}}
	got := RemoveItem(items, 42)
	if len(got) != 1 {
		t.Fatalf("expected untouched list, got %d items", len(got))
	}
}

func assertItemsEqual(t *testing.T, got, want []models.OrderItem) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d items, want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if g.Name != w.Name || g.Quantity != w.Quantity || g.UnitPrice != w.UnitPrice || g.Subtotal != w.Subtotal {
			t.Errorf("item %d = %+v, want %+v", i, g, w)
		}
		if !refEqual(g.ProductID, w.ProductID) || !refEqual(g.MenuID, w.MenuID) || !refEqual(g.AllYouCanEatID, w.AllYouCanEatID) {
			t.Errorf("item %d references differ: got %+v, want %+v", i, g, w)
		}
	}
}

func refEqual(a, b *uint) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
