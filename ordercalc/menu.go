package ordercalc

import (
	"fmt"

	"github.com/restopos/restopos-api/models"
)

// ValidationError reports a menu selection rejected before any write.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// CategorySelection accumulates option picks for one menu category under its
// cap. With MaxOptions == 1 a new pick replaces the previous one; otherwise
// picks accumulate and anything beyond the cap is silently ignored.
type CategorySelection struct {
	Category models.Category
	picked   []models.Option
}

func NewCategorySelection(category models.Category) *CategorySelection {
	return &CategorySelection{Category: category}
}

func (s *CategorySelection) Pick(option models.Option) {
	if s.Category.MaxOptions == 1 {
		s.picked = []models.Option{option}
		return
	}
	if len(s.picked) >= s.Category.MaxOptions {
		return
	}
	s.picked = append(s.picked, option)
}

func (s *CategorySelection) Picked() []models.Option {
	return s.picked
}

// MenuLine is the result of confirming a menu selection: one parent item and
// one child item per picked option. The parent must be persisted first so its
// assigned id can be written into each option's ParentOrderItemID.
type MenuLine struct {
	Parent  models.OrderItem
	Options []models.OrderItem
}

// BuildMenuLine validates picked options against the menu's categories and
// prices the resulting lines. The parent's subtotal carries the option
// extras; option lines are priced at their extra alone so totals never count
// them twice.
func BuildMenuLine(menu models.Menu, quantity int, picked map[uint][]models.Option) (MenuLine, error) {
	if quantity <= 0 {
		return MenuLine{}, &ValidationError{Message: "quantity must be at least 1"}
	}

	for _, category := range menu.Categories {
		if category.IsRequired && len(picked[category.ID]) == 0 {
			return MenuLine{}, &ValidationError{
				Message: fmt.Sprintf("a selection is required for %q", category.Name),
			}
		}
	}

	var additional float64
	var options []models.OrderItem
	for _, category := range menu.Categories {
		for _, option := range picked[category.ID] {
			additional += option.AdditionalPrice
			optionID := option.ID
			options = append(options, models.OrderItem{
				Name:         option.Name,
				Quantity:     quantity,
				UnitPrice:    option.AdditionalPrice,
				Subtotal:     option.AdditionalPrice * float64(quantity),
				MenuOptionID: &optionID,
			})
		}
	}

	menuID := menu.ID
	parent := models.OrderItem{
		Name:      menu.Name,
		Quantity:  quantity,
		UnitPrice: menu.Price,
		Subtotal:  (menu.Price + additional) * float64(quantity),
		MenuID:    &menuID,
	}

	return MenuLine{Parent: parent, Options: options}, nil
}
