package ordercalc

import (
	"errors"
	"testing"

	"github.com/restopos/restopos-api/models"
	"gorm.io/gorm"
)

func withID(id uint) gorm.Model { return gorm.Model{ID: id} }

func sampleMenu() models.Menu {
	return models.Menu{
		Model: withID(4),
		Name:  "Lunch menu",
		Price: 18,
		Categories: []models.Category{
			{
				Model:      withID(10),
				Name:       "Main",
				IsRequired: true,
				MaxOptions: 1,
				Options: []models.Option{
					{Model: withID(100), Name: "Chicken katsu"},
					{Model: withID(101), Name: "Salmon teriyaki", AdditionalPrice: 2},
				},
			},
			{
				Model:      withID(11),
				Name:       "Extras",
				MaxOptions: 2,
				Options: []models.Option{
					{Model: withID(110), Name: "Miso soup", AdditionalPrice: 1},
					{Model: withID(111), Name: "Seaweed salad", AdditionalPrice: 1.5},
					{Model: withID(112), Name: "Rice refill", AdditionalPrice: 0.5},
				},
			},
		},
	}
}

func TestCategorySelectionPick(t *testing.T) {
	menu := sampleMenu()

	t.Run("single choice category replaces prior pick", func(t *testing.T) {
		sel := NewCategorySelection(menu.Categories[0])
		sel.Pick(menu.Categories[0].Options[0])
		sel.Pick(menu.Categories[0].Options[1])

		picked := sel.Picked()
		if len(picked) != 1 {
			t.Fatalf("expected 1 pick, got %d", len(picked))
		}
		if picked[0].Name != "Salmon teriyaki" {
			t.Errorf("picked %q, want the later pick to win", picked[0].Name)
		}
	})

	t.Run("picks beyond the cap are ignored", func(t *testing.T) {
		sel := NewCategorySelection(menu.Categories[1])
		for _, opt := range menu.Categories[1].Options {
			sel.Pick(opt)
		}

		picked := sel.Picked()
		if len(picked) != 2 {
			t.Fatalf("expected 2 picks, got %d", len(picked))
		}
		if picked[0].Name != "Miso soup" || picked[1].Name != "Seaweed salad" {
			t.Errorf("picks = %q, %q; the overflow pick must not displace earlier ones", picked[0].Name, picked[1].Name)
		}
	})
}

func TestBuildMenuLine(t *testing.T) {
	menu := sampleMenu()

	tests := []struct {
		name     string
		quantity int
		picked   map[uint][]models.Option
		wantErr  bool
	}{
		{
			name:     "required category satisfied",
			quantity: 2,
			picked: map[uint][]models.Option{
				10: {menu.Categories[0].Options[1]},
				11: {menu.Categories[1].Options[0]},
			},
		},
		{
			name:     "required category empty",
			quantity: 1,
			picked: map[uint][]models.Option{
				11: {menu.Categories[1].Options[0]},
			},
			wantErr: true,
		},
		{
			name:     "zero quantity",
			quantity: 0,
			picked: map[uint][]models.Option{
				10: {menu.Categories[0].Options[0]},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			line, err := BuildMenuLine(menu, tt.quantity, tt.picked)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BuildMenuLine() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if len(line.Options) != 0 || line.Parent.Name != "" {
					t.Errorf("a rejected selection must produce no items, got %+v", line)
				}
				return
			}
			if line.Parent.UnitPrice != 18 {
				t.Errorf("parent unit price = %v, want the bare menu price", line.Parent.UnitPrice)
			}
			// (18 + 2 + 1) * 2
			if line.Parent.Subtotal != 42 {
				t.Errorf("parent subtotal = %v, want 42", line.Parent.Subtotal)
			}
			if len(line.Options) != 2 {
				t.Fatalf("expected 2 option lines, got %d", len(line.Options))
			}
			if line.Options[0].Subtotal != 4 || line.Options[1].Subtotal != 2 {
				t.Errorf("option subtotals = %v, %v; want 4 and 2", line.Options[0].Subtotal, line.Options[1].Subtotal)
			}
			for _, opt := range line.Options {
				if opt.MenuOptionID == nil {
					t.Errorf("option line %q is missing its option reference", opt.Name)
				}
			}
		})
	}
}

func TestBuildMenuLineValidationError(t *testing.T) {
	menu := sampleMenu()
	_, err := BuildMenuLine(menu, 1, nil)

	if err == nil {
		t.Fatal("expected a validation error")
	}
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("expected *ValidationError, got %T", err)
	}
}
