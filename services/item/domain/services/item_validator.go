// Package services contains stateless domain services for the item bounded context.
// Domain services enforce business rules that operate purely on domain types
// and have zero external dependencies beyond stdlib and the domain layer.
package services

import (
	"fmt"
	"math"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ghuser/stockroom/pkg/domainerr"
	itemdomain "github.com/ghuser/stockroom/services/item/domain"
	"github.com/ghuser/stockroom/services/item/domain/models"
)

const (
	maxColorLength       = 100
	maxDescriptionLength = 2000
	maxLevel             = math.MaxInt32 // items.inventory_level and reorder_level are INTEGER
)

// ValidateName enforces business rules for ItemName beyond the structural
// constraints enforced by the ItemName constructor (trimmed, length 1–255).
//
// Business rules:
//   - No leading or trailing whitespace
//   - No control characters (Unicode category Cc)
//   - No consecutive spaces
func ValidateName(name models.ItemName) error {
	s := name.String()

	if s != strings.TrimSpace(s) {
		return fmt.Errorf("must not have leading or trailing whitespace")
	}

	if s == "" {
		return fmt.Errorf("must not be blank")
	}

	for _, r := range s {
		if unicode.IsControl(r) {
			return fmt.Errorf("must not contain control characters")
		}
	}

	if strings.Contains(s, "  ") {
		return fmt.Errorf("must not contain consecutive spaces")
	}

	return nil
}

// ValidateForCreation checks every catalog field and reports all failures at
// once. Name uniqueness needs storage and is checked by the application service.
// The parsed name and category are returned whenever they are valid, even if
// other fields fail, so callers can run further checks on them.
func ValidateForCreation(p models.CreateParams) (models.ItemName, models.Category, *domainerr.ValidationError) {
	ve := &domainerr.ValidationError{Cause: itemdomain.ErrInvalidItem}

	var name models.ItemName
	if strings.TrimSpace(p.Name) == "" {
		ve.Add("name", "is required")
	} else if n, err := models.NewItemName(p.Name); err != nil {
		ve.Add("name", err.Error())
	} else if err := ValidateName(n); err != nil {
		ve.Add("name", err.Error())
	} else {
		name = n
	}

	category, ok := models.ParseCategory(p.Category)
	switch {
	case p.Category == "":
		ve.Add("category", "is required")
	case !ok:
		ve.Add("category", fmt.Sprintf("must be one of: %s", models.CategoryNames()))
	}

	if !(p.Weight > 0) {
		ve.Add("weight", "must be greater than 0")
	}
	if p.InventoryLevel < 0 {
		ve.Add("inventory_level", "must be greater than or equal to 0")
	} else if p.InventoryLevel > maxLevel {
		ve.Add("inventory_level", fmt.Sprintf("must not exceed %d", maxLevel))
	}
	if p.ReorderLevel < 0 {
		ve.Add("reorder_level", "must be greater than or equal to 0")
	} else if p.ReorderLevel > maxLevel {
		ve.Add("reorder_level", fmt.Sprintf("must not exceed %d", maxLevel))
	}
	if utf8.RuneCountInString(p.Color) > maxColorLength {
		ve.Add("color", fmt.Sprintf("must not exceed %d characters", maxColorLength))
	}
	if utf8.RuneCountInString(p.Description) > maxDescriptionLength {
		ve.Add("description", fmt.Sprintf("must not exceed %d characters", maxDescriptionLength))
	}

	if len(ve.Fields) > 0 {
		return name, category, ve
	}
	return name, category, nil
}
