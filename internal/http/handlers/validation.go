package handlers

import (
	"strings"
)

type ValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// The cart store itself never rejects a transition, so quantity sanity is
// enforced here, at the boundary.
func validateAddCartItem(req AddCartItemRequest) []ValidationError {
	errs := []ValidationError{}
	if req.ProductID <= 0 {
		errs = append(errs, ValidationError{Field: "ProductID", Description: "Product id is required"})
	}
	if req.Quantity < 1 {
		errs = append(errs, ValidationError{Field: "Quantity", Description: "Quantity must be at least one"})
	}
	return errs
}

func validateContact(req ContactRequest) []ValidationError {
	errs := []ValidationError{}
	if strings.TrimSpace(req.Name) == "" {
		errs = append(errs, ValidationError{Field: "Name", Description: "Name is required"})
	}
	if strings.TrimSpace(req.Email) == "" {
		errs = append(errs, ValidationError{Field: "Email", Description: "Email is required"})
	} else if !strings.Contains(req.Email, "@") {
		errs = append(errs, ValidationError{Field: "Email", Description: "Email is not valid"})
	}
	if strings.TrimSpace(req.Body) == "" {
		errs = append(errs, ValidationError{Field: "Body", Description: "Message body is required"})
	}
	return errs
}
