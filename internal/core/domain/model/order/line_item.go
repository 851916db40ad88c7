package order

import (
	"errors"
	"fmt"

	"marketplace/internal/pkg/errs"
)

// LineItem is an immutable value object describing one purchased product.
type LineItem struct {
	productID string
	name      string
	unitPrice float64
	quantity  int
}

// NewLineItem creates a validated line item. Quantity must be positive and
// unit price non-negative.
func NewLineItem(productID, name string, unitPrice float64, quantity int) (LineItem, error) {
	var errList []error
	if productID == "" {
		errList = append(errList, errs.NewValueIsRequiredError("productId"))
	}
	if name == "" {
		errList = append(errList, errs.NewValueIsRequiredError("name"))
	}
	if unitPrice < 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("unitPrice",
			fmt.Errorf("%.2f is negative", unitPrice)))
	}
	if quantity <= 0 {
		errList = append(errList, errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity)))
	}
	if err := errors.Join(errList...); err != nil {
		return LineItem{}, err
	}

	return LineItem{
		productID: productID,
		name:      name,
		unitPrice: unitPrice,
		quantity:  quantity,
	}, nil
}

// ProductID returns the purchased product's identifier.
func (li LineItem) ProductID() string { return li.productID }

// Name returns the product name as sold.
func (li LineItem) Name() string { return li.name }

// UnitPrice returns the price per unit.
func (li LineItem) UnitPrice() float64 { return li.unitPrice }

// Quantity returns the number of units.
func (li LineItem) Quantity() int { return li.quantity }

// Subtotal returns quantity times unit price.
func (li LineItem) Subtotal() float64 {
	return float64(li.quantity) * li.unitPrice
}
