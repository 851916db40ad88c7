package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/location"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsRequired    = errors.New("customer name is required")
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
	ErrLineItemsAreRequired      = errors.New("order must contain at least one line item")
)

// CreateOrderCommand represents a request to place a new order.
// The order identifier is generated here; vendor and location references are
// verified against the stores by the handler.
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID         kernel.UUID
	customerID      kernel.UUID
	customerName    string
	vendorID        kernel.UUID
	locationID      location.ID
	lineItems       []order.LineItem
	paymentMethod   string
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order.
// Validates identifiers, customer name, delivery address, and that at least
// one line item is present. Line items are validated by order.NewLineItem
// before they reach this command.
func NewCreateOrderCommand(
	customerID kernel.UUID,
	customerName string,
	vendorID kernel.UUID,
	locationID location.ID,
	lineItems []order.LineItem,
	paymentMethod string,
	deliveryAddress string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		orderID: kernel.NewUUID(),
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(customerID, customerName),
		cmd.setVendorID(vendorID),
		cmd.setLocationID(locationID),
		cmd.setLineItems(lineItems),
		cmd.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	cmd.paymentMethod = paymentMethod
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the generated order identifier.
func (c CreateOrderCommand) OrderID() kernel.UUID { return c.orderID }

// CustomerID returns the ordering customer's identifier.
func (c CreateOrderCommand) CustomerID() kernel.UUID { return c.customerID }

// CustomerName returns the customer's display name.
func (c CreateOrderCommand) CustomerName() string { return c.customerName }

// VendorID returns the fulfilling vendor.
func (c CreateOrderCommand) VendorID() kernel.UUID { return c.vendorID }

// LocationID returns the delivery location slug.
func (c CreateOrderCommand) LocationID() location.ID { return c.locationID }

// LineItems returns the purchased items.
func (c CreateOrderCommand) LineItems() []order.LineItem { return c.lineItems }

// PaymentMethod returns the payment method label.
func (c CreateOrderCommand) PaymentMethod() string { return c.paymentMethod }

// DeliveryAddress returns the drop-off address.
func (c CreateOrderCommand) DeliveryAddress() string { return c.deliveryAddress }

func (c *CreateOrderCommand) setCustomer(customerID kernel.UUID, customerName string) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	if customerName == "" {
		return ErrCustomerNameIsRequired
	}

	c.customerID = customerID
	c.customerName = customerName
	return nil
}

func (c *CreateOrderCommand) setVendorID(vendorID kernel.UUID) error {
	if err := vendorID.Validate(); err != nil {
		return err
	}

	c.vendorID = vendorID
	return nil
}

func (c *CreateOrderCommand) setLocationID(locationID location.ID) error {
	if err := locationID.Validate(); err != nil {
		return err
	}

	c.locationID = locationID
	return nil
}

func (c *CreateOrderCommand) setLineItems(lineItems []order.LineItem) error {
	if len(lineItems) == 0 {
		return ErrLineItemsAreRequired
	}

	c.lineItems = lineItems
	return nil
}

func (c *CreateOrderCommand) setDeliveryAddress(address string) error {
	if address == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = address
	return nil
}
