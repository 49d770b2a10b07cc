package service

import "errors"

var (
	ErrOrderNotFound    = errors.New("order not found")
	ErrOrdererRequired  = errors.New("orderer name is required")
	ErrNoOrderLines     = errors.New("at least one order line is required")
	ErrInvalidOrderLine = errors.New("invalid order line")
	ErrDrinkRequired    = errors.New("every order line must name a drink")
	ErrInvalidCurrency  = errors.New("invalid currency")

	ErrProductNotFound     = errors.New("product not found")
	ErrProductNameRequired = errors.New("product name is required")
	ErrProductTypeRequired = errors.New("product type is required")
	ErrProductPriceInvalid = errors.New("product price must be a positive amount")
	ErrProductExists       = errors.New("product already exists")
)
