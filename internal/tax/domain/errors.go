package domain

import "errors"

var (
	ErrChargeNotFound    = errors.New("charge_not_found")
	ErrTaxCodeInactive   = errors.New("tax_code_inactive")
	ErrTaxCodeNotFound   = errors.New("tax_code_not_found")
	ErrInvalidTaxCode    = errors.New("invalid_tax_code")
	ErrInvalidChargeCode = errors.New("invalid_charge_code")
	ErrInvalidName       = errors.New("invalid_name")
	ErrInvalidTaxRate    = errors.New("invalid_tax_rate")
	ErrDuplicateCode     = errors.New("duplicate_code")
)
