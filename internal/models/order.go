package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Order represents a purchase to be taxed and totaled.
// It lives for the duration of a single request; Total is an output
// field, always overwritten by the tax calculation.
type Order struct {
	OrderID         int     `json:"order_id"`
	ProductID       int     `json:"product_id"`
	Quantity        int     `json:"quantity"`
	Subtotal        float64 `json:"subtotal"`
	ShippingAddress string  `json:"shipping_address"`
	ShippingZip     string  `json:"shipping_zip"`
	Total           float64 `json:"total"`
}

// orderWire is the wire schema for decoding. Pointer fields let a
// missing field be told apart from a zero value; total is optional
// on input since it is output-only.
type orderWire struct {
	OrderID         *int     `json:"order_id" validate:"required"`
	ProductID       *int     `json:"product_id" validate:"required"`
	Quantity        *int     `json:"quantity" validate:"required"`
	Subtotal        *float64 `json:"subtotal" validate:"required"`
	ShippingAddress *string  `json:"shipping_address" validate:"required"`
	ShippingZip     *string  `json:"shipping_zip" validate:"required"`
	Total           *float64 `json:"total"`
}

// MissingFieldError reports a required order field absent from the
// request body. The field name is the wire name.
type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("missing field %s", strings.ReplaceAll(e.Field, "_", " "))
}

// wireValidate reports field names by their json tag so errors speak
// the wire schema, not Go identifiers.
var wireValidate = newWireValidator()

func newWireValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// DecodeOrder parses a request body into an Order.
// A required field absent from the body yields a *MissingFieldError;
// malformed JSON and type mismatches return the decoder's error as-is.
// The whole body must be a single JSON value; trailing content after
// the order is malformed input.
func DecodeOrder(r io.Reader) (*Order, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var w orderWire
	if err := json.Unmarshal(data, &w); err != nil {
		return nil, err
	}

	if err := wireValidate.Struct(&w); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, &MissingFieldError{Field: verrs[0].Field()}
		}
		return nil, err
	}

	// Total from the input is discarded; the tax calculation owns it.
	return &Order{
		OrderID:         *w.OrderID,
		ProductID:       *w.ProductID,
		Quantity:        *w.Quantity,
		Subtotal:        *w.Subtotal,
		ShippingAddress: *w.ShippingAddress,
		ShippingZip:     *w.ShippingZip,
	}, nil
}
