package checkout

import "errors"

var (
	// ErrEmptyCart aborts checkout before any network call is made.
	ErrEmptyCart = errors.New("cart is empty, nothing to checkout")

	// ErrMalformedResponse means the order API answered success but the
	// response carried no order identifier under any accepted field name.
	ErrMalformedResponse = errors.New("order created, but no order id returned")
)
