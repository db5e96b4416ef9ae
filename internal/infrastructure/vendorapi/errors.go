package vendorapi

import (
	"errors"
	"fmt"
)

// VendorError is a non-200 transport response from the vendor. It is never
// shown to clients; the REST boundary classifies it as an upstream failure.
type VendorError struct {
	StatusCode int
	Body       string
}

func (e *VendorError) Error() string {
	return fmt.Sprintf("vendor returned status %d: %s", e.StatusCode, e.Body)
}

func IsVendorError(err error) (*VendorError, bool) {
	var vendorErr *VendorError
	ok := errors.As(err, &vendorErr)
	return vendorErr, ok
}
