package domain

import "errors"

var (
	// ErrUnknownServiceType raw value does not name a known service type
	ErrUnknownServiceType = errors.New("domain: unknown service type")

	// ErrUnknownBookingStatus raw value does not name a known booking status
	ErrUnknownBookingStatus = errors.New("domain: unknown booking status")

	// ErrUnknownDocumentCategory raw value does not name a known document category
	ErrUnknownDocumentCategory = errors.New("domain: unknown document category")
)
