package model

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrInvalidParameter = errors.New("")   // Base error for invalid parameter
var ErrLookupFailure = errors.New("")      // Base error for a missing counterpart entity or stop
var ErrValidationMismatch = errors.New("") // Base error for comparison failures
var ErrConfigurationGap = errors.New("")   // Base error for incomplete code tables
var ErrInfrastructure = errors.New("")     // Base error for entity store failures
var ErrUserError = errors.New("")          // Base error for User
var ErrDispatchError = errors.New("")      // Base error for outbound dispatch

// Lookup errors
var ErrShipmentNotFound = fmt.Errorf("shipment not found%w", ErrLookupFailure)
var ErrBrokerEventNotFound = fmt.Errorf("broker event not found%w", ErrLookupFailure)
var ErrStopNotFound = fmt.Errorf("stop not found%w", ErrLookupFailure)

// Code table errors
var ErrUnmappedCode = fmt.Errorf("code table has no mapping%w", ErrConfigurationGap)

// User errors
var ErrUserAuthenticationFail = fmt.Errorf("user name/password mismatch%w", ErrUserError)
var ErrUserInactive = fmt.Errorf("user is inactive%w", ErrUserError)
var ErrUserTokenInvalid = fmt.Errorf("user token invalid%w", ErrUserError)
var ErrUserTokenExpired = fmt.Errorf("user token expired%w", ErrUserError)

// Dispatch errors
var ErrTargetUnreachable = fmt.Errorf("target unreachable%w", ErrDispatchError)

func ErrorToHttpStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidParameter), errors.Is(err, ErrValidationMismatch):
		return http.StatusBadRequest
	case errors.Is(err, ErrLookupFailure):
		return http.StatusNotFound
	case errors.Is(err, ErrConfigurationGap):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrUserError):
		return http.StatusUnauthorized
	case errors.Is(err, ErrDispatchError):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
