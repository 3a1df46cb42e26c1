package aptos

import (
	"crowdfund/internal/core/domain"
	"fmt"
	"net/http"
	"strings"
)

// vmErrorMissingData is the VM status reported when a view function
// borrows a resource that was never published.
const vmErrorMissingData = 4008

// APIError is an error body returned by the node REST API.
type APIError struct {
	StatusCode  int    `json:"-"`
	Message     string `json:"message"`
	ErrorCode   string `json:"error_code"`
	VMErrorCode int    `json:"vm_error_code"`
}

func (e *APIError) Error() string {
	if e.VMErrorCode != 0 {
		return fmt.Sprintf("node returned %d %s (vm error %d): %s", e.StatusCode, e.ErrorCode, e.VMErrorCode, e.Message)
	}
	return fmt.Sprintf("node returned %d %s: %s", e.StatusCode, e.ErrorCode, e.Message)
}

// Unwrap exposes the domain sentinels matching the error so callers can
// classify it with errors.Is.
func (e *APIError) Unwrap() []error {
	switch {
	case e.NotDeployed():
		return []error{domain.ErrGatewayUnavailable, domain.ErrModuleNotDeployed}
	case e.StatusCode >= http.StatusInternalServerError, e.StatusCode == http.StatusTooManyRequests:
		return []error{domain.ErrGatewayUnavailable}
	case e.StatusCode == http.StatusNotFound:
		return []error{domain.ErrNotFound}
	case e.StatusCode >= http.StatusBadRequest:
		return []error{domain.ErrInvalidRequest}
	default:
		return []error{domain.ErrGatewayUnavailable}
	}
}

// NotDeployed reports whether the node answered but the crowdfunding
// module, or a resource it needs, does not exist.
func (e *APIError) NotDeployed() bool {
	if e.VMErrorCode == vmErrorMissingData || e.ErrorCode == "module_not_found" || e.ErrorCode == "resource_not_found" {
		return true
	}
	msg := strings.ToLower(e.Message)
	return strings.Contains(msg, "failed to borrow global resource") ||
		strings.Contains(msg, "linker_error") ||
		strings.Contains(msg, "function_resolution_failure")
}
