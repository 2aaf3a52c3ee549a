package model

// ErrorResponse represents a standardised error response.
type ErrorResponse struct {
	Error         string `json:"error"`
	Message       string `json:"message"`
	CorrelationID string `json:"correlationId,omitempty"`
}

// Standard error codes for API responses
const (
	ErrCodeInvalidJSON       = "INVALID_JSON"
	ErrCodeMissingField      = "MISSING_FIELD"
	ErrCodeValidation        = "VALIDATION_ERROR"
	ErrCodeProductNotFound   = "PRODUCT_NOT_FOUND"
	ErrCodeLineNotFound      = "LINE_NOT_FOUND"
	ErrCodeOrderNotFound     = "ORDER_NOT_FOUND"
	ErrCodeEmptySelection    = "EMPTY_SELECTION"
	ErrCodeInvalidQuantity   = "INVALID_QUANTITY"
	ErrCodeInsufficientStock = "INSUFFICIENT_STOCK"
	ErrCodeInvalidTransition = "INVALID_TRANSITION"
	ErrCodeUnauthorised      = "UNAUTHORIZED"
	ErrCodeForbidden         = "FORBIDDEN"
	ErrCodeStoreUnavailable  = "STORE_UNAVAILABLE"
	ErrCodeInternalError     = "INTERNAL_ERROR"
)

// Domain errors for business logic
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrProductNotFound   = NewDomainError(ErrCodeProductNotFound, "Product not found")
	ErrLineNotFound      = NewDomainError(ErrCodeLineNotFound, "Cart line not found")
	ErrOrderNotFound     = NewDomainError(ErrCodeOrderNotFound, "Order not found")
	ErrEmptySelection    = NewDomainError(ErrCodeEmptySelection, "Checkout selection must contain at least one cart line")
	ErrInvalidQuantity   = NewDomainError(ErrCodeInvalidQuantity, "Quantity must be greater than zero")
	ErrInsufficientStock = NewDomainError(ErrCodeInsufficientStock, "Not enough stock available")
	ErrInvalidTransition = NewDomainError(ErrCodeInvalidTransition, "Order status transition is not allowed")
	ErrForbidden         = NewDomainError(ErrCodeForbidden, "Not allowed to access this resource")
	ErrStoreUnavailable  = NewDomainError(ErrCodeStoreUnavailable, "Backing store is unavailable")
)
