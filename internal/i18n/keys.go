// Package i18n provides internationalization support for the carton service.
package i18n

// Error message translation keys.
const (
	// ErrKeyInvalidRequest indicates an invalid request.
	ErrKeyInvalidRequest = "error.invalid_request"
	// ErrKeyInvalidRequestBody indicates an invalid request body.
	ErrKeyInvalidRequestBody = "error.invalid_request_body"
	// ErrKeyInternalError indicates an internal server error.
	ErrKeyInternalError = "error.internal_error"
	// ErrKeyNotFound indicates a resource was not found.
	ErrKeyNotFound = "error.not_found"
	// ErrKeyRateLimitExceeded indicates rate limit exceeded.
	ErrKeyRateLimitExceeded = "error.rate_limit_exceeded"
	// ErrKeyConflict indicates a conflict with current state.
	ErrKeyConflict = "error.conflict"
	// ErrKeyTimeout indicates a request timeout.
	ErrKeyTimeout = "error.timeout"
	// ErrKeyValidationItems indicates invalid items validation.
	ErrKeyValidationItems = "error.validation.items"
	// ErrKeyNoFittingBox indicates no box can hold the requested items.
	ErrKeyNoFittingBox = "error.no_fitting_box"
	// ErrKeyLastPackage indicates an edit tried to remove the only package.
	ErrKeyLastPackage = "error.last_package"
	// ErrKeyBoxNotFound indicates a catalog box was not found.
	ErrKeyBoxNotFound = "error.box_not_found"
	// ErrKeyRecommendationNotFound indicates no stored recommendation for the order.
	ErrKeyRecommendationNotFound = "error.recommendation_not_found"
)
