package errors

import "net/http"

var (
	ErrHouseNotFound = New(
		"HOUSE_NOT_FOUND",
		"House not found",
		http.StatusNotFound,
	)

	ErrReviewNotFound = New(
		"REVIEW_NOT_FOUND",
		"Review not found",
		http.StatusNotFound,
	)

	ErrRouteNotFound = New(
		"ROUTE_NOT_FOUND",
		"Shared route not found or expired",
		http.StatusNotFound,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidBounds = New(
		"INVALID_BOUNDS",
		"Map bounds require all four corner coordinates",
		http.StatusBadRequest,
	)

	ErrInvalidDuration = New(
		"INVALID_DURATION",
		"Route duration must be a non-negative number of minutes",
		http.StatusBadRequest,
	)

	ErrInvalidFlagReason = New(
		"INVALID_FLAG_REASON",
		"Unknown flag reason",
		http.StatusBadRequest,
	)

	ErrInvalidFlagTarget = New(
		"INVALID_FLAG_TARGET",
		"Flag target must be a house or a review",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
