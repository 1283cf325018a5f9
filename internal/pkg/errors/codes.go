package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidTransportMode = New(
		"INVALID_TRANSPORT_MODE",
		"Invalid transport mode",
		http.StatusBadRequest,
	)

	ErrInvalidStopID = New(
		"INVALID_STOP_ID",
		"Invalid stop ID",
		http.StatusBadRequest,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrMissingCredentials = New(
		"MISSING_CREDENTIALS",
		"Transit API credentials are not configured",
		http.StatusInternalServerError,
	)

	ErrCryptoUnavailable = New(
		"CRYPTO_UNAVAILABLE",
		"Request signing primitive is unavailable",
		http.StatusInternalServerError,
	)

	ErrTransitAPI = New(
		"TRANSIT_API_ERROR",
		"Transit API request failed",
		http.StatusBadGateway,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
