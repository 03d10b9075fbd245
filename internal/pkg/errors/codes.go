package errors

import "net/http"

var (
	ErrValidation = New(
		"VALIDATION_ERROR",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrZoneNotFound = New(
		"ZONE_NOT_FOUND",
		"Zone not found",
		http.StatusNotFound,
	)

	ErrReportNotFound = New(
		"REPORT_NOT_FOUND",
		"Report not found",
		http.StatusNotFound,
	)

	ErrAccessPointNotFound = New(
		"ACCESS_POINT_NOT_FOUND",
		"Access point is not monitored",
		http.StatusNotFound,
	)

	ErrRateLimited = New(
		"RATE_LIMITED",
		"Report limit reached: at most 3 reports per submitter in 10 minutes",
		http.StatusTooManyRequests,
	)

	ErrCapacityExceeded = New(
		"CAPACITY_EXCEEDED",
		"Requested occupancy exceeds zone capacity",
		http.StatusUnprocessableEntity,
	)

	// ErrNoAvailability is an expected outcome of the recommender, not a
	// transient failure: every zone is either full or has no capacity for
	// the requested vehicle type.
	ErrNoAvailability = New(
		"NO_AVAILABILITY",
		"No zone has free spots for the selected vehicle type",
		http.StatusConflict,
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

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
