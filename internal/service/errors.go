package service

import (
	"errors"
)

const (
	BadRequest          = 400
	NotFound            = 404
	InternalServerError = 500
)

// 错误分类：ValidationError -> 400，NotFoundError -> 404，其余 -> 500
var (
	ErrValidation = errors.New("validation error")
	ErrNotFound   = errors.New("not found")
)

// kindError 携带分类的业务错误，errors.Is 可同时匹配自身与分类
type kindError struct {
	kind error
	msg  string
}

func (e *kindError) Error() string {
	return e.msg
}

func (e *kindError) Unwrap() error {
	return e.kind
}

func newValidationError(msg string) error {
	return &kindError{kind: ErrValidation, msg: msg}
}

func newNotFoundError(msg string) error {
	return &kindError{kind: ErrNotFound, msg: msg}
}

var (
	ErrParamInvalid           = newValidationError("Invalid request parameters")
	ErrPlatformFieldsRequired = newValidationError("Name, icon, and color are required")
	ErrPlatformIDRequired     = newValidationError("Platform ID is required")
	ErrPlatformNotFound       = newNotFoundError("Platform not found")
	ErrInvalidDate            = newValidationError("Dates must use the YYYY-MM-DD format")
	ErrInvalidDateRange       = newValidationError("startDate must not be after endDate")
	ErrFetchPlatforms         = errors.New("Failed to fetch platforms")
	ErrAddPlatform            = errors.New("Failed to add platform")
	ErrDeletePlatform         = errors.New("Failed to delete platform")
	ErrFetchPlatformStats     = errors.New("Failed to fetch platform statistics")
	ErrFetchAudience          = errors.New("Failed to fetch audience reach data")
	ErrFetchEngagement        = errors.New("Failed to fetch engagement metrics")
	ErrFetchPerformance       = errors.New("Failed to fetch platform performance data")
	ErrFetchTrends            = errors.New("Failed to fetch overall trends data")
	ErrFetchKpis              = errors.New("Failed to fetch dashboard KPIs")
	ErrReconcileKpis          = errors.New("Failed to reconcile dashboard KPIs")
	UnExpectedError           = errors.New("Internal server error")
)

var ErrorMap = map[error]int{
	ErrValidation:             BadRequest,
	ErrNotFound:               NotFound,
	ErrParamInvalid:           BadRequest,
	ErrPlatformFieldsRequired: BadRequest,
	ErrPlatformIDRequired:     BadRequest,
	ErrPlatformNotFound:       NotFound,
	ErrInvalidDate:            BadRequest,
	ErrInvalidDateRange:       BadRequest,
	ErrFetchPlatforms:         InternalServerError,
	ErrAddPlatform:            InternalServerError,
	ErrDeletePlatform:         InternalServerError,
	ErrFetchPlatformStats:     InternalServerError,
	ErrFetchAudience:          InternalServerError,
	ErrFetchEngagement:        InternalServerError,
	ErrFetchPerformance:       InternalServerError,
	ErrFetchTrends:            InternalServerError,
	ErrFetchKpis:              InternalServerError,
	ErrReconcileKpis:          InternalServerError,
	UnExpectedError:           InternalServerError,
}
