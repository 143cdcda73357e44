package domain

import "errors"

var (
	// Common domain errors
	ErrEmptyLocation      = errors.New("location is empty")
	ErrSchemaViolation    = errors.New("weather data violates schema")
	ErrWeatherFetchFailed = errors.New("weather fetch failed")
)
