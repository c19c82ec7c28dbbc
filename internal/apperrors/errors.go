package apperrors

import "errors"

// Ingestion errors represent problems with the raw export files. They are
// recovered per file/year; only ErrNoUsableInput is surfaced as a load
// failure for the whole transaction dataset.
var (
	// ErrEmptyFile indicates that a source file contained no rows at all.
	ErrEmptyFile = errors.New("file is empty")

	// ErrNoHeaderRow indicates that no row in the scanned window matched the
	// expected header tokens, so the file cannot be mapped to columns.
	ErrNoHeaderRow = errors.New("no header row found")

	// ErrNoUsableInput indicates that every candidate transaction file failed
	// to load. The dataset stays empty but the service keeps running.
	ErrNoUsableInput = errors.New("no usable input file found")
)

// Domain entity errors represent missing or invalid entities.
var (
	// ErrPurchaseNotFound indicates that a purchase with the given ID does not exist.
	ErrPurchaseNotFound = errors.New("purchase not found")
)

// Business logic errors represent validation failures or constraint violations.
var (
	// ErrInvalidMovementType indicates a movement-type selector outside all/income/expense.
	ErrInvalidMovementType = errors.New("invalid movement type")

	// ErrInvalidDate indicates that a date parameter is missing or not DD/MM/YYYY.
	ErrInvalidDate = errors.New("invalid date")

	// ErrInvalidYear indicates that a year parameter is missing or not numeric.
	ErrInvalidYear = errors.New("invalid year")

	// ErrStatusNotToggleable indicates a status toggle on a record whose
	// status is neither pending nor received.
	ErrStatusNotToggleable = errors.New("status cannot be toggled")
)

// Operation failure errors represent system-level failures when retrieving
// or persisting data.
var (
	ErrFailedToLoadDataset       = errors.New("failed to load dataset")
	ErrFailedToRetrievePurchases = errors.New("failed to retrieve purchases")
	ErrFailedToSavePurchases     = errors.New("failed to save purchases")
)
