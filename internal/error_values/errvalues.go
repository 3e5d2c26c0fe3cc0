package errorvalues

import "errors"

var (
	ErrRecordNotFound = errors.New("record doesn't exist")
	ErrDuplicate      = errors.New("such record already exists")
	ErrUnknownColumn  = errors.New("column can't be written")
	ErrInvalidPatch   = errors.New("invalid patch")
	ErrValidation     = errors.New("validation failed")
	// ErrSync wraps every failure of the remote store. Callers keep their last-known-good state
	ErrSync = errors.New("sync error")

	ErrHabitNotFound            = errors.New("habit doesn't exist")
	ErrCompletionExists         = errors.New("habit already completed on that date")
	ErrCompletionNotFound       = errors.New("habit isn't completed on that date")
	ErrCompletionDateNotAllowed = errors.New("can't complete a habit in the future")

	ErrInvalidSlot  = errors.New("invalid time slot")
	ErrSlotOverlap  = errors.New("time slot overlaps another block")
	ErrBlockMissing = errors.New("no block for current time")

	ErrUnknownActivity    = errors.New("unknown activity type")
	ErrInvalidRange       = errors.New("invalid date range")
	ErrPreferenceNotFound = errors.New("preference isn't saved")
	ErrUnknownPreference  = errors.New("unknown preference feature")
	ErrInvalidToken       = errors.New("invalid token")
)
