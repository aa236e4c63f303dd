package errs

import "errors"

// Domain-specific sentinel errors shared by the usecase layers
var (
	// Auth errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenValidation    = errors.New("token validation failed")

	// Booking errors
	ErrBookingNotFound    = errors.New("booking not found")
	ErrCheckInInPast      = errors.New("check-in date cannot be in the past")
	ErrCheckOutNotAfterIn = errors.New("check-out date must be after check-in date")

	// Newsletter errors
	ErrAlreadySubscribed   = errors.New("email is already subscribed")
	ErrSubscriberNotFound  = errors.New("subscriber not found")
	ErrNoActiveSubscribers = errors.New("no active subscribers")

	// Content errors
	ErrContentNotFound = errors.New("content not found")
	ErrDuplicateSlug   = errors.New("content with this slug already exists")

	// Gallery errors
	ErrImageNotFound   = errors.New("image not found")
	ErrNoFilesUploaded = errors.New("no files uploaded")
	ErrInvalidFileType = errors.New("invalid file type")
	ErrFileTooLarge    = errors.New("file too large")
	ErrTooManyFiles    = errors.New("too many files")

	// Notification errors
	ErrMailDelivery = errors.New("mail delivery failed")
)
