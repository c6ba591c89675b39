package domain

import "errors"

var (
	ErrRecordNotFound = errors.New("record not found")
	ErrDuplicateKey   = errors.New("duplicate key")
	ErrUnknown        = errors.New("unknown error")

	ErrInvalidPointAmount = errors.New("point amount cannot be negative")
	ErrNotEnoughPoints    = errors.New("not enough points")

	ErrInvalidCost           = errors.New("cost cannot be negative")
	ErrInvalidProductNumber  = errors.New("product min number cannot exceed max number")
	ErrInvalidTradeDate      = errors.New("trade date cannot be before deadline date")
	ErrInvalidPurchaseNumber = errors.New("purchase number must be at least 1")

	ErrAlreadyJoined    = errors.New("member already participates in copurchasing")
	ErrCantJoinOwn      = errors.New("writer cannot join own copurchasing")
	ErrDeadlineExpired  = errors.New("copurchasing deadline expired")
	ErrMaxNumberReached = errors.New("copurchasing max product number reached")
	ErrAlreadyStarted   = errors.New("copurchasing already started")

	ErrNoPermission       = errors.New("no permission")
	ErrWriterCannotCancel = errors.New("writer cannot cancel own participation")
)
