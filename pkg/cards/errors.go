package cards

import "errors"

var (
	ErrInvalidCard = errors.New("invalid card")
	ErrInvalidRank = errors.New("invalid rank")
	ErrInvalidSuit = errors.New("invalid suit")
)
