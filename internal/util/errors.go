package util

import "errors"

var (
	ErrScaleNotFound           = errors.New("scale not found")
	ErrArpeggioNotFound        = errors.New("arpeggio not found")
	ErrSelectionSetNotFound    = errors.New("selection set not found")
	ErrSelectionSetNameTaken   = errors.New("selection set name already exists")
	ErrSelectionSetNameEmpty   = errors.New("selection set name must not be empty")
	ErrInvalidItemType         = errors.New("item_type must be scale or arpeggio")
	ErrInvalidArticulationMode = errors.New("invalid articulation mode")
)
