package core

import "errors"

var (
	ErrInvalidCoordinate = errors.New("coordinate out of grid bounds")
	ErrUnitNotFound      = errors.New("unit does not exist in this state")
	ErrUnitDead          = errors.New("unit is not alive")
	ErrTargetNotFound    = errors.New("target unit does not exist in this state")
	ErrGameOver          = errors.New("game is over")
	ErrNoLegalAction     = errors.New("no legal action available")
)
