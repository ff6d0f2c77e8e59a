package core

import "fmt"

// ActionType represents the type of action a unit can take.
type ActionType int

const (
	ActionMove ActionType = iota
	ActionAttack
	ActionMoveAttack
	ActionPass
)

// String returns the name of the action type.
func (t ActionType) String() string {
	switch t {
	case ActionMove:
		return "move"
	case ActionAttack:
		return "attack"
	case ActionMoveAttack:
		return "move_attack"
	case ActionPass:
		return "pass"
	default:
		return fmt.Sprintf("ActionType(%d)", int(t))
	}
}

// Action is one decision for one unit: relocate, strike, both, or stand down.
// Units and targets are referenced by ID so the same action remains meaningful
// across cloned states. Immutable once constructed.
type Action struct {
	Type     ActionType
	UnitID   int
	Dest     Hex // Move and MoveAttack only
	TargetID int // Attack and MoveAttack only
}

// NewMove creates an action relocating the unit to dest.
func NewMove(unitID int, dest Hex) Action {
	return Action{Type: ActionMove, UnitID: unitID, Dest: dest}
}

// NewAttack creates an action striking the target from the unit's current hex.
func NewAttack(unitID, targetID int) Action {
	return Action{Type: ActionAttack, UnitID: unitID, TargetID: targetID}
}

// NewMoveAttack creates an action stepping to dest and striking the target.
func NewMoveAttack(unitID int, dest Hex, targetID int) Action {
	return Action{Type: ActionMoveAttack, UnitID: unitID, Dest: dest, TargetID: targetID}
}

// NewPass creates an action ending the unit's turn without doing anything.
func NewPass(unitID int) Action {
	return Action{Type: ActionPass, UnitID: unitID}
}

// IsAttack reports whether the action strikes a target.
func (a Action) IsAttack() bool {
	return a.Type == ActionAttack || a.Type == ActionMoveAttack
}

// String returns a compact description for logging.
func (a Action) String() string {
	switch a.Type {
	case ActionMove:
		return fmt.Sprintf("unit %d move to %s", a.UnitID, a.Dest)
	case ActionAttack:
		return fmt.Sprintf("unit %d attack unit %d", a.UnitID, a.TargetID)
	case ActionMoveAttack:
		return fmt.Sprintf("unit %d move to %s and attack unit %d", a.UnitID, a.Dest, a.TargetID)
	case ActionPass:
		return fmt.Sprintf("unit %d pass", a.UnitID)
	default:
		return fmt.Sprintf("unit %d unknown action", a.UnitID)
	}
}
