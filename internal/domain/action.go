package domain

import "fmt"

// Action is what a caller intends to do with a room when it asks for a media
// credential.
type Action string

const (
	ActionHost Action = "host"
	ActionJoin Action = "join"
)

func ParseAction(s string) (Action, error) {
	switch Action(s) {
	case ActionHost, ActionJoin:
		return Action(s), nil
	default:
		return "", fmt.Errorf("%w: unknown action type %q", ErrInvalidArgument, s)
	}
}
