package commands

import (
	"errors"

	"logistics/internal/pkg/guard"
)

var ErrDeleteAllRoutesCommandIsNotConstructed = errors.New(
	"DeleteAllRoutesCommand must be created via NewDeleteAllRoutesCommand constructor",
)

// DeleteAllRoutesCommand removes every stored route.
type DeleteAllRoutesCommand struct {
	guard guard.ConstructorGuard
}

func NewDeleteAllRoutesCommand() DeleteAllRoutesCommand {
	return DeleteAllRoutesCommand{guard: guard.NewConstructorGuard()}
}

// Validate ensures the command was created through the constructor.
func (c DeleteAllRoutesCommand) Validate() error {
	return c.guard.Validate(ErrDeleteAllRoutesCommandIsNotConstructed)
}
