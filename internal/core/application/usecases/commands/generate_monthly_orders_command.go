package commands

import (
	"errors"

	"photoflow/internal/pkg/guard"
)

var ErrGenerateMonthlyOrdersCommandIsNotConstructed = errors.New(
	"GenerateMonthlyOrdersCommand must be created via NewGenerateMonthlyOrdersCommand constructor",
)

// GenerateMonthlyOrdersCommand starts one recurring order run over every
// active subscription.
type GenerateMonthlyOrdersCommand struct {
	guard guard.ConstructorGuard
}

func NewGenerateMonthlyOrdersCommand() GenerateMonthlyOrdersCommand {
	return GenerateMonthlyOrdersCommand{
		guard: guard.NewConstructorGuard(),
	}
}

func (c *GenerateMonthlyOrdersCommand) Validate() error {
	return c.guard.Validate(ErrGenerateMonthlyOrdersCommandIsNotConstructed)
}
