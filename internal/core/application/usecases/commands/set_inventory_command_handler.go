package commands

import (
	"context"
)

// SetInventoryCommandHandler applies a manual inventory correction inside
// one transaction with the SKU's level row locked.
type SetInventoryCommandHandler struct {
	uowFactory InventoryUoWFactory
}

// NewSetInventoryCommandHandler creates a handler for inventory corrections.
// Requires an InventoryUoWFactory for transactional persistence.
func NewSetInventoryCommandHandler(uowFactory InventoryUoWFactory) SetInventoryCommandHandler {
	return SetInventoryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the correction command.
func (h *SetInventoryCommandHandler) Handle(ctx context.Context, cmd SetInventoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	inventoryRepo := uow.InventoryRepository()
	level, err := inventoryRepo.GetForUpdate(ctx, cmd.Code())
	if err != nil {
		return err
	}

	if err = level.SetAbsolute(cmd.Staged(), cmd.Filled(), cmd.Cased()); err != nil {
		return err
	}

	if err = inventoryRepo.Upsert(ctx, level); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
