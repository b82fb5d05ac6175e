package commands

import (
	"context"
	"time"

	"packline/internal/core/domain/model/inventory"
	"packline/internal/core/domain/model/kernel"
)

// AddContainerCommandHandler books a container of stock: the SKU's staged
// counter grows by the container size and an immutable audit record is
// appended, both in one transaction. Intake never touches tasks; the next
// backlog refresh picks up the new staged stock.
type AddContainerCommandHandler struct {
	uowFactory IntakeUoWFactory
}

// NewAddContainerCommandHandler creates a handler for container intake.
// Requires an IntakeUoWFactory for transactional persistence.
func NewAddContainerCommandHandler(uowFactory IntakeUoWFactory) AddContainerCommandHandler {
	return AddContainerCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the intake command. Additions are commutative: the final
// staged total is independent of the interleaving of concurrent intakes for
// the same SKU, because each one locks the level row before adding.
func (h *AddContainerCommandHandler) Handle(ctx context.Context, cmd AddContainerCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	intake, err := inventory.NewIntake(kernel.NewUUID(), cmd.Code(), cmd.Size(), time.Now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	delta, err := intake.Delta()
	if err != nil {
		return err
	}

	if err = level.ApplyDelta(delta); err != nil {
		return err
	}

	if err = inventoryRepo.Upsert(ctx, level); err != nil {
		return err
	}

	if err = uow.IntakeRepository().Add(ctx, intake); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
