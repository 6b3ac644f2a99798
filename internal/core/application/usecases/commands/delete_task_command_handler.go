package commands

import "context"

type DeleteTaskCommandHandler struct {
	uowFactory TaskUoWFactory
}

func NewDeleteTaskCommandHandler(uowFactory TaskUoWFactory) DeleteTaskCommandHandler {
	return DeleteTaskCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the task or returns ObjectNotFoundError when it does not exist.
func (h DeleteTaskCommandHandler) Handle(ctx context.Context, command DeleteTaskCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.TaskRepository().Delete(ctx, command.TaskID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
