// Package http exposes the packing pipeline over a REST API.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"errors"
	"net/http"

	"packline/internal/core/application/usecases/commands"
	"packline/internal/core/application/usecases/queries"
	"packline/internal/core/domain/model/inventory"
	"packline/internal/core/domain/model/kernel"
	"packline/internal/core/domain/model/sku"
	"packline/internal/core/domain/model/task"
	"packline/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server implements the HTTP handlers for the packing pipeline.
// It coordinates between HTTP requests and application use cases.
type Server struct {
	// Command handlers
	advanceTaskHandler    commands.AdvanceTaskCommandHandler
	revertTaskHandler     commands.RevertTaskCommandHandler
	addContainerHandler   commands.AddContainerCommandHandler
	setInventoryHandler   commands.SetInventoryCommandHandler
	updateNoteHandler     commands.UpdateTaskNoteCommandHandler
	refreshBacklogHandler commands.RefreshBacklogCommandHandler

	// Query handlers
	getDashboardHandler queries.GetDashboardQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	advanceTaskHandler commands.AdvanceTaskCommandHandler,
	revertTaskHandler commands.RevertTaskCommandHandler,
	addContainerHandler commands.AddContainerCommandHandler,
	setInventoryHandler commands.SetInventoryCommandHandler,
	updateNoteHandler commands.UpdateTaskNoteCommandHandler,
	refreshBacklogHandler commands.RefreshBacklogCommandHandler,
	getDashboardHandler queries.GetDashboardQueryHandler,
) *Server {
	return &Server{
		advanceTaskHandler:    advanceTaskHandler,
		revertTaskHandler:     revertTaskHandler,
		addContainerHandler:   addContainerHandler,
		setInventoryHandler:   setInventoryHandler,
		updateNoteHandler:     updateNoteHandler,
		refreshBacklogHandler: refreshBacklogHandler,
		getDashboardHandler:   getDashboardHandler,
	}
}

// RegisterRoutes attaches every API route to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.GET("/dashboard", s.GetDashboard)
	api.POST("/tasks/:id/advance", s.AdvanceTask)
	api.POST("/tasks/:id/revert", s.RevertTask)
	api.PUT("/tasks/:id/note", s.UpdateTaskNote)
	api.POST("/containers", s.AddContainer)
	api.PUT("/inventory/:sku", s.SetInventory)
	api.POST("/backlog/refresh", s.RefreshBacklog)

	e.GET("/health", s.Health)
}

// Error is the JSON error body returned on every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// TaskTransitionRequest is the body of advance and revert calls. It carries
// the client's view of the task so a stale board is rejected instead of
// silently acting on different state.
type TaskTransitionRequest struct {
	SKU        string `json:"sku"`
	Quantity   int    `json:"quantity"`
	FromColumn string `json:"fromColumn"`
}

// AddContainerRequest is the body of a container-intake call.
type AddContainerRequest struct {
	SKU  string `json:"sku"`
	Size int    `json:"size"`
}

// SetInventoryRequest is the body of a manual inventory correction.
type SetInventoryRequest struct {
	Staged int `json:"staged"`
	Filled int `json:"filled"`
	Cased  int `json:"cased"`
}

// UpdateNoteRequest is the body of a task note update.
type UpdateNoteRequest struct {
	Text string `json:"text"`
}

// GetDashboard handles GET /api/v1/dashboard - returns the full snapshot.
func (s *Server) GetDashboard(ctx echo.Context) error {
	snapshot, err := s.getDashboardHandler.Handle(ctx.Request().Context(), queries.NewGetDashboardQuery())
	if err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.JSON(http.StatusOK, snapshot)
}

// AdvanceTask handles POST /api/v1/tasks/:id/advance - moves a task one column forward.
func (s *Server) AdvanceTask(ctx echo.Context) error {
	taskID, body, err := bindTransition(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	code, err := sku.NewCode(body.SKU)
	if err != nil {
		return errorResponse(ctx, err)
	}

	fromColumn, err := task.ColumnFromString(body.FromColumn)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAdvanceTaskCommand(taskID, code, body.Quantity, fromColumn)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.advanceTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RevertTask handles POST /api/v1/tasks/:id/revert - moves a task one column backward.
func (s *Server) RevertTask(ctx echo.Context) error {
	taskID, body, err := bindTransition(ctx)
	if err != nil {
		return errorResponse(ctx, err)
	}

	code, err := sku.NewCode(body.SKU)
	if err != nil {
		return errorResponse(ctx, err)
	}

	fromColumn, err := task.ColumnFromString(body.FromColumn)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewRevertTaskCommand(taskID, code, body.Quantity, fromColumn)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.revertTaskHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateTaskNote handles PUT /api/v1/tasks/:id/note - replaces the operator note.
func (s *Server) UpdateTaskNote(ctx echo.Context) error {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body UpdateNoteRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateTaskNoteCommand(taskID, body.Text)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.updateNoteHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AddContainer handles POST /api/v1/containers - books one container of stock.
func (s *Server) AddContainer(ctx echo.Context) error {
	var body AddContainerRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	code, err := sku.NewCode(body.SKU)
	if err != nil {
		return errorResponse(ctx, err)
	}

	cmd, err := commands.NewAddContainerCommand(code, inventory.ContainerSize(body.Size))
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.addContainerHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// SetInventory handles PUT /api/v1/inventory/:sku - manual counter correction.
func (s *Server) SetInventory(ctx echo.Context) error {
	code, err := sku.NewCode(ctx.Param("sku"))
	if err != nil {
		return errorResponse(ctx, err)
	}

	var body SetInventoryRequest
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewSetInventoryCommand(code, body.Staged, body.Filled, body.Cased)
	if err != nil {
		return errorResponse(ctx, err)
	}

	if err := s.setInventoryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RefreshBacklog handles POST /api/v1/backlog/refresh - runs one planning pass.
func (s *Server) RefreshBacklog(ctx echo.Context) error {
	cmd := commands.NewRefreshBacklogCommand()
	if err := s.refreshBacklogHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return errorResponse(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func bindTransition(ctx echo.Context) (kernel.UUID, TaskTransitionRequest, error) {
	taskID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return kernel.UUID{}, TaskTransitionRequest{}, err
	}

	var body TaskTransitionRequest
	if err := ctx.Bind(&body); err != nil {
		return kernel.UUID{}, TaskTransitionRequest{}, errs.NewValueIsInvalidErrorWithCause("request body", err)
	}

	return taskID, body, nil
}

// errorResponse maps domain errors to HTTP status codes: validation failures
// to 400, missing objects to 404, stale board state and insufficient
// inventory to 409, anything else to 500.
func errorResponse(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrConcurrencyConflict),
		errors.Is(err, errs.ErrInsufficientInventory):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, Error{
		Code:    status,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
