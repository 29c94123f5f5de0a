package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"timetable-optimizer/common"
	"timetable-optimizer/internal/orchestrator"
	"timetable-optimizer/modules/optimizer/usecases"
)

type OptimizeHandler struct {
	useCase *usecases.OptimizeUseCase
}

func NewOptimizeHandler(useCase *usecases.OptimizeUseCase) *OptimizeHandler {
	return &OptimizeHandler{useCase: useCase}
}

type submitResponseData struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
}

// HandleSubmitOptimization implements POST /api/optimize.
func (h *OptimizeHandler) HandleSubmitOptimization(c *fiber.Ctx) error {
	var req usecases.OptimizationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(common.BaseResponse[any]{
			Status: common.StatusError,
			Error: &common.BaseResponseError{
				Message:   "invalid request body",
				Details:   []string{err.Error()},
				Timestamp: time.Now().UTC().Format(time.RFC3339),
				Path:      c.Path(),
			},
		})
	}

	if validationErrors := common.ValidateStruct(req); len(validationErrors) > 0 {
		return c.Status(fiber.StatusBadRequest).JSON(common.BaseResponse[any]{
			Status: common.StatusError,
			Error: &common.BaseResponseError{
				Message:   "validation failed",
				Details:   validationErrors,
				Timestamp: time.Now().UTC().Format(time.RFC3339),
				Path:      c.Path(),
			},
		})
	}

	taskID, err := h.useCase.Submit(req)
	if err != nil {
		return writeOptimizerError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(common.BaseResponse[submitResponseData]{
		Status: common.StatusSuccess,
		Data: &submitResponseData{
			TaskID: taskID.String(),
			Status: string(orchestrator.StatusPending),
		},
	})
}

type statusResponseData struct {
	Status  string                `json:"status"`
	Summary string                `json:"summary"`
	Result  *orchestrator.Result  `json:"result,omitempty"`
	Error   string                `json:"error,omitempty"`
}

// HandleGetOptimizationStatus implements GET /api/optimize/{task_id}.
func (h *OptimizeHandler) HandleGetOptimizationStatus(c *fiber.Ctx) error {
	taskID, err := uuid.Parse(c.Params("task_id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(common.BaseResponse[any]{
			Status: common.StatusError,
			Error: &common.BaseResponseError{
				Message:   "task not found",
				Timestamp: time.Now().UTC().Format(time.RFC3339),
				Path:      c.Path(),
			},
		})
	}

	view, err := h.useCase.Status(taskID)
	if err != nil {
		return writeOptimizerError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(common.BaseResponse[statusResponseData]{
		Status: common.StatusSuccess,
		Data: &statusResponseData{
			Status:  string(view.Status),
			Summary: view.Summary,
			Result:  view.Result,
			Error:   view.Err,
		},
	})
}
