// Package optimizer wires the timetable optimization HTTP routes: the
// catalog listing and the optimize/status endpoints of §6.
package optimizer

import (
	"github.com/gofiber/fiber/v2"

	"timetable-optimizer/internal/catalog"
	"timetable-optimizer/internal/orchestrator"
	"timetable-optimizer/modules"
	"timetable-optimizer/modules/optimizer/handlers"
	"timetable-optimizer/modules/optimizer/usecases"
)

type OptimizerModule struct {
	useCase         *usecases.OptimizeUseCase
	lecturesHandler *handlers.LecturesHandler
	optimizeHandler *handlers.OptimizeHandler
}

// Compile time interface conformance check.
var _ modules.RoutableModule = (*OptimizerModule)(nil)

func NewModule(store catalog.Store, manager *orchestrator.Manager) *OptimizerModule {
	useCase := usecases.NewOptimizeUseCase(store, manager)

	return &OptimizerModule{
		useCase:         useCase,
		lecturesHandler: handlers.NewLecturesHandler(useCase),
		optimizeHandler: handlers.NewOptimizeHandler(useCase),
	}
}

func (m *OptimizerModule) SetupRoutes(fiberApp *fiber.App, prefix string) {
	group := fiberApp.Group(prefix)
	group.Get("/lectures", m.lecturesHandler.HandleListLectures)
	group.Post("/optimize", m.optimizeHandler.HandleSubmitOptimization)
	group.Get("/optimize/:task_id", m.optimizeHandler.HandleGetOptimizationStatus)
}
