package handlers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"timetable-optimizer/common"
	"timetable-optimizer/modules/optimizer/usecases"
)

// LectureView is the wire schema of §6: id is "<number>-<class_num>".
type LectureView struct {
	ID        string  `json:"id"`
	Number    string  `json:"number"`
	ClassNum  string  `json:"class_num"`
	Name      string  `json:"name"`
	Credit    float64 `json:"credit"`
	TimeRoom  string  `json:"time_room"`
	Professor string  `json:"professor"`
	Category  string  `json:"category"`
}

type LecturesHandler struct {
	useCase *usecases.OptimizeUseCase
}

func NewLecturesHandler(useCase *usecases.OptimizeUseCase) *LecturesHandler {
	return &LecturesHandler{useCase: useCase}
}

type lecturesResponseData struct {
	Lectures []LectureView `json:"lectures"`
}

// HandleListLectures implements GET /api/lectures.
func (h *LecturesHandler) HandleListLectures(c *fiber.Ctx) error {
	lectures, err := h.useCase.ListLectures()
	if err != nil {
		return writeOptimizerError(c, err)
	}

	views := make([]LectureView, len(lectures))
	for i, lec := range lectures {
		views[i] = LectureView{
			ID:        lec.ID,
			Number:    lec.Number,
			ClassNum:  lec.ClassNum,
			Name:      lec.Name,
			Credit:    lec.Credit,
			TimeRoom:  lec.TimeRoom,
			Professor: lec.Professor,
			Category:  lec.Category,
		}
	}

	return c.Status(fiber.StatusOK).JSON(common.BaseResponse[lecturesResponseData]{
		Status: common.StatusSuccess,
		Data:   &lecturesResponseData{Lectures: views},
	})
}

func writeOptimizerError(c *fiber.Ctx, err error) error {
	oe, ok := usecases.IsOptimizerError(err)
	if !ok {
		log.Error().Err(err).Str("path", c.Path()).Msg("unexpected optimizer error")
		return c.Status(fiber.StatusInternalServerError).JSON(common.BaseResponse[any]{
			Status: common.StatusError,
			Error: &common.BaseResponseError{
				Message:   "internal server error",
				Timestamp: time.Now().UTC().Format(time.RFC3339),
				Path:      c.Path(),
			},
		})
	}

	status := statusForErrorType(oe.Type)
	log.Warn().Str("error_type", string(oe.Type)).Str("path", c.Path()).Msg(oe.Message)

	return c.Status(status).JSON(common.BaseResponse[any]{
		Status: common.StatusError,
		Error: &common.BaseResponseError{
			Message:   oe.Message,
			Details:   detailsToStrings(oe.Details),
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Path:      c.Path(),
		},
	})
}

func statusForErrorType(t usecases.OptimizerErrorType) int {
	switch t {
	case usecases.ErrEmptySelection, usecases.ErrUnsupportedBackend, usecases.ErrUnknownPreset:
		return fiber.StatusBadRequest
	case usecases.ErrUnknownTask:
		return fiber.StatusNotFound
	case usecases.ErrCatalogUnloaded:
		return fiber.StatusInternalServerError
	default:
		return fiber.StatusInternalServerError
	}
}

func detailsToStrings(details map[string]interface{}) []string {
	if len(details) == 0 {
		return nil
	}
	out := make([]string, 0, len(details))
	for k, v := range details {
		out = append(out, fmt.Sprintf("%s: %v", k, v))
	}
	return out
}
