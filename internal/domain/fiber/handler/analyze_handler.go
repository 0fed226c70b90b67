package handler

import (
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jiwoohan/record-analyzer/internal/dto"
	"github.com/jiwoohan/record-analyzer/internal/middleware"
	"github.com/jiwoohan/record-analyzer/internal/model"
	"github.com/jiwoohan/record-analyzer/internal/report"
	"github.com/jiwoohan/record-analyzer/internal/rubric"
	"github.com/jiwoohan/record-analyzer/internal/usecase"
	"github.com/jiwoohan/record-analyzer/internal/util"
)

type AnalyzeHandler struct {
	uc *usecase.AnalysisUsecase
}

func NewAnalyzeHandler(uc *usecase.AnalysisUsecase) *AnalyzeHandler {
	return &AnalyzeHandler{uc: uc}
}

func (h *AnalyzeHandler) RegisterRoutes(app *fiber.App) {
	app.Post("/analyze", middleware.RateLimiter(1, 4*time.Second), h.Analyze)
	app.Get("/report/:id", h.Result)
	app.Get("/report/:id/aggregates", h.Aggregates)
	app.Get("/report/:id/export", h.Export)
	app.Patch("/report/:id/score", h.EditScore)
	app.Patch("/report/:id/text", h.EditText)
	app.Patch("/report/:id/activity", h.EditActivity)
	app.Patch("/report/:id/excellent-example", h.EditExcellentExample)
	app.Patch("/report/:id/improvement-example", h.EditImprovementExample)
	app.Post("/report/:id/commit", h.Commit)
	app.Delete("/report/:id", h.Reset)
}

func (h *AnalyzeHandler) Analyze(c *fiber.Ctx) error {
	var req dto.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}

	session, err := h.uc.Analyze(c.Context(), req.ReportText)
	if err != nil {
		if errors.Is(err, model.ErrEmptyReport) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadRequest,
				Message: "학생부 내용을 입력해주세요.",
			}, err)
		}
		if errors.Is(err, model.ErrInvalidStructure) {
			return util.ErrorResponse(c, util.ErrorResponseFormat{
				Code:    fiber.StatusBadGateway,
				Message: "invalid structure received from analysis service",
			}, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadGateway,
			Message: fmt.Sprintf("failed to analyze report: %v", err),
		}, err)
	}

	result, err := h.uc.Result(session.ID)
	if err != nil {
		return h.notFound(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Code:    fiber.StatusCreated,
		Message: "Success analyze report",
		Data:    dto.AnalyzeResponse{ID: session.ID, Result: result},
	})
}

func (h *AnalyzeHandler) Result(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return h.badSessionID(c, err)
	}
	result, err := h.uc.Result(id)
	if err != nil {
		return h.notFound(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get evaluation result",
		Data:    result,
	})
}

func (h *AnalyzeHandler) Aggregates(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return h.badSessionID(c, err)
	}
	aggs, grand, chart, err := h.uc.Aggregates(id)
	if err != nil {
		return h.notFound(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success get aggregates",
		Data:    dto.AggregatesResponse{Categories: aggs, Grand: grand, MainChart: chart},
	})
}

func (h *AnalyzeHandler) Export(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return h.badSessionID(c, err)
	}
	pdf, err := h.uc.ExportPDF(c.Context(), id)
	if err != nil {
		if errors.Is(err, model.ErrSessionNotFound) {
			return h.notFound(c, err)
		}
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Message: "failed to export PDF",
		}, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="report.pdf"`)
	return c.Send(pdf)
}

func (h *AnalyzeHandler) EditScore(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return h.badSessionID(c, err)
	}
	var req dto.ScoreEditRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	applied, err := h.uc.SetScore(id, rubric.Key(req.Key), req.Score)
	if err != nil {
		return h.notFound(c, err)
	}
	// A rejected score edit is a silent no-op, not an error.
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success edit score",
		Data:    dto.EditResponse{Applied: applied},
	})
}

func (h *AnalyzeHandler) EditText(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return h.badSessionID(c, err)
	}
	var req dto.TextEditRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	applied, err := h.uc.SetTextField(id, report.TextField(req.Field), req.Value)
	if err != nil {
		return h.notFound(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success edit text field",
		Data:    dto.EditResponse{Applied: applied},
	})
}

func (h *AnalyzeHandler) EditActivity(c *fiber.Ctx) error {
	return h.editElement(c, h.uc.SetActivityField)
}

func (h *AnalyzeHandler) EditExcellentExample(c *fiber.Ctx) error {
	return h.editElement(c, h.uc.SetExcellentExampleField)
}

func (h *AnalyzeHandler) EditImprovementExample(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return h.badSessionID(c, err)
	}
	var req dto.TextEditRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	applied, err := h.uc.SetImprovementExampleField(id, report.ExampleField(req.Field), req.Value)
	if err != nil {
		return h.notFound(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success edit improvement example",
		Data:    dto.EditResponse{Applied: applied},
	})
}

func (h *AnalyzeHandler) Commit(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return h.badSessionID(c, err)
	}
	result, err := h.uc.Commit(id)
	if err != nil {
		return h.notFound(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success commit edits",
		Data:    result,
	})
}

func (h *AnalyzeHandler) Reset(c *fiber.Ctx) error {
	id, err := h.sessionID(c)
	if err != nil {
		return h.badSessionID(c, err)
	}
	h.uc.Reset(id)
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success reset session",
	})
}

func (h *AnalyzeHandler) editElement(c *fiber.Ctx, apply func(uuid.UUID, int, report.ExampleField, string) (bool, error)) error {
	id, err := h.sessionID(c)
	if err != nil {
		return h.badSessionID(c, err)
	}
	var req dto.ElementEditRequest
	if err := c.BodyParser(&req); err != nil {
		return util.ErrorResponse(c, util.ErrorResponseFormat{
			Code:    fiber.StatusBadRequest,
			Message: "invalid request body",
		}, err)
	}
	applied, err := apply(id, req.Index, report.ExampleField(req.Field), req.Value)
	if err != nil {
		return h.notFound(c, err)
	}
	return util.SuccessResponse(c, util.SuccessResponseFormat{
		Message: "Success edit element",
		Data:    dto.EditResponse{Applied: applied},
	})
}

func (h *AnalyzeHandler) sessionID(c *fiber.Ctx) (uuid.UUID, error) {
	return uuid.Parse(c.Params("id"))
}

func (h *AnalyzeHandler) badSessionID(c *fiber.Ctx, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusBadRequest,
		Message: "invalid session id",
	}, err)
}

func (h *AnalyzeHandler) notFound(c *fiber.Ctx, err error) error {
	return util.ErrorResponse(c, util.ErrorResponseFormat{
		Code:    fiber.StatusNotFound,
		Message: "analysis session not found",
	}, err)
}
