package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-tailor/internal/models"
	"alfredoptarigan/resume-tailor/internal/services"
)

type InterviewHandler struct {
	prompts     *services.PromptBuilder
	gemini      services.GeminiService
	temperature float32
}

func NewInterviewHandler(
	prompts *services.PromptBuilder,
	gemini services.GeminiService,
	temperature float32,
) *InterviewHandler {
	return &InterviewHandler{
		prompts:     prompts,
		gemini:      gemini,
		temperature: temperature,
	}
}

// HandleInterview handles POST /prepare-interview. It works from the
// resume and JD text extracted by an earlier /customize call; the
// client keeps that text between requests, the service holds nothing.
func (h *InterviewHandler) HandleInterview(c *fiber.Ctx) error {
	if h.gemini == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": services.ErrGenerationUnavailable.Error(),
		})
	}

	var req models.InterviewRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.ResumeText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_text is required",
		})
	}

	if req.JDText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "jd_text is required",
		})
	}

	prompt := h.prompts.BuildInterviewPrompt(req.JDText, req.ResumeText)
	questions, err := h.gemini.GenerateText(c.Context(), prompt, h.temperature)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.InterviewResponse{Questions: questions})
}
