package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-tailor/internal/models"
	"alfredoptarigan/resume-tailor/internal/services"
)

type ChatHandler struct {
	prompts     *services.PromptBuilder
	gemini      services.GeminiService
	temperature float32
}

func NewChatHandler(
	prompts *services.PromptBuilder,
	gemini services.GeminiService,
	temperature float32,
) *ChatHandler {
	return &ChatHandler{
		prompts:     prompts,
		gemini:      gemini,
		temperature: temperature,
	}
}

// HandleChat handles POST /chat. The caller sends the resume text,
// the prior transcript, and a new message; the transcript is replayed
// into the prompt in the order given.
func (h *ChatHandler) HandleChat(c *fiber.Ctx) error {
	if h.gemini == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": services.ErrGenerationUnavailable.Error(),
		})
	}

	var req models.ChatRequest
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

	if req.Message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "message is required",
		})
	}

	prompt := h.prompts.BuildChatPrompt(req.ResumeText, req.History, req.Message)
	reply, err := h.gemini.GenerateText(c.Context(), prompt, h.temperature)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(models.ChatResponse{Reply: reply})
}
