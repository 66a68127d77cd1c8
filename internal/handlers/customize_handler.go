package handlers

import (
	"fmt"
	"io"
	"mime/multipart"
	"strings"

	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-tailor/internal/models"
	"alfredoptarigan/resume-tailor/internal/services"
)

type CustomizeHandler struct {
	extractor   services.TextExtractor
	matcher     services.MatchService
	prompts     *services.PromptBuilder
	gemini      services.GeminiService
	temperature float32
	maxFileSize int64
}

func NewCustomizeHandler(
	extractor services.TextExtractor,
	matcher services.MatchService,
	prompts *services.PromptBuilder,
	gemini services.GeminiService,
	temperature float32,
	maxFileSize int64,
) *CustomizeHandler {
	return &CustomizeHandler{
		extractor:   extractor,
		matcher:     matcher,
		prompts:     prompts,
		gemini:      gemini,
		temperature: temperature,
		maxFileSize: maxFileSize,
	}
}

// HandleCustomize handles POST /customize: extract both documents,
// score the match, then ask the backend for a tailored resume.
func (h *CustomizeHandler) HandleCustomize(c *fiber.Ctx) error {
	if h.gemini == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": services.ErrGenerationUnavailable.Error(),
		})
	}

	resumeFile, err := c.FormFile("resume")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume file is required",
		})
	}

	jdFile, err := c.FormFile("job_description")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_description file is required",
		})
	}

	if resumeFile.Size > h.maxFileSize || jdFile.Size > h.maxFileSize {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": fmt.Sprintf("File too large. Max size: %d bytes", h.maxFileSize),
		})
	}

	resumeData, err := readMultipartFile(resumeFile)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read resume file",
		})
	}

	jdData, err := readMultipartFile(jdFile)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to read job_description file",
		})
	}

	resumeText := h.extractor.Extract(resumeData, resumeFile.Filename)
	if resumeText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not extract text from resume",
		})
	}

	jdText := h.extractor.Extract(jdData, jdFile.Filename)
	if jdText == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Could not extract text from job description",
		})
	}

	score := h.matcher.Score(resumeText, jdText)

	prompt := h.prompts.BuildTailoringPrompt(jdText, resumeText)
	raw, err := h.gemini.GenerateText(c.Context(), prompt, h.temperature)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	// Models like to wrap the whole resume in code fences
	tailored := strings.TrimSpace(strings.ReplaceAll(raw, "```", ""))

	return c.JSON(models.CustomizeResponse{
		CustomizedResume: tailored,
		ResumeText:       resumeText,
		JDText:           jdText,
		OverallScore:     score.Overall,
		SkillsMatch:      score.Skills,
		ExperienceMatch:  score.Experience,
		KeywordsMatch:    score.Keywords,
		MatchSummary:     score.Summary,
	})
}

func readMultipartFile(file *multipart.FileHeader) ([]byte, error) {
	src, err := file.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	return io.ReadAll(src)
}
