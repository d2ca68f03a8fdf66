package http

import (
	"errors"
	"io"
	"strings"

	"automation-api/internal/domain"
	"automation-api/internal/model"
	"automation-api/internal/usecase"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type Handler struct {
	processor *usecase.Processor
	log       *zap.Logger
}

func NewHandler(p *usecase.Processor, log *zap.Logger) *Handler {
	return &Handler{processor: p, log: log}
}

// Register wires every endpoint onto the app.
func (h *Handler) Register(app *fiber.App) {
	app.Get("/", h.Home)
	app.Get("/process", h.Process)
	app.Get("/joke", h.Joke)
	app.Post("/process_text", h.ProcessText)
	app.Post("/analyze_only", h.AnalyzeOnly)
	app.Post("/upload_file", h.UploadFile)
	app.Post("/upload_pdf", h.UploadPDF)
	app.Post("/summarize", h.Summarize)
	app.Post("/translate", h.Translate)
	app.Post("/sentiment", h.Sentiment)
	app.Post("/ai_report", h.AIReport)
	app.Post("/scrape", h.Scrape)
	app.Post("/scrape_csv", h.ScrapeCSV)
	app.Post("/analyze_job", h.AnalyzeJob)
}

func (h *Handler) Home(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "Automation API is running!"})
}

func (h *Handler) Process(c *fiber.Ctx) error {
	text := c.Query("text")
	if text == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "text query parameter is required"})
	}
	sum, err := h.processor.QuickProcess(c.Context(), text)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(sum)
}

func (h *Handler) Joke(c *fiber.Ctx) error {
	joke, err := h.processor.Joke(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(joke)
}

func (h *Handler) ProcessText(c *fiber.Ctx) error {
	var req model.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	res, err := h.processor.ProcessText(c.Context(), req.Text)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) AnalyzeOnly(c *fiber.Ctx) error {
	var req model.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	sum, err := h.processor.AnalyzeOnly(c.Context(), req.Text)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(sum)
}

func (h *Handler) UploadFile(c *fiber.Ctx) error {
	filename, data, err := readUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	res, err := h.processor.ProcessUpload(c.Context(), filename, data)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"filename":       filename,
		"cleaned":        res.Cleaned,
		"characters":     res.Characters,
		"words":          res.Words,
		"report_txt":     res.ReportTXT,
		"report_json":    res.ReportJSON,
		"report_csv":     res.ReportCSV,
		"joke_setup":     res.JokeSetup,
		"joke_punchline": res.JokePunchline,
	})
}

func (h *Handler) UploadPDF(c *fiber.Ctx) error {
	filename, data, err := readUpload(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if !strings.HasSuffix(strings.ToLower(filename), ".pdf") {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "file must be a PDF"})
	}
	res, err := h.processor.ProcessUpload(c.Context(), filename, data)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{
		"filename":    filename,
		"cleaned":     res.Cleaned,
		"characters":  res.Characters,
		"words":       res.Words,
		"report_txt":  res.ReportTXT,
		"report_json": res.ReportJSON,
		"report_csv":  res.ReportCSV,
	})
}

func (h *Handler) Summarize(c *fiber.Ctx) error {
	var req model.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	summary, err := h.processor.Summarize(c.Context(), req.Text)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"original": req.Text, "summary": summary})
}

func (h *Handler) Translate(c *fiber.Ctx) error {
	var req model.TranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	tr, err := h.processor.Translate(c.Context(), req.Text, req.TargetLang)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(tr)
}

func (h *Handler) Sentiment(c *fiber.Ctx) error {
	var req model.TextRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	sent, err := h.processor.Sentiment(c.Context(), req.Text)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(sent)
}

func (h *Handler) AIReport(c *fiber.Ctx) error {
	var req model.AIReportRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := model.ValidateAIReport(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	res, err := h.processor.AIReport(c.Context(), req.Text, req.TranslateTo)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) Scrape(c *fiber.Ctx) error {
	var req model.ScrapeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "url is required"})
	}
	res, err := h.processor.Scrape(c.Context(), req.URL)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) ScrapeCSV(c *fiber.Ctx) error {
	var req model.ScrapeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if req.URL == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "url is required"})
	}
	res, err := h.processor.ScrapeCSV(c.Context(), req.URL, req.Snapshot)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(res)
}

func (h *Handler) AnalyzeJob(c *fiber.Ctx) error {
	var req model.AnalyzeJobRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid payload"})
	}
	if err := model.ValidateAnalyzeJob(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	analysis, err := h.processor.AnalyzeJob(c.Context(), req.URL, req.Text)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(analysis)
}

// fail maps the error taxonomy onto status codes: invalid input is 400,
// dependency failures are 502, everything else (filesystem included) is 500.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	var invalid *domain.InvalidInputError
	if errors.As(err, &invalid) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": invalid.Msg})
	}

	var dep *domain.DependencyError
	if errors.As(err, &dep) {
		h.log.Error("dependency failure",
			zap.String("service", dep.Service), zap.Error(dep.Err))
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"error": dep.Error()})
	}

	h.log.Error("request failed", zap.Error(err))
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
}

func readUpload(c *fiber.Ctx) (string, []byte, error) {
	fh, err := c.FormFile("file")
	if err != nil {
		return "", nil, errors.New("file field is required")
	}
	f, err := fh.Open()
	if err != nil {
		return "", nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", nil, err
	}
	return fh.Filename, data, nil
}
