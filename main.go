package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/Shahnasha/audio-summarizer/config"
	"github.com/Shahnasha/audio-summarizer/handlers"
	"github.com/Shahnasha/audio-summarizer/internal/asr"
	"github.com/Shahnasha/audio-summarizer/internal/audio"
	"github.com/Shahnasha/audio-summarizer/internal/summarize"
	"github.com/Shahnasha/audio-summarizer/middleware"
	"github.com/Shahnasha/audio-summarizer/utils"
)

// normalizer adapts the audio package to the handler interface.
type normalizer struct{}

func (normalizer) Normalize(inputPath, outPath string) error {
	return audio.Normalize(inputPath, outPath)
}

func main() {
	cfg, err := config.Load("config.yaml")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := config.NewLogger(cfg.Logging.Level)

	for _, dir := range []string{cfg.Paths.Uploads, filepath.Dir(cfg.Vosk.ModelPath)} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Failed to create directory %s: %v", dir, err)
		}
	}

	// Serving requests without a recognizer model would degrade every
	// request; refuse to start instead.
	if _, err := os.Stat(cfg.Vosk.ModelPath); err != nil {
		fmt.Println("======================================================================")
		fmt.Println("ERROR: Vosk model not found!")
		fmt.Printf("Expected location: %s\n", cfg.Vosk.ModelPath)
		fmt.Println()
		fmt.Println("Please download a model from: https://alphacephei.com/vosk/models")
		fmt.Println("Recommended: vosk-model-small-en-us-0.15 (40MB)")
		fmt.Printf("Extract it and place it at %s\n", cfg.Vosk.ModelPath)
		fmt.Println("======================================================================")
		os.Exit(1)
	}

	recognizer, err := asr.NewRecognizer(cfg.Vosk.ModelPath)
	if err != nil {
		log.Fatalf("Failed to initialize recognizer: %v", err)
	}
	defer recognizer.Close()

	// The embedding model is loaded lazily on first use; the cache
	// serializes concurrent first callers.
	embedCache := summarize.NewModelCache(cfg.Embed.ModelPath, cfg.Embed.TokenizerPath, cfg.Embed.LibraryPath)
	defer embedCache.Close()

	h := handlers.NewApplicationHandler(normalizer{}, recognizer, embedCache, log, cfg)

	app := fiber.New(fiber.Config{
		BodyLimit: cfg.Limits.MaxUploadMB * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			var fiberErr *fiber.Error
			if errors.As(err, &fiberErr) {
				code = fiberErr.Code
			}
			if code == fiber.StatusRequestEntityTooLarge {
				return utils.RespondWithError(c, code,
					fmt.Sprintf("File too large. Maximum size is %dMB", cfg.Limits.MaxUploadMB))
			}
			return utils.RespondWithError(c, code, err.Error())
		},
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
	app.Use(middleware.RequestLogger(log))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Get("/", h.Index)
	app.Post("/process", h.ProcessAudio)

	log.Infof("Starting audio summarizer on %s", cfg.Server.Addr)
	log.Fatal(app.Listen(cfg.Server.Addr))
}
