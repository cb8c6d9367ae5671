package handlers

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Shahnasha/audio-summarizer/internal/asr"
	"github.com/Shahnasha/audio-summarizer/internal/audio"
	"github.com/Shahnasha/audio-summarizer/internal/metrics"
	"github.com/Shahnasha/audio-summarizer/internal/summarize"
	"github.com/Shahnasha/audio-summarizer/internal/textstats"
	"github.com/Shahnasha/audio-summarizer/models"
	"github.com/Shahnasha/audio-summarizer/utils"
)

// allowedExtensions is the upload allow-list. Keys are lowercase
// extensions including the dot.
var allowedExtensions = map[string]bool{
	".wav":  true,
	".mp3":  true,
	".m4a":  true,
	".flac": true,
	".ogg":  true,
	".webm": true,
}

func allowedExtensionList() []string {
	exts := make([]string, 0, len(allowedExtensions))
	for ext := range allowedExtensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// ProcessAudio handles POST /process: validate the upload, normalize,
// transcribe, summarize, and respond with the full result document.
// Temp files are deleted no matter which step failed.
func (h *ApplicationHandler) ProcessAudio(c *fiber.Ctx) error {
	file, err := c.FormFile("audio")
	if err != nil {
		return h.clientError(c, "unknown", "No file uploaded")
	}
	if file.Filename == "" {
		return h.clientError(c, "unknown", "No file selected")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return h.clientError(c, ext,
			fmt.Sprintf("Invalid file type. Allowed: %s", strings.Join(allowedExtensionList(), ", ")))
	}

	timer := prometheus.NewTimer(metrics.ProcessDuration.WithLabelValues(ext))
	defer timer.ObserveDuration()

	// A random name keeps concurrent uploads from clobbering each
	// other; the client's filename is only trusted for its extension.
	uploadPath := filepath.Join(h.Cfg.Paths.Uploads, uuid.New().String()+ext)
	if err := c.SaveFile(file, uploadPath); err != nil {
		return h.serverError(c, ext, fmt.Sprintf("Failed to save upload: %v", err))
	}
	defer h.cleanupTempFile(uploadPath)

	info, err := os.Stat(uploadPath)
	if err != nil {
		return h.serverError(c, ext, fmt.Sprintf("Failed to stat upload: %v", err))
	}
	if info.Size() == 0 {
		return h.clientError(c, ext, "Uploaded file is empty")
	}

	wavPath := filepath.Join(os.TempDir(), uuid.New().String()+".wav")
	defer h.cleanupTempFile(wavPath)

	if err := h.Normalizer.Normalize(uploadPath, wavPath); err != nil {
		var fe *audio.FormatError
		if errors.As(err, &fe) {
			return h.clientError(c, ext, "Audio format error: "+err.Error())
		}
		return h.serverError(c, ext, "Processing failed: "+err.Error())
	}

	transcript, segments, err := h.Recognizer.Transcribe(wavPath)
	if err != nil {
		var wfe *asr.WaveFormatError
		if errors.As(err, &wfe) {
			return h.clientError(c, ext, "Audio format error: "+err.Error())
		}
		return h.serverError(c, ext, "Processing failed: "+err.Error())
	}
	if strings.TrimSpace(transcript) == "" {
		return h.clientError(c, ext, "No speech detected in audio file")
	}

	result := summarize.Summarize(h.Embedder, transcript, h.Cfg.Limits.SummaryTopK)
	if result.Fallback {
		metrics.SummaryFallbacks.Inc()
		h.Logger.WithField("error", result.Err.Error()).Warn("Summarization failed, using first-k fallback")
	}

	keywords := textstats.ExtractKeywords(transcript, h.Cfg.Limits.KeywordTopN)

	stats := textstats.ComputeStats(transcript, segments)
	stats.FileSizeMB = textstats.RoundMB(info.Size())

	if len(segments) > h.Cfg.Limits.MaxSegments {
		segments = segments[:h.Cfg.Limits.MaxSegments]
	}
	if segments == nil {
		segments = []models.Segment{}
	}
	if keywords == nil {
		keywords = []models.Keyword{}
	}

	metrics.ProcessRequests.WithLabelValues("success", ext).Inc()
	return utils.RespondWithJSON(c, fiber.StatusOK, models.ProcessResponse{
		Transcript: transcript,
		Summary:    result.Summary,
		Highlights: result.Highlights,
		Keywords:   keywords,
		Stats:      stats,
		Segments:   segments,
	})
}

func (h *ApplicationHandler) clientError(c *fiber.Ctx, format, msg string) error {
	metrics.ProcessRequests.WithLabelValues("client_error", format).Inc()
	return utils.RespondWithError(c, fiber.StatusBadRequest, msg)
}

func (h *ApplicationHandler) serverError(c *fiber.Ctx, format, msg string) error {
	metrics.ProcessRequests.WithLabelValues("server_error", format).Inc()
	return utils.RespondWithError(c, fiber.StatusInternalServerError, msg)
}

// cleanupTempFile deletes a temp file after the response is decided.
// Deletion failure is logged, never surfaced.
func (h *ApplicationHandler) cleanupTempFile(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		h.Logger.WithFields(map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		}).Warn("Could not delete temp file")
	}
}
