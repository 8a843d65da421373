package handlers

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/vlad-d/RiseOnBack/internal/models"
	"github.com/vlad-d/RiseOnBack/internal/services"
)

type profileReader interface {
	FetchLatest(ctx context.Context) (*models.UserProfile, error)
	Progress(ctx context.Context) (float64, error)
	ExportBackup(ctx context.Context) (*models.ProfileExport, error)
}

// ProfileHandler serves the stored profile, its completion ratio, the backup
// export document and the flattened feature vector. Store failures surface as
// "no profile" here: they are logged at the store boundary and must not
// interrupt the client.
type ProfileHandler struct {
	store    profileReader
	exporter *services.FeatureExporter
}

func NewProfileHandler(store profileReader, exporter *services.FeatureExporter) *ProfileHandler {
	return &ProfileHandler{store: store, exporter: exporter}
}

func (h *ProfileHandler) Get(c *fiber.Ctx) error {
	profile, err := h.store.FetchLatest(c.Context())
	if err != nil || profile == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No profile found"})
	}
	return c.JSON(fiber.Map{"profile": profile})
}

func (h *ProfileHandler) Progress(c *fiber.Ctx) error {
	progress, err := h.store.Progress(c.Context())
	if err != nil {
		progress = 0
	}
	return c.JSON(fiber.Map{"progress": progress})
}

func (h *ProfileHandler) Export(c *fiber.Ctx) error {
	export, err := h.store.ExportBackup(c.Context())
	if err != nil || export == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No profile found"})
	}
	return c.JSON(export)
}

func (h *ProfileHandler) Features(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"schema_version": services.FeatureSchemaVersion,
		"features":       h.exporter.Export(c.Context()),
	})
}
