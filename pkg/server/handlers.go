package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v3"
	"github.com/google/uuid"

	"github.com/user/breakstudio/pkg/design"
	"github.com/user/breakstudio/pkg/export"
	"github.com/user/breakstudio/pkg/ports"
)

func (s *Server) listDesigns(c fiber.Ctx) error {
	summaries, err := s.store.List(context.Background())
	if err != nil {
		s.log.Error("List designs failed: %v", err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "storage failure"})
	}
	if summaries == nil {
		summaries = []design.Summary{}
	}
	return c.JSON(summaries)
}

func (s *Server) createDesign(c fiber.Ctx) error {
	body := c.Body()
	if len(body) == 0 {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "empty body"})
	}

	var d design.Design
	if err := json.Unmarshal(body, &d); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Width == 0 {
		d.Width = design.DefaultWidth
	}
	if d.Height == 0 {
		d.Height = design.DefaultHeight
	}
	if err := d.Validate(); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := s.store.Put(context.Background(), d); err != nil {
		s.log.Error("Store design %s failed: %v", d.ID, err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "storage failure"})
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{"id": d.ID})
}

func (s *Server) getDesign(c fiber.Ctx) error {
	d, err := s.store.Get(context.Background(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ports.ErrDesignNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "design not found"})
		}
		s.log.Error("Load design %s failed: %v", c.Params("id"), err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "storage failure"})
	}
	return c.JSON(d)
}

func (s *Server) putDesign(c fiber.Ctx) error {
	var d design.Design
	if err := json.Unmarshal(c.Body(), &d); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid json"})
	}
	// The path is authoritative for the id.
	d.ID = c.Params("id")
	if err := d.Validate(); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := s.store.Put(context.Background(), d); err != nil {
		s.log.Error("Store design %s failed: %v", d.ID, err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "storage failure"})
	}
	return c.JSON(fiber.Map{"id": d.ID})
}

func (s *Server) deleteDesign(c fiber.Ctx) error {
	err := s.store.Delete(context.Background(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ports.ErrDesignNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "design not found"})
		}
		s.log.Error("Delete design %s failed: %v", c.Params("id"), err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "storage failure"})
	}
	return c.SendStatus(http.StatusNoContent)
}

func (s *Server) exportDesign(c fiber.Ctx) error {
	d, err := s.store.Get(context.Background(), c.Params("id"))
	if err != nil {
		if errors.Is(err, ports.ErrDesignNotFound) {
			return c.Status(http.StatusNotFound).JSON(fiber.Map{"error": "design not found"})
		}
		s.log.Error("Load design %s failed: %v", c.Params("id"), err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "storage failure"})
	}

	opts := export.Options{Scale: 1}
	if raw := c.Query("scale"); raw != "" {
		scale, err := strconv.ParseFloat(raw, 64)
		if err != nil || scale <= 0 || scale > 8 {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "invalid scale"})
		}
		opts.Scale = scale
	}

	png, err := s.exporter.Export(context.Background(), d, opts)
	if err != nil {
		s.log.Error("Export design %s failed: %v", d.ID, err)
		return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "export failure"})
	}

	c.Set(fiber.HeaderContentType, "image/png")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+d.ID+`.png"`)
	return c.Send(png)
}
