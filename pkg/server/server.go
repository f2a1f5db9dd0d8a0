// Package server exposes the design store and the PNG exporter over
// HTTP for the editor frontends.
package server

import (
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/recover"

	"github.com/user/breakstudio/pkg/export"
	"github.com/user/breakstudio/pkg/ports"
)

// Server wires the HTTP routes to the design store and exporter.
type Server struct {
	app      *fiber.App
	store    ports.DesignStore
	exporter *export.Exporter
	log      ports.Logger
}

// New creates the server with all routes registered.
func New(store ports.DesignStore, exporter *export.Exporter, log ports.Logger) *Server {
	s := &Server{
		store:    store,
		exporter: exporter,
		log:      log.WithComponent("server"),
	}

	s.app = fiber.New(fiber.Config{
		AppName: "breakstudio",
	})

	// ============================================================
	// Global Middleware
	// ============================================================

	s.app.Use(recover.New())
	s.app.Use(fiberlogger.New(fiberlogger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))
	s.app.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowHeaders: []string{"*"},
		AllowMethods: []string{"*"},
	}))

	// ============================================================
	// Routes
	// ============================================================

	s.app.Get("/health", func(c fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "alive"})
	})

	api := s.app.Group("/api")
	api.Get("/designs", s.listDesigns)
	api.Post("/designs", s.createDesign)
	api.Get("/designs/:id", s.getDesign)
	api.Put("/designs/:id", s.putDesign)
	api.Delete("/designs/:id", s.deleteDesign)
	api.Get("/designs/:id/export", s.exportDesign)

	return s
}

// App exposes the fiber application, mainly for tests.
func (s *Server) App() *fiber.App { return s.app }

// Listen blocks serving on addr until Shutdown.
func (s *Server) Listen(addr string) error {
	s.log.Info("Designer API listening on %s", addr)
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
