// Package web serves the dashboard page and its per-panel endpoints.
package web

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	uuid "github.com/satori/go.uuid"
	log "github.com/sirupsen/logrus"

	"github.com/kjirawat/DADS6005-Real-Time-Midterm/config"
	"github.com/kjirawat/DADS6005-Real-Time-Midterm/domain/models"
	"github.com/kjirawat/DADS6005-Real-Time-Midterm/plot"
	"github.com/kjirawat/DADS6005-Real-Time-Midterm/query"
	"github.com/kjirawat/DADS6005-Real-Time-Midterm/report"
	"github.com/kjirawat/DADS6005-Real-Time-Midterm/store"
)

// Opener opens a fresh store connection for one render.
type Opener func() (*store.Conn, error)

type Server struct {
	cfg  *config.Config
	open Opener
	log  *log.Logger
}

func NewServer(cfg *config.Config, open Opener, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.StandardLogger()
	}
	return &Server{cfg: cfg, open: open, log: logger}
}

// App builds the fiber application with all routes installed.
func (s *Server) App() *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          s.handleError,
	})
	app.Get("/", s.handleDashboard)
	app.Get("/api/dashboard", s.handleDashboardJSON)
	app.Get("/chart/:panel", s.handleChart)
	app.Get("/export/:panel", s.handleExport)
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok"})
	})
	return app
}

// session is one render: its id, logger, timeout and connection.
type session struct {
	id     string
	log    *log.Entry
	ctx    context.Context
	cancel context.CancelFunc
	conn   *store.Conn
	start  time.Time
}

func (s *Server) begin(c *fiber.Ctx) (*session, error) {
	id := uuid.NewV4().String()
	ctx, cancel := context.WithTimeout(c.UserContext(), s.cfg.QueryTimeout)
	sess := &session{
		id:     id,
		log:    s.log.WithFields(log.Fields{"render_id": id, "path": c.Path()}),
		ctx:    ctx,
		cancel: cancel,
		start:  time.Now(),
	}
	conn, err := s.open()
	if err != nil {
		cancel()
		return nil, sess.fail(fmt.Errorf("connect: %w", err))
	}
	sess.conn = conn
	return sess, nil
}

func (sess *session) end() {
	sess.cancel()
	if sess.conn != nil {
		if err := sess.conn.Close(); err != nil {
			sess.log.WithError(err).Warn("close connection")
		}
	}
}

func (sess *session) runner(pushdown bool) *query.Runner {
	return query.NewRunner(sess.conn, pushdown, sess.log)
}

// fail logs err and turns it into a 502 that aborts the whole response.
func (sess *session) fail(err error) error {
	sess.log.WithError(err).Error("render failed")
	return fiber.NewError(fiber.StatusBadGateway, err.Error())
}

func (s *Server) dashboard(c *fiber.Ctx) (*models.Dashboard, error) {
	sess, err := s.begin(c)
	if err != nil {
		return nil, err
	}
	defer sess.end()

	dash, err := sess.runner(s.cfg.FilterPushdown).Run(sess.ctx, parseSelection(c))
	if err != nil {
		return nil, sess.fail(err)
	}
	dash.RenderID = sess.id
	sess.log.WithField("elapsed", time.Since(sess.start)).Info("dashboard rendered")
	return dash, nil
}

func (s *Server) handleDashboard(c *fiber.Ctx) error {
	dash, err := s.dashboard(c)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := renderDashboard(&buf, s.cfg.PageTitle, dash); err != nil {
		return err
	}
	c.Type("html", "utf-8")
	return c.Send(buf.Bytes())
}

func (s *Server) handleDashboardJSON(c *fiber.Ctx) error {
	dash, err := s.dashboard(c)
	if err != nil {
		return err
	}
	return c.JSON(dash)
}

func (s *Server) panelTable(c *fiber.Ctx) (panel, *models.Table, error) {
	p, ok := findPanel(c.Params("panel"))
	if !ok {
		return panel{}, nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("%s %q", query.ErrUnknownPanel, c.Params("panel")))
	}
	sess, err := s.begin(c)
	if err != nil {
		return p, nil, err
	}
	defer sess.end()

	t, err := sess.runner(s.cfg.FilterPushdown).Panel(sess.ctx, p.Name, parseSelection(c))
	if err != nil {
		return p, nil, sess.fail(err)
	}
	sess.log.WithFields(log.Fields{"panel": p.Name, "rows": t.Len()}).Info("panel rendered")
	return p, t, nil
}

func (s *Server) handleChart(c *fiber.Ctx) error {
	p, t, err := s.panelTable(c)
	if err != nil {
		return err
	}
	png, err := plot.DrawTable(t, p.Style)
	if errors.Is(err, plot.ErrNoData) {
		return c.SendStatus(fiber.StatusNoContent)
	}
	if err != nil {
		return err
	}
	c.Type("png")
	return c.Send(png)
}

func (s *Server) handleExport(c *fiber.Ctx) error {
	p, t, err := s.panelTable(c)
	if err != nil {
		return err
	}
	compress := c.Query("compress") == "lz4"
	name := report.Slug(p.Style.Title) + ".csv"
	if compress {
		name += ".lz4"
		c.Set(fiber.HeaderContentType, "application/x-lz4")
	} else {
		c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	}
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", name))

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, t, compress); err != nil {
		return err
	}
	return c.Send(buf.Bytes())
}

func (s *Server) handleError(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	if code == fiber.StatusInternalServerError {
		s.log.WithError(err).WithField("path", c.Path()).Error("request failed")
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextPlainCharsetUTF8)
	return c.Status(code).SendString(err.Error())
}
