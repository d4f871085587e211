package ws

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wallet-status/internal/application/port"
	"wallet-status/internal/config"
	"wallet-status/internal/domain"
	"wallet-status/internal/domain/entity"

	"github.com/goccy/go-json"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Frame types sent to stream clients.
const (
	FrameStatus = "status"
	FrameError  = "error"
)

// Frame is one message on the status stream.
type Frame struct {
	Type  string             `json:"type"`
	View  *entity.StatusView `json:"view,omitempty"`
	Error string             `json:"error,omitempty"`
}

// Stream pushes resolved status views to websocket clients.
type Stream struct {
	service  port.StatusService
	upgrader websocket.Upgrader
	cfg      config.StreamConfig
	logger   *zap.Logger
}

// NewStream creates the websocket handler.
func NewStream(service port.StatusService, cfg config.StreamConfig, logger *zap.Logger) *Stream {
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 5 * time.Second
	}
	if cfg.SendBuffer <= 0 {
		cfg.SendBuffer = 16
	}
	return &Stream{
		service: service,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
			CheckOrigin:     checkOrigin(cfg.AllowedOrigins),
		},
		cfg:    cfg,
		logger: logger.Named("StatusStream"),
	}
}

// checkOrigin returns nil, which keeps gorilla's same-origin check, unless extra origins are allowed.
func checkOrigin(allowed []string) func(*http.Request) bool {
	if len(allowed) == 0 {
		return nil
	}
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		u, err := url.Parse(origin)
		if err == nil && strings.EqualFold(u.Host, r.Host) {
			return true
		}
		for _, o := range allowed {
			if o == "*" || strings.EqualFold(o, origin) {
				return true
			}
		}
		return false
	}
}

// NewServer mounts the stream on its own HTTP server.
func NewServer(s *Stream) *http.Server {
	path := s.cfg.Path
	if path == "" {
		path = "/status/stream"
	}
	mux := http.NewServeMux()
	mux.Handle(path, s)
	return &http.Server{
		Addr:              ":" + s.cfg.Port,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// ServeHTTP upgrades the connection, sends the current view and then every published one.
func (s *Stream) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Debug("Websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	id, views, cancel := s.service.Subscribe(s.cfg.SendBuffer)
	defer cancel()
	log := s.logger.With(zap.String("subscriber", id), zap.String("remote", r.RemoteAddr))
	log.Info("Stream client connected")

	ctx, stop := context.WithCancel(r.Context())
	defer stop()
	go s.drain(conn, stop)

	if err := s.writeFrame(conn, s.initialFrame(ctx)); err != nil {
		log.Debug("Failed to write initial frame", zap.Error(err))
		return
	}

	var pings <-chan time.Time
	if s.cfg.PingInterval > 0 {
		ticker := time.NewTicker(s.cfg.PingInterval)
		defer ticker.Stop()
		pings = ticker.C
	}

	for {
		select {
		case <-ctx.Done():
			log.Info("Stream client disconnected")
			return
		case view, ok := <-views:
			if !ok {
				log.Info("Stream subscription closed")
				_ = conn.WriteControl(websocket.CloseMessage,
					websocket.FormatCloseMessage(websocket.CloseGoingAway, "subscription closed"),
					time.Now().Add(s.cfg.WriteTimeout))
				return
			}
			if err := s.writeFrame(conn, Frame{Type: FrameStatus, View: &view}); err != nil {
				log.Debug("Failed to write status frame", zap.Error(err))
				return
			}
		case <-pings:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(s.cfg.WriteTimeout)); err != nil {
				log.Debug("Ping failed", zap.Error(err))
				return
			}
		}
	}
}

func (s *Stream) initialFrame(ctx context.Context) Frame {
	view, err := s.service.Resolve(ctx)
	if err != nil {
		code := "internal"
		if errors.Is(err, domain.ErrMissingChainID) {
			code = "missing_chain_id"
		}
		return Frame{Type: FrameError, Error: code}
	}
	return Frame{Type: FrameStatus, View: &view}
}

func (s *Stream) writeFrame(conn *websocket.Conn, frame Frame) error {
	payload, err := json.Marshal(frame)
	if err != nil {
		return err
	}
	if err := conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout)); err != nil {
		return err
	}
	return conn.WriteMessage(websocket.TextMessage, payload)
}

// drain consumes client messages so control frames are processed, and reports disconnects.
func (s *Stream) drain(conn *websocket.Conn, stop context.CancelFunc) {
	defer stop()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
