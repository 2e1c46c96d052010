package web

import (
	"context"
	_ "embed"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/botworld/server/internal/config"
	"github.com/botworld/server/internal/world"
)

//go:embed client.html
var clientHTML []byte

const wsWriteWait = 5 * time.Second

// Server is the HTTP boundary over the shared world. Every handler locks
// the world for the duration of exactly one State call; validation happens
// before any write so a rejected request never mutates a store.
type Server struct {
	httpSrv        *http.Server
	state          *world.State
	log            *zap.Logger
	upgrader       websocket.Upgrader
	streamInterval time.Duration
}

func NewServer(cfg config.HTTPConfig, state *world.State, log *zap.Logger) *Server {
	s := &Server{
		state:          state,
		log:            log,
		streamInterval: cfg.StreamInterval,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/input", s.handleInput)
	mux.HandleFunc("/output", s.handleOutput)
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/", s.handleClient)

	s.httpSrv = &http.Server{
		Addr:         cfg.BindAddress,
		Handler:      mux,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	return s
}

// Handler exposes the route mux for tests.
func (s *Server) Handler() http.Handler { return s.httpSrv.Handler }

// ListenAndServe blocks until the server stops.
func (s *Server) ListenAndServe() error {
	err := s.httpSrv.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// handleInput accepts {"x": F, "y": F} and writes it as the player
// entity's input vector. Extra fields are ignored; missing or non-finite
// coordinates are rejected before the world is touched.
func (s *Server) handleInput(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var in struct {
		X *float64 `json:"x"`
		Y *float64 `json:"y"`
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		http.Error(w, "bad input payload", http.StatusBadRequest)
		return
	}
	if in.X == nil || in.Y == nil {
		http.Error(w, "missing x or y", http.StatusBadRequest)
		return
	}
	if err := s.state.ApplyInput(*in.X, *in.Y); err != nil {
		s.log.Warn("input rejected", zap.Error(err))
		http.Error(w, "bad input vector", http.StatusBadRequest)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}

// handleOutput serves one scene packet.
func (s *Server) handleOutput(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	pkt := buildScenePacket(s.state.Snapshot())
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(pkt); err != nil {
		s.log.Warn("scene encode failed", zap.Error(err))
	}
}

// handleWS upgrades to a websocket and pushes scene packets at the
// configured stream interval until the peer goes away.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	s.log.Debug("scene stream opened", zap.String("remote", conn.RemoteAddr().String()))

	// Drain reads so close frames are processed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	ticker := time.NewTicker(s.streamInterval)
	defer ticker.Stop()
	defer conn.Close()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			pkt := buildScenePacket(s.state.Snapshot())
			conn.SetWriteDeadline(time.Now().Add(wsWriteWait))
			if err := conn.WriteJSON(pkt); err != nil {
				s.log.Debug("scene stream closed", zap.Error(err))
				return
			}
		}
	}
}

// handleClient serves the embedded canvas client.
func (s *Server) handleClient(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" && r.URL.Path != "/client" {
		http.NotFound(w, r)
		return
	}
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(clientHTML)
}
