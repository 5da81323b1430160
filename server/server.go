// Package server streams scene snapshots to browser renderers and accepts remote control commands
package server

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net"
	"net/http"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"

	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/core"
	"github.com/lixenwraith/orrery/status"
)

const (
	writeWait      = 5 * time.Second
	pongWait       = 30 * time.Second
	pingPeriod     = pongWait * 9 / 10
	maxMessageSize = 4096
	sendBuffer     = 16
	shutdownGrace  = 5 * time.Second
)

// Recorder receives server-side metrics; satisfied by metrics.Collector
type Recorder interface {
	ClientConnected()
	ClientDisconnected()
	CommandHandled(cmdType, result string)
	Handler() http.Handler
}

// Server is the HTTP front end
type Server struct {
	cfg      config.ServerConfig
	ctrl     Controller
	recorder Recorder
	upgrader websocket.Upgrader

	mu       sync.Mutex
	http     *http.Server
	listener net.Listener
	clients  map[*client]struct{}
	wg       sync.WaitGroup

	ctx    context.Context
	cancel context.CancelFunc

	reg         *status.Registry
	statClients *atomic.Int64
	running     atomic.Bool
}

// New creates a server for ctrl; rec may be nil
func New(cfg config.ServerConfig, ctrl Controller, rec Recorder, reg *status.Registry) *Server {
	if reg == nil {
		reg = status.NewRegistry()
	}
	ctx, cancel := context.WithCancel(context.Background())
	s := &Server{
		cfg:         cfg,
		ctrl:        ctrl,
		recorder:    rec,
		clients:     make(map[*client]struct{}),
		ctx:         ctx,
		cancel:      cancel,
		reg:         reg,
		statClients: reg.Ints.Get("server.clients"),
	}
	s.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 16 * 1024,
		CheckOrigin:     s.checkOrigin,
	}
	return s
}

// checkOrigin allows same-origin requests plus the configured list; "*" allows any
func (s *Server) checkOrigin(r *http.Request) bool {
	origin := r.Header.Get("Origin")
	if origin == "" || slices.Contains(s.cfg.AllowedOrigins, "*") || slices.Contains(s.cfg.AllowedOrigins, origin) {
		return true
	}
	return origin == "http://"+r.Host || origin == "https://"+r.Host
}

// Handler returns the routed HTTP handler
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ws", s.handleWebSocket)
	mux.HandleFunc("GET /snapshot", s.handleSnapshot)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /status", s.handleStatus)
	if s.recorder != nil {
		mux.Handle("GET /metrics", s.recorder.Handler())
	}
	return mux
}

// Name implements service.Service
func (s *Server) Name() string { return "server" }

// Dependencies implements service.Service
func (s *Server) Dependencies() []string { return nil }

// Init implements service.Service
func (s *Server) Init(...any) error { return nil }

// Start listens on the configured address and serves in the background
func (s *Server) Start() error {
	if !s.running.CompareAndSwap(false, true) {
		return nil
	}
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		s.running.Store(false)
		return err
	}

	s.mu.Lock()
	s.listener = ln
	s.http = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return s.ctx },
	}
	srv := s.http
	s.mu.Unlock()

	log.Printf("server: listening on %s", ln.Addr())
	core.Go(func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Printf("server: %v", err)
		}
	})
	return nil
}

// Addr returns the bound address once started
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

// Stop shuts down with a grace period
func (s *Server) Stop() error {
	ctx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
	defer cancel()
	return s.Shutdown(ctx)
}

// Shutdown stops accepting connections, closes every socket and waits for client goroutines
func (s *Server) Shutdown(ctx context.Context) error {
	s.cancel()

	s.mu.Lock()
	srv := s.http
	for c := range s.clients {
		c.close()
	}
	s.mu.Unlock()

	var err error
	if srv != nil {
		err = srv.Shutdown(ctx)
	}

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		return ctx.Err()
	}
	if s.running.CompareAndSwap(true, false) {
		log.Printf("server: stopped")
	}
	return err
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap := s.ctrl.Snapshot()
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(snap); err != nil {
		log.Printf("server: snapshot encode: %v", err)
	}
}

// handleStatus dumps the live registry; ?prefix=scene. narrows it
func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.reg.Values(r.URL.Query().Get("prefix"))); err != nil {
		log.Printf("server: status encode: %v", err)
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	_, _ = w.Write([]byte("ok\n"))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	if s.ctx.Err() != nil {
		http.Error(w, "shutting down", http.StatusServiceUnavailable)
		return
	}
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error
		log.Printf("server: upgrade from %s: %v", r.RemoteAddr, err)
		return
	}

	c := newClient(s, conn, rate.NewLimiter(rate.Limit(s.cfg.CommandRate), s.cfg.CommandBurst))
	if !s.register(c) {
		_ = conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseGoingAway, "shutting down"), time.Now().Add(writeWait))
		_ = conn.Close()
		return
	}
	s.statClients.Add(1)
	if s.recorder != nil {
		s.recorder.ClientConnected()
	}
	log.Printf("server: client %s connected", r.RemoteAddr)

	core.Go(func() {
		defer s.wg.Done()
		c.writeLoop()
	})
	core.Go(func() {
		defer s.wg.Done()
		c.readLoop()
		s.remove(c)
	})
}

// register adds c and reserves its two loops on wg; false once shutdown began
// Shutdown cancels before taking mu, so no Add can follow its Wait
func (s *Server) register(c *client) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ctx.Err() != nil {
		return false
	}
	s.clients[c] = struct{}{}
	s.wg.Add(2)
	return true
}

func (s *Server) remove(c *client) {
	s.mu.Lock()
	_, ok := s.clients[c]
	delete(s.clients, c)
	s.mu.Unlock()
	if !ok {
		return
	}
	c.close()
	s.statClients.Add(-1)
	if s.recorder != nil {
		s.recorder.ClientDisconnected()
	}
	log.Printf("server: client %s disconnected", c.conn.RemoteAddr())
}

// record forwards a command outcome to the recorder
func (s *Server) record(cmdType, result string) {
	if s.recorder != nil {
		s.recorder.CommandHandled(cmdType, result)
	}
}

// snapshotInterval converts the configured rate, defaulting to 30Hz
func (s *Server) snapshotInterval() time.Duration {
	if s.cfg.SnapshotRate <= 0 {
		return time.Second / 30
	}
	return time.Duration(float64(time.Second) / s.cfg.SnapshotRate)
}
