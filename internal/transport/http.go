package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/websocket"

	"wordbot/internal/crypto"
	"wordbot/internal/domain"
	"wordbot/internal/logging"
)

// maxCommandBytes caps the body of POST /command.
const maxCommandBytes = 1 << 20

// CommandRequest is the body of POST /command.
type CommandRequest struct {
	Command  string `json:"command"`
	Argument string `json:"argument"`
}

// Server exposes a CommandExecutor over HTTP and websocket.
type Server struct {
	exec domain.CommandExecutor
	log  *logging.Logger
	mux  *http.ServeMux
}

// NewServer returns a Server dispatching to exec.
func NewServer(exec domain.CommandExecutor, log *logging.Logger) *Server {
	if log == nil {
		log = logging.Discard()
	}
	s := &Server{exec: exec, log: log, mux: http.NewServeMux()}
	s.mux.HandleFunc("POST /command", s.handleCommand)
	s.mux.HandleFunc("POST /press/{action}", s.handlePress)
	s.mux.HandleFunc("GET /export", s.handleExport)
	s.mux.Handle("GET /ws", websocket.Handler(func(ws *websocket.Conn) {
		s.converse(newWSConn(ws))
	}))
	return s
}

// Handler returns the routes wrapped with access logging.
func (s *Server) Handler() http.Handler {
	return accessLog(s.log, s.mux)
}

// ListenAndServe serves on addr until ctx is cancelled.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	return s.Serve(ctx, l)
}

// Serve serves on l until ctx is cancelled, then shuts down gracefully,
// giving in-flight requests five seconds to finish.
func (s *Server) Serve(ctx context.Context, l net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() { errc <- srv.Serve(l) }()
	s.log.Infof("listening on %s", l.Addr())

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	s.log.Infof("server stopped")
	return nil
}

func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	defer r.Body.Close()
	var req CommandRequest
	body := http.MaxBytesReader(w, r.Body, maxCommandBytes)
	if err := json.NewDecoder(body).Decode(&req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			http.Error(w, "request body too large", http.StatusRequestEntityTooLarge)
			return
		}
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	s.writeJSON(w, s.exec.Execute(req.Command, req.Argument))
}

func (s *Server) handlePress(w http.ResponseWriter, r *http.Request) {
	s.writeJSON(w, s.exec.Press(r.PathValue("action")))
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	res := s.exec.Execute("export", "")
	if res.Failed || res.File == nil {
		http.Error(w, res.Text, http.StatusServiceUnavailable)
		return
	}

	etag := `"` + crypto.Fingerprint(res.File.Data) + `"`
	w.Header().Set("ETag", etag)
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="`+res.File.Name+`"`)
	_, _ = w.Write(res.File.Data)
}

func (s *Server) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Warnf("write response: %v", err)
	}
}
