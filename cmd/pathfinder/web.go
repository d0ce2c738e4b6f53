package main

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/jllopis/pathfinder/pkg/config"
	"github.com/jllopis/pathfinder/pkg/core"
	"github.com/jllopis/pathfinder/pkg/errors"
	"github.com/jllopis/pathfinder/pkg/pipeline"
)

//go:embed web/templates/*.html
var webFS embed.FS

var indexTemplate = template.Must(template.New("index.html").Funcs(template.FuncMap{
	"join": strings.Join,
}).ParseFS(webFS, "web/templates/index.html"))

type webServer struct {
	pipeline *pipeline.Pipeline
}

type formData struct {
	Goal   string
	Skills string
	Result *core.Result
	Error  *errors.Error
}

func runWeb(ctx context.Context, cfg *config.Config, args []string) {
	addr := cfg.Web.Addr
	for i := 0; i < len(args); i++ {
		switch {
		case args[i] == "--addr" && i+1 < len(args):
			addr = args[i+1]
			i++
		case strings.HasPrefix(args[i], "--addr="):
			addr = strings.TrimPrefix(args[i], "--addr=")
		default:
			fatal(fmt.Errorf("unknown serve flag %q", args[i]))
		}
	}

	p, err := buildPipeline(cfg)
	if err != nil {
		fatal(err)
	}
	server := &webServer{pipeline: p}

	mux := http.NewServeMux()
	mux.HandleFunc("/", server.handleIndex)
	mux.HandleFunc("/plan", server.handlePlan)

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = httpServer.Shutdown(shutdownCtx)
	}()

	slog.Info("web server listening", slog.String("addr", addr))
	if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		fatal(err)
	}
}

func (s *webServer) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	s.render(w, http.StatusOK, formData{})
}

// handlePlan runs the pipeline for the submitted form. Failures render
// the form again with an error banner naming the failing stage; the
// response status follows the failure code.
func (s *webServer) handlePlan(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad form", http.StatusBadRequest)
		return
	}
	goal := r.PostFormValue("goal")
	skills := r.PostFormValue("skills")

	result, err := s.pipeline.Run(r.Context(), goal, skills)
	if err != nil {
		pe := errors.AsError(err)
		s.render(w, pe.StatusCode, formData{Goal: goal, Skills: skills, Error: pe})
		return
	}
	s.render(w, http.StatusOK, formData{Goal: goal, Skills: skills, Result: result})
}

func (s *webServer) render(w http.ResponseWriter, status int, data formData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := indexTemplate.Execute(w, data); err != nil {
		slog.Error("render index", slog.Any("error", err))
	}
}
