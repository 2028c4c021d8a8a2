package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strconv"

	"github.com/halverson/go-sphere-tracer/pkg/renderer"
	"github.com/halverson/go-sphere-tracer/pkg/scene"
)

const maxDimension = 4096

// Server renders frames over HTTP
type Server struct {
	port int
}

// NewServer creates a new web server
func NewServer(port int) *Server {
	return &Server{port: port}
}

// RenderRequest holds the parsed query parameters of a render call.
type RenderRequest struct {
	Width     int
	Height    int
	LightX    float64
	LightY    float64
	LightZ    float64
	Intensity float64
	Format    string
}

// Start starts the web server
func (s *Server) Start() error {
	mux := s.Handler()
	addr := fmt.Sprintf(":%d", s.port)
	log.Printf("Starting web server on http://localhost%s", addr)
	return http.ListenAndServe(addr, mux)
}

// Handler returns the server's route table
func (s *Server) Handler() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/render", s.handleRender)
	mux.HandleFunc("/api/health", s.handleHealth)
	return mux
}

// handleHealth provides a simple health check endpoint
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

// handleRender renders one frame of the default scene with the light
// placed per the query parameters and returns it as PNG or WebP.
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid request: %v", err), http.StatusBadRequest)
		return
	}

	sc := scene.NewDefaultScene()
	light := sc.Lights()[0]
	light.Position.X = req.LightX
	light.Position.Y = req.LightY
	light.Position.Z = req.LightZ
	light.Intensity = req.Intensity

	img := renderer.New(sc).RenderImage(req.Width, req.Height)

	w.Header().Set("Content-Type", "image/"+req.Format)
	if err := renderer.Encode(w, img, req.Format); err != nil {
		log.Printf("Error encoding render: %v", err)
	}
}

// parseRenderRequest reads query parameters, applying the default scene's
// light placement when parameters are absent.
func parseRenderRequest(query url.Values) (RenderRequest, error) {
	req := RenderRequest{
		Width:     320,
		Height:    240,
		LightX:    2,
		LightY:    5,
		LightZ:    2,
		Intensity: 1.5,
		Format:    "png",
	}

	var err error
	if req.Width, err = intParam(query, "width", req.Width); err != nil {
		return req, err
	}
	if req.Height, err = intParam(query, "height", req.Height); err != nil {
		return req, err
	}
	if req.Width < 1 || req.Width > maxDimension || req.Height < 1 || req.Height > maxDimension {
		return req, fmt.Errorf("dimensions must be between 1 and %d", maxDimension)
	}

	if req.LightX, err = floatParam(query, "lx", req.LightX); err != nil {
		return req, err
	}
	if req.LightY, err = floatParam(query, "ly", req.LightY); err != nil {
		return req, err
	}
	if req.LightZ, err = floatParam(query, "lz", req.LightZ); err != nil {
		return req, err
	}
	if req.Intensity, err = floatParam(query, "intensity", req.Intensity); err != nil {
		return req, err
	}

	if f := query.Get("format"); f != "" {
		if f != "png" && f != "webp" {
			return req, fmt.Errorf("format must be png or webp, got %q", f)
		}
		req.Format = f
	}

	return req, nil
}

func intParam(query url.Values, name string, def int) (int, error) {
	raw := query.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}

func floatParam(query url.Values, name string, def float64) (float64, error) {
	raw := query.Get(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return v, nil
}
