package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"image/png"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

const (
	// maxConsoleMessages bounds the console tail returned with a render summary
	maxConsoleMessages = 20
	// maxPixelSamples bounds width*height*samples so one request cannot pin the server
	maxPixelSamples = 2000 * 2000 * 16
)

// RenderRequest represents a render request from the client
type RenderRequest struct {
	Scene   string  // Scene name (e.g., "default")
	Width   int     // Image width
	Aspect  float64 // Aspect ratio (0 = scene default)
	Samples int     // Samples per pixel
	Depth   int     // Maximum bounce depth (0 = scene default)
	Seed    int64   // Base random seed
	Format  string  // "ppm" or "png"
}

// Stats represents render statistics
type Stats struct {
	Width           int   `json:"width"`
	Height          int   `json:"height"`
	TotalPixels     int   `json:"totalPixels"`
	SamplesPerPixel int   `json:"samplesPerPixel"`
	TotalSamples    int64 `json:"totalSamples"`
	Workers         int   `json:"workers"`
	ElapsedMs       int64 `json:"elapsedMs"`
}

// RenderSummary is the JSON body of /api/render/summary
type RenderSummary struct {
	Scene     string           `json:"scene"`
	Stats     Stats            `json:"stats"`
	ImageData string           `json:"imageData"` // Base64 encoded PNG
	Console   []ConsoleMessage `json:"console"`   // Most recent log lines
}

// errRequestCancelled is returned when the client went away before rendering started
var errRequestCancelled = errors.New("request cancelled before rendering started")

// handleRender renders a scene and returns the raw image
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	frame, _, err := s.renderScene(r.Context(), req, NewWebLogger(newRenderID(), nil))
	if err != nil {
		s.handleError(w, err)
		return
	}

	data, contentType, err := encodeFrame(frame, req.Format)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(data); err != nil {
		log.Printf("Error writing render response: %v", err)
	}
}

// handleRenderSummary renders a scene and returns stats, a PNG preview and the console tail
func (s *Server) handleRenderSummary(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Access-Control-Allow-Origin", "*")

	req, err := s.parseRenderRequest(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	consoleChan, collect := s.setupConsoleLogging()
	frame, sceneObj, err := s.renderScene(r.Context(), req, NewWebLogger(newRenderID(), consoleChan))
	console := collect()
	if err != nil {
		s.handleError(w, err)
		return
	}

	imageData, _, err := encodeFrame(frame, "png")
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, RenderSummary{
		Scene: sceneObj.Name,
		Stats: Stats{
			Width:           frame.Stats.Width,
			Height:          frame.Stats.Height,
			TotalPixels:     frame.Stats.TotalPixels,
			SamplesPerPixel: frame.Stats.SamplesPerPixel,
			TotalSamples:    int64(frame.Stats.TotalSamples),
			Workers:         frame.Stats.Workers,
			ElapsedMs:       frame.Stats.Elapsed.Milliseconds(),
		},
		ImageData: base64.StdEncoding.EncodeToString(imageData),
		Console:   console,
	})
}

// setupConsoleLogging creates a console channel and a collector that
// closes it and returns the most recent messages
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, func() []ConsoleMessage) {
	consoleChan := make(chan ConsoleMessage, 50)
	var tail []ConsoleMessage
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		for msg := range consoleChan {
			tail = append(tail, msg)
			if len(tail) > maxConsoleMessages {
				tail = tail[1:]
			}
		}
	}()

	return consoleChan, func() []ConsoleMessage {
		close(consoleChan)
		wg.Wait()
		return tail
	}
}

// renderScene builds the requested scene and renders it. A render that has
// started always runs to completion.
func (s *Server) renderScene(ctx context.Context, req *RenderRequest, logger core.Logger) (*renderer.Frame, *scene.Scene, error) {
	sceneObj, err := scene.New(req.Scene, renderer.CameraConfig{
		Width:           req.Width,
		AspectRatio:     req.Aspect,
		SamplesPerPixel: req.Samples,
		MaxDepth:        req.Depth,
	})
	if err != nil {
		return nil, nil, err
	}

	raytracer, err := sceneObj.NewRaytracer(renderer.RaytracerConfig{Seed: req.Seed}, logger)
	if err != nil {
		return nil, nil, err
	}

	camera := raytracer.Camera()
	if camera.Width()*camera.Height()*camera.SamplesPerPixel() > maxPixelSamples {
		return nil, nil, fmt.Errorf("%w: %dx%d at %d samples exceeds the server limit",
			renderer.ErrInvalidCameraConfig, camera.Width(), camera.Height(), camera.SamplesPerPixel())
	}

	if err := ctx.Err(); err != nil {
		return nil, nil, fmt.Errorf("%w: %v", errRequestCancelled, err)
	}

	logger.Printf("Rendering scene %s\n", sceneObj.Name)
	return raytracer.Render(), sceneObj, nil
}

// parseRenderRequest parses request parameters
func (s *Server) parseRenderRequest(r *http.Request) (*RenderRequest, error) {
	query := r.URL.Query()
	req := &RenderRequest{Scene: "default", Format: "ppm"}

	if sceneName := query.Get("scene"); sceneName != "" {
		req.Scene = sceneName
	}
	if format := query.Get("format"); format != "" {
		req.Format = format
	}
	if req.Format != "ppm" && req.Format != "png" {
		return nil, fmt.Errorf("format must be ppm or png, got: %s", req.Format)
	}

	var err error
	if req.Width, err = parseIntParam(query, "width", 400, 1, 2000); err != nil {
		return nil, err
	}
	if req.Aspect, err = parseFloatParam(query, "aspect", 0, 0.1, 10); err != nil {
		return nil, err
	}
	if req.Samples, err = parseIntParam(query, "samples", 10, 1, 10000); err != nil {
		return nil, err
	}
	if req.Depth, err = parseIntParam(query, "depth", 0, 1, 500); err != nil {
		return nil, err
	}
	if req.Seed, err = parseInt64Param(query, "seed", renderer.DefaultRaytracerConfig().Seed); err != nil {
		return nil, err
	}

	return req, nil
}

// handleError maps render setup errors onto HTTP status codes
func (s *Server) handleError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, scene.ErrUnknownScene):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, renderer.ErrInvalidCameraConfig):
		writeError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, errRequestCancelled):
		// Nobody is listening; log for the server operator
		log.Printf("Render skipped: %v", err)
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

// encodeFrame encodes a frame and returns its content type
func encodeFrame(frame *renderer.Frame, format string) ([]byte, string, error) {
	if format == "png" {
		var buf bytes.Buffer
		if err := png.Encode(&buf, frame.Image()); err != nil {
			return nil, "", fmt.Errorf("failed to encode image: %w", err)
		}
		return buf.Bytes(), "image/png", nil
	}
	return frame.PPM(), "image/x-portable-pixmap", nil
}

// newRenderID returns an identifier for log correlation
func newRenderID() string {
	return fmt.Sprintf("render-%d", time.Now().UnixNano())
}
