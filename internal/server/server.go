// Package server exposes map generation over HTTP: a creation endpoint
// returning an opaque identifier, retrieval of the rendered drawing, and a
// websocket feed of created maps.
package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/coder/websocket"

	"github.com/DiD92/map-generator/internal/mapgen"
)

// Server wires the HTTP handlers to the artifact store and notification hub.
type Server struct {
	store *Store
	hub   *Hub
}

// New creates a server around the given store.
func New(store *Store) *Server {
	return &Server{
		store: store,
		hub:   NewHub(),
	}
}

// Routes returns the HTTP mux for the server.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /maps", s.handleCreateMap)
	mux.HandleFunc("GET /maps/{id}", s.handleGetMap)
	mux.HandleFunc("GET /ws", s.handleSubscribe)
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

type createMapRequest struct {
	Columns int    `json:"columns"`
	Rows    int    `json:"rows"`
	Style   string `json:"style"`
	Seed    int64  `json:"seed,omitempty"`
}

type createMapData struct {
	ID string `json:"id"`
}

type apiResponse struct {
	StatusCode int            `json:"status_code"`
	Data       *createMapData `json:"data,omitempty"`
	Error      string         `json:"error,omitempty"`
}

// mapCreated is the notification broadcast to websocket subscribers.
type mapCreated struct {
	ID      string `json:"id"`
	Style   string `json:"style"`
	Columns int    `json:"columns"`
	Rows    int    `json:"rows"`
	Seed    int64  `json:"seed"`
}

func (s *Server) handleCreateMap(w http.ResponseWriter, r *http.Request) {
	var req createMapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, apiResponse{
			StatusCode: http.StatusUnprocessableEntity,
			Error:      "invalid request body",
		})
		return
	}

	artifact, err := mapgen.Generate(r.Context(), req.Columns, req.Rows, req.Style, req.Seed)
	if err != nil {
		var dimErr *mapgen.InvalidDimensionsError
		var styleErr *mapgen.UnknownStyleError
		if errors.As(err, &dimErr) || errors.As(err, &styleErr) {
			writeJSON(w, apiResponse{
				StatusCode: http.StatusUnprocessableEntity,
				Error:      err.Error(),
			})
			return
		}
		log.Printf("Map generation failed: %v", err)
		writeJSON(w, apiResponse{
			StatusCode: http.StatusInternalServerError,
			Error:      "generation failed",
		})
		return
	}

	if err := s.store.Put(r.Context(), artifact); err != nil {
		log.Printf("Failed to store artifact %s: %v", artifact.ID, err)
		writeJSON(w, apiResponse{
			StatusCode: http.StatusInternalServerError,
			Error:      "failed to persist map",
		})
		return
	}

	s.notifyCreated(artifact)

	writeJSON(w, apiResponse{
		StatusCode: http.StatusCreated,
		Data:       &createMapData{ID: artifact.ID.String()},
	})
}

func (s *Server) handleGetMap(w http.ResponseWriter, r *http.Request) {
	artifact, ok := s.store.Get(r.PathValue("id"))
	if !ok {
		writeJSON(w, apiResponse{
			StatusCode: http.StatusNotFound,
			Error:      "map not found",
		})
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(artifact.SVG); err != nil {
		log.Printf("Failed to write drawing for %s: %v", artifact.ID, err)
	}
}

func (s *Server) handleSubscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, nil)
	if err != nil {
		log.Printf("Websocket accept failed: %v", err)
		return
	}

	s.hub.Add(conn)
	defer func() {
		s.hub.Remove(conn)
		_ = conn.Close(websocket.StatusNormalClosure, "")
	}()

	// Subscribers only receive; the read loop just detects disconnects.
	for {
		if _, _, err := conn.Read(r.Context()); err != nil {
			return
		}
	}
}

func (s *Server) notifyCreated(artifact *mapgen.Artifact) {
	message, err := json.Marshal(mapCreated{
		ID:      artifact.ID.String(),
		Style:   artifact.Style,
		Columns: artifact.Columns,
		Rows:    artifact.Rows,
		Seed:    artifact.Seed,
	})
	if err != nil {
		log.Printf("Failed to encode notification for %s: %v", artifact.ID, err)
		return
	}
	s.hub.Broadcast(message)
}

func writeJSON(w http.ResponseWriter, resp apiResponse) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(resp.StatusCode)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		log.Printf("Failed to encode response: %v", err)
	}
}
