package handlers

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/preston-bernstein/football-players-service/internal/domain/players"
	"github.com/preston-bernstein/football-players-service/internal/logging"
)

// Banner is served from the root path.
const Banner = "Sample REST API with Go"

const defaultMaxBodyBytes = 1 << 20

// PlayerService is the collection surface the handlers drive.
type PlayerService interface {
	Players() []players.PlayerResponse
	PlayerByID(id uint32) (players.PlayerResponse, error)
	PlayerBySquadNumber(n uint32) (players.PlayerResponse, error)
	Create(req players.PlayerRequest) (players.PlayerResponse, error)
	Update(id uint32, req players.PlayerRequest) (players.PlayerResponse, error)
	Delete(id uint32) error
}

// RequestDecoder turns a raw body into a structurally valid request.
type RequestDecoder interface {
	DecodePlayerRequest(body []byte) (players.PlayerRequest, error)
}

// Handler wires HTTP routes to the player service.
type Handler struct {
	svc          PlayerService
	decoder      RequestDecoder
	logger       *slog.Logger
	maxBodyBytes int64
}

// NewHandler constructs a Handler. A non-positive maxBodyBytes uses 1 MiB.
func NewHandler(svc PlayerService, decoder RequestDecoder, logger *slog.Logger, maxBodyBytes int64) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = defaultMaxBodyBytes
	}
	return &Handler{
		svc:          svc,
		decoder:      decoder,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
}

// Index serves the plain-text banner.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, Banner)
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// ListPlayers returns the whole collection in store order.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	items := h.svc.Players()
	logging.Debug(loggerFromContext(r, h.logger), "served players", logging.FieldCount, len(items))
	writeJSON(w, http.StatusOK, items, h.logger)
}

// GetPlayer returns the player named by the {id} path variable.
func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUint32(r, "id")
	if !ok {
		writeError(w, r, http.StatusNotFound, players.ErrNotFound.Error(), h.logger)
		return
	}
	p, err := h.svc.PlayerByID(id)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, p, h.logger)
}

// GetPlayerBySquadNumber returns the player wearing the {n} path variable.
func (h *Handler) GetPlayerBySquadNumber(w http.ResponseWriter, r *http.Request) {
	n, ok := pathUint32(r, "n")
	if !ok {
		writeError(w, r, http.StatusNotFound, players.ErrNotFound.Error(), h.logger)
		return
	}
	p, err := h.svc.PlayerBySquadNumber(n)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, p, h.logger)
}

// CreatePlayer stores the body as a new player and answers 201.
func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeBody(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Create(req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/players/%d", p.ID))
	writeJSON(w, http.StatusCreated, p, h.logger)
}

// UpdatePlayer replaces every field of the {id} player with the body.
func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUint32(r, "id")
	if !ok {
		writeError(w, r, http.StatusNotFound, players.ErrNotFound.Error(), h.logger)
		return
	}
	req, ok := h.decodeBody(w, r)
	if !ok {
		return
	}
	p, err := h.svc.Update(id, req)
	if err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	writeJSON(w, http.StatusOK, p, h.logger)
}

// DeletePlayer removes the {id} player and answers 204.
func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUint32(r, "id")
	if !ok {
		writeError(w, r, http.StatusNotFound, players.ErrNotFound.Error(), h.logger)
		return
	}
	if err := h.svc.Delete(id); err != nil {
		writeServiceError(w, r, err, h.logger)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// NotFound answers unmatched routes with the JSON error body.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known paths hit with an unsupported method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}

func (h *Handler) decodeBody(w http.ResponseWriter, r *http.Request) (players.PlayerRequest, bool) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, h.maxBodyBytes))
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, r, http.StatusRequestEntityTooLarge, "request body too large", h.logger)
			return players.PlayerRequest{}, false
		}
		writeError(w, r, http.StatusBadRequest, "failed to read request body", h.logger)
		return players.PlayerRequest{}, false
	}

	req, err := h.decoder.DecodePlayerRequest(body)
	if err != nil {
		logging.Debug(loggerFromContext(r, h.logger), "rejected request body", "error", err)
		writeServiceError(w, r, err, h.logger)
		return players.PlayerRequest{}, false
	}
	return req, true
}

// pathUint32 parses a route variable. Values outside the uint32 range never
// name a player.
func pathUint32(r *http.Request, key string) (uint32, bool) {
	raw, ok := mux.Vars(r)[key]
	if !ok {
		return 0, false
	}
	v, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, false
	}
	return uint32(v), true
}
