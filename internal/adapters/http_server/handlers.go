// internal/adapters/http_server/handlers.go
package httpserver

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"city_explorer/internal/adapters/observability"
	"city_explorer/internal/app"
	"city_explorer/internal/domain"
)

type Handlers struct {
	A *app.Aggregator
	G *app.GeocodeService
}

type problem struct {
	Type      string `json:"type"`
	Title     string `json:"title"`
	Status    int    `json:"status"`
	Detail    string `json:"detail,omitempty"`
	Retryable bool   `json:"retryable,omitempty"`
}

func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/cities/{name}/places", h.cityPlaces)
		r.Get("/categories", h.listCategories)
		r.Get("/categories/{id}/places", h.categoryPlaces)
		r.Get("/places/{source}/{id}", h.getPlace)
		r.Get("/geocode", h.geocode)
	})
}

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	writeProblemBody(w, problem{Type: "about:blank", Title: title, Status: status, Detail: detail})
}

func writeProblemBody(w http.ResponseWriter, p problem) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(p.Status)
	if err := json.NewEncoder(w).Encode(p); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

// writeError maps pipeline errors onto problem responses.
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrCityNotFound):
		writeProblem(w, http.StatusNotFound, "City Not Found", "no coordinates for the requested city")
	case errors.Is(err, domain.ErrNotFound):
		writeProblem(w, http.StatusNotFound, "Not Found", "place not found")
	case errors.Is(err, context.DeadlineExceeded):
		writeProblemBody(w, problem{
			Type:      "about:blank",
			Title:     "Timeout",
			Status:    http.StatusGatewayTimeout,
			Detail:    "upstream data took too long, try again",
			Retryable: true,
		})
	default:
		writeProblemBody(w, problem{
			Type:      "about:blank",
			Title:     "Fetch Failed",
			Status:    http.StatusBadGateway,
			Detail:    "upstream data could not be loaded, try again",
			Retryable: true,
		})
	}
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

func writeJSON(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if body == nil {
		writeProblem(w, http.StatusInternalServerError, "Internal Error", "response could not be encoded")
		return
	}
	// If client already has this version, short-circuit.
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Language", "tr")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Str("path", r.URL.Path).Msg("failed to write response body")
	}
}

func (h *Handlers) aggregate(ctx context.Context, kind string, req domain.Request) (domain.Result, error) {
	res, err := h.A.Aggregate(ctx, req)
	outcome := "live"
	switch {
	case errors.Is(err, domain.ErrCityNotFound):
		outcome = "not_found"
	case err != nil:
		outcome = "error"
	case res.UsingFallback:
		outcome = "fallback"
	case len(res.Places) > 0 && res.Places[0].Source == domain.SourceCurated:
		outcome = "curated"
	}
	observability.ObserveAggregation(kind, outcome)
	return res, err
}

func (h *Handlers) cityPlaces(w http.ResponseWriter, r *http.Request) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	res, err := h.aggregate(r.Context(), "city", domain.Request{City: name})
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, res)
}

func (h *Handlers) listCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, h.A.Categories())
}

func (h *Handlers) categoryPlaces(w http.ResponseWriter, r *http.Request) {
	req := domain.Request{CategoryID: chi.URLParam(r, "id")}
	near, ok, err := parseCoordinates(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid coordinates", err.Error())
		return
	}
	if ok {
		req.Near = &near
	}
	res, err := h.aggregate(r.Context(), "category", req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, res)
}

func (h *Handlers) getPlace(w http.ResponseWriter, r *http.Request) {
	src := domain.Source(chi.URLParam(r, "source"))
	p, err := h.A.Place(r.Context(), src, chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, p)
}

func (h *Handlers) geocode(w http.ResponseWriter, r *http.Request) {
	at, ok, err := parseCoordinates(r)
	if err != nil {
		writeProblem(w, http.StatusBadRequest, "Invalid coordinates", err.Error())
		return
	}
	var c domain.City
	switch {
	case ok:
		c, err = h.G.Reverse(r.Context(), at)
		if errors.Is(err, domain.ErrNotFound) {
			err = domain.ErrCityNotFound
		}
	case r.URL.Query().Get("name") != "":
		c, err = h.G.Resolve(r.Context(), r.URL.Query().Get("name"))
	default:
		writeProblem(w, http.StatusBadRequest, "Missing query", "name or lat/lon is required")
		return
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, r, c)
}

// parseCoordinates reads lat/lon; ok is false when neither is present.
func parseCoordinates(r *http.Request) (domain.Coordinates, bool, error) {
	q := r.URL.Query()
	latS, lonS := q.Get("lat"), q.Get("lon")
	if latS == "" && lonS == "" {
		return domain.Coordinates{}, false, nil
	}
	lat, err := strconv.ParseFloat(latS, 64)
	if err != nil || lat < -90 || lat > 90 {
		return domain.Coordinates{}, false, errors.New("lat must be a number between -90 and 90")
	}
	lon, err := strconv.ParseFloat(lonS, 64)
	if err != nil || lon < -180 || lon > 180 {
		return domain.Coordinates{}, false, errors.New("lon must be a number between -180 and 180")
	}
	return domain.Coordinates{Lat: lat, Lon: lon}, true, nil
}
