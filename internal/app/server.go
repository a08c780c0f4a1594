package app

import (
	"context"
	"encoding/json"
	"errors"
	"html/template"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"gamewiki/internal/assets"
	"gamewiki/internal/catalog"
	"gamewiki/internal/wiki"
)

// Server wires handlers, templates, and the catalog together.
type Server struct {
	catalog   *catalog.Holder
	assets    assets.Store
	templates *template.Template
	router    chi.Router
	registry  *prometheus.Registry
	metrics   *metrics
}

// NewServer constructs an HTTP handler ready to serve wiki requests.
func NewServer(holder *catalog.Holder, store assets.Store) (*Server, error) {
	tmpl, err := parseTemplates()
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	srv := &Server{
		catalog:   holder,
		assets:    store,
		templates: tmpl,
		router:    chi.NewRouter(),
		registry:  reg,
		metrics:   newMetrics(reg),
	}
	srv.setupRoutes()
	srv.observeCatalog(holder.Current())

	return srv, nil
}

// ServeHTTP satisfies http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	s.router.Use(middleware.Logger)
	s.router.Use(middleware.Recoverer)

	s.router.Get("/", s.handleIndex)
	s.router.Get("/index.html", s.handleIndex)
	for _, kind := range []wiki.Kind{wiki.KindObject, wiki.KindItem, wiki.KindNPC} {
		s.router.Get("/"+kind.Page(), s.handleEntity(kind))
	}
	s.router.Get("/"+wiki.KindTag.Page(), s.handleTag)
	s.router.Get("/search", s.handleSearch)
	s.router.Get("/images/*", s.handleImage)

	s.router.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "OPTIONS"},
			AllowedHeaders: []string{"Accept"},
			MaxAge:         300,
		}))
		r.Get("/{kind}/{id}", s.handleAPIEntity)
	})

	s.router.Post("/admin/reload", s.handleReload)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
}

// Reload refreshes the catalog from its source.
func (s *Server) Reload(ctx context.Context) error {
	c, err := s.catalog.Reload(ctx)
	if err != nil {
		s.metrics.reloads.WithLabelValues("error").Inc()
		return err
	}
	s.metrics.reloads.WithLabelValues("ok").Inc()
	s.observeCatalog(c)
	return nil
}

func (s *Server) observeCatalog(c *wiki.Catalog) {
	s.metrics.entities.WithLabelValues(string(wiki.KindObject)).Set(float64(len(c.Objects)))
	s.metrics.entities.WithLabelValues(string(wiki.KindItem)).Set(float64(len(c.Items)))
	s.metrics.entities.WithLabelValues(string(wiki.KindNPC)).Set(float64(len(c.NPCs)))
	s.metrics.entities.WithLabelValues(string(wiki.KindTag)).Set(float64(len(c.Tags)))
}

func (s *Server) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("render %s: %v", name, err)
	}
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	s.metrics.pageViews.WithLabelValues("index").Inc()
	s.render(w, "home.gohtml", buildHomePage(s.catalog.Current()))
}

// handleEntity renders the page for the entity named by the id parameter.
// Unknown ids still get a page.
func (s *Server) handleEntity(kind wiki.Kind) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := wiki.EntityID("?" + r.URL.RawQuery)
		page := buildEntityPage(s.catalog.Current(), kind, id)
		if !page.Found {
			s.metrics.lookupMisses.WithLabelValues(string(kind)).Inc()
		}
		s.metrics.pageViews.WithLabelValues(string(kind)).Inc()
		s.render(w, "entity.gohtml", page)
	}
}

func (s *Server) handleTag(w http.ResponseWriter, r *http.Request) {
	tag := wiki.EntityID("?" + r.URL.RawQuery)
	s.metrics.pageViews.WithLabelValues(string(wiki.KindTag)).Inc()
	s.render(w, "tag.gohtml", buildTagPage(s.catalog.Current(), tag))
}

func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	query, _ := wiki.ParseQuery("?" + r.URL.RawQuery).Get("q")
	s.metrics.pageViews.WithLabelValues("search").Inc()
	s.render(w, "search.gohtml", buildSearchPage(s.catalog.Current(), query))
}

func (s *Server) handleImage(w http.ResponseWriter, r *http.Request) {
	key := "images/" + chi.URLParam(r, "*")
	info, body, err := s.assets.Get(r.Context(), key)
	if errors.Is(err, assets.ErrNotFound) || errors.Is(err, assets.ErrInvalidKey) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		log.Printf("get asset %s: %v", key, err)
		http.Error(w, "asset error", http.StatusInternalServerError)
		return
	}
	defer body.Close()

	if info.ETag != "" {
		etag := `"` + info.ETag + `"`
		w.Header().Set("ETag", etag)
		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}
	w.Header().Set("Content-Type", info.ContentType)
	if info.Size > 0 {
		w.Header().Set("Content-Length", strconv.FormatInt(info.Size, 10))
	}
	if _, err := io.Copy(w, body); err != nil {
		log.Printf("write asset %s: %v", key, err)
	}
}

// apiEntity is the JSON shape of an entity. Record is the entity's source
// data as loaded.
type apiEntity struct {
	Kind   wiki.Kind       `json:"kind"`
	Entity wiki.Entity     `json:"entity"`
	Gear   bool            `json:"gear"`
	Record json.RawMessage `json:"record,omitempty"`
}

func (s *Server) handleAPIEntity(w http.ResponseWriter, r *http.Request) {
	kind := wiki.Kind(chi.URLParam(r, "kind"))
	id := chi.URLParam(r, "id")

	switch kind {
	case wiki.KindObject, wiki.KindItem, wiki.KindNPC:
	default:
		respondError(w, http.StatusNotFound, "unknown kind")
		return
	}

	e := s.catalog.Current().Find(kind, id)
	if e.IsZero() {
		s.metrics.lookupMisses.WithLabelValues(string(kind)).Inc()
		respondError(w, http.StatusNotFound, "not found")
		return
	}
	respondJSON(w, http.StatusOK, apiEntity{
		Kind:   kind,
		Entity: e,
		Gear:   wiki.IsGearItem(e),
		Record: e.Raw,
	})
}

func (s *Server) handleReload(w http.ResponseWriter, r *http.Request) {
	if err := s.Reload(r.Context()); err != nil {
		log.Printf("reload catalog: %v", err)
		respondError(w, http.StatusInternalServerError, "reload failed")
		return
	}
	c := s.catalog.Current()
	respondJSON(w, http.StatusOK, map[string]int{
		"objects": len(c.Objects),
		"items":   len(c.Items),
		"npcs":    len(c.NPCs),
		"tags":    len(c.Tags),
	})
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("encode response: %v", err)
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]string{"error": message})
}
