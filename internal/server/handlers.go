package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/justtnz/devdock-site/internal/docs"
	"github.com/justtnz/devdock-site/internal/releases"
	"github.com/justtnz/devdock-site/internal/toc"
)

func (s *Server) registerRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", s.handleHome)
	mux.HandleFunc("GET /docs", s.handleDocsRoot)
	mux.HandleFunc("GET /docs/{$}", s.handleDocsRoot)
	mux.HandleFunc("GET /docs/{section}/{item}", s.handleDoc)
	mux.HandleFunc("GET /releases", s.handleReleases)
	mux.HandleFunc("GET /download", s.handleDownload)
	mux.HandleFunc("GET /api/docs", s.handleAPICatalog)
	mux.HandleFunc("GET /api/docs/{section}/{item}", s.handleAPIItem)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	if s.metrics != nil {
		mux.Handle("GET /metrics", s.metrics.Handler())
	}
	mux.HandleFunc("/", s.handleNotFound)
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, s.site.RenderHome)
}

func (s *Server) handleDocsRoot(w http.ResponseWriter, r *http.Request) {
	first, ok := s.site.Catalog().First()
	if !ok {
		s.handleNotFound(w, r)
		return
	}
	http.Redirect(w, r, first.Path(), http.StatusTemporaryRedirect)
}

func (s *Server) handleDoc(w http.ResponseWriter, r *http.Request) {
	section, item := r.PathValue("section"), r.PathValue("item")
	var buf bytes.Buffer
	err := s.site.RenderDoc(&buf, section, item)
	if errors.Is(err, docs.ErrNotFound) {
		s.metrics.DocNotFound()
		s.handleNotFound(w, r)
		return
	}
	if err != nil {
		s.serverError(w, r, err)
		return
	}
	s.metrics.DocView(section, item)
	writeHTML(w, http.StatusOK, &buf)
}

func (s *Server) handleReleases(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusOK, func(w io.Writer) error {
		return s.site.RenderReleases(r.Context(), w)
	})
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	p := releases.Platform(r.URL.Query().Get("os"))
	s.renderPage(w, r, http.StatusOK, func(w io.Writer) error {
		return s.site.RenderDownload(r.Context(), w, p)
	})
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.renderPage(w, r, http.StatusNotFound, s.site.RenderNotFound)
}

func (s *Server) handleAPICatalog(w http.ResponseWriter, r *http.Request) {
	cat := s.site.Catalog()
	resp := CatalogResponse{Sections: []SectionSummary{}, Total: cat.Len()}
	for _, sec := range cat.Sections() {
		ss := SectionSummary{ID: sec.ID, Title: sec.Title, Items: make([]ItemSummary, len(sec.Items))}
		for i, it := range sec.Items {
			ss.Items[i] = ItemSummary{SectionID: sec.ID, ID: it.ID, Title: it.Title, Path: docs.Path(sec.ID, it.ID)}
		}
		resp.Sections = append(resp.Sections, ss)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAPIItem(w http.ResponseWriter, r *http.Request) {
	section, item := r.PathValue("section"), r.PathValue("item")
	cat := s.site.Catalog()
	pos := cat.IndexOf(section, item)
	if pos < 0 {
		respondError(w, http.StatusNotFound, "page "+section+"/"+item+" not found")
		return
	}
	e := cat.Flatten()[pos]
	resp := ItemResponse{
		SectionID:    e.SectionID,
		SectionTitle: e.SectionTitle,
		ID:           e.Item.ID,
		Title:        e.Item.Title,
		Position:     pos,
		Content:      e.Item.Content,
		Headings:     []HeadingResponse{},
	}
	for _, h := range toc.Extract(e.Item.Content) {
		resp.Headings = append(resp.Headings, HeadingResponse{ID: h.ID, Text: h.Text, Level: int(h.Level)})
	}
	if prev, ok := cat.Previous(pos); ok {
		resp.Prev = summary(prev)
	}
	if next, ok := cat.Next(pos); ok {
		resp.Next = summary(next)
	}
	respondJSON(w, http.StatusOK, resp)
}

func summary(e docs.Entry) *ItemSummary {
	return &ItemSummary{SectionID: e.SectionID, ID: e.Item.ID, Title: e.Item.Title, Path: e.Path()}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, HealthResponse{
		Status:  "ok",
		Version: s.version,
		Pages:   s.site.Catalog().Len(),
	})
}

// renderPage buffers the page so a render failure can still become a 500.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, status int, render func(io.Writer) error) {
	var buf bytes.Buffer
	if err := render(&buf); err != nil {
		s.serverError(w, r, err)
		return
	}
	writeHTML(w, status, &buf)
}

func (s *Server) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.log.Error("render failed", "request_id", RequestID(r.Context()), "path", r.URL.Path, "error", err)
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}

func writeHTML(w http.ResponseWriter, status int, body *bytes.Buffer) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	body.WriteTo(w)
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(DataResponse{Data: data})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}
