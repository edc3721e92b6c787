// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package devapi is an in-memory implementation of the portfolio REST
// backend for local development and tests.
package devapi

import (
	"encoding/json"
	"net/http"
	"slices"
	"strconv"
	"sync"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/portfolio-go/internal/model"
)

// Seed holds the initial collections served by a Server.
type Seed struct {
	Projects        []model.Project
	Certificates    []model.Certificate
	Accomplishments []model.Accomplishment
}

// Server serves the backend contract from memory.
type Server struct {
	mu              sync.Mutex
	projects        []model.Project
	certificates    []model.Certificate
	accomplishments []model.Accomplishment
	nextID          int64
}

// New creates a Server holding a copy of seed.
func New(seed Seed) *Server {
	s := &Server{
		certificates:    slices.Clone(seed.Certificates),
		accomplishments: slices.Clone(seed.Accomplishments),
		nextID:          1,
	}
	for _, p := range seed.Projects {
		s.projects = append(s.projects, p.Clone())
		if n, err := strconv.ParseInt(p.ID.String(), 10, 64); err == nil && n >= s.nextID {
			s.nextID = n + 1
		}
	}
	return s
}

// Routes registers the backend endpoints on r.
func (s *Server) Routes(r chi.Router) {
	r.Get("/projects", s.listProjects)
	r.Post("/projects", s.createProject)
	r.Put("/projects/{id}", s.updateProject)
	r.Delete("/projects/{id}", s.deleteProject)
	r.Get("/certificates", s.listCertificates)
	r.Get("/accomplishments", s.listAccomplishments)
}

// Handler returns an http.Handler serving the endpoints under prefix,
// e.g. "/api".
func (s *Server) Handler(prefix string) http.Handler {
	r := chi.NewRouter()
	if prefix == "" || prefix == "/" {
		s.Routes(r)
		return r
	}
	r.Route(prefix, s.Routes)
	return r
}

// Projects returns a snapshot of the stored projects.
func (s *Server) Projects() []model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, p.Clone())
	}
	return out
}

func (s *Server) listProjects(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, s.Projects())
}

func (s *Server) createProject(w http.ResponseWriter, r *http.Request) {
	var p model.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if p.Tags == nil {
		p.Tags = []string{}
	}

	s.mu.Lock()
	p.ID = model.ID(strconv.FormatInt(s.nextID, 10))
	s.nextID++
	s.projects = append(s.projects, p.Clone())
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, p)
}

func (s *Server) updateProject(w http.ResponseWriter, r *http.Request) {
	id := model.ID(chi.URLParam(r, "id"))
	var p model.Project
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	p.ID = id
	if p.Tags == nil {
		p.Tags = []string{}
	}

	s.mu.Lock()
	i := slices.IndexFunc(s.projects, func(x model.Project) bool { return x.ID == id })
	if i >= 0 {
		s.projects[i] = p.Clone()
	}
	s.mu.Unlock()

	if i < 0 {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

func (s *Server) deleteProject(w http.ResponseWriter, r *http.Request) {
	id := model.ID(chi.URLParam(r, "id"))

	s.mu.Lock()
	before := len(s.projects)
	s.projects = slices.DeleteFunc(s.projects, func(x model.Project) bool { return x.ID == id })
	removed := len(s.projects) < before
	s.mu.Unlock()

	if !removed {
		writeError(w, http.StatusNotFound, "project not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "project deleted"})
}

func (s *Server) listCertificates(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := slices.Clone(s.certificates)
	s.mu.Unlock()
	if out == nil {
		out = []model.Certificate{}
	}
	writeJSON(w, http.StatusOK, out)
}

func (s *Server) listAccomplishments(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	out := slices.Clone(s.accomplishments)
	s.mu.Unlock()
	if out == nil {
		out = []model.Accomplishment{}
	}
	writeJSON(w, http.StatusOK, out)
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, statusCode int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}
