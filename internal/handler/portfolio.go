// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/olegiv/portfolio-go/internal/draft"
	"github.com/olegiv/portfolio-go/internal/model"
	"github.com/olegiv/portfolio-go/internal/projector"
	"github.com/olegiv/portfolio-go/internal/render"
	"github.com/olegiv/portfolio-go/internal/store"
)

// PortfolioHandler serves the tabbed collection pages and their forms.
type PortfolioHandler struct {
	store    *store.Store
	renderer *render.Renderer
	logger   *slog.Logger
	now      func() time.Time
}

// NewPortfolioHandler creates a new PortfolioHandler.
func NewPortfolioHandler(s *store.Store, renderer *render.Renderer, logger *slog.Logger) *PortfolioHandler {
	return &PortfolioHandler{
		store:    s,
		renderer: renderer,
		logger:   logger,
		now:      time.Now,
	}
}

// TabLink is one entry of the tab bar.
type TabLink struct {
	Kind   model.Kind
	Label  string
	URL    string
	Count  int
	Active bool
}

// IndexData holds data for the collection page.
type IndexData struct {
	View projector.View
	Tabs []TabLink
	// Loading is set until the first load attempt has finished.
	Loading bool
	// SessionOnly is set for kinds whose edits are not sent to the server.
	SessionOnly bool
	// LoadError is the last load failure of this kind, if any.
	LoadError string
}

// FormData holds data for the add and edit forms.
type FormData struct {
	Draft      draft.Draft
	Errors     map[string]string
	Summary    string
	Categories []string
	Statuses   []model.Status
	Action     string
	CancelURL  string
	Heading    string
	Submit     string
}

// ConfirmDeleteData holds data for the delete confirmation page.
type ConfirmDeleteData struct {
	Item      model.Item
	Title     string
	Action    string
	CancelURL string
	Pending   bool
}

// Home redirects to the default tab.
func (h *PortfolioHandler) Home(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, render.TabURL(model.KindProject), http.StatusFound)
}

// Index renders one collection tab filtered by the q and category parameters.
// Tab links carry no query, so switching tabs resets the filter.
func (h *PortfolioHandler) Index(w http.ResponseWriter, r *http.Request) {
	kind, ok := requireKind(w, r)
	if !ok {
		return
	}

	q := projector.Query{
		Search:   r.URL.Query().Get(paramSearch),
		Category: r.URL.Query().Get(paramCategory),
	}

	data := IndexData{
		View:        projector.Project(h.store, kind, q),
		Tabs:        h.tabs(kind),
		Loading:     !h.store.Loaded(),
		SessionOnly: !kind.Persisted(),
	}
	for _, st := range h.store.LoadStatuses() {
		if st.Kind == kind {
			data.LoadError = st.Err
		}
	}

	h.render(w, r, http.StatusOK, templateIndex, kind.Label(), kind, data)
}

// NewForm renders the add form of a tab.
func (h *PortfolioHandler) NewForm(w http.ResponseWriter, r *http.Request) {
	kind, ok := requireKind(w, r)
	if !ok {
		return
	}
	h.renderForm(w, r, http.StatusOK, draft.New(kind, h.now()), nil, "")
}

// EditForm renders the edit form of an existing record.
func (h *PortfolioHandler) EditForm(w http.ResponseWriter, r *http.Request) {
	kind, ok := requireKind(w, r)
	if !ok {
		return
	}
	item, ok := requireItemWithRedirect(w, r, h.renderer, kind, h.store.Find)
	if !ok {
		return
	}
	h.renderForm(w, r, http.StatusOK, draft.FromItem(item, h.now()), nil, "")
}

// Create handles the add form submission.
func (h *PortfolioHandler) Create(w http.ResponseWriter, r *http.Request) {
	kind, ok := requireKind(w, r)
	if !ok {
		return
	}
	if !parseFormOrRedirect(w, r, h.renderer, render.NewURL(kind)) {
		return
	}

	d := draft.FromForm(kind, "", r.PostForm)
	item, ok := h.normalizeOrRerender(w, r, d)
	if !ok {
		return
	}

	created, err := h.store.Create(r.Context(), d.Token, item)
	if err != nil {
		h.handleSaveError(w, r, d, err)
		return
	}

	h.logger.Info("record created", "kind", kind, "id", created.ItemID())
	flashSuccess(w, r, h.renderer, render.TabURL(kind), singular(kind)+" created successfully")
}

// Update handles the edit form submission.
func (h *PortfolioHandler) Update(w http.ResponseWriter, r *http.Request) {
	kind, ok := requireKind(w, r)
	if !ok {
		return
	}
	existing, ok := requireItemWithRedirect(w, r, h.renderer, kind, h.store.Find)
	if !ok {
		return
	}
	id := existing.ItemID()
	if !parseFormOrRedirect(w, r, h.renderer, render.EditURL(existing)) {
		return
	}

	d := draft.FromForm(kind, id, r.PostForm)
	d.StoredCategory = strings.TrimSpace(model.CategoryOf(existing))
	item, ok := h.normalizeOrRerender(w, r, d)
	if !ok {
		return
	}

	if _, err := h.store.Update(r.Context(), id, item); err != nil {
		h.handleSaveError(w, r, d, err)
		return
	}

	h.logger.Info("record updated", "kind", kind, "id", id)
	flashSuccess(w, r, h.renderer, render.TabURL(kind), singular(kind)+" updated successfully")
}

// ConfirmDelete renders the delete confirmation page.
func (h *PortfolioHandler) ConfirmDelete(w http.ResponseWriter, r *http.Request) {
	kind, ok := requireKind(w, r)
	if !ok {
		return
	}
	item, ok := requireItemWithRedirect(w, r, h.renderer, kind, h.store.Find)
	if !ok {
		return
	}

	data := ConfirmDeleteData{
		Item:      item,
		Title:     item.SearchFields()[0],
		Action:    render.DeleteURL(item),
		CancelURL: render.TabURL(kind),
		Pending:   h.store.InFlight(kind, item.ItemID()),
	}
	h.render(w, r, http.StatusOK, templateConfirm, "Delete "+singular(kind), kind, data)
}

// Delete removes a record after confirmation.
func (h *PortfolioHandler) Delete(w http.ResponseWriter, r *http.Request) {
	kind, ok := requireKind(w, r)
	if !ok {
		return
	}
	id := model.ID(chi.URLParam(r, "id"))
	tabURL := render.TabURL(kind)

	err := h.store.Delete(r.Context(), kind, id)
	switch {
	case err == nil:
		h.logger.Info("record deleted", "kind", kind, "id", id)
		flashSuccess(w, r, h.renderer, tabURL, singular(kind)+" deleted successfully")
	case errors.Is(err, store.ErrNotFound):
		flashError(w, r, h.renderer, tabURL, singular(kind)+" not found")
	case errors.Is(err, store.ErrInFlight):
		flashAndRedirect(w, r, h.renderer, tabURL, "This "+string(kind)+" is already being deleted", flashTypeInfo)
	default:
		h.logger.Error("failed to delete record", "kind", kind, "id", id, "error", err)
		flashError(w, r, h.renderer, tabURL, "Failed to delete "+string(kind))
	}
}

// Reload fetches every collection again and returns to the given tab.
func (h *PortfolioHandler) Reload(w http.ResponseWriter, r *http.Request) {
	redirectURL := render.TabURL(model.KindProject)
	if err := r.ParseForm(); err == nil {
		if kind, ok := model.ParseTab(r.PostForm.Get("tab")); ok {
			redirectURL = render.TabURL(kind)
		}
	}

	if err := h.store.LoadAll(r.Context()); err != nil {
		h.logger.Warn("reload incomplete", "error", err)
		flashAndRedirect(w, r, h.renderer, redirectURL, "Some collections could not be loaded", flashTypeWarning)
		return
	}
	flashSuccess(w, r, h.renderer, redirectURL, "Portfolio reloaded")
}

// normalizeOrRerender validates d. On failure it renders the form again
// with status 422 and the offending fields marked.
func (h *PortfolioHandler) normalizeOrRerender(w http.ResponseWriter, r *http.Request, d draft.Draft) (model.Item, bool) {
	item, err := d.Normalize()
	if err == nil {
		return item, true
	}
	var verr *draft.ValidationError
	if errors.As(err, &verr) {
		h.renderForm(w, r, http.StatusUnprocessableEntity, d, verr.Fields, verr.Summary())
		return nil, false
	}
	logAndInternalError(w, "failed to normalize draft", "kind", d.Kind, "error", err)
	return nil, false
}

// handleSaveError maps a store error of a create or update to a response.
// Remote failures keep the draft on screen so the user can retry.
func (h *PortfolioHandler) handleSaveError(w http.ResponseWriter, r *http.Request, d draft.Draft, err error) {
	tabURL := render.TabURL(d.Kind)
	switch {
	case errors.Is(err, store.ErrDuplicateSubmission):
		flashAndRedirect(w, r, h.renderer, tabURL, "This form was already submitted", flashTypeInfo)
	case errors.Is(err, store.ErrInFlight):
		flashAndRedirect(w, r, h.renderer, tabURL, "This "+string(d.Kind)+" is still being saved", flashTypeInfo)
	case errors.Is(err, store.ErrNotFound):
		flashError(w, r, h.renderer, tabURL, singular(d.Kind)+" not found")
	default:
		h.logger.Error("failed to save record", "kind", d.Kind, "id", d.ID, "error", err)
		h.renderForm(w, r, http.StatusBadGateway, d, nil, "Failed to save "+string(d.Kind)+". Please try again.")
	}
}

func (h *PortfolioHandler) renderForm(w http.ResponseWriter, r *http.Request, status int, d draft.Draft, errs map[string]string, summary string) {
	if errs == nil {
		errs = map[string]string{}
	}
	data := FormData{
		Draft:      d,
		Errors:     errs,
		Summary:    summary,
		Categories: d.Categories(),
		Statuses:   model.Statuses,
		CancelURL:  render.TabURL(d.Kind),
	}
	if d.IsEdit() {
		data.Action = render.RecordURL(d.Kind, d.ID)
		data.Heading = "Edit " + singular(d.Kind)
		data.Submit = "Update"
	} else {
		data.Action = render.TabURL(d.Kind)
		data.Heading = "Add New " + singular(d.Kind)
		data.Submit = "Create"
	}
	h.render(w, r, status, templateForm, data.Heading, d.Kind, data)
}

func (h *PortfolioHandler) render(w http.ResponseWriter, r *http.Request, status int, name, title string, kind model.Kind, data any) {
	if err := h.renderer.RenderStatus(w, r, status, name, render.TemplateData{
		Title:     title,
		ActiveTab: kind.Tab(),
		Data:      data,
	}); err != nil {
		logAndInternalError(w, "failed to render template", "template", name, "error", err)
	}
}

func (h *PortfolioHandler) tabs(active model.Kind) []TabLink {
	tabs := make([]TabLink, 0, len(model.Kinds))
	for _, k := range model.Kinds {
		tabs = append(tabs, TabLink{
			Kind:   k,
			Label:  k.Label(),
			URL:    render.TabURL(k),
			Count:  len(h.store.Items(k)),
			Active: k == active,
		})
	}
	return tabs
}
