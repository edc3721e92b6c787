// Copyright (c) 2025-2026 Oleg Ivanchenko
// SPDX-License-Identifier: GPL-3.0-or-later

// Package store holds the in-memory portfolio collections and keeps the
// project collection in step with the remote API.
package store

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/olegiv/portfolio-go/internal/apiclient"
	"github.com/olegiv/portfolio-go/internal/model"
)

// Backend is the remote source of truth. *apiclient.Client implements it.
type Backend interface {
	ListProjects(ctx context.Context) ([]model.Project, error)
	CreateProject(ctx context.Context, p model.Project) (model.Project, error)
	UpdateProject(ctx context.Context, id model.ID, p model.Project) (model.Project, error)
	DeleteProject(ctx context.Context, id model.ID) error
	ListCertificates(ctx context.Context) ([]model.Certificate, error)
	ListAccomplishments(ctx context.Context) ([]model.Accomplishment, error)
}

// LoadStatus describes the most recent fetch of one collection.
type LoadStatus struct {
	Kind      model.Kind
	Attempted bool
	LoadedAt  time.Time // last successful fetch
	Count     int
	Err       string // error of the last attempt, if it failed
}

// State is a copy of all three collections.
type State struct {
	Projects        []model.Project
	Certificates    []model.Certificate
	Accomplishments []model.Accomplishment
	Loaded          bool // the first LoadAll has finished
}

// Items returns the collection of the given kind as Items.
func (st State) Items(kind model.Kind) []model.Item {
	switch kind {
	case model.KindProject:
		return asItems(st.Projects)
	case model.KindCertificate:
		return asItems(st.Certificates)
	case model.KindAccomplishment:
		return asItems(st.Accomplishments)
	}
	return nil
}

// Store owns the three collections. All reads return copies; all writes go
// through its methods.
type Store struct {
	backend Backend
	logger  *slog.Logger
	newID   func() model.ID
	now     func() time.Time

	mu              sync.RWMutex
	projects        []model.Project
	certificates    []model.Certificate
	accomplishments []model.Accomplishment
	loaded          bool
	loads           map[model.Kind]LoadStatus

	inflight *tracker
}

// Option configures a Store.
type Option func(*Store)

// WithIDGenerator replaces the generator of client-side ids.
func WithIDGenerator(fn func() model.ID) Option {
	return func(s *Store) {
		s.newID = fn
	}
}

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// New creates an empty Store backed by backend.
func New(backend Backend, logger *slog.Logger, opts ...Option) *Store {
	s := &Store{
		backend: backend,
		logger:  logger,
		newID:   newLocalID,
		now:     time.Now,
		loads:   make(map[model.Kind]LoadStatus, len(model.Kinds)),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.inflight = newTracker(s.now)
	return s
}

// newLocalID returns a time-ordered UUIDv7 for records that have no
// server-assigned id.
func newLocalID() model.ID {
	id, err := uuid.NewV7()
	if err != nil {
		return model.ID(uuid.NewString())
	}
	return model.ID(id.String())
}

// =============================================================================
// LOADING
// =============================================================================

// LoadAll fetches the three collections concurrently. Each collection that
// loads is replaced wholesale; one that fails keeps its current contents.
// The returned error joins the individual failures.
func (s *Store) LoadAll(ctx context.Context) error {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		errs []error
	)
	for _, kind := range model.Kinds {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := s.Load(ctx, kind); err != nil {
				mu.Lock()
				errs = append(errs, err)
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.mu.Lock()
	s.loaded = true
	s.mu.Unlock()

	return errors.Join(errs...)
}

// Load fetches a single collection. Failures are logged and leave the
// collection untouched.
func (s *Store) Load(ctx context.Context, kind model.Kind) error {
	var (
		count int
		err   error
	)
	switch kind {
	case model.KindProject:
		var items []model.Project
		if items, err = s.backend.ListProjects(ctx); err == nil {
			s.mu.Lock()
			s.projects = cloneProjects(items)
			s.mu.Unlock()
			count = len(items)
		}
	case model.KindCertificate:
		var items []model.Certificate
		if items, err = s.backend.ListCertificates(ctx); err == nil {
			s.mu.Lock()
			s.certificates = slices.Clone(items)
			s.mu.Unlock()
			count = len(items)
		}
	case model.KindAccomplishment:
		var items []model.Accomplishment
		if items, err = s.backend.ListAccomplishments(ctx); err == nil {
			s.mu.Lock()
			s.accomplishments = slices.Clone(items)
			s.mu.Unlock()
			count = len(items)
		}
	default:
		return fmt.Errorf("loading %q: %w", kind, ErrKindMismatch)
	}

	s.recordLoad(kind, count, err)
	if err != nil {
		s.logger.Error("failed to load collection", "kind", kind, "error", err)
		return fmt.Errorf("loading %s: %w", kind.Tab(), err)
	}
	s.logger.Debug("collection loaded", "kind", kind, "count", count)
	return nil
}

func (s *Store) recordLoad(kind model.Kind, count int, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := s.loads[kind]
	st.Kind = kind
	st.Attempted = true
	if err != nil {
		st.Err = err.Error()
	} else {
		st.Err = ""
		st.Count = count
		st.LoadedAt = s.now()
	}
	s.loads[kind] = st
}

// LoadStatuses returns the last load status of every collection in tab order.
func (s *Store) LoadStatuses() []LoadStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]LoadStatus, 0, len(model.Kinds))
	for _, kind := range model.Kinds {
		st := s.loads[kind]
		st.Kind = kind
		out = append(out, st)
	}
	return out
}

// Loaded reports whether the first LoadAll has finished.
func (s *Store) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// =============================================================================
// READS
// =============================================================================

// Snapshot returns a copy of every collection.
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return State{
		Projects:        cloneProjects(s.projects),
		Certificates:    slices.Clone(s.certificates),
		Accomplishments: slices.Clone(s.accomplishments),
		Loaded:          s.loaded,
	}
}

// Items returns a copy of one collection.
func (s *Store) Items(kind model.Kind) []model.Item {
	return s.Snapshot().Items(kind)
}

// Find returns the record of the given kind and id.
func (s *Store) Find(kind model.Kind, id model.ID) (model.Item, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch kind {
	case model.KindProject:
		if i := indexOf(s.projects, id); i >= 0 {
			return s.projects[i].Clone(), true
		}
	case model.KindCertificate:
		if i := indexOf(s.certificates, id); i >= 0 {
			return s.certificates[i], true
		}
	case model.KindAccomplishment:
		if i := indexOf(s.accomplishments, id); i >= 0 {
			return s.accomplishments[i], true
		}
	}
	return nil, false
}

// InFlight reports whether a mutation of the record is outstanding.
func (s *Store) InFlight(kind model.Kind, id model.ID) bool {
	return s.inflight.inFlight(recordKey(kind, id))
}

// =============================================================================
// MUTATIONS
// =============================================================================

// Create adds item to its collection. Projects are created remotely and the
// server's record (with its id) is appended; other kinds get a client-side
// id and are appended immediately. A non-empty token identifies the form
// submission so that a repeated submission creates nothing.
func (s *Store) Create(ctx context.Context, token string, item model.Item) (model.Item, error) {
	switch v := item.(type) {
	case model.Project:
		return asItem[model.Project](s.CreateProject(ctx, token, v))
	case model.Certificate:
		return asItem[model.Certificate](s.CreateCertificate(token, v))
	case model.Accomplishment:
		return asItem[model.Accomplishment](s.CreateAccomplishment(token, v))
	}
	return nil, fmt.Errorf("creating %T: %w", item, ErrKindMismatch)
}

// Update replaces the record with the given id, keeping that id.
func (s *Store) Update(ctx context.Context, id model.ID, item model.Item) (model.Item, error) {
	switch v := item.(type) {
	case model.Project:
		return asItem[model.Project](s.UpdateProject(ctx, id, v))
	case model.Certificate:
		return asItem[model.Certificate](s.UpdateCertificate(id, v))
	case model.Accomplishment:
		return asItem[model.Accomplishment](s.UpdateAccomplishment(id, v))
	}
	return nil, fmt.Errorf("updating %T: %w", item, ErrKindMismatch)
}

// Delete removes the record with the given id. For projects the local copy
// is removed only after the API confirms the delete.
func (s *Store) Delete(ctx context.Context, kind model.Kind, id model.ID) error {
	switch kind {
	case model.KindProject:
		return s.DeleteProject(ctx, id)
	case model.KindCertificate:
		return deleteLocal(s, kind, id, &s.certificates)
	case model.KindAccomplishment:
		return deleteLocal(s, kind, id, &s.accomplishments)
	}
	return fmt.Errorf("deleting %q: %w", kind, ErrKindMismatch)
}

// CreateProject creates p remotely and appends the server's record.
// On failure nothing changes locally.
func (s *Store) CreateProject(ctx context.Context, token string, p model.Project) (model.Project, error) {
	key := createKey(model.KindProject, token)
	release, err := s.inflight.begin(key)
	if err != nil {
		return model.Project{}, err
	}
	defer release()

	created, err := s.backend.CreateProject(ctx, p)
	if err != nil {
		s.logger.Error("failed to create project", "title", p.Title, "error", err)
		return model.Project{}, fmt.Errorf("creating project: %w", err)
	}

	s.mu.Lock()
	s.projects = upsertProject(s.projects, created.Clone())
	s.mu.Unlock()
	s.inflight.markSubmitted(key)

	s.logger.Info("project created", "id", created.ID, "title", created.Title)
	return created, nil
}

// UpdateProject updates the project remotely and replaces the local copy
// with the server's response. On failure nothing changes locally.
func (s *Store) UpdateProject(ctx context.Context, id model.ID, p model.Project) (model.Project, error) {
	if _, ok := s.Find(model.KindProject, id); !ok {
		return model.Project{}, ErrNotFound
	}

	release, err := s.inflight.begin(recordKey(model.KindProject, id))
	if err != nil {
		return model.Project{}, err
	}
	defer release()

	updated, err := s.backend.UpdateProject(ctx, id, p)
	if err != nil {
		s.logger.Error("failed to update project", "id", id, "error", err)
		return model.Project{}, fmt.Errorf("updating project %s: %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	updated.ID = id
	s.projects = upsertProject(s.projects, updated.Clone())

	s.logger.Info("project updated", "id", id)
	return updated, nil
}

// DeleteProject deletes the project remotely and then locally. A 404 from
// the API counts as confirmation. Any other failure keeps the local copy.
func (s *Store) DeleteProject(ctx context.Context, id model.ID) error {
	if _, ok := s.Find(model.KindProject, id); !ok {
		return ErrNotFound
	}

	release, err := s.inflight.begin(recordKey(model.KindProject, id))
	if err != nil {
		return err
	}
	defer release()

	if err := s.backend.DeleteProject(ctx, id); err != nil {
		if !apiclient.IsNotFound(err) {
			s.logger.Error("failed to delete project", "id", id, "error", err)
			return fmt.Errorf("deleting project %s: %w", id, err)
		}
		s.logger.Warn("project already absent on backend", "id", id)
	}

	s.mu.Lock()
	s.projects = slices.DeleteFunc(s.projects, func(p model.Project) bool { return p.ID == id })
	s.mu.Unlock()

	s.logger.Info("project deleted", "id", id)
	return nil
}

// CreateCertificate appends c with a fresh client-side id.
func (s *Store) CreateCertificate(token string, c model.Certificate) (model.Certificate, error) {
	return createLocal(s, model.KindCertificate, token, c, &s.certificates, func(c *model.Certificate, id model.ID) { c.ID = id })
}

// UpdateCertificate replaces the certificate with the given id.
func (s *Store) UpdateCertificate(id model.ID, c model.Certificate) (model.Certificate, error) {
	c.ID = id
	return updateLocal(s, model.KindCertificate, id, c, &s.certificates)
}

// CreateAccomplishment appends a with a fresh client-side id.
func (s *Store) CreateAccomplishment(token string, a model.Accomplishment) (model.Accomplishment, error) {
	return createLocal(s, model.KindAccomplishment, token, a, &s.accomplishments, func(a *model.Accomplishment, id model.ID) { a.ID = id })
}

// UpdateAccomplishment replaces the accomplishment with the given id.
func (s *Store) UpdateAccomplishment(id model.ID, a model.Accomplishment) (model.Accomplishment, error) {
	a.ID = id
	return updateLocal(s, model.KindAccomplishment, id, a, &s.accomplishments)
}

// =============================================================================
// HELPERS
// =============================================================================

func createLocal[T model.Item](s *Store, kind model.Kind, token string, item T, list *[]T, setID func(*T, model.ID)) (T, error) {
	var zero T
	key := createKey(kind, token)
	release, err := s.inflight.begin(key)
	if err != nil {
		return zero, err
	}
	defer release()

	s.mu.Lock()
	id := s.newID()
	for id.IsZero() || indexOf(*list, id) >= 0 {
		id = s.newID()
	}
	setID(&item, id)
	*list = append(*list, item)
	s.mu.Unlock()
	s.inflight.markSubmitted(key)

	s.logger.Info("session record created", "kind", kind, "id", id)
	return item, nil
}

func updateLocal[T model.Item](s *Store, kind model.Kind, id model.ID, item T, list *[]T) (T, error) {
	var zero T
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(*list, id)
	if i < 0 {
		return zero, ErrNotFound
	}
	(*list)[i] = item

	s.logger.Info("session record updated", "kind", kind, "id", id)
	return item, nil
}

func deleteLocal[T model.Item](s *Store, kind model.Kind, id model.ID, list *[]T) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := indexOf(*list, id)
	if i < 0 {
		return ErrNotFound
	}
	*list = slices.Delete(*list, i, i+1)

	s.logger.Info("session record deleted", "kind", kind, "id", id)
	return nil
}

// asItem converts a typed mutation result to an Item result.
func asItem[T model.Item](item T, err error) (model.Item, error) {
	if err != nil {
		return nil, err
	}
	return item, nil
}

// upsertProject replaces the project with p's id, or appends p. A reload
// that finished during the remote call may already hold the record.
func upsertProject(projects []model.Project, p model.Project) []model.Project {
	if i := indexOf(projects, p.ID); i >= 0 {
		projects[i] = p
		return projects
	}
	return append(projects, p)
}

func indexOf[T model.Item](items []T, id model.ID) int {
	return slices.IndexFunc(items, func(item T) bool { return item.ItemID() == id })
}

func asItems[T model.Item](items []T) []model.Item {
	out := make([]model.Item, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out
}

func cloneProjects(items []model.Project) []model.Project {
	if items == nil {
		return nil
	}
	out := make([]model.Project, len(items))
	for i, p := range items {
		out[i] = p.Clone()
	}
	return out
}

func recordKey(kind model.Kind, id model.ID) string {
	return string(kind) + ":" + id.String()
}

func createKey(kind model.Kind, token string) string {
	if token == "" {
		return ""
	}
	return string(kind) + ":new:" + token
}
