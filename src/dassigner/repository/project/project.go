// Package project is the repository for the persisted project collection and the current project pointer.
package project

//go:generate mockgen -source=project.go -destination=projectmock/project_mock.go -package=projectmock

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"github.com/dassigner/studio/src/dassigner/entity"
	"github.com/dassigner/studio/src/dassigner/factory"
	"github.com/dassigner/studio/src/dassigner/internal/clock"
	"github.com/dassigner/studio/src/dassigner/internal/errors"
	"github.com/dassigner/studio/src/dassigner/internal/store"
	"github.com/dassigner/studio/src/dassigner/mapper"
	"github.com/dassigner/studio/src/dassigner/model"
	tally "github.com/uber-go/tally/v4"
	"go.uber.org/fx"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const (
	// ProjectsKey holds the project collection.
	ProjectsKey = "dassigner_projects"
	// CurrentProjectKey holds the id of the project that was active last.
	CurrentProjectKey = "dassigner_currentProjectId"
	// LegacySessionKey holds the single-session record that predates projects.
	LegacySessionKey = "dassigner_session"
)

// Module is the Fx module for this package.
var Module = fx.Provide(New)

// Repository is the only writer of the project collection.
type Repository interface {
	// List returns every decodable project in stored order.
	List(ctx context.Context) ([]*entity.Project, error)
	// Get returns the project with the given id, or a ProjectNotFoundError.
	Get(ctx context.Context, id string) (*entity.Project, error)
	// Upsert replaces the project with the same id, or prepends it.
	Upsert(ctx context.Context, p *entity.Project) error
	// Delete removes the project with the given id. Deleting an unknown id is not an error.
	Delete(ctx context.Context, id string) error
	// MigrateLegacy converts the legacy session record into a project and removes the record.
	// It returns nil when there was nothing to migrate.
	MigrateLegacy(ctx context.Context) (*entity.Project, error)
	// ResolveInitial returns the project named by the current pointer, else the most recent one, else nil.
	ResolveInitial(ctx context.Context) (*entity.Project, error)
	// CurrentID returns the current project pointer, or an empty string.
	CurrentID(ctx context.Context) (string, error)
	// SetCurrentID persists the current project pointer.
	SetCurrentID(ctx context.Context, id string) error
}

// Params are inbound parameters to initialize the repository.
type Params struct {
	fx.In

	Store  store.Store
	Clock  clock.Clock
	Logger *zap.SugaredLogger
	Stats  tally.Scope
}

type repository struct {
	mu     sync.Mutex
	store  store.Store
	clock  clock.Clock
	logger *zap.SugaredLogger
	stats  tally.Scope
}

// New returns a repository over the persistent store.
func New(p Params) Repository {
	return &repository{
		store:  p.Store,
		clock:  p.Clock,
		logger: p.Logger.With("repository", "project"),
		stats:  p.Stats.SubScope("project_repository"),
	}
}

func (r *repository) List(ctx context.Context) ([]*entity.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

func (r *repository) Get(ctx context.Context, id string) (*entity.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, &errors.ProjectNotFoundError{ID: id}
}

func (r *repository) Upsert(ctx context.Context, p *entity.Project) error {
	if p == nil {
		return errors.New("can't save nil project")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.load(ctx)
	if err != nil {
		return err
	}
	return r.save(ctx, upsert(projects, p))
}

func (r *repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	projects, err := r.load(ctx)
	if err != nil {
		return err
	}

	remaining := make([]*entity.Project, 0, len(projects))
	for _, p := range projects {
		if p.ID != id {
			remaining = append(remaining, p)
		}
	}
	if len(remaining) == len(projects) {
		return nil
	}
	return r.save(ctx, remaining)
}

func (r *repository) MigrateLegacy(ctx context.Context) (*entity.Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	data, err := r.store.Get(ctx, LegacySessionKey)
	if _, ok := errors.NotFoundKey(err); ok {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	migrated, err := r.legacyToProject(data)
	if err != nil {
		r.logger.Warnw("discarding unreadable legacy session", zap.Error(err))
		r.stats.Counter("legacy_discarded").Inc(1)
	}

	if migrated != nil {
		projects, err := r.load(ctx)
		if err != nil {
			return nil, err
		}
		if existing := findMigrated(projects, migrated); existing != nil {
			// An earlier run saved the project but could not remove the legacy record.
			r.logger.Infow("legacy session already migrated", "id", existing.ID)
			migrated = existing
		} else {
			if err := r.save(ctx, append([]*entity.Project{migrated}, projects...)); err != nil {
				return nil, err
			}
			r.logger.Infow("migrated legacy session", "id", migrated.ID, "versions", len(migrated.History))
			r.stats.Counter("legacy_migrated").Inc(1)
		}
	}

	if err := r.store.Delete(ctx, LegacySessionKey); err != nil {
		return nil, err
	}
	return migrated, nil
}

func (r *repository) ResolveInitial(ctx context.Context) (*entity.Project, error) {
	currentID, err := r.CurrentID(ctx)
	if err != nil {
		return nil, err
	}
	projects, err := r.List(ctx)
	if err != nil {
		return nil, err
	}

	for _, p := range projects {
		if p.ID == currentID {
			return p, nil
		}
	}
	return entity.MostRecent(projects), nil
}

func (r *repository) CurrentID(ctx context.Context) (string, error) {
	data, err := r.store.Get(ctx, CurrentProjectKey)
	if _, ok := errors.NotFoundKey(err); ok {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *repository) SetCurrentID(ctx context.Context, id string) error {
	return r.store.Set(ctx, CurrentProjectKey, []byte(id))
}

// load reads the collection. Unreadable data is logged and treated as absent so that startup is never blocked.
func (r *repository) load(ctx context.Context) ([]*entity.Project, error) {
	data, err := r.store.Get(ctx, ProjectsKey)
	if _, ok := errors.NotFoundKey(err); ok {
		return []*entity.Project{}, nil
	}
	if err != nil {
		return nil, err
	}

	collection, err := model.DecodeProjectCollection(data)
	if err != nil {
		r.logger.Warnw("discarding unreadable project collection", zap.Error(&errors.DataError{Key: ProjectsKey, Err: err}))
		r.stats.Counter("collection_discarded").Inc(1)
		return []*entity.Project{}, nil
	}

	projects := make([]*entity.Project, 0, len(collection.Projects))
	seen := make(map[string]struct{}, len(collection.Projects))
	var decodeErr error
	for _, m := range collection.Projects {
		p, err := mapper.ModelToProject(m)
		if err != nil {
			decodeErr = multierr.Append(decodeErr, err)
			continue
		}
		if _, ok := seen[p.ID]; ok {
			decodeErr = multierr.Append(decodeErr, fmt.Errorf("duplicate project id %q", p.ID))
			continue
		}
		seen[p.ID] = struct{}{}
		projects = append(projects, p)
	}
	if decodeErr != nil {
		dropped := len(multierr.Errors(decodeErr))
		r.logger.Warnw("discarding unreadable projects", "dropped", dropped, zap.Error(&errors.DataError{Key: ProjectsKey, Err: decodeErr}))
		r.stats.Counter("projects_discarded").Inc(int64(dropped))
	}
	if collection.SchemaVersion < model.ProjectCollectionSchemaVersion {
		r.logger.Infow("project collection will be upgraded on next write", "from", collection.SchemaVersion, "to", model.ProjectCollectionSchemaVersion)
	}
	return projects, nil
}

func (r *repository) save(ctx context.Context, projects []*entity.Project) error {
	records := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		records = append(records, mapper.ProjectToModel(p))
	}

	data, err := model.EncodeProjectCollection(records)
	if err != nil {
		return &errors.StorageError{Key: ProjectsKey, Err: err}
	}
	if err := r.store.Set(ctx, ProjectsKey, data); err != nil {
		return err
	}
	r.stats.Gauge("projects").Update(float64(len(projects)))
	return nil
}

// legacyToProject returns nil with no error when the record holds no history.
func (r *repository) legacyToProject(data []byte) (*entity.Project, error) {
	session, err := model.DecodeLegacySession(data)
	if err != nil {
		return nil, &errors.DataError{Key: LegacySessionKey, Err: err}
	}
	if len(session.History) == 0 {
		return nil, nil
	}

	now := r.clock.Now()
	p, err := mapper.LegacySessionToProject(*session, factory.MigratedProjectID(now), now)
	if err != nil {
		return nil, &errors.DataError{Key: LegacySessionKey, Err: err}
	}
	return p, nil
}

// findMigrated returns the project a previous migration of the same legacy history produced.
func findMigrated(projects []*entity.Project, migrated *entity.Project) *entity.Project {
	for _, p := range projects {
		if factory.IsMigratedProjectID(p.ID) && slices.Equal(p.History, migrated.History) {
			return p
		}
	}
	return nil
}

func upsert(projects []*entity.Project, p *entity.Project) []*entity.Project {
	for i := range projects {
		if projects[i].ID == p.ID {
			updated := make([]*entity.Project, len(projects))
			copy(updated, projects)
			updated[i] = p
			return updated
		}
	}
	return append([]*entity.Project{p}, projects...)
}
