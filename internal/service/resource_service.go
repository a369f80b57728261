package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/observability"
	"github.com/noah-isme/formation-api/internal/repository"
)

// ChangeNotifier is told about every successful mutation.
type ChangeNotifier interface {
	Notify(ctx context.Context, resource, action string, entityID uint)
}

// ResourceDeps bundles the collaborators shared by every resource service.
type ResourceDeps struct {
	Validator *validator.Validate
	Logger    zerolog.Logger
	Recorder  ActivityRecorder
	Notifier  ChangeNotifier
}

// ResourceService exposes the CRUD lifecycle of a resource. C is the create and
// replace payload, U the partial update payload.
type ResourceService[T any, C any, U any] interface {
	List(ctx context.Context, filter repository.ListFilter) ([]T, error)
	Get(ctx context.Context, id uint) (T, error)
	Create(ctx context.Context, actor ActivityActor, payload C) (T, error)
	Replace(ctx context.Context, actor ActivityActor, id uint, payload C) (T, error)
	Update(ctx context.Context, actor ActivityActor, id uint, payload U) (T, error)
	Delete(ctx context.Context, actor ActivityActor, id uint) error
}

// resourceHooks carries the per-entity mapping between payloads and models.
type resourceHooks[T any, C any, U any] struct {
	name   string
	idOf   func(T) uint
	build  func(payload C) (T, error)
	apply  func(entity *T, payload U) error
	fields func(entity T) map[string]interface{}

	// optional
	check  func(ctx context.Context, id uint, entity T) error
	create func(ctx context.Context, entity *T) error
	get    func(ctx context.Context, id uint) (T, error)
	list   func(ctx context.Context, filter repository.ListFilter) ([]T, error)
}

type resourceService[T any, C any, U any] struct {
	repo      repository.CRUDRepository[T]
	hooks     resourceHooks[T, C, U]
	validator *validator.Validate
	logger    zerolog.Logger
	recorder  ActivityRecorder
	notifier  ChangeNotifier
}

func newResourceService[T any, C any, U any](repo repository.CRUDRepository[T], hooks resourceHooks[T, C, U], deps ResourceDeps) *resourceService[T, C, U] {
	return &resourceService[T, C, U]{
		repo:      repo,
		hooks:     hooks,
		validator: deps.Validator,
		logger:    deps.Logger.With().Str("component", hooks.name+"_service").Logger(),
		recorder:  deps.Recorder,
		notifier:  deps.Notifier,
	}
}

func (s *resourceService[T, C, U]) List(ctx context.Context, filter repository.ListFilter) ([]T, error) {
	if s.hooks.list != nil {
		return s.hooks.list(ctx, filter)
	}
	return s.repo.List(ctx, filter)
}

func (s *resourceService[T, C, U]) Get(ctx context.Context, id uint) (T, error) {
	var (
		entity T
		err    error
	)
	if s.hooks.get != nil {
		entity, err = s.hooks.get(ctx, id)
	} else {
		entity, err = s.repo.GetByID(ctx, id)
	}
	if err != nil {
		var zero T
		return zero, translateError(err)
	}
	return entity, nil
}

func (s *resourceService[T, C, U]) Create(ctx context.Context, actor ActivityActor, payload C) (T, error) {
	var zero T
	if err := s.validator.Struct(payload); err != nil {
		return zero, err
	}

	entity, err := s.hooks.build(payload)
	if err != nil {
		return zero, err
	}
	if s.hooks.check != nil {
		if err := s.hooks.check(ctx, 0, entity); err != nil {
			return zero, err
		}
	}

	create := s.repo.Create
	if s.hooks.create != nil {
		create = s.hooks.create
	}
	if err := create(ctx, &entity); err != nil {
		s.logger.Warn().Err(err).Msg("failed to create record")
		return zero, translateError(err)
	}

	s.afterMutation(ctx, actor, dto.ChangeCreated, s.hooks.idOf(entity), nil)
	return entity, nil
}

func (s *resourceService[T, C, U]) Replace(ctx context.Context, actor ActivityActor, id uint, payload C) (T, error) {
	var zero T
	if err := s.validator.Struct(payload); err != nil {
		return zero, err
	}
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return zero, translateError(err)
	}

	entity, err := s.hooks.build(payload)
	if err != nil {
		return zero, err
	}

	return s.persist(ctx, actor, id, entity, "replace")
}

func (s *resourceService[T, C, U]) Update(ctx context.Context, actor ActivityActor, id uint, payload U) (T, error) {
	var zero T
	if err := s.validator.Struct(payload); err != nil {
		return zero, err
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return zero, translateError(err)
	}
	if err := s.hooks.apply(&current, payload); err != nil {
		return zero, err
	}

	return s.persist(ctx, actor, id, current, "patch")
}

func (s *resourceService[T, C, U]) Delete(ctx context.Context, actor ActivityActor, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return translateError(err)
	}

	s.afterMutation(ctx, actor, dto.ChangeDeleted, id, nil)
	return nil
}

func (s *resourceService[T, C, U]) persist(ctx context.Context, actor ActivityActor, id uint, entity T, operation string) (T, error) {
	var zero T
	if s.hooks.check != nil {
		if err := s.hooks.check(ctx, id, entity); err != nil {
			return zero, err
		}
	}

	updated, err := s.repo.Update(ctx, id, s.hooks.fields(entity))
	if err != nil {
		s.logger.Warn().Err(err).Uint("id", id).Msg("failed to update record")
		return zero, translateError(err)
	}

	s.afterMutation(ctx, actor, dto.ChangeUpdated, id, map[string]interface{}{"operation": operation})
	if s.hooks.get != nil {
		if reloaded, err := s.hooks.get(ctx, id); err == nil {
			return reloaded, nil
		}
	}
	return updated, nil
}

func (s *resourceService[T, C, U]) afterMutation(ctx context.Context, actor ActivityActor, action string, id uint, metadata map[string]interface{}) {
	observability.Mutations().WithLabelValues(s.hooks.name, action).Inc()

	if s.recorder != nil {
		entityID := id
		entry := ActivityEntry{
			ActorID:    actor.ID,
			ActorRole:  actor.Role,
			Action:     action,
			EntityType: s.hooks.name,
			EntityID:   &entityID,
			Metadata:   metadata,
		}
		if _, err := s.recorder.Record(ctx, entry); err != nil {
			s.logger.Warn().Err(err).Msg("failed to record activity")
		}
	}

	if s.notifier != nil {
		s.notifier.Notify(ctx, s.hooks.name, action, id)
	}
}
