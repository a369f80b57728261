package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/noah-isme/formation-api/internal/dto"
	"github.com/noah-isme/formation-api/internal/observability"
)

const changeBufferSize = 32

// ChangeFeed fans out change events to local websocket subscribers and to the
// other API nodes through redis pub/sub and NATS.
type ChangeFeed interface {
	ChangeNotifier
	Subscribe() (<-chan dto.ChangeEvent, func())
	OnChange(hook func(ctx context.Context, event dto.ChangeEvent))
	Start(ctx context.Context)
}

type changeFeed struct {
	redis       *redis.Client
	redisTopic  string
	nats        *nats.Conn
	natsSubject string
	logger      zerolog.Logger
	nodeID      string
	now         func() time.Time

	mu          sync.RWMutex
	subscribers map[chan dto.ChangeEvent]struct{}
	hooks       []func(ctx context.Context, event dto.ChangeEvent)

	seenMu sync.Mutex
	seen   map[string]time.Time
}

// NewChangeFeed constructs the change feed. Nil redis or NATS clients disable that transport.
func NewChangeFeed(redisClient *redis.Client, natsConn *nats.Conn, channelBase string, logger zerolog.Logger) ChangeFeed {
	topic := ""
	subject := ""
	if channelBase != "" {
		topic = channelBase + ":changes"
		subject = strings.ReplaceAll(channelBase, ":", ".") + ".changes"
	}

	return &changeFeed{
		redis:       redisClient,
		redisTopic:  topic,
		nats:        natsConn,
		natsSubject: subject,
		logger:      logger.With().Str("component", "change_feed").Logger(),
		nodeID:      uuid.NewString(),
		now:         time.Now,
		subscribers: make(map[chan dto.ChangeEvent]struct{}),
		seen:        make(map[string]time.Time),
	}
}

func (f *changeFeed) Start(ctx context.Context) {
	if f.redis != nil && f.redisTopic != "" {
		go f.consumeRedis(ctx)
	}
	if f.nats != nil && f.natsSubject != "" {
		f.consumeNATS(ctx)
	}
}

func (f *changeFeed) Notify(ctx context.Context, resource, action string, entityID uint) {
	event := dto.ChangeEvent{
		ID:       uuid.NewString(),
		Resource: resource,
		Action:   action,
		EntityID: entityID,
		NodeID:   f.nodeID,
		At:       f.now().UTC(),
	}

	f.dispatch(ctx, event)
	if err := f.publish(ctx, event); err != nil {
		f.logger.Warn().Err(err).Str("resource", resource).Msg("failed to publish change event")
	}
}

func (f *changeFeed) OnChange(hook func(ctx context.Context, event dto.ChangeEvent)) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.hooks = append(f.hooks, hook)
}

func (f *changeFeed) Subscribe() (<-chan dto.ChangeEvent, func()) {
	channel := make(chan dto.ChangeEvent, changeBufferSize)

	f.mu.Lock()
	f.subscribers[channel] = struct{}{}
	f.mu.Unlock()
	observability.EventSubscribers().Inc()

	var once sync.Once
	cleanup := func() {
		once.Do(func() {
			f.mu.Lock()
			delete(f.subscribers, channel)
			close(channel)
			f.mu.Unlock()
			observability.EventSubscribers().Dec()
		})
	}

	return channel, cleanup
}

func (f *changeFeed) dispatch(ctx context.Context, event dto.ChangeEvent) {
	f.mu.RLock()
	hooks := append([]func(context.Context, dto.ChangeEvent){}, f.hooks...)
	for ch := range f.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
	f.mu.RUnlock()

	for _, hook := range hooks {
		hook(ctx, event)
	}
}

func (f *changeFeed) publish(ctx context.Context, event dto.ChangeEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if f.redis != nil && f.redisTopic != "" {
		if err := f.redis.Publish(ctx, f.redisTopic, payload).Err(); err != nil {
			return err
		}
		observability.EventsPublished().WithLabelValues("redis").Inc()
	}

	if f.nats != nil && f.natsSubject != "" {
		if err := f.nats.Publish(f.natsSubject, payload); err != nil {
			return err
		}
		observability.EventsPublished().WithLabelValues("nats").Inc()
	}

	return nil
}

func (f *changeFeed) consumeRedis(ctx context.Context) {
	pubsub := f.redis.Subscribe(ctx, f.redisTopic)
	defer func() { _ = pubsub.Close() }()

	for {
		msg, err := pubsub.ReceiveMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) || errors.Is(err, redis.ErrClosed) {
				return
			}
			f.logger.Error().Err(err).Msg("change feed redis subscription closed")
			return
		}
		f.handleRemote(ctx, []byte(msg.Payload))
	}
}

func (f *changeFeed) consumeNATS(ctx context.Context) {
	sub, err := f.nats.Subscribe(f.natsSubject, func(msg *nats.Msg) {
		f.handleRemote(ctx, msg.Data)
	})
	if err != nil {
		f.logger.Error().Err(err).Msg("failed to subscribe to nats change subject")
		return
	}

	go func() {
		<-ctx.Done()
		if err := sub.Drain(); err != nil {
			f.logger.Warn().Err(err).Msg("failed to drain change feed nats subscription")
		}
	}()
}

// handleRemote delivers events published by other nodes. Redis and NATS may
// both carry the same event, so duplicates are dropped by event id.
func (f *changeFeed) handleRemote(ctx context.Context, payload []byte) {
	var event dto.ChangeEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		f.logger.Warn().Err(err).Msg("invalid change event payload")
		return
	}
	if event.NodeID == f.nodeID {
		return
	}
	if !f.markSeen(event.ID) {
		return
	}

	f.dispatch(ctx, event)
}

func (f *changeFeed) markSeen(id string) bool {
	if id == "" {
		return true
	}

	f.seenMu.Lock()
	defer f.seenMu.Unlock()

	now := f.now()
	for key, at := range f.seen {
		if now.Sub(at) > time.Minute {
			delete(f.seen, key)
		}
	}
	if _, ok := f.seen[id]; ok {
		return false
	}
	f.seen[id] = now
	return true
}
