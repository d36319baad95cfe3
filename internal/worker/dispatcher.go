package worker

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sebastianArmero/TiendaGeyaseBackend-sub001/internal/infra"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	DefaultQueueEstadisticas = "jobs:estadisticas"

	JobTypeEstadisticas = "estadisticas"
)

// Job is the generic envelope for everything pushed to a Redis queue.
type Job struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher enqueues statistics snapshots into a Redis list.
// The reporting side dequeues them with BRPOP, so LPUSH keeps FIFO order.
// Pushes go through a circuit breaker so a Redis outage fails fast.
type Dispatcher struct {
	rdb   *redis.Client
	queue string
	cb    *infra.CircuitBreaker
}

func NewDispatcher(rdb *redis.Client, queue string, cb *infra.CircuitBreaker) *Dispatcher {
	if queue == "" {
		queue = DefaultQueueEstadisticas
	}
	if cb == nil {
		cb = infra.NewCircuitBreaker(infra.DefaultCBConfig())
	}
	return &Dispatcher{rdb: rdb, queue: queue, cb: cb}
}

// Queue returns the Redis key snapshots are pushed to.
func (d *Dispatcher) Queue() string { return d.queue }

// EnqueueEstadisticas pushes a snapshot job to Redis.
func (d *Dispatcher) EnqueueEstadisticas(ctx context.Context, payload interface{}) error {
	encoded, err := EncodeJob(JobTypeEstadisticas, payload)
	if err != nil {
		return err
	}
	err = d.cb.Execute(func() error {
		return d.rdb.LPush(ctx, d.queue, encoded).Err()
	})
	if err != nil {
		return fmt.Errorf("lpush %s: %w", d.queue, err)
	}
	log.Debug().Str("queue", d.queue).Int("bytes", len(encoded)).Msg("snapshot enqueued")
	return nil
}

// BreakerState is exposed for the health endpoint.
func (d *Dispatcher) BreakerState() infra.CBState { return d.cb.State() }

// Pending returns how many snapshots are waiting to be consumed.
func (d *Dispatcher) Pending(ctx context.Context) (int64, error) {
	return d.rdb.LLen(ctx, d.queue).Result()
}

// EncodeJob marshals payload and wraps it in a Job envelope.
func EncodeJob(jobType string, payload interface{}) ([]byte, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal %s payload: %w", jobType, err)
	}
	return json.Marshal(Job{Type: jobType, Payload: data})
}

// DecodeJob is the inverse of EncodeJob; consumers use it to unwrap queue entries.
func DecodeJob(raw []byte, payload interface{}) (string, error) {
	var job Job
	if err := json.Unmarshal(raw, &job); err != nil {
		return "", fmt.Errorf("unmarshal job: %w", err)
	}
	if err := json.Unmarshal(job.Payload, payload); err != nil {
		return job.Type, fmt.Errorf("unmarshal %s payload: %w", job.Type, err)
	}
	return job.Type, nil
}
