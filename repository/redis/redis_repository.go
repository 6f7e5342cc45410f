package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/muhammadheryan/e-voting/model"
)

// Repository defines methods for interacting with Redis key-values
type Repository interface {
	Get(ctx context.Context, key string) (string, error)
	SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error
	GetSession(ctx context.Context, sessionID string) (uint64, error)
	DeleteSession(ctx context.Context, sessionID string) error
	SetSelection(ctx context.Context, sessionID string, state *model.SelectionState, ttl time.Duration) error
	GetSelection(ctx context.Context, sessionID string) (*model.SelectionState, error)
	UpdateSelection(ctx context.Context, sessionID string, ttl time.Duration, fn SelectionUpdateFunc) error
	SetPaymentAttempt(ctx context.Context, attempt *model.PaymentAttempt, ttl time.Duration) error
	GetPaymentAttempt(ctx context.Context, reference string) (*model.PaymentAttempt, error)
	DeletePaymentAttempt(ctx context.Context, reference string) error
}

// ErrNotFound is returned when a key does not exist.
var ErrNotFound = errors.New("redis: key not found")

// ErrConflict is returned when a watched key kept changing across every retry.
var ErrConflict = errors.New("redis: concurrent update")

// SelectionUpdateFunc receives the stored selection (nil when absent) and
// returns the state to write, or nil to leave the key untouched.
type SelectionUpdateFunc func(current *model.SelectionState) (*model.SelectionState, error)

const maxUpdateRetries = 5

type redis struct {
	client *goredis.Client
}

// NewRepository returns a Redis Repository implementation
func NewRepository(client *goredis.Client) Repository {
	return &redis{client: client}
}

func sessionKey(sessionID string) string   { return "session:" + sessionID }
func selectionKey(sessionID string) string { return "selection:" + sessionID }
func paymentKey(reference string) string   { return "payment:" + reference }

// Get retrieves a value by key from Redis; a missing key yields ErrNotFound.
func (r *redis) Get(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return "", ErrNotFound
		}
		return "", err
	}
	return val, nil
}

// SetWithTTL stores a key/value pair with time-to-live
func (r *redis) SetWithTTL(ctx context.Context, key, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

// Delete removes a key from Redis
func (r *redis) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

// SetSession stores a session with userID and TTL
func (r *redis) SetSession(ctx context.Context, sessionID string, userID uint64, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(sessionID), userID, ttl).Err()
}

// GetSession retrieves userID from session
func (r *redis) GetSession(ctx context.Context, sessionID string) (uint64, error) {
	val, err := r.client.Get(ctx, sessionKey(sessionID)).Uint64()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, ErrNotFound
		}
		return 0, err
	}
	return val, nil
}

// DeleteSession removes a session and its selection state from Redis
func (r *redis) DeleteSession(ctx context.Context, sessionID string) error {
	return r.client.Del(ctx, sessionKey(sessionID), selectionKey(sessionID)).Err()
}

func (r *redis) SetSelection(ctx context.Context, sessionID string, state *model.SelectionState, ttl time.Duration) error {
	return r.setJSON(ctx, selectionKey(sessionID), state, ttl)
}

// GetSelection returns the stored selection, or nil when the session has none yet.
func (r *redis) GetSelection(ctx context.Context, sessionID string) (*model.SelectionState, error) {
	var state model.SelectionState
	found, err := r.getJSON(ctx, selectionKey(sessionID), &state)
	if err != nil || !found {
		return nil, err
	}
	return &state, nil
}

// UpdateSelection applies fn to the stored selection under WATCH, so a write
// only lands if the key did not change since it was read.
func (r *redis) UpdateSelection(ctx context.Context, sessionID string, ttl time.Duration, fn SelectionUpdateFunc) error {
	key := selectionKey(sessionID)

	txf := func(tx *goredis.Tx) error {
		var current *model.SelectionState
		b, err := tx.Get(ctx, key).Bytes()
		switch {
		case errors.Is(err, goredis.Nil):
		case err != nil:
			return err
		default:
			current = &model.SelectionState{}
			if err := json.Unmarshal(b, current); err != nil {
				return err
			}
		}

		next, err := fn(current)
		if err != nil || next == nil {
			return err
		}
		data, err := json.Marshal(next)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
			pipe.Set(ctx, key, data, ttl)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.client.Watch(ctx, txf, key)
		if !errors.Is(err, goredis.TxFailedErr) {
			return err
		}
	}
	return ErrConflict
}

func (r *redis) SetPaymentAttempt(ctx context.Context, attempt *model.PaymentAttempt, ttl time.Duration) error {
	return r.setJSON(ctx, paymentKey(attempt.Reference), attempt, ttl)
}

// GetPaymentAttempt returns the attempt for reference, or nil when unknown or expired.
func (r *redis) GetPaymentAttempt(ctx context.Context, reference string) (*model.PaymentAttempt, error) {
	var attempt model.PaymentAttempt
	found, err := r.getJSON(ctx, paymentKey(reference), &attempt)
	if err != nil || !found {
		return nil, err
	}
	return &attempt, nil
}

func (r *redis) DeletePaymentAttempt(ctx context.Context, reference string) error {
	return r.client.Del(ctx, paymentKey(reference)).Err()
}

func (r *redis) setJSON(ctx context.Context, key string, v any, ttl time.Duration) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, b, ttl).Err()
}

func (r *redis) getJSON(ctx context.Context, key string, v any) (bool, error) {
	b, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, err
	}
	if err := json.Unmarshal(b, v); err != nil {
		return false, err
	}
	return true, nil
}
