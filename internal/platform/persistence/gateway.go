// Package persistence exposes typed reads and writes over a kv.Store. Reads
// never fail: an absent or unparsable value yields the caller's default.
// Writes are best effort and failures are logged, not returned.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"studytracker/internal/platform/kv"
)

type Gateway struct {
	store  kv.Store
	logger *slog.Logger
}

func New(store kv.Store, logger *slog.Logger) *Gateway {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gateway{store: store, logger: logger.With(slog.String("component", "persistence"))}
}

// Raw returns the stored text for key and whether it was present.
func (g *Gateway) Raw(ctx context.Context, key string) (string, bool) {
	value, err := g.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			g.logger.Warn("read failed", slog.String("key", key), slog.Any("error", err))
		}
		return "", false
	}
	return value, true
}

func (g *Gateway) String(ctx context.Context, key, def string) string {
	value, ok := g.Raw(ctx, key)
	if !ok || value == "" {
		return def
	}
	return value
}

func (g *Gateway) Int(ctx context.Context, key string, def int) int {
	value, ok := g.Raw(ctx, key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		// Fractional text such as "90.0" is truncated.
		f, ferr := strconv.ParseFloat(strings.TrimSpace(value), 64)
		if ferr != nil {
			g.parseFailed(key, err)
			return def
		}
		return int(f)
	}
	return n
}

func (g *Gateway) Float(ctx context.Context, key string, def float64) float64 {
	value, ok := g.Raw(ctx, key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		g.parseFailed(key, err)
		return def
	}
	return f
}

func (g *Gateway) Bool(ctx context.Context, key string, def bool) bool {
	value, ok := g.Raw(ctx, key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(value))
	if err != nil {
		g.parseFailed(key, err)
		return def
	}
	return b
}

// LoadJSON decodes the JSON stored at key into a fresh T, or returns def.
func LoadJSON[T any](ctx context.Context, g *Gateway, key string, def T) T {
	value, ok := g.Raw(ctx, key)
	if !ok {
		return def
	}
	var out T
	if err := json.Unmarshal([]byte(value), &out); err != nil {
		g.parseFailed(key, err)
		return def
	}
	return out
}

func (g *Gateway) SaveJSON(ctx context.Context, key string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		g.logger.Error("encode failed", slog.String("key", key), slog.Any("error", err))
		return
	}
	g.SaveString(ctx, key, string(data))
}

func (g *Gateway) SaveString(ctx context.Context, key, value string) {
	if err := g.store.Set(ctx, key, value); err != nil {
		g.logger.Error("write failed", slog.String("key", key), slog.Any("error", err))
	}
}

func (g *Gateway) SaveInt(ctx context.Context, key string, value int) {
	g.SaveString(ctx, key, strconv.Itoa(value))
}

func (g *Gateway) SaveFloat(ctx context.Context, key string, value float64) {
	g.SaveString(ctx, key, strconv.FormatFloat(value, 'f', -1, 64))
}

func (g *Gateway) SaveBool(ctx context.Context, key string, value bool) {
	g.SaveString(ctx, key, strconv.FormatBool(value))
}

// ReplaceAll writes every value atomically. Unlike the Save methods it
// reports failure, since callers must know whether anything changed.
func (g *Gateway) ReplaceAll(ctx context.Context, values map[string]string) error {
	if err := g.store.SetMany(ctx, values); err != nil {
		return fmt.Errorf("replace values: %w", err)
	}
	return nil
}

// Clear removes every stored key.
func (g *Gateway) Clear(ctx context.Context) error {
	if err := g.store.Clear(ctx); err != nil {
		return fmt.Errorf("clear store: %w", err)
	}
	return nil
}

func (g *Gateway) parseFailed(key string, err error) {
	g.logger.Warn("stored value unreadable, using default", slog.String("key", key), slog.Any("error", err))
}
