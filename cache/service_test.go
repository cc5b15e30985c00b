package cache

import (
	"context"
	"errors"
	"testing"
)

// mockTagCache records calls and lets tests drive the return path of the
// TagCacheService interface.
type mockTagCache struct {
	lastKey    string
	lastTags   []string
	result     any
	err        error
	runFetch   bool
	invalidate [][]string
}

func (m *mockTagCache) GetOrFetch(ctx context.Context, key string, tags []string, fetchFn any) (any, error) {
	m.lastKey = key
	m.lastTags = tags
	if m.runFetch {
		fn := fetchFn.(FetchFn[string])
		return fn(ctx)
	}
	return m.result, m.err
}

func (m *mockTagCache) InvalidateTags(ctx context.Context, tags ...string) error {
	m.invalidate = append(m.invalidate, tags)
	return nil
}

func (m *mockTagCache) Delete(ctx context.Context, key string) error {
	return nil
}

func TestGetOrFetchTypedWrapper(t *testing.T) {
	svc := &mockTagCache{result: "cached-value"}

	got, err := GetOrFetch(context.Background(), svc, "k", []string{"t"}, func(ctx context.Context) (string, error) {
		return "fresh", nil
	})
	if err != nil {
		t.Fatalf("GetOrFetch failed: %v", err)
	}
	if got != "cached-value" {
		t.Errorf("expected cached-value, got %q", got)
	}
	if svc.lastKey != "k" {
		t.Errorf("expected key k, got %q", svc.lastKey)
	}
	if len(svc.lastTags) != 1 || svc.lastTags[0] != "t" {
		t.Errorf("expected tags [t], got %v", svc.lastTags)
	}
}

func TestGetOrFetchTypedWrapperRunsFetch(t *testing.T) {
	svc := &mockTagCache{runFetch: true}

	got, err := GetOrFetch(context.Background(), svc, "k", nil, func(ctx context.Context) (string, error) {
		return "fresh", nil
	})
	if err != nil {
		t.Fatalf("GetOrFetch failed: %v", err)
	}
	if got != "fresh" {
		t.Errorf("expected fresh, got %q", got)
	}
}

func TestGetOrFetchTypedWrapperError(t *testing.T) {
	boom := errors.New("backend down")
	svc := &mockTagCache{err: boom}

	got, err := GetOrFetch(context.Background(), svc, "k", nil, func(ctx context.Context) (string, error) {
		return "fresh", nil
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected backend error, got %v", err)
	}
	if got != "" {
		t.Errorf("expected zero value on error, got %q", got)
	}
}

func TestConfigValidate(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate, got %v", err)
	}

	cfg.Capacity = -1
	if err := cfg.Validate(); err == nil {
		t.Error("expected error for negative capacity")
	}
}

func TestNewTagCacheService(t *testing.T) {
	svc, err := NewTagCacheService(DefaultConfig())
	if err != nil {
		t.Fatalf("NewTagCacheService failed: %v", err)
	}
	if svc == nil {
		t.Fatal("expected a service instance")
	}

	if _, err := NewTagCacheService(Config{}); err == nil {
		t.Error("expected zero config to be rejected")
	}
}
