package cacheinfra

import (
	"github.com/puzpuzpuz/xsync/v3"
)

// tagIndex maintains the tag -> cache keys relationship used for bulk
// invalidation. The relationship is many-to-many: one key may sit under
// several tags and one tag usually covers many keys (every paginated list
// key for a resource kind shares that kind's list tag).
//
// Buckets are xsync maps so registration from concurrent request workers
// never serializes on a global lock.
type tagIndex struct {
	buckets *xsync.MapOf[string, *xsync.MapOf[string, struct{}]]
}

func newTagIndex() *tagIndex {
	return &tagIndex{buckets: xsync.NewMapOf[string, *xsync.MapOf[string, struct{}]]()}
}

// register records key under every tag.
func (t *tagIndex) register(key string, tags []string) {
	for _, tag := range tags {
		bucket, _ := t.buckets.LoadOrCompute(tag, func() *xsync.MapOf[string, struct{}] {
			return xsync.NewMapOf[string, struct{}]()
		})
		bucket.Store(key, struct{}{})
	}
}

// contains reports whether key is currently registered under tag.
func (t *tagIndex) contains(tag, key string) bool {
	bucket, ok := t.buckets.Load(tag)
	if !ok {
		return false
	}
	_, ok = bucket.Load(key)
	return ok
}

// drain removes the bucket for tag and returns the keys it held.
// Keys remain registered under any other tags they carry; invalidating
// those tags later issues a redundant cache delete, which is harmless.
func (t *tagIndex) drain(tag string) []string {
	bucket, ok := t.buckets.LoadAndDelete(tag)
	if !ok {
		return nil
	}

	var keys []string
	bucket.Range(func(key string, _ struct{}) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}
