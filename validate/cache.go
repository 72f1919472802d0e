package validate

import (
	"sync"
	"time"

	"github.com/flowport/flowport/model"
	c "github.com/patrickmn/go-cache"
)

const DEFAULT_CACHE_CAPACITY int = 64

// ResultCache is a bounded validation result cache keyed by content
// fingerprint. Once capacity is exceeded the oldest entry is evicted. It is
// handed to the orchestrator explicitly, never held as package state, so the
// core stays side effect free.
type ResultCache struct {
	cache    *c.Cache
	mu       sync.Mutex
	keys     []string
	capacity int
}

func NewResultCache(capacity int) *ResultCache {
	if capacity <= 0 {
		capacity = DEFAULT_CACHE_CAPACITY
	}
	return &ResultCache{
		cache:    c.New(c.NoExpiration, 10*time.Minute),
		capacity: capacity,
	}
}

func (rc *ResultCache) Get(key string) (*model.ValidationResult, bool) {
	value, found := rc.cache.Get(key)
	if !found {
		return nil, false
	}
	result, ok := value.(model.ValidationResult)
	if !ok {
		return nil, false
	}
	return &result, true
}

func (rc *ResultCache) Put(key string, result model.ValidationResult) {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	if _, exists := rc.cache.Get(key); !exists {
		rc.keys = append(rc.keys, key)
		if len(rc.keys) > rc.capacity {
			oldest := rc.keys[0]
			rc.keys = rc.keys[1:]
			rc.cache.Delete(oldest)
		}
	}
	rc.cache.Set(key, result, c.NoExpiration)
}

func (rc *ResultCache) Len() int {
	rc.mu.Lock()
	defer rc.mu.Unlock()
	return len(rc.keys)
}
