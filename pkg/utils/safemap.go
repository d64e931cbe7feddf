package utils

import (
	"sync"
)

// SafeMap is a map guarded by a mutex, safe for concurrent handlers.
type SafeMap[K comparable, V any] struct {
	mutex sync.Mutex
	data  map[K]V
}

func NewSafeMap[K comparable, V any]() *SafeMap[K, V] {
	return &SafeMap[K, V]{data: make(map[K]V)}
}

func (m *SafeMap[K, V]) Get(key K) (V, bool) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *SafeMap[K, V]) Put(key K, value V) {
	m.mutex.Lock()
	defer m.mutex.Unlock()
	m.data[key] = value
}
