package docstore

import (
	"encoding/json"
	"sync"
)

// Memory is the in-process Store implementation. Values are normalized to
// plain JSON types on write, so readers never alias a writer's structs.
type Memory struct {
	mu     sync.RWMutex
	root   map[string]interface{}
	subs   map[int]*subscriber
	nextID int
}

type subscriber struct {
	path []string
	ch   chan interface{}
	done chan struct{}
}

// NewMemory creates an empty in-memory store
func NewMemory() *Memory {
	return &Memory{
		root: make(map[string]interface{}),
		subs: make(map[int]*subscriber),
	}
}

// Read returns the value at path
func (m *Memory) Read(path string) (interface{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.valueAt(splitPath(path))
}

// Write merges fields at path. Each field key is itself a path relative to
// path whose subtree is replaced by the field value.
func (m *Memory) Write(path string, fields map[string]interface{}) {
	base := splitPath(path)

	m.mu.Lock()
	for key, value := range fields {
		target := append(append([]string{}, base...), splitPath(key)...)
		if value == nil {
			m.deleteAt(target)
		} else {
			m.setAt(target, normalize(value))
		}
	}
	m.mu.Unlock()

	m.notify(base)
}

// Replace overwrites the subtree at path
func (m *Memory) Replace(path string, value interface{}) {
	segments := splitPath(path)

	m.mu.Lock()
	if value == nil {
		m.deleteAt(segments)
	} else {
		m.setAt(segments, normalize(value))
	}
	m.mu.Unlock()

	m.notify(segments)
}

// Delete removes the subtree at path
func (m *Memory) Delete(path string) {
	segments := splitPath(path)

	m.mu.Lock()
	m.deleteAt(segments)
	m.mu.Unlock()

	m.notify(segments)
}

// Subscribe registers fn for changes at or below path, firing once
// immediately with the current value. Notifications are delivered on a
// dedicated goroutine per subscriber, in order.
func (m *Memory) Subscribe(path string, fn func(value interface{})) func() {
	sub := &subscriber{
		path: splitPath(path),
		ch:   make(chan interface{}, 64),
		done: make(chan struct{}),
	}

	m.mu.Lock()
	id := m.nextID
	m.nextID++
	m.subs[id] = sub
	current, _ := m.valueAt(sub.path)
	sub.push(current)
	m.mu.Unlock()

	go func() {
		for {
			select {
			case <-sub.done:
				return
			case value := <-sub.ch:
				fn(value)
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			m.mu.Lock()
			delete(m.subs, id)
			m.mu.Unlock()
			close(sub.done)
		})
	}
}

// push enqueues a snapshot, dropping the oldest queued one when the
// subscriber is slow. At-least-once delivery of the latest state is what
// matters, not every intermediate snapshot.
func (s *subscriber) push(value interface{}) {
	for {
		select {
		case s.ch <- value:
			return
		default:
			select {
			case <-s.ch:
			default:
			}
		}
	}
}

// notify snapshots every related subscriber's view and enqueues it
func (m *Memory) notify(changed []string) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, sub := range m.subs {
		if !isRelated(changed, sub.path) {
			continue
		}
		value, _ := m.valueAt(sub.path)
		sub.push(value)
	}
}

// valueAt walks the tree; callers hold at least the read lock
func (m *Memory) valueAt(segments []string) (interface{}, bool) {
	var node interface{} = m.root
	for _, seg := range segments {
		obj, ok := node.(map[string]interface{})
		if !ok {
			return nil, false
		}
		node, ok = obj[seg]
		if !ok {
			return nil, false
		}
	}
	return node, true
}

// setAt replaces the subtree at segments, materializing intermediate
// objects; callers hold the write lock.
func (m *Memory) setAt(segments []string, value interface{}) {
	if len(segments) == 0 {
		if obj, ok := value.(map[string]interface{}); ok {
			m.root = obj
		}
		return
	}

	node := m.root
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node[seg].(map[string]interface{})
		if !ok {
			child = make(map[string]interface{})
			node[seg] = child
		}
		node = child
	}
	node[segments[len(segments)-1]] = value
}

// deleteAt removes the subtree at segments; callers hold the write lock
func (m *Memory) deleteAt(segments []string) {
	if len(segments) == 0 {
		m.root = make(map[string]interface{})
		return
	}

	node := m.root
	for _, seg := range segments[:len(segments)-1] {
		child, ok := node[seg].(map[string]interface{})
		if !ok {
			return
		}
		node = child
	}
	delete(node, segments[len(segments)-1])
}

// normalize converts an arbitrary Go value into plain JSON types so stored
// state is a detached copy.
func normalize(value interface{}) interface{} {
	switch value.(type) {
	case nil, bool, string, float64:
		return value
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return value
	}
	var out interface{}
	if err := json.Unmarshal(raw, &out); err != nil {
		return value
	}
	return out
}
