package document

import (
	"fmt"
	"sync"

	"rangelink/internal/link"
)

// Manager tracks the open documents by URI.
type Manager struct {
	pattern *link.Pattern
	mu      sync.RWMutex
	docs    map[string]*Document
}

func NewManager(pattern *link.Pattern) *Manager {
	return &Manager{
		pattern: pattern,
		docs:    make(map[string]*Document),
	}
}

func (m *Manager) Open(uri string, content string) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[uri]; exists {
		return nil, fmt.Errorf("document already open: %s", uri)
	}

	doc := New(content, m.pattern)
	m.docs[uri] = doc
	return doc, nil
}

func (m *Manager) Get(uri string) (*Document, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc, exists := m.docs[uri]
	return doc, exists
}

func (m *Manager) Close(uri string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.docs[uri]; !exists {
		return fmt.Errorf("document not found: %s", uri)
	}
	delete(m.docs, uri)
	return nil
}

func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.docs = make(map[string]*Document)
}
