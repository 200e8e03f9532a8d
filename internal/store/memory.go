package store

import "sync"

// MemoryBackend keeps collection documents in process memory. It is
// used by tests and by the "memory" store driver.
type MemoryBackend struct {
	mu   sync.RWMutex
	docs map[Collection][]byte
}

// NewMemoryBackend creates an empty MemoryBackend.
func NewMemoryBackend() *MemoryBackend {
	return &MemoryBackend{docs: make(map[Collection][]byte)}
}

// Load returns the stored document, or ErrNotInitialized if the
// collection has never been saved.
func (b *MemoryBackend) Load(collection Collection) ([]byte, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	data, ok := b.docs[collection]
	if !ok {
		return nil, ErrNotInitialized
	}
	out := make([]byte, len(data))
	copy(out, data)
	return out, nil
}

// Save replaces the stored document.
func (b *MemoryBackend) Save(collection Collection, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	doc := make([]byte, len(data))
	copy(doc, data)
	b.docs[collection] = doc
	return nil
}
