package session

// MemoryKV is an in-memory KeyValue backend. It is the default when no
// session database path is configured, and the backend tests construct per
// test case instead of sharing hidden global state.
type MemoryKV struct {
	data map[string]string
}

// NewMemoryKV returns an empty in-memory backend.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string]string)}
}

// Get returns the stored value and whether the key exists.
func (m *MemoryKV) Get(key string) (string, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

// Set stores value under key, overwriting any previous value.
func (m *MemoryKV) Set(key, value string) error {
	m.data[key] = value
	return nil
}

// Remove deletes key. Removing an absent key is not an error.
func (m *MemoryKV) Remove(key string) error {
	delete(m.data, key)
	return nil
}

// Clear removes every key.
func (m *MemoryKV) Clear() error {
	m.data = make(map[string]string)
	return nil
}
