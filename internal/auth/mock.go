package auth

// MockStore is an in-memory key store for testing.
type MockStore struct {
	key    string
	hasKey bool
}

func NewMockStore() *MockStore {
	return &MockStore{}
}

func (m *MockStore) SetKey(key string) error {
	m.key = key
	m.hasKey = true
	return nil
}

func (m *MockStore) GetKey() (string, error) {
	if !m.hasKey {
		return "", ErrKeyNotFound
	}
	return m.key, nil
}

func (m *MockStore) DeleteKey() error {
	if !m.hasKey {
		return ErrKeyNotFound
	}
	m.key = ""
	m.hasKey = false
	return nil
}
