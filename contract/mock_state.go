package contract

import (
	"encoding/json"
	"os"
)

// MockState keeps contract kv storage in a plain map so the contract logic can
// run on the host toolchain. With a filename set it also snapshots every write
// to disk, which helps when poking the contract from the debug harness.
type MockState struct {
	db       map[string]string
	filename string
}

func NewMockState() *MockState {
	return &MockState{
		db: make(map[string]string),
	}
}

// PersistTo enables file snapshots under the given path.
func (m *MockState) PersistTo(filename string) *MockState {
	m.filename = filename
	return m
}

func (m *MockState) Set(key, value string) {
	m.db[key] = value
	if err := m.saveToFile(); err != nil {
		panic(err)
	}
}

func (m *MockState) Get(key string) *string {
	val, ok := m.db[key]
	if !ok {
		return nil
	}
	return &val
}

func (m *MockState) Delete(key string) {
	delete(m.db, key)
	if err := m.saveToFile(); err != nil {
		panic(err)
	}
}

// Len reports how many keys are stored, handy for append-only assertions.
func (m *MockState) Len() int {
	return len(m.db)
}

// saveToFile writes the full map to a JSON file
func (m *MockState) saveToFile() error {
	if m.filename == "" {
		return nil
	}
	data, err := json.MarshalIndent(m.db, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(m.filename, data, 0644)
}

// LoadFromFile loads the map from a JSON file
func (m *MockState) LoadFromFile() {
	if m.filename == "" {
		return
	}
	data, err := os.ReadFile(m.filename)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		panic(err)
	}
	if err := json.Unmarshal(data, &m.db); err != nil {
		panic(err)
	}
}
