package memory

import (
	"context"
	"sync"

	"github.com/jhoicas/pos-ledger/internal/domain/repository"
)

var _ repository.KVStore = (*Store)(nil)

// Store almacén clave-valor en memoria. SetMany aplica el lote bajo un único lock.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// New crea un almacén vacío.
func New() *Store {
	return &Store{data: make(map[string][]byte)}
}

func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return clone(v), nil
}

func (s *Store) Set(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = clone(value)
	return nil
}

func (s *Store) SetMany(_ context.Context, entries []repository.Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range entries {
		s.data[e.Key] = clone(e.Value)
	}
	return nil
}

func (s *Store) Ping(context.Context) error { return nil }

// Snapshot copia de todas las claves (útil en tests para verificar que nada cambió).
func (s *Store) Snapshot() map[string][]byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]byte, len(s.data))
	for k, v := range s.data {
		out[k] = clone(v)
	}
	return out
}

func clone(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
