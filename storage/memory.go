package storage

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/Aalzard/DRUNKPENGUINS/rating"
)

// MemoryCatalogStorage keeps the catalog in process memory. Used for local
// runs without AWS credentials and in tests. It behaves like the Dynamo
// implementation: absent until the first save, whole-catalog overwrite,
// stored as the same JSON payload.
type MemoryCatalogStorage struct {
	mu      sync.Mutex
	payload []byte
}

func (s *MemoryCatalogStorage) Load(_ context.Context) (*rating.Catalog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.payload == nil {
		return nil, ErrCatalogNotFound
	}
	var catalog rating.Catalog
	if err := json.Unmarshal(s.payload, &catalog); err != nil {
		return nil, err
	}
	return &catalog, nil
}

func (s *MemoryCatalogStorage) Save(_ context.Context, catalog *rating.Catalog) error {
	payload, err := json.Marshal(catalog)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.payload = payload
	s.mu.Unlock()
	return nil
}
