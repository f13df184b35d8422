package repositories

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DefaultNamespace prefixes the storage keys of every collection.
const DefaultNamespace = "ghibli-scribbles"

// Keys names the storage key of each collection.
type Keys struct {
	Posts      string
	Comments   string
	Categories string
}

// NewKeys returns the collection keys for the given namespace.
func NewKeys(namespace string) Keys {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return Keys{
		Posts:      namespace + "-posts",
		Comments:   namespace + "-comments",
		Categories: namespace + "-categories",
	}
}

// loadCollection reads the JSON array stored under key. A key that was never
// written yields an empty collection.
func loadCollection[T any](store Store, key string) ([]T, error) {
	data, ok, err := store.Get(key)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}
	items := []T{}
	if !ok || len(data) == 0 {
		return items, nil
	}
	if err := unmarshalEntity(data, &items); err != nil {
		return nil, fmt.Errorf("corrupted collection %s: %w", key, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// saveCollection replaces the whole collection stored under key.
func saveCollection[T any](store Store, key string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := marshalEntity(items)
	if err != nil {
		return err
	}
	if err := store.Set(key, data); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %w", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %w", err)
	}
	return nil
}

func newUUID() string {
	return uuid.NewString()
}

func nowMillis() int64 {
	return time.Now().UnixMilli()
}
