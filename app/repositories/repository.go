package repositories

import (
	"errors"
	"fmt"
	"sync"

	"scribbles/app/models"
)

var (
	ErrNotFound = errors.New("record not found")
)

// Repository persists posts, comments and categories as three whole JSON
// collections in a Store. Every mutation reads the full collection, applies the
// change and writes the full collection back.
type Repository struct {
	store Store
	keys  Keys
	now   func() int64
	newID func() string
	mutex sync.RWMutex
}

// Option configures a Repository.
type Option func(*Repository)

// WithNamespace sets the prefix of the collection keys.
func WithNamespace(namespace string) Option {
	return func(r *Repository) {
		r.keys = NewKeys(namespace)
	}
}

// WithClock replaces the epoch-millisecond clock used for timestamps.
func WithClock(now func() int64) Option {
	return func(r *Repository) {
		r.now = now
	}
}

// WithIDGenerator replaces the UUID generator used for new entities.
func WithIDGenerator(newID func() string) Option {
	return func(r *Repository) {
		r.newID = newID
	}
}

// NewRepository creates a Repository on top of store.
func NewRepository(store Store, opts ...Option) *Repository {
	r := &Repository{
		store: store,
		keys:  NewKeys(DefaultNamespace),
		now:   nowMillis,
		newID: newUUID,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Keys returns the storage keys of the three collections.
func (r *Repository) Keys() Keys {
	return r.keys
}

// Close closes the underlying store.
func (r *Repository) Close() error {
	r.mutex.Lock()
	defer r.mutex.Unlock()
	return r.store.Close()
}

// Dump is a full copy of the three collections.
type Dump struct {
	Categories []models.Category `json:"categories"`
	Posts      []models.Post     `json:"posts"`
	Comments   []models.Comment  `json:"comments"`
}

// Export reads all three collections.
func (r *Repository) Export() (*Dump, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	categories, err := r.categories()
	if err != nil {
		return nil, err
	}
	posts, err := r.posts()
	if err != nil {
		return nil, err
	}
	comments, err := r.comments()
	if err != nil {
		return nil, err
	}
	return &Dump{Categories: categories, Posts: posts, Comments: comments}, nil
}

// Import overwrites all three collections with the contents of dump.
func (r *Repository) Import(dump *Dump) error {
	if dump == nil {
		return fmt.Errorf("nothing to import")
	}
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if err := saveCollection(r.store, r.keys.Categories, dump.Categories); err != nil {
		return err
	}
	if err := saveCollection(r.store, r.keys.Posts, dump.Posts); err != nil {
		return err
	}
	return saveCollection(r.store, r.keys.Comments, dump.Comments)
}
