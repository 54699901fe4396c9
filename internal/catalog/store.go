package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
)

// Repository persists catalog mutations.
type Repository interface {
	ListProducts(ctx context.Context) ([]Product, error)
	InsertProducts(ctx context.Context, products []Product) error
	UpdateProduct(ctx context.Context, p Product) error
	DeleteProduct(ctx context.Context, id string) error
}

// Snapshot is an immutable view of the catalog. Products must not be
// modified by readers.
type Snapshot struct {
	Version  uint64    `json:"version"`
	Products []Product `json:"products"`
}

// Find returns the product with the given id.
func (s *Snapshot) Find(id string) (Product, bool) {
	for _, p := range s.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}

// Store owns the current catalog snapshot. Reads are lock free; mutations
// are serialized, written to the repository and then published as a new
// snapshot with the next version.
type Store struct {
	mu      sync.Mutex
	repo    Repository
	current atomic.Pointer[Snapshot]
}

// NewStore creates a store with an empty snapshot. repo may be nil for a
// memory-only catalog.
func NewStore(repo Repository) *Store {
	s := &Store{repo: repo}
	s.current.Store(&Snapshot{Products: []Product{}})
	return s
}

// Load replaces the snapshot with the repository contents.
func (s *Store) Load(ctx context.Context) error {
	if s.repo == nil {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	s.publish(products)
	return nil
}

// Snapshot returns the current catalog snapshot.
func (s *Store) Snapshot() *Snapshot {
	return s.current.Load()
}

// Replace publishes products as the new catalog without touching the
// repository.
func (s *Store) Replace(products []Product) *Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.publish(append([]Product(nil), products...))
}

// Add validates p, assigns a new id and appends it to the catalog.
func (s *Store) Add(ctx context.Context, p Product) (Product, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	p.ID = NewID()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.InsertProducts(ctx, []Product{p}); err != nil {
			return Product{}, fmt.Errorf("insert product: %w", err)
		}
	}

	cur := s.current.Load().Products
	next := make([]Product, 0, len(cur)+1)
	next = append(append(next, cur...), p)
	s.publish(next)
	return p, nil
}

// Update replaces the product with the given id, keeping the id.
func (s *Store) Update(ctx context.Context, id string, p Product) (Product, error) {
	p = p.Normalize()
	if err := p.Validate(); err != nil {
		return Product{}, err
	}
	p.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load().Products
	idx := indexOf(cur, id)
	if idx < 0 {
		return Product{}, ErrNotFound
	}

	if s.repo != nil {
		if err := s.repo.UpdateProduct(ctx, p); err != nil {
			return Product{}, fmt.Errorf("update product: %w", err)
		}
	}

	next := append([]Product(nil), cur...)
	next[idx] = p
	s.publish(next)
	return p, nil
}

// Delete removes the product with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cur := s.current.Load().Products
	idx := indexOf(cur, id)
	if idx < 0 {
		return ErrNotFound
	}

	if s.repo != nil {
		if err := s.repo.DeleteProduct(ctx, id); err != nil {
			return fmt.Errorf("delete product: %w", err)
		}
	}

	next := make([]Product, 0, len(cur)-1)
	next = append(append(next, cur[:idx]...), cur[idx+1:]...)
	s.publish(next)
	return nil
}

// Import appends a batch of rows that share one behandlung. Rows without
// produkt or with an invalid price are skipped; the batch fails when no row
// remains.
func (s *Store) Import(ctx context.Context, behandlung string, rows []Product) ([]Product, error) {
	behandlung = strings.TrimSpace(behandlung)
	if behandlung == "" {
		return nil, fmt.Errorf("%w: behandlung ist erforderlich", ErrInvalid)
	}

	valid := make([]Product, 0, len(rows))
	for _, row := range rows {
		row.Behandlung = behandlung
		row = row.Normalize()
		if row.Validate() != nil {
			continue
		}
		row.ID = NewID()
		valid = append(valid, row)
	}
	if len(valid) == 0 {
		return nil, fmt.Errorf("%w: mindestens eine Zeile mit Produkt und Preis erforderlich", ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.repo != nil {
		if err := s.repo.InsertProducts(ctx, valid); err != nil {
			return nil, fmt.Errorf("import products: %w", err)
		}
	}

	cur := s.current.Load().Products
	next := make([]Product, 0, len(cur)+len(valid))
	next = append(append(next, cur...), valid...)
	s.publish(next)
	return valid, nil
}

// publish must be called with mu held.
func (s *Store) publish(products []Product) *Snapshot {
	if products == nil {
		products = []Product{}
	}
	snap := &Snapshot{Version: s.current.Load().Version + 1, Products: products}
	s.current.Store(snap)
	return snap
}

func indexOf(products []Product, id string) int {
	for i, p := range products {
		if p.ID == id {
			return i
		}
	}
	return -1
}
