package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryRepo struct {
	products []Product
	fail     error
}

func (m *memoryRepo) ListProducts(ctx context.Context) ([]Product, error) {
	return append([]Product(nil), m.products...), m.fail
}

func (m *memoryRepo) InsertProducts(ctx context.Context, products []Product) error {
	if m.fail != nil {
		return m.fail
	}
	m.products = append(m.products, products...)
	return nil
}

func (m *memoryRepo) UpdateProduct(ctx context.Context, p Product) error {
	if m.fail != nil {
		return m.fail
	}
	for i := range m.products {
		if m.products[i].ID == p.ID {
			m.products[i] = p
			return nil
		}
	}
	return ErrNotFound
}

func (m *memoryRepo) DeleteProduct(ctx context.Context, id string) error {
	if m.fail != nil {
		return m.fail
	}
	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func TestStore_AddUpdateDelete(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepo{}
	store := NewStore(repo)

	require.Equal(t, uint64(0), store.Snapshot().Version)

	added, err := store.Add(ctx, Product{Behandlung: " Einsetzen ", Produkt: "Easy Invisible", Typ: "10S", Preis: 52.5})
	require.NoError(t, err)
	assert.NotEmpty(t, added.ID)
	assert.Equal(t, "Einsetzen", added.Behandlung)

	snap := store.Snapshot()
	assert.Equal(t, uint64(1), snap.Version)
	require.Len(t, snap.Products, 1)
	assert.Len(t, repo.products, 1)

	updated, err := store.Update(ctx, added.ID, Product{Behandlung: "Einsetzen", Produkt: "Easy Invisible", Typ: "10S", Preis: 55})
	require.NoError(t, err)
	assert.Equal(t, added.ID, updated.ID)
	assert.Equal(t, 55.0, store.Snapshot().Products[0].Preis)
	assert.Equal(t, 55.0, repo.products[0].Preis)
	// Older snapshots are never mutated.
	assert.Equal(t, 52.5, snap.Products[0].Preis)

	require.NoError(t, store.Delete(ctx, added.ID))
	assert.Empty(t, store.Snapshot().Products)
	assert.Empty(t, repo.products)
	assert.Equal(t, uint64(3), store.Snapshot().Version)
}

func TestStore_IDsAreNotReused(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil)

	first, err := store.Add(ctx, Product{Behandlung: "B", Produkt: "P", Preis: 1})
	require.NoError(t, err)
	require.NoError(t, store.Delete(ctx, first.ID))

	second, err := store.Add(ctx, Product{Behandlung: "B", Produkt: "P", Preis: 1})
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
}

func TestStore_Validation(t *testing.T) {
	ctx := context.Background()
	store := NewStore(nil)

	_, err := store.Add(ctx, Product{Behandlung: "B", Produkt: "P", Preis: -1})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = store.Add(ctx, Product{Behandlung: "B", Preis: 1})
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = store.Update(ctx, "missing", Product{Behandlung: "B", Produkt: "P", Preis: 1})
	assert.ErrorIs(t, err, ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "missing"), ErrNotFound)
	assert.Equal(t, uint64(0), store.Snapshot().Version)
}

func TestProduct_ValidateRequiresBehandlungAndProdukt(t *testing.T) {
	assert.NoError(t, Product{Behandlung: "B", Produkt: "P"}.Validate())

	err := Product{Produkt: "P", Preis: 1}.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "behandlung")

	err = Product{Behandlung: "B", Preis: 1}.Validate()
	require.ErrorIs(t, err, ErrInvalid)
	assert.Contains(t, err.Error(), "produkt")

	_, err = NewStore(nil).Add(context.Background(), Product{Behandlung: "  ", Produkt: "P", Preis: 1})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestStore_Import(t *testing.T) {
	ctx := context.Background()
	store := NewStore(&memoryRepo{})

	rows := []Product{
		{Produkt: "Easy Volume", Typ: "10A", Laenge: "40 cm", Preis: 120},
		{Produkt: "", Typ: "10G", Preis: 120},
		{Produkt: "Easy Volume", Typ: "L5", Laenge: "40 cm", Preis: -5},
		{Produkt: "Easy Volume", Typ: "L5", Laenge: "40 cm", Preis: 116},
	}

	imported, err := store.Import(ctx, "Einsetzen", rows)
	require.NoError(t, err)
	require.Len(t, imported, 2)
	for _, p := range imported {
		assert.Equal(t, "Einsetzen", p.Behandlung)
		assert.NotEmpty(t, p.ID)
	}
	assert.Len(t, store.Snapshot().Products, 2)

	_, err = store.Import(ctx, " ", rows)
	assert.ErrorIs(t, err, ErrInvalid)

	_, err = store.Import(ctx, "Einsetzen", []Product{{Typ: "x"}})
	assert.ErrorIs(t, err, ErrInvalid)
}

func TestStore_RepositoryFailureKeepsSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepo{fail: errors.New("disk full")}
	store := NewStore(repo)

	_, err := store.Add(ctx, Product{Behandlung: "B", Produkt: "P", Preis: 1})
	require.Error(t, err)
	assert.Equal(t, uint64(0), store.Snapshot().Version)
	assert.Empty(t, store.Snapshot().Products)
}

func TestStore_LoadAndReplace(t *testing.T) {
	ctx := context.Background()
	repo := &memoryRepo{products: testCatalog()}
	store := NewStore(repo)

	require.NoError(t, store.Load(ctx))
	snap := store.Snapshot()
	assert.Equal(t, uint64(1), snap.Version)
	assert.Len(t, snap.Products, len(testCatalog()))

	p, ok := snap.Find("3")
	require.True(t, ok)
	assert.Equal(t, "Easy Length", p.Produkt)

	_, ok = snap.Find("nope")
	assert.False(t, ok)

	next := store.Replace(nil)
	assert.Equal(t, uint64(2), next.Version)
	assert.NotNil(t, next.Products)
	assert.Empty(t, next.Products)
}

func TestParsePrice(t *testing.T) {
	for raw, want := range map[string]float64{"52,5": 52.5, " 92 ": 92, "0": 0, "1.25": 1.25} {
		got, err := ParsePrice(raw)
		require.NoError(t, err, raw)
		assert.Equal(t, want, got, raw)
	}
	for _, raw := range []string{"", "abc", "-1", "1,2,3", "Inf"} {
		_, err := ParsePrice(raw)
		assert.ErrorIs(t, err, ErrInvalid, raw)
	}
}
