package cart

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	domcart "example.com/trustylads/storefront/internal/domain/cart"
	"example.com/trustylads/storefront/internal/domain/storage"
)

type mockSnapshotRepository struct {
	data    map[string][]byte
	saves   int
	loadErr error
	saveErr error
}

func newMockSnapshotRepository() *mockSnapshotRepository {
	return &mockSnapshotRepository{data: make(map[string][]byte)}
}

func (m *mockSnapshotRepository) Load(ctx context.Context, key string) ([]byte, error) {
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	data, ok := m.data[key]
	if !ok {
		return nil, storage.ErrNotFound
	}
	return data, nil
}

func (m *mockSnapshotRepository) Save(ctx context.Context, key string, data []byte) error {
	if m.saveErr != nil {
		return m.saveErr
	}
	m.saves++
	m.data[key] = data
	return nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testItem(qty, maxStock int64) domcart.Item {
	return domcart.Item{
		ProductID: "p1",
		Name:      "Classic Shirt",
		Price:     499,
		Size:      "M",
		Quantity:  qty,
		MaxStock:  maxStock,
	}
}

func TestAddItem_WritesThroughToRepository(t *testing.T) {
	repo := newMockSnapshotRepository()
	svc := NewService(repo, testLogger())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", testItem(2, 10))

	require.Equal(t, 1, repo.saves)
	var stored domcart.Cart
	require.NoError(t, json.Unmarshal(repo.data["trustylads-cart:s1"], &stored))
	require.Len(t, stored.Items, 1)
	require.Equal(t, int64(2), stored.Items[0].Quantity)
}

func TestCart_RestoredFromSnapshot(t *testing.T) {
	repo := newMockSnapshotRepository()
	ctx := context.Background()

	first := NewService(repo, testLogger())
	first.AddItem(ctx, "s1", testItem(3, 10))
	first.OpenCart(ctx, "s1")

	// A fresh service (new process) sees the persisted state.
	second := NewService(repo, testLogger())
	restored := second.GetCart(ctx, "s1")
	require.Len(t, restored.Items, 1)
	require.Equal(t, int64(3), restored.Items[0].Quantity)
	require.True(t, restored.IsOpen)
}

func TestRepeatedAdds_ClampedAcrossCalls(t *testing.T) {
	repo := newMockSnapshotRepository()
	svc := NewService(repo, testLogger())
	ctx := context.Background()

	for i := 0; i < 6; i++ {
		svc.AddItem(ctx, "s1", testItem(2, 5))
	}

	items := svc.Items(ctx, "s1")
	require.Len(t, items, 1)
	require.Equal(t, int64(5), items[0].Quantity)
}

func TestUpdateQuantityZero_RemovesEntry(t *testing.T) {
	repo := newMockSnapshotRepository()
	svc := NewService(repo, testLogger())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", testItem(2, 10))
	svc.UpdateQuantity(ctx, "s1", "p1", "M", 0)

	require.Empty(t, svc.Items(ctx, "s1"))
	require.Equal(t, int64(0), svc.ItemsCount(ctx, "s1"))
}

func TestDerivedValues(t *testing.T) {
	repo := newMockSnapshotRepository()
	svc := NewService(repo, testLogger())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", testItem(2, 10))
	watch := domcart.Item{ProductID: "p2", Name: "Watch", Price: 1299, Size: "One Size", Quantity: 1, MaxStock: 3}
	svc.AddItem(ctx, "s1", watch)

	require.Equal(t, int64(3), svc.ItemsCount(ctx, "s1"))
	require.Equal(t, int64(2*499+1299), svc.Subtotal(ctx, "s1"))
}

func TestSessionsAreIsolated(t *testing.T) {
	repo := newMockSnapshotRepository()
	svc := NewService(repo, testLogger())
	ctx := context.Background()

	svc.AddItem(ctx, "s1", testItem(1, 10))

	require.Empty(t, svc.Items(ctx, "s2"))
	require.Len(t, svc.Items(ctx, "s1"), 1)
}

func TestStorageFailures_AreSwallowed(t *testing.T) {
	repo := newMockSnapshotRepository()
	repo.loadErr = errors.New("disk on fire")
	repo.saveErr = errors.New("disk on fire")
	svc := NewService(repo, testLogger())
	ctx := context.Background()

	// Mutations still work against the in-memory state.
	svc.AddItem(ctx, "s1", testItem(1, 10))
	require.Len(t, svc.Items(ctx, "s1"), 1)
}

func TestCorruptSnapshot_StartsEmpty(t *testing.T) {
	repo := newMockSnapshotRepository()
	repo.data["trustylads-cart:s1"] = []byte("{not json")
	svc := NewService(repo, testLogger())

	require.Empty(t, svc.Items(context.Background(), "s1"))
}
