package usecase

import (
	"context"
	"errors"
	"io"
	"regexp"
	"testing"

	"kampung_chill/internal/adapter/persistence/repository"
	"kampung_chill/internal/domain/entities"
	mock_interfaces "kampung_chill/internal/usecase/interfaces/mocks"

	"github.com/sirupsen/logrus"
	"go.uber.org/mock/gomock"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newTestShop(t *testing.T) (*ShopUseCase, *repository.MemoryStateRepository) {
	t.Helper()
	store := repository.NewMemoryStateRepository()
	u, err := NewShopUseCase(context.Background(), store, nil, nil, testLogger())
	if err != nil {
		t.Fatalf("NewShopUseCase: %v", err)
	}
	return u, store
}

func cartOf(t *testing.T, quantities map[string]int) []entities.CartLine {
	t.Helper()
	c := entities.NewCart()
	for id, qty := range quantities {
		p, ok := entities.CatalogProduct(id)
		if !ok {
			t.Fatalf("unknown catalog product %q", id)
		}
		for i := 0; i < qty; i++ {
			if !c.AddItem(p, entities.InitialStockCount, true) {
				t.Fatalf("could not add %q to cart", id)
			}
		}
	}
	return c.Lines()
}

var orderCodeRe = regexp.MustCompile(`^[A-Z0-9]{4}$`)

func TestPlaceOrder(t *testing.T) {
	t.Run("fresh store scenario", func(t *testing.T) {
		u, _ := newTestShop(t)

		order, err := u.PlaceOrder(context.Background(), "Alice", "6588684732", cartOf(t, map[string]int{"watermelon": 2}))
		if err != nil {
			t.Fatalf("PlaceOrder: %v", err)
		}
		if !orderCodeRe.MatchString(order.ID) {
			t.Fatalf("expected 4-char uppercase alphanumeric code, got %q", order.ID)
		}
		if order.Status != entities.OrderStatusPending {
			t.Fatalf("expected pending, got %s", order.Status)
		}
		if order.Total != 4.00 {
			t.Fatalf("expected total 4.00, got %.2f", order.Total)
		}

		snap := u.Snapshot()
		if snap.Stocks["watermelon"] != 18 {
			t.Fatalf("expected watermelon stock 18, got %d", snap.Stocks["watermelon"])
		}
		if len(snap.Orders) != 1 {
			t.Fatalf("expected 1 order, got %d", len(snap.Orders))
		}
		if snap.ActiveOrderID != order.ID {
			t.Fatalf("expected active order %q, got %q", order.ID, snap.ActiveOrderID)
		}
	})

	t.Run("empty cart", func(t *testing.T) {
		u, _ := newTestShop(t)
		if _, err := u.PlaceOrder(context.Background(), "Alice", "123", nil); !errors.Is(err, ErrEmptyCart) {
			t.Fatalf("expected ErrEmptyCart, got %v", err)
		}
	})

	t.Run("shop closed", func(t *testing.T) {
		u, _ := newTestShop(t)
		if _, err := u.ToggleShopStatus(context.Background()); err != nil {
			t.Fatalf("ToggleShopStatus: %v", err)
		}
		_, err := u.PlaceOrder(context.Background(), "Alice", "123", cartOf(t, map[string]int{"durian": 1}))
		if !errors.Is(err, ErrShopClosed) {
			t.Fatalf("expected ErrShopClosed, got %v", err)
		}
	})

	t.Run("invalid line quantity", func(t *testing.T) {
		u, _ := newTestShop(t)
		lines := []entities.CartLine{{ProductID: "durian", Name: "Durian", Price: 2, Quantity: 0}}
		if _, err := u.PlaceOrder(context.Background(), "Alice", "123", lines); !errors.Is(err, ErrInvalidCartLine) {
			t.Fatalf("expected ErrInvalidCartLine, got %v", err)
		}
	})

	t.Run("oversell floors stock at zero", func(t *testing.T) {
		u, _ := newTestShop(t)
		lines := []entities.CartLine{{ProductID: "durian", Name: "Durian", Price: 2, Quantity: entities.InitialStockCount + 5}}
		if _, err := u.PlaceOrder(context.Background(), "Bob", "123", lines); err != nil {
			t.Fatalf("PlaceOrder: %v", err)
		}
		if got := u.Snapshot().Stocks["durian"]; got != 0 {
			t.Fatalf("expected durian stock 0, got %d", got)
		}
	})

	t.Run("order snapshot is frozen", func(t *testing.T) {
		u, _ := newTestShop(t)
		order, err := u.PlaceOrder(context.Background(), "Alice", "123", cartOf(t, map[string]int{"watermelon": 2, "durian": 1}))
		if err != nil {
			t.Fatalf("PlaceOrder: %v", err)
		}

		if _, err := u.UpdateStock(context.Background(), "watermelon", -25); err != nil {
			t.Fatalf("UpdateStock: %v", err)
		}
		if err := u.RestockAll(context.Background()); err != nil {
			t.Fatalf("RestockAll: %v", err)
		}

		got, err := u.FindOrder(order.ID)
		if err != nil {
			t.Fatalf("FindOrder: %v", err)
		}
		if got.Total != 6.00 {
			t.Fatalf("order total changed after stock operations: %.2f", got.Total)
		}
		if len(got.Items) != 2 {
			t.Fatalf("order items changed after stock operations: %d", len(got.Items))
		}
	})

	t.Run("store save failure surfaces", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		store := mock_interfaces.NewMockIStateStore(ctrl)

		store.EXPECT().Load(gomock.Any(), gomock.Any()).Return(nil, false, nil).Times(4)
		store.EXPECT().Save(gomock.Any(), KeyStocks, gomock.Any()).Return(nil)

		u, err := NewShopUseCase(context.Background(), store, nil, nil, testLogger())
		if err != nil {
			t.Fatalf("NewShopUseCase: %v", err)
		}

		store.EXPECT().Save(gomock.Any(), KeyOrders, gomock.Any()).Return(errors.New("dynamo down"))

		_, err = u.PlaceOrder(context.Background(), "Alice", "123", cartOf(t, map[string]int{"durian": 1}))
		if err == nil || err.Error() != "dynamo down" {
			t.Fatalf("expected store error, got %v", err)
		}
	})
}

func TestUpdateOrderStatus(t *testing.T) {
	place := func(t *testing.T, u *ShopUseCase) entities.Order {
		t.Helper()
		o, err := u.PlaceOrder(context.Background(), "Alice", "123", cartOf(t, map[string]int{"watermelon": 1}))
		if err != nil {
			t.Fatalf("PlaceOrder: %v", err)
		}
		return o
	}

	t.Run("not found", func(t *testing.T) {
		u, _ := newTestShop(t)
		if _, err := u.UpdateOrderStatus(context.Background(), "ZZZZ", entities.OrderStatusAccepted); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})

	t.Run("walks the lifecycle", func(t *testing.T) {
		u, _ := newTestShop(t)
		o := place(t, u)
		for _, s := range []entities.OrderStatus{entities.OrderStatusAccepted, entities.OrderStatusReady, entities.OrderStatusCompleted} {
			updated, err := u.UpdateOrderStatus(context.Background(), o.ID, s)
			if err != nil {
				t.Fatalf("transition to %s: %v", s, err)
			}
			if updated.Status != s {
				t.Fatalf("expected %s, got %s", s, updated.Status)
			}
		}
	})

	t.Run("idempotent same-status set", func(t *testing.T) {
		u, _ := newTestShop(t)
		o := place(t, u)
		if _, err := u.UpdateOrderStatus(context.Background(), o.ID, entities.OrderStatusAccepted); err != nil {
			t.Fatalf("first set: %v", err)
		}
		if _, err := u.UpdateOrderStatus(context.Background(), o.ID, entities.OrderStatusAccepted); err != nil {
			t.Fatalf("second set must be a no-op, got %v", err)
		}
	})

	t.Run("illegal skip ahead", func(t *testing.T) {
		u, _ := newTestShop(t)
		o := place(t, u)
		if _, err := u.UpdateOrderStatus(context.Background(), o.ID, entities.OrderStatusCompleted); !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("terminal states are closed", func(t *testing.T) {
		u, _ := newTestShop(t)
		o := place(t, u)
		if _, err := u.UpdateOrderStatus(context.Background(), o.ID, entities.OrderStatusCancelled); err != nil {
			t.Fatalf("cancel: %v", err)
		}
		if _, err := u.UpdateOrderStatus(context.Background(), o.ID, entities.OrderStatusPending); !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition out of cancelled, got %v", err)
		}
	})

	t.Run("unknown status value", func(t *testing.T) {
		u, _ := newTestShop(t)
		o := place(t, u)
		if _, err := u.UpdateOrderStatus(context.Background(), o.ID, entities.OrderStatus("shipped")); !errors.Is(err, ErrInvalidOrderStatus) {
			t.Fatalf("expected ErrInvalidOrderStatus, got %v", err)
		}
	})

	t.Run("other fields untouched", func(t *testing.T) {
		u, _ := newTestShop(t)
		o := place(t, u)
		updated, err := u.UpdateOrderStatus(context.Background(), o.ID, entities.OrderStatusAccepted)
		if err != nil {
			t.Fatalf("UpdateOrderStatus: %v", err)
		}
		if updated.CustomerName != o.CustomerName || updated.Total != o.Total || len(updated.Items) != len(o.Items) {
			t.Fatalf("status update changed other fields: %+v", updated)
		}
	})
}

func TestUpdateStock(t *testing.T) {
	t.Run("never negative", func(t *testing.T) {
		u, _ := newTestShop(t)

		if _, err := u.UpdateStock(context.Background(), "watermelon", -2); err != nil {
			t.Fatalf("UpdateStock: %v", err)
		}
		got, err := u.UpdateStock(context.Background(), "watermelon", -25)
		if err != nil {
			t.Fatalf("UpdateStock: %v", err)
		}
		if got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}

		for _, delta := range []int{-3, 7, -100, 5} {
			n, err := u.UpdateStock(context.Background(), "durian", delta)
			if err != nil {
				t.Fatalf("UpdateStock: %v", err)
			}
			if n < 0 {
				t.Fatalf("stock went negative: %d", n)
			}
		}
	})

	t.Run("unknown product starts from zero", func(t *testing.T) {
		u, _ := newTestShop(t)
		got, err := u.UpdateStock(context.Background(), "snow-cone", 3)
		if err != nil {
			t.Fatalf("UpdateStock: %v", err)
		}
		if got != 3 {
			t.Fatalf("expected 3, got %d", got)
		}
	})

	t.Run("restock all resets, not adds", func(t *testing.T) {
		u, _ := newTestShop(t)
		if _, err := u.UpdateStock(context.Background(), "watermelon", 30); err != nil {
			t.Fatalf("UpdateStock: %v", err)
		}
		if err := u.RestockAll(context.Background()); err != nil {
			t.Fatalf("RestockAll: %v", err)
		}
		snap := u.Snapshot()
		for _, id := range entities.CatalogProductIDs() {
			if snap.Stocks[id] != entities.InitialStockCount {
				t.Fatalf("expected %d for %s, got %d", entities.InitialStockCount, id, snap.Stocks[id])
			}
		}
	})
}

func TestClearHistory(t *testing.T) {
	u, _ := newTestShop(t)
	ctx := context.Background()

	first, err := u.PlaceOrder(ctx, "Alice", "111", cartOf(t, map[string]int{"watermelon": 1}))
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	second, err := u.PlaceOrder(ctx, "Bob", "222", cartOf(t, map[string]int{"durian": 1}))
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	for _, s := range []entities.OrderStatus{entities.OrderStatusAccepted, entities.OrderStatusReady, entities.OrderStatusCompleted} {
		if _, err := u.UpdateOrderStatus(ctx, first.ID, s); err != nil {
			t.Fatalf("UpdateOrderStatus: %v", err)
		}
	}

	removed, err := u.ClearHistory(ctx)
	if err != nil {
		t.Fatalf("ClearHistory: %v", err)
	}
	if removed != 1 {
		t.Fatalf("expected 1 removed, got %d", removed)
	}

	snap := u.Snapshot()
	if len(snap.Orders) != 1 || snap.Orders[0].ID != second.ID {
		t.Fatalf("expected only order %s retained, got %+v", second.ID, snap.Orders)
	}

	// Nothing terminal left: clearing again removes nothing.
	removed, err = u.ClearHistory(ctx)
	if err != nil || removed != 0 {
		t.Fatalf("expected no-op clear, got removed=%d err=%v", removed, err)
	}
}

func TestClearHistoryPreservesInsertionOrder(t *testing.T) {
	u, _ := newTestShop(t)
	ctx := context.Background()

	var ids []string
	for i := 0; i < 4; i++ {
		o, err := u.PlaceOrder(ctx, "C", "333", cartOf(t, map[string]int{"honeydew": 1}))
		if err != nil {
			t.Fatalf("PlaceOrder: %v", err)
		}
		ids = append(ids, o.ID)
	}
	if _, err := u.UpdateOrderStatus(ctx, ids[1], entities.OrderStatusCancelled); err != nil {
		t.Fatalf("UpdateOrderStatus: %v", err)
	}
	if _, err := u.ClearHistory(ctx); err != nil {
		t.Fatalf("ClearHistory: %v", err)
	}

	snap := u.Snapshot()
	want := []string{ids[3], ids[2], ids[0]} // newest first, ids[1] removed
	if len(snap.Orders) != len(want) {
		t.Fatalf("expected %d orders, got %d", len(want), len(snap.Orders))
	}
	for i, id := range want {
		if snap.Orders[i].ID != id {
			t.Fatalf("order %d: expected %s, got %s", i, id, snap.Orders[i].ID)
		}
	}
}

func TestFindOrder(t *testing.T) {
	u, _ := newTestShop(t)
	o, err := u.PlaceOrder(context.Background(), "Alice", "123", cartOf(t, map[string]int{"watermelon": 1}))
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	for _, query := range []string{o.ID, "#" + o.ID, "#" + lower(o.ID), lower(o.ID)} {
		got, err := u.FindOrder(query)
		if err != nil {
			t.Fatalf("FindOrder(%q): %v", query, err)
		}
		if got.ID != o.ID {
			t.Fatalf("FindOrder(%q): got %s", query, got.ID)
		}
	}

	if _, err := u.FindOrder("ZZ99"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if _, err := u.FindOrder("  "); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for blank query, got %v", err)
	}
}

func lower(s string) string {
	b := []byte(s)
	for i := range b {
		if b[i] >= 'A' && b[i] <= 'Z' {
			b[i] += 'a' - 'A'
		}
	}
	return string(b)
}

func TestFindOrderByPhone(t *testing.T) {
	u, _ := newTestShop(t)
	ctx := context.Background()

	older, err := u.PlaceOrder(ctx, "Alice", "6588684732", cartOf(t, map[string]int{"watermelon": 1}))
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	newer, err := u.PlaceOrder(ctx, "Alice", "+65 8868-4732", cartOf(t, map[string]int{"durian": 1}))
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	for _, query := range []string{"+65 8868-4732", "65886847 32", "6588684732"} {
		got, err := u.FindOrderByPhone(query)
		if err != nil {
			t.Fatalf("FindOrderByPhone(%q): %v", query, err)
		}
		if got.ID != newer.ID {
			t.Fatalf("FindOrderByPhone(%q): expected most recent %s, got %s", query, newer.ID, got.ID)
		}
	}
	_ = older

	if _, err := u.FindOrderByPhone("9999"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
	if _, err := u.FindOrderByPhone("abc"); !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound for digitless query, got %v", err)
	}
}

func TestActiveOrderPointer(t *testing.T) {
	t.Run("set clear and auto-clear", func(t *testing.T) {
		u, _ := newTestShop(t)
		ctx := context.Background()

		o, err := u.PlaceOrder(ctx, "Alice", "123", cartOf(t, map[string]int{"watermelon": 1}))
		if err != nil {
			t.Fatalf("PlaceOrder: %v", err)
		}

		got, found, err := u.ActiveOrder(ctx)
		if err != nil || !found || got.ID != o.ID {
			t.Fatalf("expected active order %s, got found=%t id=%s err=%v", o.ID, found, got.ID, err)
		}

		if err := u.ClearActiveOrder(ctx); err != nil {
			t.Fatalf("ClearActiveOrder: %v", err)
		}
		if _, found, _ := u.ActiveOrder(ctx); found {
			t.Fatal("expected no active order after clear")
		}

		// Clearing the pointer never touches the order record.
		if _, err := u.FindOrder(o.ID); err != nil {
			t.Fatalf("order disappeared after pointer clear: %v", err)
		}

		if _, err := u.SetActiveOrder(ctx, "#"+lower(o.ID)); err != nil {
			t.Fatalf("SetActiveOrder: %v", err)
		}

		if _, err := u.UpdateOrderStatus(ctx, o.ID, entities.OrderStatusCancelled); err != nil {
			t.Fatalf("UpdateOrderStatus: %v", err)
		}
		if _, found, _ := u.ActiveOrder(ctx); found {
			t.Fatal("expected pointer auto-cleared once the order is terminal")
		}
	})

	t.Run("set rejects finalized and unknown orders", func(t *testing.T) {
		u, _ := newTestShop(t)
		ctx := context.Background()

		o, err := u.PlaceOrder(ctx, "Alice", "123", cartOf(t, map[string]int{"watermelon": 1}))
		if err != nil {
			t.Fatalf("PlaceOrder: %v", err)
		}
		if _, err := u.UpdateOrderStatus(ctx, o.ID, entities.OrderStatusCancelled); err != nil {
			t.Fatalf("UpdateOrderStatus: %v", err)
		}

		if _, err := u.SetActiveOrder(ctx, o.ID); !errors.Is(err, ErrOrderFinalized) {
			t.Fatalf("expected ErrOrderFinalized, got %v", err)
		}
		if _, err := u.SetActiveOrder(ctx, "ZZZZ"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestRehydration(t *testing.T) {
	t.Run("second run keeps persisted stocks, missing ids read zero", func(t *testing.T) {
		ctx := context.Background()
		store := repository.NewMemoryStateRepository()

		// Persisted stock table from an earlier run missing "durian".
		if err := store.Save(ctx, KeyStocks, []byte(`{"watermelon":3}`)); err != nil {
			t.Fatalf("Save: %v", err)
		}

		u, err := NewShopUseCase(ctx, store, nil, nil, testLogger())
		if err != nil {
			t.Fatalf("NewShopUseCase: %v", err)
		}
		snap := u.Snapshot()
		if snap.Stocks["watermelon"] != 3 {
			t.Fatalf("expected persisted stock 3, got %d", snap.Stocks["watermelon"])
		}
		if snap.Stocks["durian"] != 0 {
			t.Fatalf("missing id must read 0, not reset to %d", snap.Stocks["durian"])
		}
	})

	t.Run("corrupt records fall back to defaults", func(t *testing.T) {
		ctx := context.Background()
		store := repository.NewMemoryStateRepository()
		for _, key := range []string{KeyOrders, KeyStocks, KeyShopStatus} {
			if err := store.Save(ctx, key, []byte("{not json")); err != nil {
				t.Fatalf("Save: %v", err)
			}
		}

		u, err := NewShopUseCase(ctx, store, nil, nil, testLogger())
		if err != nil {
			t.Fatalf("NewShopUseCase: %v", err)
		}
		snap := u.Snapshot()
		if len(snap.Orders) != 0 {
			t.Fatalf("expected empty orders, got %d", len(snap.Orders))
		}
		if !snap.IsShopOpen {
			t.Fatal("expected shop open by default")
		}
		if snap.Stocks["watermelon"] != entities.InitialStockCount {
			t.Fatalf("expected reinitialized stocks, got %d", snap.Stocks["watermelon"])
		}
	})
}

func TestCrossReplicaSync(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStateRepository()
	hub := repository.NewMemoryFeedHub()

	a, err := NewShopUseCase(ctx, store, hub.NewFeed(), nil, testLogger())
	if err != nil {
		t.Fatalf("NewShopUseCase a: %v", err)
	}
	b, err := NewShopUseCase(ctx, store, hub.NewFeed(), nil, testLogger())
	if err != nil {
		t.Fatalf("NewShopUseCase b: %v", err)
	}

	order, err := a.PlaceOrder(ctx, "Alice", "123", cartOf(t, map[string]int{"watermelon": 2}))
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}

	// The memory feed delivers synchronously, so b is already rehydrated.
	snap := b.Snapshot()
	if len(snap.Orders) != 1 || snap.Orders[0].ID != order.ID {
		t.Fatalf("replica b did not pick up the order: %+v", snap.Orders)
	}
	if snap.Stocks["watermelon"] != 18 {
		t.Fatalf("replica b did not pick up the stock debit: %d", snap.Stocks["watermelon"])
	}

	if _, err := b.UpdateOrderStatus(ctx, order.ID, entities.OrderStatusAccepted); err != nil {
		t.Fatalf("UpdateOrderStatus on b: %v", err)
	}
	got, err := a.FindOrder(order.ID)
	if err != nil {
		t.Fatalf("FindOrder on a: %v", err)
	}
	if got.Status != entities.OrderStatusAccepted {
		t.Fatalf("replica a did not pick up the status change: %s", got.Status)
	}
}

func TestOrderCodeHelpers(t *testing.T) {
	for i := 0; i < 100; i++ {
		if code := newOrderCode(); !orderCodeRe.MatchString(code) {
			t.Fatalf("bad order code %q", code)
		}
	}
	if got := normalizeOrderCode(" #ab12 "); got != "AB12" {
		t.Fatalf("normalizeOrderCode: got %q", got)
	}
	if got := normalizePhone("+65 8868-4732"); got != "6588684732" {
		t.Fatalf("normalizePhone: got %q", got)
	}
}
