package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"kampung_chill/internal/domain/entities"
	"kampung_chill/internal/usecase/interfaces"

	"github.com/sirupsen/logrus"
)

// Persisted record keys. The names are versioned so an incompatible format
// change can roll over without migrating old values.
const (
	KeyOrders      = "kampung-chill-orders-v1"
	KeyStocks      = "kampung-chill-stocks-v1"
	KeyShopStatus  = "kampung-chill-status-v1"
	KeyActiveOrder = "active-order-id-v3"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrShopClosed         = errors.New("shop is closed")
	ErrInvalidCartLine    = errors.New("invalid cart line")
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderFinalized     = errors.New("order already finalized")
	ErrInvalidOrderStatus = errors.New("invalid order status")
	ErrIllegalTransition  = errors.New("illegal status transition")
	ErrOrderCodeExhausted = errors.New("could not allocate a free order code")
)

// Snapshot is a read-only view of the shop state.

type Snapshot struct {
	Orders        []entities.Order
	Stocks        map[string]int
	IsShopOpen    bool
	ActiveOrderID string
}

// IShopUseCase exposes the shop engine operations.
//
// The engine is the exclusive owner of the four shop records (orders, stock
// table, shop-open flag, active-order pointer); everything else mutates them
// only through these operations.

type IShopUseCase interface {
	PlaceOrder(ctx context.Context, name, phone string, lines []entities.CartLine) (entities.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error)
	UpdateStock(ctx context.Context, productID string, delta int) (int, error)
	RestockAll(ctx context.Context) error
	ToggleShopStatus(ctx context.Context) (bool, error)
	ClearHistory(ctx context.Context) (int, error)
	SetActiveOrder(ctx context.Context, id string) (entities.Order, error)
	ClearActiveOrder(ctx context.Context) error
	ActiveOrder(ctx context.Context) (entities.Order, bool, error)
	FindOrder(code string) (entities.Order, error)
	FindOrderByPhone(phone string) (entities.Order, error)
	Snapshot() Snapshot
}

// ShopUseCase holds the in-memory shop state and writes every mutation
// through to the state store. Orders are kept newest first.
//
// Remote replicas sharing the store announce their writes on the change
// feed; receiving such an announcement rehydrates the matching record. The
// feed is whole-value last-writer-wins, so two replicas debiting stock at
// the same instant can overwrite each other; stock is floored at zero as the
// backstop.

type ShopUseCase struct {
	mu            sync.Mutex
	orders        []entities.Order
	stocks        map[string]int
	shopOpen      bool
	activeOrderID string

	store    interfaces.IStateStore
	feed     interfaces.IChangeFeed
	notifier interfaces.IOrderNotifier
	log      *logrus.Logger
}

var _ IShopUseCase = (*ShopUseCase)(nil)

const orderCodeAttempts = 8

// NewShopUseCase hydrates the engine from the store and subscribes to the
// change feed. First run (nothing persisted yet) seeds the defaults: full
// stock for every catalog product, shop open, no orders, no active pointer.
func NewShopUseCase(ctx context.Context, store interfaces.IStateStore, feed interfaces.IChangeFeed, notifier interfaces.IOrderNotifier, logger *logrus.Logger) (*ShopUseCase, error) {
	if logger == nil {
		logger = logrus.New()
	}
	u := &ShopUseCase{
		store:    store,
		feed:     feed,
		notifier: notifier,
		log:      logger,
	}
	if err := u.hydrate(ctx); err != nil {
		return nil, err
	}
	if feed != nil {
		feed.Subscribe(ctx, u.handleRemoteChange)
	}
	return u, nil
}

func (u *ShopUseCase) hydrate(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.orders = u.loadOrders(ctx)

	raw, found, err := u.store.Load(ctx, KeyStocks)
	if err != nil {
		return err
	}
	if !found {
		// First run: seed and persist the default stock table. After this
		// point a product id missing from the persisted table reads as 0;
		// it must not silently reset to the initial count.
		u.stocks = entities.InitialStocks()
		if err := u.saveRecordLocked(ctx, KeyStocks, u.stocks); err != nil {
			return err
		}
		u.log.Infof("[shop][usecase] first run, seeded stock for %d products", len(u.stocks))
	} else {
		u.stocks = decodeStocks(raw, u.log)
	}

	u.shopOpen = u.loadShopStatus(ctx)
	u.activeOrderID = u.loadActiveOrder(ctx)

	u.log.Infof("[shop][usecase] hydrated orders=%d open=%t active=%q", len(u.orders), u.shopOpen, u.activeOrderID)
	return nil
}

func (u *ShopUseCase) loadOrders(ctx context.Context) []entities.Order {
	raw, found, err := u.store.Load(ctx, KeyOrders)
	if err != nil || !found {
		if err != nil {
			u.log.Warnf("[shop][usecase] loading orders failed err=%v", err)
		}
		return []entities.Order{}
	}
	var orders []entities.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		// Fail safe on corruption: treat the record as absent.
		u.log.Warnf("[shop][usecase] corrupt orders record, resetting err=%v", err)
		return []entities.Order{}
	}
	return orders
}

func decodeStocks(raw []byte, log *logrus.Logger) map[string]int {
	var stocks map[string]int
	if err := json.Unmarshal(raw, &stocks); err != nil || stocks == nil {
		log.Warnf("[shop][usecase] corrupt stocks record, reinitializing err=%v", err)
		return entities.InitialStocks()
	}
	return stocks
}

func (u *ShopUseCase) loadShopStatus(ctx context.Context) bool {
	raw, found, err := u.store.Load(ctx, KeyShopStatus)
	if err != nil || !found {
		return true
	}
	var open bool
	if err := json.Unmarshal(raw, &open); err != nil {
		u.log.Warnf("[shop][usecase] corrupt shop status record, defaulting open err=%v", err)
		return true
	}
	return open
}

func (u *ShopUseCase) loadActiveOrder(ctx context.Context) string {
	raw, found, err := u.store.Load(ctx, KeyActiveOrder)
	if err != nil || !found {
		return ""
	}
	return string(raw)
}

// saveRecordLocked marshals and persists one record and announces the write
// on the change feed. The feed announcement is best effort.
func (u *ShopUseCase) saveRecordLocked(ctx context.Context, key string, value any) error {
	var raw []byte
	if s, ok := value.(string); ok && key == KeyActiveOrder {
		raw = []byte(s)
	} else {
		var err error
		raw, err = json.Marshal(value)
		if err != nil {
			return err
		}
	}
	if err := u.store.Save(ctx, key, raw); err != nil {
		return err
	}
	if u.feed != nil {
		if err := u.feed.Publish(ctx, key); err != nil {
			u.log.Warnf("[shop][usecase] change feed publish failed key=%s err=%v", key, err)
		}
	}
	return nil
}

// handleRemoteChange rehydrates one record after another replica wrote it.
// Same-origin announcements are already filtered out by the feed.
func (u *ShopUseCase) handleRemoteChange(key string) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	u.mu.Lock()
	defer u.mu.Unlock()

	switch key {
	case KeyOrders:
		u.orders = u.loadOrders(ctx)
	case KeyStocks:
		raw, found, err := u.store.Load(ctx, KeyStocks)
		if err != nil || !found {
			return
		}
		u.stocks = decodeStocks(raw, u.log)
	case KeyShopStatus:
		u.shopOpen = u.loadShopStatus(ctx)
	case KeyActiveOrder:
		u.activeOrderID = u.loadActiveOrder(ctx)
	default:
		return
	}
	u.log.Debugf("[shop][usecase] rehydrated record key=%s", key)
}

// PlaceOrder checks out a cart: snapshots the lines into a new pending
// order, debits stock (floored at zero), points the active-order pointer at
// the new order and persists all three records.
//
// The shop-open re-check here is deliberate defense in depth on top of the
// storefront's own gating.
func (u *ShopUseCase) PlaceOrder(ctx context.Context, name, phone string, lines []entities.CartLine) (entities.Order, error) {
	if len(lines) == 0 {
		return entities.Order{}, ErrEmptyCart
	}
	for _, l := range lines {
		if l.ProductID == "" || l.Quantity < 1 {
			return entities.Order{}, ErrInvalidCartLine
		}
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if !u.shopOpen {
		return entities.Order{}, ErrShopClosed
	}

	code, err := u.freeOrderCodeLocked()
	if err != nil {
		return entities.Order{}, err
	}

	total := 0.0
	items := make([]entities.OrderItem, 0, len(lines))
	for _, l := range lines {
		total += l.Price * float64(l.Quantity)
		items = append(items, entities.OrderItem{ProductID: l.ProductID, Name: l.Name, Price: l.Price, Quantity: l.Quantity})
	}

	order := entities.Order{
		ID:            code,
		CustomerName:  name,
		CustomerPhone: phone,
		Items:         items,
		Total:         total,
		Status:        entities.OrderStatusPending,
		Timestamp:     time.Now().UTC(),
	}

	for _, l := range lines {
		next := u.stocks[l.ProductID] - l.Quantity
		if next < 0 {
			next = 0
		}
		u.stocks[l.ProductID] = next
	}

	u.orders = append([]entities.Order{order}, u.orders...)
	u.activeOrderID = order.ID

	if err := u.saveRecordLocked(ctx, KeyOrders, u.orders); err != nil {
		return entities.Order{}, err
	}
	if err := u.saveRecordLocked(ctx, KeyStocks, u.stocks); err != nil {
		return entities.Order{}, err
	}
	if err := u.saveRecordLocked(ctx, KeyActiveOrder, u.activeOrderID); err != nil {
		return entities.Order{}, err
	}

	u.log.Infof("[shop][usecase] order placed id=%s customer=%s items=%d total=%.2f", order.ID, name, len(items), total)

	if u.notifier != nil {
		go u.notifier.OrderPlaced(order)
	}
	return order, nil
}

func (u *ShopUseCase) freeOrderCodeLocked() (string, error) {
	for attempt := 0; attempt < orderCodeAttempts; attempt++ {
		code := newOrderCode()
		if u.findOrderIndexLocked(code) < 0 {
			return code, nil
		}
	}
	return "", ErrOrderCodeExhausted
}

func (u *ShopUseCase) findOrderIndexLocked(id string) int {
	for i, o := range u.orders {
		if o.ID == id {
			return i
		}
	}
	return -1
}

// UpdateOrderStatus moves an order through its lifecycle. Setting the status
// the order already has is an idempotent no-op; out-of-table moves,
// including any move out of a terminal status, fail with
// ErrIllegalTransition. No other order field ever changes.
func (u *ShopUseCase) UpdateOrderStatus(ctx context.Context, id string, status entities.OrderStatus) (entities.Order, error) {
	if !entities.IsValidOrderStatus(status) {
		return entities.Order{}, ErrInvalidOrderStatus
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	i := u.findOrderIndexLocked(normalizeOrderCode(id))
	if i < 0 {
		return entities.Order{}, ErrOrderNotFound
	}
	current := u.orders[i].Status
	if current == status {
		return u.orders[i], nil
	}
	if !current.CanTransitionTo(status) {
		return entities.Order{}, ErrIllegalTransition
	}

	u.orders[i].Status = status
	if err := u.saveRecordLocked(ctx, KeyOrders, u.orders); err != nil {
		return entities.Order{}, err
	}
	u.log.Infof("[shop][usecase] order status updated id=%s %s->%s", u.orders[i].ID, current, status)
	return u.orders[i], nil
}

// UpdateStock applies a signed manual adjustment, clamped at zero. An
// unknown product id starts from zero.
func (u *ShopUseCase) UpdateStock(ctx context.Context, productID string, delta int) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	next := u.stocks[productID] + delta
	if next < 0 {
		next = 0
	}
	u.stocks[productID] = next

	if err := u.saveRecordLocked(ctx, KeyStocks, u.stocks); err != nil {
		return 0, err
	}
	u.log.Infof("[shop][usecase] stock updated product=%s delta=%d now=%d", productID, delta, next)
	return next, nil
}

// RestockAll resets every catalog product to the initial count, discarding
// prior counts entirely.
func (u *ShopUseCase) RestockAll(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.stocks = entities.InitialStocks()
	if err := u.saveRecordLocked(ctx, KeyStocks, u.stocks); err != nil {
		return err
	}
	u.log.Infof("[shop][usecase] restocked all products to %d", entities.InitialStockCount)
	return nil
}

func (u *ShopUseCase) ToggleShopStatus(ctx context.Context) (bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	u.shopOpen = !u.shopOpen
	if err := u.saveRecordLocked(ctx, KeyShopStatus, u.shopOpen); err != nil {
		return false, err
	}
	u.log.Infof("[shop][usecase] shop open=%t", u.shopOpen)
	return u.shopOpen, nil
}

// ClearHistory removes every completed or cancelled order, keeping the
// relative order of the remaining ones. Returns how many were removed.
func (u *ShopUseCase) ClearHistory(ctx context.Context) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	kept := u.orders[:0:0]
	for _, o := range u.orders {
		if !o.Status.IsTerminal() {
			kept = append(kept, o)
		}
	}
	removed := len(u.orders) - len(kept)
	if removed == 0 {
		return 0, nil
	}
	u.orders = kept
	if err := u.saveRecordLocked(ctx, KeyOrders, u.orders); err != nil {
		return 0, err
	}
	u.log.Infof("[shop][usecase] cleared %d finalized orders", removed)
	return removed, nil
}

// SetActiveOrder points the receipt pointer at an existing, non-finalized
// order. It never touches the order record itself.
func (u *ShopUseCase) SetActiveOrder(ctx context.Context, id string) (entities.Order, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	i := u.findOrderIndexLocked(normalizeOrderCode(id))
	if i < 0 {
		return entities.Order{}, ErrOrderNotFound
	}
	if u.orders[i].Status.IsTerminal() {
		return entities.Order{}, ErrOrderFinalized
	}
	u.activeOrderID = u.orders[i].ID
	if err := u.saveRecordLocked(ctx, KeyActiveOrder, u.activeOrderID); err != nil {
		return entities.Order{}, err
	}
	return u.orders[i], nil
}

func (u *ShopUseCase) ClearActiveOrder(ctx context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.activeOrderID == "" {
		return nil
	}
	u.activeOrderID = ""
	return u.saveRecordLocked(ctx, KeyActiveOrder, "")
}

// ActiveOrder returns the order the active pointer references. A pointer at
// a missing or finalized order is cleared on the way out, mirroring how the
// receipt view dismisses itself once an order is done.
func (u *ShopUseCase) ActiveOrder(ctx context.Context) (entities.Order, bool, error) {
	u.mu.Lock()
	defer u.mu.Unlock()

	if u.activeOrderID == "" {
		return entities.Order{}, false, nil
	}
	i := u.findOrderIndexLocked(u.activeOrderID)
	if i < 0 || u.orders[i].Status.IsTerminal() {
		u.activeOrderID = ""
		if err := u.saveRecordLocked(ctx, KeyActiveOrder, ""); err != nil {
			return entities.Order{}, false, err
		}
		return entities.Order{}, false, nil
	}
	return u.orders[i], true, nil
}

// FindOrder looks an order up by its code, case-insensitively and tolerating
// a leading "#".
func (u *ShopUseCase) FindOrder(code string) (entities.Order, error) {
	code = normalizeOrderCode(code)
	if code == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	i := u.findOrderIndexLocked(code)
	if i < 0 {
		return entities.Order{}, ErrOrderNotFound
	}
	return u.orders[i], nil
}

// FindOrderByPhone matches on digit-normalized phone numbers. With several
// matching orders the most recently created one wins.
func (u *ShopUseCase) FindOrderByPhone(phone string) (entities.Order, error) {
	want := normalizePhone(phone)
	if want == "" {
		return entities.Order{}, ErrOrderNotFound
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	// Orders are kept newest first.
	for _, o := range u.orders {
		if normalizePhone(o.CustomerPhone) == want {
			return o, nil
		}
	}
	return entities.Order{}, ErrOrderNotFound
}

// Snapshot copies the current state for read-only use.
func (u *ShopUseCase) Snapshot() Snapshot {
	u.mu.Lock()
	defer u.mu.Unlock()

	orders := make([]entities.Order, len(u.orders))
	copy(orders, u.orders)
	stocks := make(map[string]int, len(u.stocks))
	for id, n := range u.stocks {
		stocks[id] = n
	}
	return Snapshot{
		Orders:        orders,
		Stocks:        stocks,
		IsShopOpen:    u.shopOpen,
		ActiveOrderID: u.activeOrderID,
	}
}
