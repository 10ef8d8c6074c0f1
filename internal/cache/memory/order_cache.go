package memory

import (
	"container/list"
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/crm_backend/internal/domain"
	"github.com/Gunvolt24/crm_backend/internal/ports"
	"github.com/Gunvolt24/crm_backend/pkg/metrics"
)

// Проверка, что LRUCacheTTL удовлетворяет интерфейсу ports.OrderCache.
var _ ports.OrderCache = (*LRUCacheTTL)(nil)

type entry struct {
	id        string
	order     *domain.Order
	expiresAt time.Time
}

// LRUCacheTTL — потокобезопасный LRU-кэш заказов с TTL.
// Заказ после создания неизменяем (итог — снимок), поэтому кэшу
// не нужна инвалидация при мутациях.
type LRUCacheTTL struct {
	capacity int
	ttl      time.Duration

	ll    *list.List
	index map[string]*list.Element

	mu sync.Mutex
}

// NewLRUCacheTTL — конструктор; ttl <= 0 отключает истечение по времени.
func NewLRUCacheTTL(capacity int, ttl time.Duration) *LRUCacheTTL {
	if capacity <= 0 {
		capacity = 1
	}
	return &LRUCacheTTL{
		capacity: capacity,
		ttl:      ttl,
		ll:       list.New(),
		index:    make(map[string]*list.Element),
	}
}

// Get — вернуть копию заказа по id; обновляет позицию LRU и продлевает TTL.
func (c *LRUCacheTTL) Get(_ context.Context, id string) (*domain.Order, bool) {
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	elem, ok := c.index[id]
	if !ok {
		metrics.CacheOps.WithLabelValues("miss").Inc()
		return nil, false
	}
	ent := elem.Value.(*entry)
	if c.isExpired(ent, now) {
		metrics.CacheOps.WithLabelValues("expired").Inc()
		c.removeElement(elem)
		metrics.CacheSize.Set(float64(len(c.index)))
		return nil, false
	}
	c.ll.MoveToFront(elem)

	if c.ttl > 0 {
		ent.expiresAt = c.expiryFrom(now)
	}

	metrics.CacheOps.WithLabelValues("hit").Inc()
	return cloneOrder(ent.order), true
}

// Set — сохранить копию заказа; при переполнении вытесняет LRU-хвост.
func (c *LRUCacheTTL) Set(_ context.Context, order *domain.Order) error {
	if order == nil || order.ID == "" {
		return nil
	}
	now := time.Now()

	c.mu.Lock()
	defer c.mu.Unlock()

	if elem, ok := c.index[order.ID]; ok {
		ent := elem.Value.(*entry)
		ent.order = cloneOrder(order)
		ent.expiresAt = c.expiryFrom(now)
		c.ll.MoveToFront(elem)
		return nil
	}

	c.pruneExpiredFromBack(now)

	elem := c.ll.PushFront(&entry{
		id:        order.ID,
		order:     cloneOrder(order),
		expiresAt: c.expiryFrom(now),
	})
	c.index[order.ID] = elem
	metrics.CacheSize.Set(float64(len(c.index)))

	if c.ll.Len() > c.capacity {
		c.evictLRU()
	}
	return nil
}

// WarmUp — массовая загрузка кэша; уважает отмену контекста.
func (c *LRUCacheTTL) WarmUp(ctx context.Context, orders []*domain.Order) error {
	for _, order := range orders {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}
		if err := c.Set(ctx, order); err != nil {
			return err
		}
	}
	return nil
}
