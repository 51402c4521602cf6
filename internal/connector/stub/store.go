package stub

import (
	"sync"
	"sync/atomic"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/entities"
)

// store is the private state of one simulator instance. It is reachable only
// through the Client methods.
type store struct {
	listings sync.Map // listing id -> *listing
	orders   sync.Map // order id -> entities.OrderResult
	keys     sync.Map // idempotency key -> *orderSlot
}

type listing struct {
	observations atomic.Int64
	base         entities.ListingResult
}

// observe увеличивает счётчик наблюдений и возвращает статус для него.
// Первое наблюдение (ответ на создание) даёт PENDING, все последующие ACTIVE.
func (l *listing) observe() entities.ListingResult {
	n := l.observations.Add(1)
	res := l.base.Clone()
	res.Status = entities.ListingStatusActive
	if n <= 1 {
		res.Status = entities.ListingStatusPending
	}
	return res
}

// orderSlot holds the one result produced for an idempotency key.
// ready is closed once result is set.
type orderSlot struct {
	ready  chan struct{}
	result entities.OrderResult
}

func (s *orderSlot) resolve(res entities.OrderResult) {
	s.result = res
	close(s.ready)
}

func (s *orderSlot) wait() entities.OrderResult {
	<-s.ready
	return s.result.Clone()
}

func (s *store) putListing(l *listing) {
	s.listings.Store(l.base.ListingID, l)
}

func (s *store) listing(id string) (*listing, bool) {
	v, ok := s.listings.Load(id)
	if !ok {
		return nil, false
	}
	return v.(*listing), true
}

func (s *store) putOrder(res entities.OrderResult) {
	s.orders.Store(res.OrderID, res)
}

func (s *store) order(id string) (entities.OrderResult, bool) {
	v, ok := s.orders.Load(id)
	if !ok {
		return entities.OrderResult{}, false
	}
	return v.(entities.OrderResult), true
}

func (s *store) slot(key string) (*orderSlot, bool) {
	v, ok := s.keys.Load(key)
	if !ok {
		return nil, false
	}
	return v.(*orderSlot), true
}

// claim atomically inserts an empty slot for key. The caller that gets
// owner == true must resolve the slot; everyone else waits on it.
func (s *store) claim(key string) (slot *orderSlot, owner bool) {
	fresh := &orderSlot{ready: make(chan struct{})}
	actual, loaded := s.keys.LoadOrStore(key, fresh)
	return actual.(*orderSlot), !loaded
}
