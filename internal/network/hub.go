package network

import (
	"frostwild-server/pkg/api"
	"frostwild-server/pkg/logger"
	"sync"
	"sync/atomic"
)

// subscriberBuffer - сколько снимков копится у медленного клиента, прежде чем новые начнут отбрасываться
const subscriberBuffer = 32

// Broadcaster занимается только рассылкой снимков подписчикам (рендер-клиенты, автопилот)
type Broadcaster struct {
	mu sync.RWMutex
	// Мапа: токен подключения -> личный канал
	subscribers map[string]chan api.Snapshot
	dropped     atomic.Uint64
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		subscribers: make(map[string]chan api.Snapshot),
	}
}

// Register создает личный канал подписчика. Повторная регистрация закрывает старый канал.
func (b *Broadcaster) Register(id string) <-chan api.Snapshot {
	b.mu.Lock()
	defer b.mu.Unlock()

	if old, ok := b.subscribers[id]; ok {
		close(old)
	}

	ch := make(chan api.Snapshot, subscriberBuffer)
	b.subscribers[id] = ch
	return ch
}

// Release снимает подписку, только если она все еще принадлежит ch.
// Старое соединение с тем же токеном не выбивает новое.
func (b *Broadcaster) Release(id string, ch <-chan api.Snapshot) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if cur, ok := b.subscribers[id]; ok && cur == ch {
		close(cur)
		delete(b.subscribers, id)
	}
}

// SendTo отправляет снимок одному подписчику (Unicast)
func (b *Broadcaster) SendTo(id string, msg api.Snapshot) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()

	ch, ok := b.subscribers[id]
	if !ok {
		return false
	}
	select {
	case ch <- msg:
		return true
	default:
		return false
	}
}

// Broadcast отправляет всем. Симуляция никогда не ждет медленного клиента.
func (b *Broadcaster) Broadcast(msg api.Snapshot) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	for id, ch := range b.subscribers {
		select {
		case ch <- msg:
		default:
			if n := b.dropped.Add(1); n%100 == 1 {
				logger.Log.WithField("subscriber", id).Debug("Hub: channel full, snapshot dropped")
			}
		}
	}
}

// Dropped - сколько снимков не влезло в каналы подписчиков
func (b *Broadcaster) Dropped() uint64 {
	return b.dropped.Load()
}

// HasSubscriber проверяет, подключен ли кто-то с этим токеном
func (b *Broadcaster) HasSubscriber(id string) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.subscribers[id]
	return ok
}

// SubscriberCount возвращает количество активных подписчиков
func (b *Broadcaster) SubscriberCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subscribers)
}
