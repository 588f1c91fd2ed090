package broadcast

import (
	"encoding/json"
	"log"
	"sync"
)

// Message is one server-sent event.
type Message struct {
	Event string
	Data  string
}

type Broadcaster struct {
	Mu      sync.Mutex
	Clients map[chan Message]bool
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		Clients: make(map[chan Message]bool),
	}
}

func (b *Broadcaster) Subscribe() chan Message {
	ch := make(chan Message, 10)
	b.Mu.Lock()
	b.Clients[ch] = true
	b.Mu.Unlock()
	return ch
}

func (b *Broadcaster) Unsubscribe(ch chan Message) {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	if _, ok := b.Clients[ch]; !ok {
		return
	}
	delete(b.Clients, ch)
	close(ch)
}

// Broadcast sends to every subscriber, skipping those whose buffer is full.
func (b *Broadcaster) Broadcast(event string, data string) {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	for ch := range b.Clients {
		select {
		case ch <- Message{Event: event, Data: data}:
		default:
			// skip clients with full data channels
		}
	}
}

// BroadcastJSON encodes v and broadcasts it under event.
func (b *Broadcaster) BroadcastJSON(event string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("[SSE] Marshal error: %v\n", err)
		return
	}
	b.Broadcast(event, string(data))
}

// CloseAll unsubscribes every client, ending their streams.
func (b *Broadcaster) CloseAll() {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	for ch := range b.Clients {
		delete(b.Clients, ch)
		close(ch)
	}
}
