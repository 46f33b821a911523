package notify

import (
	"context"
	"encoding/json"
	"log"

	"github.com/go-redis/redis/v8"
)

type Event struct {
	UserID  string
	RideID  *string
	Type    string
	Message string
}

// Notifier é o contrato que os use cases enxergam
type Notifier interface {
	Dispatch(ev Event)
}

// Dispatcher grava a notificação e publica no canal do destinatário.
// Fire-and-forget: entrega em tempo real é melhor esforço, a linha do
// banco é a fonte de verdade.
type Dispatcher struct {
	store *Store
	rdb   *redis.Client
	queue chan Event
}

func NewDispatcher(store *Store, rdb *redis.Client) *Dispatcher {
	d := &Dispatcher{
		store: store,
		rdb:   rdb,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		n, err := d.store.Save(ev.UserID, ev.RideID, ev.Type, ev.Message)
		if err != nil {
			log.Println("notify error:", err)
			continue
		}

		if d.rdb == nil {
			continue
		}

		payload, err := json.Marshal(n)
		if err != nil {
			continue
		}

		channel := "notifications:" + ev.UserID
		if err := d.rdb.Publish(context.Background(), channel, payload).Err(); err != nil {
			log.Println("notify publish error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
		// enviado
	default:
		// fila cheia → descartamos a notificação (nunca quebrar API)
		log.Println("notify queue full, dropping event")
	}
}
