// internals/features/bookstore/inventory/service/reorder_events.go
package service

import (
	"context"
	"encoding/json"
	"log"
	"sync"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	model "bookstore_backend/internals/features/bookstore/inventory/model"
)

const reorderQueueName = "publisher_orders"

// Publisher AMQP opsional: konsumen eksternal (gudang/penerbit) bisa
// menindaklanjuti order restock tanpa polling. Publish selalu best-effort —
// transaksi bisnis TIDAK pernah gagal karena broker down.
var (
	reorderMu   sync.Mutex
	reorderConn *amqp.Connection
	reorderCh   *amqp.Channel
)

func InitReorderPublisher(url string) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return err
	}
	ch, err := conn.Channel()
	if err != nil {
		_ = conn.Close()
		return err
	}
	if _, err := ch.QueueDeclare(
		reorderQueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,
	); err != nil {
		_ = ch.Close()
		_ = conn.Close()
		return err
	}

	reorderMu.Lock()
	reorderConn, reorderCh = conn, ch
	reorderMu.Unlock()

	log.Printf("✅ Reorder publisher siap (queue=%s)", reorderQueueName)
	return nil
}

type reorderEvent struct {
	OrderID   int64     `json:"order_id"`
	ISBN      string    `json:"isbn"`
	Quantity  int       `json:"quantity_ordered"`
	OrderDate time.Time `json:"order_date"`
}

// PublishReorderEvent dipanggil SETELAH transaksi commit.
func PublishReorderEvent(order model.PublisherOrderModel) {
	reorderMu.Lock()
	ch := reorderCh
	reorderMu.Unlock()
	if ch == nil {
		return // publisher tidak dikonfigurasi
	}

	body, err := json.Marshal(reorderEvent{
		OrderID:   order.OrderID,
		ISBN:      order.OrderISBN,
		Quantity:  order.OrderQuantity,
		OrderDate: order.OrderDate,
	})
	if err != nil {
		log.Printf("[ERROR] marshal reorder event: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ch.PublishWithContext(ctx,
		"",               // exchange default
		reorderQueueName, // routing key = nama queue
		false,            // mandatory
		false,            // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			Body:         body,
		}); err != nil {
		log.Printf("[ERROR] publish reorder event order_id=%d: %v", order.OrderID, err)
		return
	}
	log.Printf("📨 Reorder event terkirim order_id=%d isbn=%s qty=%d", order.OrderID, order.OrderISBN, order.OrderQuantity)
}

func CloseReorderPublisher() {
	reorderMu.Lock()
	defer reorderMu.Unlock()
	if reorderCh != nil {
		_ = reorderCh.Close()
		reorderCh = nil
	}
	if reorderConn != nil {
		_ = reorderConn.Close()
		reorderConn = nil
	}
}
