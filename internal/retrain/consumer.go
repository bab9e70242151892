package retrain

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/streadway/amqp"
)

// DefaultQueue is the queue retrain triggers are consumed from.
const DefaultQueue = "model_retrain"

// Trigger is the optional JSON body of a retrain message. An empty body is a
// valid trigger.
type Trigger struct {
	RequestID   string `json:"request_id,omitempty"`
	RequestedBy string `json:"requested_by,omitempty"`
	Reason      string `json:"reason,omitempty"`
}

// Event is published after every retrain attempt when a Publisher is set.
type Event struct {
	RunID     string    `json:"run_id"`
	RequestID string    `json:"request_id,omitempty"`
	Status    string    `json:"status"`
	ModelID   string    `json:"model_id,omitempty"`
	Examples  int       `json:"examples"`
	Error     string    `json:"error,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// Publisher is satisfied by *amqp.Channel.
type Publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Consumer turns AMQP deliveries into serialized retrains.
type Consumer struct {
	coord     *Coordinator
	publisher Publisher
	exchange  string
}

// NewConsumer creates a Consumer. publisher may be nil; events then go
// unannounced.
func NewConsumer(coord *Coordinator, publisher Publisher, exchange string) *Consumer {
	return &Consumer{coord: coord, publisher: publisher, exchange: exchange}
}

// Run handles deliveries until ctx is done or the channel closes.
func (c *Consumer) Run(ctx context.Context, deliveries <-chan amqp.Delivery) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-deliveries:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			c.Handle(ctx, d)
		}
	}
}

// Handle processes one delivery. Malformed messages are rejected without
// requeue. Every other delivery is acked once its retrain finishes, whether
// or not training succeeded.
func (c *Consumer) Handle(ctx context.Context, d amqp.Delivery) {
	var trig Trigger
	if body := strings.TrimSpace(string(d.Body)); body != "" {
		if err := json.Unmarshal(d.Body, &trig); err != nil {
			log.Printf("[retrain] rejecting malformed trigger: %v", err)
			if err := d.Reject(false); err != nil {
				log.Printf("[retrain] reject failed: %v", err)
			}
			return
		}
	}

	reason := trig.Reason
	if reason == "" {
		reason = "amqp"
	}
	if trig.RequestedBy != "" {
		reason = fmt.Sprintf("%s (by %s)", reason, trig.RequestedBy)
	}

	run, _ := c.coord.Retrain(ctx, reason)
	c.announce(trig, run)

	if err := d.Ack(false); err != nil {
		log.Printf("[retrain] ack failed: %v", err)
	}
}

func (c *Consumer) announce(trig Trigger, run Run) {
	if c.publisher == nil || c.exchange == "" {
		return
	}
	ev := Event{
		RunID:     run.ID,
		RequestID: trig.RequestID,
		Status:    "completed",
		ModelID:   run.Summary.ModelID,
		Examples:  run.Summary.Examples,
		Error:     run.Error,
		Timestamp: run.FinishedAt,
	}
	if !run.OK() {
		ev.Status = "failed"
	}
	body, _ := json.Marshal(ev)

	err := c.publisher.Publish(c.exchange, "model."+ev.Status, false, false, amqp.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		log.Println("[retrain] failed to publish update:", err)
	}
}

// Listen connects to the broker, declares the durable queue and consumes
// triggers one at a time with manual acks. It returns when ctx is done or
// the connection drops.
func Listen(ctx context.Context, url, queue, exchange string, coord *Coordinator) error {
	if queue == "" {
		queue = DefaultQueue
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return fmt.Errorf("failed to connect to rabbitmq: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("failed to open channel: %w", err)
	}
	defer ch.Close()

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // auto-delete
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		return fmt.Errorf("failed to declare queue: %w", err)
	}

	var publisher Publisher
	if exchange != "" {
		if err := ch.ExchangeDeclare(exchange, "topic", true, false, false, false, nil); err != nil {
			return fmt.Errorf("failed to declare exchange: %w", err)
		}
		publisher = ch
	}

	if err := ch.Qos(1, 0, false); err != nil {
		return fmt.Errorf("failed to set qos: %w", err)
	}

	deliveries, err := ch.Consume(
		queue,
		"edu2job-retrain",
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to consume: %w", err)
	}

	log.Printf("[retrain] consuming triggers from queue %q", queue)
	return NewConsumer(coord, publisher, exchange).Run(ctx, deliveries)
}

// Backoff bounds the delay between reconnect attempts. The delay doubles
// after each failure up to Max and resets once a connection has stayed up
// for longer than Max.
type Backoff struct {
	Initial time.Duration
	Max     time.Duration
}

// DefaultBackoff is used by ListenForever for zero fields.
var DefaultBackoff = Backoff{Initial: time.Second, Max: time.Minute}

// ListenForever runs Listen and reconnects with exponential backoff whenever
// the broker connection fails or drops. It returns only when ctx is done.
func ListenForever(ctx context.Context, url, queue, exchange string, coord *Coordinator, b Backoff) error {
	return keepListening(ctx, b, func(ctx context.Context) error {
		return Listen(ctx, url, queue, exchange, coord)
	})
}

func keepListening(ctx context.Context, b Backoff, listen func(context.Context) error) error {
	if b.Initial <= 0 {
		b.Initial = DefaultBackoff.Initial
	}
	if b.Max < b.Initial {
		b.Max = max(DefaultBackoff.Max, b.Initial)
	}

	wait := b.Initial
	for {
		started := time.Now()
		err := listen(ctx)
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if time.Since(started) > b.Max {
			wait = b.Initial
		}

		log.Printf("[retrain] consumer stopped: %v, reconnecting in %s", err, wait)
		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
		wait = min(wait*2, b.Max)
	}
}
