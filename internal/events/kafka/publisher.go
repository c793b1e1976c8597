package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"sync"
	"time"

	"github.com/ledgerbook/backend/internal/config"
	"github.com/ledgerbook/backend/internal/events"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

const (
	// batchTimeout bounds how long a message waits in the writer before delivery.
	batchTimeout = 10 * time.Millisecond
	// dispatchTimeout bounds the metadata lookup and enqueue of one message.
	dispatchTimeout = 10 * time.Second
	queueSize       = 1024
)

// ErrQueueFull is returned when events arrive faster than the broker accepts them.
var ErrQueueFull = errors.New("kafka: event queue full")

// Publisher hands events to a background dispatcher so callers never wait
// on the broker. Delivery failures are logged, not returned.
type Publisher struct {
	writer  *kafka.Writer
	logger  *zap.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	queue  chan kafka.Message
	done   chan struct{}
}

func NewPublisher(cfg config.KafkaConfig, logger *zap.Logger) *Publisher {
	return newPublisher(cfg, logger, dispatchTimeout)
}

func newPublisher(cfg config.KafkaConfig, logger *zap.Logger, timeout time.Duration) *Publisher {
	p := &Publisher{
		logger:  logger.Named("events"),
		timeout: timeout,
		queue:   make(chan kafka.Message, queueSize),
		done:    make(chan struct{}),
	}
	p.writer = &kafka.Writer{
		Addr:                   kafka.TCP(cfg.Brokers...),
		Topic:                  cfg.Topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		Async:                  true,
		BatchTimeout:           batchTimeout,
		Completion:             p.completed,
	}
	go p.dispatch()
	return p
}

// NewFromConfig returns a Kafka publisher, or a no-op one when no brokers are set.
func NewFromConfig(cfg config.KafkaConfig, logger *zap.Logger) events.Publisher {
	if len(cfg.Brokers) == 0 {
		logger.Info("kafka brokers not configured, domain events disabled")
		return events.NopPublisher{}
	}
	logger.Info("publishing domain events", zap.Strings("brokers", cfg.Brokers), zap.String("topic", cfg.Topic))
	return NewPublisher(cfg, logger)
}

// Publish enqueues the event and returns without touching the network.
func (p *Publisher) Publish(_ context.Context, event events.Event) error {
	msg, err := newMessage(event)
	if err != nil {
		return err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return fmt.Errorf("publish %s: %w", event.Type, io.ErrClosedPipe)
	}
	select {
	case p.queue <- msg:
		return nil
	default:
		return fmt.Errorf("publish %s: %w", event.Type, ErrQueueFull)
	}
}

// Close stops accepting events, drains the queue and flushes the writer.
func (p *Publisher) Close() error {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return nil
	}
	p.closed = true
	close(p.queue)
	p.mu.Unlock()

	<-p.done
	return p.writer.Close()
}

func (p *Publisher) dispatch() {
	defer close(p.done)
	for msg := range p.queue {
		ctx, cancel := context.WithTimeout(context.Background(), p.timeout)
		err := p.writer.WriteMessages(ctx, msg)
		cancel()
		if err != nil {
			p.completed([]kafka.Message{msg}, err)
		}
	}
}

func (p *Publisher) completed(messages []kafka.Message, err error) {
	for _, msg := range messages {
		typ := eventType(msg)
		if err != nil {
			p.logger.Warn("event delivery failed", zap.String("type", typ), zap.ByteString("key", msg.Key), zap.Error(err))
			continue
		}
		p.logger.Debug("event published", zap.String("type", typ), zap.ByteString("key", msg.Key))
	}
}

func eventType(msg kafka.Message) string {
	for _, h := range msg.Headers {
		if h.Key == eventTypeHeader {
			return string(h.Value)
		}
	}
	return ""
}

const eventTypeHeader = "event-type"

// newMessage keys messages by user so one tenant's events stay ordered.
func newMessage(event events.Event) (kafka.Message, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return kafka.Message{}, fmt.Errorf("encode %s event: %w", event.Type, err)
	}
	return kafka.Message{
		Key:   []byte(strconv.FormatInt(event.UserID, 10)),
		Value: data,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: eventTypeHeader, Value: []byte(event.Type)},
		},
	}, nil
}

var _ events.Publisher = (*Publisher)(nil)
