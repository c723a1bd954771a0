package notify

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Dispatcher delivers events to a Sink from a background worker, so
// request handlers never wait on the spreadsheet. Delivery is
// best-effort: failures are logged and the event is dropped.
type Dispatcher struct {
	sink      Sink
	logger    *zap.Logger
	timeout   time.Duration
	events    chan Event
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// NewDispatcher creates a dispatcher and starts its worker goroutine
func NewDispatcher(sink Sink, logger *zap.Logger, bufferSize int, timeout time.Duration) *Dispatcher {
	if bufferSize <= 0 {
		bufferSize = 256
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	d := &Dispatcher{
		sink:    sink,
		logger:  logger,
		timeout: timeout,
		events:  make(chan Event, bufferSize),
	}

	d.wg.Add(1)
	go d.run()

	return d
}

// Dispatch enqueues an event for delivery. It never blocks: when the
// buffer is full the event is dropped with a warning.
func (d *Dispatcher) Dispatch(event Event) {
	select {
	case d.events <- event:
	default:
		d.logger.Warn("notification buffer full, dropping event",
			zap.String("kind", event.Kind),
		)
	}
}

// Close stops accepting events and drains the buffer before returning.
// Safe to call multiple times.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.events)
		d.wg.Wait()
	})
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for event := range d.events {
		d.deliver(event)
	}
}

// deliver appends a single event, recovering from sink panics so the
// worker survives a misbehaving implementation
func (d *Dispatcher) deliver(event Event) {
	defer func() {
		if r := recover(); r != nil {
			d.logger.Error("notification sink panicked",
				zap.String("kind", event.Kind),
				zap.Any("panic", r),
			)
		}
	}()

	ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
	defer cancel()

	if err := d.sink.Append(ctx, event); err != nil {
		d.logger.Error("failed to append notification event",
			zap.String("kind", event.Kind),
			zap.Error(err),
		)
	}
}
