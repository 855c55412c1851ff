package drain

import (
	"bytes"
	"sync"
	"time"

	"github.com/treelog/treelog/core"
)

// AsyncDrain decouples log calls from delivery: records are queued and
// written by a single background goroutine. When the queue is full the
// per-level OverflowPolicy decides whether to drop the record or to
// block briefly and then fall back to a synchronous write.
//
// Because call-site fields are only valid for the duration of the log
// call, the drain copies both field slices before queueing and
// materializes the record's timestamp so the delivered line carries
// the call-time instant, not the delivery-time one.
type AsyncDrain struct {
	next           Drain
	queue          chan *queuedRecord
	closed         chan struct{}
	closeOnce      sync.Once
	wg             sync.WaitGroup
	overflowPolicy map[core.Level]OverflowPolicy
	blockTimeout   time.Duration
	drainTimeout   time.Duration
	stats          *Stats
}

type queuedRecord struct {
	level  core.Level
	msg    string
	ts     time.Time
	logger []core.Field
	call   []core.Field
}

// AsyncConfig holds configuration for AsyncDrain
type AsyncConfig struct {
	// QueueSize is the capacity of the record queue (default: 1000)
	QueueSize int
	// OverflowPolicy defines per-level overflow behavior (default: DefaultLevelPolicy)
	OverflowPolicy map[core.Level]OverflowPolicy
	// BlockTimeout is the timeout for the Block policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining the queue on Close (default: 5s)
	DrainTimeout time.Duration
}

// NewAsyncDrain wraps next with a bounded queue and a background
// delivery goroutine. The drain takes ownership of next and closes it
// on Close.
func NewAsyncDrain(next Drain, cfg AsyncConfig) *AsyncDrain {
	if next == nil {
		next = Discard()
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = DefaultLevelPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}

	d := &AsyncDrain{
		next:           next,
		queue:          make(chan *queuedRecord, cfg.QueueSize),
		closed:         make(chan struct{}),
		overflowPolicy: cfg.OverflowPolicy,
		blockTimeout:   cfg.BlockTimeout,
		drainTimeout:   cfg.DrainTimeout,
		stats:          NewStats(),
	}
	d.wg.Add(1)
	go d.process()
	return d
}

// Log queues the record for background delivery
func (d *AsyncDrain) Log(buf *bytes.Buffer, rec *core.Record, logger, call []core.Field) error {
	q := &queuedRecord{
		level:  rec.Level(),
		msg:    rec.Message(),
		ts:     rec.Time(),
		logger: core.CopyFields(logger),
		call:   core.CopyFields(call),
	}

	policy, ok := d.overflowPolicy[q.level]
	if !ok {
		policy = DropNewest
	}

	switch policy {
	case Block:
		select {
		case d.queue <- q:
			return nil
		default:
		}
		select {
		case d.queue <- q:
			return nil
		case <-time.After(d.blockTimeout):
			// Timeout - fall back to a synchronous write
			d.stats.IncrementBlocked()
			return d.next.Log(buf, rec, logger, call)
		case <-d.closed:
			// Drain is closing, write synchronously
			return d.next.Log(buf, rec, logger, call)
		}

	case DropOldest:
		select {
		case d.queue <- q:
			return nil
		default:
		}
		// Queue full - drop the oldest and retry once
		select {
		case <-d.queue:
			d.stats.IncrementDropped(q.level)
		default:
		}
		select {
		case d.queue <- q:
			return nil
		default:
			d.stats.IncrementDropped(q.level)
			return nil
		}

	case DropNewest:
		fallthrough
	default:
		select {
		case d.queue <- q:
			return nil
		default:
			d.stats.IncrementDropped(q.level)
			return nil
		}
	}
}

// process is the background delivery goroutine
func (d *AsyncDrain) process() {
	defer d.wg.Done()

	var buf bytes.Buffer
	for {
		select {
		case q := <-d.queue:
			d.deliver(&buf, q)
		case <-d.closed:
			// Drain remaining records with a deadline
			deadline := time.After(d.drainTimeout)
			for {
				select {
				case q := <-d.queue:
					d.deliver(&buf, q)
				case <-deadline:
					return
				default:
					return
				}
			}
		}
	}
}

// deliver rebuilds a record and hands it to the wrapped drain, reusing
// the worker's buffer across deliveries.
func (d *AsyncDrain) deliver(buf *bytes.Buffer, q *queuedRecord) {
	rec := core.GetRecord(q.level, q.msg)
	rec.SetTime(q.ts)
	err := d.next.Log(buf, rec, q.logger, q.call)
	buf.Reset()
	core.PutRecord(rec)
	if err == nil {
		d.stats.IncrementProcessed()
	}
}

// Stats returns a snapshot of the drain's counters
func (d *AsyncDrain) Stats() Snapshot {
	return d.stats.GetSnapshot()
}

// Close stops the background goroutine, drains the queue (bounded by
// DrainTimeout), and closes the wrapped drain.
func (d *AsyncDrain) Close() error {
	d.closeOnce.Do(func() {
		close(d.closed)
		d.wg.Wait()
	})
	return d.next.Close()
}
