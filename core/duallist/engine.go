package duallist

import "go.uber.org/zap"

// Engine orchestrates transfers over a Store and publishes a Change after
// every transition that mutated state. Ingest always publishes.
type Engine struct {
	store    *Store
	notifier *Notifier
	logger   *zap.Logger
}

type Option func(*Engine)

func WithLogger(logger *zap.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

func WithNotifier(n *Notifier) Option {
	return func(e *Engine) {
		if n != nil {
			e.notifier = n
		}
	}
}

func NewEngine(opts ...Option) *Engine {
	e := &Engine{
		store:    NewStore(),
		notifier: NewNotifier(),
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.logger = e.logger.With(zap.String("component", "duallist"))
	return e
}

// Ingest parses raw with ParseSource, resets the partition and returns the
// new output, which is always "".
func (e *Engine) Ingest(raw string) string {
	return e.IngestLabels(ParseSource(raw))
}

func (e *Engine) IngestLabels(labels []string) string {
	e.store.Ingest(labels)
	e.logger.Debug("ingested source",
		zap.Int("available", e.store.Len(Available)),
	)
	return e.publish(OpIngest, Available)
}

// MoveSelected transfers the highlighted labels off side. Repeated labels in
// highlighted count once. It reports whether state changed; unchanged state
// publishes nothing.
func (e *Engine) MoveSelected(side Side, highlighted []string) bool {
	if !side.Valid() {
		e.logger.Debug("move ignored", zap.Stringer("side", side), zap.String("reason", "invalid side"))
		return false
	}
	set := dedupe(highlighted)
	before := e.store.Len(side)
	if !e.store.MoveSelected(side, set) {
		e.logger.Debug("move ignored",
			zap.Stringer("side", side),
			zap.Int("requested", len(set)),
			zap.String("reason", "no requested label on side"),
		)
		return false
	}
	e.logger.Debug("moved selected labels",
		zap.Stringer("side", side),
		zap.Int("moved", before-e.store.Len(side)),
	)
	e.publish(OpMoveSelected, side)
	return true
}

// MoveAll transfers every label off side. An empty side is a silent no-op.
func (e *Engine) MoveAll(side Side) bool {
	if !side.Valid() {
		e.logger.Debug("move all ignored", zap.Stringer("side", side), zap.String("reason", "invalid side"))
		return false
	}
	n := e.store.Len(side)
	if n == 0 || !e.store.MoveAll(side) {
		e.logger.Debug("move all ignored",
			zap.Stringer("side", side),
			zap.String("reason", "side empty"),
		)
		return false
	}
	e.logger.Debug("moved all labels",
		zap.Stringer("side", side),
		zap.Int("moved", n),
	)
	e.publish(OpMoveAll, side)
	return true
}

func (e *Engine) Value() string {
	return e.store.Serialize()
}

func (e *Engine) Snapshot() State {
	return e.store.Snapshot()
}

func (e *Engine) Labels(side Side) []string {
	return e.store.Labels(side)
}

func (e *Engine) Len(side Side) int {
	return e.store.Len(side)
}

func (e *Engine) Subscribe(fn func(Change)) func() {
	return e.notifier.Subscribe(fn)
}

func (e *Engine) publish(op Op, side Side) string {
	value := e.store.Serialize()
	c := e.notifier.Notify(Change{Op: op, Side: side, Value: value})
	e.logger.Debug("value changed",
		zap.Uint64("seq", c.Seq),
		zap.String("op", string(op)),
		zap.String("value", value),
	)
	return value
}

func dedupe(labels []string) map[string]struct{} {
	seen := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		seen[l] = struct{}{}
	}
	return seen
}
