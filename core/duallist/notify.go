package duallist

// Op names the transition that produced a Change.
type Op string

const (
	OpIngest       Op = "ingest"
	OpMoveSelected Op = "move-selected"
	OpMoveAll      Op = "move-all"
)

// Change is delivered to subscribers once per committed transition. Value is
// the serialized selected side after the transition.
type Change struct {
	Seq   uint64
	Op    Op
	Side  Side
	Value string
}

type subscriber struct {
	id int
	fn func(Change)
}

// Notifier fans changes out to subscribers synchronously, in subscription
// order. A change raised by a subscriber while a delivery is in progress is
// queued behind it so every subscriber sees changes in the same order.
type Notifier struct {
	subs       []subscriber
	nextID     int
	seq        uint64
	delivering bool
	queue      []Change
}

func NewNotifier() *Notifier {
	return &Notifier{}
}

// Subscribe registers fn and returns a cancel func. Cancelling more than
// once is harmless.
func (n *Notifier) Subscribe(fn func(Change)) func() {
	if fn == nil {
		return func() {}
	}
	n.nextID++
	id := n.nextID
	n.subs = append(n.subs, subscriber{id: id, fn: fn})
	return func() { n.unsubscribe(id) }
}

func (n *Notifier) unsubscribe(id int) {
	for i, s := range n.subs {
		if s.id == id {
			n.subs = append(n.subs[:i:i], n.subs[i+1:]...)
			return
		}
	}
}

// Notify stamps c with the next sequence number and delivers it. If a
// subscriber panics, the subscribers after it miss that change, but every
// change already queued is still delivered before the first panic is
// re-raised, so no stamped change is dropped.
func (n *Notifier) Notify(c Change) Change {
	n.seq++
	c.Seq = n.seq
	n.queue = append(n.queue, c)
	if n.delivering {
		return c
	}
	n.delivering = true
	defer func() {
		n.delivering = false
		n.queue = nil
	}()
	var first any
	for len(n.queue) > 0 {
		next := n.queue[0]
		n.queue = n.queue[1:]
		if r := n.deliver(next); r != nil && first == nil {
			first = r
		}
	}
	if first != nil {
		panic(first)
	}
	return c
}

func (n *Notifier) deliver(c Change) (recovered any) {
	defer func() { recovered = recover() }()
	subs := append([]subscriber(nil), n.subs...)
	for _, s := range subs {
		s.fn(c)
	}
	return nil
}

// Seq is the sequence number of the last notification raised.
func (n *Notifier) Seq() uint64 {
	return n.seq
}

func (n *Notifier) Len() int {
	return len(n.subs)
}
