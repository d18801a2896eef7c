package bridge

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/jask/formcontrols/core/duallist"
	"github.com/jask/formcontrols/widgets"
)

var (
	ErrUnknownProperty  = errors.New("unknown property")
	ErrReadOnlyProperty = errors.New("property is read-only")
	ErrInvalidValue     = errors.New("invalid property value")
	ErrReadOnly         = errors.New("control is read-only")
)

// Event is what the host receives after every committed change.
type Event struct {
	Name      string
	ControlID string
	Seq       uint64
	Detail    string
}

// Presentation holds the display-only properties.
type Presentation struct {
	LeftTitle   string
	RightTitle  string
	HeaderColor string
}

func DefaultPresentation() Presentation {
	return Presentation{LeftTitle: "Available", RightTitle: "Selected", HeaderColor: "#f0f0f0"}
}

// Control is one placed dual listbox. Like its engine it is not safe for
// concurrent use.
type Control struct {
	id           uuid.UUID
	meta         Meta
	engine       *duallist.Engine
	source       string
	presentation Presentation
	readOnly     bool
	logger       *zap.Logger
}

type Option func(*Control)

func WithLogger(logger *zap.Logger) Option {
	return func(c *Control) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func WithID(id uuid.UUID) Option {
	return func(c *Control) { c.id = id }
}

func WithPresentation(p Presentation) Option {
	return func(c *Control) { c.presentation = p }
}

func NewDualListbox(opts ...Option) *Control {
	c := &Control{
		id:           uuid.New(),
		meta:         DualListboxMeta(),
		presentation: DefaultPresentation(),
		logger:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(zap.String("control_id", c.id.String()))
	c.engine = duallist.NewEngine(duallist.WithLogger(c.logger))
	return c
}

func (c *Control) ID() string {
	return c.id.String()
}

func (c *Control) Meta() Meta {
	return c.meta
}

func (c *Control) Engine() *duallist.Engine {
	return c.engine
}

// SetProperty applies a host property change. Setting leftOptions always
// re-ingests, even when the string is unchanged.
func (c *Control) SetProperty(name, value string) error {
	switch name {
	case PropLeftOptions:
		c.source = value
		c.engine.Ingest(value)
	case PropLeftTitle:
		c.presentation.LeftTitle = value
	case PropRightTitle:
		c.presentation.RightTitle = value
	case PropHeaderColor:
		if _, err := widgets.ParseHexColor(value); err != nil {
			return fmt.Errorf("%s: %w: %v", name, ErrInvalidValue, err)
		}
		c.presentation.HeaderColor = strings.TrimSpace(value)
	case PropRightOut:
		return fmt.Errorf("%s: %w", name, ErrReadOnlyProperty)
	default:
		return fmt.Errorf("%s: %w", name, ErrUnknownProperty)
	}
	c.logger.Debug("property set", zap.String("property", name))
	return nil
}

func (c *Control) Property(name string) (string, error) {
	switch name {
	case PropLeftOptions:
		return c.source, nil
	case PropRightOut:
		return c.Value(), nil
	case PropLeftTitle:
		return c.presentation.LeftTitle, nil
	case PropRightTitle:
		return c.presentation.RightTitle, nil
	case PropHeaderColor:
		return c.presentation.HeaderColor, nil
	default:
		return "", fmt.Errorf("%s: %w", name, ErrUnknownProperty)
	}
}

// Value is the value field the host stores with the form.
func (c *Control) Value() string {
	return c.engine.Value()
}

func (c *Control) Presentation() Presentation {
	return c.presentation
}

func (c *Control) ReadOnly() bool {
	return c.readOnly
}

func (c *Control) SetReadOnly(readOnly bool) {
	c.readOnly = readOnly
}

// MoveSelected transfers highlighted labels off side. It reports whether
// anything moved.
func (c *Control) MoveSelected(side duallist.Side, highlighted []string) (bool, error) {
	if c.readOnly {
		return false, ErrReadOnly
	}
	return c.engine.MoveSelected(side, highlighted), nil
}

func (c *Control) MoveAll(side duallist.Side) (bool, error) {
	if c.readOnly {
		return false, ErrReadOnly
	}
	return c.engine.MoveAll(side), nil
}

// OnEvent registers a host listener and returns a cancel func. Events
// arrive in commit order.
func (c *Control) OnEvent(fn func(Event)) func() {
	if fn == nil {
		return func() {}
	}
	return c.engine.Subscribe(func(ch duallist.Change) {
		fn(Event{Name: EventValueChange, ControlID: c.ID(), Seq: ch.Seq, Detail: ch.Value})
	})
}
