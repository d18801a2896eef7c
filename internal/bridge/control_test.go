package bridge

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/jask/formcontrols/core/duallist"
)

func newControl(t *testing.T) (*Control, *[]Event) {
	t.Helper()
	c := NewDualListbox()
	events := &[]Event{}
	t.Cleanup(c.OnEvent(func(e Event) { *events = append(*events, e) }))
	return c, events
}

func details(events []Event) []string {
	out := make([]string, 0, len(events))
	for _, e := range events {
		out = append(out, e.Detail)
	}
	return out
}

func TestControlHostFlow(t *testing.T) {
	c, events := newControl(t)

	require.NoError(t, c.SetProperty(PropLeftOptions, "A, B, C"))
	moved, err := c.MoveSelected(duallist.Available, []string{"B"})
	require.NoError(t, err)
	require.True(t, moved)
	moved, err = c.MoveAll(duallist.Available)
	require.NoError(t, err)
	require.True(t, moved)

	require.Equal(t, "B,A,C", c.Value())
	out, err := c.Property(PropRightOut)
	require.NoError(t, err)
	require.Equal(t, "B,A,C", out)

	require.Equal(t, []string{"", "B", "B,A,C"}, details(*events))
	for i, e := range *events {
		require.Equal(t, EventValueChange, e.Name)
		require.Equal(t, c.ID(), e.ControlID)
		require.Equal(t, uint64(i+1), e.Seq)
	}

	require.NoError(t, c.SetProperty(PropLeftOptions, "X, Y"))
	require.Equal(t, "", c.Value())
	require.Equal(t, []string{"X", "Y"}, c.Engine().Labels(duallist.Available))
	require.Len(t, *events, 4)
}

func TestControlSameSourceStillResets(t *testing.T) {
	c, events := newControl(t)
	require.NoError(t, c.SetProperty(PropLeftOptions, "A, B"))
	_, err := c.MoveAll(duallist.Available)
	require.NoError(t, err)

	require.NoError(t, c.SetProperty(PropLeftOptions, "A, B"))
	require.Equal(t, "", c.Value())
	require.Len(t, *events, 3)

	src, err := c.Property(PropLeftOptions)
	require.NoError(t, err)
	require.Equal(t, "A, B", src)
}

func TestControlPresentationProperties(t *testing.T) {
	c, events := newControl(t)
	require.NoError(t, c.SetProperty(PropLeftTitle, "Customers"))
	require.NoError(t, c.SetProperty(PropRightTitle, "Chosen"))
	require.NoError(t, c.SetProperty(PropHeaderColor, "#eb4034"))

	require.Equal(t, Presentation{LeftTitle: "Customers", RightTitle: "Chosen", HeaderColor: "#eb4034"}, c.Presentation())
	require.Empty(t, *events, "presentation changes are not value changes")

	err := c.SetProperty(PropHeaderColor, "crimson")
	require.ErrorIs(t, err, ErrInvalidValue)
	require.Equal(t, "#eb4034", c.Presentation().HeaderColor)
}

func TestControlPropertyErrors(t *testing.T) {
	c := NewDualListbox()
	require.ErrorIs(t, c.SetProperty(PropRightOut, "A"), ErrReadOnlyProperty)
	require.ErrorIs(t, c.SetProperty("colour", "x"), ErrUnknownProperty)
	_, err := c.Property("colour")
	require.ErrorIs(t, err, ErrUnknownProperty)
}

func TestControlReadOnlyRejectsMoves(t *testing.T) {
	c, events := newControl(t)
	require.NoError(t, c.SetProperty(PropLeftOptions, "A"))
	c.SetReadOnly(true)

	_, err := c.MoveAll(duallist.Available)
	require.ErrorIs(t, err, ErrReadOnly)
	_, err = c.MoveSelected(duallist.Available, []string{"A"})
	require.ErrorIs(t, err, ErrReadOnly)
	require.Len(t, *events, 1)

	c.SetReadOnly(false)
	moved, err := c.MoveAll(duallist.Available)
	require.NoError(t, err)
	require.True(t, moved)
}

func TestControlCancelledListenerStopsReceiving(t *testing.T) {
	c := NewDualListbox(WithID(uuid.MustParse("6f1c1f5e-7d1a-4a4b-9d7e-2b0d1f4e9a10")))
	count := 0
	cancel := c.OnEvent(func(Event) { count++ })
	require.NoError(t, c.SetProperty(PropLeftOptions, "A"))
	cancel()
	require.NoError(t, c.SetProperty(PropLeftOptions, "B"))
	require.Equal(t, 1, count)
	require.Equal(t, "6f1c1f5e-7d1a-4a4b-9d7e-2b0d1f4e9a10", c.ID())
}

func TestMetaJSON(t *testing.T) {
	data, err := json.Marshal(DualListboxMeta())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "Dual Listbox v2", decoded["controlName"])
	require.Equal(t, []any{EventValueChange}, decoded["events"])

	props, ok := decoded["properties"].(map[string]any)
	require.True(t, ok)
	require.Len(t, props, 5)
	rightOut := props[PropRightOut].(map[string]any)
	require.Equal(t, true, rightOut["isValueField"])

	vf, ok := DualListboxMeta().ValueField()
	require.True(t, ok)
	require.Equal(t, PropRightOut, vf.Name)
}
