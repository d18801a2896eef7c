package hostscript

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jask/formcontrols/core/duallist"
	"github.com/jask/formcontrols/internal/bridge"
)

func runScript(t *testing.T, script string) (*bridge.Control, error) {
	t.Helper()
	cmds, err := Parse(strings.NewReader(script))
	require.NoError(t, err)

	c := bridge.NewDualListbox()
	return c, Run(context.Background(), c, cmds)
}

func TestRunScenarios(t *testing.T) {
	cmds, err := Parse(strings.NewReader(`
# scenario 1..4
set leftOptions A, B, C
move available B
moveall available
set leftOptions X, Y
`))
	require.NoError(t, err)
	require.Len(t, cmds, 4)
	require.Equal(t, 3, cmds[0].Line)

	c := bridge.NewDualListbox()
	var out []string
	c.OnEvent(func(e bridge.Event) { out = append(out, e.Detail) })
	require.NoError(t, Run(context.Background(), c, cmds))
	require.Equal(t, []string{"", "B", "B,A,C", ""}, out)
	require.Equal(t, []string{"X", "Y"}, c.Engine().Labels(duallist.Available))
}

func TestRunMoveBack(t *testing.T) {
	c, err := runScript(t, `
set leftOptions A, B, C, D
move left D, B, D
move right B
moveall selected
moveall selected
`)
	require.NoError(t, err)
	require.Equal(t, "", c.Value())
	require.Equal(t, []string{"A", "C", "B", "D"}, c.Engine().Labels(duallist.Available))
}

func TestRunReadOnly(t *testing.T) {
	cmds, err := Parse(strings.NewReader("set leftOptions A\nreadonly on\nmoveall available\n"))
	require.NoError(t, err)

	err = Run(context.Background(), bridge.NewDualListbox(), cmds)
	require.ErrorIs(t, err, bridge.ErrReadOnly)
	require.ErrorContains(t, err, "line 3")
}

func TestRunPropagatesPropertyErrors(t *testing.T) {
	cmds, err := Parse(strings.NewReader("set rightOut A"))
	require.NoError(t, err)
	err = Run(context.Background(), bridge.NewDualListbox(), cmds)
	require.ErrorIs(t, err, bridge.ErrReadOnlyProperty)
}

func TestRunStopsOnCancelledContext(t *testing.T) {
	cmds, err := Parse(strings.NewReader("set leftOptions A"))
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := bridge.NewDualListbox()
	require.ErrorIs(t, Run(ctx, c, cmds), context.Canceled)
	src, _ := c.Property(bridge.PropLeftOptions)
	require.Equal(t, "", src)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		target error
		line   string
	}{
		{name: "unknown verb", script: "select A", target: ErrUnknownCommand, line: "line 1"},
		{name: "set without name", script: "\nset", target: ErrMissingArgument, line: "line 2"},
		{name: "move without side", script: "move", target: ErrMissingArgument, line: "line 1"},
		{name: "readonly without flag", script: "readonly", target: ErrMissingArgument, line: "line 1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.script))
			require.ErrorIs(t, err, tt.target)
			require.ErrorContains(t, err, tt.line)
		})
	}

	_, err := Parse(strings.NewReader("moveall middle"))
	require.ErrorContains(t, err, "unknown side")
}

func TestParseKeepsValueSpacing(t *testing.T) {
	cmds, err := Parse(strings.NewReader("set leftTitle  Customer Accounts "))
	require.NoError(t, err)
	require.Equal(t, Command{Line: 1, Kind: KindSet, Name: "leftTitle", Value: "Customer Accounts"}, cmds[0])
}

func TestParseLongOptionLine(t *testing.T) {
	labels := make([]string, 20000)
	for i := range labels {
		labels[i] = fmt.Sprintf("Option %05d", i)
	}
	source := strings.Join(labels, ", ")
	require.Greater(t, len(source), 200*1024)

	c, err := runScript(t, "set leftOptions "+source+"\nmoveall available\n")
	require.NoError(t, err)
	require.Equal(t, strings.Join(labels, ","), c.Value())
}
