package input

import (
	"io/ioutil"
	"testing"

	"github.com/battlesnakeio/snake/rules"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

type fakeTarget struct {
	direction rules.Direction
	paused    bool
	calls     []string
}

func (f *fakeTarget) SetDirection(d rules.Direction) {
	f.direction = d
	f.calls = append(f.calls, "direction:"+string(d))
}

func (f *fakeTarget) Paused() bool { return f.paused }

func (f *fakeTarget) Pause() {
	f.paused = true
	f.calls = append(f.calls, "pause")
}

func (f *fakeTarget) Resume() {
	f.paused = false
	f.calls = append(f.calls, "resume")
}

func newTestAdapter(paused bool) (*Adapter, *fakeTarget) {
	target := &fakeTarget{direction: rules.DirectionRight, paused: paused}
	logger := log.New()
	logger.Out = ioutil.Discard
	return &Adapter{Target: target, Logger: logger}, target
}

func TestAdapter_HandleKey(t *testing.T) {
	tests := []struct {
		Name     string
		Paused   bool
		Key      string
		Handled  bool
		Calls    []string
		IsPaused bool
	}{
		{"ArrowWhilePaused", true, KeyArrowUp, true, []string{"direction:UP", "resume"}, false},
		{"ArrowWhileRunning", false, KeyArrowDown, true, []string{"direction:DOWN"}, false},
		{"LeftWhileRunning", false, KeyArrowLeft, true, []string{"direction:LEFT"}, false},
		{"RightWhilePaused", true, KeyArrowRight, true, []string{"direction:RIGHT", "resume"}, false},
		{"SpaceWhileRunning", false, KeySpace, true, []string{"pause"}, true},
		{"SpaceWhilePaused", true, KeySpace, true, []string{"resume"}, false},
		{"OtherWhileRunning", false, "KeyA", false, nil, false},
		{"OtherWhilePaused", true, "Enter", false, nil, true},
		{"EscapeIgnored", false, KeyEscape, false, nil, false},
	}

	for _, test := range tests {
		t.Run(test.Name, func(t *testing.T) {
			a, target := newTestAdapter(test.Paused)
			require.Equal(t, test.Handled, a.HandleKey(test.Key))
			require.Equal(t, test.Calls, target.calls)
			require.Equal(t, test.IsPaused, target.paused)
		})
	}
}

func TestAdapter_ToggleSequence(t *testing.T) {
	a, target := newTestAdapter(true)

	a.HandleKey(KeySpace)
	a.HandleKey(KeySpace)
	a.HandleKey(KeySpace)

	require.Equal(t, []string{"resume", "pause", "resume"}, target.calls)
	require.False(t, target.paused)
}

func TestParse(t *testing.T) {
	cmd, ok := Parse(KeySpace)
	require.True(t, ok)
	require.True(t, cmd.Toggle)

	cmd, ok = Parse(KeyArrowLeft)
	require.True(t, ok)
	require.False(t, cmd.Toggle)
	require.Equal(t, rules.DirectionLeft, cmd.Direction)

	_, ok = Parse("ArrowSideways")
	require.False(t, ok)
}
