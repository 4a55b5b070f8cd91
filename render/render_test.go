package render

import (
	"errors"
	"testing"

	"github.com/battlesnakeio/termsnake/rules"
	"github.com/stretchr/testify/require"
)

func testGrid(t *testing.T) (*rules.Grid, rules.Position) {
	g := rules.NewGrid(4, 3)
	s, err := rules.NewSnake(g, rules.Position{X: 2, Y: 2}, 2, rules.Right)
	require.NoError(t, err)
	require.NoError(t, g.Set(4, 1, rules.Food))
	return g, s.Head()
}

func TestFramePlaying(t *testing.T) {
	g, head := testGrid(t)

	lines := Frame(g, head, HUD{Score: 3, ShowScore: true})
	require.Equal(t, []string{
		"+----+",
		"|   %|",
		"|+#  |",
		"|    |",
		"+----+",
		"",
		"  Score: 3",
		"",
	}, lines)
}

func TestFrameGameOver(t *testing.T) {
	g, head := testGrid(t)

	lines := Frame(g, head, HUD{Score: 0, ShowScore: true, GameOver: true})
	require.Equal(t, "  GAME OVER!", lines[5])
	require.Equal(t, "  Score: 0", lines[6])
}

func TestFrameBeforeFirstTick(t *testing.T) {
	g, head := testGrid(t)

	lines := Frame(g, head, HUD{})
	require.Len(t, lines, 8)
	require.Equal(t, "", lines[5])
	require.Equal(t, "", lines[6])
}

type recordingScreen struct {
	cleared int
	frames  [][]string
	err     error
}

func (r *recordingScreen) Clear() error {
	r.cleared++
	return r.err
}

func (r *recordingScreen) Draw(lines []string) error {
	r.frames = append(r.frames, lines)
	return nil
}

func TestDrawClearsFirst(t *testing.T) {
	s := &recordingScreen{}
	require.NoError(t, Draw(s, []string{"a"}))
	require.Equal(t, 1, s.cleared)
	require.Equal(t, [][]string{{"a"}}, s.frames)
}

func TestDrawClearError(t *testing.T) {
	s := &recordingScreen{err: errors.New("boom")}
	require.EqualError(t, Draw(s, []string{"a"}), "boom")
	require.Empty(t, s.frames)
}
