// Package term plays a simulation in the terminal, two columns per cell.
package term

import (
	"context"
	"time"

	"github.com/gdamore/tcell/v2"

	"life-frames/internal/app"
	"life-frames/internal/core"
	"life-frames/internal/ui"
)

// Frame rate of the redraw loop. Generation pacing is separate.
const refresh = time.Second / 30

var (
	liveStyle   = tcell.StyleDefault.Background(tcell.ColorWhite)
	deadStyle   = tcell.StyleDefault.Background(tcell.ColorBlack)
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
)

// Player renders a core.Sim onto a tcell screen.
type Player struct {
	screen tcell.Screen
	ctl    *app.Controls
}

// NewPlayer prepares a player. The screen must already be initialised.
func NewPlayer(screen tcell.Screen, sim core.Sim, tps int) *Player {
	return &Player{screen: screen, ctl: app.NewControls(sim, tps)}
}

// Controls exposes the playback state.
func (p *Player) Controls() *app.Controls { return p.ctl }

// Draw paints the visible part of the grid and the status line.
func (p *Player) Draw() {
	p.screen.Clear()
	sw, sh := p.screen.Size()
	g := p.ctl.Sim.Current()
	rows := min(g.H, sh-1)
	cols := min(g.W, sw/2)
	for y := 0; y < rows; y++ {
		row := g.Row(y)
		for x := 0; x < cols; x++ {
			style := deadStyle
			if row[x] != 0 {
				style = liveStyle
			}
			p.screen.SetContent(x*2, y, ' ', nil, style)
			p.screen.SetContent(x*2+1, y, ' ', nil, style)
		}
	}
	if sh > 0 {
		status := ui.Snapshot(p.ctl.Sim, p.ctl.Last, p.ctl.Clock.TPS(), p.ctl.Paused()).Line()
		x := 0
		for _, r := range status {
			if x >= sw {
				break
			}
			p.screen.SetContent(x, max(rows, 0), r, nil, statusStyle)
			x++
		}
	}
	p.screen.Show()
}

// HandleKey applies a key press and reports whether the player should quit.
func (p *Player) HandleKey(ev *tcell.EventKey) (bool, error) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true, nil
	case tcell.KeyRune:
	default:
		return false, nil
	}
	switch ev.Rune() {
	case 'q':
		return true, nil
	case ' ':
		p.ctl.TogglePause()
	case 'n':
		p.ctl.StepOnce()
	case 'r':
		return false, p.ctl.Rewind()
	case '+', '=':
		p.ctl.Faster()
	case '-':
		p.ctl.Slower()
	}
	return false, nil
}

// Run drives the player until the user quits, ctx is cancelled, or a step
// fails.
func (p *Player) Run(ctx context.Context) error {
	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go p.screen.ChannelEvents(events, quit)

	ticker := time.NewTicker(refresh)
	defer ticker.Stop()

	p.Draw()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				done, err := p.HandleKey(ev)
				if done || err != nil {
					return err
				}
			case *tcell.EventResize:
				p.screen.Sync()
			case nil:
				return nil
			}
		case <-ticker.C:
			if _, err := p.ctl.Tick(nil); err != nil {
				return err
			}
			p.Draw()
		}
	}
}
