package main

import (
	"context"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/asciicam"
	"github.com/gogpu/asciicam/control"
	"github.com/gogpu/asciicam/internal/config"
	"github.com/gogpu/asciicam/render/term"
)

// charsetCycle is the order the c key steps through.
var charsetCycle = map[asciicam.CharsetMode]asciicam.CharsetMode{
	asciicam.CharsetDense: asciicam.CharsetLight,
	asciicam.CharsetLight: asciicam.CharsetWord,
	asciicam.CharsetWord:  asciicam.CharsetDense,
}

// runTerm renders to the terminal until ctx is done or the user quits.
//
// Keys: q/Esc quit, space freeze, o outline, c charset, r reset,
// +/- contrast, [/] threshold, g/G glow.
func runTerm(ctx context.Context, cfg *config.Config, src asciicam.FrameSource) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	r := term.New(screen)
	c := control.New(newPipeline(cfg), src, r, controlOptions(cfg, r.Area(cfg.FontSize))...)
	c.SetArea(r.Area(c.Settings().FontSize))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
				c.SetArea(r.Area(c.Settings().FontSize))
			case *tcell.EventKey:
				if !handleKey(c, ev) {
					cancel()
					return
				}
			}
		}
	}()

	return c.Run(ctx, cfg.FPS)
}

// handleKey applies a key press to c. It returns false on quit.
func handleKey(c *control.Controller, ev *tcell.EventKey) bool {
	if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
		return false
	}
	if ev.Key() != tcell.KeyRune {
		return true
	}

	switch ev.Rune() {
	case 'q':
		return false
	case ' ':
		c.ToggleFreeze()
	case 'r':
		c.Reset()
	case 'o':
		c.Update(func(s *asciicam.Settings) { s.OutlineMode = !s.OutlineMode })
	case 'c':
		c.Update(func(s *asciicam.Settings) {
			s.CharsetMode = charsetCycle[s.CharsetMode]
			if s.CharsetMode == asciicam.CharsetWord && s.WordPhrase == "" {
				s.WordPhrase = "ASCIICAM "
			}
		})
	case '+', '=':
		c.Update(func(s *asciicam.Settings) { s.Contrast += 0.1 })
	case '-':
		c.Update(func(s *asciicam.Settings) { s.Contrast -= 0.1 })
	case ']':
		c.Update(func(s *asciicam.Settings) { s.Threshold += 5 })
	case '[':
		c.Update(func(s *asciicam.Settings) { s.Threshold -= 5 })
	case 'g':
		c.Update(func(s *asciicam.Settings) { s.Glow -= 0.1 })
	case 'G':
		c.Update(func(s *asciicam.Settings) { s.Glow += 0.1 })
	}
	return true
}
