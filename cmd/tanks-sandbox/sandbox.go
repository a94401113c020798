package main

import (
	"errors"
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/space-tanks/arena"
	"github.com/lixenwraith/space-tanks/audio"
	"github.com/lixenwraith/space-tanks/collision"
	"github.com/lixenwraith/space-tanks/game"
	"github.com/lixenwraith/space-tanks/parameter"
	"github.com/lixenwraith/space-tanks/status"
	"github.com/lixenwraith/space-tanks/system"
	"github.com/lixenwraith/space-tanks/vmath"
)

const (
	frameRate = 30

	// Terminals report key repeats, never releases; a control stays held this long after the last repeat
	holdTicks = parameter.TicksPerSecond / 4

	helpText = "arrows steer  space fire  t add tank  r reset  p pause  m mute  q quit"
)

const (
	ctlLeft = iota
	ctlRight
	ctlThrust
	ctlCount
)

var (
	styleBg        = tcell.StyleDefault.Background(tcell.NewRGBColor(26, 27, 38))
	styleObstacle  = styleBg.Foreground(tcell.NewRGBColor(110, 110, 130))
	stylePyramid   = styleBg.Foreground(tcell.NewRGBColor(150, 130, 90))
	styleTank      = styleBg.Foreground(tcell.NewRGBColor(255, 80, 80)).Bold(true)
	styleWreck     = styleBg.Foreground(tcell.NewRGBColor(110, 60, 60))
	stylePlayer    = styleBg.Foreground(tcell.NewRGBColor(80, 255, 120)).Bold(true)
	styleShot      = styleBg.Foreground(tcell.NewRGBColor(255, 230, 80))
	styleEnemyShot = styleBg.Foreground(tcell.NewRGBColor(255, 140, 40))
	styleDebris    = styleBg.Foreground(tcell.NewRGBColor(170, 110, 60))
	styleHUD       = styleBg.Foreground(tcell.NewRGBColor(200, 200, 200))
)

type sandbox struct {
	screen    tcell.Screen
	world     *game.World
	cues      *audio.Player
	metrics   *status.Registry
	arenaPath string
	view      view

	held    [ctlCount]int64 // sim tick until which each control counts as pressed
	fire    bool
	paused  bool
	message string

	ticksThisSecond int
	secondStart     time.Time
}

func newSandbox(screen tcell.Screen, world *game.World, cues *audio.Player, arenaPath string) *sandbox {
	cols, rows := screen.Size()
	sb := &sandbox{
		screen:    screen,
		world:     world,
		cues:      cues,
		metrics:   status.NewRegistry(),
		arenaPath: arenaPath,
	}
	sb.view = newView(cols, rows-1, arenaExtent(world.Arena()))
	sb.metrics.SetLabel("arena", world.Arena().Name)
	return sb
}

// arenaExtent is the half size of the square that holds every obstacle and the tank spawn area
func arenaExtent(a *arena.Arena) float64 {
	ext := a.TankSpawnRange
	for _, o := range a.Obstacles {
		ext = max(ext, math.Abs(o.X), math.Abs(o.Z))
	}
	return ext + 2
}

func (s *sandbox) run(watcher *arena.Watcher) {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := s.screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	var reload <-chan string
	var watchErrs <-chan error
	if watcher != nil {
		reload = watcher.Events
		watchErrs = watcher.Errors
	}

	sim := time.NewTicker(time.Second / parameter.TicksPerSecond)
	defer sim.Stop()
	frame := time.NewTicker(time.Second / frameRate)
	defer frame.Stop()
	s.secondStart = time.Now()

	for {
		select {
		case ev := <-events:
			if !s.handle(ev) {
				return
			}
		case path, ok := <-reload:
			if !ok {
				reload = nil
				continue
			}
			s.reload(path)
		case err, ok := <-watchErrs:
			if !ok {
				watchErrs = nil
				continue
			}
			log.Printf("sandbox: watcher: %v", err)
		case <-sim.C:
			if !s.paused {
				s.step()
			}
		case <-frame.C:
			s.draw()
		}
	}
}

func (s *sandbox) handle(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		now := s.world.Stats().Tick
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyLeft:
			s.held[ctlLeft] = now + holdTicks
		case tcell.KeyRight:
			s.held[ctlRight] = now + holdTicks
		case tcell.KeyUp:
			s.held[ctlThrust] = now + holdTicks
		case tcell.KeyRune:
			switch ev.Rune() {
			case 'q':
				return false
			case ' ':
				s.fire = true
			case 'r':
				s.world.Reset()
				s.held = [ctlCount]int64{}
				s.message = "reset"
			case 't':
				if idx, ok := s.world.AddTank(); ok {
					s.message = fmt.Sprintf("tank %d joined", idx)
				} else {
					s.message = "all tank slots busy"
				}
			case 'p':
				s.paused = !s.paused
			case 'm':
				if s.cues.ToggleMute() {
					s.message = "audio on"
				} else {
					s.message = "audio off"
				}
			}
		}
	case *tcell.EventResize:
		cols, rows := ev.Size()
		s.view.resize(cols, rows-1, arenaExtent(s.world.Arena()))
		s.screen.Sync()
	}
	return true
}

func (s *sandbox) step() {
	now := s.world.Stats().Tick
	s.world.Tick(game.Input{
		Left:   s.held[ctlLeft] > now,
		Right:  s.held[ctlRight] > now,
		Thrust: s.held[ctlThrust] > now,
		Fire:   s.fire,
	})
	s.fire = false
	s.cues.PlayEvents(s.world.Events())

	s.ticksThisSecond++
	if elapsed := time.Since(s.secondStart); elapsed >= time.Second {
		s.metrics.Floats.Get("sim.tps").Set(float64(s.ticksThisSecond) / elapsed.Seconds())
		s.ticksThisSecond = 0
		s.secondStart = time.Now()
	}
}

// reload applies the edited arena to the running world, rebuilding it when pool sizes change
// A broken file keeps the current arena
func (s *sandbox) reload(path string) {
	cfg, err := arena.Load(path)
	if err != nil {
		s.message = err.Error()
		log.Printf("sandbox: reload: %v", err)
		return
	}
	if err := s.world.SetArena(cfg); err != nil {
		if !errors.Is(err, game.ErrCapacityChanged) {
			s.message = err.Error()
			log.Printf("sandbox: reload: %v", err)
			return
		}
		w, err := game.New(cfg, s.world.Seed())
		if err != nil {
			s.message = err.Error()
			log.Printf("sandbox: reload: %v", err)
			return
		}
		w.SetLogger(s.world.Logger())
		s.world = w
	}
	cols, rows := s.screen.Size()
	s.view.resize(cols, rows-1, arenaExtent(cfg))
	s.metrics.SetLabel("arena", cfg.Name)
	s.message = "reloaded " + path
}

func (s *sandbox) draw() {
	s.screen.SetStyle(styleBg)
	s.screen.Clear()

	s.world.Registry().Each(s.drawCollider)
	for _, o := range s.world.Obstacles() {
		s.drawObstacle(o)
	}

	s.world.Debris().Each(func(c *system.Chunk) {
		s.plot(c.Pos, '%', styleDebris)
	})
	s.world.Particles().Each(func(p *system.Particle) {
		level := int32(80 + min(vmath.ToFloat(p.Brightness)/parameter.ParticleBrightnessScale, 1)*175)
		s.plot(p.Pos, '.', styleBg.Foreground(tcell.NewRGBColor(level, level, level/2)))
	})
	s.world.Tanks().Each(func(_ int, t *system.Tank) {
		if t.Behaviour == system.BehaviourDead {
			s.plot(t.Pose.T, 'x', styleWreck)
			return
		}
		s.plotHeading(t.Pose, styleTank)
		s.plot(t.Pose.T, 'T', styleTank)
	})
	player := s.world.Player()
	s.plotHeading(player.Pose(), stylePlayer)
	s.plot(player.Position(), '@', stylePlayer)
	s.world.Projectiles().Each(func(slot int, p *system.Projectile) {
		style := styleEnemyShot
		if slot == parameter.PlayerProjectileSlot {
			style = styleShot
		}
		s.plot(p.Pose.T, '*', style)
	})

	s.drawHUD()
	s.screen.Show()
}

// drawObstacle marks the obstacle center with its shape
func (s *sandbox) drawObstacle(o system.Obstacle) {
	ch, style := '#', styleObstacle
	if o.Type.Shape == "pyramid" {
		ch, style = '^', stylePyramid
	}
	s.plot(o.Position, ch, style)
}

// drawCollider traces the oriented box of a static collider; tanks and the player have glyphs instead
func (s *sandbox) drawCollider(_ collision.Handle, c *collision.Collider) {
	mask := c.Mask()
	if !mask.Intersects(collision.MaskTankObstacle.Union(collision.MaskProjectileObstacle)) {
		return
	}
	ch, style := '+', styleObstacle
	if !mask.Has(collision.MaskTankObstacle) {
		ch, style = ':', stylePyramid
	}

	l2w := c.LocalToWorld()
	hb := c.HalfBoxWidth()
	// Two columns per row, so sample at column resolution
	steps := max(2*s.view.span(2*vmath.ToFloat(hb)), 4)
	for i := 0; i <= steps; i++ {
		a := -hb + 2*hb/int64(steps)*int64(i)
		edges := [4]vmath.Vec2{{X: a, Y: -hb}, {X: a, Y: hb}, {X: -hb, Y: a}, {X: hb, Y: a}}
		for _, p := range edges {
			w := l2w.TransformPoint(p)
			if col, row, ok := s.view.cellF(vmath.ToFloat(w.X), vmath.ToFloat(w.Y)); ok {
				s.set(col, row, ch, style)
			}
		}
	}
}

func (s *sandbox) plot(pos vmath.Vec3, ch rune, style tcell.Style) {
	if c, r, ok := s.view.cell(pos); ok {
		s.set(c, r, ch, style)
	}
}

// plotHeading marks the cell one unit ahead along the model X axis
func (s *sandbox) plotHeading(pose vmath.Transform3D, style tcell.Style) {
	ahead := pose.TransformPoint(vmath.Vec3{X: vmath.Scale})
	s.plot(ahead, '·', style)
}

func (s *sandbox) set(c, r int, ch rune, style tcell.Style) {
	if c < 0 || r < 0 || c >= s.view.cols || r >= s.view.rows {
		return
	}
	s.screen.SetContent(c, r, ch, nil, style)
}

func (s *sandbox) drawHUD() {
	s.world.Stats().Publish(s.metrics)
	state := "running"
	if s.paused {
		state = "paused"
	}
	s.metrics.SetLabel("state", state)

	var b strings.Builder
	for _, l := range s.metrics.Lines() {
		fmt.Fprintf(&b, "%s=%s ", l.Key, l.Value)
	}
	drawString(s.screen, 0, 0, b.String(), styleHUD)

	cols, rows := s.screen.Size()
	footer := helpText
	if s.message != "" {
		footer = s.message + "  |  " + helpText
	}
	if len(footer) > cols {
		footer = footer[:cols]
	}
	drawString(s.screen, 0, rows-1, footer, styleHUD)
}

func drawString(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for _, ch := range text {
		screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
