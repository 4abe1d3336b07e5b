package render

import (
	"fmt"
	"image/color"
	"sort"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/milk9111/bosshex/ecs"
	"github.com/milk9111/bosshex/ecs/component"
	"github.com/milk9111/bosshex/hex"
	"github.com/milk9111/bosshex/prefabs"
	"golang.org/x/image/font/basicfont"
)

const (
	darknessVision = 110.0
	lineHeight     = 16.0
)

var (
	backgroundColor = color.RGBA{R: 0x18, G: 0x18, B: 0x22, A: 0xff}
	floorColor      = color.RGBA{R: 0x55, G: 0x55, B: 0x66, A: 0xff}
	darknessColor   = color.RGBA{A: 235}
	healthBack      = color.RGBA{R: 0x40, A: 0xff}
	healthFront     = color.RGBA{R: 0x30, G: 0xd0, B: 0x30, A: 0xff}
	anchorColor     = color.RGBA{R: 0xc0, G: 0xc0, B: 0xc0, A: 0xff}
)

// HUD is what the overlay shows besides the world itself.
type HUD struct {
	Set            *hex.ActiveSet
	TicksPerSecond int
	Recent         []hex.Announcement
	Replica        bool
}

// Renderer draws the arena with flat shapes and a text overlay.
type Renderer struct {
	face text.Face
}

func NewRenderer() *Renderer {
	return &Renderer{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (r *Renderer) Draw(w *ecs.World, screen *ebiten.Image, hud HUD) {
	if r == nil || w == nil || screen == nil {
		return
	}
	screen.Fill(backgroundColor)

	if e, ok := ecs.First(w, component.LevelBoundsComponent.Kind()); ok {
		if b, ok := ecs.Get(w, e, component.LevelBoundsComponent.Kind()); ok && b.FloorY < b.Height {
			vector.FillRect(screen, 0, float32(b.FloorY), float32(b.Width), float32(b.Height-b.FloorY), floorColor, false)
		}
	}

	r.drawAnchors(w, screen)
	r.drawSprites(w, screen)
	r.drawDarkness(w, screen)
	r.drawHUD(w, screen, hud)
}

func (r *Renderer) drawSprites(w *ecs.World, screen *ebiten.Image) {
	type drawable struct {
		e ecs.Entity
		t *component.Transform
		s *component.Sprite
	}
	var items []drawable
	ecs.ForEach2(w, component.TransformComponent.Kind(), component.SpriteComponent.Kind(), func(e ecs.Entity, t *component.Transform, s *component.Sprite) {
		if s.Hidden {
			return
		}
		items = append(items, drawable{e: e, t: t, s: s})
	})
	sort.SliceStable(items, func(i, j int) bool { return uint64(items[i].e) < uint64(items[j].e) })

	for _, it := range items {
		clr := it.s.Color
		if clr == nil {
			clr = color.White
		}
		if h, ok := ecs.Get(w, it.e, component.HealthComponent.Kind()); ok && h.Dead {
			clr = color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 0x80}
		}
		if wf, ok := ecs.Get(w, it.e, component.WhiteFlashComponent.Kind()); ok && wf.On {
			clr = color.White
		}

		scale := it.t.Scale()
		width, height := it.s.Width*scale, it.s.Height*scale
		if it.s.Circle {
			vector.FillCircle(screen, float32(it.t.X), float32(it.t.Y), float32(width/2), clr, true)
			continue
		}
		x, y := it.t.X-width/2, it.t.Y-height/2
		vector.FillRect(screen, float32(x), float32(y), float32(width), float32(height), clr, false)

		if h, ok := ecs.Get(w, it.e, component.HealthComponent.Kind()); ok && !h.Dead && h.Max > 0 {
			frac := float64(h.Current) / float64(h.Max)
			vector.FillRect(screen, float32(x), float32(y-8), float32(width), 4, healthBack, false)
			vector.FillRect(screen, float32(x), float32(y-8), float32(width*frac), 4, healthFront, false)
		}
	}
}

func (r *Renderer) drawAnchors(w *ecs.World, screen *ebiten.Image) {
	ecs.ForEach2(w, component.AnchorComponent.Kind(), component.TransformComponent.Kind(), func(_ ecs.Entity, a *component.Anchor, t *component.Transform) {
		owner, ok := ecs.Get(w, ecs.Entity(a.Owner), component.TransformComponent.Kind())
		if !ok {
			return
		}
		vector.StrokeLine(screen, float32(owner.X), float32(owner.Y), float32(t.X), float32(t.Y), 2, anchorColor, true)
	})
}

// drawDarkness covers everything outside a window around the local player
// while they are under Blackout.
func (r *Renderer) drawDarkness(w *ecs.World, screen *ebiten.Image) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	st, ok := ecs.Get(w, player, component.StatusesComponent.Kind())
	if !ok || !st.Has(hex.StatusDarkness) {
		return
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}

	bw, bh := screen.Bounds().Dx(), screen.Bounds().Dy()
	sw, sh := float32(bw), float32(bh)
	left := float32(t.X - darknessVision)
	right := float32(t.X + darknessVision)
	top := float32(t.Y - darknessVision)
	bottom := float32(t.Y + darknessVision)

	vector.FillRect(screen, 0, 0, sw, max(top, 0), darknessColor, false)
	vector.FillRect(screen, 0, bottom, sw, max(sh-bottom, 0), darknessColor, false)
	vector.FillRect(screen, 0, top, max(left, 0), bottom-top, darknessColor, false)
	vector.FillRect(screen, right, top, max(sw-right, 0), bottom-top, darknessColor, false)
}

func (r *Renderer) drawHUD(w *ecs.World, screen *ebiten.Image, hud HUD) {
	y := 8.0
	line := func(s string, clr color.Color) {
		op := &text.DrawOptions{}
		op.GeoM.Translate(8, y)
		op.ColorScale.ScaleWithColor(clr)
		text.Draw(screen, s, r.face, op)
		y += lineHeight
	}

	title := "No hexes"
	if names := hud.Set.Names(); len(names) > 0 {
		title = "Hexes: " + strings.Join(names, ", ")
	}
	if hud.Replica {
		title += " (replica)"
	}
	line(title, color.White)

	if secs := hex.SecondsLeft(hud.Set, hud.TicksPerSecond); secs > 0 {
		line(fmt.Sprintf("Time left: %d:%02d", secs/60, secs%60), announcementColor(hex.ColorYellow))
	}
	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if g, ok := ecs.Get(w, player, component.GravityScaleComponent.Kind()); ok && g.Sign < 0 {
			line("Gravity: inverted", announcementColor(hex.ColorPurple))
		}
	}
	if hud.Set != nil && hud.Set.PacifistHealer != hex.NoParticipant && hud.Set.Constraint == hex.PacifistHealer {
		line(fmt.Sprintf("Healer: slot %d", hud.Set.PacifistHealer), announcementColor(hex.ColorGreen))
	}

	y += lineHeight / 2
	for _, a := range hud.Recent {
		line(a.Text, announcementColor(a.Color))
	}
}

func announcementColor(s string) color.Color {
	c, err := prefabs.ParseColor(s)
	if err != nil {
		return color.White
	}
	return c
}
