package renderer

import (
	"math"
	"sort"

	"github.com/lixenwraith/orrery/camera"
	"github.com/lixenwraith/orrery/celestial"
	"github.com/lixenwraith/orrery/render"
)

const (
	// minDiscRows is the projected radius below which a body is a single glyph
	minDiscRows = 0.6

	// ambient keeps the night side of planets faintly visible
	ambient = 0.12

	starGlowExtent = 1.6
	starCoreRadius = 0.7
)

// BodyRenderer draws the star, planets and comets as shaded discs, far to near
type BodyRenderer struct {
	order []int
	projs []bodyProjection
}

type bodyProjection struct {
	pt     camera.Point
	radius float64 // rows
	ok     bool
}

// NewBodyRenderer creates the body renderer
func NewBodyRenderer() *BodyRenderer {
	return &BodyRenderer{}
}

// Render projects every discrete body and paints them with the painter's algorithm
func (r *BodyRenderer) Render(ctx render.Context, buf *render.Buffer) {
	bodies := ctx.Frame.Bodies
	r.order = r.order[:0]
	r.projs = append(r.projs[:0], make([]bodyProjection, len(bodies))...)

	var light camera.Point
	lightOK := false

	for i := range bodies {
		b := &bodies[i]
		if b.Kind == celestial.KindBelt || !b.Visible {
			continue
		}
		pt, ok := ctx.Projector.Project(b.Position.R3())
		if !ok {
			continue
		}
		r.projs[i] = bodyProjection{pt: pt, radius: ctx.Projector.Radius(b.Radius, pt.Dist), ok: true}
		r.order = append(r.order, i)
		if b.Kind == celestial.KindStar && !lightOK {
			light, lightOK = pt, true
		}
	}

	sort.SliceStable(r.order, func(a, c int) bool {
		return r.projs[r.order[a]].pt.Dist > r.projs[r.order[c]].pt.Dist
	})

	aspect := ctx.Projector.CellAspect()
	for _, i := range r.order {
		b := &bodies[i]
		p := r.projs[i]
		color := hexRGB(b.Color)

		if b.Kind == celestial.KindComet {
			renderTail(ctx, buf, b)
		}

		if p.radius < minDiscRows {
			if ctx.Projector.InBounds(p.pt) {
				glyph := '•'
				if b.Kind == celestial.KindStar {
					glyph = '☀'
				}
				buf.Set(int(p.pt.X), int(p.pt.Y), glyph, color, render.RGB{}, render.BlendFgOnly, 1, p.pt.Dist)
			}
			continue
		}

		if b.Kind == celestial.KindStar {
			renderStar(buf, p, b.Radius, color, aspect)
			continue
		}

		// Screen-space light direction toward the star; z biases toward the viewer
		lx, ly, lz := 0.0, 0.0, 1.0
		if lightOK {
			dx := (light.X - p.pt.X) / aspect
			dy := light.Y - p.pt.Y
			if l := math.Hypot(dx, dy); l > 0 {
				lx, ly = dx/l, dy/l
			}
			// Depth difference tilts the terminator when the star is behind or in front
			lz = math.Tanh((p.pt.Dist - light.Dist) / math.Max(b.Radius*4, 1))
			n := math.Sqrt(lx*lx + ly*ly + lz*lz)
			lx, ly, lz = lx/n, ly/n, lz/n
		}
		renderPlanet(buf, p, b.Radius, color, aspect, lx, ly, lz)
	}
}

// renderStar paints a glowing disc: white-hot core, colored rim, screen-blended corona
func renderStar(buf *render.Buffer, p bodyProjection, worldRadius float64, base render.RGB, aspect float64) {
	glow := p.radius * starGlowExtent
	minX, maxX := int(p.pt.X-glow*aspect-1), int(p.pt.X+glow*aspect+1)
	minY, maxY := int(p.pt.Y-glow-1), int(p.pt.Y+glow+1)

	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			nx := (float64(sx) + 0.5 - p.pt.X) / (p.radius * aspect)
			ny := (float64(sy) + 0.5 - p.pt.Y) / p.radius
			distSq := nx*nx + ny*ny
			if distSq > starGlowExtent*starGlowExtent {
				continue
			}

			if distSq <= 1 {
				nz := math.Sqrt(1 - distSq)
				rim := (1 - nz) * (1 - nz) * 0.8
				coreGlow := 0.0
				if d := math.Sqrt(distSq) / starCoreRadius; d < 1 {
					coreGlow = (1 - d) * 0.6
				}
				c := render.Add(render.Scale(base, 0.6+rim*0.4), render.Scale(render.RGBWhite, coreGlow))
				buf.Set(sx, sy, ' ', c, c, render.BlendReplace, 1, p.pt.Dist-nz*worldRadius)
			} else {
				falloff := math.Exp(-(math.Sqrt(distSq)-1)*3) * 0.5
				buf.Set(sx, sy, 0, render.RGB{}, base, render.BlendScreen, falloff, p.pt.Dist)
			}
		}
	}
}

// renderPlanet paints a Lambert-lit disc with a soft antialiased edge
func renderPlanet(buf *render.Buffer, p bodyProjection, worldRadius float64, base render.RGB, aspect, lx, ly, lz float64) {
	minX, maxX := int(p.pt.X-p.radius*aspect-1), int(p.pt.X+p.radius*aspect+1)
	minY, maxY := int(p.pt.Y-p.radius-1), int(p.pt.Y+p.radius+1)

	for sy := minY; sy <= maxY; sy++ {
		for sx := minX; sx <= maxX; sx++ {
			nx := (float64(sx) + 0.5 - p.pt.X) / (p.radius * aspect)
			ny := (float64(sy) + 0.5 - p.pt.Y) / p.radius
			distSq := nx*nx + ny*ny
			if distSq > 1 {
				continue
			}
			nz := math.Sqrt(1 - distSq)

			lambert := math.Max(0, nx*lx+ny*ly+nz*lz)
			c := render.Scale(base, ambient+(1-ambient)*lambert)

			alpha := 1.0
			if edge := 1 - math.Sqrt(distSq); edge < 0.08 {
				alpha = edge / 0.08
			}
			buf.Set(sx, sy, ' ', c, c, render.BlendAlpha, alpha, p.pt.Dist-nz*worldRadius)
		}
	}
}

// renderTail draws the comet trail oldest-first so newer points overwrite
func renderTail(ctx render.Context, buf *render.Buffer, b *celestial.Snapshot) {
	if len(b.Tail) == 0 {
		return
	}
	tailColor := hexRGB(b.TailColor)
	n := len(b.Tail)
	for i := n - 1; i >= 0; i-- {
		pt, ok := ctx.Projector.Project(b.Tail[i].R3())
		if !ok || !ctx.Projector.InBounds(pt) {
			continue
		}
		fade := 1 - float64(i)/float64(n)
		buf.Set(int(pt.X), int(pt.Y), '∙', render.Scale(tailColor, 0.3+0.7*fade), render.RGB{}, render.BlendFgOnly, 1, pt.Dist)
	}
}
