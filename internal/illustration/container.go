package illustration

import "navlun.com/app/internal/catalog"

// Canvas dimensions shared by all container drawings.
const (
	containerCanvasW = 120
	containerCanvasH = 84

	// Isometric projection offsets for the receding faces.
	isoDX = 14
	isoDY = 10

	// Baseline of the front face.
	boxX = 14
	boxY = 68
)

// boxWidth maps a size class to the front-face width of box-type drawings.
var boxWidth = map[catalog.ContainerSize]float64{
	catalog.SizeShort: 56,
	catalog.SizeLong:  68,
	catalog.SizeXLong: 78,
}

// palette holds the three face shades plus the outline color of a variant.
type palette struct {
	Stroke string
	Top    string
	Front  string
	Side   string
}

var containerPalettes = map[catalog.ContainerVariant]palette{
	catalog.VariantStandard:            {Stroke: "#1e3a5f", Top: "#7ba3cc", Front: "#4a7ab5", Side: "#35608f"},
	catalog.VariantHighCube:            {Stroke: "#312e81", Top: "#a5b4fc", Front: "#6366f1", Side: "#4338ca"},
	catalog.VariantOpenTop:             {Stroke: "#7c2d12", Top: "#fdba74", Front: "#f97316", Side: "#c2410c"},
	catalog.VariantFlatrack:            {Stroke: "#713f12", Top: "#d6b27a", Front: "#b45309", Side: "#92400e"},
	catalog.VariantFlatrackCollapsible: {Stroke: "#713f12", Top: "#d6b27a", Front: "#b45309", Side: "#92400e"},
	catalog.VariantPlatform:            {Stroke: "#44403c", Top: "#d6d3d1", Front: "#a8a29e", Side: "#78716c"},
	catalog.VariantRefrigerated:        {Stroke: "#164e63", Top: "#a5f3fc", Front: "#22d3ee", Side: "#0891b2"},
	catalog.VariantBulk:                {Stroke: "#3f6212", Top: "#bef264", Front: "#84cc16", Side: "#4d7c0f"},
	catalog.VariantTank:                {Stroke: "#334155", Top: "#cbd5e1", Front: "#94a3b8", Side: "#64748b"},
	// Neutral fill and dashed border signal "not a standard type".
	catalog.VariantCustom: {Stroke: "#6b7280", Top: "#e5e7eb", Front: "#d1d5db", Side: "#9ca3af"},
}

// boxHeight returns the front-face height: high cubes read visibly taller.
func boxHeight(v catalog.ContainerVariant) float64 {
	if v == catalog.VariantHighCube {
		return 34
	}
	return 28
}

// Container renders the illustration for one (variant, size) pair. Dispatch
// is exhaustive over the closed variant set; box-type variants share the
// isometric box generator, the rest have their own geometry.
func Container(v catalog.ContainerVariant, size catalog.ContainerSize) string {
	c := newCanvas(containerCanvasW, containerCanvasH)
	w := boxWidth[size]
	pal := containerPalettes[v]

	switch v {
	case catalog.VariantStandard, catalog.VariantHighCube:
		drawISOBox(c, w, boxHeight(v), pal, boxOpts{})
	case catalog.VariantOpenTop:
		drawISOBox(c, w, boxHeight(v), pal, boxOpts{NoTop: true})
		drawTopBars(c, w, boxHeight(v), pal)
	case catalog.VariantRefrigerated:
		drawISOBox(c, w, boxHeight(v), pal, boxOpts{})
		drawCondenser(c, boxHeight(v), pal)
	case catalog.VariantBulk:
		drawISOBox(c, w, boxHeight(v), pal, boxOpts{})
		drawHatches(c, w, boxHeight(v), pal)
	case catalog.VariantCustom:
		drawISOBox(c, w, boxHeight(v), pal, boxOpts{Dash: "4 3"})
	case catalog.VariantFlatrack:
		drawFlatrack(c, w, pal, false)
	case catalog.VariantFlatrackCollapsible:
		drawFlatrack(c, w, pal, true)
	case catalog.VariantPlatform:
		drawPlatform(c, w, pal)
	case catalog.VariantTank:
		drawTank(c, w, pal)
	}
	return c.String()
}

type boxOpts struct {
	NoTop bool
	Dash  string
}

// drawISOBox paints the shared isometric box: side face, top face (unless
// suppressed), front face, then corrugation lines on the front.
func drawISOBox(c *canvas, w, h float64, pal palette, opts boxOpts) {
	top := boxY - h

	side := style{Fill: pal.Side, Stroke: pal.Stroke, Dash: opts.Dash}
	c.polygon([]point{
		{boxX + w, top},
		{boxX + w + isoDX, top - isoDY},
		{boxX + w + isoDX, boxY - isoDY},
		{boxX + w, boxY},
	}, side)

	if !opts.NoTop {
		c.polygon([]point{
			{boxX, top},
			{boxX + isoDX, top - isoDY},
			{boxX + w + isoDX, top - isoDY},
			{boxX + w, top},
		}, style{Fill: pal.Top, Stroke: pal.Stroke, Dash: opts.Dash})
	}

	c.polygon([]point{
		{boxX, top},
		{boxX + w, top},
		{boxX + w, boxY},
		{boxX, boxY},
	}, style{Fill: pal.Front, Stroke: pal.Stroke, Dash: opts.Dash})

	// Corrugation: evenly spaced verticals across the front face.
	rib := style{Stroke: pal.Stroke, StrokeWidth: 0.5, Dash: opts.Dash}
	for x := boxX + 8.0; x < boxX+w-4; x += 8 {
		c.line(x, top+3, x, boxY-3, rib)
	}
}

// drawTopBars adds the open-top accent: vertical bars standing over the
// roofless opening.
func drawTopBars(c *canvas, w, h float64, pal palette) {
	top := boxY - h
	bar := style{Stroke: pal.Stroke, StrokeWidth: 1.5}
	for i := 0.0; i < 4; i++ {
		x := boxX + 6 + i*(w-12)/3
		c.line(x, top, x+isoDX*0.6, top-isoDY*0.6, bar)
	}
}

// drawCondenser adds the reefer's condenser unit glyph on the front face.
func drawCondenser(c *canvas, h float64, pal palette) {
	top := boxY - h
	c.rect(boxX+2, top+4, 10, h-8, style{Fill: pal.Top, Stroke: pal.Stroke})
	grill := style{Stroke: pal.Stroke, StrokeWidth: 0.5}
	for i := 1.0; i <= 3; i++ {
		y := top + 4 + i*(h-8)/4
		c.line(boxX+3.5, y, boxX+10.5, y, grill)
	}
}

// drawHatches adds the bulk loader's top hatch glyphs along the roof.
func drawHatches(c *canvas, w, h float64, pal palette) {
	top := boxY - h
	hatch := style{Fill: pal.Side, Stroke: pal.Stroke, StrokeWidth: 0.75}
	for i := 0.0; i < 3; i++ {
		cx := boxX + isoDX/2 + (i+0.5)*w/3
		c.ellipse(cx, top-isoDY/2, 5, 2.5, hatch)
	}
}

// drawFlatrack renders a deck with end posts. The collapsible variant shows
// its end bar lowered and dashed.
func drawFlatrack(c *canvas, w float64, pal palette, collapsible bool) {
	deckTop := boxY - 8.0

	// Deck as a shallow isometric slab.
	c.polygon([]point{
		{boxX + w, deckTop},
		{boxX + w + isoDX, deckTop - isoDY},
		{boxX + w + isoDX, boxY - isoDY},
		{boxX + w, boxY},
	}, style{Fill: pal.Side, Stroke: pal.Stroke})
	c.polygon([]point{
		{boxX, deckTop},
		{boxX + isoDX, deckTop - isoDY},
		{boxX + w + isoDX, deckTop - isoDY},
		{boxX + w, deckTop},
	}, style{Fill: pal.Top, Stroke: pal.Stroke})
	c.polygon([]point{
		{boxX, deckTop},
		{boxX + w, deckTop},
		{boxX + w, boxY},
		{boxX, boxY},
	}, style{Fill: pal.Front, Stroke: pal.Stroke})

	postH := 24.0
	post := style{Fill: pal.Front, Stroke: pal.Stroke}
	if collapsible {
		postH = 10
	}
	c.rect(boxX, deckTop-postH, 4, postH, post)
	c.rect(boxX+w-4, deckTop-postH, 4, postH, post)

	barStyle := style{Stroke: pal.Stroke, StrokeWidth: 1.5}
	barY := deckTop - postH + 2
	if collapsible {
		barStyle.Dash = "3 2"
	}
	c.line(boxX+4, barY, boxX+w-4, barY, barStyle)
}

// drawPlatform renders a bare deck on support struts.
func drawPlatform(c *canvas, w float64, pal palette) {
	deckTop := boxY - 10.0

	c.polygon([]point{
		{boxX, deckTop},
		{boxX + isoDX, deckTop - isoDY},
		{boxX + w + isoDX, deckTop - isoDY},
		{boxX + w, deckTop},
	}, style{Fill: pal.Top, Stroke: pal.Stroke})
	c.polygon([]point{
		{boxX, deckTop},
		{boxX + w, deckTop},
		{boxX + w, deckTop + 5},
		{boxX, deckTop + 5},
	}, style{Fill: pal.Front, Stroke: pal.Stroke})

	strut := style{Stroke: pal.Stroke, StrokeWidth: 2}
	for i := 0.0; i < 4; i++ {
		x := boxX + 4 + i*(w-8)/3
		c.line(x, deckTop+5, x, boxY, strut)
	}
}

// drawTank renders the vessel cross-section: concentric ellipses in a frame.
func drawTank(c *canvas, w float64, pal palette) {
	cy := boxY - 20.0
	cx := boxX + w/2

	// End frame posts.
	frame := style{Stroke: pal.Stroke, StrokeWidth: 1.5}
	c.line(boxX, boxY, boxX, cy-18, frame)
	c.line(boxX+w, boxY, boxX+w, cy-18, frame)
	c.line(boxX, boxY, boxX+w, boxY, frame)
	c.line(boxX, cy-18, boxX+w, cy-18, frame)

	c.ellipse(cx, cy, w/2-6, 16, style{Fill: pal.Side, Stroke: pal.Stroke})
	c.ellipse(cx, cy, w/2-12, 11, style{Fill: pal.Front, Stroke: pal.Stroke})
	c.ellipse(cx, cy, 5, 5, style{Fill: pal.Top, Stroke: pal.Stroke})
}
