package illustration

import "navlun.com/app/internal/catalog"

const (
	truckCanvasW = 160
	truckCanvasH = 90

	groundY = 78
	wheelR  = 9
)

// cabStyle picks one of the two tractor shapes.
type cabStyle int

const (
	cabLongHaul cabStyle = iota
	cabCompact
)

// truckSpec is the per-variant drawing recipe: cab shape, trailer painter
// and axle positions for the wheel stamp.
type truckSpec struct {
	Cab     cabStyle
	Wheels  []float64
	Palette palette
	Trailer func(c *canvas, pal palette)
}

var truckSpecs = map[catalog.TruckVariant]truckSpec{
	catalog.TruckTautliner: {
		Cab:     cabLongHaul,
		Wheels:  []float64{30, 48, 120, 138},
		Palette: palette{Stroke: "#1e3a5f", Top: "#7ba3cc", Front: "#4a7ab5", Side: "#35608f"},
		Trailer: drawCurtainTrailer,
	},
	catalog.TruckRefrigerated: {
		Cab:     cabLongHaul,
		Wheels:  []float64{30, 48, 120, 138},
		Palette: palette{Stroke: "#164e63", Top: "#a5f3fc", Front: "#22d3ee", Side: "#0891b2"},
		Trailer: drawReeferTrailer,
	},
	catalog.TruckIsotherm: {
		Cab:     cabCompact,
		Wheels:  []float64{38, 126, 142},
		Palette: palette{Stroke: "#334155", Top: "#e2e8f0", Front: "#cbd5e1", Side: "#94a3b8"},
		Trailer: drawBoxTrailer,
	},
	catalog.TruckMegaTrailer: {
		Cab:     cabLongHaul,
		Wheels:  []float64{30, 48, 122, 140},
		Palette: palette{Stroke: "#312e81", Top: "#a5b4fc", Front: "#6366f1", Side: "#4338ca"},
		Trailer: drawMegaTrailer,
	},
	catalog.TruckJumbo: {
		Cab:     cabLongHaul,
		Wheels:  []float64{30, 48, 124, 142},
		Palette: palette{Stroke: "#7c2d12", Top: "#fdba74", Front: "#f97316", Side: "#c2410c"},
		Trailer: drawJumboTrailer,
	},
	catalog.TruckCustom: {
		Cab:     cabCompact,
		Wheels:  []float64{38, 130, 146},
		Palette: palette{Stroke: "#6b7280", Top: "#e5e7eb", Front: "#d1d5db", Side: "#9ca3af"},
		Trailer: drawCustomTrailer,
	},
}

// Truck renders the side-view illustration for one trailer configuration.
func Truck(v catalog.TruckVariant) string {
	c := newCanvas(truckCanvasW, truckCanvasH)
	spec := truckSpecs[v]

	spec.Trailer(c, spec.Palette)
	drawCab(c, spec.Cab, spec.Palette)
	for _, x := range spec.Wheels {
		drawWheel(c, x, groundY-wheelR, spec.Palette)
	}
	// Ground line under everything already painted.
	c.line(6, groundY, truckCanvasW-6, groundY, style{Stroke: spec.Palette.Stroke, StrokeWidth: 1})

	return c.String()
}

// drawCab paints the tractor. The long-haul cab has a sleeper hump and a
// raked windscreen; the compact cab is a short day cab.
func drawCab(c *canvas, cs cabStyle, pal palette) {
	body := style{Fill: pal.Front, Stroke: pal.Stroke}
	window := style{Fill: pal.Top, Stroke: pal.Stroke, StrokeWidth: 0.75}

	switch cs {
	case cabLongHaul:
		c.polygon([]point{
			{14, groundY - 4},
			{14, groundY - 30},
			{20, groundY - 38},
			{36, groundY - 38},
			{36, groundY - 4},
		}, body)
		c.polygon([]point{
			{16, groundY - 28},
			{20, groundY - 35},
			{28, groundY - 35},
			{28, groundY - 28},
		}, window)
		// Sleeper hump behind the cab roof.
		c.rect(36, groundY-34, 18, 30, style{Fill: pal.Side, Stroke: pal.Stroke})
	case cabCompact:
		c.polygon([]point{
			{16, groundY - 4},
			{16, groundY - 26},
			{22, groundY - 32},
			{34, groundY - 32},
			{34, groundY - 4},
		}, body)
		c.polygon([]point{
			{18, groundY - 24},
			{22, groundY - 29},
			{28, groundY - 29},
			{28, groundY - 24},
		}, window)
	}
}

// drawWheel stamps one wheel: outer tire ring, inner tread ring, hub.
func drawWheel(c *canvas, cx, cy float64, pal palette) {
	c.circle(cx, cy, wheelR, style{Fill: "#1f2937", Stroke: pal.Stroke})
	c.circle(cx, cy, 5.5, style{Fill: "#4b5563", Stroke: pal.Stroke, StrokeWidth: 0.75})
	c.circle(cx, cy, 2, style{Fill: pal.Top, Stroke: pal.Stroke, StrokeWidth: 0.5})
}

// Trailer painters. All start behind the cab at x=56 and run to the tail.

func drawCurtainTrailer(c *canvas, pal palette) {
	c.rect(56, groundY-46, 96, 42, style{Fill: pal.Front, Stroke: pal.Stroke})
	// Curtain pleats.
	pleat := style{Stroke: pal.Stroke, StrokeWidth: 0.5}
	for x := 64.0; x < 150; x += 10 {
		c.line(x, groundY-43, x, groundY-8, pleat)
	}
	// Tension rail along the bottom edge.
	c.line(56, groundY-10, 152, groundY-10, style{Stroke: pal.Stroke, StrokeWidth: 1.25})
}

func drawReeferTrailer(c *canvas, pal palette) {
	c.rect(56, groundY-46, 96, 42, style{Fill: pal.Front, Stroke: pal.Stroke})
	// Cooling unit mounted on the trailer nose.
	c.rect(56, groundY-44, 10, 20, style{Fill: pal.Side, Stroke: pal.Stroke})
	grill := style{Stroke: pal.Stroke, StrokeWidth: 0.5}
	for i := 1.0; i <= 3; i++ {
		c.line(57.5, groundY-44+i*5, 64.5, groundY-44+i*5, grill)
	}
}

func drawBoxTrailer(c *canvas, pal palette) {
	c.rect(50, groundY-44, 102, 40, style{Fill: pal.Front, Stroke: pal.Stroke})
	// Single horizontal panel seam.
	c.line(50, groundY-24, 152, groundY-24, style{Stroke: pal.Stroke, StrokeWidth: 0.5})
}

func drawMegaTrailer(c *canvas, pal palette) {
	// Lowered deck buys extra interior height.
	c.rect(56, groundY-52, 96, 48, style{Fill: pal.Front, Stroke: pal.Stroke})
	pleat := style{Stroke: pal.Stroke, StrokeWidth: 0.5}
	for x := 64.0; x < 150; x += 10 {
		c.line(x, groundY-49, x, groundY-7, pleat)
	}
}

func drawJumboTrailer(c *canvas, pal palette) {
	// Stepped deck: shallow section over the gooseneck, deep well behind.
	c.rect(56, groundY-44, 30, 40, style{Fill: pal.Front, Stroke: pal.Stroke})
	c.rect(86, groundY-52, 66, 48, style{Fill: pal.Front, Stroke: pal.Stroke})
	c.line(86, groundY-44, 86, groundY-4, style{Stroke: pal.Stroke, StrokeWidth: 1})
}

func drawCustomTrailer(c *canvas, pal palette) {
	// Dashed outline marks an unspecified body.
	c.rect(50, groundY-44, 102, 40, style{Fill: pal.Top, Stroke: pal.Stroke, Dash: "4 3"})
}
