package illustration

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navlun.com/app/internal/catalog"
)

var allVariants = []catalog.ContainerVariant{
	catalog.VariantStandard,
	catalog.VariantHighCube,
	catalog.VariantOpenTop,
	catalog.VariantFlatrack,
	catalog.VariantFlatrackCollapsible,
	catalog.VariantPlatform,
	catalog.VariantRefrigerated,
	catalog.VariantBulk,
	catalog.VariantTank,
	catalog.VariantCustom,
}

var allSizes = []catalog.ContainerSize{catalog.SizeShort, catalog.SizeLong, catalog.SizeXLong}

func TestContainerIsDeterministic(t *testing.T) {
	for _, v := range allVariants {
		for _, s := range allSizes {
			first := Container(v, s)
			second := Container(v, s)
			assert.Equal(t, first, second, "%s/%s", v, s)
		}
	}
}

func TestContainerProducesWellFormedSVG(t *testing.T) {
	for _, v := range allVariants {
		for _, s := range allSizes {
			doc := Container(v, s)
			assert.True(t, strings.HasPrefix(doc, `<svg xmlns="http://www.w3.org/2000/svg"`), "%s/%s", v, s)
			assert.True(t, strings.HasSuffix(doc, "</svg>"), "%s/%s", v, s)
			assert.NotContains(t, doc, "NaN")
		}
	}
}

func TestBoxWidthFollowsSize(t *testing.T) {
	// The front face's right edge lands at boxX+width, so the per-size
	// width shows up verbatim in the coordinates.
	for size, w := range map[catalog.ContainerSize]float64{
		catalog.SizeShort: 56,
		catalog.SizeLong:  68,
		catalog.SizeXLong: 78,
	} {
		doc := Container(catalog.VariantStandard, size)
		edge := fmt.Sprintf("%s,", num(boxX+w))
		assert.Contains(t, doc, edge, "size %s", size)
	}
}

func TestHighCubeIsTaller(t *testing.T) {
	assert.Equal(t, 34.0, boxHeight(catalog.VariantHighCube))
	for _, v := range allVariants {
		if v == catalog.VariantHighCube {
			continue
		}
		assert.Equal(t, 28.0, boxHeight(v), "%s", v)
	}

	// The taller front face starts higher up on the canvas.
	hc := Container(catalog.VariantHighCube, catalog.SizeLong)
	std := Container(catalog.VariantStandard, catalog.SizeLong)
	assert.Contains(t, hc, num(boxY-34))
	assert.NotContains(t, std, num(boxY-34))
}

func TestOpenTopSuppressesTopFace(t *testing.T) {
	std := Container(catalog.VariantStandard, catalog.SizeShort)
	open := Container(catalog.VariantOpenTop, catalog.SizeShort)

	// Same size, so the open top's missing roof means fewer polygons.
	assert.Greater(t, strings.Count(std, "<polygon"), strings.Count(open, "<polygon"))
	// And the bar accents add heavier strokes.
	assert.Contains(t, open, `stroke-width="1.5"`)
}

func TestCustomRendersDashedNeutral(t *testing.T) {
	doc := Container(catalog.VariantCustom, catalog.SizeShort)
	assert.Contains(t, doc, `stroke-dasharray="4 3"`)
	assert.Contains(t, doc, "#9ca3af")
}

func TestRefrigeratedAddsCondenserGlyph(t *testing.T) {
	doc := Container(catalog.VariantRefrigerated, catalog.SizeShort)
	std := Container(catalog.VariantStandard, catalog.SizeShort)
	assert.Greater(t, strings.Count(doc, "<rect"), strings.Count(std, "<rect"))
}

func TestBulkAddsHatchGlyphs(t *testing.T) {
	doc := Container(catalog.VariantBulk, catalog.SizeShort)
	assert.Equal(t, 3, strings.Count(doc, "<ellipse"))
}

func TestTankIsConcentricEllipses(t *testing.T) {
	doc := Container(catalog.VariantTank, catalog.SizeShort)
	assert.Equal(t, 3, strings.Count(doc, "<ellipse"))
	assert.Zero(t, strings.Count(doc, "<polygon"))
}

func TestFlatrackCollapsibleLowersEndBar(t *testing.T) {
	fixed := Container(catalog.VariantFlatrack, catalog.SizeShort)
	collapsible := Container(catalog.VariantFlatrackCollapsible, catalog.SizeShort)

	require.NotEqual(t, fixed, collapsible)
	assert.NotContains(t, fixed, "stroke-dasharray")
	assert.Contains(t, collapsible, `stroke-dasharray="3 2"`)
}
