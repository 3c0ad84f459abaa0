package illustration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"navlun.com/app/internal/catalog"
)

var allTruckVariants = []catalog.TruckVariant{
	catalog.TruckTautliner,
	catalog.TruckRefrigerated,
	catalog.TruckIsotherm,
	catalog.TruckMegaTrailer,
	catalog.TruckJumbo,
	catalog.TruckCustom,
}

func TestTruckIsDeterministic(t *testing.T) {
	for _, v := range allTruckVariants {
		assert.Equal(t, Truck(v), Truck(v), "%s", v)
	}
}

func TestTruckVariantsAreDistinct(t *testing.T) {
	seen := map[string]catalog.TruckVariant{}
	for _, v := range allTruckVariants {
		doc := Truck(v)
		if prev, dup := seen[doc]; dup {
			t.Fatalf("%s and %s render identically", prev, v)
		}
		seen[doc] = v
	}
}

func TestTruckWheelCounts(t *testing.T) {
	// Each wheel stamp is three circles: tire, tread ring, hub.
	for _, v := range allTruckVariants {
		spec := truckSpecs[v]
		require.GreaterOrEqual(t, len(spec.Wheels), 3, "%s", v)
		require.LessOrEqual(t, len(spec.Wheels), 4, "%s", v)

		doc := Truck(v)
		assert.Equal(t, len(spec.Wheels)*3, strings.Count(doc, "<circle"), "%s", v)
	}
}

func TestCustomTruckIsDashed(t *testing.T) {
	assert.Contains(t, Truck(catalog.TruckCustom), `stroke-dasharray="4 3"`)
}

func TestLongHaulCabHasSleeper(t *testing.T) {
	// The sleeper hump is the long-haul cab's only rect besides the trailer
	// body, so long-haul drawings carry one rect more than compact ones
	// with the same trailer painter would.
	tautliner := Truck(catalog.TruckTautliner)
	isotherm := Truck(catalog.TruckIsotherm)
	assert.Greater(t, strings.Count(tautliner, "<rect"), strings.Count(isotherm, "<rect"))
}
