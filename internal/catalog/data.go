package catalog

// Fixed catalog shipped with the binary. Order matters: the first container
// entry is the resolution fallback, the first truck entry is the selector
// default. Adding an entry means adding both the option row and, for
// containers, the detail row under the same id.

var defaultContainers = []ContainerOption{
	{ID: "20-standard", Name: "20' Standard", Variant: VariantStandard, Size: SizeShort},
	{ID: "40-standard", Name: "40' Standard", Variant: VariantStandard, Size: SizeLong},
	{ID: "40-high-cube", Name: "40' High Cube", Variant: VariantHighCube, Size: SizeLong},
	{ID: "45-high-cube", Name: "45' High Cube", Variant: VariantHighCube, Size: SizeXLong},
	{ID: "20-open-top", Name: "20' Open Top", Variant: VariantOpenTop, Size: SizeShort},
	{ID: "40-open-top", Name: "40' Open Top", Variant: VariantOpenTop, Size: SizeLong},
	{ID: "20-flatrack", Name: "20' Flat Rack", Variant: VariantFlatrack, Size: SizeShort},
	{ID: "40-flatrack", Name: "40' Flat Rack", Variant: VariantFlatrack, Size: SizeLong},
	{ID: "20-flatrack-collapsible", Name: "20' Flat Rack Collapsible", Variant: VariantFlatrackCollapsible, Size: SizeShort},
	{ID: "40-flatrack-collapsible", Name: "40' Flat Rack Collapsible", Variant: VariantFlatrackCollapsible, Size: SizeLong},
	{ID: "20-platform", Name: "20' Platform", Variant: VariantPlatform, Size: SizeShort},
	{ID: "40-platform", Name: "40' Platform", Variant: VariantPlatform, Size: SizeLong},
	{ID: "20-refrigerated", Name: "20' Refrigerated", Variant: VariantRefrigerated, Size: SizeShort},
	{ID: "40-refrigerated", Name: "40' Refrigerated", Variant: VariantRefrigerated, Size: SizeLong},
	{ID: "20-bulk", Name: "20' Bulk", Variant: VariantBulk, Size: SizeShort},
	{ID: "20-tank", Name: "20' Tank", Variant: VariantTank, Size: SizeShort},
	{ID: "custom", Name: "Custom Equipment", Variant: VariantCustom, Size: SizeShort},
}

var defaultDetails = map[string]ContainerDetail{
	"20-standard": {
		InsideLength: "5.90 m", InsideWidth: "2.35 m", InsideHeight: "2.39 m",
		DoorWidth: "2.34 m", DoorHeight: "2.28 m",
		Capacity: "33.2 m3", TareWeight: "2230 kg", MaxCargoWeight: "28230 kg",
		Description: "The general purpose workhorse for dry cargo of any kind: boxes, pallets, sacks, drums.",
		Highlights: []string{
			"Suitable for most dry cargo",
			"Widely available at short notice",
			"Lashing rings on top and bottom rails",
		},
	},
	"40-standard": {
		InsideLength: "12.03 m", InsideWidth: "2.35 m", InsideHeight: "2.39 m",
		DoorWidth: "2.34 m", DoorHeight: "2.28 m",
		Capacity: "67.7 m3", TareWeight: "3780 kg", MaxCargoWeight: "26700 kg",
		Description: "Double the length of the 20' standard for voluminous dry cargo at the same width and height.",
		Highlights: []string{
			"Best price per cubic metre for dry cargo",
			"Fits 25 euro pallets in one tier",
			"Lashing rings on top and bottom rails",
		},
	},
	"40-high-cube": {
		InsideLength: "12.03 m", InsideWidth: "2.35 m", InsideHeight: "2.70 m",
		DoorWidth: "2.34 m", DoorHeight: "2.58 m",
		Capacity: "76 m3", TareWeight: "3900 kg", MaxCargoWeight: "26580 kg",
		Description: "One extra foot of height over the 40' standard for light, voluminous or tall cargo.",
		Highlights: []string{
			"2.70 m internal height",
			"Preferred box for furniture and electronics",
			"Same footprint as a 40' standard",
		},
	},
	"45-high-cube": {
		InsideLength: "13.55 m", InsideWidth: "2.35 m", InsideHeight: "2.70 m",
		DoorWidth: "2.34 m", DoorHeight: "2.58 m",
		Capacity: "86 m3", TareWeight: "4800 kg", MaxCargoWeight: "27700 kg",
		Description: "The largest standard dry box: 45 feet long with high-cube height throughout.",
		Highlights: []string{
			"86 m3 of cargo space",
			"Fits 33 euro pallets in one tier",
			"Ideal for intra-European intermodal moves",
		},
	},
	"20-open-top": {
		InsideLength: "5.89 m", InsideWidth: "2.35 m", InsideHeight: "2.35 m",
		DoorWidth: "2.34 m", DoorHeight: "2.28 m",
		Capacity: "32.5 m3", TareWeight: "2350 kg", MaxCargoWeight: "28130 kg",
		Description: "Removable tarpaulin roof for cargo that must be loaded by crane from above.",
		Highlights: []string{
			"Top loading via removable tarpaulin",
			"Swing-out door header for forklift loading",
			"Accepts over-height cargo with open roof",
		},
	},
	"40-open-top": {
		InsideLength: "12.03 m", InsideWidth: "2.35 m", InsideHeight: "2.33 m",
		DoorWidth: "2.34 m", DoorHeight: "2.28 m",
		Capacity: "65.9 m3", TareWeight: "3850 kg", MaxCargoWeight: "26630 kg",
		Description: "40-foot open top for long machinery, glass and other crane-loaded cargo.",
		Highlights: []string{
			"Top loading via removable tarpaulin",
			"Roof bows removable for full openings",
			"Accepts over-height cargo with open roof",
		},
	},
	"20-flatrack": {
		InsideLength: "5.94 m", InsideWidth: "2.35 m", InsideHeight: "2.35 m",
		DoorWidth: "-", DoorHeight: "-",
		Capacity: "-", TareWeight: "2750 kg", MaxCargoWeight: "31250 kg",
		Description: "Fixed end walls and no roof or side walls for heavy and oversized loads.",
		Highlights: []string{
			"Loadable from top and both sides",
			"High payload for heavy machinery",
			"Lashing points rated up to 2000 kg each",
		},
	},
	"40-flatrack": {
		InsideLength: "12.13 m", InsideWidth: "2.40 m", InsideHeight: "2.14 m",
		DoorWidth: "-", DoorHeight: "-",
		Capacity: "-", TareWeight: "5000 kg", MaxCargoWeight: "40000 kg",
		Description: "The 40-foot flat rack carries project cargo that fits in no closed box.",
		Highlights: []string{
			"Loadable from top and both sides",
			"Carries out-of-gauge project cargo",
			"Forklift pockets and heavy lashing winches",
		},
	},
	"20-flatrack-collapsible": {
		InsideLength: "5.94 m", InsideWidth: "2.35 m", InsideHeight: "2.35 m",
		DoorWidth: "-", DoorHeight: "-",
		Capacity: "-", TareWeight: "2900 kg", MaxCargoWeight: "31100 kg",
		Description: "Flat rack with fold-down end walls, stackable four-high when empty.",
		Highlights: []string{
			"End walls fold flat for cheap repositioning",
			"Loadable from top and both sides",
			"High payload for heavy machinery",
		},
	},
	"40-flatrack-collapsible": {
		InsideLength: "12.08 m", InsideWidth: "2.40 m", InsideHeight: "2.03 m",
		DoorWidth: "-", DoorHeight: "-",
		Capacity: "-", TareWeight: "5530 kg", MaxCargoWeight: "39470 kg",
		Description: "40-foot collapsible flat rack for heavy project cargo with low-cost empty return.",
		Highlights: []string{
			"End walls fold flat for cheap repositioning",
			"Carries out-of-gauge project cargo",
			"Forklift pockets and heavy lashing winches",
		},
	},
	"20-platform": {
		InsideLength: "6.06 m", InsideWidth: "2.44 m", InsideHeight: "-",
		DoorWidth: "-", DoorHeight: "-",
		Capacity: "-", TareWeight: "2520 kg", MaxCargoWeight: "31480 kg",
		Description: "A bare reinforced floor with no walls at all, for cargo of awkward shape or extreme weight.",
		Highlights: []string{
			"No height or width restriction above deck",
			"Extra-strong bottom construction",
			"Combinable side by side for wide loads",
		},
	},
	"40-platform": {
		InsideLength: "12.18 m", InsideWidth: "2.44 m", InsideHeight: "-",
		DoorWidth: "-", DoorHeight: "-",
		Capacity: "-", TareWeight: "5700 kg", MaxCargoWeight: "39300 kg",
		Description: "40-foot platform for long, wide or very heavy cargo lashed directly to the deck.",
		Highlights: []string{
			"No height or width restriction above deck",
			"Extra-strong bottom construction",
			"Combinable side by side for wide loads",
		},
	},
	"20-refrigerated": {
		InsideLength: "5.44 m", InsideWidth: "2.29 m", InsideHeight: "2.27 m",
		DoorWidth: "2.23 m", DoorHeight: "2.20 m",
		Capacity: "28.3 m3", TareWeight: "3080 kg", MaxCargoWeight: "27400 kg",
		Description: "Integrated cooling unit holds any set point between -35 °C and +35 °C door to door.",
		Highlights: []string{
			"Set points from -35 °C to +35 °C",
			"T-bar floor for cold air circulation",
			"Remote temperature monitoring ready",
		},
	},
	"40-refrigerated": {
		InsideLength: "11.56 m", InsideWidth: "2.28 m", InsideHeight: "2.25 m",
		DoorWidth: "2.23 m", DoorHeight: "2.20 m",
		Capacity: "59.3 m3", TareWeight: "4800 kg", MaxCargoWeight: "27700 kg",
		Description: "40-foot reefer for full pallet loads of fruit, meat, dairy and pharmaceuticals.",
		Highlights: []string{
			"Set points from -35 °C to +35 °C",
			"T-bar floor for cold air circulation",
			"Fresh-air exchange for respiring cargo",
		},
	},
	"20-bulk": {
		InsideLength: "5.89 m", InsideWidth: "2.35 m", InsideHeight: "2.38 m",
		DoorWidth: "2.34 m", DoorHeight: "2.28 m",
		Capacity: "32.9 m3", TareWeight: "2450 kg", MaxCargoWeight: "28030 kg",
		Description: "Roof hatches for gravity loading of free-flowing dry bulk such as grain or malt.",
		Highlights: []string{
			"Three roof hatches for gravity loading",
			"Discharge hatches in the door",
			"Usable as a standard box when closed",
		},
	},
	"20-tank": {
		InsideLength: "6.06 m", InsideWidth: "2.44 m", InsideHeight: "2.59 m",
		DoorWidth: "-", DoorHeight: "-",
		Capacity: "26000 l", TareWeight: "3900 kg", MaxCargoWeight: "30480 kg",
		Description: "Stainless vessel in an ISO frame for liquids, from foodstuffs to hazardous chemicals.",
		Highlights: []string{
			"26 000 litre stainless steel vessel",
			"Steam and electric heating options",
			"Certified for IMO classed liquids",
		},
	},
	"custom": {
		InsideLength: "per request", InsideWidth: "per request", InsideHeight: "per request",
		DoorWidth: "per request", DoorHeight: "per request",
		Capacity: "per request", TareWeight: "per request", MaxCargoWeight: "per request",
		Description: "Equipment outside the standard catalog, arranged individually with the carrier.",
		Highlights: []string{
			"Specify your own dimensions and fittings",
			"Sourced through partner carriers",
			"Quoted case by case",
		},
	},
}

var defaultTrucks = []TruckOption{
	{ID: "tautliner", Name: "Tautliner", Variant: TruckTautliner},
	{ID: "refrigerated", Name: "Refrigerated Trailer", Variant: TruckRefrigerated},
	{ID: "isotherm", Name: "Isotherm Trailer", Variant: TruckIsotherm},
	{ID: "mega-trailer", Name: "Mega Trailer", Variant: TruckMegaTrailer},
	{ID: "jumbo", Name: "Jumbo Trailer", Variant: TruckJumbo},
	{ID: "custom", Name: "Custom Truck", Variant: TruckCustom},
}
