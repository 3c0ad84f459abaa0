package catalog

// ContainerVariant is the structural category of a container. The set is
// closed: rendering and detail lookup dispatch exhaustively over it.
type ContainerVariant string

const (
	VariantStandard            ContainerVariant = "standard"
	VariantHighCube            ContainerVariant = "high-cube"
	VariantOpenTop             ContainerVariant = "open-top"
	VariantFlatrack            ContainerVariant = "flatrack"
	VariantFlatrackCollapsible ContainerVariant = "flatrack-collapsible"
	VariantPlatform            ContainerVariant = "platform"
	VariantRefrigerated        ContainerVariant = "refrigerated"
	VariantBulk                ContainerVariant = "bulk"
	VariantTank                ContainerVariant = "tank"
	VariantCustom              ContainerVariant = "custom"
)

// ContainerSize selects illustration geometry only, never business logic.
type ContainerSize string

const (
	SizeShort ContainerSize = "short" // 20 ft
	SizeLong  ContainerSize = "long"  // 40 ft
	SizeXLong ContainerSize = "xlong" // 45 ft
)

// ContainerOption is one selectable row of the container catalog.
type ContainerOption struct {
	ID      string
	Name    string
	Variant ContainerVariant
	Size    ContainerSize
}

// ContainerDetail holds the dimensional record shown on the detail panel.
// Metrics are display strings with units baked in; they are never parsed.
type ContainerDetail struct {
	InsideLength   string
	InsideWidth    string
	InsideHeight   string
	DoorWidth      string
	DoorHeight     string
	Capacity       string
	TareWeight     string
	MaxCargoWeight string
	Description    string
	Highlights     []string
}

// TruckVariant is the closed set of trailer configurations.
type TruckVariant string

const (
	TruckTautliner    TruckVariant = "tautliner"
	TruckRefrigerated TruckVariant = "refrigerated"
	TruckIsotherm     TruckVariant = "isotherm"
	TruckMegaTrailer  TruckVariant = "mega-trailer"
	TruckJumbo        TruckVariant = "jumbo"
	TruckCustom       TruckVariant = "custom"
)

// TruckOption is one selectable row of the truck catalog.
type TruckOption struct {
	ID      string
	Name    string
	Variant TruckVariant
}
