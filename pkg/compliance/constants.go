package compliance

// Habitability check weights. Pass/fail checks contribute either their
// full weight or zero; the rest earn linear partial credit.
const (
	WeightVolume             = 25.0
	WeightCrewQuarters       = 20.0
	WeightEssentialRooms     = 20.0
	WeightHygieneStations    = 15.0
	WeightNoiseSeparation    = 10.0
	WeightAdjacencyConflicts = 5.0
	WeightMedicalAccess      = 10.0
)

const (
	// HabitableFraction is the usable share of pressurized volume after
	// systems and corridor overhead.
	HabitableFraction = 0.70

	// CrewPerHygieneStation sets the required station count: ceil(crew / 3).
	CrewPerHygieneStation = 3

	// NoiseSeparationMinDistance is the minimum center-to-center distance
	// between a noise source and crew quarters, two 2.0 m grid units.
	NoiseSeparationMinDistance = 4.0

	// AdjacencyTolerance is the edge gap within which two rooms count as
	// touching for the prohibited-adjacency check.
	AdjacencyTolerance = 0.1

	// MedicalAccessRadius is how far from a medical bay a room may sit and
	// still count as covered; MedicalAccessPassFraction of all rooms must
	// be covered to pass.
	MedicalAccessRadius       = 15.0
	MedicalAccessPassFraction = 0.9
)

// Category names, stable keys in the report.
const (
	CategoryVolume             = "volume_per_person"
	CategoryCrewQuarters       = "crew_quarters"
	CategoryEssentialRooms     = "essential_rooms"
	CategoryHygieneStations    = "hygiene_stations"
	CategoryNoiseSeparation    = "noise_separation"
	CategoryAdjacencyConflicts = "adjacency_conflicts"
	CategoryMedicalAccess      = "medical_access"
)

// CategoryOrder is the canonical display order for report categories.
var CategoryOrder = []string{
	CategoryVolume,
	CategoryCrewQuarters,
	CategoryEssentialRooms,
	CategoryHygieneStations,
	CategoryNoiseSeparation,
	CategoryAdjacencyConflicts,
	CategoryMedicalAccess,
}
