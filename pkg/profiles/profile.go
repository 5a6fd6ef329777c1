package profiles

// A WeightProfile names the scenic weights used when annotating a road
// graph: a base scenic weight per road classification and a bonus weight
// per natural-feature tag. Profiles are pure input to the weighting pass
// and are never mutated by it.
type WeightProfile struct {
	Name         string             `json:"name"`
	ScenicByType map[string]float64 `json:"scenic_by_type"`
	NaturalByTag map[string]float64 `json:"natural_by_type"`
}

// DefaultName is the reserved name of the built-in profile. It always
// resolves to Default() and can never be saved over.
const DefaultName = "default"

// Base scenic weights by road classification. Smaller and slower roads
// score higher than highways.
var defaultScenicByType = map[string]float64{
	"motorway":     0.05,
	"trunk":        0.25,
	"primary":      0.40,
	"secondary":    0.55,
	"tertiary":     0.70,
	"residential":  0.85,
	"service":      0.70,
	"unclassified": 0.90,
}

// The known natural-feature tag vocabulary. The default profile weighs
// them all at zero; presets and user profiles override per tag.
var naturalTags = []string{
	// Land and vegetation
	"grassland", "heath", "scrub", "tree", "tree_row", "wood",
	// Water
	"bay", "beach", "cape", "coastline", "hot_spring", "spring", "water", "wetland",
	// Geology
	"arch", "bare_rock", "cliff", "dune", "hill", "peak", "ridge",
	"rock", "saddle", "sand", "scree", "stone", "valley",
}

// Default returns the built-in profile.
func Default() WeightProfile {
	return WeightProfile{
		Name:         DefaultName,
		ScenicByType: copyMap(defaultScenicByType),
		NaturalByTag: zeroTags(),
	}
}

// Presets returns the built-in "mountains" and "ocean" profiles seeded into
// new stores.
func Presets() []WeightProfile {
	mountains := zeroTags()
	for tag, w := range map[string]float64{
		"peak": 0.9, "ridge": 0.85, "cliff": 0.85, "hill": 0.8,
		"valley": 0.8, "bare_rock": 0.8, "saddle": 0.8, "rock": 0.75,
		"stone": 0.75, "scree": 0.75, "tree": 0.7, "wood": 0.7,
	} {
		mountains[tag] = w
	}

	ocean := zeroTags()
	for tag, w := range map[string]float64{
		"beach": 0.9, "coastline": 0.9, "bay": 0.85, "cape": 0.85,
		"water": 0.8, "arch": 0.8, "dune": 0.75, "sand": 0.75, "cliff": 0.75,
	} {
		ocean[tag] = w
	}

	return []WeightProfile{
		{Name: "mountains", ScenicByType: copyMap(defaultScenicByType), NaturalByTag: mountains},
		{Name: "ocean", ScenicByType: copyMap(defaultScenicByType), NaturalByTag: ocean},
	}
}

func copyMap(m map[string]float64) map[string]float64 {
	out := make(map[string]float64, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func zeroTags() map[string]float64 {
	out := make(map[string]float64, len(naturalTags))
	for _, tag := range naturalTags {
		out[tag] = 0
	}
	return out
}
