package hvac_sizing

import "fmt"

// Space category adjacent to a conditioned zone, or hosting ducts
type SpaceType int

const (
	SpaceConditioned           SpaceType = iota // conditioned living space
	SpaceOutdoors                               // outdoor air
	SpaceGround                                 // soil
	SpaceGarage                                 // garage
	SpaceBasementUnconditioned                  // unconditioned basement
	SpaceCrawlspaceVented                       // vented crawlspace
	SpaceCrawlspaceUnvented                     // unvented crawlspace
	SpacePierBeam                               // pier and beam (open underfloor)
	SpaceAtticVented                            // vented attic
	SpaceAtticUnvented                          // unvented attic
)

func (s SpaceType) String() string {
	return [...]string{
		"conditioned",
		"outdoors",
		"ground",
		"garage",
		"basement_unconditioned",
		"crawlspace_vented",
		"crawlspace_unvented",
		"pier_beam",
		"attic_vented",
		"attic_unvented",
	}[s]
}

func SpaceTypeFromString(s string) (SpaceType, error) {
	st, ok := map[string]SpaceType{
		"conditioned":            SpaceConditioned,
		"living":                 SpaceConditioned,
		"basement_conditioned":   SpaceConditioned,
		"outdoors":               SpaceOutdoors,
		"ground":                 SpaceGround,
		"garage":                 SpaceGarage,
		"basement_unconditioned": SpaceBasementUnconditioned,
		"crawlspace_vented":      SpaceCrawlspaceVented,
		"crawlspace_unvented":    SpaceCrawlspaceUnvented,
		"pier_beam":              SpacePierBeam,
		"attic_vented":           SpaceAtticVented,
		"attic_unvented":         SpaceAtticUnvented,
	}[s]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownSpace, s)
	}
	return st, nil
}

func (s SpaceType) IsAttic() bool {
	return s == SpaceAtticVented || s == SpaceAtticUnvented
}

func (s SpaceType) IsCrawlspace() bool {
	return s == SpaceCrawlspaceVented || s == SpaceCrawlspaceUnvented
}

/*
Unconditioned space bounding the conditioned zones.

Notes:
	The UA values describe the heat balance of the space itself and are
	required for basements and crawlspaces, whose design temperatures
	are derived from them. For attics they enable the duct heat balance.
*/
type BufferSpace struct {
	space_type     SpaceType
	ua_conditioned float64 // UA to conditioned space, Btu/(hr F)
	ua_outdoors    float64 // UA to outdoors including infiltration, Btu/(hr F)
	ua_ground      float64 // UA to ground, Btu/(hr F)
	r_ceiling      float64 // average R-value of the ceiling (floor above), hr ft2 F/Btu
	r_walls        float64 // average R-value of the walls, hr ft2 F/Btu
}

func NewBufferSpace(
	space_type SpaceType,
	ua_conditioned float64,
	ua_outdoors float64,
	ua_ground float64,
	r_ceiling float64,
	r_walls float64,
) *BufferSpace {
	return &BufferSpace{
		space_type:     space_type,
		ua_conditioned: ua_conditioned,
		ua_outdoors:    ua_outdoors,
		ua_ground:      ua_ground,
		r_ceiling:      r_ceiling,
		r_walls:        r_walls,
	}
}

func (b *BufferSpace) SpaceType() SpaceType {
	return b.space_type
}

func (b *BufferSpace) ua_total() float64 {
	return b.ua_conditioned + b.ua_outdoors + b.ua_ground
}

// Insulated ceilings and walls are those above R-4.
func (b *BufferSpace) is_ceiling_insulated() bool {
	return b.r_ceiling > 4.0
}

func (b *BufferSpace) is_walls_insulated() bool {
	return b.r_walls > 4.0
}
