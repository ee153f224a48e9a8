package forest

import "math"

// Tree is a single individual on the landscape grid.
type Tree struct {
	ID      int
	Species string
	X, Y    float64 // position on the stand grid [m]
	Dbh     float64 // diameter at breast height [cm]
	Height  float64 // [m]
	Age     int     // [years]

	// Biomass compartments [kg dry mass].
	StemMass       float64
	BranchMass     float64
	FoliageMass    float64
	CoarseRootMass float64
	FineRootMass   float64
}

const (
	formFactor    = 0.5  // stem volume = f * basal area * height
	heightShape   = 0.04 // curvature of the dbh/height relation
	branchFrac    = 0.15 // branch mass as fraction of stem mass
	coarseFrac    = 0.20 // coarse root mass as fraction of stem mass
	foliageCoef   = 0.06 // foliage allometry coefficient
	foliageExp    = 1.4  // foliage allometry exponent on dbh
	fineRootRatio = 0.8  // fine root mass per unit foliage mass
)

// BasalArea returns the cross-sectional stem area at breast height [m2].
func (t *Tree) BasalArea() float64 {
	r := t.Dbh / 200 // cm diameter -> m radius
	return math.Pi * r * r
}

// Volume returns the stem volume [m3].
func (t *Tree) Volume() float64 {
	return formFactor * t.BasalArea() * t.Height
}

// updateAllometry recomputes height and biomass compartments from dbh.
// Height saturates toward the species maximum; biomass pools follow
// fixed allometric relations on stem mass and dbh.
func (t *Tree) updateAllometry(sp Species) {
	t.Height = 1.3 + (sp.MaxHeight-1.3)*(1-math.Exp(-heightShape*t.Dbh))
	t.StemMass = t.Volume() * sp.WoodDensity
	t.BranchMass = branchFrac * t.StemMass
	t.CoarseRootMass = coarseFrac * t.StemMass
	t.FoliageMass = foliageCoef * math.Pow(t.Dbh, foliageExp)
	t.FineRootMass = fineRootRatio * t.FoliageMass
}

// WoodyMass returns the mass of the compartments that count toward the
// carbon stock (stem, branch, coarse and fine roots; foliage excluded).
func (t *Tree) WoodyMass() float64 {
	return t.StemMass + t.BranchMass + t.CoarseRootMass + t.FineRootMass
}

func (t *Tree) valid() bool {
	for _, v := range []float64{t.Dbh, t.Height, t.StemMass, t.BranchMass, t.FoliageMass, t.CoarseRootMass, t.FineRootMass} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	return true
}
