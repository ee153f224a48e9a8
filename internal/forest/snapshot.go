package forest

// CarbonFraction is the fraction of dry biomass accounted as carbon.
const CarbonFraction = 0.5

// StandRow is one per-species aggregate record for a simulation year,
// matching the layout of the stand output table.
type StandRow struct {
	Year           int     `json:"year"`
	Species        string  `json:"species"`
	Count          int     `json:"count"`
	BasalArea      float64 `json:"basal_area_m2"`
	Volume         float64 `json:"volume_m3"`
	StemMass       float64 `json:"stem_mass_kg"`
	BranchMass     float64 `json:"branch_mass_kg"`
	FoliageMass    float64 `json:"foliage_mass_kg"`
	CoarseRootMass float64 `json:"coarse_root_mass_kg"`
	FineRootMass   float64 `json:"fine_root_mass_kg"`
	Carbon         float64 `json:"carbon_kg"`
}

// TreeRow is one per-tree record for a simulation year.
type TreeRow struct {
	Year           int
	ID             int
	Species        string
	X, Y           float64
	Dbh            float64
	Height         float64
	Age            int
	StemMass       float64
	BranchMass     float64
	FoliageMass    float64
	CoarseRootMass float64
	FineRootMass   float64
}

// Carbon returns the current total carbon stock [kg]: the woody
// compartments of every live tree at CarbonFraction.
func (l *Landscape) Carbon() float64 {
	mass := 0.0
	for _, t := range l.trees {
		mass += t.WoodyMass()
	}
	return mass * CarbonFraction
}

// StandSnapshot aggregates the live population per species for the
// current year. Rows are ordered by species declaration order.
func (l *Landscape) StandSnapshot() []StandRow {
	byCode := make(map[string]*StandRow, len(l.order))
	for _, code := range l.order {
		byCode[code] = &StandRow{Year: l.year, Species: code}
	}
	for _, t := range l.trees {
		row := byCode[t.Species]
		row.Count++
		row.BasalArea += t.BasalArea()
		row.Volume += t.Volume()
		row.StemMass += t.StemMass
		row.BranchMass += t.BranchMass
		row.FoliageMass += t.FoliageMass
		row.CoarseRootMass += t.CoarseRootMass
		row.FineRootMass += t.FineRootMass
		row.Carbon += t.WoodyMass() * CarbonFraction
	}

	rows := make([]StandRow, 0, len(l.order))
	for _, code := range l.order {
		rows = append(rows, *byCode[code])
	}
	return rows
}

// TreeSnapshot records every live tree for the current year.
func (l *Landscape) TreeSnapshot() []TreeRow {
	rows := make([]TreeRow, 0, len(l.trees))
	for _, t := range l.trees {
		rows = append(rows, TreeRow{
			Year:           l.year,
			ID:             t.ID,
			Species:        t.Species,
			X:              t.X,
			Y:              t.Y,
			Dbh:            t.Dbh,
			Height:         t.Height,
			Age:            t.Age,
			StemMass:       t.StemMass,
			BranchMass:     t.BranchMass,
			FoliageMass:    t.FoliageMass,
			CoarseRootMass: t.CoarseRootMass,
			FineRootMass:   t.FineRootMass,
		})
	}
	return rows
}
