package output

import "github.com/forestlab/silva/internal/forest"

// Summary holds the final-year biomass and carbon totals of a run. The
// carbon stock counts stem, branch, coarse root and fine root mass at
// the fixed carbon fraction; foliage is excluded.
type Summary struct {
	FinalYear      int     `json:"final_year"`
	TreeCount      int     `json:"tree_count"`
	StemMass       float64 `json:"stem_mass_kg"`
	BranchMass     float64 `json:"branch_mass_kg"`
	CoarseRootMass float64 `json:"coarse_root_mass_kg"`
	FineRootMass   float64 `json:"fine_root_mass_kg"`
	CarbonKg       float64 `json:"carbon_kg"`
}

// Summarize reduces stand rows to final-year totals.
func Summarize(rows []forest.StandRow) Summary {
	sum := Summary{FinalYear: -1}
	for _, r := range rows {
		if r.Year > sum.FinalYear {
			sum.FinalYear = r.Year
		}
	}
	for _, r := range rows {
		if r.Year != sum.FinalYear {
			continue
		}
		sum.TreeCount += r.Count
		sum.StemMass += r.StemMass
		sum.BranchMass += r.BranchMass
		sum.CoarseRootMass += r.CoarseRootMass
		sum.FineRootMass += r.FineRootMass
	}
	sum.CarbonKg = (sum.StemMass + sum.BranchMass + sum.CoarseRootMass + sum.FineRootMass) * forest.CarbonFraction
	return sum
}
