package forest

// Species holds the parameter set governing growth, mortality and
// regeneration for one tree species.
type Species struct {
	Code          string  // short code, e.g. "piab"
	Name          string  // display name
	MaxDbh        float64 // asymptotic diameter at breast height [cm]
	MaxHeight     float64 // asymptotic height [m]
	MaxAge        int     // age at which senescence mortality dominates [years]
	GrowthRate    float64 // intrinsic diameter increment [cm/year]
	MortalityBase float64 // background annual mortality probability
	WoodDensity   float64 // dry wood density [kg/m3]
	RegenRate     float64 // expected recruits per adult tree per year
}

// DefaultSpecies returns the built-in parameter sets used when a project
// file does not define its own.
func DefaultSpecies() []Species {
	return []Species{
		{
			Code: "piab", Name: "Norway spruce",
			MaxDbh: 120, MaxHeight: 48, MaxAge: 450,
			GrowthRate: 0.55, MortalityBase: 0.008,
			WoodDensity: 430, RegenRate: 0.012,
		},
		{
			Code: "fasy", Name: "European beech",
			MaxDbh: 150, MaxHeight: 44, MaxAge: 350,
			GrowthRate: 0.45, MortalityBase: 0.006,
			WoodDensity: 680, RegenRate: 0.010,
		},
		{
			Code: "pisy", Name: "Scots pine",
			MaxDbh: 100, MaxHeight: 40, MaxAge: 400,
			GrowthRate: 0.50, MortalityBase: 0.010,
			WoodDensity: 510, RegenRate: 0.008,
		},
	}
}
