// Package forest implements the landscape simulation engine.
//
// A [Landscape] holds a population of trees on a square stand grid and
// advances in discrete annual steps:
//
//   - growth: diameter increment toward the species maximum, with
//     allometric updates of height and biomass compartments
//   - mortality: background rate plus age and suppression stress
//   - regeneration: stochastic recruitment of saplings
//
// Biomass is tracked per tree in five compartments (stem, branch,
// foliage, coarse root, fine root). Carbon stock is derived from the
// woody compartments at a fixed carbon fraction.
//
// # Determinism
//
// All stochastic processes draw from a single seeded source, so two
// landscapes built from identical parameters produce identical yearly
// snapshots.
package forest
