package analysis

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-bandmeter/dsp/core"
)

// DefaultGamma is the display curve exponent. Values below 1 lift quiet
// levels and compress loud ones.
const DefaultGamma = 0.4

// DBToPercent maps a level in dB to a display percentage in [0, 100].
//
// Levels at or below floorDB map to 0 and levels at or above 0 dB map to 100
// regardless of gamma. In between, the level is normalised linearly to
// x in (0, 1) and mapped to 100*x^gamma. NaN maps to 0.
func DBToPercent(db, floorDB, gamma float64) float64 {
	switch {
	case math.IsNaN(db) || db <= floorDB:
		return 0
	case db >= 0:
		return 100
	}

	x := (db - floorDB) / -floorDB
	return 100 * math.Pow(x, gamma)
}

// Mapper applies [DBToPercent] with a fixed floor and gamma.
type Mapper struct {
	FloorDB float64
	Gamma   float64
}

// DefaultMapper returns a Mapper with [DefaultFloorDB] and [DefaultGamma].
func DefaultMapper() Mapper {
	return Mapper{FloorDB: DefaultFloorDB, Gamma: DefaultGamma}
}

// NewMapper validates floorDB (finite, < 0) and gamma (finite, > 0).
func NewMapper(floorDB, gamma float64) (Mapper, error) {
	if math.IsNaN(floorDB) || math.IsInf(floorDB, 0) || floorDB >= 0 {
		return Mapper{}, fmt.Errorf("%w: %v", ErrInvalidFloor, floorDB)
	}

	if !(gamma > 0) || math.IsInf(gamma, 0) {
		return Mapper{}, fmt.Errorf("%w: %v", ErrInvalidGamma, gamma)
	}

	return Mapper{FloorDB: floorDB, Gamma: gamma}, nil
}

// Percent maps one level.
func (m Mapper) Percent(db float64) float64 {
	return DBToPercent(db, m.FloorDB, m.Gamma)
}

// PercentAll maps every level in dbs into dst, reusing its capacity, and
// returns it.
func (m Mapper) PercentAll(dst, dbs []float64) []float64 {
	dst = core.EnsureLen(dst, len(dbs))
	for i, db := range dbs {
		dst[i] = m.Percent(db)
	}

	return dst
}
