package wktcrs

import eng "github.com/reoring/wktcrs/internal/engine"

// ParseOpt bundles parsing options. The zero value applies no limits.
type ParseOpt struct {
	MaxDepth int   // Maximum bracket nesting (0 = unlimited).
	MaxBytes int64 // Maximum input size in bytes (0 = unlimited).
}

func (o ParseOpt) engine() eng.Options {
	return eng.Options{MaxDepth: o.MaxDepth, MaxBytes: o.MaxBytes}
}

// Family groups the CRS variants that share a keyword set.
type Family int

const (
	FamilyGeodetic Family = iota
	FamilyProjected
	FamilyVertical
	FamilyEngineering
	FamilyParametric
	FamilyTemporal
	FamilyCompound
)

func (f Family) String() string {
	switch f {
	case FamilyGeodetic:
		return "geodetic"
	case FamilyProjected:
		return "projected"
	case FamilyVertical:
		return "vertical"
	case FamilyEngineering:
		return "engineering"
	case FamilyParametric:
		return "parametric"
	case FamilyTemporal:
		return "temporal"
	case FamilyCompound:
		return "compound"
	default:
		return "unknown"
	}
}

// UnitKind is the measurement kind of a Unit.
type UnitKind int

const (
	UnitAngle UnitKind = iota
	UnitLength
	UnitScale
	UnitParametric
	UnitTime
)

func (k UnitKind) String() string {
	switch k {
	case UnitAngle:
		return "angle"
	case UnitLength:
		return "length"
	case UnitScale:
		return "scale"
	case UnitParametric:
		return "parametric"
	case UnitTime:
		return "time"
	default:
		return "unknown"
	}
}
