package vimshottari

import (
	"math"
	"time"

	"github.com/shopspring/decimal"
	"github.com/warp/dasha-engine/generic"
)

// =============================================================================
// NAKSHATRA ARITHMETIC - Moon longitude to engine anchor
// =============================================================================

// nakshatraArc is the arc length of one lunar mansion: 13 degrees 20
// minutes.
const nakshatraArc = 360.0 / Nakshatras

// nakshatraNames in zodiac order, Ashwini first.
var nakshatraNames = [Nakshatras]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra",
	"Punarvasu", "Pushya", "Ashlesha", "Magha", "Purva Phalguni",
	"Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha",
	"Jyeshtha", "Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana",
	"Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada",
	"Revati",
}

// Nakshatra is the resolved lunar mansion for a sidereal longitude.
type Nakshatra struct {
	Index    int    // 0-based, Ashwini = 0
	Name     string
	Lord     generic.SegmentID
	Consumed float64 // fraction of the mansion's arc already traversed, in [0,1)
}

// NakshatraAt reduces a sidereal longitude (degrees) to its lunar
// mansion. Pure modular arithmetic; longitudes outside [0,360) are
// normalized first.
func NakshatraAt(longitude float64) (Nakshatra, error) {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return Nakshatra{}, &generic.InvalidAnchorError{Field: "moonLongitude", Value: "not a finite number"}
	}

	lon := math.Mod(longitude, 360)
	if lon < 0 {
		lon += 360
	}

	idx := int(lon / nakshatraArc)
	if idx >= Nakshatras { // guards the lon==360-epsilon float edge
		idx = Nakshatras - 1
	}

	consumed := (lon - float64(idx)*nakshatraArc) / nakshatraArc
	if consumed >= 1 {
		consumed = math.Nextafter(1, 0)
	}
	if consumed < 0 {
		consumed = 0
	}

	return Nakshatra{
		Index:    idx,
		Name:     nakshatraNames[idx],
		Lord:     sequence.At(idx % sequence.Len()).ID,
		Consumed: consumed,
	}, nil
}

// AnchorFromMoonLongitude turns a birth instant and the sidereal Moon
// longitude at that instant into an engine anchor: the mansion's lord
// is the starting segment and the traversed share of the mansion's arc
// is the fraction of that segment already consumed.
func AnchorFromMoonLongitude(birth time.Time, moonLongitude float64) (generic.Anchor, error) {
	nak, err := NakshatraAt(moonLongitude)
	if err != nil {
		return generic.Anchor{}, err
	}
	startIndex, err := sequence.IndexOf(nak.Lord)
	if err != nil {
		return generic.Anchor{}, err
	}
	return generic.NewAnchor(birth, startIndex, decimal.NewFromFloat(nak.Consumed), sequence)
}
