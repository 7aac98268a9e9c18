package diluted

// Default dilution parameters and adaptation increments.
const (
	// DefaultSpread is 1/ln(2).
	DefaultSpread         = 1.442
	DefaultOverconfidence = 10.0

	DefaultSpreadStep = 0.0100
	DefaultRadiusStep = 0.0500
)

// Params is the adaptive per-class state of the classifier.
// Overconfidence is the radius of the certainty circle around the class
// centroid inside which any query scores a full confidence of 1.
// Spread controls how quickly confidence decays outside that circle;
// a larger spread decays slower. Spread must stay positive.
type Params struct {
	Spread         float64
	Overconfidence float64
}

// DefaultParams returns the initial parameter pair for a fresh class slot.
func DefaultParams() Params {
	return Params{Spread: DefaultSpread, Overconfidence: DefaultOverconfidence}
}

// InitParams resets every class slot to the defaults.
func InitParams(params []Params) {
	for i := range params {
		params[i] = DefaultParams()
	}
}

// AdaptSteps holds the fixed increments applied by Adapt.
type AdaptSteps struct {
	Spread float64
	Radius float64
}

// DefaultSteps returns the standard adaptation increments.
func DefaultSteps() AdaptSteps {
	return AdaptSteps{Spread: DefaultSpreadStep, Radius: DefaultRadiusStep}
}

// Adapt applies the asymmetric feedback update for one observed distance
// between a training point and its own class centroid. A distance beyond the
// certainty radius widens the spread; a distance inside it grows the radius;
// an exact hit on the radius changes nothing. Neither parameter ever shrinks
// and no upper bound is applied, so repeated training passes grow them
// monotonically.
//
// A class outside [0, len(params)) is silently ignored.
func Adapt(params []Params, class int, distance float64, steps AdaptSteps) {
	if class < 0 || class >= len(params) {
		return
	}
	p := &params[class]
	switch {
	case distance > p.Overconfidence:
		p.Spread += steps.Spread
	case distance < p.Overconfidence:
		p.Overconfidence += steps.Radius
	}
}
