package sentiment

// valences assigns AFINN-style scores in [-5, 5] to polarity-bearing words.
// The list is intentionally small: it covers common evaluative vocabulary
// well enough to steer palette selection, not to serve as a general
// sentiment model.
var valences = map[string]float64{
	// strongly positive
	"amazing":     4,
	"awesome":     4,
	"breathtaking": 5,
	"brilliant":   4,
	"excellent":   4,
	"fantastic":   4,
	"incredible":  4,
	"magnificent": 4,
	"outstanding": 5,
	"perfect":     4,
	"superb":      5,
	"wonderful":   4,

	// positive
	"beautiful":   3,
	"calm":        2,
	"charming":    3,
	"delightful":  3,
	"elegant":     3,
	"enjoy":       2,
	"gentle":      2,
	"glad":        3,
	"good":        3,
	"great":       3,
	"happy":       3,
	"hope":        2,
	"inspiring":   3,
	"joy":         3,
	"joyful":      3,
	"love":        3,
	"lovely":      3,
	"peaceful":    3,
	"pleasant":    3,
	"serene":      3,
	"success":     2,
	"successful":  3,
	"thriving":    3,
	"tremendous":  4,
	"vibrant":     3,
	"warm":        2,

	// negative
	"angry":      -3,
	"bad":        -3,
	"bleak":      -2,
	"broken":     -2,
	"cold":       -1,
	"dark":       -1,
	"difficult":  -1,
	"dull":       -2,
	"fail":       -2,
	"failure":    -2,
	"fear":       -2,
	"gloomy":     -2,
	"grim":       -3,
	"harsh":      -2,
	"loss":       -3,
	"lost":       -3,
	"painful":    -2,
	"poor":       -2,
	"sad":        -2,
	"struggle":   -2,
	"tired":      -2,
	"ugly":       -3,
	"weak":       -2,
	"worried":    -3,
	"wrong":      -2,

	// strongly negative
	"awful":       -3,
	"catastrophe": -4,
	"devastating": -4,
	"disaster":    -4,
	"dreadful":    -3,
	"horrible":    -3,
	"hopeless":    -4,
	"miserable":   -3,
	"terrible":    -3,
	"tragic":      -4,
	"worst":       -3,
}
