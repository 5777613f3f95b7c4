package quantity

// Scalar is a plain real number.
type Scalar float64

func (s Scalar) Add(o Scalar) Scalar { return s + o }
func (s Scalar) Sub(o Scalar) Scalar { return s - o }
func (s Scalar) Mul(o Scalar) Scalar { return s * o }
func (s Scalar) Div(o Scalar) Scalar { return s / o }

// Sign returns -1, 0 or 1.
func (s Scalar) Sign() Scalar {
	switch {
	case s > 0:
		return 1
	case s < 0:
		return -1
	default:
		return 0
	}
}
