package orderform

import "errors"

// ErrEmptyOrder is returned when an order reaches submission with no
// qualifying line. The caller must not attempt any persistence call.
var ErrEmptyOrder = errors.New("order has no qualifying lines")

// Qualifies reports whether the line is eligible for persistence:
// a non-empty item code and a parsed quantity greater than zero.
func (l Line) Qualifies() bool {
	return l.ItemCode != "" && parseAmount(l.Quantity).IsPositive()
}

// PrepareForSubmit returns a copy of the form with disqualified lines
// dropped. The editing state passed in is left untouched, so rejected rows
// stay visible in the form. Zero qualifying lines yields ErrEmptyOrder.
func PrepareForSubmit(f Form) (Form, error) {
	kept := make([]Line, 0, len(f.Lines))
	for _, l := range f.Lines {
		if l.Qualifies() {
			kept = append(kept, l)
		}
	}
	if len(kept) == 0 {
		return Form{}, ErrEmptyOrder
	}
	f.Lines = kept
	return f, nil
}
