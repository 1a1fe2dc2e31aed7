// SPDX-License-Identifier: MIT

package reservoir

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/reservoir/matrix"
)

var (
	// ErrNotConverged is returned by Settle when the step budget runs out
	// before the state delta drops below the tolerance.
	ErrNotConverged = errors.New("reservoir: state did not converge")

	// ErrOutOfDomain indicates a fixed-point state component outside (−1, 1),
	// where atanh is undefined.
	ErrOutOfDomain = errors.New("reservoir: fixed-point state outside (-1, 1)")
)

// Shape and numeric faults are reported with the matrix sentinels so that a
// single errors.Is check works across both packages.
var (
	// ErrDimensionMismatch signals an operand whose shape disagrees with the
	// reservoir's (k, m, n).
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrInvalidDimensions signals a negative dimension passed to a constructor.
	ErrInvalidDimensions = matrix.ErrInvalidDimensions

	// ErrNaNInf signals a non-finite value offered as reservoir data.
	ErrNaNInf = matrix.ErrNaNInf

	// ErrNilMatrix signals a nil matrix or vector argument.
	ErrNilMatrix = matrix.ErrNilMatrix
)

// Operation tags used in error wrapping.
const (
	opNew           = "New"
	opNewFixedPoint = "NewFixedPoint"
	opNewRandom     = "NewRandom"
	opSettle        = "Settle"
	opPropagate     = "Propagate"
	opSimulate      = "Simulate"
	opSet           = "Set"
	opZeros         = "Zeros"
	opHighLow       = "HighLow"
)

// reservoirErrorf wraps err with "reservoir.<tag>: " keeping errors.Is intact.
func reservoirErrorf(tag string, err error) error {
	return fmt.Errorf("reservoir.%s: %w", tag, err)
}
