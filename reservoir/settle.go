// SPDX-License-Identifier: MIT

package reservoir

import (
	"context"
	"math"
)

// Settle calls Run until the reservoir converges and returns the number of
// steps it took. A reservoir that is already converged returns (0, nil).
//
// ctx is checked before every step; on cancellation the steps taken so far
// are returned together with the wrapped ctx error. maxSteps > 0 caps the
// loop and yields ErrNotConverged when the cap is hit; maxSteps <= 0 means
// no cap. A NaN step delta stops the loop with ErrNaNInf.
//
// Complexity: O(steps · (n² + nk)).
func (res *Reservoir) Settle(ctx context.Context, maxSteps int) (int, error) {
	// Prepare context: default to Background if nil
	if ctx == nil {
		ctx = context.Background()
	}

	var steps int
	for !res.converged {
		if err := ctx.Err(); err != nil {
			return steps, reservoirErrorf(opSettle, err)
		}
		if maxSteps > 0 && steps >= maxSteps {
			return steps, reservoirErrorf(opSettle, ErrNotConverged)
		}
		delta := res.Run()
		steps++
		if math.IsNaN(delta) {
			return steps, reservoirErrorf(opSettle, ErrNaNInf)
		}
	}

	return steps, nil
}
