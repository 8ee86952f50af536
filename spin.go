package pinnedcol

import (
	"runtime"
	"time"
)

// spinYieldThreshold is the number of consecutive Spin decisions a caller
// resolves with a plain scheduler yield before escalating to a short,
// exponentially increasing sleep. It bounds worst-case CPU burn under
// heavy growth contention without ever blocking on a mutex or condvar.
const spinYieldThreshold = 64

// maxSpinBackoff caps the exponential backoff used once spinYieldThreshold
// has been exceeded.
const maxSpinBackoff = time.Millisecond

// spinWait is called once per Spin decision received from the policy. It
// yields the goroutine to the scheduler, escalating to a capped
// exponential sleep under sustained contention, and returns the updated
// consecutive-spin counter the caller should pass back in on its next
// Spin.
func spinWait(consecutive int) int {
	consecutive++
	if consecutive <= spinYieldThreshold {
		runtime.Gosched()
		return consecutive
	}
	backoff := time.Microsecond << uint(consecutive-spinYieldThreshold)
	if backoff > maxSpinBackoff || backoff <= 0 {
		backoff = maxSpinBackoff
	}
	time.Sleep(backoff)
	return consecutive
}
