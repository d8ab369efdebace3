// File: poller/poller.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package poller

import "time"

// DefaultTick is the advisory Work interval a driver passes to the
// reactor between blocking waits.
const DefaultTick = time.Second
