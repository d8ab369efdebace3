// File: poller/poller_test.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package poller

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-reactor/api"
)

func TestNewDriverRejectsNilReactor(t *testing.T) {
	if _, err := NewDriver(nil); !errors.Is(err, api.ErrInvalidArgument) {
		t.Fatalf("NewDriver(nil): got %v, want ErrInvalidArgument", err)
	}
}
