package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveRecordsOutcome(t *testing.T) {
	before := testutil.ToFloat64(Operations.WithLabelValues("pack", "ok"))

	func() {
		var err error
		defer Observe("pack", time.Now(), &err)
	}()

	after := testutil.ToFloat64(Operations.WithLabelValues("pack", "ok"))
	assert.Equal(t, before+1, after)
}

func TestObserveRecordsErrorOutcome(t *testing.T) {
	before := testutil.ToFloat64(Operations.WithLabelValues("parse", "error"))

	func() {
		err := errors.New("boom")
		defer Observe("parse", time.Now(), &err)
	}()

	after := testutil.ToFloat64(Operations.WithLabelValues("parse", "error"))
	assert.Equal(t, before+1, after)
}
