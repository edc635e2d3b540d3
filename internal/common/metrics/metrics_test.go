package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecordClassification(t *testing.T) {
	before := testutil.ToFloat64(IntentsClassified.WithLabelValues("simple", "ride"))
	unmatchedBefore := testutil.ToFloat64(IntentsUnmatched.WithLabelValues("booking"))

	RecordClassification("simple", "ride")
	RecordClassification("booking", "")

	assert.Equal(t, before+1, testutil.ToFloat64(IntentsClassified.WithLabelValues("simple", "ride")))
	assert.Equal(t, unmatchedBefore+1, testutil.ToFloat64(IntentsUnmatched.WithLabelValues("booking")))
}
