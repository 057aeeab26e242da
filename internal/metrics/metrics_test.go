package metrics

import (
	"math/rand/v2"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/utilityprog/internal/number"
)

func newTestCollector(t *testing.T) (*Collector, *prometheus.Registry) {
	t.Helper()

	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)
	return c, reg
}

func TestCollectorRecordsSearch(t *testing.T) {
	c, _ := newTestCollector(t)

	opt := number.Optimizer(42, -1, 5, 30, 5)
	opt.Observer = c

	var obj uint8
	rng := rand.New(rand.NewPCG(1, 2))
	res := opt.Search(rng, &obj)
	opt.Search(rng, &obj)

	assert.Equal(t, 2.0, testutil.ToFloat64(c.Calls))
	assert.Equal(t, 60.0, testutil.ToFloat64(c.Attempts))
	assert.Positive(t, testutil.ToFloat64(c.Improvements))

	var hist dto.Metric
	require.NoError(t, c.Gain.Write(&hist))
	assert.Equal(t, uint64(2), hist.GetHistogram().GetSampleCount())

	s := c.Summary()
	assert.Equal(t, 2.0, s.Calls)
	assert.Equal(t, 60.0, s.Attempts)
	assert.Equal(t, testutil.ToFloat64(c.Improvements), s.Improvements)
	assert.GreaterOrEqual(t, s.BestUtility, res.Best)
}

func TestCollectorDone(t *testing.T) {
	c, _ := newTestCollector(t)

	c.Done(-10, -4, 3)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.Calls))
	assert.Equal(t, -4.0, testutil.ToFloat64(c.BestUtility))
}

func TestNewCollectorDuplicateRegistration(t *testing.T) {
	_, reg := newTestCollector(t)

	_, err := NewCollector(reg)
	assert.Error(t, err)
}

func TestCollectorMetricNames(t *testing.T) {
	_, reg := newTestCollector(t)

	families, err := reg.Gather()
	require.NoError(t, err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.ElementsMatch(t, []string{
		"utilityprog_search_calls_total",
		"utilityprog_search_attempts_total",
		"utilityprog_search_improvements_total",
		"utilityprog_search_gain",
		"utilityprog_search_best_utility",
	}, names)
}
