package metrics_test

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shashiranjanraj/feastbook/pkg/event"
	"github.com/shashiranjanraj/feastbook/pkg/metrics"
)

func TestBindCountsRegistryEvents(t *testing.T) {
	metrics.Bind()
	metrics.Bind() // second call must not double-subscribe

	created := metrics.RegistryMutations.WithLabelValues("customers", "create")
	before := testutil.ToFloat64(created)
	event.Fire(event.CustomerCreated, event.Change{Registry: "customers", ID: "C0001"})
	assert.Equal(t, before+1, testutil.ToFloat64(created))

	dup := metrics.OrderRejections.WithLabelValues("duplicate")
	before = testutil.ToFloat64(dup)
	event.Fire(event.OrderRejected, event.Rejection{Reason: "duplicate", Err: errors.New("dup")})
	assert.Equal(t, before+1, testutil.ToFloat64(dup))

	event.Fire(event.RegistrySaved, event.Persisted{Registry: "orders", Path: "orders.dat", Count: 7})
	assert.Equal(t, 7.0, testutil.ToFloat64(metrics.RegistryRecords.WithLabelValues("orders")))
}

func TestSnapshotListsOnlyFeastbookSeries(t *testing.T) {
	metrics.ObserveStore("snapshot-test", "save", "ok", time.Now())

	samples, err := metrics.Snapshot()
	require.NoError(t, err)

	var found bool
	for _, s := range samples {
		assert.Contains(t, s.Name, "feastbook_")
		assert.NotZero(t, s.Value)
		if s.String() == "feastbook_store_operations_total{kind=snapshot-test,op=save,result=ok}" {
			found = true
			assert.Equal(t, 1.0, s.Value)
		}
	}
	assert.True(t, found, "store operation missing from %v", samples)
}
