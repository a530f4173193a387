package cron

import (
	"Pulseboard/internal/job"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterJobs(t *testing.T) {
	mgr := NewCronManager("", job.NewKpiReconcileJob(nil))
	require.NoError(t, mgr.RegisterJobs())
	assert.Equal(t, 1, mgr.Entries())
	assert.Equal(t, "@daily", mgr.reconcileSpec)

	mgr = NewCronManager("30 0 * * *", job.NewKpiReconcileJob(nil))
	require.NoError(t, mgr.RegisterJobs())
	assert.Equal(t, 1, mgr.Entries())
}

func TestRegisterJobs_InvalidSpec(t *testing.T) {
	mgr := NewCronManager("every now and then", job.NewKpiReconcileJob(nil))
	assert.Error(t, mgr.RegisterJobs())
}
