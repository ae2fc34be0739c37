package payment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestStatusPolicy(t *testing.T) {
	assert.True(t, LatestStatusPolicy.Allow(StatusPaid, StatusPendingPayment))
	assert.True(t, LatestStatusPolicy.Allow(StatusCanceled, StatusPaid))
}

func TestNoPaidDowngradePolicy(t *testing.T) {
	assert.False(t, NoPaidDowngradePolicy.Allow(StatusPaid, StatusPendingPayment))
	assert.False(t, NoPaidDowngradePolicy.Allow(StatusPaid, StatusCanceled))
	assert.True(t, NoPaidDowngradePolicy.Allow(StatusPaid, StatusPaid))
	assert.True(t, NoPaidDowngradePolicy.Allow(StatusPendingPayment, StatusPaid))
	assert.True(t, NoPaidDowngradePolicy.Allow(StatusCanceled, StatusPaid))
}

func TestPolicyByName(t *testing.T) {
	p, err := PolicyByName("")
	require.NoError(t, err)
	assert.True(t, p.Allow(StatusPaid, StatusCanceled))

	p, err = PolicyByName("strict")
	require.NoError(t, err)
	assert.False(t, p.Allow(StatusPaid, StatusCanceled))

	_, err = PolicyByName("monotonic")
	assert.Error(t, err)
}
