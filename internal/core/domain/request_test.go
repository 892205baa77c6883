package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestRequestStatusCanApprove(t *testing.T) {
	cases := []struct {
		status RequestStatus
		want   bool
	}{
		{PendingApproval, true},
		{Approved, false},
		{LoadScheduled, false},
		{InStorage, false},
		{PickupRequested, false},
		{Complete, false},
		{Rejected, false},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.status.CanApprove())
		})
	}
}

func TestRequestStatusIsTerminal(t *testing.T) {
	cases := []struct {
		status RequestStatus
		want   bool
	}{
		{PendingApproval, false},
		{Approved, false},
		{LoadScheduled, false},
		{InStorage, false},
		{PickupRequested, false},
		{Complete, true},
		{Rejected, true},
	}
	for _, tc := range cases {
		t.Run(string(tc.status), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.status.IsTerminal())
		})
	}
}

func TestRackAvailable(t *testing.T) {
	rack := Rack{
		Capacity: decimal.NewFromInt(500),
		Occupied: decimal.NewFromInt(180),
	}
	assert.True(t, rack.Available().Equal(decimal.NewFromInt(320)))
}

func TestRackCanHold(t *testing.T) {
	rack := Rack{
		Capacity: decimal.NewFromInt(500),
		Occupied: decimal.NewFromInt(180),
	}

	assert.True(t, rack.CanHold(decimal.NewFromInt(320)), "filling to exact capacity is allowed")
	assert.False(t, rack.CanHold(decimal.NewFromInt(321)))
	assert.True(t, rack.CanHold(decimal.NewFromFloat(0.5)))
}
