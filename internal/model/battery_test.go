package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func idealBattery(t *testing.T) *Battery {
	t.Helper()
	b, err := NewBattery(BatteryParams{
		CapacityKWh:         10,
		RoundTripEfficiency: 1.0,
		DischargeDepth:      0.0,
	}, 0.5)
	require.NoError(t, err)
	return b
}

func TestBattery_Validate(t *testing.T) {
	_, err := NewBattery(BatteryParams{CapacityKWh: 0, RoundTripEfficiency: 0.9}, 0.5)
	assert.Error(t, err)

	_, err = NewBattery(BatteryParams{CapacityKWh: 10, RoundTripEfficiency: 1.2}, 0.5)
	assert.Error(t, err)

	_, err = NewBattery(BatteryParams{CapacityKWh: 10, RoundTripEfficiency: 0.9, DischargeDepth: 1.0}, 0.5)
	assert.Error(t, err)

	// Initial SoC below the discharge floor is rejected.
	_, err = NewBattery(BatteryParams{CapacityKWh: 10, RoundTripEfficiency: 0.9, DischargeDepth: 0.2}, 0.1)
	assert.Error(t, err)
}

func TestBattery_DischargeIdeal(t *testing.T) {
	b := idealBattery(t)

	delivered := b.Discharge(2, 1)
	assert.InDelta(t, 2.0, delivered, 1e-9)
	assert.InDelta(t, 3.0, b.State.SoCKWh, 1e-9)
}

func TestBattery_ChargeIdeal(t *testing.T) {
	b := idealBattery(t)

	stored := b.Charge(3, 1)
	assert.InDelta(t, 3.0, stored, 1e-9)
	assert.InDelta(t, 8.0, b.State.SoCKWh, 1e-9)
}

func TestBattery_EfficiencySplit(t *testing.T) {
	b, err := NewBattery(BatteryParams{
		CapacityKWh:         10,
		RoundTripEfficiency: 0.81, // sqrt = 0.9
		DischargeDepth:      0.0,
	}, 0.5)
	require.NoError(t, err)

	// Charging 1 kW for 1h stores 0.9 kWh.
	stored := b.Charge(1, 1)
	assert.InDelta(t, 0.9, stored, 1e-9)
	assert.InDelta(t, 5.9, b.State.SoCKWh, 1e-9)

	// Discharging 0.9 kW for 1h drains 1.0 kWh from storage.
	delivered := b.Discharge(0.9, 1)
	assert.InDelta(t, 0.9, delivered, 1e-9)
	assert.InDelta(t, 4.9, b.State.SoCKWh, 1e-9)
}

func TestBattery_ChargeClampsAtCapacity(t *testing.T) {
	b := idealBattery(t)

	stored := b.Charge(100, 1)
	assert.InDelta(t, 5.0, stored, 1e-9)
	assert.InDelta(t, 10.0, b.State.SoCKWh, 1e-9)
}

func TestBattery_DischargeClampsAtFloor(t *testing.T) {
	b, err := NewBattery(BatteryParams{
		CapacityKWh:         10,
		RoundTripEfficiency: 1.0,
		DischargeDepth:      0.2,
	}, 0.5)
	require.NoError(t, err)

	delivered := b.Discharge(100, 1)
	assert.InDelta(t, 3.0, delivered, 1e-9) // 5 - floor(2)
	assert.InDelta(t, 2.0, b.State.SoCKWh, 1e-9)

	// Already at the floor: nothing left.
	assert.InDelta(t, 0.0, b.Discharge(1, 1), 1e-9)
}

func TestBattery_MaxChargeNeverClamps(t *testing.T) {
	b, err := NewBattery(BatteryParams{
		CapacityKWh:         10,
		RoundTripEfficiency: 0.81,
		DischargeDepth:      0.1,
	}, 0.5)
	require.NoError(t, err)

	max := b.MaxChargeKW(1)
	assert.InDelta(t, 5.0, max, 1e-9)

	stored := b.Charge(max, 1)
	assert.InDelta(t, 4.5, stored, 1e-9) // headroom * sqrt(eff)
	assert.LessOrEqual(t, b.State.SoCKWh, b.Params.CapacityKWh+1e-9)
}

func TestBattery_MaxDischargeDrainsExactlyToFloor(t *testing.T) {
	b, err := NewBattery(BatteryParams{
		CapacityKWh:         10,
		RoundTripEfficiency: 0.81,
		DischargeDepth:      0.1,
	}, 0.5)
	require.NoError(t, err)

	max := b.MaxDischargeKW(1)
	assert.InDelta(t, 3.6, max, 1e-9) // (5-1) * 0.9

	delivered := b.Discharge(max, 1)
	assert.InDelta(t, max, delivered, 1e-9)
	assert.InDelta(t, b.FloorKWh(), b.State.SoCKWh, 1e-9)
}

func TestBattery_HeadroomScalesWithStepLength(t *testing.T) {
	b := idealBattery(t)

	// Half-hour step doubles the admissible power.
	assert.InDelta(t, 2*b.MaxChargeKW(1), b.MaxChargeKW(0.5), 1e-9)
	assert.InDelta(t, 2*b.MaxDischargeKW(1), b.MaxDischargeKW(0.5), 1e-9)
}

func TestBattery_NoNegativeRequests(t *testing.T) {
	b := idealBattery(t)
	soc := b.State.SoCKWh

	assert.Zero(t, b.Charge(-1, 1))
	assert.Zero(t, b.Discharge(-1, 1))
	assert.Zero(t, b.Charge(1, 0))
	assert.InDelta(t, soc, b.State.SoCKWh, 1e-12)
}

func TestBattery_FloorKWh(t *testing.T) {
	b, err := NewBattery(BatteryParams{
		CapacityKWh:         13.5,
		RoundTripEfficiency: 0.9,
		DischargeDepth:      0.05,
	}, 0.05)
	require.NoError(t, err)
	assert.InDelta(t, 0.675, b.FloorKWh(), 1e-9)
	assert.False(t, math.Signbit(b.FloorKWh()))
}
