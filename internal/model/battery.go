package model

import (
	"errors"
	"math"
)

// BatteryParams defines the physical parameters of the battery.
// Units:
// - CapacityKWh: kWh
// - RoundTripEfficiency: 0..1, fraction of stored energy recovered over a full cycle
// - DischargeDepth: fraction of capacity reserved as the discharge floor
type BatteryParams struct {
	CapacityKWh         float64
	RoundTripEfficiency float64
	DischargeDepth      float64
}

// BatteryState captures mutable state.
type BatteryState struct {
	// SoCKWh is the stored energy in kWh.
	SoCKWh float64
}

// Battery bundles params + state.
//
// The round-trip loss is split symmetrically: charging stores
// power*dt*sqrt(eff), discharging drains power*dt/sqrt(eff). The same
// convention applies everywhere, headroom queries included.
type Battery struct {
	Params BatteryParams
	State  BatteryState
}

func NewBattery(params BatteryParams, initialSoCFraction float64) (*Battery, error) {
	if initialSoCFraction < 0 || initialSoCFraction > 1 {
		return nil, errors.New("initial state must be in [0, 1]")
	}
	b := &Battery{
		Params: params,
		State:  BatteryState{SoCKWh: params.CapacityKWh * initialSoCFraction},
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

func (b *Battery) Validate() error {
	p := b.Params
	if p.CapacityKWh <= 0 {
		return errors.New("CapacityKWh must be > 0")
	}
	if p.RoundTripEfficiency <= 0 || p.RoundTripEfficiency > 1 {
		return errors.New("RoundTripEfficiency must be in (0, 1]")
	}
	if p.DischargeDepth < 0 || p.DischargeDepth >= 1 {
		return errors.New("DischargeDepth must be in [0, 1)")
	}
	if b.State.SoCKWh < b.FloorKWh() || b.State.SoCKWh > p.CapacityKWh {
		return errors.New("initial SoC must be within [DischargeDepth*Capacity, Capacity]")
	}
	return nil
}

// FloorKWh is the minimum stored energy the battery may be drained to.
func (b *Battery) FloorKWh() float64 {
	return b.Params.CapacityKWh * b.Params.DischargeDepth
}

// oneWayEfficiency splits the round-trip loss across charge and discharge.
func (b *Battery) oneWayEfficiency() float64 {
	return math.Sqrt(b.Params.RoundTripEfficiency)
}

// MaxChargeKW reports the charge power that would fill the remaining
// headroom in exactly one step. Charging at this rate stores
// headroom*sqrt(eff) <= headroom, so a request capped by it never clamps.
func (b *Battery) MaxChargeKW(stepHours float64) float64 {
	if stepHours <= 0 {
		return 0
	}
	headroom := b.Params.CapacityKWh - b.State.SoCKWh
	if headroom <= 0 {
		return 0
	}
	return headroom / stepHours
}

// MaxDischargeKW reports the discharge power deliverable to the bus for one
// step without touching the discharge floor. The usable energy above the
// floor is scaled by the one-way efficiency, so a request at exactly this
// rate drains the battery to the floor without clamping.
func (b *Battery) MaxDischargeKW(stepHours float64) float64 {
	if stepHours <= 0 {
		return 0
	}
	usable := b.State.SoCKWh - b.FloorKWh()
	if usable <= 0 {
		return 0
	}
	return usable * b.oneWayEfficiency() / stepHours
}

// Charge absorbs powerKW from the bus for one step and returns the energy
// actually stored (after the one-way loss), clamped to the remaining
// headroom.
func (b *Battery) Charge(powerKW, stepHours float64) float64 {
	if powerKW <= 0 || stepHours <= 0 {
		return 0
	}
	stored := powerKW * stepHours * b.oneWayEfficiency()
	headroom := b.Params.CapacityKWh - b.State.SoCKWh
	if stored > headroom {
		stored = headroom
	}
	b.State.SoCKWh += stored
	return stored
}

// Discharge delivers powerKW to the bus for one step and returns the energy
// actually delivered. Draining is clamped at the discharge floor, in which
// case less than the requested energy reaches the bus.
func (b *Battery) Discharge(powerKW, stepHours float64) float64 {
	if powerKW <= 0 || stepHours <= 0 {
		return 0
	}
	usable := b.State.SoCKWh - b.FloorKWh()
	if usable <= 0 {
		return 0
	}
	drained := powerKW * stepHours / b.oneWayEfficiency()
	if drained > usable {
		drained = usable
	}
	b.State.SoCKWh -= drained
	return drained * b.oneWayEfficiency()
}
