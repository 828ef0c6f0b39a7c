// Package strategy decides how each step's power balance is split among the
// house load, the battery, and the grid. Strategies are pure: they read the
// battery's headroom but never mutate it; the engine applies the returned
// flows.
package strategy

import (
	"fmt"

	"microgrid-sim/internal/model"
)

// Context carries everything a strategy may consult for one step.
type Context struct {
	GenerationKW float64
	LoadKW       float64
	Battery      *model.Battery
	Grid         model.GridParams
	StepHours    float64
}

// Allocation is the decided set of power flows for one step. All fields are
// >= 0. GridImportKW and GridExportKW are never both nonzero. CurtailedKW is
// generation that could not be consumed, stored, or exported.
//
// The flows always balance exactly:
//
//	generation + discharge + import == load + charge + export + curtailed
type Allocation struct {
	BatteryChargeKW    float64
	BatteryDischargeKW float64
	GridImportKW       float64
	GridExportKW       float64
	CurtailedKW        float64
}

type Strategy interface {
	Name() string
	Allocate(ctx Context) Allocation
}

const (
	NameLoadPriority    = "LOAD_PRIORITY"
	NameChargePriority  = "CHARGE_PRIORITY"
	NameProducePriority = "PRODUCE_PRIORITY"
)

// Names lists the recognized strategy names in a stable order.
func Names() []string {
	return []string{NameLoadPriority, NameChargePriority, NameProducePriority}
}

// FromName resolves a configuration string to a strategy. Dispatch happens
// once per run; the engine only sees the interface.
func FromName(name string) (Strategy, error) {
	switch name {
	case NameLoadPriority:
		return LoadPriority{}, nil
	case NameChargePriority:
		return ChargePriority{}, nil
	case NameProducePriority:
		return ProducePriority{}, nil
	}
	return nil, fmt.Errorf("unsupported strategy: %q", name)
}

// meetDeficit covers load unmet by generation: battery discharge first, up
// to its headroom, then grid import.
func meetDeficit(ctx Context, deficitKW float64) Allocation {
	discharge := ctx.Battery.MaxDischargeKW(ctx.StepHours)
	if discharge > deficitKW {
		discharge = deficitKW
	}
	return Allocation{
		BatteryDischargeKW: discharge,
		GridImportKW:       deficitKW - discharge,
	}
}

func minKW(a, b float64) float64 {
	if a < b {
		return a
	}
	return b
}
