package strategy

// ChargePriority gives the battery first claim on generation: when the array
// covers the load, charging happens before the house is served, and any
// load the charging diverted is imported. Remaining generation serves the
// load, then exports up to the grid limit. When generation falls short of
// the load no charging happens; the deficit is met by battery discharge,
// then grid import.
type ChargePriority struct{}

func (ChargePriority) Name() string { return NameChargePriority }

func (ChargePriority) Allocate(ctx Context) Allocation {
	switch {
	case ctx.GenerationKW == ctx.LoadKW:
		return Allocation{}
	case ctx.GenerationKW < ctx.LoadKW:
		return meetDeficit(ctx, ctx.LoadKW-ctx.GenerationKW)
	}

	charge := minKW(ctx.GenerationKW, ctx.Battery.MaxChargeKW(ctx.StepHours))
	remaining := ctx.GenerationKW - charge

	if remaining < ctx.LoadKW {
		return Allocation{
			BatteryChargeKW: charge,
			GridImportKW:    ctx.LoadKW - remaining,
		}
	}

	surplus := remaining - ctx.LoadKW
	export := minKW(surplus, ctx.Grid.ExportLimitKW)

	return Allocation{
		BatteryChargeKW: charge,
		GridExportKW:    export,
		CurtailedKW:     surplus - export,
	}
}
