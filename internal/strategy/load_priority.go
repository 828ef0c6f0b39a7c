package strategy

// LoadPriority serves the house first. Surplus generation charges the
// battery, then exports up to the grid limit; anything past that is
// curtailed. Deficits are met by battery discharge, then grid import.
type LoadPriority struct{}

func (LoadPriority) Name() string { return NameLoadPriority }

func (LoadPriority) Allocate(ctx Context) Allocation {
	switch {
	case ctx.GenerationKW == ctx.LoadKW:
		return Allocation{}
	case ctx.GenerationKW < ctx.LoadKW:
		return meetDeficit(ctx, ctx.LoadKW-ctx.GenerationKW)
	}

	surplus := ctx.GenerationKW - ctx.LoadKW
	charge := minKW(surplus, ctx.Battery.MaxChargeKW(ctx.StepHours))
	surplus -= charge
	export := minKW(surplus, ctx.Grid.ExportLimitKW)

	return Allocation{
		BatteryChargeKW: charge,
		GridExportKW:    export,
		CurtailedKW:     surplus - export,
	}
}
