package strategy

// ProducePriority pushes surplus generation to the grid first, up to the
// export limit; leftover surplus charges the battery and whatever neither
// can take is curtailed. The house load is always served from generation
// ahead of the surplus split, which keeps import and export mutually
// exclusive. Deficits are met by battery discharge, then grid import.
type ProducePriority struct{}

func (ProducePriority) Name() string { return NameProducePriority }

func (ProducePriority) Allocate(ctx Context) Allocation {
	switch {
	case ctx.GenerationKW == ctx.LoadKW:
		return Allocation{}
	case ctx.GenerationKW < ctx.LoadKW:
		return meetDeficit(ctx, ctx.LoadKW-ctx.GenerationKW)
	}

	surplus := ctx.GenerationKW - ctx.LoadKW
	export := minKW(surplus, ctx.Grid.ExportLimitKW)
	surplus -= export
	charge := minKW(surplus, ctx.Battery.MaxChargeKW(ctx.StepHours))

	return Allocation{
		BatteryChargeKW: charge,
		GridExportKW:    export,
		CurtailedKW:     surplus - charge,
	}
}
