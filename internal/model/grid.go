package model

import "errors"

// GridParams defines the grid connection constraints and tariffs.
// Prices are cents per kWh.
type GridParams struct {
	ExportLimitKW    float64
	CostImportCents  float64
	PriceExportCents float64
}

func (p GridParams) Validate() error {
	if p.ExportLimitKW < 0 {
		return errors.New("ExportLimitKW must be >= 0")
	}
	if p.CostImportCents < 0 {
		return errors.New("CostImportCents must be >= 0")
	}
	if p.PriceExportCents < 0 {
		return errors.New("PriceExportCents must be >= 0")
	}
	return nil
}

// StepCostCents is the net cost of grid exchange for one step: energy bought
// at the import tariff minus energy sold at the export tariff. Negative
// values are earnings.
func (p GridParams) StepCostCents(importKW, exportKW, stepHours float64) float64 {
	return importKW*stepHours*p.CostImportCents - exportKW*stepHours*p.PriceExportCents
}
