package model

// BatteryAction is a human-friendly battery operating mode for a step.
// Keep these values stable; they are intended for display output.
type BatteryAction string

const (
	BatteryActionCharging    BatteryAction = "CHARGING"
	BatteryActionIdle        BatteryAction = "IDLE"
	BatteryActionDischarging BatteryAction = "DISCHARGING"
)

func BatteryActionFromFlows(chargeKW, dischargeKW float64) BatteryAction {
	switch {
	case chargeKW > dischargeKW:
		return BatteryActionCharging
	case dischargeKW > chargeKW:
		return BatteryActionDischarging
	default:
		return BatteryActionIdle
	}
}
