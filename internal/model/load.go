package model

import "errors"

// LoadParams defines the household consumption profile.
// Peak hours form a half-open window [PeakStartHour, PeakEndHour) on a 24h
// clock; a window that wraps midnight (start > end) is allowed.
type LoadParams struct {
	BaseLoadKW    float64
	PeakLoadKW    float64
	PeakStartHour int
	PeakEndHour   int
}

func (p LoadParams) Validate() error {
	if p.BaseLoadKW < 0 {
		return errors.New("BaseLoadKW must be >= 0")
	}
	if p.PeakLoadKW < 0 {
		return errors.New("PeakLoadKW must be >= 0")
	}
	if p.PeakStartHour < 0 || p.PeakStartHour > 23 {
		return errors.New("PeakStartHour must be in [0, 23]")
	}
	if p.PeakEndHour < 0 || p.PeakEndHour > 24 {
		return errors.New("PeakEndHour must be in [0, 24]")
	}
	return nil
}
