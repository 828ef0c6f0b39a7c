package model

import "fmt"

// Season selects the cloud-cover distribution for the run.
type Season string

const (
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonFall   Season = "Fall"
	SeasonWinter Season = "Winter"
)

func ParseSeason(s string) (Season, error) {
	switch Season(s) {
	case SeasonSpring, SeasonSummer, SeasonFall, SeasonWinter:
		return Season(s), nil
	}
	return "", fmt.Errorf("unknown season %q", s)
}
