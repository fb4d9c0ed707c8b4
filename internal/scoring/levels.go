package scoring

import "readiness-workers/internal/models"

// levelBands are evaluated top-down; the first band whose floor is met wins.
var levelBands = []struct {
	floor int
	level models.Level
}{
	{90, models.LevelExceptional},
	{80, models.LevelAdvanced},
	{70, models.LevelProficient},
	{60, models.LevelDeveloping},
	{50, models.LevelBasic},
}

// LevelFor maps a percentage to the engine's qualitative level.
func LevelFor(percentage int) models.Level {
	for _, b := range levelBands {
		if percentage >= b.floor {
			return b.level
		}
	}
	return models.LevelNeedsImprovement
}

// DisplayLevel is the vocabulary the dashboards and reports color by. It is
// not derived from models.Level and the two must not be converted into each other.
type DisplayLevel string

const (
	DisplayExceptional      DisplayLevel = "Exceptional"
	DisplayAdvanced         DisplayLevel = "Advanced"
	DisplayAboveAverage     DisplayLevel = "Above Average"
	DisplayAverage          DisplayLevel = "Average"
	DisplayBelowAverage     DisplayLevel = "Below Average"
	DisplayNeedsImprovement DisplayLevel = "Needs Improvement"
)

var displayTones = map[DisplayLevel]string{
	DisplayExceptional:      "green",
	DisplayAdvanced:         "blue",
	DisplayAboveAverage:     "indigo",
	DisplayAverage:          "yellow",
	DisplayBelowAverage:     "orange",
	DisplayNeedsImprovement: "red",
}

// DisplayTone returns the color tone for a display label, "gray" when unknown.
func DisplayTone(label DisplayLevel) string {
	if tone, ok := displayTones[label]; ok {
		return tone
	}
	return "gray"
}

// PositionMessage describes a benchmark position for the comparison view.
func PositionMessage(position int) string {
	switch {
	case position >= 90:
		return "Exceptional performance - you're in the top 10%"
	case position >= 75:
		return "Strong performance - you're in the top 25%"
	case position >= 50:
		return "Above average performance"
	case position >= 25:
		return "Below average - room for improvement"
	default:
		return "Significant improvement needed"
	}
}

// PositionTone is the badge tone for a benchmark position, banded like PositionMessage.
func PositionTone(position int) string {
	switch {
	case position >= 90:
		return "green"
	case position >= 75:
		return "blue"
	case position >= 50:
		return "yellow"
	case position >= 25:
		return "orange"
	default:
		return "red"
	}
}
