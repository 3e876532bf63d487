package plan

import (
	"math"
	"strconv"
	"strings"
)

const (
	baseRoomCost     = 15000
	defaultRoomCount = 3
	// MaxRoomCount bounds parsed room counts; longer digit runs are treated as
	// unparseable so the breakdown always fits in an int64.
	MaxRoomCount = 10000

	defaultStyleMultiplier = 1.1
	defaultSizeMultiplier  = 1.0

	foundationShare = 0.25
	materialsShare  = 0.45
	laborShare      = 0.30
)

var styleMultipliers = map[string]float64{
	"Modern":      1.3,
	"Traditional": 1.1,
	"Minimalist":  1.0,
	"Industrial":  1.2,
}

var sizeMultipliers = map[string]float64{
	"Small":  0.8,
	"Medium": 1.0,
	"Large":  1.4,
	"Extra":  1.8,
}

// CostBreakdown is the estimate shown on the cost step. Each part is rounded
// on its own, so Foundation+Materials+Labor may differ from Total by a unit.
type CostBreakdown struct {
	Foundation int64 `json:"foundation" yaml:"foundation"`
	Materials  int64 `json:"materials" yaml:"materials"`
	Labor      int64 `json:"labor" yaml:"labor"`
	Total      int64 `json:"total" yaml:"total"`
}

// ParseRoomCount extracts the first run of decimal digits from the rooms
// field. It returns 3 when there are no digits or the number is out of range.
func ParseRoomCount(rooms string) int {
	start := strings.IndexFunc(rooms, isDigit)
	if start < 0 {
		return defaultRoomCount
	}
	end := start
	for end < len(rooms) && isDigit(rune(rooms[end])) {
		end++
	}

	n, err := strconv.Atoi(rooms[start:end])
	if err != nil || n > MaxRoomCount {
		return defaultRoomCount
	}
	return n
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

// StyleMultiplier looks up the first word of the style field.
func StyleMultiplier(style string) float64 {
	if m, ok := styleMultipliers[firstWord(style)]; ok {
		return m
	}
	return defaultStyleMultiplier
}

// SizeMultiplier looks up the first word of the size field, so both "Large"
// and "Large (2500-4000 sq ft)" resolve to 1.4 and "Extra Large ..." to 1.8.
func SizeMultiplier(size string) float64 {
	if m, ok := sizeMultipliers[firstWord(size)]; ok {
		return m
	}
	return defaultSizeMultiplier
}

func firstWord(s string) string {
	word, _, _ := strings.Cut(s, " ")
	return word
}

// CalculateCost derives the cost breakdown from the plan.
func CalculateCost(d Details) CostBreakdown {
	rooms := ParseRoomCount(d.Rooms)
	base := float64(rooms) * baseRoomCost * StyleMultiplier(d.Style) * SizeMultiplier(d.Size)

	return CostBreakdown{
		Foundation: round(base * foundationShare),
		Materials:  round(base * materialsShare),
		Labor:      round(base * laborShare),
		Total:      round(base),
	}
}

func round(v float64) int64 {
	return int64(math.Round(v))
}
