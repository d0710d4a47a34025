package finance

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"
)

// Preset is a named quick-select list of cumulative day offsets.
type Preset struct {
	Name string `json:"name"`
	Days []int  `json:"days"`
}

// Names follow how the terms are usually written on a Brazilian invoice; the
// offsets are the gaps between consecutive due dates, not days from the start.
var presets = []Preset{
	{Name: "À vista", Days: []int{0}},
	{Name: "30", Days: []int{30}},
	{Name: "30/60", Days: []int{30, 30}},
	{Name: "30/60/90", Days: []int{30, 30, 30}},
	{Name: "30/60/90/120", Days: []int{30, 30, 30, 30}},
	{Name: "28/56/84", Days: []int{28, 28, 28}},
	{Name: "15/30/45", Days: []int{15, 15, 15}},
	{Name: "7+14+21", Days: []int{7, 7, 7}},
	{Name: "Entrada + 30/60", Days: []int{0, 30, 30}},
	{Name: "Entrada + 30/60/90", Days: []int{0, 30, 30, 30}},
	{Name: "6x mensal", Days: repeatDays(30, 6)},
	{Name: "10x mensal", Days: repeatDays(30, 10)},
	{Name: "12x mensal", Days: repeatDays(30, 12)},
}

func repeatDays(days, times int) []int {
	return lo.Times(times, func(int) int { return days })
}

// Presets returns a copy of the presets table.
func Presets() []Preset {
	return lo.Map(presets, func(p Preset, _ int) Preset {
		return Preset{Name: p.Name, Days: append([]int(nil), p.Days...)}
	})
}

// PresetDays looks a preset up by its exact name.
func PresetDays(name string) ([]int, error) {
	p, ok := lo.Find(presets, func(p Preset) bool { return p.Name == name })
	if !ok {
		return nil, &ValidationError{Err: ErrUnknownInstallmentPlan, Details: name}
	}
	return append([]int(nil), p.Days...), nil
}

// ParseDayOffsets reads free text such as "30+30+30", "30, 30; 30" or "30/30 30".
// Tokens that are not positive integers are dropped.
func ParseDayOffsets(text string) []int {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		switch r {
		case '+', ',', ';', '/':
			return true
		}
		return unicode.IsSpace(r)
	})

	return lo.FilterMap(fields, func(f string, _ int) (int, bool) {
		n, err := strconv.Atoi(f)
		return n, err == nil && n > 0
	})
}
