package finance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetDays(t *testing.T) {
	days, err := PresetDays("30/60/90")
	require.NoError(t, err)
	assert.Equal(t, []int{30, 30, 30}, days)

	days, err = PresetDays("7+14+21")
	require.NoError(t, err)
	assert.Equal(t, []int{7, 7, 7}, days)

	_, err = PresetDays("45/90")
	assert.ErrorIs(t, err, ErrUnknownInstallmentPlan)
}

func TestPresets_ReturnsCopy(t *testing.T) {
	first := Presets()
	first[0].Days[0] = 999

	again := Presets()
	assert.NotEqual(t, 999, again[0].Days[0])
}

func TestParseDayOffsets(t *testing.T) {
	tests := []struct {
		input string
		want  []int
	}{
		{input: "30+30+30", want: []int{30, 30, 30}},
		{input: "30, 60; 90/120", want: []int{30, 60, 90, 120}},
		{input: "  7\t14\n21  ", want: []int{7, 14, 21}},
		{input: "0 / -5 / abc / 10 / 2.5", want: []int{10}},
		{input: "", want: []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDayOffsets(tt.input))
		})
	}
}
