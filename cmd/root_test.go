package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplyRandomnessMode(t *testing.T) {
	tests := []struct {
		mode           string
		wantArrivals   bool
		wantStations   bool
		wantRecognized bool
	}{
		{"off", false, false, true},
		{"arrivals", true, false, true},
		{"stations", false, true, true},
		{"all", true, true, true},
		{"everything", false, false, false},
		{"", false, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			arrivals, stations, ok := applyRandomnessMode(tt.mode)
			assert.Equal(t, tt.wantRecognized, ok)
			assert.Equal(t, tt.wantArrivals, arrivals)
			assert.Equal(t, tt.wantStations, stations)
		})
	}
}
