package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRiskLevelForScore(t *testing.T) {
	tests := []struct {
		score int
		want  RiskLevel
	}{
		{0, RiskLow},
		{40, RiskLow},
		{41, RiskMedium},
		{65, RiskMedium},
		{70, RiskMedium},
		{71, RiskHigh},
		{100, RiskHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, RiskLevelForScore(tt.score), "score %d", tt.score)
	}
}
