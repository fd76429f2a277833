package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGrowthStages_Band(t *testing.T) {
	stages := DefaultGrowthStages()

	tests := []struct {
		stage int
		want  GrowthBand
	}{
		{0, BandGrowing},
		{2, BandGrowing},
		{3, BandFlowering},
		{4, BandSeed},
		{5, BandSeed},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, stages.Band(tt.stage), "stage %d", tt.stage)
	}
}

func TestGrowthStages_BandWithSeedAtMax(t *testing.T) {
	stages := GrowthStages{MaxStage: 5, MaturityStage: 3, SeedStage: 5}

	assert.Equal(t, BandFlowering, stages.Band(4))
	assert.Equal(t, BandSeed, stages.Band(5))
}

func TestErrInvalidIndex_MatchesOutOfRange(t *testing.T) {
	assert.True(t, errors.Is(ErrInvalidIndex, ErrIndexOutOfRange))
	assert.False(t, errors.Is(ErrIndexOutOfRange, ErrInvalidIndex))
	assert.Equal(t, ErrMsgInvalidIndex, ErrInvalidIndex.Error())
}

func TestItemKind_Valid(t *testing.T) {
	assert.True(t, KindSeed.Valid())
	assert.True(t, KindFlower.Valid())
	assert.False(t, ItemKind("bulb").Valid())
}
