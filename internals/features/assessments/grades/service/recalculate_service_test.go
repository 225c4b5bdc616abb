package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputePhaseStats(t *testing.T) {
	scores := []PhaseScore{
		{Phase: 1, Score: 4.0},
		{Phase: 1, Score: 3.0},
		{Phase: 2, Score: 5.0},
		{Phase: 3, Score: 3.3},
		{Phase: 3, Score: 3.4},
	}

	stats := ComputePhaseStats(scores)

	assert.Len(t, stats, 3)
	assert.Equal(t, PhaseStat{Average: 3.5, Count: 2}, stats[1])
	assert.Equal(t, PhaseStat{Average: 5.0, Count: 1}, stats[2])
	assert.Equal(t, PhaseStat{Average: 3.35, Count: 2}, stats[3], "el promedio se redondea a dos decimales")
	_, ok := stats[4]
	assert.False(t, ok, "fase sin evaluaciones no produce agregado")
}

func TestComputePhaseStats_IgnoraFasesInvalidas(t *testing.T) {
	stats := ComputePhaseStats([]PhaseScore{
		{Phase: 0, Score: 5.0},
		{Phase: 5, Score: 5.0},
		{Phase: -1, Score: 5.0},
		{Phase: 2, Score: 4.2},
	})

	assert.Len(t, stats, 1)
	assert.Equal(t, PhaseStat{Average: 4.2, Count: 1}, stats[2])
}

func TestComputePhaseStats_EsIdempotente(t *testing.T) {
	scores := []PhaseScore{{Phase: 1, Score: 4.1}, {Phase: 1, Score: 2.9}}
	assert.Equal(t, ComputePhaseStats(scores), ComputePhaseStats(scores))
}

func TestOverallAverage(t *testing.T) {
	avg := OverallAverage(map[int]float64{1: 4.0, 2: 3.0, 3: 5.0})
	if assert.NotNil(t, avg) {
		assert.Equal(t, 4.0, *avg)
	}

	avg = OverallAverage(map[int]float64{1: 3.1, 2: 3.2})
	if assert.NotNil(t, avg) {
		assert.Equal(t, 3.15, *avg, "redondeo a dos decimales")
	}

	assert.Nil(t, OverallAverage(nil))
	assert.Nil(t, OverallAverage(map[int]float64{}))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.33, round2(3.3333))
	assert.Equal(t, 3.34, round2(3.336))
	assert.Equal(t, 5.0, round2(5.0))
	assert.Equal(t, 0.0, round2(0.0049))
}
