package output

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryInfo(t *testing.T) {
	s := NewSummaryInfo()
	assert.Empty(t, s.KeyMetrics)
	assert.Zero(t, s.WarningsCount)

	s.AddMetric("Файлов создано", "5", "шт")
	s.AddMetric("Коллизий", "2", "")
	s.AddWarning("log.txt занят, создан log(1).txt")
	s.AddWarning("log(1).txt занят, создан log(2).txt")

	assert.Len(t, s.KeyMetrics, 2)
	assert.Equal(t, KeyMetric{Name: "Файлов создано", Value: "5", Unit: "шт"}, s.KeyMetrics[0])
	assert.Equal(t, 2, s.WarningsCount)
	assert.Len(t, s.Warnings, 2)
}
