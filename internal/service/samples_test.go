package service_test

import (
	"testing"

	"coverage-api-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

// TestSampleCoverages pins down the fixed seed records inserted on recreate
func TestSampleCoverages(t *testing.T) {
	samples := service.SampleCoverages()

	assert.Len(t, samples, 2)

	assert.Equal(t, "Alidade", samples[0].ShortName)
	assert.Equal(t, "6cfh6", samples[0].CEID)
	assert.Equal(t, "Sell", samples[0].Motion)

	assert.Equal(t, "Activeworx/Miria", samples[1].ShortName)
	assert.Equal(t, "2rw5p3sj", samples[1].CEID)

	// Seeds never carry a preassigned CID; the database assigns identity
	for _, s := range samples {
		assert.Zero(t, s.CID)
	}
}
