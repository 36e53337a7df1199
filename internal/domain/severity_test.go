package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stylegate/stylegate/internal/domain"
)

func TestSeveritySet(t *testing.T) {
	s := domain.NewSeveritySet("warning", "error")

	assert.True(t, s.Contains("warning"))
	assert.True(t, s.Contains("error"))
	assert.False(t, s.Contains("info"))
	assert.Equal(t, []string{"error", "warning"}, s.Labels())
}

func TestDefaultFailingSeverities(t *testing.T) {
	s := domain.DefaultFailingSeverities()

	assert.Equal(t, []string{"error", "warning"}, s.Labels())
	assert.False(t, s.Contains(domain.SeverityInfo))
}

func TestIsValidSeverity(t *testing.T) {
	for _, v := range domain.ValidSeverities {
		assert.True(t, domain.IsValidSeverity(v), v)
	}
	assert.False(t, domain.IsValidSeverity("fatal"))
	assert.False(t, domain.IsValidSeverity(""))
}
