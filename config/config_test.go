package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLLMConfig(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		cfg := &LLMConfig{Providers: []ProviderConfig{
			{Name: "gemini", Enabled: true, Priority: 1, Model: "gemini-2.5-flash"},
			{Name: "deepseek", Enabled: true, Priority: 2, Model: "deepseek-chat"},
		}}
		require.NoError(t, validateLLMConfig(cfg))
	})

	t.Run("duplicate priority", func(t *testing.T) {
		cfg := &LLMConfig{Providers: []ProviderConfig{
			{Name: "a", Enabled: true, Priority: 1, Model: "m"},
			{Name: "b", Enabled: true, Priority: 1, Model: "m"},
		}}
		assert.ErrorContains(t, validateLLMConfig(cfg), "duplicate priority")
	})

	t.Run("missing model", func(t *testing.T) {
		cfg := &LLMConfig{Providers: []ProviderConfig{{Name: "a", Enabled: true, Priority: 1}}}
		assert.ErrorContains(t, validateLLMConfig(cfg), "model is required")
	})

	t.Run("none enabled", func(t *testing.T) {
		cfg := &LLMConfig{Providers: []ProviderConfig{{Name: "a", Model: "m"}}}
		assert.ErrorContains(t, validateLLMConfig(cfg), "no enabled")
	})
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, splitList(" a, ,b "))
	assert.Nil(t, splitList(""))
}

func TestExpandEnvVar(t *testing.T) {
	t.Setenv("TRAVEL_TEST_SECRET", "s3cret")
	assert.Equal(t, "s3cret", expandEnvVar("${TRAVEL_TEST_SECRET}"))
	assert.Equal(t, "plain", expandEnvVar("plain"))
	assert.Equal(t, "", expandEnvVar("${TRAVEL_TEST_MISSING_VAR}"))
}
