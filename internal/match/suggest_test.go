package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditDistance(t *testing.T) {
	tests := []struct {
		a, b     string
		expected int
	}{
		{"", "", 0},
		{"", "abc", 3},
		{"kitten", "sitting", 3},
		{"Configuration", "Configuraton", 1},
		{"FeignClient", "FeignClients", 1},
		{"Component", "Configuration", 10},
		{"Straße", "Strasse", 2},
	}

	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.expected, editDistance([]rune(tt.a), []rune(tt.b)))
			assert.Equal(t, tt.expected, editDistance([]rune(tt.b), []rune(tt.a)), "symmetric")
		})
	}
}

func TestSimilarity(t *testing.T) {
	const configuration = "org.springframework.context.annotation.Configuration"

	assert.InDelta(t, 1.0, Similarity(configuration, configuration), 1e-9)
	assert.InDelta(t, 1.0, Similarity(configuration, "org.springframework.context.annotation.configuration"), 1e-9,
		"simple names ignore case")
	assert.InDelta(t, 0.85, Similarity("a.Bcde0", "a.Bcde1"), 1e-9)
	assert.InDelta(t, 0.0, Similarity("x", configuration), 1e-9)

	// Same simple name in a different package beats a typo in an unrelated
	// simple name within the same package.
	assert.Greater(t,
		Similarity("org.springframework.cloud.openfeign.FeignClient", "org.springframework.cloud.netflix.feign.FeignClient"),
		Similarity("org.springframework.cloud.openfeign.FeignClient", "org.springframework.cloud.openfeign.EnableFeignClients"))
}

func TestSuggest(t *testing.T) {
	known := []string{
		"org.springframework.context.annotation.Configuration",
		"org.springframework.context.annotation.Conditional",
		"org.springframework.stereotype.Component",
		"org.springframework.context.annotation.Configuration",
	}

	got := Suggest("org.springframework.context.annotation.Configuraton", known, 3)
	require.NotEmpty(t, got)
	assert.Equal(t, []string{"org.springframework.context.annotation.Configuration"}, got)

	assert.Empty(t, Suggest("org.springframework.context.annotation.Configuration", known[:1], 3))
	assert.Empty(t, Suggest("x", known, 3))
	assert.Empty(t, Suggest("x", nil, 3))
}

func TestSuggest_RanksSimpleNameOverNamespace(t *testing.T) {
	known := []string{
		"org.springframework.context.annotation.Configurations",
		"org.springframework.context.annotation.Configuration",
	}

	got := Suggest("org.springframework.context.annotation.Configuraton", known, 0)
	assert.Equal(t, []string{
		"org.springframework.context.annotation.Configuration",
		"org.springframework.context.annotation.Configurations",
	}, got)
}

func TestSuggest_Limit(t *testing.T) {
	known := []string{"a.Bcde1", "a.Bcde2", "a.Bcde3"}

	assert.Len(t, Suggest("a.Bcde0", known, 2), 2)
	assert.Equal(t, []string{"a.Bcde1", "a.Bcde2", "a.Bcde3"}, Suggest("a.Bcde0", known, 0))
}

func BenchmarkSimilarity(b *testing.B) {
	a := "org.springframework.context.annotation.Configuration"
	c := "org.springframework.context.annotation.Configurations"

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Similarity(a, c)
	}
}
