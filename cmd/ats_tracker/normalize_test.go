package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSynonymPairs(t *testing.T) {
	pairs, err := parseSynonymPairs([]string{"k8s=Kubernetes", "GoLang=Go"})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"k8s":    "Kubernetes",
		"golang": "Go",
	}, pairs)
}

func TestParseSynonymPairs_Invalid(t *testing.T) {
	tests := []struct {
		name string
		arg  string
	}{
		{name: "no equals", arg: "k8s"},
		{name: "empty raw", arg: "=Kubernetes"},
		{name: "empty canonical", arg: "k8s="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parseSynonymPairs([]string{tt.arg})
			assert.Error(t, err)
		})
	}
}
