package uploader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBuildFolderName(t *testing.T) {
	now := time.Date(2025, 3, 7, 14, 5, 33, 0, time.UTC)

	tests := []struct {
		name         string
		customerName string
		want         string
	}{
		{"plain name", "Jane", "2025-03-07_1405_Jane"},
		{"slash replaced", "Jo/hn", "2025-03-07_1405_Jo_hn"},
		{"spaces replaced", "Acme GmbH", "2025-03-07_1405_Acme_GmbH"},
		{"email characters replaced", "jo@example.com", "2025-03-07_1405_jo_example_com"},
		{"hyphen and underscore kept", "big-print_shop", "2025-03-07_1405_big-print_shop"},
		{"unicode letters kept", "Jürgen", "2025-03-07_1405_Jürgen"},
		{"absent customer", "", "2025-03-07_1405_Unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildFolderName(now, tt.customerName))
		})
	}
}

func TestBuildFolderNameDeterministic(t *testing.T) {
	now := time.Date(2025, 12, 24, 9, 30, 0, 0, time.UTC)
	first := BuildFolderName(now, "customer")
	second := BuildFolderName(now, "customer")
	assert.Equal(t, first, second)
}
