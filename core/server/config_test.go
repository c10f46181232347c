package server_test

import (
	"testing"

	"task-sync/core/server"

	"github.com/stretchr/testify/assert"
)

func TestConfig_Origins(t *testing.T) {
	tests := []struct {
		name    string
		origins string
		want    string
	}{
		{"Wildcard", "*", "*"},
		{"Empty", "", "*"},
		{"List", " https://a.example , https://b.example ,", "https://a.example,https://b.example"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := server.Config{AllowedOrigins: tt.origins}
			assert.Equal(t, tt.want, c.Origins())
		})
	}
}

func TestConfig_BodyLimit(t *testing.T) {
	assert.Equal(t, 16*1024*1024, server.Config{}.BodyLimit())
	assert.Equal(t, 2*1024*1024, server.Config{BodyLimitMB: 2}.BodyLimit())
}
