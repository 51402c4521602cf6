package connector_test

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/marketplace-connector/internal/config"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/connector"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/connector/remote"
	"github.com/SergeyBogomolovv/marketplace-connector/internal/connector/stub"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	testCases := []struct {
		name     string
		cfg      config.Client
		wantType any
		wantErr  bool
	}{
		{name: "stub", cfg: config.Client{Mode: "stub"}, wantType: &stub.Client{}},
		{
			name: "remote",
			cfg: config.Client{Mode: "remote", Remote: config.Remote{
				BaseURL:        "http://connector.internal:8080",
				ConnectTimeout: time.Second,
				ReadTimeout:    time.Second,
			}},
			wantType: &remote.Client{},
		},
		{name: "remote without base url", cfg: config.Client{Mode: "remote"}, wantErr: true},
		{name: "unknown mode", cfg: config.Client{Mode: "sandbox"}, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c, err := connector.New(logger, tc.cfg)
			if tc.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tc.wantType, c)
		})
	}
}
