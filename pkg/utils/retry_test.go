package utils_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/marketplace-connector/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestRetry(t *testing.T) {
	errTemporary := errors.New("temporary")
	errFatal := errors.New("fatal")

	testCases := []struct {
		name         string
		failures     []error
		retryIf      func(error) bool
		wantErr      error
		wantAttempts int
	}{
		{name: "first attempt succeeds", wantAttempts: 1},
		{name: "succeeds after retries", failures: []error{errTemporary, errTemporary}, wantAttempts: 3},
		{name: "gives up after max attempts", failures: []error{errTemporary, errTemporary, errTemporary, errTemporary}, wantErr: errTemporary, wantAttempts: 3},
		{
			name:         "stops on non retryable error",
			failures:     []error{errFatal, errTemporary},
			retryIf:      func(err error) bool { return errors.Is(err, errTemporary) },
			wantErr:      errFatal,
			wantAttempts: 1,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			attempts := 0
			cfg := utils.RetryConfig{MaxAttempts: 3, InitialDelay: time.Millisecond, RetryIf: tc.retryIf}

			err := utils.Retry(context.Background(), cfg, func() error {
				attempts++
				if attempts <= len(tc.failures) {
					return tc.failures[attempts-1]
				}
				return nil
			})

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tc.wantAttempts, attempts)
		})
	}
}

func TestRetry_ContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := utils.Retry(ctx, utils.RetryConfig{MaxAttempts: 5, InitialDelay: time.Second}, func() error {
		attempts++
		return errors.New("boom")
	})
	assert.Error(t, err)
	assert.Equal(t, 1, attempts)
}
