package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestInvoiceNumberFallbackSequence(t *testing.T) {
	svc := NewInvoiceService(nil, zap.NewNop())
	ctx := context.Background()

	first, err := svc.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0010", first)

	second, err := svc.NextNumber(ctx)
	require.NoError(t, err)
	assert.Equal(t, "0011", second)
}

func TestInvoiceNumberZeroPadding(t *testing.T) {
	assert.Equal(t, "0001", formatInvoiceNumber(1))
	assert.Equal(t, "0042", formatInvoiceNumber(42))
	assert.Equal(t, "12345", formatInvoiceNumber(12345))
}

func TestInvoiceNumberConcurrentFallback(t *testing.T) {
	svc := NewInvoiceService(nil, zap.NewNop())
	ctx := context.Background()

	const n = 50
	numbers := make(chan string, n)
	for i := 0; i < n; i++ {
		go func() {
			num, _ := svc.NextNumber(ctx)
			numbers <- num
		}()
	}

	seen := make(map[string]bool, n)
	for i := 0; i < n; i++ {
		num := <-numbers
		assert.False(t, seen[num], "duplicate invoice number %s", num)
		seen[num] = true
	}
}
