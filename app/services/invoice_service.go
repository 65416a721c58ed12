package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const invoiceSeqKey = "parkinv:invoice:seq"

// invoiceSeqSeed is where the in-memory fallback sequence resumes when Redis
// is unavailable; existing invoices up to this number were issued before the
// counter moved server-side.
const invoiceSeqSeed = 9

// InvoiceService hands out sequential invoice numbers. The authoritative
// counter lives in Redis; without Redis it degrades to a process-local
// counter so development setups keep working.
type InvoiceService struct {
	client *redis.Client
	logger *zap.Logger

	mu       sync.Mutex
	fallback int64
}

// NewInvoiceService accepts a nil client, in which case only the local
// counter is used.
func NewInvoiceService(client *redis.Client, logger *zap.Logger) *InvoiceService {
	return &InvoiceService{
		client:   client,
		logger:   logger,
		fallback: invoiceSeqSeed,
	}
}

// NextNumber returns the next zero-padded invoice number, e.g. "0010".
func (s *InvoiceService) NextNumber(ctx context.Context) (string, error) {
	if s.client != nil {
		seq, err := s.client.Incr(ctx, invoiceSeqKey).Result()
		if err == nil {
			return formatInvoiceNumber(seq), nil
		}
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		s.logger.Warn("redis invoice counter unavailable, using local sequence", zap.Error(err))
	}

	s.mu.Lock()
	s.fallback++
	seq := s.fallback
	s.mu.Unlock()
	return formatInvoiceNumber(seq), nil
}

func formatInvoiceNumber(seq int64) string {
	return fmt.Sprintf("%04d", seq)
}
