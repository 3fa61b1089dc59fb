package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/sel3a/sel3a/internal/domain/model"
)

// StoreFacade exposes the subset of application functionality required by the monitor.
type StoreFacade interface {
	LowStockProducts(ctx context.Context, threshold int) ([]model.Product, error)
}

// StockMonitor periodically scans the catalog for products running low and
// reports them through the log, fanning the checks out over a worker pool.
type StockMonitor struct {
	facade       StoreFacade
	pollInterval time.Duration
	threshold    int
	batchSize    int
	workers      int
	logger       *slog.Logger

	jobs   chan model.Product
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewStockMonitor constructs the stock monitor worker pool.
func NewStockMonitor(facade StoreFacade, pollInterval time.Duration, threshold, batchSize, workers int, logger *slog.Logger) *StockMonitor {
	if workers <= 0 {
		workers = 1
	}
	if batchSize <= 0 {
		batchSize = 1
	}
	return &StockMonitor{
		facade:       facade,
		pollInterval: pollInterval,
		threshold:    threshold,
		batchSize:    batchSize,
		workers:      workers,
		logger:       logger,
		jobs:         make(chan model.Product, batchSize*workers),
	}
}

// Start launches background monitoring. The run context is detached from
// ctx's cancellation: fx cancels the start context as soon as startup
// returns, and the monitor must outlive it. Stop ends the run.
func (m *StockMonitor) Start(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()

	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	m.cancel = cancel

	for i := 0; i < m.workers; i++ {
		m.wg.Add(1)
		go m.worker(runCtx)
	}

	m.wg.Add(1)
	go m.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (m *StockMonitor) Stop() {
	m.mu.Lock()
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
	m.mu.Unlock()

	m.wg.Wait()
}

func (m *StockMonitor) dispatch(ctx context.Context) {
	defer m.wg.Done()
	defer close(m.jobs)
	ticker := time.NewTicker(m.pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.fetchAndDispatch(ctx)
		}
	}
}

func (m *StockMonitor) fetchAndDispatch(ctx context.Context) {
	products, err := m.facade.LowStockProducts(ctx, m.threshold)
	if err != nil {
		m.logger.Error("low stock scan failed", slog.String("error", err.Error()))
		return
	}
	if len(products) > m.batchSize {
		products = products[:m.batchSize]
	}
	for _, product := range products {
		select {
		case <-ctx.Done():
			return
		case m.jobs <- product:
		}
	}
}

func (m *StockMonitor) worker(ctx context.Context) {
	defer m.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case product, ok := <-m.jobs:
			if !ok {
				return
			}
			m.report(product)
		}
	}
}

func (m *StockMonitor) report(product model.Product) {
	m.logger.Warn("product low on stock",
		slog.String("product_id", product.ID),
		slog.String("name", product.Name),
		slog.Int("quantity", product.Quantity),
		slog.Int("threshold", m.threshold),
	)
}
