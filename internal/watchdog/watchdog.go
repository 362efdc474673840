package watchdog

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/memomarket/escortd/internal/config"
	"github.com/memomarket/escortd/internal/domain"
)

const scanLimit = 1000

// notifier requests per second; the bot transport is slow.
const notifyRate = 10

var remindedOrders sync.Map

type OrderRepo interface {
	FindStale(ctx context.Context, cutoff time.Time, limit uint32) ([]domain.Order, error)
}

type HTTPClient interface {
	Post(url, contentType string, body io.Reader) (statusCode int, respBody []byte, err error)
}

// Reminder is the payload posted to the notifier for every stale order.
type Reminder struct {
	MemoID    string `json:"memo_id"`
	Status    string `json:"status"`
	AgeHours  int    `json:"age_hours"`
	CreatedAt string `json:"created_at"`
}

// Service periodically scans for orders stuck in assigned/in_progress and
// nudges the excluded bot transport over its webhook.
type Service struct {
	url        string
	orderRepo  OrderRepo
	client     HTTPClient
	staleAge   time.Duration
	period     time.Duration
	workerPool WorkerPoolI
	limiter    ratelimit.Limiter
}

func New(cfg *config.Config, orderRepo OrderRepo, client HTTPClient) *Service {
	return &Service{
		url:        cfg.NotifierAddress + "/api/notify/stale-order",
		orderRepo:  orderRepo,
		client:     client,
		staleAge:   cfg.StaleOrderAge,
		period:     cfg.ReminderPeriod,
		workerPool: NewWorkerPool(10),
		limiter:    ratelimit.New(notifyRate),
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Watchdog service started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping watchdog")
			return
		case <-ticker.C:
			s.processStaleOrders(ctx)
		}
	}
}

func (s *Service) processStaleOrders(ctx context.Context) {
	cutoff := time.Now().Add(-s.staleAge)
	orders, err := s.orderRepo.FindStale(ctx, cutoff, scanLimit)
	if err != nil {
		zap.L().Error("Failed to fetch stale orders", zap.Error(err))
		return
	}

	var g errgroup.Group
	for _, order := range orders {
		order := order

		if _, loaded := remindedOrders.LoadOrStore(order.MemoID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			err := s.workerPool.AddTask(ctx, func() error {
				defer remindedOrders.Delete(order.MemoID)
				return s.remind(order)
			})
			if err != nil {
				remindedOrders.Delete(order.MemoID)
				return err
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error reminding stale orders", zap.Error(err))
	}
}

func (s *Service) remind(order domain.Order) error {
	s.limiter.Take()

	payload, err := json.Marshal(Reminder{
		MemoID:    order.MemoID,
		Status:    order.Status,
		AgeHours:  int(time.Since(order.CreatedAt).Hours()),
		CreatedAt: order.CreatedAt.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder: %w", err)
	}

	statusCode, _, err := s.client.Post(s.url, "application/json", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to notify about order %s: %w", order.MemoID, err)
	}
	if statusCode != http.StatusOK && statusCode != http.StatusAccepted {
		return fmt.Errorf("notifier rejected reminder for order %s: status %d", order.MemoID, statusCode)
	}

	zap.L().Info("Stale order reminder sent", zap.String("memoID", order.MemoID))
	return nil
}
