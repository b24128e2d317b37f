package sweep

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/coursemart/settlement/internal/config"
	"github.com/coursemart/settlement/internal/domain"
	"github.com/coursemart/settlement/internal/pg"
	"github.com/coursemart/settlement/internal/service/balanceservice"
	"github.com/coursemart/settlement/internal/service/earningservice"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// in-flight guard: an earning picked up by one tick is skipped by the next
// until its promotion finishes.
var promotingEarnings sync.Map

// Service is the maturity sweep: it periodically promotes earnings whose hold
// period has elapsed from the pending to the available bucket. Each earning's
// promotion is its own transaction guarded by the status check, so reruns,
// concurrent sweepers and mid-batch crashes never promote twice.
type Service struct {
	earningRepo earningservice.Repo
	ledgerRepo  balanceservice.LedgerRepo
	txManager   pg.TXManager
	limit       uint32
	workerPool  WorkerPoolI
	interval    time.Duration
}

func New(cfg *config.Config, earningRepo earningservice.Repo, ledgerRepo balanceservice.LedgerRepo, txManager pg.TXManager) *Service {
	return &Service{
		earningRepo: earningRepo,
		ledgerRepo:  ledgerRepo,
		txManager:   txManager,
		limit:       uint32(cfg.SweepLimit),
		workerPool:  NewWorkerPool(10),
		interval:    cfg.SweepInterval,
	}
}

func (s *Service) Start(ctx context.Context) {
	zap.L().Info("Maturity sweep started")
	go s.run(ctx)
}

func (s *Service) run(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			zap.L().Info("Context canceled, stopping maturity sweep")
			return
		case <-ticker.C:
			if _, err := s.RunOnce(ctx, time.Now()); err != nil {
				zap.L().Error("Maturity sweep run failed", zap.Error(err))
			}
		}
	}
}

// RunOnce promotes every matured earning it can find and returns how many it
// promoted. It does not return until every dispatched promotion has finished,
// and a failed promotion fails the run.
func (s *Service) RunOnce(ctx context.Context, now time.Time) (int, error) {
	earnings, err := s.earningRepo.FindMature(ctx, now, atomic.LoadUint32(&s.limit))
	if err != nil {
		zap.L().Error("Failed to fetch matured earnings", zap.Error(err))
		return 0, err
	}

	var promoted atomic.Int64
	var g errgroup.Group
	for _, earning := range earnings {
		earning := earning

		if _, loaded := promotingEarnings.LoadOrStore(earning.ID, struct{}{}); loaded {
			continue
		}

		g.Go(func() error {
			// AddTask only enqueues; done carries the promotion result so the
			// group waits for the task to actually finish.
			done := make(chan error, 1)
			err := s.workerPool.AddTask(ctx, func() error {
				defer promotingEarnings.Delete(earning.ID)
				ok, err := s.promote(ctx, earning)
				if ok {
					promoted.Add(1)
				}
				done <- err
				return err
			})
			if err != nil {
				promotingEarnings.Delete(earning.ID)
				return err
			}
			return <-done
		})
	}

	if err := g.Wait(); err != nil {
		zap.L().Error("Error promoting earnings", zap.Error(err))
		return int(promoted.Load()), err
	}
	return int(promoted.Load()), nil
}

// promote flips one earning to available and moves its net amount between the
// ledger buckets, atomically. The status guard makes a rerun a no-op.
func (s *Service) promote(ctx context.Context, earning domain.Earning) (bool, error) {
	var applied bool

	err := pg.WithRetry(ctx, s.txManager, func(ctx context.Context) error {
		applied = false

		ok, err := s.earningRepo.MarkAvailable(ctx, earning.ID)
		if err != nil {
			return err
		}
		if !ok {
			// Another sweeper already promoted it.
			return nil
		}

		balance, err := s.ledgerRepo.PromoteToAvailable(ctx, earning.InstructorID, earning.NetAmount)
		if err != nil {
			return err
		}
		if balance == nil {
			return balanceservice.ErrLedgerConflict
		}

		applied = true
		return nil
	})
	if err != nil {
		return false, err
	}

	if applied {
		zap.L().Info("Earning promoted to available",
			zap.Int("earningID", earning.ID),
			zap.Int("instructorID", earning.InstructorID),
			zap.String("net", earning.NetAmount.String()))
	}
	return applied, nil
}
