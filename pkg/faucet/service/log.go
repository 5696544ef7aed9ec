package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	apperrors "github.com/chainsafe/rbt-faucet/pkg/app/errors"
	"github.com/chainsafe/rbt-faucet/pkg/faucet"
)

const serviceName = "FaucetService"

// logService wraps Service with logging of every call
type logService struct {
	svc    Service
	logger *zap.Logger
}

// NewLog creates a logging decorator for the faucet Service.
// It logs method entry/exit, duration and errors. Client errors such as an
// active cooldown are logged at info level.
func NewLog(svc Service, logger *zap.Logger) Service {
	return &logService{
		svc:    svc,
		logger: logger,
	}
}

func (ls *logService) Claim(ctx context.Context, identifier string) (res *faucet.ClaimResult, err error) {
	start := time.Now()

	ls.logger.Debug("Claim started",
		zap.String("service", serviceName),
		zap.String("method", "Claim"),
		zap.String("claimant", identifier),
	)

	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "Claim"),
			zap.String("claimant", identifier),
			zap.Duration("duration", time.Since(start)),
		}
		switch {
		case err == nil:
			ls.logger.Info("Claim completed", append(fields, zap.String("hash", res.Hash))...)
		case apperrors.IsInternalError(err):
			ls.logger.Error("Claim failed", append(fields, zap.Error(err))...)
		default:
			ls.logger.Info("Claim refused", append(fields, zap.Error(err))...)
		}
	}()

	return ls.svc.Claim(ctx, identifier)
}

func (ls *logService) GetCounters(ctx context.Context, faucetID string) (c *faucet.Counters, err error) {
	start := time.Now()
	defer func() {
		if err != nil {
			ls.logger.Warn("GetCounters failed",
				zap.String("service", serviceName),
				zap.String("faucet_id", faucetID),
				zap.Duration("duration", time.Since(start)),
				zap.Error(err),
			)
		}
	}()

	return ls.svc.GetCounters(ctx, faucetID)
}

func (ls *logService) SetCounters(
	ctx context.Context,
	faucetID string,
	tokenLevel, lastTokenNum, totalCount int64,
) (err error) {
	start := time.Now()
	defer func() {
		fields := []zap.Field{
			zap.String("service", serviceName),
			zap.String("method", "SetCounters"),
			zap.String("faucet_id", faucetID),
			zap.Int64("token_level", tokenLevel),
			zap.Int64("last_token_num", lastTokenNum),
			zap.Int64("total_count", totalCount),
			zap.Duration("duration", time.Since(start)),
		}
		if err != nil {
			ls.logger.Error("SetCounters failed", append(fields, zap.Error(err))...)
			return
		}
		ls.logger.Info("Faucet counters overwritten", fields...)
	}()

	return ls.svc.SetCounters(ctx, faucetID, tokenLevel, lastTokenNum, totalCount)
}

func (ls *logService) Quorums(ctx context.Context) ([]string, error) {
	return ls.svc.Quorums(ctx)
}
