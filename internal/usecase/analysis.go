package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/example/photoproof/internal/inference"
	"github.com/example/photoproof/internal/logging"
	"github.com/example/photoproof/internal/repository"
	"github.com/example/photoproof/internal/upload"
)

var (
	// ErrTypeNotAllowed is returned for uploads with a disallowed extension.
	ErrTypeNotAllowed = errors.New("file type not allowed")
	// ErrEngineFailed is returned when the inference engine yields no result.
	ErrEngineFailed = errors.New("analysis engine failed")
)

// ScanRepository defines the persistence operations needed by the use case.
type ScanRepository interface {
	Save(ctx context.Context, record *repository.ScanRecord) error
	ListByAccount(ctx context.Context, accountID uint) ([]*repository.ScanRecord, error)
}

// Storage persists uploaded files and returns their path.
type Storage interface {
	Save(filename string, data []byte) (string, error)
}

// AnalysisResult is the outcome of one image analysis.
type AnalysisResult struct {
	ImagePath  string
	Provider   string
	Verdict    string
	Confidence float64
	Score      string
	Status     string
	Color      string
	Logged     bool
}

// AnalysisUseCase orchestrates validation, storage, inference and
// scan-history logging.
type AnalysisUseCase struct {
	scans       ScanRepository
	storage     Storage
	engine      inference.Engine
	provider    string
	allowedExts []string
	logger      *zap.Logger
}

// NewAnalysisUseCase constructs a new use case instance. The provider name
// is surfaced to clients alongside each result.
func NewAnalysisUseCase(scans ScanRepository, storage Storage, engine inference.Engine, provider string, allowedExts []string, logger *zap.Logger) *AnalysisUseCase {
	return &AnalysisUseCase{
		scans:       scans,
		storage:     storage,
		engine:      engine,
		provider:    provider,
		allowedExts: allowedExts,
		logger:      logger.Named("analysis_usecase"),
	}
}

// Analyze validates and stores the upload, runs inference, and — when an
// actor is present — appends a scan record. actorID zero means anonymous;
// anonymous scans are analyzed but never logged. The record is only
// written after a successful prediction.
func (uc *AnalysisUseCase) Analyze(ctx context.Context, actorID uint, filename string, data []byte) (*AnalysisResult, error) {
	scanID := uuid.NewString()
	opLogger := logging.WithOperation(uc.logger, "usecase.analyze", scanID)

	if !upload.Allowed(filename, uc.allowedExts) {
		return nil, ErrTypeNotAllowed
	}

	path, err := uc.storage.Save(filename, data)
	if err != nil {
		if errors.Is(err, upload.ErrUnusableFilename) {
			return nil, err
		}
		opLogger.Error("failed to store upload", zap.Error(err))
		return nil, err
	}

	prediction, err := uc.engine.Classify(ctx, data)
	if err != nil {
		opLogger.Error("inference failed", zap.Error(err))
		return nil, ErrEngineFailed
	}

	result := &AnalysisResult{
		ImagePath:  path,
		Provider:   uc.provider,
		Verdict:    prediction.Verdict,
		Confidence: prediction.Confidence,
		Score:      fmt.Sprintf("%.2f%% %s", prediction.Confidence, prediction.Verdict),
		Status:     prediction.Status,
		Color:      prediction.Color,
	}

	if actorID != 0 {
		record := &repository.ScanRecord{
			AccountID: actorID,
			ImagePath: path,
			Score:     result.Score,
			Verdict:   result.Verdict,
			CreatedAt: time.Now().UTC(),
		}
		if err := uc.scans.Save(ctx, record); err != nil {
			opLogger.Error("failed to log scan", zap.Error(err), zap.Uint("account_id", actorID))
			return nil, err
		}
		result.Logged = true
	}

	opLogger.Info("analysis completed",
		zap.String("verdict", result.Verdict),
		zap.Float64("confidence", result.Confidence),
		zap.Bool("logged", result.Logged))
	return result, nil
}

// History returns the actor's scan records, newest first.
func (uc *AnalysisUseCase) History(ctx context.Context, actorID uint) ([]*repository.ScanRecord, error) {
	return uc.scans.ListByAccount(ctx, actorID)
}
