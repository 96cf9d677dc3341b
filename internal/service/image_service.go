package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"stock-insight/config"
	"stock-insight/internal/dto"
	"stock-insight/internal/repository"
	"stock-insight/pkg/logger"
	"stock-insight/pkg/utils"
)

const imagePromptTemplate = "%s logo with futuristic city, blue and purple color, neon glow, detailed, high quality. Modern,high tech,soft,bold aesthetic,using dark shades of purple, blue, and black in a gradient"

type ImageService interface {
	GenerateStockImage(ctx context.Context, stockName string) (string, error)
}

type imageService struct {
	cfg             *config.Config
	log             *logger.Logger
	imageRepository repository.ImageRepository
}

func NewImageService(cfg *config.Config, log *logger.Logger, imageRepository repository.ImageRepository) ImageService {
	return &imageService{
		cfg:             cfg,
		log:             log,
		imageRepository: imageRepository,
	}
}

func BuildImagePrompt(stockName string) string {
	return fmt.Sprintf(imagePromptTemplate, stockName)
}

// GenerateStockImage submits a generation job and polls it until the image
// is ready, the poll budget is spent or ctx is cancelled.
func (s *imageService) GenerateStockImage(ctx context.Context, stockName string) (string, error) {
	submitted, err := s.imageRepository.Submit(ctx, dto.ImageGenerationParam{
		Prompt: BuildImagePrompt(stockName),
		Width:  s.cfg.Image.Width,
		Height: s.cfg.Image.Height,
	})
	if err != nil {
		s.logProviderError(ctx, "Error generating image", err)
		return "", err
	}

	if submitted == nil || submitted.ID == "" {
		s.log.ErrorContext(ctx, "No request id received from image provider")
		return "", dto.ErrImageRequestIDMissing
	}

	s.log.InfoContext(ctx, "Image generation started, waiting for the result...", logger.StringField("request_id", submitted.ID))

	pollCtx := ctx
	if s.cfg.Image.PollTimeout > 0 {
		var cancel context.CancelFunc
		pollCtx, cancel = context.WithTimeout(ctx, s.cfg.Image.PollTimeout)
		defer cancel()
	}

	imageURL, err := s.waitForImage(pollCtx, submitted.ID)
	if err != nil {
		s.logProviderError(ctx, "Error fetching generated image", err)
		return "", err
	}
	return imageURL, nil
}

func (s *imageService) waitForImage(ctx context.Context, id string) (string, error) {
	timer := time.NewTimer(s.cfg.Image.PollInterval)
	defer timer.Stop()

	for attempt := 1; attempt <= s.cfg.Image.MaxPollAttempts; attempt++ {
		if !utils.ShouldContinue(ctx, s.log) {
			return "", fmt.Errorf("polling image %s: %w", id, ctx.Err())
		}

		select {
		case <-ctx.Done():
			return "", fmt.Errorf("polling image %s: %w", id, ctx.Err())
		case <-timer.C:
		}

		result, err := s.imageRepository.GetResult(ctx, id)
		if err != nil {
			return "", err
		}
		if result == nil {
			result = &dto.ImageResultResponse{}
		}

		switch {
		case result.Status == dto.ImageStatusReady:
			sample := result.Sample()
			if sample == "" {
				return "", dto.ErrImageURLMissing
			}
			s.log.InfoContext(ctx, "Image ready!", logger.StringField("request_id", id), logger.IntField("attempts", attempt))
			return sample, nil
		case dto.IsTerminalImageFailure(result.Status):
			return "", fmt.Errorf("%w: status %q", dto.ErrImageGenerationFailed, result.Status)
		default:
			s.log.DebugContext(ctx, "Image not ready", logger.StringField("status", result.Status), logger.IntField("attempt", attempt))
		}

		timer.Reset(s.cfg.Image.PollInterval)
	}

	return "", fmt.Errorf("%w: %d attempts", dto.ErrImagePollExhausted, s.cfg.Image.MaxPollAttempts)
}

func (s *imageService) logProviderError(ctx context.Context, msg string, err error) {
	var providerErr *repository.ProviderError
	if errors.As(err, &providerErr) {
		s.log.ErrorContext(ctx, msg,
			logger.IntField("status_code", providerErr.StatusCode),
			logger.StringField("provider_response", providerErr.Body),
			logger.ErrorField(err),
		)
		return
	}
	s.log.ErrorContext(ctx, msg, logger.ErrorField(err))
}
