package service

import (
	"context"
	"strconv"
	"sync"

	"go.uber.org/zap"

	"table-booking-backend/internal/features/content/models"
	"table-booking-backend/internal/features/content/repository"
)

// ContentService отдаёт редактируемый контент сайта и типизированные
// параметры. Параметры читаются один раз на процесс и считаются почти
// статичной конфигурацией; изменение в базе требует явного Reload.
type ContentService interface {
	GetText(ctx context.Context, key string) string
	GetImage(ctx context.Context, key string) string
	GetLink(ctx context.Context, key string) string
	Params(ctx context.Context) *models.Parameters
	Reload(ctx context.Context) error
	HomePage(ctx context.Context) *models.PageContent
	AboutPage(ctx context.Context) *models.PageContent
}

// Наборы ключей страниц
var (
	homeTextKeys  = []string{"home-about", "home-offer", "home-adress"}
	homeImageKeys = []string{"home-about-inside1", "home-about-inside2", "home-food1", "home-food2", "home-food3"}
	homeLinkKeys  = []string{"vkontakte", "whatsup", "telegram"}

	aboutTextKeys  = []string{"about_us-mission-part", "about_us-history-part1", "about_us-history-part2", "about_us-command-part1", "about_us-command-part2"}
	aboutImageKeys = []string{"about_us-inside3", "about_us-inside4", "about_us-team1", "about_us-team2", "about_us-team3"}
)

type contentService struct {
	repo   repository.ContentRepository
	logger *zap.Logger

	mu     sync.RWMutex
	params *models.Parameters
}

func NewContentService(repo repository.ContentRepository, logger *zap.Logger) ContentService {
	return &contentService{
		repo:   repo,
		logger: logger,
	}
}

// GetText возвращает текстовый блок либо пустую строку, если ключа нет
func (s *contentService) GetText(ctx context.Context, key string) string {
	body, err := s.repo.GetText(ctx, key)
	if err != nil {
		if err != repository.ErrContentNotFound {
			s.logger.Error("Failed to load content text", zap.String("key", key), zap.Error(err))
		}
		return ""
	}
	return body
}

// GetImage возвращает путь изображения либо заглушку, если ключа нет
func (s *contentService) GetImage(ctx context.Context, key string) string {
	image, err := s.repo.GetImage(ctx, key)
	if err != nil {
		if err != repository.ErrContentNotFound {
			s.logger.Error("Failed to load content image", zap.String("key", key), zap.Error(err))
		}
		return models.FallbackImage
	}
	return image
}

// GetLink возвращает ссылку либо пустую строку, если ключа нет
func (s *contentService) GetLink(ctx context.Context, key string) string {
	link, err := s.repo.GetLink(ctx, key)
	if err != nil {
		if err != repository.ErrContentNotFound {
			s.logger.Error("Failed to load content link", zap.String("key", key), zap.Error(err))
		}
		return ""
	}
	return link
}

// Params возвращает типизированные параметры, загружая их при первом обращении
func (s *contentService) Params(ctx context.Context) *models.Parameters {
	s.mu.RLock()
	params := s.params
	s.mu.RUnlock()

	if params != nil {
		return params
	}

	if err := s.Reload(ctx); err != nil {
		s.logger.Error("Failed to load content parameters, using defaults", zap.Error(err))
		return defaultParameters()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.params
}

// Reload перечитывает параметры из базы
func (s *contentService) Reload(ctx context.Context) error {
	raw, err := s.repo.ListParameters(ctx)
	if err != nil {
		return err
	}

	params := defaultParameters()
	if v, ok := intParam(raw, "confirm_timedelta"); ok {
		params.ConfirmTimedelta = v
	}
	if v, ok := intParam(raw, "period_of_booking"); ok {
		params.PeriodOfBooking = v
	}
	if v, ok := raw["work_start"]; ok && v != "" {
		params.WorkStart = v
	}
	if v, ok := raw["work_end"]; ok && v != "" {
		params.WorkEnd = v
	}

	s.mu.Lock()
	s.params = params
	s.mu.Unlock()

	s.logger.Info("Content parameters loaded",
		zap.Int("confirm_timedelta", params.ConfirmTimedelta),
		zap.Int("period_of_booking", params.PeriodOfBooking),
	)

	return nil
}

// HomePage собирает контент главной страницы
func (s *contentService) HomePage(ctx context.Context) *models.PageContent {
	return s.page(ctx, homeTextKeys, homeImageKeys, homeLinkKeys)
}

// AboutPage собирает контент страницы "о нас"
func (s *contentService) AboutPage(ctx context.Context) *models.PageContent {
	return s.page(ctx, aboutTextKeys, aboutImageKeys, nil)
}

func (s *contentService) page(ctx context.Context, textKeys, imageKeys, linkKeys []string) *models.PageContent {
	page := &models.PageContent{
		Texts:  make(map[string]string, len(textKeys)),
		Images: make(map[string]string, len(imageKeys)),
		Links:  make(map[string]string, len(linkKeys)),
	}

	for _, key := range textKeys {
		page.Texts[key] = s.GetText(ctx, key)
	}
	for _, key := range imageKeys {
		page.Images[key] = s.GetImage(ctx, key)
	}
	for _, key := range linkKeys {
		page.Links[key] = s.GetLink(ctx, key)
	}

	return page
}

func defaultParameters() *models.Parameters {
	return &models.Parameters{
		ConfirmTimedelta: models.DefaultConfirmTimedelta,
		PeriodOfBooking:  models.DefaultPeriodOfBooking,
		WorkStart:        models.DefaultWorkStart,
		WorkEnd:          models.DefaultWorkEnd,
	}
}

func intParam(raw map[string]string, key string) (int, bool) {
	v, ok := raw[key]
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return n, true
}
