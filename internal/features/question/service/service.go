package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"table-booking-backend/internal/common/cache"
	apperrors "table-booking-backend/internal/common/errors"
	"table-booking-backend/internal/common/permissions"
	"table-booking-backend/internal/common/validation"
	"table-booking-backend/internal/features/question/models"
	"table-booking-backend/internal/features/question/repository"
	usermodels "table-booking-backend/internal/features/user/models"
)

type QuestionService interface {
	// List возвращает вопросы для показа; немодерированные видны только персоналу
	List(ctx context.Context, actor *usermodels.User, recache bool) ([]*models.Question, error)
	Create(ctx context.Context, actor *usermodels.User, req *models.QuestionCreateRequest) (*models.QuestionCreateResponse, error)
	Update(ctx context.Context, actor *usermodels.User, id int64, req *models.QuestionUpdateRequest) (*models.Question, error)
	Delete(ctx context.Context, actor *usermodels.User, id int64) error
}

// listCache покрывает используемую часть кэш-сервиса
type listCache interface {
	GetOrSet(ctx context.Context, key string, dest interface{}, ttl time.Duration, setter func() (interface{}, error)) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}

const (
	cacheKey = cache.KeyQuestionList
	cacheTTL = cache.DefaultListTTL
)

type questionService struct {
	repo   repository.QuestionRepository
	cache  listCache
	logger *zap.Logger
}

func NewQuestionService(repo repository.QuestionRepository, cache listCache, logger *zap.Logger) QuestionService {
	return &questionService{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// List возвращает кэшированный список вопросов. Для обычных посетителей
// немодерированные записи отфильтровываются на каждый запрос.
func (s *questionService) List(ctx context.Context, actor *usermodels.User, recache bool) ([]*models.Question, error) {
	all, err := s.cachedList(ctx, recache)
	if err != nil {
		return nil, err
	}

	if actor != nil && actor.CanManageQuestions() {
		return all, nil
	}

	visible := make([]*models.Question, 0, len(all))
	for _, q := range all {
		if q.Moderated {
			visible = append(visible, q)
		}
	}
	return visible, nil
}

// Create сохраняет вопрос. Персонал пользуется полной формой и публикует
// сразу; у остальных форма укорочена, вопрос уходит на премодерацию.
func (s *questionService) Create(ctx context.Context, actor *usermodels.User, req *models.QuestionCreateRequest) (*models.QuestionCreateResponse, error) {
	if err := validation.ValidateName(req.Name); err != nil {
		return nil, apperrors.NewValidationError("name", err.Error())
	}
	if err := validation.ValidateQuestionText(req.Text); err != nil {
		return nil, apperrors.NewValidationError("text", err.Error())
	}

	privileged := actor != nil && actor.CanManageQuestions()

	question := &models.Question{
		Name: req.Name,
		Text: req.Text,
	}

	if privileged {
		if req.Answer != nil {
			if err := validation.ValidateAnswerText(*req.Answer); err != nil {
				return nil, apperrors.NewValidationError("answer", err.Error())
			}
			question.Answer = *req.Answer
		}
		question.Moderated = true
		if req.Moderated != nil {
			question.Moderated = *req.Moderated
		}
	}

	if err := s.repo.Create(ctx, question); err != nil {
		return nil, apperrors.NewDatabaseError("create question", err)
	}

	s.recache(ctx)

	status := models.CreateStatusPendingModeration
	if privileged {
		status = models.CreateStatusPublished
	}

	s.logger.Info("Question created",
		zap.Int64("question_id", question.ID),
		zap.String("status", status),
	)

	return &models.QuestionCreateResponse{Question: question, Status: status}, nil
}

// Update редактирует вопрос, доступно только персоналу
func (s *questionService) Update(ctx context.Context, actor *usermodels.User, id int64, req *models.QuestionUpdateRequest) (*models.Question, error) {
	question, err := s.getQuestion(ctx, id)
	if err != nil {
		return nil, err
	}

	if !permissions.Can(actor, permissions.ActionUpdate, question) {
		return nil, apperrors.NewForbiddenError("only staff can edit questions")
	}

	if err := validation.ValidateName(req.Name); err != nil {
		return nil, apperrors.NewValidationError("name", err.Error())
	}
	if err := validation.ValidateQuestionText(req.Text); err != nil {
		return nil, apperrors.NewValidationError("text", err.Error())
	}
	if err := validation.ValidateAnswerText(req.Answer); err != nil {
		return nil, apperrors.NewValidationError("answer", err.Error())
	}

	question.Name = req.Name
	question.Text = req.Text
	question.Answer = req.Answer
	question.Moderated = req.Moderated

	if err := s.repo.Update(ctx, question); err != nil {
		return nil, apperrors.NewDatabaseError("update question", err)
	}

	s.recache(ctx)
	return question, nil
}

// Delete удаляет вопрос, доступно только персоналу
func (s *questionService) Delete(ctx context.Context, actor *usermodels.User, id int64) error {
	question, err := s.getQuestion(ctx, id)
	if err != nil {
		return err
	}

	if !permissions.Can(actor, permissions.ActionDelete, question) {
		return apperrors.NewForbiddenError("only staff can delete questions")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return apperrors.NewDatabaseError("delete question", err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *questionService) getQuestion(ctx context.Context, id int64) (*models.Question, error) {
	question, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if err == repository.ErrQuestionNotFound {
			return nil, apperrors.NewQuestionNotFoundError(id)
		}
		return nil, apperrors.NewDatabaseError("get question", err)
	}
	return question, nil
}

func (s *questionService) cachedList(ctx context.Context, recache bool) ([]*models.Question, error) {
	if recache {
		questions, err := s.repo.List(ctx)
		if err != nil {
			return nil, apperrors.NewDatabaseError("list questions", err)
		}
		if err := s.cache.Set(ctx, cacheKey, questions, cacheTTL); err != nil {
			s.logger.Warn("Failed to recache question list", zap.Error(err))
		}
		return questions, nil
	}

	var questions []*models.Question
	err := s.cache.GetOrSet(ctx, cacheKey, &questions, cacheTTL, func() (interface{}, error) {
		return s.repo.List(ctx)
	})
	if err != nil {
		return nil, apperrors.NewCacheError("get question list", err)
	}

	return questions, nil
}

func (s *questionService) recache(ctx context.Context) {
	if _, err := s.cachedList(ctx, true); err != nil {
		s.logger.Warn("Failed to refresh question list cache", zap.Error(err))
	}
}

func (s *questionService) invalidate(ctx context.Context) {
	if err := s.cache.Delete(ctx, cacheKey); err != nil {
		s.logger.Warn("Failed to invalidate question list cache", zap.Error(err))
	}
}
