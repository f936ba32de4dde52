package service

import (
	"context"
	"encoding/json"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "table-booking-backend/internal/common/errors"
	"table-booking-backend/internal/features/question/models"
	"table-booking-backend/internal/features/question/repository"
	usermodels "table-booking-backend/internal/features/user/models"
)

type fakeRepo struct {
	questions map[int64]*models.Question
	nextID    int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{questions: make(map[int64]*models.Question), nextID: 1}
}

func (f *fakeRepo) Create(_ context.Context, q *models.Question) error {
	q.ID = f.nextID
	f.nextID++
	copied := *q
	f.questions[q.ID] = &copied
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id int64) (*models.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, repository.ErrQuestionNotFound
	}
	copied := *q
	return &copied, nil
}

func (f *fakeRepo) Update(_ context.Context, q *models.Question) error {
	if _, ok := f.questions[q.ID]; !ok {
		return repository.ErrQuestionNotFound
	}
	copied := *q
	f.questions[q.ID] = &copied
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id int64) error {
	if _, ok := f.questions[id]; !ok {
		return repository.ErrQuestionNotFound
	}
	delete(f.questions, id)
	return nil
}

func (f *fakeRepo) List(_ context.Context) ([]*models.Question, error) {
	out := make([]*models.Question, 0, len(f.questions))
	for _, q := range f.questions {
		copied := *q
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeCache struct {
	data map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{data: make(map[string][]byte)}
}

func (f *fakeCache) GetOrSet(_ context.Context, key string, dest interface{}, _ time.Duration, setter func() (interface{}, error)) error {
	if raw, ok := f.data[key]; ok {
		return json.Unmarshal(raw, dest)
	}
	value, err := setter()
	if err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return json.Unmarshal(raw, dest)
}

func (f *fakeCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.data[key] = raw
	return nil
}

func (f *fakeCache) Delete(_ context.Context, key string) error {
	delete(f.data, key)
	return nil
}

func newService() (QuestionService, *fakeRepo, *fakeCache) {
	repo := newFakeRepo()
	cache := newFakeCache()
	return NewQuestionService(repo, cache, zap.NewNop()), repo, cache
}

func staff() *usermodels.User {
	return &usermodels.User{ID: 1, IsStaff: true}
}

func visitor() *usermodels.User {
	return &usermodels.User{ID: 2}
}

func TestCreateByVisitorPendsModeration(t *testing.T) {
	svc, repo, _ := newService()

	answer := "заготовленный ответ"
	result, err := svc.Create(context.Background(), visitor(), &models.QuestionCreateRequest{
		Name:   "Ivan",
		Text:   "Есть ли у вас детское меню?",
		Answer: &answer,
	})
	require.NoError(t, err)

	assert.Equal(t, models.CreateStatusPendingModeration, result.Status)
	assert.False(t, result.Question.Moderated)
	// Укороченная форма: ответ посетителя игнорируется
	assert.Empty(t, result.Question.Answer)

	stored := repo.questions[result.Question.ID]
	assert.False(t, stored.Moderated)
}

func TestCreateAnonymousPendsModeration(t *testing.T) {
	svc, _, _ := newService()

	result, err := svc.Create(context.Background(), nil, &models.QuestionCreateRequest{
		Name: "Гость",
		Text: "До скольки вы работаете по выходным?",
	})
	require.NoError(t, err)
	assert.Equal(t, models.CreateStatusPendingModeration, result.Status)
	assert.False(t, result.Question.Moderated)
}

func TestCreateByStaffPublishes(t *testing.T) {
	svc, _, _ := newService()

	answer := "Да, до 23:00"
	result, err := svc.Create(context.Background(), staff(), &models.QuestionCreateRequest{
		Name:   "Администратор",
		Text:   "Работаете ли вы в праздники?",
		Answer: &answer,
	})
	require.NoError(t, err)

	assert.Equal(t, models.CreateStatusPublished, result.Status)
	assert.True(t, result.Question.Moderated)
	assert.Equal(t, answer, result.Question.Answer)
}

func TestCreateByStaffExplicitModeration(t *testing.T) {
	svc, _, _ := newService()

	moderated := false
	result, err := svc.Create(context.Background(), staff(), &models.QuestionCreateRequest{
		Name:      "Администратор",
		Text:      "Черновик вопроса",
		Moderated: &moderated,
	})
	require.NoError(t, err)
	assert.False(t, result.Question.Moderated)
}

func TestCreateValidation(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Create(context.Background(), visitor(), &models.QuestionCreateRequest{Name: "", Text: "text"})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Create(context.Background(), visitor(), &models.QuestionCreateRequest{Name: "Ivan", Text: "  "})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidation(err))
}

func TestListFiltersUnmoderatedForVisitors(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Create(context.Background(), staff(), &models.QuestionCreateRequest{
		Name: "Администратор", Text: "Опубликованный вопрос",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), visitor(), &models.QuestionCreateRequest{
		Name: "Ivan", Text: "Вопрос на премодерации",
	})
	require.NoError(t, err)

	// Посетитель и аноним видят только опубликованное
	visible, err := svc.List(context.Background(), visitor(), false)
	require.NoError(t, err)
	assert.Len(t, visible, 1)
	assert.True(t, visible[0].Moderated)

	visible, err = svc.List(context.Background(), nil, false)
	require.NoError(t, err)
	assert.Len(t, visible, 1)

	// Персонал видит всё
	all, err := svc.List(context.Background(), staff(), false)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateStaffOnly(t *testing.T) {
	svc, repo, _ := newService()

	result, err := svc.Create(context.Background(), visitor(), &models.QuestionCreateRequest{
		Name: "Ivan", Text: "Вопрос",
	})
	require.NoError(t, err)
	id := result.Question.ID

	_, err = svc.Update(context.Background(), visitor(), id, &models.QuestionUpdateRequest{
		Name: "Ivan", Text: "Вопрос", Answer: "ответ", Moderated: true,
	})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeForbidden, appErr.Code)

	updated, err := svc.Update(context.Background(), staff(), id, &models.QuestionUpdateRequest{
		Name: "Ivan", Text: "Вопрос", Answer: "Да, конечно", Moderated: true,
	})
	require.NoError(t, err)
	assert.True(t, updated.Moderated)
	assert.Equal(t, "Да, конечно", updated.Answer)
	assert.True(t, repo.questions[id].Moderated)
}

func TestDeleteInvalidatesCache(t *testing.T) {
	svc, _, cache := newService()

	result, err := svc.Create(context.Background(), staff(), &models.QuestionCreateRequest{
		Name: "Администратор", Text: "Временный вопрос",
	})
	require.NoError(t, err)

	// Список закэширован после создания
	assert.Contains(t, cache.data, "question_list")

	err = svc.Delete(context.Background(), visitor(), result.Question.ID)
	require.Error(t, err)

	err = svc.Delete(context.Background(), staff(), result.Question.ID)
	require.NoError(t, err)
	assert.NotContains(t, cache.data, "question_list")
}

func TestUpdateUnknownQuestion(t *testing.T) {
	svc, _, _ := newService()

	_, err := svc.Update(context.Background(), staff(), 404, &models.QuestionUpdateRequest{
		Name: "Ivan", Text: "Вопрос", Answer: "", Moderated: true,
	})
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}
