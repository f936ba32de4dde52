package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"table-booking-backend/internal/features/content/models"
	"table-booking-backend/internal/features/content/repository"
)

type fakeRepo struct {
	texts     map[string]string
	images    map[string]string
	links     map[string]string
	params    map[string]string
	paramsErr error
	listCalls int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		texts:  make(map[string]string),
		images: make(map[string]string),
		links:  make(map[string]string),
		params: make(map[string]string),
	}
}

func (f *fakeRepo) GetText(_ context.Context, title string) (string, error) {
	if v, ok := f.texts[title]; ok {
		return v, nil
	}
	return "", repository.ErrContentNotFound
}

func (f *fakeRepo) GetImage(_ context.Context, title string) (string, error) {
	if v, ok := f.images[title]; ok {
		return v, nil
	}
	return "", repository.ErrContentNotFound
}

func (f *fakeRepo) GetLink(_ context.Context, title string) (string, error) {
	if v, ok := f.links[title]; ok {
		return v, nil
	}
	return "", repository.ErrContentNotFound
}

func (f *fakeRepo) ListParameters(_ context.Context) (map[string]string, error) {
	f.listCalls++
	if f.paramsErr != nil {
		return nil, f.paramsErr
	}
	return f.params, nil
}

func TestMissingContentFallsBack(t *testing.T) {
	repo := newFakeRepo()
	svc := NewContentService(repo, zap.NewNop())

	assert.Equal(t, "", svc.GetText(context.Background(), "home-about"))
	assert.Equal(t, models.FallbackImage, svc.GetImage(context.Background(), "home-food1"))
	assert.Equal(t, "", svc.GetLink(context.Background(), "telegram"))
}

func TestHomePageCollectsAllKeys(t *testing.T) {
	repo := newFakeRepo()
	repo.texts["home-about"] = "Уютный ресторан в центре города"
	repo.images["home-food1"] = "/media/food1.jpg"
	repo.links["telegram"] = "https://t.me/restaurant"

	svc := NewContentService(repo, zap.NewNop())
	page := svc.HomePage(context.Background())

	assert.Equal(t, "Уютный ресторан в центре города", page.Texts["home-about"])
	assert.Equal(t, "/media/food1.jpg", page.Images["home-food1"])
	assert.Equal(t, "https://t.me/restaurant", page.Links["telegram"])

	// Отсутствующие ключи присутствуют с заглушками
	assert.Contains(t, page.Texts, "home-offer")
	assert.Equal(t, models.FallbackImage, page.Images["home-food2"])
	assert.Contains(t, page.Links, "vkontakte")
}

func TestAboutPageHasNoLinks(t *testing.T) {
	svc := NewContentService(newFakeRepo(), zap.NewNop())
	page := svc.AboutPage(context.Background())

	assert.Empty(t, page.Links)
	assert.Contains(t, page.Texts, "about_us-mission-part")
	assert.Contains(t, page.Images, "about_us-team1")
}

func TestParamsDefaults(t *testing.T) {
	repo := newFakeRepo()
	svc := NewContentService(repo, zap.NewNop())

	params := svc.Params(context.Background())
	assert.Equal(t, models.DefaultConfirmTimedelta, params.ConfirmTimedelta)
	assert.Equal(t, models.DefaultPeriodOfBooking, params.PeriodOfBooking)
	assert.Equal(t, models.DefaultWorkStart, params.WorkStart)
	assert.Equal(t, models.DefaultWorkEnd, params.WorkEnd)
}

func TestParamsLoadedOncePerProcess(t *testing.T) {
	repo := newFakeRepo()
	repo.params["confirm_timedelta"] = "30"
	repo.params["period_of_booking"] = "7"
	repo.params["work_start"] = "10:00"
	repo.params["work_end"] = "22:00"

	svc := NewContentService(repo, zap.NewNop())

	params := svc.Params(context.Background())
	assert.Equal(t, 30, params.ConfirmTimedelta)
	assert.Equal(t, 7, params.PeriodOfBooking)
	assert.Equal(t, "10:00", params.WorkStart)
	assert.Equal(t, "22:00", params.WorkEnd)

	// Повторные обращения не перечитывают базу
	svc.Params(context.Background())
	svc.Params(context.Background())
	assert.Equal(t, 1, repo.listCalls)
}

func TestParamsIgnoreMalformedValues(t *testing.T) {
	repo := newFakeRepo()
	repo.params["confirm_timedelta"] = "soon"
	repo.params["work_start"] = ""

	svc := NewContentService(repo, zap.NewNop())

	params := svc.Params(context.Background())
	assert.Equal(t, models.DefaultConfirmTimedelta, params.ConfirmTimedelta)
	assert.Equal(t, models.DefaultWorkStart, params.WorkStart)
}

func TestReloadPicksUpChanges(t *testing.T) {
	repo := newFakeRepo()
	repo.params["confirm_timedelta"] = "45"

	svc := NewContentService(repo, zap.NewNop())
	assert.Equal(t, 45, svc.Params(context.Background()).ConfirmTimedelta)

	repo.params["confirm_timedelta"] = "60"
	require.NoError(t, svc.Reload(context.Background()))
	assert.Equal(t, 60, svc.Params(context.Background()).ConfirmTimedelta)
}

func TestParamsOnRepoError(t *testing.T) {
	repo := newFakeRepo()
	repo.paramsErr = errors.New("connection refused")

	svc := NewContentService(repo, zap.NewNop())

	// При недоступной базе отдаются значения по умолчанию
	params := svc.Params(context.Background())
	assert.Equal(t, models.DefaultConfirmTimedelta, params.ConfirmTimedelta)

	assert.Error(t, svc.Reload(context.Background()))
}
