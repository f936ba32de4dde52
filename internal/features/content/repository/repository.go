package repository

import (
	"context"
	"errors"
)

var ErrContentNotFound = errors.New("content entry not found")

type ContentRepository interface {
	GetText(ctx context.Context, title string) (string, error)
	GetImage(ctx context.Context, title string) (string, error)
	GetLink(ctx context.Context, title string) (string, error)
	// ListParameters возвращает все типизированные параметры как пары ключ-значение
	ListParameters(ctx context.Context) (map[string]string, error)
}
