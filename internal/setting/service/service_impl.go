package service

import (
	"context"
	"strings"

	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/clock"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/internal/setting/domain"
	"github.com/THUPAKULABP/ganesh-toughened-industry-sub001/pkg/db"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	Clock clock.Clock
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	clock clock.Clock
	repo  domain.Repository
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("setting.service"),
		clock: p.Clock,
		repo:  p.Repo,
	}
}

func (s *Service) Get(ctx context.Context, key string) (string, bool, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return "", false, domain.ErrInvalidKey
	}
	item, err := s.repo.Find(ctx, s.db, key)
	if err != nil {
		return "", false, db.Classify("find_setting", err)
	}
	if item == nil {
		return "", false, nil
	}
	return item.Value, true, nil
}

func (s *Service) Set(ctx context.Context, key, value string) (domain.Setting, error) {
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" || len(key) > 64 || strings.ContainsAny(key, " \t\n") {
		return domain.Setting{}, domain.ErrInvalidKey
	}

	item := domain.Setting{
		Key:       key,
		Value:     strings.TrimSpace(value),
		UpdatedAt: s.clock.Now(),
	}
	if err := s.repo.Upsert(ctx, s.db, &item); err != nil {
		return domain.Setting{}, db.Classify("upsert_setting", err)
	}

	s.log.Info("setting updated", zap.String("key", key))
	return item, nil
}

func (s *Service) All(ctx context.Context) ([]domain.Setting, error) {
	items, err := s.repo.List(ctx, s.db)
	if err != nil {
		return nil, db.Classify("list_settings", err)
	}
	return items, nil
}

func (s *Service) Company(ctx context.Context) (domain.CompanyProfile, error) {
	items, err := s.All(ctx)
	if err != nil {
		return domain.CompanyProfile{}, err
	}
	values := make(map[string]string, len(items))
	for _, item := range items {
		values[item.Key] = item.Value
	}
	return domain.CompanyFromMap(values), nil
}
