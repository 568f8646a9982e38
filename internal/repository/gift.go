package repository

import (
	"context"
	"fmt"

	"github.com/projeto-evento/evento-api/internal/domain"
	"github.com/projeto-evento/evento-api/internal/repository/dao"
)

var ErrGiftNotFound = dao.ErrGiftNotFound

type GiftDAO interface {
	Insert(ctx context.Context, gift dao.Gift) (dao.Gift, error)
	FindByID(ctx context.Context, id uint) (dao.Gift, error)
	FindAll(ctx context.Context) ([]dao.Gift, error)
}

type GiftRepository struct {
	dao GiftDAO
}

func NewGiftRepository(dao GiftDAO) *GiftRepository {
	return &GiftRepository{
		dao: dao,
	}
}

func (r *GiftRepository) Create(ctx context.Context, gift domain.Gift) (domain.Gift, error) {
	created, err := r.dao.Insert(ctx, dao.Gift{
		Name:     gift.Name,
		Quantity: gift.Quantity,
	})
	if err != nil {
		return domain.Gift{}, fmt.Errorf("r.dao.Insert -> %w", err)
	}

	return giftDaoToDomain(created), nil
}

func (r *GiftRepository) FindByID(ctx context.Context, id uint) (domain.Gift, error) {
	found, err := r.dao.FindByID(ctx, id)
	if err != nil {
		return domain.Gift{}, fmt.Errorf("r.dao.FindByID -> %w", err)
	}

	return giftDaoToDomain(found), nil
}

func (r *GiftRepository) FindAll(ctx context.Context) ([]domain.Gift, error) {
	found, err := r.dao.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("r.dao.FindAll -> %w", err)
	}

	gifts := make([]domain.Gift, len(found))
	for i, g := range found {
		gifts[i] = giftDaoToDomain(g)
	}

	return gifts, nil
}

func giftDaoToDomain(g dao.Gift) domain.Gift {
	return domain.Gift{
		ID:        g.ID,
		Name:      g.Name,
		Quantity:  g.Quantity,
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}
