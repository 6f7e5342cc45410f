package catalog

import (
	"context"
	"sort"
	"strconv"

	"github.com/muhammadheryan/e-voting/application/config"
	"github.com/muhammadheryan/e-voting/constant"
	"github.com/muhammadheryan/e-voting/model"
	categoryrepo "github.com/muhammadheryan/e-voting/repository/category"
	nomineerepo "github.com/muhammadheryan/e-voting/repository/nominee"
	voterrepo "github.com/muhammadheryan/e-voting/repository/voter"
	"github.com/muhammadheryan/e-voting/thirdparty/storage"
	"github.com/muhammadheryan/e-voting/utils/errors"
	"github.com/muhammadheryan/e-voting/utils/logger"
	"go.uber.org/zap"
)

var rankClasses = []string{"gold", "silver", "bronze"}

type CatalogApp interface {
	GetCatalog(ctx context.Context) (*model.CatalogResponse, error)
	GetDashboard(ctx context.Context) (*model.DashboardResponse, error)
}

type CatalogAppImpl struct {
	categoryRepo categoryrepo.CategoryRepository
	nomineeRepo  nomineerepo.NomineeRepository
	voterRepo    voterrepo.VoterRepository
	configApp    config.ConfigApp
	images       storage.ImageResolver
}

func NewCatalogApp(categoryRepo categoryrepo.CategoryRepository, nomineeRepo nomineerepo.NomineeRepository, voterRepo voterrepo.VoterRepository, configApp config.ConfigApp, images storage.ImageResolver) CatalogApp {
	return &CatalogAppImpl{
		categoryRepo: categoryRepo,
		nomineeRepo:  nomineeRepo,
		voterRepo:    voterRepo,
		configApp:    configApp,
		images:       images,
	}
}

// GetCatalog returns active categories in display order, each with its active nominees.
func (s *CatalogAppImpl) GetCatalog(ctx context.Context) (*model.CatalogResponse, error) {
	categories, err := s.categoryRepo.ListActive(ctx)
	if err != nil {
		logger.Error("[GetCatalog] err categoryRepo.ListActive", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	nominees, err := s.nomineeRepo.ListActive(ctx)
	if err != nil {
		logger.Error("[GetCatalog] err nomineeRepo.ListActive", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	byCategory := make(map[uint64][]model.NomineeItem, len(categories))
	for _, n := range nominees {
		byCategory[n.CategoryID] = append(byCategory[n.CategoryID], model.NomineeItem{
			ID:         n.ID,
			Name:       n.Name,
			CategoryID: n.CategoryID,
			Bio:        n.Bio,
			ImageURL:   s.images.ImageURL(ctx, n.Image),
			TotalVotes: n.TotalVotes,
			Amount:     n.TotalAmount,
		})
	}

	resp := &model.CatalogResponse{Categories: make([]model.CategoryItem, 0, len(categories))}
	for _, c := range categories {
		items := byCategory[c.ID]
		if items == nil {
			items = []model.NomineeItem{}
		}
		resp.Categories = append(resp.Categories, model.CategoryItem{
			ID:           c.ID,
			Name:         c.Name,
			Description:  c.Description,
			DisplayOrder: c.DisplayOrder,
			Nominees:     items,
		})
	}

	return resp, nil
}

func (s *CatalogAppImpl) GetDashboard(ctx context.Context) (*model.DashboardResponse, error) {
	cfg, err := s.configApp.Get(ctx)
	if err != nil {
		return nil, err
	}

	categories, err := s.categoryRepo.ListActive(ctx)
	if err != nil {
		logger.Error("[GetDashboard] err categoryRepo.ListActive", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	nominees, err := s.nomineeRepo.ListActive(ctx)
	if err != nil {
		logger.Error("[GetDashboard] err nomineeRepo.ListActive", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	voters, err := s.voterRepo.CountWithVotes(ctx)
	if err != nil {
		logger.Error("[GetDashboard] err voterRepo.CountWithVotes", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	resp := &model.DashboardResponse{
		TotalVoters:    voters,
		AvgVoteValue:   "0",
		CurrencySymbol: cfg.CurrencySymbol,
		Leaderboards:   make([]model.Leaderboard, 0, len(categories)),
	}

	byCategory := make(map[uint64][]model.NomineeEntity, len(categories))
	for _, n := range nominees {
		resp.TotalVotes += n.TotalVotes
		resp.TotalRevenue += n.TotalAmount
		byCategory[n.CategoryID] = append(byCategory[n.CategoryID], n)
	}
	if voters > 0 {
		resp.AvgVoteValue = strconv.FormatFloat(resp.TotalRevenue/float64(voters), 'f', 2, 64)
	}

	for _, c := range categories {
		resp.Leaderboards = append(resp.Leaderboards, model.Leaderboard{
			CategoryID:   c.ID,
			CategoryName: c.Name,
			DisplayOrder: c.DisplayOrder,
			Items:        leaderboard(byCategory[c.ID]),
		})
	}

	return resp, nil
}

func leaderboard(nominees []model.NomineeEntity) []model.LeaderboardItem {
	sorted := make([]model.NomineeEntity, len(nominees))
	copy(sorted, nominees)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].TotalVotes > sorted[j].TotalVotes
	})

	items := make([]model.LeaderboardItem, 0, len(sorted))
	for i, n := range sorted {
		item := model.LeaderboardItem{
			Rank:        i + 1,
			NomineeID:   n.ID,
			Name:        n.Name,
			TotalVotes:  n.TotalVotes,
			TotalAmount: n.TotalAmount,
		}
		if i < len(rankClasses) {
			item.RankClass = rankClasses[i]
		}
		items = append(items, item)
	}
	return items
}
