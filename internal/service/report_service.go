package service

import (
	"context"

	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/model"
	appErr "github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/pkg/errors"
	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/repo"
)

const maxReportPageSize = 100

type ReportService struct {
	reports *repo.ReportRepo
}

func NewReportService(reports *repo.ReportRepo) *ReportService {
	return &ReportService{reports: reports}
}

func (s *ReportService) List(ctx context.Context, modes []string, limit int) ([]*model.Report, error) {
	if s.reports == nil {
		return nil, appErr.ErrNotFound
	}
	if limit <= 0 || limit > maxReportPageSize {
		limit = maxReportPageSize
	}
	return s.reports.List(ctx, modes, limit)
}

func (s *ReportService) Get(ctx context.Context, id string) (*model.Report, error) {
	if s.reports == nil {
		return nil, appErr.ErrNotFound
	}
	if id == "" {
		return nil, appErr.ErrInvalid
	}
	return s.reports.Get(ctx, id)
}

func (s *ReportService) Delete(ctx context.Context, id string) error {
	if s.reports == nil {
		return appErr.ErrNotFound
	}
	if id == "" {
		return appErr.ErrInvalid
	}
	return s.reports.Delete(ctx, id)
}
