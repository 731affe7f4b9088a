package job

import (
	"context"
	"time"

	"github.com/xxxsen/common/logutil"
	"go.uber.org/zap"

	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/repo"
)

// ReportCleanupJob drops analysis history older than the retention
// window.
type ReportCleanupJob struct {
	repo          *repo.ReportRepo
	retentionDays int
}

func NewReportCleanupJob(repo *repo.ReportRepo, retentionDays int) *ReportCleanupJob {
	return &ReportCleanupJob{repo: repo, retentionDays: retentionDays}
}

func (j *ReportCleanupJob) Name() string {
	return "report_cleanup"
}

func (j *ReportCleanupJob) Run(ctx context.Context) error {
	if j.repo == nil {
		return nil
	}
	retentionDays := j.retentionDays
	if retentionDays <= 0 {
		retentionDays = 90
	}
	cutoff := time.Now().Add(-time.Duration(retentionDays) * 24 * time.Hour).UnixMilli()
	deleted, err := j.repo.DeleteBefore(ctx, cutoff)
	if err != nil {
		return err
	}
	if deleted > 0 {
		logutil.GetLogger(ctx).Info("expired reports removed", zap.Int64("count", deleted))
	}
	return nil
}
