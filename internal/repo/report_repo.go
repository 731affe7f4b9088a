package repo

import (
	"context"
	"database/sql"

	"github.com/didi/gendry/builder"
	"github.com/jmoiron/sqlx"

	"github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/model"
	appErr "github.com/folajin/Content-Authenticator-Humanizer--Developed-by-AyoFolajin/internal/pkg/errors"
)

var reportColumns = []string{"id", "mode", "options", "input_chars", "score", "result", "ctime"}

type ReportRepo struct {
	db *sql.DB
}

func NewReportRepo(db *sql.DB) *ReportRepo {
	return &ReportRepo{db: db}
}

func (r *ReportRepo) Create(ctx context.Context, report *model.Report) error {
	data := map[string]interface{}{
		"id":          report.ID,
		"mode":        report.Mode,
		"options":     report.Options,
		"input_chars": report.InputChars,
		"score":       report.Score,
		"result":      report.Result,
		"ctime":       report.Ctime,
	}
	sqlStr, args, err := builder.BuildInsert("reports", []map[string]interface{}{data})
	if err != nil {
		return err
	}
	sqlStr = sqlx.Rebind(sqlx.DOLLAR, sqlStr)
	_, err = r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *ReportRepo) Get(ctx context.Context, id string) (*model.Report, error) {
	where := map[string]interface{}{
		"id": id,
	}
	sqlStr, args, err := builder.BuildSelect("reports", where, reportColumns)
	if err != nil {
		return nil, err
	}
	sqlStr = sqlx.Rebind(sqlx.DOLLAR, sqlStr)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	if !rows.Next() {
		return nil, appErr.ErrNotFound
	}
	report, err := scanReport(rows)
	if err != nil {
		return nil, err
	}
	return report, rows.Err()
}

// List returns the newest reports first, optionally filtered to a set of
// modes.
func (r *ReportRepo) List(ctx context.Context, modes []string, limit int) ([]*model.Report, error) {
	where := map[string]interface{}{
		"_orderby": "ctime desc",
		"_limit":   []uint{uint(limit)},
	}
	if len(modes) > 0 {
		where["mode in"] = modes
	}
	sqlStr, args, err := builder.BuildSelect("reports", where, reportColumns)
	if err != nil {
		return nil, err
	}
	sqlStr = sqlx.Rebind(sqlx.DOLLAR, sqlStr)
	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var reports []*model.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

func (r *ReportRepo) ListByIDs(ctx context.Context, ids []string) ([]*model.Report, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	query := `SELECT id, mode, options, input_chars, score, result, ctime FROM reports WHERE id IN (?)`
	query, args, err := sqlx.In(query, ids)
	if err != nil {
		return nil, err
	}
	query = sqlx.Rebind(sqlx.DOLLAR, query)
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var reports []*model.Report
	for rows.Next() {
		report, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}
	return reports, rows.Err()
}

func (r *ReportRepo) Delete(ctx context.Context, id string) error {
	const query = `DELETE FROM reports WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return appErr.ErrNotFound
	}
	return nil
}

// DeleteBefore removes all reports created before cutoff and reports how
// many were dropped.
func (r *ReportRepo) DeleteBefore(ctx context.Context, cutoff int64) (int64, error) {
	const query = `DELETE FROM reports WHERE ctime < $1`
	res, err := r.db.ExecContext(ctx, query, cutoff)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func scanReport(rows *sql.Rows) (*model.Report, error) {
	var report model.Report
	if err := rows.Scan(&report.ID, &report.Mode, &report.Options, &report.InputChars, &report.Score, &report.Result, &report.Ctime); err != nil {
		return nil, err
	}
	return &report, nil
}
