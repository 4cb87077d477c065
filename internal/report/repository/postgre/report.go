package postgre

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"market-intel-srv/internal/model"
	"market-intel-srv/internal/report/repository"
)

// Create - Insert a new execution record. Records are write-once.
func (r *implRepository) Create(ctx context.Context, opts repository.CreateReportOptions) (*model.Report, error) {
	rpt := model.Report{
		ExecutionID: opts.ExecutionID,
		ScheduleID:  opts.ScheduleID,
		UserID:      opts.UserID,
		Industry:    opts.Industry,
		SubNiche:    opts.SubNiche,
		Geography:   opts.Geography,
		Email:       opts.Email,
		Notes:       opts.Notes,
		Frequency:   opts.Frequency,
		RunAt:       opts.RunAt,
		IsFirstRun:  opts.IsFirstRun,
		FinalReport: opts.FinalReport,
		EmailReport: opts.EmailReport,
		Status:      opts.Status,
		CreatedAt:   time.Now(),
	}

	if err := r.db.WithContext(ctx).Create(&rpt).Error; err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.Create: Failed to insert report: %v", err)
		return nil, repository.ErrReportCreateFailed
	}

	return &rpt, nil
}

// GetByID - Get execution record by primary key.
func (r *implRepository) GetByID(ctx context.Context, executionID string) (*model.Report, error) {
	var rpt model.Report
	err := r.db.WithContext(ctx).First(&rpt, "execution_id = ?", executionID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrReportNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.GetByID: Failed to get report: %v", err)
		return nil, err
	}

	return &rpt, nil
}

// List - One page of execution records, newest run first, plus the total.
func (r *implRepository) List(ctx context.Context, opts repository.ListReportsOptions) ([]*model.Report, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Report{})
	if opts.UserID != "" {
		q = q.Where("user_id = ?", opts.UserID)
	}
	if opts.ScheduleID != "" {
		q = q.Where("schedule_id = ?", opts.ScheduleID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.List: Failed to count reports: %v", err)
		return nil, 0, err
	}

	q = q.Order("run_at DESC")
	if opts.Limit > 0 {
		q = q.Limit(int(opts.Limit)).Offset(int(opts.Offset))
	}

	var rpts []*model.Report
	if err := q.Find(&rpts).Error; err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.List: Failed to list reports: %v", err)
		return nil, 0, err
	}

	return rpts, total, nil
}

// CountBySchedule - Number of persisted executions for a schedule.
func (r *implRepository) CountBySchedule(ctx context.Context, scheduleID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Report{}).
		Where("schedule_id = ?", scheduleID).
		Count(&count).Error
	if err != nil {
		r.l.Errorf(ctx, "report.repository.postgre.CountBySchedule: Failed to count executions: %v", err)
		return 0, err
	}

	return count, nil
}

// Delete - Hard delete of one execution record.
func (r *implRepository) Delete(ctx context.Context, executionID string) error {
	res := r.db.WithContext(ctx).Delete(&model.Report{}, "execution_id = ?", executionID)
	if res.Error != nil {
		r.l.Errorf(ctx, "report.repository.postgre.Delete: Failed to delete report: %v", res.Error)
		return repository.ErrReportDeleteFailed
	}
	if res.RowsAffected == 0 {
		return repository.ErrReportNotFound
	}

	return nil
}
