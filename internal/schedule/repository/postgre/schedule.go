package postgre

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"market-intel-srv/internal/model"
	"market-intel-srv/internal/schedule/repository"
)

// Create - Insert a new schedule record.
func (r *implRepository) Create(ctx context.Context, opts repository.CreateScheduleOptions) (*model.Schedule, error) {
	now := time.Now()
	sched := model.Schedule{
		ID:        opts.ID,
		UserID:    opts.UserID,
		Industry:  opts.Industry,
		SubNiche:  opts.SubNiche,
		Geography: opts.Geography,
		Email:     opts.Email,
		Notes:     opts.Notes,
		Frequency: opts.Frequency,
		Active:    true,
		NextRun:   opts.NextRun,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.db.WithContext(ctx).Create(&sched).Error; err != nil {
		r.l.Errorf(ctx, "schedule.repository.postgre.Create: Failed to insert schedule: %v", err)
		return nil, repository.ErrScheduleCreateFailed
	}

	return &sched, nil
}

// GetByID - Get schedule by primary key.
func (r *implRepository) GetByID(ctx context.Context, id string) (*model.Schedule, error) {
	var sched model.Schedule
	err := r.db.WithContext(ctx).First(&sched, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, repository.ErrScheduleNotFound
	}
	if err != nil {
		r.l.Errorf(ctx, "schedule.repository.postgre.GetByID: Failed to get schedule: %v", err)
		return nil, err
	}

	return &sched, nil
}

// List - List schedules with optional owner and active filters.
func (r *implRepository) List(ctx context.Context, opts repository.ListSchedulesOptions) ([]*model.Schedule, error) {
	q := r.db.WithContext(ctx).Model(&model.Schedule{})
	if opts.UserID != "" {
		q = q.Where("user_id = ?", opts.UserID)
	}
	if opts.ActiveOnly {
		q = q.Where("active = ?", true)
	}

	var scheds []*model.Schedule
	if err := q.Order("created_at DESC").Find(&scheds).Error; err != nil {
		r.l.Errorf(ctx, "schedule.repository.postgre.List: Failed to list schedules: %v", err)
		return nil, err
	}

	return scheds, nil
}

// SetActive - Toggle the active flag and return the updated row.
func (r *implRepository) SetActive(ctx context.Context, id string, active bool) (*model.Schedule, error) {
	sched, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	sched.Active = active
	sched.UpdatedAt = time.Now()

	if err := r.db.WithContext(ctx).Model(&model.Schedule{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{"active": sched.Active, "updated_at": sched.UpdatedAt}).Error; err != nil {
		r.l.Errorf(ctx, "schedule.repository.postgre.SetActive: Failed to update schedule: %v", err)
		return nil, repository.ErrScheduleUpdateFailed
	}

	return sched, nil
}

// MarkInitialized - Set the initialized flag. No-op for already-initialized rows.
func (r *implRepository) MarkInitialized(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Model(&model.Schedule{}).
		Where("id = ? AND initialized = ?", id, false).
		Updates(map[string]interface{}{"initialized": true, "updated_at": time.Now()})
	if res.Error != nil {
		r.l.Errorf(ctx, "schedule.repository.postgre.MarkInitialized: Failed to update schedule: %v", res.Error)
		return repository.ErrScheduleUpdateFailed
	}

	return nil
}

// RecordExecution - Bump execution bookkeeping after a successful run.
func (r *implRepository) RecordExecution(ctx context.Context, opts repository.RecordExecutionOptions) error {
	updates := map[string]interface{}{
		"execution_count": gorm.Expr("execution_count + 1"),
		"last_run":        opts.RunAt,
		"updated_at":      time.Now(),
	}
	if opts.NextRun != nil {
		updates["next_run"] = *opts.NextRun
	}

	res := r.db.WithContext(ctx).Model(&model.Schedule{}).
		Where("id = ?", opts.ScheduleID).
		Updates(updates)
	if res.Error != nil {
		r.l.Errorf(ctx, "schedule.repository.postgre.RecordExecution: Failed to update schedule: %v", res.Error)
		return repository.ErrScheduleUpdateFailed
	}
	if res.RowsAffected == 0 {
		return repository.ErrScheduleNotFound
	}

	return nil
}

// Delete - Hard delete. Reports referencing the schedule are untouched.
func (r *implRepository) Delete(ctx context.Context, id string) error {
	res := r.db.WithContext(ctx).Delete(&model.Schedule{}, "id = ?", id)
	if res.Error != nil {
		r.l.Errorf(ctx, "schedule.repository.postgre.Delete: Failed to delete schedule: %v", res.Error)
		return repository.ErrScheduleDeleteFailed
	}
	if res.RowsAffected == 0 {
		return repository.ErrScheduleNotFound
	}

	return nil
}
