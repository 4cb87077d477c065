package usecase

import (
	"context"
	"fmt"
	"time"

	"market-intel-srv/internal/activity"
	"market-intel-srv/internal/model"
	"market-intel-srv/internal/report"
	"market-intel-srv/internal/report/repository"
	"market-intel-srv/pkg/util"
)

// ProcessReportRun logs one recurring execution.
// Flow: reconcile first-run claim against stored history → persist the
// execution record (fatal on failure) → best-effort schedule bookkeeping
// and activity event.
func (uc *implUseCase) ProcessReportRun(ctx context.Context, input report.ReportRunInput) (report.ReportRunOutput, error) {
	// The caller's is_first_run claim is a hint, not the truth. Stored
	// history wins: a schedule with any persisted execution is already
	// initialized no matter what the payload says.
	alreadyInitialized := false
	count, err := uc.repo.CountBySchedule(ctx, input.ScheduleID)
	if err != nil {
		uc.l.Warnf(ctx, "report.usecase.ProcessReportRun: Failed to check schedule history for %s, assuming uninitialized: %v", input.ScheduleID, err)
	} else {
		alreadyInitialized = count > 0
	}

	if input.IsFirstRun && alreadyInitialized {
		uc.l.Warnf(ctx, "report.usecase.ProcessReportRun: Schedule %s claims first run but has %d executions, continuing as subsequent run", input.ScheduleID, count)
	}
	isFirstRun := input.IsFirstRun && !alreadyInitialized

	if isFirstRun {
		if err := uc.scheduleUC.MarkInitialized(ctx, input.ScheduleID); err != nil {
			uc.l.Warnf(ctx, "report.usecase.ProcessReportRun: Failed to mark schedule %s initialized: %v", input.ScheduleID, err)
		}
	}

	emailReport := input.EmailReport
	if emailReport == "" {
		emailReport = input.FinalReport
	}

	scheduleID := input.ScheduleID
	rpt, err := uc.repo.Create(ctx, repository.CreateReportOptions{
		ExecutionID: newExecutionID(execPrefixRecurring),
		ScheduleID:  &scheduleID,
		UserID:      input.UserID,
		Industry:    input.Industry,
		SubNiche:    input.SubNiche,
		Geography:   input.Geography,
		Email:       input.Email,
		Notes:       input.Notes,
		Frequency:   input.Frequency,
		RunAt:       input.RunAt,
		IsFirstRun:  isFirstRun,
		FinalReport: input.FinalReport,
		EmailReport: emailReport,
		Status:      model.ReportStatusSuccess,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ProcessReportRun: Failed to save execution record: %v", err)
		return report.ReportRunOutput{}, fmt.Errorf("%w: %v", report.ErrSaveExecution, err)
	}

	// The record is the source of truth from here on. Metadata updates
	// and events must never roll it back.
	if err := uc.scheduleUC.RecordExecution(ctx, input.ScheduleID, input.RunAt); err != nil {
		uc.l.Warnf(ctx, "report.usecase.ProcessReportRun: Failed to update schedule metadata for %s: %v", input.ScheduleID, err)
	}

	uc.emitter.Emit(ctx, activity.Event{
		Type:        activity.TypeRunCompleted,
		UserID:      input.UserID,
		Email:       input.Email,
		ExecutionID: rpt.ExecutionID,
		ScheduleID:  input.ScheduleID,
		Frequency:   input.Frequency,
		Status:      rpt.Status,
	})

	return report.ReportRunOutput{
		ExecutionID: rpt.ExecutionID,
		ScheduleID:  input.ScheduleID,
		IsFirstRun:  isFirstRun,
		Message:     "Report run logged",
		Timestamp:   rpt.CreatedAt,
	}, nil
}

// SaveOnDemand persists a one-off report outside any schedule.
func (uc *implUseCase) SaveOnDemand(ctx context.Context, input report.SaveOnDemandInput) (report.SaveOutput, error) {
	if input.UserID == "" || input.Industry == "" || input.SubNiche == "" || input.FinalReport == "" {
		return report.SaveOutput{}, report.ErrMissingFields
	}
	if err := util.IsEmail(input.Email); err != nil {
		return report.SaveOutput{}, report.ErrInvalidEmail
	}

	geography := input.Geography
	if geography == "" {
		geography = "Global"
	}
	emailReport := input.EmailReport
	if emailReport == "" {
		emailReport = input.FinalReport
	}

	now := time.Now()
	rpt, err := uc.repo.Create(ctx, repository.CreateReportOptions{
		ExecutionID: newExecutionID(execPrefixOnDemand),
		UserID:      input.UserID,
		Industry:    input.Industry,
		SubNiche:    input.SubNiche,
		Geography:   geography,
		Email:       input.Email,
		Notes:       input.Notes,
		Frequency:   model.FrequencyOnDemand,
		RunAt:       now,
		FinalReport: input.FinalReport,
		EmailReport: emailReport,
		Status:      model.ReportStatusSuccess,
	})
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.SaveOnDemand: Failed to save report: %v", err)
		return report.SaveOutput{}, fmt.Errorf("%w: %v", report.ErrSaveExecution, err)
	}

	uc.emitter.Emit(ctx, activity.Event{
		Type:        activity.TypeReportSaved,
		UserID:      input.UserID,
		Email:       input.Email,
		ExecutionID: rpt.ExecutionID,
		Frequency:   model.FrequencyOnDemand,
		Status:      rpt.Status,
	})

	return report.SaveOutput{
		ExecutionID: rpt.ExecutionID,
		Timestamp:   rpt.CreatedAt,
	}, nil
}
