package usecase

import (
	"context"
	"errors"

	"market-intel-srv/internal/model"
	"market-intel-srv/internal/report"
	"market-intel-srv/internal/report/repository"
	"market-intel-srv/pkg/paginator"
)

// ListReports returns one page of the execution log, newest run first.
// The owner restriction for non-admin callers is part of the query.
func (uc *implUseCase) ListReports(ctx context.Context, sc model.Scope, input report.ListReportsInput) (report.ListReportsOutput, error) {
	input.Page.Adjust()

	opts := repository.ListReportsOptions{
		ScheduleID: input.ScheduleID,
		Limit:      input.Page.Limit,
		Offset:     input.Page.Offset(),
	}
	if !sc.IsAdmin() {
		opts.UserID = sc.UserID
	}

	rpts, total, err := uc.repo.List(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ListReports: Failed to list reports: %v", err)
		return report.ListReportsOutput{}, err
	}

	return report.ListReportsOutput{
		Reports: toViews(rpts),
		Total:   total,
		Paginator: paginator.Paginator{
			Total:       total,
			Count:       int64(len(rpts)),
			PerPage:     input.Page.Limit,
			CurrentPage: input.Page.Page,
		},
	}, nil
}

// ListBySchedule returns a schedule's full execution history.
func (uc *implUseCase) ListBySchedule(ctx context.Context, sc model.Scope, scheduleID string) (report.ScheduleReportsOutput, error) {
	if scheduleID == "" {
		return report.ScheduleReportsOutput{}, report.ErrScheduleIDMissing
	}

	opts := repository.ListReportsOptions{ScheduleID: scheduleID}
	if !sc.IsAdmin() {
		opts.UserID = sc.UserID
	}

	rpts, total, err := uc.repo.List(ctx, opts)
	if err != nil {
		uc.l.Errorf(ctx, "report.usecase.ListBySchedule: Failed to list executions for %s: %v", scheduleID, err)
		return report.ScheduleReportsOutput{}, err
	}

	return report.ScheduleReportsOutput{
		ScheduleID:      scheduleID,
		TotalExecutions: total,
		Executions:      toViews(rpts),
	}, nil
}

func (uc *implUseCase) GetReport(ctx context.Context, sc model.Scope, executionID string) (report.ReportView, error) {
	rpt, err := uc.getOwned(ctx, sc, executionID)
	if err != nil {
		return report.ReportView{}, err
	}

	return report.NewReportView(*rpt), nil
}

// DeleteReport removes one execution record. Owner or admin only.
func (uc *implUseCase) DeleteReport(ctx context.Context, sc model.Scope, executionID string) error {
	if _, err := uc.getOwned(ctx, sc, executionID); err != nil {
		return err
	}

	if err := uc.repo.Delete(ctx, executionID); err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return report.ErrReportNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.DeleteReport: Failed to delete report %s: %v", executionID, err)
		return err
	}

	return nil
}

// getOwned fetches a record and resolves owner-or-admin access.
func (uc *implUseCase) getOwned(ctx context.Context, sc model.Scope, executionID string) (*model.Report, error) {
	rpt, err := uc.repo.GetByID(ctx, executionID)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, report.ErrReportNotFound
		}
		uc.l.Errorf(ctx, "report.usecase.getOwned: Failed to get report %s: %v", executionID, err)
		return nil, err
	}

	if !sc.IsAdmin() && rpt.UserID != sc.UserID {
		return nil, report.ErrPermissionDenied
	}
	return rpt, nil
}

func toViews(rpts []*model.Report) []report.ReportView {
	views := make([]report.ReportView, 0, len(rpts))
	for _, r := range rpts {
		if r != nil {
			views = append(views, report.NewReportView(*r))
		}
	}
	return views
}
