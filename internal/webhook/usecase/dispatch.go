package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"market-intel-srv/internal/activity"
	"market-intel-srv/internal/model"
	"market-intel-srv/internal/report"
	"market-intel-srv/internal/schedule"
	"market-intel-srv/internal/webhook"
)

// endpointResult is one endpoint's outcome in the fan-out.
type endpointResult struct {
	name        string
	statusCode  int
	report      string
	emailReport string
	err         error
}

// Dispatch fans a research request out to every active endpoint of the
// requested type. All endpoints are waited for before reconciling; a
// failing endpoint never aborts the others. The first usable response in
// registration order wins and is handed to the report service.
func (uc *implUseCase) Dispatch(ctx context.Context, sc model.Scope, input webhook.DispatchInput) (webhook.DispatchOutput, error) {
	researchType := strings.ToLower(strings.TrimSpace(input.ResearchType))
	if !model.IsValidWebhookType(researchType) {
		return webhook.DispatchOutput{}, webhook.ErrInvalidResearchType
	}

	frequency := strings.ToLower(strings.TrimSpace(input.Frequency))
	if researchType == model.WebhookTypeRecurring {
		if frequency == "" || frequency == model.FrequencyOnDemand || !model.IsValidFrequency(frequency) {
			return webhook.DispatchOutput{}, webhook.ErrFrequencyRequired
		}
	}

	// Reports go to the address given on the form, not necessarily the
	// login email.
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" {
		input.Email = sc.Email
	}

	endpoints, err := uc.loadActiveConfigs(ctx, researchType)
	if err != nil {
		uc.l.Errorf(ctx, "webhook.usecase.Dispatch: Failed to load webhook configs: %v", err)
		return webhook.DispatchOutput{}, err
	}
	if len(endpoints) == 0 {
		uc.l.Warnf(ctx, "webhook.usecase.Dispatch: No active %s webhooks configured", researchType)
		return webhook.DispatchOutput{}, webhook.ErrNoActiveWebhooks
	}

	submittedAt := time.Now()

	// The schedule is created before anything is dispatched or saved:
	// its existence must not depend on the report save outcome.
	var scheduleID string
	if researchType == model.WebhookTypeRecurring {
		sched, err := uc.scheduleUC.Create(ctx, schedule.CreateInput{
			UserID:    sc.UserID,
			Industry:  input.Industry,
			SubNiche:  input.SubNiche,
			Geography: input.Geography,
			Email:     input.Email,
			Notes:     input.Notes,
			Frequency: frequency,
			RunAt:     submittedAt,
		})
		if err != nil {
			uc.l.Errorf(ctx, "webhook.usecase.Dispatch: Failed to create schedule: %v", err)
			return webhook.DispatchOutput{}, err
		}
		scheduleID = sched.ID
	}

	results := uc.fanOut(ctx, sc, input, endpoints, researchType, frequency, scheduleID, submittedAt)

	uc.emitter.Emit(ctx, activity.Event{
		Type:       activity.TypeRunStarted,
		UserID:     sc.UserID,
		Email:      sc.Email,
		ScheduleID: scheduleID,
		Frequency:  frequency,
		Detail:     researchType,
	})

	winner, ok := reconcile(results)
	if !ok {
		uc.l.Errorf(ctx, "webhook.usecase.Dispatch: All %d webhook(s) failed for %s research", len(endpoints), researchType)
		return webhook.DispatchOutput{}, webhook.ErrAllWebhooksFailed
	}

	return uc.persist(ctx, sc, input, winner, researchType, frequency, scheduleID, submittedAt)
}

// fanOut posts the augmented payload to every endpoint concurrently and
// waits for all of them. Results keep registration order.
func (uc *implUseCase) fanOut(
	ctx context.Context,
	sc model.Scope,
	input webhook.DispatchInput,
	endpoints []*model.Webhook,
	researchType, frequency, scheduleID string,
	submittedAt time.Time,
) []endpointResult {
	results := make([]endpointResult, len(endpoints))

	var wg sync.WaitGroup
	for i, ep := range endpoints {
		wg.Add(1)
		go func(i int, ep *model.Webhook) {
			defer wg.Done()

			payload := map[string]any{
				"industry":     input.Industry,
				"subNiche":     input.SubNiche,
				"geography":    input.Geography,
				"notes":        input.Notes,
				"email":        input.Email,
				"userId":       sc.UserID,
				"userEmail":    sc.Email,
				"submittedAt":  submittedAt.Format(time.RFC3339),
				"webhookName":  ep.Name,
				"researchType": researchType,
			}
			if researchType == model.WebhookTypeRecurring {
				payload["frequency"] = frequency
				payload["scheduleId"] = scheduleID
				payload["isInitialRun"] = true
			}

			body, status, err := uc.client.Post(ctx, ep.URL, payload, nil)
			res := endpointResult{name: ep.Name, statusCode: status, err: err}
			if err == nil && status >= 200 && status < 300 {
				rep := extractReports(body)
				res.report = rep.web
				res.emailReport = rep.email
			}
			if err != nil {
				uc.l.Warnf(ctx, "webhook.usecase.fanOut: Webhook %s failed: %v", ep.Name, err)
			} else if res.report == "" {
				uc.l.Warnf(ctx, "webhook.usecase.fanOut: Webhook %s returned no usable report (status %d)", ep.Name, status)
			}
			results[i] = res
		}(i, ep)
	}
	wg.Wait()

	return results
}

// reconcile picks the first endpoint that produced a non-empty report
// over a 2xx response.
func reconcile(results []endpointResult) (endpointResult, bool) {
	for _, res := range results {
		if res.err == nil && res.statusCode >= 200 && res.statusCode < 300 && res.report != "" {
			return res, true
		}
	}
	return endpointResult{}, false
}

// persist hands the winning report to the report service. A failure here
// is ErrReportNotSaved: the content was generated, only the write failed.
func (uc *implUseCase) persist(
	ctx context.Context,
	sc model.Scope,
	input webhook.DispatchInput,
	winner endpointResult,
	researchType, frequency, scheduleID string,
	submittedAt time.Time,
) (webhook.DispatchOutput, error) {
	out := webhook.DispatchOutput{
		ScheduleID:  scheduleID,
		WebhookName: winner.name,
		Report:      winner.report,
		Message:     "Research completed",
		Timestamp:   submittedAt,
	}

	if researchType == model.WebhookTypeOnDemand {
		saved, err := uc.reportUC.SaveOnDemand(ctx, report.SaveOnDemandInput{
			UserID:      sc.UserID,
			Industry:    input.Industry,
			SubNiche:    input.SubNiche,
			Geography:   input.Geography,
			Email:       input.Email,
			Notes:       input.Notes,
			FinalReport: winner.report,
			EmailReport: winner.emailReport,
		})
		if err != nil {
			uc.l.Errorf(ctx, "webhook.usecase.persist: Failed to save on-demand report: %v", err)
			return webhook.DispatchOutput{}, fmt.Errorf("%w: %v", webhook.ErrReportNotSaved, err)
		}
		out.ExecutionID = saved.ExecutionID
		return out, nil
	}

	run, err := uc.reportUC.ProcessReportRun(ctx, report.ReportRunInput{
		UserID:      sc.UserID,
		ScheduleID:  scheduleID,
		Industry:    input.Industry,
		SubNiche:    input.SubNiche,
		Geography:   input.Geography,
		Email:       input.Email,
		Notes:       input.Notes,
		Frequency:   frequency,
		RunAt:       submittedAt,
		IsFirstRun:  true,
		FinalReport: winner.report,
		EmailReport: winner.emailReport,
	})
	if err != nil {
		uc.l.Errorf(ctx, "webhook.usecase.persist: Failed to save recurring report: %v", err)
		return webhook.DispatchOutput{}, fmt.Errorf("%w: %v", webhook.ErrReportNotSaved, err)
	}
	out.ExecutionID = run.ExecutionID
	return out, nil
}
