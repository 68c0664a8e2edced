package jobs

import (
	"context"
	"time"

	"photoflow/internal/core/application/usecases/commands"
	"photoflow/internal/observability"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

const runTimeout = 10 * time.Minute

// MonthlyOrdersRunner is the recurring order use case.
type MonthlyOrdersRunner interface {
	Handle(ctx context.Context, cmd commands.GenerateMonthlyOrdersCommand) (commands.MonthlyRunSummary, error)
}

// MonthlyOrderJob runs the recurring order generation on a cron schedule.
// A run that is still going when the next one is due causes that one to be
// skipped.
type MonthlyOrderJob struct {
	runner   MonthlyOrdersRunner
	schedule string
	metrics  *observability.Metrics
	logger   *zap.Logger
	cron     *cron.Cron
}

func NewMonthlyOrderJob(
	runner MonthlyOrdersRunner,
	schedule string,
	metrics *observability.Metrics,
	logger *zap.Logger,
) *MonthlyOrderJob {
	logger = observability.Component(logger, "monthly_order_job")
	cronLogger := zapCronLogger{logger: logger.Sugar()}

	return &MonthlyOrderJob{
		runner:   runner,
		schedule: schedule,
		metrics:  metrics,
		logger:   logger,
		cron: cron.New(
			cron.WithLocation(time.UTC),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
	}
}

func (j *MonthlyOrderJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run(context.Background()) }); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("monthly order job started", zap.String("schedule", j.schedule))
	return nil
}

// Stop waits for a running generation to finish.
func (j *MonthlyOrderJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("monthly order job stopped")
}

// Run performs one generation and reports its outcome.
func (j *MonthlyOrderJob) Run(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, runTimeout)
	defer cancel()

	ctx, span := observability.StartSpan(ctx, "jobs.monthly_orders")
	summary, err := j.runner.Handle(ctx, commands.NewGenerateMonthlyOrdersCommand())
	observability.EndSpan(span, err)

	if j.metrics != nil {
		j.metrics.RecordRecurringRun("cron", err, summary.OutcomeCounts(), summary.InvoiceFailures())
	}
	if err != nil {
		j.logger.Error("monthly order run failed", zap.Error(err))
		return
	}

	for _, r := range summary.Results {
		if r.Outcome == commands.OutcomeFailed {
			j.logger.Warn("workspace failed",
				zap.String("workspace_id", r.WorkspaceID.String()),
				zap.String("error", r.Error),
			)
		}
	}
	j.logger.Info("monthly order run finished",
		zap.Int("created", summary.Created),
		zap.Int("skipped", summary.Skipped),
		zap.Int("failed", summary.Failed),
	)
}

type zapCronLogger struct {
	logger *zap.SugaredLogger
}

func (l zapCronLogger) Info(msg string, keysAndValues ...any) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l zapCronLogger) Error(err error, msg string, keysAndValues ...any) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}
