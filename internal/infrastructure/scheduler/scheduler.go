package scheduler

import (
	"context"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog/log"
)

// Task is a maintenance routine run on a fixed interval.
type Task struct {
	Name string
	Run  func(ctx context.Context) error
}

// StartScheduler registers every task as a singleton duration job so a slow
// run is never overlapped by the next tick.
func StartScheduler(interval time.Duration, tasks ...Task) (gocron.Scheduler, error) {
	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, err
	}

	for _, task := range tasks {
		task := task
		// add a job to the scheduler
		_, err = s.NewJob(
			gocron.DurationJob(
				interval,
			),
			gocron.NewTask(
				func() {
					logger := log.With().Str("job", task.Name).Logger()
					ctx := logger.WithContext(context.Background())
					if err := task.Run(ctx); err != nil {
						logger.Error().Err(err).Str("component", "Scheduler").Msg("")
					}
				},
			),
			gocron.WithName(task.Name),
			gocron.WithSingletonMode(gocron.LimitModeReschedule),
		)
		if err != nil {
			return nil, err
		}
	}

	s.Start()

	return s, nil
}
