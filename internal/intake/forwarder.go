package intake

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/shenikar/dispatch_console/internal/models"
)

const reportPath = "/api/incidents/telegram"

// Poster - часть клиента сервиса диспетчеризации, нужная пересыльщику
type Poster interface {
	PostJSON(ctx context.Context, path string, body, out any) error
}

// Forwarder отправляет обращения в сервис диспетчеризации: две попытки с
// паузой между ними.
type Forwarder struct {
	api      Poster
	logger   *logrus.Logger
	validate *validator.Validate
	now      func() time.Time

	attempts int
	pause    time.Duration
}

func NewForwarder(api Poster, logger *logrus.Logger) *Forwarder {
	return &Forwarder{
		api:      api,
		logger:   logger,
		validate: validator.New(),
		now:      time.Now,
		attempts: 2,
		pause:    time.Second,
	}
}

// Submit проверяет обращение, собирает отчет и пересылает его
func (f *Forwarder) Submit(ctx context.Context, s Submission) (Report, *models.CreateIncidentResult, error) {
	if err := f.validate.Struct(s); err != nil {
		return Report{}, nil, fmt.Errorf("intake: invalid submission: %w", err)
	}
	r := NewReport(s, f.now())
	res, err := f.Forward(ctx, r)
	return r, res, err
}

// Forward пересылает готовый отчет
func (f *Forwarder) Forward(ctx context.Context, r Report) (*models.CreateIncidentResult, error) {
	log := f.logger.WithFields(logrus.Fields{
		"component": "intake",
		"report_id": r.ReportID,
		"type":      r.Type,
	})

	var lastErr error
	for attempt := 1; attempt <= f.attempts; attempt++ {
		var out models.CreateIncidentResult
		err := f.api.PostJSON(ctx, reportPath, r, &out)
		if err == nil {
			log.WithField("incident_id", out.Incident.ID).Info("Report forwarded")
			return &out, nil
		}
		lastErr = err
		log.WithError(err).Warnf("Forward attempt %d failed", attempt)

		if attempt == f.attempts {
			break
		}
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(f.pause):
		}
	}

	log.WithError(lastErr).Error("Failed to forward report")
	return nil, fmt.Errorf("intake: forward report %s: %w", r.ReportID, lastErr)
}
