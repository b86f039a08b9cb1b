package report

import (
	"context"
	"io"
	"time"

	"github.com/pkg/errors"

	"weather-report/internal/models"
	"weather-report/internal/repositories"
	"weather-report/pkg/logger"
)

// Service runs the whole fetch-and-report sequence once per Run.
type Service struct {
	repo  repositories.ArchiveRepository
	coord models.Coordinate
	out   io.Writer
	now   func() time.Time
	l     *logger.Logger
}

type Option func(*Service)

// WithClock replaces the system clock used to pick the date window.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

func NewService(repo repositories.ArchiveRepository, out io.Writer, l *logger.Logger, opts ...Option) *Service {
	s := &Service{
		repo:  repo,
		coord: models.DefaultCoordinate,
		out:   out,
		now:   time.Now,
		l:     l,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run computes the window, fetches it and writes either the report or a diagnostic
// to the output. A failure is returned as a *repositories.FetchError after its
// diagnostic has been written; Run never panics.
func (s *Service) Run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = s.fail(&repositories.FetchError{
				Kind: repositories.KindUnexpected,
				Err:  errors.Errorf("panic: %v", r),
			})
		}
	}()

	dr := TrailingWeek(s.now())

	fields := dr.RequestParams()
	fields["repository"] = s.repoName()
	fields["location"] = s.coord.String()
	s.l.Info("starting weather report", fields)

	series, err := s.repo.FetchDaily(ctx, s.coord, dr)
	if err != nil {
		return s.fail(err)
	}

	if err := WriteReport(s.out, series); err != nil {
		return s.fail(errors.Wrap(err, "write report"))
	}

	s.l.Info("weather report written", map[string]any{
		"rows": series.Len(),
	})

	return nil
}

func (s *Service) fail(err error) error {
	fe := repositories.Classify(err)

	if _, werr := io.WriteString(s.out, Diagnose(fe)); werr != nil {
		s.l.Warning("cannot write diagnostic", map[string]any{"err": werr.Error()})
	}

	fields := map[string]any{
		"repository": s.repoName(),
		"kind":       fe.Kind.String(),
	}
	if fe.Kind == repositories.KindHTTPStatus {
		fields["statusCode"] = fe.StatusCode
	}
	s.l.Error(fe, fields)

	return fe
}

func (s *Service) repoName() string {
	if s.repo == nil {
		return "none"
	}
	return s.repo.Name()
}
