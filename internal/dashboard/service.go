// Package dashboard is the view-independent core of the fisherman dashboard.
// The CLI and the HTTP server both drive it; it owns the order of calls for
// each user action and decides which failures are fatal.
package dashboard

import (
	"context"
	"errors"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/oceandata/fisherman-cli/internal/features"
	"github.com/oceandata/fisherman-cli/internal/metrics"
	"github.com/oceandata/fisherman-cli/internal/model"
	"github.com/oceandata/fisherman-cli/internal/zones"
	"github.com/oceandata/fisherman-cli/pkg/oceanapi"
)

// ErrInvalidInput marks input rejected before any network call.
var ErrInvalidInput = eris.New("dashboard: invalid input")

// Service is what a view needs from the dashboard.
type Service interface {
	Login(ctx context.Context, email, password string) (oceanapi.Session, error)
	ReportCatch(ctx context.Context, sess oceanapi.Session, report model.CatchReport) (*CatchOutcome, error)
	Predict(ctx context.Context, sess oceanapi.Session, f model.EnvironmentalFeatures) (*PredictionOutcome, error)
	SubmitEDNA(ctx context.Context, sess oceanapi.Session, sample model.EDNASample) (*model.EDNASample, error)
	Weather(ctx context.Context, lat, lon float64) *WeatherOutcome
	Zones() []zones.Zone
	LocateZone(lat, lon float64) []zones.Match
	Analytics(ctx context.Context, sess oceanapi.Session) *Analytics
}

// WeatherSource supplies readings for the weather panel and the feature
// deriver.
type WeatherSource interface {
	features.TemperatureSource
	Current(ctx context.Context, lat, lon float64) model.WeatherReading
}

// CatchOutcome is the result of a successful catch submission. Prediction is
// nil when the model could not answer; the submission still stands.
type CatchOutcome struct {
	Report      model.CatchReport           `json:"report"`
	Features    model.EnvironmentalFeatures `json:"features"`
	Prediction  *model.PredictionResult     `json:"prediction,omitempty"`
	Insights    *Insights                   `json:"insights,omitempty"`
	Unavailable string                      `json:"prediction_unavailable,omitempty"`
	Zones       []zones.Match               `json:"zones,omitempty"`
	Warnings    []string                    `json:"warnings,omitempty"`
}

// PredictionOutcome is the result of a manual prediction.
type PredictionOutcome struct {
	Features   model.EnvironmentalFeatures `json:"features"`
	Prediction model.PredictionResult      `json:"prediction"`
	Insights   Insights                    `json:"insights"`
}

// WeatherOutcome is the weather panel.
type WeatherOutcome struct {
	Reading    model.WeatherReading `json:"reading"`
	Advisories []string             `json:"advisories"`
}

type service struct {
	api     oceanapi.Client
	weather WeatherSource
	deriver *features.Deriver
	zones   *zones.Set
	metrics *metrics.Metrics
	newID   func() string
}

// Option configures the service.
type Option func(*service)

// WithZones replaces the default zone set.
func WithZones(z *zones.Set) Option {
	return func(s *service) {
		s.zones = z
	}
}

// WithMetrics records outcomes on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *service) {
		s.metrics = m
	}
}

// WithDeriverOptions passes options to the feature deriver.
func WithDeriverOptions(opts ...features.Option) Option {
	return func(s *service) {
		s.deriver = features.NewDeriver(s.weather, opts...)
	}
}

// New creates a dashboard Service.
func New(api oceanapi.Client, weather WeatherSource, opts ...Option) Service {
	s := &service{
		api:     api,
		weather: weather,
		deriver: features.NewDeriver(weather),
		zones:   zones.Default(),
		newID:   newSampleID,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *service) Login(ctx context.Context, email, password string) (oceanapi.Session, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return oceanapi.Session{}, eris.Wrap(ErrInvalidInput, "email and password are required")
	}
	sess, err := s.api.Authenticate(ctx, email, password)
	if err != nil {
		return oceanapi.Session{}, err
	}
	zap.L().Info("logged in", zap.String("email", email))
	return sess, nil
}

// ReportCatch submits the report, then derives features and asks for a
// prediction. Only validation and submission failures are returned as
// errors.
func (s *service) ReportCatch(ctx context.Context, sess oceanapi.Session, report model.CatchReport) (*CatchOutcome, error) {
	if err := report.Validate(); err != nil {
		return nil, invalid(err)
	}

	if err := s.api.SubmitCatchReport(ctx, sess, report); err != nil {
		s.metrics.Submission("catch_report", "error")
		return nil, err
	}
	s.metrics.Submission("catch_report", "ok")

	log := zap.L().With(zap.String("species", report.Species))
	log.Info("catch report submitted")

	out := &CatchOutcome{
		Report:   report,
		Features: s.deriver.Derive(ctx, features.InputFromReport(report)),
		Zones:    s.zones.Locate(report.Latitude, report.Longitude),
	}
	out.Warnings = zoneWarnings(out.Zones)

	pred, err := s.api.RequestPrediction(ctx, sess, out.Features)
	if err != nil {
		// The catch is already recorded; a missing prediction only degrades
		// the result.
		if !errors.Is(err, oceanapi.ErrPredictionUnavailable) {
			log.Warn("prediction failed", zap.Error(err))
		} else {
			log.Info("prediction unavailable", zap.Error(err))
		}
		s.metrics.Prediction("unavailable")
		out.Unavailable = "prediction service unavailable"
		return out, nil
	}

	s.metrics.Prediction(string(pred.Source))
	out.Prediction = pred
	ins := InsightsFor(*pred, out.Features)
	out.Insights = &ins
	return out, nil
}

// Predict runs a prediction on hand-entered features. When the model is
// unavailable the local estimate is returned and labeled as such.
func (s *service) Predict(ctx context.Context, sess oceanapi.Session, f model.EnvironmentalFeatures) (*PredictionOutcome, error) {
	if err := validateFeatures(f); err != nil {
		return nil, invalid(err)
	}
	f = features.Complete(f)

	pred, err := s.api.RequestPrediction(ctx, sess, f)
	if err != nil {
		zap.L().Info("prediction unavailable, using heuristic", zap.Error(err))
		h := Heuristic(f)
		pred = &h
	}
	s.metrics.Prediction(string(pred.Source))

	return &PredictionOutcome{
		Features:   f,
		Prediction: *pred,
		Insights:   InsightsFor(*pred, f),
	}, nil
}

// SubmitEDNA validates and posts a sample, assigning an ID when blank.
func (s *service) SubmitEDNA(ctx context.Context, sess oceanapi.Session, sample model.EDNASample) (*model.EDNASample, error) {
	if err := sample.Validate(); err != nil {
		return nil, invalid(err)
	}
	if strings.TrimSpace(sample.SampleID) == "" {
		sample.SampleID = s.newID()
	}

	if err := s.api.SubmitEDNASample(ctx, sess, sample); err != nil {
		s.metrics.Submission("edna", "error")
		return nil, err
	}
	s.metrics.Submission("edna", "ok")

	zap.L().Info("edna sample submitted", zap.String("sample_id", sample.SampleID))
	return &sample, nil
}

func (s *service) Weather(ctx context.Context, lat, lon float64) *WeatherOutcome {
	r := s.weather.Current(ctx, lat, lon)
	return &WeatherOutcome{Reading: r, Advisories: WeatherAdvisories(r)}
}

func (s *service) Zones() []zones.Zone {
	return s.zones.All()
}

func (s *service) LocateZone(lat, lon float64) []zones.Match {
	return s.zones.Locate(lat, lon)
}

func zoneWarnings(matches []zones.Match) []string {
	var out []string
	for _, m := range matches {
		switch m.Zone.Status {
		case zones.StatusClosed:
			out = append(out, m.Zone.Name+" is closed to fishing")
		case zones.StatusSeasonal:
			out = append(out, m.Zone.Name+" is under a seasonal closure; check local advisories")
		}
	}
	return out
}

func validateFeatures(f model.EnvironmentalFeatures) error {
	if err := model.ValidateCoordinates(f.Latitude, f.Longitude); err != nil {
		return err
	}
	if math.IsNaN(f.MeanSST) || math.IsInf(f.MeanSST, 0) {
		return eris.Errorf("mean sst must be a finite number, got %v", f.MeanSST)
	}
	if !(f.BiodiversityIndex >= 0 && f.BiodiversityIndex <= 1) {
		return eris.Errorf("biodiversity index must be within [0,1], got %v", f.BiodiversityIndex)
	}
	if !(f.GeneticDiversity >= 0 && f.GeneticDiversity <= 1) {
		return eris.Errorf("genetic diversity must be within [0,1], got %v", f.GeneticDiversity)
	}
	if f.SpeciesRichness < 0 {
		return eris.Errorf("species richness must be >= 0, got %d", f.SpeciesRichness)
	}
	return nil
}

func invalid(err error) error {
	return &invalidError{cause: err}
}

type invalidError struct {
	cause error
}

func (e *invalidError) Error() string { return e.cause.Error() }

func (e *invalidError) Unwrap() []error { return []error{ErrInvalidInput, e.cause} }

func newSampleID() string {
	return "EDNA-" + strings.ToUpper(uuid.NewString()[:8])
}
