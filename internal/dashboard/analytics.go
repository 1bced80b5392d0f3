package dashboard

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/oceandata/fisherman-cli/pkg/oceanapi"
)

// Count is a record count from one listing endpoint.
type Count struct {
	Records   int    `json:"records"`
	Available bool   `json:"available"`
	Error     string `json:"error,omitempty"`
}

// Analytics is the researcher overview.
type Analytics struct {
	Species Count `json:"species"`
	Vessels Count `json:"vessels"`
}

// Analytics fetches both listings concurrently. A failed listing is marked
// unavailable; it never fails the overview.
func (s *service) Analytics(ctx context.Context, sess oceanapi.Session) *Analytics {
	var out Analytics
	g, gctx := errgroup.WithContext(ctx)

	fetch := func(name string, list func(context.Context, oceanapi.Session) ([]json.RawMessage, error), dst *Count) {
		g.Go(func() error {
			records, err := list(gctx, sess)
			if err != nil {
				zap.L().Warn("analytics listing failed", zap.String("listing", name), zap.Error(err))
				dst.Error = err.Error()
				return nil
			}
			dst.Records = len(records)
			dst.Available = true
			return nil
		})
	}

	fetch("species", s.api.ListSpecies, &out.Species)
	fetch("vessels", s.api.ListVessels, &out.Vessels)

	_ = g.Wait()
	return &out
}
