// Package service implements input validation and orchestration between
// HTTP handlers and the entity store.
package service

import (
	"context"
	"errors"
	"strings"

	"github.com/go-logr/logr"

	"github.com/Shivanand-hulikatti/campus-events/internal/metrics"
	"github.com/Shivanand-hulikatti/campus-events/internal/model"
	"github.com/Shivanand-hulikatti/campus-events/internal/repository"
)

// ErrValidation is returned when a request is missing or has malformed fields.
var ErrValidation = errors.New("validation failed")

// maxSeatsLimit caps event capacity.
const maxSeatsLimit = 100_000

// CampusService orchestrates student, event and service-request operations.
type CampusService struct {
	store   *repository.Store
	log     logr.Logger
	metrics *metrics.Metrics
}

// NewCampusService constructs a CampusService. m may be nil.
func NewCampusService(store *repository.Store, log logr.Logger, m *metrics.Metrics) *CampusService {
	return &CampusService{store: store, log: log, metrics: m}
}

// Stats returns collection sizes.
func (s *CampusService) Stats(_ context.Context) model.Stats {
	return s.store.Stats()
}

// logger prefers the request-scoped logger carried by ctx.
func (s *CampusService) logger(ctx context.Context) logr.Logger {
	if l, err := logr.FromContext(ctx); err == nil {
		return l
	}
	return s.log
}

func blank(v string) bool {
	return strings.TrimSpace(v) == ""
}
