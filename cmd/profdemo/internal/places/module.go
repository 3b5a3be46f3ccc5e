package places

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/kroma-labs/sentinel-profiler/provider/profiled"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

// Module provides the Store and its Handler.
var Module = fx.Module("places",
	fx.Provide(
		func(db *sqlx.DB, svc *profiled.Services) (*Store, error) {
			return NewStore(context.Background(), db, svc)
		},
		func(s *Store) Service { return s },
		func(svc Service, logger zerolog.Logger) *Handler {
			return NewHandler(svc, logger.With().Str("component", "places").Logger())
		},
	),
)
