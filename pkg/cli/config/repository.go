package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/intellimed/scribe/pkg/domain/interfaces"
	"github.com/intellimed/scribe/pkg/repository/memory"
	"github.com/intellimed/scribe/pkg/utils/logging"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (memory)",
			Value:       "memory",
			Sources:     cli.EnvVars("SCRIBE_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
	}
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

// Configure initializes and returns a repository based on the configured
// backend. Only the in-memory backend exists today; the flag keeps the
// wiring point for a durable backend.
func (r *Repository) Configure() (interfaces.Repository, error) {
	switch r.backend {
	case "memory":
		logging.Default().Info("Using in-memory repository")
		return memory.New(), nil

	default:
		return nil, goerr.New("invalid repository backend", goerr.V("backend", r.backend))
	}
}
