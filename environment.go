package fiaaslog

import "github.com/finn-no/fiaas-logging-go/errs"

// Environment identifies where the process is deployed and therefore which
// record format it emits.
type Environment string

const (
	// EnvLocal marks a developer workstation; records render human-readable.
	EnvLocal Environment = "local"
	// EnvDev marks the hosted development environment; records render as JSON.
	EnvDev Environment = "dev"
	// EnvProd marks the hosted production environment; records render as JSON.
	EnvProd Environment = "prod"
)

// ParseEnvironment maps a lowercase environment token to its Environment.
// Matching is case-sensitive; anything outside the closed token set is
// rejected.
func ParseEnvironment(token string) (Environment, error) {
	switch Environment(token) {
	case EnvLocal:
		return EnvLocal, nil
	case EnvDev:
		return EnvDev, nil
	case EnvProd:
		return EnvProd, nil
	default:
		return "", errs.New(errs.CodeInvalidToken,
			errs.WithValue(token),
			errs.WithMessage("unrecognized environment token"),
			errs.WithRemediation("use one of local, dev, prod"))
	}
}
