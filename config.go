package fiaaslog

import (
	"os"

	"github.com/finn-no/fiaas-logging-go/errs"
)

// Environment variables consulted by InitFromEnv.
const (
	// EnvVarLogLevel selects the minimum severity.
	EnvVarLogLevel = "LOG_LEVEL"
	// EnvVarEnvironment selects the deployment environment.
	EnvVarEnvironment = "FIAAS_ENVIRONMENT"
)

type envConfig struct {
	environment Environment
	minSeverity Severity
}

func configFromEnv() (envConfig, error) {
	rawLevel, ok := os.LookupEnv(EnvVarLogLevel)
	if !ok {
		return envConfig{}, errs.New(errs.CodeMissingVariable,
			errs.WithVariable(EnvVarLogLevel),
			errs.WithRemediation("set it to one of error, warn, info, debug, trace"))
	}
	min, err := ParseSeverity(rawLevel)
	if err != nil {
		return envConfig{}, errs.New(errs.CodeInvalidToken,
			errs.WithVariable(EnvVarLogLevel),
			errs.WithValue(rawLevel),
			errs.WithRemediation("use one of error, warn, info, debug, trace"))
	}

	rawEnv, ok := os.LookupEnv(EnvVarEnvironment)
	if !ok {
		return envConfig{}, errs.New(errs.CodeMissingVariable,
			errs.WithVariable(EnvVarEnvironment),
			errs.WithRemediation("set it to one of local, dev, prod"))
	}
	env, err := ParseEnvironment(rawEnv)
	if err != nil {
		return envConfig{}, errs.New(errs.CodeInvalidToken,
			errs.WithVariable(EnvVarEnvironment),
			errs.WithValue(rawEnv),
			errs.WithRemediation("use one of local, dev, prod"))
	}

	return envConfig{environment: env, minSeverity: min}, nil
}
