package main

import (
	"context"
	"io"
	"os"

	"weather-report/config"
	"weather-report/internal/repositories"
	"weather-report/internal/services/report"
	"weather-report/pkg/logger"
	"weather-report/pkg/observe"
)

func main() {
	// On error cnf still holds every setting that loaded and validated.
	cnf, cfgErr := config.NewConfig()

	writers := []io.Writer{logOutput(cnf)}

	var hook *observe.SentryHook
	if cnf.SentryEnabled() && cnf.Log.Format == logger.FormatJSON {
		hook = observe.NewSentryHook(cnf.App.Env, cnf.App.Name, 0, cnf.Sentry.Debug, cnf.Sentry.DSN)
		writers = append(writers, hook)
	}

	l, err := logger.NewZapLogger(logger.Options{
		AppName: cnf.App.Name,
		AppEnv:  cnf.App.Env,
		Level:   cnf.Log.Level,
		Format:  cnf.Log.Format,
	}, writers...)
	if err != nil {
		l = logger.Nop()
	}
	if hook != nil {
		hook.SetLogger(l)
	}

	defer func() {
		_ = l.Stop()
		if hook != nil {
			hook.Flush()
		}
	}()

	if cfgErr != nil {
		l.Warning("invalid configuration, affected settings fall back to defaults", map[string]any{"err": cfgErr.Error()})
	}

	l.Info("application started", map[string]any{"version": cnf.App.Version})

	repo := repositories.NewOpenMeteoArchiveRepository(l, nil)
	service := report.NewService(repo, os.Stdout, l)

	// The diagnostic is already on stdout; the exit status stays 0 either way.
	if err := service.Run(context.Background()); err != nil {
		l.Debug("run finished with a failure", map[string]any{"err": err.Error()})
	}
}

func logOutput(cnf *config.Config) io.Writer {
	if cnf.Log.Output == config.OutputStdout {
		return os.Stdout
	}
	return os.Stderr
}
