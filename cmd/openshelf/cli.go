package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	jmespath "github.com/jmespath-community/go-jmespath"

	"github.com/openshelf/openshelf/internal/bootstrap"
	"github.com/openshelf/openshelf/internal/domain/auth"
	apperrors "github.com/openshelf/openshelf/internal/errors"
	"github.com/openshelf/openshelf/internal/guard"
	"github.com/openshelf/openshelf/internal/notify"
)

// cli holds the wired application shared by every subcommand.
type cli struct {
	app   *bootstrap.App
	nav   *terminalNavigator
	query string
}

func (c *cli) init(ctx context.Context) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}
	logger := bootstrap.InitLogger(cfg.IsDev)

	c.nav = &terminalNavigator{}
	c.app, err = bootstrap.NewApp(ctx, bootstrap.AppOptions{
		Config:    cfg,
		Logger:    logger,
		Navigator: c.nav,
		Sinks:     []notify.Sink{&terminalSink{}},
	})
	return err
}

func (c *cli) close() {
	if c.app != nil {
		_ = c.app.Close()
	}
}

// requireRoute runs the navigation guard the way the web client ran it per
// protected route. Denials surface both as a printed redirect and as an
// error so the command exits non-zero.
func (c *cli) requireRoute(path string, role auth.Role) error {
	decision := c.app.Guard.Check(guard.NewAttempt(path), guard.Route{
		Path:         path,
		RequiredRole: role,
	})
	switch decision.Action {
	case guard.RedirectToLogin:
		c.nav.Navigate(decision.To)
		return apperrors.LoginRequired(fmt.Sprintf(
			"sign in first, then retry with: openshelf login --return-to %s", decision.From))
	case guard.RedirectToHome:
		c.nav.Navigate(decision.To)
		return apperrors.Forbidden(fmt.Sprintf("%s requires the Admin role", path))
	default:
		return nil
	}
}

// print renders v as indented JSON, optionally projected through the
// --query JMESPath expression.
func (c *cli) print(v any) error {
	if c.query != "" {
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("encode output: %w", err)
		}
		var data any
		if err := json.Unmarshal(raw, &data); err != nil {
			return fmt.Errorf("decode output: %w", err)
		}
		projected, err := jmespath.Search(c.query, data)
		if err != nil {
			return fmt.Errorf("apply query %q: %w", c.query, err)
		}
		v = projected
	}

	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
