package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/urfave/cli/v2"
)

func newTestApp(flags []cli.Flag, action cli.ActionFunc) *cli.App {
	return &cli.App{
		Name: "taskbot-test",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "inspect",
				Flags:  flags,
				Before: WithConfigFileSource(flags),
				Action: action,
			},
		},
	}
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "taskbot.yaml")

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("%+v", err)
	}

	return path
}

func TestConfigFileSource(t *testing.T) {
	configPath := writeConfigFile(t, "server: http://taskbot.internal:9999\nmember: member-42\n")

	var server, member string

	flags := WithCommonFlags()

	app := newTestApp(flags, func(cCtx *cli.Context) error {
		server = cCtx.String("server")
		member = cCtx.String("member")
		return nil
	})

	if err := app.Run([]string{"taskbot-test", "--config", configPath, "inspect"}); err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := "http://taskbot.internal:9999", server; e != g {
		t.Errorf("server: expected %q, got %q", e, g)
	}

	if e, g := "member-42", member; e != g {
		t.Errorf("member: expected %q, got %q", e, g)
	}
}

func TestConfigFileSourceFlagPrecedence(t *testing.T) {
	configPath := writeConfigFile(t, "server: http://taskbot.internal:9999\n")

	var server string

	flags := WithCommonFlags()

	app := newTestApp(flags, func(cCtx *cli.Context) error {
		server = cCtx.String("server")
		return nil
	})

	args := []string{"taskbot-test", "--config", configPath, "inspect", "--server", "http://taskbot.override:1234"}

	if err := app.Run(args); err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := "http://taskbot.override:1234", server; e != g {
		t.Errorf("server: expected %q, got %q", e, g)
	}
}

func TestConfigFileSourceWithoutFile(t *testing.T) {
	var server string

	flags := WithCommonFlags()

	app := newTestApp(flags, func(cCtx *cli.Context) error {
		server = cCtx.String("server")
		return nil
	})

	if err := app.Run([]string{"taskbot-test", "inspect"}); err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := "http://localhost:8080", server; e != g {
		t.Errorf("server: expected %q, got %q", e, g)
	}
}
