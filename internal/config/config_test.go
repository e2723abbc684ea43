package config

import (
	"testing"
)

func TestParse(t *testing.T) {
	t.Setenv("TASKBOT_HTTP_ADDRESS", ":9090")
	t.Setenv("TASKBOT_STORAGE_DATABASE_DSN", "data/taskbot.sqlite")
	t.Setenv("TASKBOT_BOT_ADMIN_ROLES", "admin,owner")
	t.Setenv("TASKBOT_BOT_ROLE_NAMES", "role-1:Core Team,role-2:Moderators")

	conf, err := Parse()
	if err != nil {
		t.Fatalf("%+v", err)
	}

	if e, g := ":9090", conf.HTTP.Address; e != g {
		t.Errorf("conf.HTTP.Address: expected %q, got %q", e, g)
	}

	if e, g := "/", conf.HTTP.BaseURL; e != g {
		t.Errorf("conf.HTTP.BaseURL: expected %q, got %q", e, g)
	}

	if e, g := "data/taskbot.sqlite", conf.Storage.Database.DSN; e != g {
		t.Errorf("conf.Storage.Database.DSN: expected %q, got %q", e, g)
	}

	if e, g := 2, len(conf.Bot.AdminRoles); e != g {
		t.Fatalf("len(conf.Bot.AdminRoles): expected %d, got %d", e, g)
	}

	if e, g := "Core Team", conf.Bot.RoleNames["role-1"]; e != g {
		t.Errorf("conf.Bot.RoleNames[\"role-1\"]: expected %q, got %q", e, g)
	}
}
