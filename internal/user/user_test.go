package user

import "testing"

func TestName_EnvOverride(t *testing.T) {
	t.Setenv(Env, "  recruiter  ")

	if got := Name(); got != "recruiter" {
		t.Errorf("Name() = %q, want %q", got, "recruiter")
	}
}

func TestName_NeverEmpty(t *testing.T) {
	t.Setenv(Env, "")
	t.Setenv("USER", "")

	if got := Name(); got == "" {
		t.Error("Name() returned an empty string")
	}
}
