package main

import "testing"

func TestRun_VersionAndHelpExitCleanly(t *testing.T) {
	for _, args := range [][]string{{"--version"}, {"-h"}, {"--help"}} {
		if code := run(args); code != 0 {
			t.Fatalf("run(%v) = %d, want 0", args, code)
		}
	}
}

func TestRun_RejectsBadInput(t *testing.T) {
	if code := run([]string{"--no-such-flag"}); code != 2 {
		t.Fatalf("unknown flag exit = %d, want 2", code)
	}
	if code := run([]string{"extra"}); code != 2 {
		t.Fatalf("positional arg exit = %d, want 2", code)
	}
}
