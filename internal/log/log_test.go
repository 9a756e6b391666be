package log

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func resetSession(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		sessionMutex.Lock()
		currentSession = nil
		loggingEnabled = true
		sessionMutex.Unlock()
	})
}

func readSessions(t *testing.T, home string) []LogSession {
	t.Helper()
	files, err := filepath.Glob(filepath.Join(home, ".mediar", "logs", "*.json"))
	if err != nil {
		t.Fatal(err)
	}

	var sessions []LogSession
	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			t.Fatal(err)
		}
		var session LogSession
		if err := json.Unmarshal(data, &session); err != nil {
			t.Fatalf("unmarshal %s: %v", file, err)
		}
		sessions = append(sessions, session)
	}
	return sessions
}

func TestSessionLifecycle(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	resetSession(t)

	Initialize(true, 30)
	if err := StartSession("copy", []string{"/src", "/dst"}); err != nil {
		t.Fatalf("StartSession() = %v", err)
	}

	LogCreateDir("/dst/Show (2008)", true, nil)
	LogTransfer(OpCopy, "/src/a.mkv", "/dst/Show (2008)/a.mkv", true, nil)
	LogTransfer(OpCopy, "/src/b.mkv", "/dst/Show (2008)/b.mkv", false, os.ErrPermission)

	if err := EndSession(); err != nil {
		t.Fatalf("EndSession() = %v", err)
	}

	sessions := readSessions(t, home)
	if len(sessions) != 1 {
		t.Fatalf("found %d session files, want 1", len(sessions))
	}

	session := sessions[0]
	if got := session.Metadata.CommandArgs; len(got) != 3 || got[0] != "copy" {
		t.Errorf("CommandArgs = %v, want [copy /src /dst]", got)
	}
	if session.Metadata.TotalOps != 3 {
		t.Errorf("TotalOps = %d, want 3", session.Metadata.TotalOps)
	}
	if session.Metadata.SuccessfulOps != 2 {
		t.Errorf("SuccessfulOps = %d, want 2", session.Metadata.SuccessfulOps)
	}
	if session.Metadata.FailedOps != 1 {
		t.Errorf("FailedOps = %d, want 1", session.Metadata.FailedOps)
	}

	last := session.Operations[2]
	if last.Type != OpCopy || last.Success || last.Error == "" {
		t.Errorf("failed operation recorded as %+v", last)
	}
}

func TestLoggingDisabled(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	resetSession(t)

	Initialize(false, 30)
	if err := StartSession("move", nil); err != nil {
		t.Fatalf("StartSession() = %v", err)
	}
	LogTransfer(OpMove, "/src/a.mkv", "/dst/a.mkv", true, nil)
	if err := EndSession(); err != nil {
		t.Fatalf("EndSession() = %v", err)
	}

	if sessions := readSessions(t, home); len(sessions) != 0 {
		t.Errorf("found %d session files with logging disabled, want 0", len(sessions))
	}
}

func TestLogOperationWithoutSession(t *testing.T) {
	resetSession(t)

	// Must be a no-op rather than a panic.
	LogTransfer(OpLink, "/src/a.mkv", "/dst/a.mkv", true, nil)
}
