package cli

import (
	"bufio"
	"context"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool

	calls []string
	arg   string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }
func (f *fakeExec) Register(ctx context.Context) error {
	f.calls = append(f.calls, "register")
	return nil
}
func (f *fakeExec) Login(ctx context.Context) error {
	f.calls = append(f.calls, "login")
	f.loggedIn = true
	return nil
}
func (f *fakeExec) Forgot(ctx context.Context) error {
	f.calls = append(f.calls, "forgot")
	return nil
}
func (f *fakeExec) Dashboard(ctx context.Context) error {
	f.calls = append(f.calls, "dashboard")
	return nil
}
func (f *fakeExec) QuickMood(ctx context.Context, category string) error {
	f.calls = append(f.calls, "mood")
	f.arg = category
	return nil
}
func (f *fakeExec) LogMood(ctx context.Context) error {
	f.calls = append(f.calls, "log")
	return nil
}
func (f *fakeExec) Entries(ctx context.Context) error {
	f.calls = append(f.calls, "entries")
	return nil
}
func (f *fakeExec) Chat(ctx context.Context) error {
	f.calls = append(f.calls, "chat")
	return nil
}
func (f *fakeExec) Settings(ctx context.Context) error {
	f.calls = append(f.calls, "settings")
	return nil
}
func (f *fakeExec) Export(ctx context.Context) error {
	f.calls = append(f.calls, "export")
	return nil
}
func (f *fakeExec) Reset(ctx context.Context) error {
	f.calls = append(f.calls, "reset")
	return nil
}
func (f *fakeExec) DeleteAccount(ctx context.Context) error {
	f.calls = append(f.calls, "delete-account")
	return nil
}
func (f *fakeExec) Logout(ctx context.Context) error {
	f.calls = append(f.calls, "logout")
	f.loggedIn = false
	return nil
}

func TestRunREPL_LoginFlowAndCommands(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader(strings.Join([]string{
		"help",
		"login",
		"help",
		"mood happy",
		"d",
		"log",
		"entries",
		"chat",
		"foobar",
		"logout",
		"exit",
	}, "\n"))

	exec := &fakeExec{loggedIn: false}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "status" }, sc)

	wantOrder := []string{"login", "mood", "dashboard", "log", "entries", "chat", "logout"}
	if len(exec.calls) < len(wantOrder) {
		t.Fatalf("few calls: %+v", exec.calls)
	}
	idx := 0
	for _, c := range exec.calls {
		if idx < len(wantOrder) && c == wantOrder[idx] {
			idx++
		}
	}
	if idx != len(wantOrder) {
		t.Fatalf("commands order mismatch: got %v, want subseq %v", exec.calls, wantOrder)
	}
	if exec.arg != "happy" {
		t.Fatalf("mood argument not forwarded: %q", exec.arg)
	}
}

func TestRunREPL_MoodUsageAndQuit(t *testing.T) {
	origPrint := printlnFn
	printlnFn = func(...any) (int, error) { return 0, nil }
	t.Cleanup(func() { printlnFn = origPrint })

	input := strings.NewReader("mood\nquit\n")
	exec := &fakeExec{loggedIn: true}
	sc := bufio.NewScanner(input)

	runREPL(context.Background(), exec, func() string { return "s" }, sc)

	if len(exec.calls) != 0 {
		t.Fatalf("unexpected calls: %v", exec.calls)
	}
}
