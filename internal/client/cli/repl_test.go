package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
	"testing"
)

type fakeExec struct {
	loggedIn bool
	calls    []string
}

func (f *fakeExec) isLoggedIn() bool { return f.loggedIn }

func (f *fakeExec) record(name string) error {
	f.calls = append(f.calls, name)
	return nil
}

func (f *fakeExec) Register(context.Context) error { return f.record("register") }
func (f *fakeExec) Login(context.Context) error    { return f.record("login") }
func (f *fakeExec) WhoAmI(context.Context) error   { return f.record("whoami") }
func (f *fakeExec) Update(context.Context) error   { return f.record("update") }
func (f *fakeExec) Logout(context.Context) error   { return f.record("logout") }

func captureOutput(t *testing.T) *[]string {
	t.Helper()
	var lines []string
	old := printlnFn
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimSuffix(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = old })
	return &lines
}

func TestRunREPL_Dispatch(t *testing.T) {
	out := captureOutput(t)
	f := &fakeExec{}

	input := "register\n\nlogin\nwhoami\nme\nupdate\nlogout\nbogus\nexit\nregister\n"
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewScanner(strings.NewReader(input)))

	want := []string{"register", "login", "whoami", "whoami", "update", "logout"}
	if strings.Join(f.calls, ",") != strings.Join(want, ",") {
		t.Fatalf("calls = %v, want %v", f.calls, want)
	}

	joined := strings.Join(*out, "\n")
	if !strings.Contains(joined, "Unknown command: bogus") {
		t.Fatalf("missing unknown command output: %q", joined)
	}
	if !strings.Contains(joined, "Bye!") {
		t.Fatalf("missing goodbye: %q", joined)
	}
}

func TestRunREPL_HelpDependsOnSession(t *testing.T) {
	out := captureOutput(t)

	runREPL(context.Background(), &fakeExec{}, func() string { return "" }, bufio.NewScanner(strings.NewReader("help\n")))
	runREPL(context.Background(), &fakeExec{loggedIn: true}, func() string { return "(alice)" }, bufio.NewScanner(strings.NewReader("help\n")))

	joined := strings.Join(*out, "\n")
	if !strings.Contains(joined, "register, login, exit") {
		t.Fatalf("anonymous help missing: %q", joined)
	}
	if !strings.Contains(joined, "whoami, update, logout, exit") {
		t.Fatalf("session help missing: %q", joined)
	}
	if !strings.Contains(joined, "identcore (alice)> ") {
		t.Fatalf("status not in prompt: %q", joined)
	}
}

func TestRunREPL_StopsOnEOF(t *testing.T) {
	captureOutput(t)
	f := &fakeExec{}
	runREPL(context.Background(), f, func() string { return "" }, bufio.NewScanner(strings.NewReader("")))
	if len(f.calls) != 0 {
		t.Fatalf("unexpected calls: %v", f.calls)
	}
}
