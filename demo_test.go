package funcdemo

import (
	"bytes"
	"context"
	"errors"
	"io"
	"log/slog"
	"reflect"
	"strings"
	"testing"
)

const wantOutput = `My name is John
My name is Williams
HELLO, MY NAME IS GREG
HELLO, MY NAME IS MARTIN
6.0
[Chike, Kechi]
`

func TestRunner_Run(t *testing.T) {
	var buf bytes.Buffer

	if err := NewRunner(nil).Run(context.Background(), &buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.String() != wantOutput {
		t.Errorf("unexpected output:\n%s\nwant:\n%s", buf.String(), wantOutput)
	}
}

func TestRunner_Run_LogsMemberExtension(t *testing.T) {
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	if err := NewRunner(log).Run(context.Background(), io.Discard); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(logs.String(), "ClassA extended ClassB") {
		t.Errorf("expected member extension result in logs, got:\n%s", logs.String())
	}
}

func TestRunner_DemoNames(t *testing.T) {
	want := []string{
		"extension-function",
		"member-extension",
		"function-reference",
		"lambda",
		"returned-function",
		"closure",
	}

	if got := NewRunner(nil).DemoNames(); !reflect.DeepEqual(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestRunner_Lookup(t *testing.T) {
	r := NewRunner(nil)

	if d, ok := r.Lookup("lambda").Get(); !ok || d.Name != "lambda" {
		t.Errorf("expected to find lambda, got %v %v", d.Name, ok)
	}
	if r.Lookup("nope").IsPresent() {
		t.Error("expected no demo named nope")
	}
}

func TestRunner_Select_KeepsCanonicalOrder(t *testing.T) {
	r, err := NewRunner(nil).Select("closure", "function-reference")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var buf bytes.Buffer
	r.Run(context.Background(), &buf)

	want := "HELLO, MY NAME IS GREG\n[Chike, Kechi]\n"
	if buf.String() != want {
		t.Errorf("expected %q, got %q", want, buf.String())
	}
}

func TestRunner_Select_None(t *testing.T) {
	r, err := NewRunner(nil).Select()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(r.Demos) != 6 {
		t.Errorf("expected all 6 demos, got %d", len(r.Demos))
	}
}

func TestRunner_Select_Unknown(t *testing.T) {
	_, err := NewRunner(nil).Select("lambda", "missing", "other")

	if !errors.Is(err, ErrUnknownDemo) {
		t.Fatalf("expected ErrUnknownDemo, got %v", err)
	}
	if !strings.Contains(err.Error(), "missing, other") {
		t.Errorf("expected unknown names in error, got %v", err)
	}
}

func TestRunner_Run_StopsOnError(t *testing.T) {
	expectedErr := errors.New("boom")
	ran := 0
	r := Runner{Demos: []Demo{
		{Name: "first", Run: func(w io.Writer, _ *slog.Logger) error { ran++; return nil }},
		{Name: "second", Run: func(w io.Writer, _ *slog.Logger) error { ran++; return expectedErr }},
		{Name: "third", Run: func(w io.Writer, _ *slog.Logger) error { ran++; return nil }},
	}}

	err := r.Run(context.Background(), io.Discard)

	var demoErr *DemoError
	if !errors.As(err, &demoErr) {
		t.Fatalf("expected *DemoError, got %T", err)
	}
	if demoErr.Name != "second" {
		t.Errorf("expected failing demo 'second', got %q", demoErr.Name)
	}
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected wrapped %v, got %v", expectedErr, err)
	}
	if ran != 2 {
		t.Errorf("expected 2 demos to run, got %d", ran)
	}
}

func TestRunner_Run_WriteError(t *testing.T) {
	expectedErr := errors.New("stdout closed")
	w := WriteFunc(func(p []byte) (int, error) {
		return 0, expectedErr
	})

	err := NewRunner(nil).Run(context.Background(), w)

	var demoErr *DemoError
	if !errors.As(err, &demoErr) || demoErr.Name != "extension-function" {
		t.Fatalf("expected extension-function failure, got %v", err)
	}
	if !errors.Is(err, expectedErr) {
		t.Errorf("expected wrapped %v, got %v", expectedErr, err)
	}
}

func TestRunner_Run_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := NewRunner(nil).Run(ctx, &buf)

	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestDemoError_Error(t *testing.T) {
	err := &DemoError{Name: "lambda", Err: errors.New("bad")}

	if err.Error() != "demo lambda: bad" {
		t.Errorf("unexpected message %q", err.Error())
	}
}
