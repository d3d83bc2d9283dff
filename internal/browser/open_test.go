package browser

import (
	"errors"
	"runtime"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		url     string
		wantErr bool
	}{
		{"https://thehiring.example/faq", false},
		{"http://localhost:8080", false},
		{"file:///etc/passwd", true},
		{"javascript:alert(1)", true},
		{"https://", true},
		{"not a url", true},
	}
	for _, tc := range tests {
		t.Run(tc.url, func(t *testing.T) {
			err := Validate(tc.url)
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate(%q) error = %v, wantErr %v", tc.url, err, tc.wantErr)
			}
		})
	}
}

func TestValidateSchemeSentinel(t *testing.T) {
	err := Validate("ftp://example.com")
	if !errors.Is(err, ErrUnsupportedScheme) {
		t.Errorf("expected ErrUnsupportedScheme, got %v", err)
	}
}

func TestCommand(t *testing.T) {
	tests := []struct {
		goos     string
		wantName string
		wantArgs int
	}{
		{"darwin", "open", 1},
		{"linux", "xdg-open", 1},
		{"windows", "rundll32", 2},
	}
	for _, tc := range tests {
		name, args, err := Command(tc.goos, "https://thehiring.example")
		if err != nil {
			t.Fatalf("Command(%q): %v", tc.goos, err)
		}
		if name != tc.wantName || len(args) != tc.wantArgs {
			t.Errorf("Command(%q) = %q %v", tc.goos, name, args)
		}
		if args[len(args)-1] != "https://thehiring.example" {
			t.Errorf("Command(%q) last arg = %q, want the url", tc.goos, args[len(args)-1])
		}
	}
	if _, _, err := Command("plan9", "https://thehiring.example"); err == nil {
		t.Error("expected error for unsupported OS")
	}
}

func TestOpenRejectsBadURLWithoutStarting(t *testing.T) {
	called := false
	orig := start
	start = func(string, ...string) error { called = true; return nil }
	t.Cleanup(func() { start = orig })

	if err := Open("file:///tmp/x"); err == nil {
		t.Fatal("expected error for file url")
	}
	if called {
		t.Error("opener must not run for a rejected url")
	}
}

func TestOpenStartsPlatformCommand(t *testing.T) {
	if _, _, err := Command(runtime.GOOS, "https://x.example"); err != nil {
		t.Skipf("no opener on %s", runtime.GOOS)
	}
	var gotName string
	var gotArgs []string
	orig := start
	start = func(name string, args ...string) error { gotName, gotArgs = name, args; return nil }
	t.Cleanup(func() { start = orig })

	if err := Open("https://thehiring.example/terms"); err != nil {
		t.Fatalf("Open: %v", err)
	}
	if gotName == "" || gotArgs[len(gotArgs)-1] != "https://thehiring.example/terms" {
		t.Errorf("started %q %v", gotName, gotArgs)
	}
}
