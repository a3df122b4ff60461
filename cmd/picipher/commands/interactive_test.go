package commands

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"picipher/internal/domain"
)

func TestDialogue_RetriesUntilValid(t *testing.T) {
	in := strings.NewReader("maybe\nE\nHello there\n-4\nseven\n12\n")
	var out bytes.Buffer

	mode, message, key, err := dialogue(in, &out)
	if err != nil {
		t.Fatalf("dialogue: %v", err)
	}
	if mode != domain.Encrypt || message != "Hello there" || key != 12 {
		t.Fatalf("got mode=%v message=%q key=%d", mode, message, key)
	}
	if n := strings.Count(out.String(), "Enter the key number"); n != 3 {
		t.Fatalf("key prompt shown %d times, want 3", n)
	}
	if !strings.Contains(out.String(), `Enter either "encrypt"`) {
		t.Fatal("mode hint not shown after invalid mode")
	}
}

func TestDialogue_LastLineWithoutNewline(t *testing.T) {
	mode, message, key, err := dialogue(strings.NewReader("d\r\nabc\r\n0"), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("dialogue: %v", err)
	}
	if mode != domain.Decrypt || message != "abc" || key != 0 {
		t.Fatalf("got mode=%v message=%q key=%d", mode, message, key)
	}
}

func TestDialogue_EOF(t *testing.T) {
	_, _, _, err := dialogue(strings.NewReader("encrypt\nhi\n"), &bytes.Buffer{})
	if !errors.Is(err, errNoInput) {
		t.Fatalf("err = %v, want errNoInput", err)
	}
}
