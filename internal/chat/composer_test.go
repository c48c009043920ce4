package chat

import (
	"strings"
	"testing"
)

func TestComposer(t *testing.T) {
	var c Composer
	c.Insert([]rune("helo"))
	c.Backspace()
	c.Insert([]rune("lo\tç"))

	if got := c.Text(); got != "helloç" {
		t.Fatalf("Text() = %q", got)
	}

	text, ok := c.Submit()
	if !ok || text != "helloç" {
		t.Fatalf("Submit() = %q, %v", text, ok)
	}
	if c.Text() != "" {
		t.Fatal("Submit() did not clear the field")
	}
}

func TestSubmitBlank(t *testing.T) {
	var c Composer
	if _, ok := c.Submit(); ok {
		t.Fatal("empty line submitted")
	}
	c.Insert([]rune("   "))
	if _, ok := c.Submit(); ok {
		t.Fatal("blank line submitted")
	}
	if c.Text() != "" {
		t.Fatal("blank line not cleared")
	}
}

func TestBackspaceOnEmpty(t *testing.T) {
	var c Composer
	c.Backspace()
	if c.Text() != "" {
		t.Fatal("unexpected text")
	}
}

func TestInsertLimit(t *testing.T) {
	var c Composer
	c.Insert([]rune(strings.Repeat("a", maxRunes+10)))
	if got := len([]rune(c.Text())); got != maxRunes {
		t.Fatalf("len = %d, want %d", got, maxRunes)
	}
}
