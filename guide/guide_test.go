package guide

import (
	"strings"
	"testing"
)

func TestGetDefaultPage(t *testing.T) {
	content, err := Get("")
	if err != nil {
		t.Fatalf("Get(\"\") error: %v", err)
	}
	if !strings.Contains(content, "iconforge") {
		t.Error("default page does not mention iconforge")
	}
}

func TestGetKnownTopics(t *testing.T) {
	for _, topic := range []string{"generate", "profiles", "config"} {
		if _, err := Get(topic); err != nil {
			t.Errorf("Get(%q) error: %v", topic, err)
		}
	}
}

func TestGetUnknownTopic(t *testing.T) {
	if _, err := Get("no-such-topic"); err == nil {
		t.Fatal("Get() for unknown topic succeeded, want error")
	}
}

func TestListExcludesIndex(t *testing.T) {
	names, err := List()
	if err != nil {
		t.Fatalf("List() error: %v", err)
	}
	for _, n := range names {
		if n == "guide" {
			t.Error("List() includes the index page")
		}
	}
	if len(names) < 3 {
		t.Errorf("List() = %v, want at least the three topic pages", names)
	}
}
