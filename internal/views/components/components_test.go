package components

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"linkshelf/internal/theme"
	"linkshelf/models"
)

func TestLinkButtonUsesLinksButtonRole(t *testing.T) {
	record := theme.Resolve("ocean")
	link := models.Link{Title: "Shop & more", URL: "https://shop.example.com"}
	link.ID = 7

	var buf bytes.Buffer
	if err := LinkButton(link, record).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render link button: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `class="`+record.Value(theme.RoleLinksButton)+`"`) {
		t.Fatalf("expected links_button classes: %s", out)
	}
	if !strings.Contains(out, "Shop &amp; more") {
		t.Fatalf("expected escaped title: %s", out)
	}
	if !strings.Contains(out, `data-link-id="7"`) {
		t.Fatalf("expected link id attribute: %s", out)
	}
}

func TestLinkButtonSanitizesUnsafeURL(t *testing.T) {
	var buf bytes.Buffer
	link := models.Link{Title: "bad", URL: "javascript:alert(1)"}
	if err := LinkButton(link, theme.Default()).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render link button: %v", err)
	}
	if strings.Contains(buf.String(), "javascript:") {
		t.Fatalf("expected unsafe URL to be replaced: %s", buf.String())
	}
}

func TestLinkListRendersInOrder(t *testing.T) {
	links := []models.Link{{Title: "One", URL: "https://a.example"}, {Title: "Two", URL: "https://b.example"}}
	var buf bytes.Buffer
	if err := LinkList(links, theme.Default()).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render link list: %v", err)
	}
	out := buf.String()
	if strings.Index(out, "One") > strings.Index(out, "Two") {
		t.Fatalf("expected links in given order: %s", out)
	}
	if strings.Count(out, "glass-button") != 2 {
		t.Fatalf("expected default glass buttons: %s", out)
	}
}

func TestProfileHeaderFallsBackToHandle(t *testing.T) {
	var buf bytes.Buffer
	profile := models.Profile{Handle: "avery"}
	if err := ProfileHeader(profile, theme.Default()).Render(context.Background(), &buf); err != nil {
		t.Fatalf("render header: %v", err)
	}
	if !strings.Contains(buf.String(), "@avery") {
		t.Fatalf("expected handle as display name: %s", buf.String())
	}
	if strings.Contains(buf.String(), "<img") {
		t.Fatalf("expected no avatar without URL: %s", buf.String())
	}
}

func TestThemePickerMarksActiveOption(t *testing.T) {
	var buf bytes.Buffer
	if err := ThemePicker("/preferences/theme", theme.Options(), "ocean").Render(context.Background(), &buf); err != nil {
		t.Fatalf("render theme picker: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `<option value="ocean" selected>`) {
		t.Fatalf("expected ocean to be selected: %s", out)
	}
	if strings.Count(out, "<option") != len(theme.Options()) {
		t.Fatalf("expected one option per theme: %s", out)
	}
}
