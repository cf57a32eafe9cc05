package render

import (
	"strings"
	"testing"
)

func TestAddTargetBlank(t *testing.T) {
	in := `<p><a href="https://example.com">ext</a> and <a href="page-002.html">int</a></p>`
	got := AddTargetBlank(in)

	want := `<p><a target="_blank" href="https://example.com">ext</a> and <a href="page-002.html">int</a></p>`
	if got != want {
		t.Errorf("AddTargetBlank() = %q, want %q", got, want)
	}
}

func TestAddTargetBlank_LiteralPrefixOnly(t *testing.T) {
	// Substring policy: anchors with attributes before href are untouched.
	in := `<a class="x" href="https://example.com">ext</a>`
	if got := AddTargetBlank(in); got != in {
		t.Errorf("AddTargetBlank() = %q, want input unchanged", got)
	}
}

func TestHead_EmbedsDefaultStyleWithoutCSSLink(t *testing.T) {
	head := Head("1. T", 1, "", "", "", "en")

	if !strings.Contains(head, "<style>") {
		t.Error("head without css link should embed the default style")
	}
	if !strings.Contains(head, `<html lang="en">`) {
		t.Error("head missing html lang attribute")
	}
	if !strings.Contains(head, `class="page-001"`) {
		t.Error("head missing zero-padded page class")
	}
}

func TestHead_UsesCSSLink(t *testing.T) {
	link := CSSLink("style.css")
	head := Head("2. S", 2, "page-001.html", link, "wide", "de")

	if !strings.Contains(head, `href="style.css"`) {
		t.Error("head missing external css link")
	}
	if strings.Contains(head, "<style>") {
		t.Error("head with css link should not embed the default style")
	}
	if !strings.Contains(head, `<div id="content" class="wide">`) {
		t.Errorf("head missing content classes: %q", head)
	}
	if !strings.Contains(head, `<a href="page-001.html">&larr;</a>`) {
		t.Error("head missing previous-page nav link")
	}
}

func TestNavLinks_OmittedWithoutTarget(t *testing.T) {
	head := Head("1. T", 1, "", "", "", "en")
	if strings.Contains(head, "&larr;") {
		t.Error("first page should have no previous-page anchor")
	}

	tail := Tail("", "")
	if strings.Contains(tail, "&rarr;") {
		t.Error("last page should have no next-page anchor")
	}
	if !strings.Contains(tail, `<div id="nav-next" class="nav-link">`) {
		t.Error("nav-next div itself should still be present")
	}
}

func TestTail_IncludesNavScripts(t *testing.T) {
	tail := Tail("page-001.html", "page-003.html")

	if !strings.Contains(tail, "prevPage = 'page-001.html'") {
		t.Error("tail missing prevPage script variable")
	}
	if !strings.Contains(tail, "nextPage = 'page-003.html'") {
		t.Error("tail missing nextPage script variable")
	}
	if !strings.Contains(tail, "addEventListener('touchstart'") {
		t.Error("tail missing swipe handler")
	}
	if !strings.Contains(tail, "show-nav") {
		t.Error("tail missing show-hide nav script")
	}
}
