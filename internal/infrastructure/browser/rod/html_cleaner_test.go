package rod

import (
	"strings"
	"testing"
)

func TestCleanHTML_StripsNoiseTags(t *testing.T) {
	raw := `<html><head><title>Inbox</title></head><body>
		<script>alert("x")</script>
		<style>.a{color:red}</style>
		<div class="compose">Hello</div>
	</body></html>`

	got := CleanHTML(raw, nil)

	if strings.Contains(got, "<script") || strings.Contains(got, "alert") {
		t.Error("script content must be removed")
	}
	if strings.Contains(got, "<style") {
		t.Error("style content must be removed")
	}
	if !strings.Contains(got, "Hello") {
		t.Error("text content must survive")
	}
	if !strings.Contains(got, `class="compose"`) {
		t.Error("class attributes must survive")
	}
}

func TestCleanHTML_StripsEventAndDataAttributes(t *testing.T) {
	raw := `<html><body><button onclick="go()" data-tracking="x" aria-label="Send">Send</button></body></html>`

	got := CleanHTML(raw, nil)

	if strings.Contains(got, "onclick") {
		t.Error("on* handlers must be removed")
	}
	if strings.Contains(got, "data-tracking") {
		t.Error("data-* attributes must be removed")
	}
	if !strings.Contains(got, `aria-label="Send"`) {
		t.Error("aria attributes are used as selectors and must survive")
	}
}

func TestCleanHTML_RemovesComments(t *testing.T) {
	raw := `<html><body><!-- internal note --><p>text</p></body></html>`

	got := CleanHTML(raw, nil)

	if strings.Contains(got, "internal note") {
		t.Error("comments must be removed")
	}
}

func TestCleanHTML_Truncation(t *testing.T) {
	cfg := DefaultCleanConfig
	cfg.MaxOutputSize = 60
	raw := "<html><body><p>" + strings.Repeat("x", 500) + "</p></body></html>"

	got := CleanHTML(raw, &cfg)

	if !strings.HasSuffix(got, "<!-- HTML truncated -->") {
		t.Error("oversized output must carry the truncation marker")
	}
	if len(got) > cfg.MaxOutputSize+len("\n<!-- HTML truncated -->") {
		t.Errorf("output exceeds the bound: %d bytes", len(got))
	}
}

func TestCleanHTML_FragmentGetsBodyWrapper(t *testing.T) {
	got := CleanHTML("<div>fragment</div>", nil)

	if !strings.Contains(got, "fragment") {
		t.Fatalf("fragment content must survive, got %q", got)
	}
	if !strings.HasPrefix(got, "<body") {
		t.Errorf("cleaner renders from the body node, got %q", got)
	}
}

func TestCleanHTML_CustomTagList(t *testing.T) {
	cfg := CleanConfig{
		TagsToRemove:  []string{"nav"},
		MaxOutputSize: DefaultCleanConfig.MaxOutputSize,
	}
	raw := `<html><body><nav>menu</nav><script>kept()</script><main>content</main></body></html>`

	got := CleanHTML(raw, &cfg)

	if strings.Contains(got, "menu") {
		t.Error("configured tag must be removed")
	}
	if !strings.Contains(got, "kept()") {
		t.Error("tags outside the configured list must survive")
	}
}
