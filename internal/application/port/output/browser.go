package output

import "context"

// BrowserPort owns the shared browser process. Sessions are isolated from each
// other: no session observes another's cookies or in-flight state.
type BrowserPort interface {
	NewSession(ctx context.Context) (Session, error)
	Close()
}

// Session is one isolated page context used by a single provider execution.
type Session interface {
	Navigate(ctx context.Context, url string) error
	Click(ctx context.Context, selector string) error
	Fill(ctx context.Context, selector, text string) error
	WaitVisible(ctx context.Context, selector string) error
	Visible(ctx context.Context, selector string) bool

	// Content returns the cleaned HTML of the current page.
	Content(ctx context.Context) (string, error)
	Screenshot(ctx context.Context) ([]byte, error)

	CurrentURL() string
	Close()
}
