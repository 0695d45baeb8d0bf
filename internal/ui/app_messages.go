package ui

// NavigateMsg asks the app to show the page for Target (a tag such as
// "about" or "article-2").
type NavigateMsg struct {
	Target string
}

// CopyArticleMsg copies the article being read to the clipboard.
type CopyArticleMsg struct{}

// ToggleHelpMsg opens or closes the help overlay.
type ToggleHelpMsg struct{}

// DismissOverlayMsg is sent when the user closes the top overlay.
type DismissOverlayMsg struct{}

// copyResultMsg reports the outcome of a clipboard write.
type copyResultMsg struct {
	Title string
	Err   error
}
