package ui

// pagerDoneMsg is sent when the ov pager returns control
type pagerDoneMsg struct {
	what string
	err  error
}
