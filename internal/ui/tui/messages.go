package tui

type exportDoneMsg struct {
	path    string
	records int
	err     error
}

type chartSavedMsg struct {
	path string
	err  error
}
