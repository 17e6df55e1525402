package views

import "timelog/internal/domain"

// ViewState holds the size and status line shared by every view
type ViewState struct {
	Width      int
	Height     int
	Message    string
	MessageErr bool
}

// SetSize updates the view dimensions
func (s *ViewState) SetSize(width, height int) {
	s.Width = width
	s.Height = height
}

// SetMessage sets the status line
func (s *ViewState) SetMessage(msg string, isErr bool) {
	s.Message = msg
	s.MessageErr = isErr
}

// SetError shows err on the status line
func (s *ViewState) SetError(err error) {
	s.SetMessage(err.Error(), true)
}

// Messages for view switching
type (
	SwitchToDetailMsg struct {
		Document domain.Document
	}

	SwitchToHelpMsg struct{}

	SwitchToBrowserMsg struct{}

	OpenEditorMsg struct {
		Path string
	}
)

type errMsg struct {
	err error
}

type successMsg struct {
	message string
}
