package tui

import (
	"time"

	"github.com/charmbracelet/log"
)

// statusTTL is how long a status message stays on screen.
const statusTTL = 4 * time.Second

// StatusLine is the editor.Environment of the terminal front end. There
// is no audio or ambient animation in a terminal, so sounds and ambient
// stops are only logged.
type StatusLine struct {
	logger *log.Logger
	text   string
	at     time.Time
	now    func() time.Time
}

// NewStatusLine creates an empty status line.
func NewStatusLine(logger *log.Logger) *StatusLine {
	return &StatusLine{logger: logger, now: time.Now}
}

// StopAmbient implements editor.Environment.
func (s *StatusLine) StopAmbient() {
	s.logger.Debug("ambient stopped")
}

// PlaySound implements editor.Environment.
func (s *StatusLine) PlaySound(ident string) {
	s.logger.Debug("sound", "ident", ident)
}

// SetStatus implements editor.Environment.
func (s *StatusLine) SetStatus(text string) {
	s.text = text
	s.at = s.now()
}

// Text returns the current message, or "" once it has expired.
func (s *StatusLine) Text() string {
	if s.text == "" || s.now().Sub(s.at) > statusTTL {
		return ""
	}
	return s.text
}
