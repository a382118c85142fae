package webex

// Envelope is the JSON payload Webex delivers for both message-created and
// attachment-action (card button) webhooks.
type Envelope struct {
	ID       string       `json:"id"`
	Resource string       `json:"resource"`
	Event    string       `json:"event"`
	Data     EnvelopeData `json:"data"`
}

// EnvelopeData is the inner payload. Inputs is only present for button
// submits; its presence decides the normalization branch exactly once.
type EnvelopeData struct {
	ID          string         `json:"id"`
	RoomID      string         `json:"roomId"`
	PersonEmail string         `json:"personEmail"`
	Inputs      map[string]any `json:"inputs,omitempty"`
}

// IsButtonAction reports whether the event carries an inline card submit.
func (d EnvelopeData) IsButtonAction() bool {
	return d.Inputs != nil
}

// InputCommand returns the command field of a button submit, if present.
func (d EnvelopeData) InputCommand() string {
	if cmd, ok := d.Inputs["command"].(string); ok {
		return cmd
	}
	return ""
}
