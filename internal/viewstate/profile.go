package viewstate

// ProfileState tracks the local device-connected flag. No pairing happens.
type ProfileState struct {
	Connected *Cell[bool]
}

var _ Notifier = (*ProfileState)(nil)

// NewProfileState starts disconnected.
func NewProfileState() *ProfileState {
	return &ProfileState{Connected: NewCell("profile.connected", false)}
}

// ToggleConnection flips the connected flag.
func (p *ProfileState) ToggleConnection() {
	p.Connected.Set(!p.Connected.Get())
}

// ConnectLabel is the caption of the connect button.
func (p *ProfileState) ConnectLabel() string {
	if p.Connected.Get() {
		return "Disconnect"
	}
	return "Connect"
}

func (p *ProfileState) OnChange(fn func()) {
	onAny(fn, watch(p.Connected))
}
