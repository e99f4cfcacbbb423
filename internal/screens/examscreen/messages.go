package examscreen

// clockTickMsg is delivered for every countdown tick consumed.
type clockTickMsg struct{}
