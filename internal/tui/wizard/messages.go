package wizard

// TabExitForwardMsg is sent when tab is pressed on a step's last input.
type TabExitForwardMsg struct{}

// TabExitBackwardMsg is sent when shift+tab is pressed on a step's first input.
type TabExitBackwardMsg struct{}
