package main

// Keyboard pan and zoom, for terminals without mouse reporting. Like the
// pointer versions, these touch only the view transform and never history.

func (m *model) handleNavigation(key string) bool {
	speed := 1.0
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		speed = 4.0
	}

	switch key {
	case "h", "left", "H", "shift+left":
		m.view.Pan(speed, 0)
	case "l", "right", "L", "shift+right":
		m.view.Pan(-speed, 0)
	case "k", "up", "K", "shift+up":
		m.view.Pan(0, speed)
	case "j", "down", "J", "shift+down":
		m.view.Pan(0, -speed)
	case "+", "=":
		m.view.ZoomBy(zoomStep)
	case "-", "_":
		m.view.ZoomBy(1 / zoomStep)
	default:
		return false
	}
	return true
}
