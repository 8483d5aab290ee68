package core

// RuntimeConfig contains the settings the game client is started with.
type RuntimeConfig struct {
	ScreenW      int  // Screen width in characters
	ScreenH      int  // Screen height in characters
	AnimationFPS int  // Projectile flight cells per second, 0 disables animation
	ShowPreview  bool // Draw the aim preview for the selected piece
	LogLines     int  // Event log lines kept in the side panel
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		AnimationFPS: 20,
		ShowPreview:  true,
		LogLines:     8,
	}
}
