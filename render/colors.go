package render

import "github.com/gdamore/tcell/v2"

var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbGrid       = tcell.NewRGBColor(50, 52, 70)    // Faint range rings

	RgbCamera   = tcell.NewRGBColor(140, 190, 255) // Bright Blue
	RgbFriendly = tcell.NewRGBColor(50, 255, 50)   // Bright Green
	RgbHostile  = tcell.NewRGBColor(255, 80, 80)   // Normal Red

	RgbTurretArmed     = tcell.NewRGBColor(255, 120, 120) // Bright Red
	RgbTurretReloading = tcell.NewRGBColor(255, 180, 60)  // Orange
	RgbTurretDestroyed = tcell.NewRGBColor(120, 120, 120) // Gray

	RgbPickupAmmo   = tcell.NewRGBColor(255, 255, 0)   // Bright Yellow
	RgbPickupReload = tcell.NewRGBColor(0, 200, 200)   // Vibrant Cyan
	RgbPickupHealth = tcell.NewRGBColor(255, 105, 180) // Pink

	RgbHealthHigh = tcell.NewRGBColor(0, 200, 0)
	RgbHealthLow  = tcell.NewRGBColor(180, 50, 50)
	RgbDefeated   = tcell.NewRGBColor(255, 60, 60)
)
