package config

// CategoryWeights orders help and README sections, lower first.
var CategoryWeights = map[string]int{
	"🕯️ Information": 0,
	"🎲 Gameplay":     20,
	"⚙️ Settings":    50,
	"🛠️ Maintenance": 60,
}
