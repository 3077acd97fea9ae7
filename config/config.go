package config

import (
	"image/color"
	"time"
)

// Config holds general window configuration
type Config struct {
	Width  int // used until constants arrive with the mount event
	Height int
	Title  string
}

// RenderConfig contains board drawing values
type RenderConfig struct {
	WallColor   color.RGBA
	BallColor   color.RGBA
	PaddleColor color.RGBA
	InfoColor   color.RGBA

	// Glow applied to the ball and paddles only
	GlowColor      color.RGBA
	GlowBlur       float32 // steady blur radius in pixels
	HitGlowBlur    float32 // blur right after a hit, eases back to GlowBlur
	HitGlowSeconds float32
	GlowLayers     int

	PaddleThickness float64
	PaddleInset     float64 // paddle distance from its edge when constants carry none

	InfoFontSize float64
	InfoOffsetY  float64
}

// StatsConfig contains fps/ups instrumentation values
type StatsConfig struct {
	WindowMillis float64
}

// NetworkConfig contains channel configuration
type NetworkConfig struct {
	Address        string
	Path           string
	BoardRole      string // element role the board hook is registered for
	EventBuffer    int
	ReadLimit      int64
	ReconnectDelay time.Duration
	DialTimeout    time.Duration
}

// LogConfig contains log sink configuration
type LogConfig struct {
	File       string // empty = stderr only
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
	Verbose    bool
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	LatencyMillis float64 // simulated channel latency
}

// Global configuration instances
var C *Config
var Render RenderConfig
var Stats StatsConfig
var Network NetworkConfig
var Log LogConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	LightGreen = color.RGBA{R: 144, G: 238, B: 144, A: 255}
	WallBlue   = color.RGBA{R: 50, G: 100, B: 200, A: 255}
	Cyan       = color.RGBA{R: 150, G: 255, B: 255, A: 255}
	PaddleCyan = color.RGBA{R: 100, G: 255, B: 255, A: 255}
	GlowCyan   = color.RGBA{R: 155, G: 255, B: 255, A: 255}
)

func init() {
	C = &Config{
		Width:  640,
		Height: 480,
		Title:  "pongview",
	}

	Render = RenderConfig{
		WallColor:   WallBlue,
		BallColor:   Cyan,
		PaddleColor: PaddleCyan,
		InfoColor:   LightGreen,

		GlowColor:      GlowCyan,
		GlowBlur:       20,
		HitGlowBlur:    36,
		HitGlowSeconds: 0.25,
		GlowLayers:     5,

		PaddleThickness: 6,
		PaddleInset:     20,

		InfoFontSize: 12,
		InfoOffsetY:  1,
	}

	Stats = StatsConfig{
		WindowMillis: 1000,
	}

	Network = NetworkConfig{
		Address:        "localhost:4000",
		Path:           "/live",
		BoardRole:      "board",
		EventBuffer:    256,
		ReadLimit:      1 << 20,
		ReconnectDelay: 2 * time.Second,
		DialTimeout:    5 * time.Second,
	}

	Log = LogConfig{
		MaxSizeMB:  10,
		MaxBackups: 3,
		MaxAgeDays: 7,
	}

	// Debug Config (defaults, can be overridden by CLI flags)
	Debug = DebugConfig{}
}
