package flow

import "time"

// Screen is the top-level state of the application.
type Screen int

const (
	ScreenSplash Screen = iota
	ScreenPlaying
	ScreenExit
)

func (s Screen) String() string {
	switch s {
	case ScreenSplash:
		return "Splash"
	case ScreenPlaying:
		return "Playing"
	case ScreenExit:
		return "Exit"
	}
	return "Unknown"
}

// Signals are the inputs of a screen transition, sampled once per update.
type Signals struct {
	// SplashDone is set once the splash sequence has run its course.
	SplashDone bool
	// Skip is the generic positive input.
	Skip bool
	// Escape is the generic negative input.
	Escape bool
}

// Next returns the screen that follows current for the given signals.
func Next(current Screen, signals Signals) Screen {
	switch current {
	case ScreenSplash:
		return nextFromSplash(signals)
	case ScreenPlaying:
		return nextFromPlaying(signals)
	default:
		return ScreenExit
	}
}

func nextFromSplash(signals Signals) Screen {
	if signals.SplashDone || signals.Skip {
		return ScreenPlaying
	}
	return ScreenSplash
}

func nextFromPlaying(signals Signals) Screen {
	if signals.Escape {
		return ScreenExit
	}
	return ScreenPlaying
}

// Splash tracks the timed logo sequence shown before play starts.
type Splash struct {
	elapsed      time.Duration
	logoOneDelay time.Duration
	logoTwoDelay time.Duration
	duration     time.Duration
}

func NewSplash(logoOneDelay, logoTwoDelay, duration time.Duration) *Splash {
	return &Splash{
		logoOneDelay: logoOneDelay,
		logoTwoDelay: logoTwoDelay,
		duration:     duration,
	}
}

// Advance moves the sequence forward by one update of length dt.
func (s *Splash) Advance(dt time.Duration) {
	if dt > 0 {
		s.elapsed += dt
	}
}

func (s *Splash) Elapsed() time.Duration {
	return s.elapsed
}

func (s *Splash) ShowLogoOne() bool {
	return s.elapsed >= s.logoOneDelay
}

func (s *Splash) ShowLogoTwo() bool {
	return s.elapsed >= s.logoTwoDelay
}

func (s *Splash) Done() bool {
	return s.elapsed >= s.duration
}

// TickDuration is the length of one fixed update at tps updates per second.
func TickDuration(tps int) time.Duration {
	if tps <= 0 {
		return 0
	}
	return time.Second / time.Duration(tps)
}
