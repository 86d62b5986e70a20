package engine

// Config describes the window the engine opens.
type Config struct {
	Title         string
	Width, Height int32
	Resizable     bool
	Borderless    bool
	MessageBox    bool // show an information box before the window opens
}

func DefaultConfig() Config {
	return Config{
		Title:      "Handmade Hero",
		Width:      640,
		Height:     480,
		Resizable:  true,
		Borderless: true,
		MessageBox: true,
	}
}
