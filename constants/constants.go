package constants

import (
	"os"
	"path/filepath"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetListenAddr() string {
	return getenv("FRETDEX_ADDR", ":8080")
}

// GetMidiOutPort is the name (or part of the name) of the MIDI port notes are
// played to. Empty means use the synth.
func GetMidiOutPort() string {
	return os.Getenv("FRETDEX_MIDI_OUT")
}

func GetMidiInPort() string {
	return os.Getenv("FRETDEX_MIDI_IN")
}

func GetSerialDevice() string {
	return getenv("FRETDEX_SERIAL", "/dev/ttyACM0")
}

// GetConfigDir defaults to ~/.config/fretdex.
func GetConfigDir() (string, error) {
	if dir := os.Getenv("FRETDEX_CONFIG_DIR"); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "fretdex"), nil
}

const SerialBaud = 115200

const SampleRate = 44100
