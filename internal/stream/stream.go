package stream

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

const (
	channels   = 2
	sampleRate = 48000
	frameSize  = 960 // 20ms at 48kHz
)

// OpenFFmpeg decodes a local clip file to 48kHz stereo s16le PCM through an
// ffmpeg pipe. The returned cleanup kills the decoder process.
func OpenFFmpeg(path string) (io.ReadCloser, func(), error) {
	if _, err := os.Stat(path); err != nil {
		return nil, nil, fmt.Errorf("clip file not readable: %w", err)
	}

	cmd := exec.Command("ffmpeg",
		"-i", path,
		"-f", "s16le",
		"-ar", fmt.Sprintf("%d", sampleRate),
		"-ac", fmt.Sprintf("%d", channels),
		"-loglevel", "warning",
		"pipe:1",
	)

	reader, err := cmd.StdoutPipe()
	if err != nil {
		return nil, nil, fmt.Errorf("stdout pipe error: %w", err)
	}

	if err := cmd.Start(); err != nil {
		return nil, nil, fmt.Errorf("command start error: %w", err)
	}

	cleanup := func() {
		cmd.Process.Kill()
		cmd.Wait()
	}

	return reader, cleanup, nil
}
