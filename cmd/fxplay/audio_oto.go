//go:build !headless

package main

import (
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
)

const audioBuffer = 40 * time.Millisecond

type otoOutput struct {
	player *oto.Player
}

// openAudio starts stereo float32 playback pulling from r.
func openAudio(sampleRate int, r io.Reader) (audioOutput, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   audioBuffer,
	})
	if err != nil {
		return nil, err
	}
	<-ready

	player := ctx.NewPlayer(r)
	player.Play()

	return &otoOutput{player: player}, nil
}

func (o *otoOutput) Close() error {
	return o.player.Close()
}
