//go:build headless

package main

import (
	"errors"
	"io"
)

func openAudio(int, io.Reader) (audioOutput, error) {
	return nil, errors.New("built with the headless tag: no audio output")
}
