package main

import (
	"fmt"

	"github.com/pkg/profile"
)

type stopper interface{ Stop() }

type nopStopper struct{}

func (nopStopper) Stop() {}

// startProfile begins a cpu or mem profile written to the working directory
func startProfile(mode string) (stopper, error) {
	switch mode {
	case "", "off":
		return nopStopper{}, nil
	case "cpu":
		return profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet), nil
	case "mem":
		return profile.Start(profile.MemProfileAllocs, profile.ProfilePath("."), profile.NoShutdownHook, profile.Quiet), nil
	default:
		return nil, fmt.Errorf("unknown profile mode %q", mode)
	}
}
