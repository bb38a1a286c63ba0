// Host application running the testbed game on top of the engine.
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spaghettifunk/kepler/engine"
	"github.com/spaghettifunk/kepler/testbed"
)

func main() {
	game := testbed.NewTestGame()

	eng, err := engine.New(game)
	if err != nil {
		panic(err)
	}

	if err := eng.Initialize(); err != nil {
		panic(err)
	}

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)

	go func() {
		<-sigCh
		_ = eng.Shutdown()
	}()

	if err := eng.Run(); err != nil {
		panic(err)
	}

	_ = eng.Shutdown()
}
