package main

import (
	"log"
	"runtime"
	"sync/atomic"

	"mini-voxel/internal/config"

	"github.com/xlab/closer"
)

func init() {
	runtime.LockOSThread()
}

// frames counts presented frames for the exit log.
var frames atomic.Int64

func main() {
	closer.Bind(func() {
		log.Printf("mini-voxel: exiting after %d frames", frames.Load())
	})
	defer closer.Close()

	cfg, err := config.Load("")
	if err != nil {
		closer.Fatalln("config:", err)
	}

	app, err := setup(cfg)
	if err != nil {
		closer.Fatalln("startup:", err)
	}

	app.run()
	app.teardown()
}
