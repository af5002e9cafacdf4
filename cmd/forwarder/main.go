package main

import (
	"os"

	"github.com/architeacher/svc-log-forwarder/internal/runtime"
)

func main() {
	os.Exit(runtime.NewForwarder().Run())
}
