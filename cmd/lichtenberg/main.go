// Command lichtenberg grows a Lichtenberg figure and writes one Graphviz
// frame per iteration.
//
// Usage:
//
//	lichtenberg [-config growth.yaml] [-n 50] [-seed-layout pair] [-seed-size 2]
//	            [-root-weight 5] [-out frames] [-frames=true]
//	            [-snapshot final.yaml] [-resume prev.yaml] [-metrics-addr :9090]
//
// Frames are written as <out>/iteration_NNN.gv and can be rendered with
// `fdp -Tpng`. Growth cost rises steeply with n because every step
// enumerates all simple paths to the root.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/plan-systems/klog"
)

func main() {
	klog.InitFlags(flag.CommandLine)
	flag.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	opts := registerFlags(flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx, opts)
	stop()
	if err != nil {
		klog.Fatalf("lichtenberg: %v", err)
	}

	klog.Flush()
}
