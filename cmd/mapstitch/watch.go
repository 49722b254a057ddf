package main

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/aoiumi/mapstitch"
)

var debounce time.Duration

// watchCmd represents the watch command
var watchCmd = &cobra.Command{
	Use:   "watch <input_dir>",
	Short: "Re-run the merge whenever the input directory changes",
	Long: `Watch the input directory and re-run the merge after every
change, debounced so a batch of file copies triggers one merge. A
failing merge is reported and watching continues.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := buildSpec(cmd, args[0])
		if err != nil {
			fatal("invalid configuration", err)
		}
		log := slog.Default()

		watcher, err := fsnotify.NewWatcher()
		if err != nil {
			fatal("failed to create watcher", err)
		}
		defer watcher.Close()

		if err := watcher.Add(spec.InputDir); err != nil {
			fatal("failed to watch input directory", err)
		}

		runMerge := func() {
			err := mapstitch.Run(context.Background(), spec, mapstitch.WithLogger(log))
			if err != nil {
				log.Error("merge failed", "error", err)
				return
			}
		}

		log.Info("watching for changes", "dir", spec.InputDir, "debounce", debounce)
		runMerge()

		timer := time.NewTimer(debounce)
		if !timer.Stop() {
			<-timer.C
		}

		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				// The tool's own staging files would otherwise retrigger
				// the merge forever.
				if strings.Contains(event.Name, ".mapstitch-tmp-") {
					continue
				}
				if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				log.Debug("input changed", "file", event.Name, "op", event.Op.String())
				timer.Reset(debounce)
			case <-timer.C:
				runMerge()
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				log.Error("watch error", "error", err)
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addMergeFlags(watchCmd)
	watchCmd.Flags().DurationVar(&debounce, "debounce", 500*time.Millisecond, "Delay before merging after a change")
}
