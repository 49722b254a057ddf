package main

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aoiumi/mapstitch"
	"github.com/aoiumi/mapstitch/internal/config"
	"github.com/aoiumi/mapstitch/pkg/merge"
)

var (
	outputOsu   string
	outputAudio string
	hp          float64
	od          float64
	cs          float64
	ar          float64
	backendName string
)

// mergeCmd represents the merge command
var mergeCmd = &cobra.Command{
	Use:   "merge <input_dir>",
	Short: "Merge the numbered beatmap/audio pairs in a directory",
	Long: `Scan the input directory for pairs {1,2,3,...}.osu and
{1,2,3,...}.<audio-ext>, then merge them into one compilation beatmap
and one concatenated audio file. The whole run either produces both
outputs or nothing.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		spec, err := buildSpec(cmd, args[0])
		if err != nil {
			fatal("invalid configuration", err)
		}

		err = mapstitch.Run(context.Background(), spec,
			mapstitch.WithLogger(slog.Default()),
		)
		if err != nil {
			fatal("merge failed", err)
		}
	},
}

// buildSpec resolves the run configuration: built-in defaults, then the
// input directory's optional .mapstitch.yaml, then explicit flags.
func buildSpec(cmd *cobra.Command, dir string) (merge.Spec, error) {
	spec := merge.DefaultSpec(dir)

	cfg, err := config.Load(dir)
	if err != nil {
		return merge.Spec{}, err
	}
	cfg.ApplyTo(&spec)

	flags := cmd.Flags()
	if flags.Changed("output-osu") {
		spec.OutputOsu = outputOsu
	}
	if flags.Changed("output-audio") {
		spec.OutputAudio = outputAudio
	}
	if flags.Changed("backend") {
		spec.Backend = backendName
	}
	if flags.Changed("hp") {
		spec.Difficulty.HP = hp
	}
	if flags.Changed("od") {
		spec.Difficulty.OD = od
	}
	if flags.Changed("cs") {
		spec.Difficulty.CS = cs
	}
	if flags.Changed("ar") {
		spec.Difficulty.AR = ar
	}

	return spec, nil
}

func addMergeFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&outputOsu, "output-osu", merge.DefaultOutputOsu, "Output .osu filename")
	cmd.Flags().StringVar(&outputAudio, "output-audio", merge.DefaultOutputAudio, "Output audio filename")
	cmd.Flags().Float64Var(&hp, "hp", merge.DefaultDifficulty.HP, "HP drain rate override")
	cmd.Flags().Float64Var(&od, "od", merge.DefaultDifficulty.OD, "Overall difficulty override")
	cmd.Flags().Float64Var(&cs, "cs", merge.DefaultDifficulty.CS, "Circle size override")
	cmd.Flags().Float64Var(&ar, "ar", merge.DefaultDifficulty.AR, "Approach rate override")
	cmd.Flags().StringVar(&backendName, "backend", "auto", "Audio backend: auto, ffmpeg or wav")
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	addMergeFlags(mergeCmd)
}
