package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iw2rmb/gapbuffer"
	"github.com/iw2rmb/gapbuffer/buffer"
	"github.com/iw2rmb/gapbuffer/gap"
)

const welcome = "Type to edit.\nThe strip below shows the backing array; · marks the gap."

func newRootCmd() *cobra.Command {
	var (
		capacity int
		growth   string
		logPath  string
	)

	cmd := &cobra.Command{
		Use:     "gapview [file]",
		Short:   "Edit text and watch the gap buffer underneath",
		Args:    cobra.MaximumNArgs(1),
		Version: gapbuffer.VersionTag(),

		SilenceErrors: true,
		SilenceUsage:  true,
		RunE: func(cmd *cobra.Command, args []string) error {
			policy, err := growthPolicy(growth)
			if err != nil {
				return err
			}

			text := welcome
			if len(args) == 1 {
				data, err := os.ReadFile(args[0])
				if err != nil {
					return err
				}
				text = string(data)
			}

			if logPath != "" {
				f, err := tea.LogToFile(logPath, "gapview")
				if err != nil {
					return fmt.Errorf("open log: %w", err)
				}
				defer f.Close()
			} else {
				log.SetOutput(io.Discard)
			}

			m := newModel(text, buffer.Options{Capacity: capacity, Growth: policy})
			_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
			return err
		},
	}

	cmd.Flags().IntVar(&capacity, "capacity", gap.DefaultCapacity, "initial backing array capacity")
	cmd.Flags().StringVar(&growth, "growth", "default", "growth policy: default, classic or chunked")
	cmd.Flags().StringVar(&logPath, "log", os.Getenv("GAPVIEW_DEBUG"), "append debug logs to this file")
	return cmd
}

func growthPolicy(name string) (gap.GrowthPolicy, error) {
	switch name {
	case "default", "":
		return gap.DefaultGrowth, nil
	case "classic":
		return gap.ClassicGrowth, nil
	case "chunked":
		return gap.ChunkedGrowth(1<<19, 1<<19), nil
	default:
		return nil, fmt.Errorf("unknown growth policy %q", name)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}
