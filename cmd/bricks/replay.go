package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/brick-breaker/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <file>",
	Short: "Re-simulate a recorded session",
	Long: `Run a recording made with 'bricks play --record' without a terminal
and check that it reproduces the recorded final state.

Examples:
  bricks replay ./run.json`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func runReplay(_ *cobra.Command, args []string) error {
	data, err := replay.Load(args[0])
	if err != nil {
		return err
	}

	out, err := replay.Run(*data)
	if err != nil {
		return err
	}

	fmt.Printf("Replay %s (recorded %s, difficulty %s)\n",
		args[0], data.StartTime, data.Difficulty)
	fmt.Printf("  Ticks:   %d of %d\n", out.Ticks, data.Ticks)
	fmt.Printf("  Rounds:  %d\n", len(out.Rounds))
	for _, r := range out.Rounds {
		fmt.Printf("    #%d %-9s score %-6d bricks left %d\n", r.Round, r.Outcome, r.Stats.Score, r.BricksLeft)
	}
	fmt.Printf("  Bricks:  %d on field\n", len(out.Snapshot.Bricks))
	fmt.Printf("  Hash:    %016x\n", out.Hash)

	switch {
	case data.FinalHash == 0:
		fmt.Println("  No final hash recorded, nothing to verify")
	case out.Verified:
		fmt.Println("  Verified: final state matches the recording")
	default:
		return errors.New("replay diverged: final state does not match the recording")
	}
	return nil
}
