package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lucaskalb/proptest/internal/report"
	"github.com/lucaskalb/proptest/seed"
	"github.com/lucaskalb/proptest/stream"
)

var (
	sampleCount int
	sampleSeed  int64
	hasSeed     bool
	pretty      bool
)

func init() {
	sampleCmd := &cobra.Command{
		Use:   "sample",
		Short: "Draw values from a named built-in generator",
	}
	sampleCmd.PersistentFlags().BoolVar(&pretty, "pretty", false, "render output through the lipgloss-styled report")

	takeCmd := &cobra.Command{
		Use:   "take <generator>",
		Short: "Draw a fixed number of values from a generator",
		Args:  cobra.ExactArgs(1),
		RunE:  runTake,
	}
	takeCmd.Flags().IntVarP(&sampleCount, "n", "n", 10, "number of values to draw")
	takeCmd.Flags().Int64Var(&sampleSeed, "seed", 0, "seed for reproducible sampling")
	takeCmd.Flags().BoolVar(&hasSeed, "has-seed", false, "treat --seed as explicitly set (0 is a valid seed)")

	pickCmd := &cobra.Command{
		Use:   "pick <generator>",
		Short: "Draw a single value from a generator using an ambient seed",
		Args:  cobra.ExactArgs(1),
		RunE:  runPick,
	}

	listCmd := &cobra.Command{
		Use:   "list-generators",
		Short: "List the names of every built-in generator",
		RunE:  runListGenerators,
	}

	sampleCmd.AddCommand(takeCmd, pickCmd, listCmd)
	rootCmd.AddCommand(sampleCmd)
}

func runTake(cmd *cobra.Command, args []string) error {
	g, err := lookupGenerator(args[0])
	if err != nil {
		return err
	}
	cfg := stream.SampleConfig{Seed: seed.New(sampleSeed), HasSeed: sampleSeed != 0 || hasSeed}
	for i, v := range stream.Take(g, sampleCount, cfg) {
		if pretty {
			fmt.Println(report.RenderValue(args[0], i, v))
		} else {
			fmt.Println(v)
		}
	}
	return nil
}

func runPick(cmd *cobra.Command, args []string) error {
	g, err := lookupGenerator(args[0])
	if err != nil {
		return err
	}
	v := stream.Pick(g)
	if pretty {
		fmt.Println(report.RenderValue(args[0], 0, v))
	} else {
		fmt.Println(v)
	}
	return nil
}

func runListGenerators(cmd *cobra.Command, args []string) error {
	for _, name := range generatorNames() {
		fmt.Println(name)
	}
	return nil
}
