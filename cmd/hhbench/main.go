// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command hhbench runs a set of priority queue workloads against the
// hollow heap variants, and a binary heap baseline, and reports the
// elapsed time and diagnostic counters for each.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/flags"
	"cloudeng.io/cmdutil/profiling"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/errors"
	"cloudeng.io/logging/ctxlog"
	"gopkg.in/yaml.v3"
)

const cmdSpec = `name: hhbench
summary: compare the performance of the hollow heap variants
commands:
  - name: run
    summary: run the workloads against every configured variant
  - name: config
    summary: print the configured variants as YAML
`

type ConfigFlags struct {
	Variants string `subcmd:"variants,,'yaml file describing the variants to run, the built in set is used if not specified'"`
}

type runFlags struct {
	// Logs written to stdout, with --log-file=-, cause the results table
	// to be written to stderr.
	cmdutil.LoggingFlags
	ConfigFlags
	Workload string                `subcmd:"workload,all,'workload to run: sort, assorted, dijkstra or all'"`
	N        int                   `subcmd:"n,100000,'number of elements, or vertices for dijkstra'"`
	Seed     int64                 `subcmd:"seed,1,'seed for the random number generator'"`
	Profile  profiling.ProfileFlag `subcmd:"profile,,'write a profile, specified as <profile>:<filename>, eg. cpu:cpu.out'"`
}

func main() {
	cmdSet := subcmd.MustFromYAML(cmdSpec)
	cmdSet.Set("run").MustRunnerAndFlags(run, subcmd.MustRegisteredFlagSet(&runFlags{}))
	cmdSet.Set("config").MustRunnerAndFlags(printConfig, subcmd.MustRegisteredFlagSet(&ConfigFlags{}))
	subcmd.Dispatch(context.Background(), cmdSet)
}

func loadVariants(cl ConfigFlags) ([]Variant, error) {
	if len(cl.Variants) == 0 {
		return DefaultVariants(), nil
	}
	spec, err := os.ReadFile(cl.Variants)
	if err != nil {
		return nil, err
	}
	var vf VariantsFile
	if err := yaml.Unmarshal(spec, &vf); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", cl.Variants, err)
	}
	if len(vf.Variants) == 0 {
		return nil, fmt.Errorf("%v: no variants specified", cl.Variants)
	}
	return vf.Variants, nil
}

func printConfig(_ context.Context, values any, _ []string) error {
	cl := values.(*ConfigFlags)
	variants, err := loadVariants(*cl)
	if err != nil {
		return err
	}
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(VariantsFile{Variants: variants}); err != nil {
		return err
	}
	return enc.Close()
}

// resultsWriter returns the writer for the results table, stdout unless
// the logs are being written there.
func resultsWriter(logFile string) io.Writer {
	if logFile == "-" {
		return os.Stderr
	}
	return os.Stdout
}

func run(ctx context.Context, values any, _ []string) (err error) {
	cl := values.(*runFlags)
	if err := flags.OneOf(cl.Workload).Validate("all", workloadSort, workloadAssorted, workloadDijkstra); err != nil {
		return err
	}
	if cl.N <= 0 {
		return fmt.Errorf("n must be positive: %v", cl.N)
	}
	variants, err := loadVariants(cl.ConfigFlags)
	if err != nil {
		return err
	}
	logger, err := cl.LoggingConfig().NewLogger()
	if err != nil {
		return err
	}
	defer func() {
		errs := errors.M{}
		errs.Append(err, logger.Close())
		err = errs.Err()
	}()
	ctx = ctxlog.WithLogger(ctx, logger.Logger)

	if len(cl.Profile.Profiles) > 0 {
		save, err := profiling.StartFromSpecs(cl.Profile.Profiles...)
		if err != nil {
			return err
		}
		defer save()
	}

	b := &bench{n: cl.N, seed: cl.Seed}
	results, err := b.run(ctx, variants, workloadsFor(cl.Workload))
	printResults(resultsWriter(cl.File), results)
	return err
}
