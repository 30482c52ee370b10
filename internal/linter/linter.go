// Package linter provides the shared lint pipeline used by the CLI commands.
//
// The pipeline for one file: parse → pre-order CST walk → per-node dispatch
// to every relevant rule → diagnostic collection. Fix mode feeds the
// collected diagnostics through the fix applier and iterates the whole
// pipeline until it reaches a fixed point.
//
// Rule instances are constructed once per Runner from the merged
// configuration and are immutable for the lifetime of a run. Everything
// per-file (source map, tree, diagnostics) is discarded between files, so a
// single Runner is safe to use from concurrent goroutines.
package linter

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/wharflab/jstyle/internal/config"
	"github.com/wharflab/jstyle/internal/cst"
	"github.com/wharflab/jstyle/internal/fixer"
	"github.com/wharflab/jstyle/internal/rules"
)

// boundRule is an instantiated rule together with its configured mode and a
// kind set precomputed from its relevance filter (nil means every node).
type boundRule struct {
	rule  rules.Rule
	mode  config.RuleMode
	kinds map[string]struct{}
}

func (b *boundRule) relevant(kind string) bool {
	if b.kinds == nil {
		return true
	}
	_, ok := b.kinds[kind]
	return ok
}

// Runner executes the configured rules over files.
type Runner struct {
	cfg   *config.Merged
	rules []boundRule
}

// New instantiates every enabled configured rule through the registry.
// Unknown module names are skipped and logged at debug level (forward compatibility
// with configs written for richer rule sets).
func New(cfg *config.Merged, registry *rules.Registry) *Runner {
	runner := &Runner{cfg: cfg}
	seen := make(map[string]struct{})
	for _, configured := range cfg.EnabledRules() {
		if _, dup := seen[configured.Name]; dup {
			// No two enabled rules may share a module name; the first
			// declaration wins.
			logrus.WithField("module", configured.Name).
				Warn("module configured twice, ignoring the repeat")
			continue
		}
		seen[configured.Name] = struct{}{}
		rule := registry.Create(configured.Name, configured.Properties)
		if rule == nil {
			logrus.WithField("module", configured.Name).
				Debug("unknown module in configuration, skipping")
			continue
		}
		bound := boundRule{rule: rule, mode: configured.Mode}
		if kinds := rule.RelevantKinds(); len(kinds) > 0 {
			bound.kinds = make(map[string]struct{}, len(kinds))
			for _, k := range kinds {
				bound.kinds[k] = struct{}{}
			}
		}
		runner.rules = append(runner.rules, bound)
	}
	return runner
}

// RuleCount returns the number of instantiated rules.
func (r *Runner) RuleCount() int {
	return len(r.rules)
}

// FileResult is the outcome of checking one file.
type FileResult struct {
	// File is the path the result belongs to.
	File string

	// Diagnostics are in pre-order traversal order; for the same node, in
	// configured-rule order.
	Diagnostics []rules.Diagnostic

	// ParseFailed records that the Java grammar rejected the file. Parse
	// failures produce no diagnostics and do not fail the run.
	ParseFailed bool
}

// Check lints one file's content.
func (r *Runner) Check(file string, source []byte) *FileResult {
	result := &FileResult{File: file}

	tree, err := cst.Parse(source)
	if err != nil {
		logrus.WithField("file", file).Warn("parse failed, skipping file")
		result.ParseFailed = true
		return result
	}
	defer tree.Close()

	ctx := rules.NewContext(file, source)
	for node := range tree.Walk() {
		kind := node.Kind()
		for i := range r.rules {
			bound := &r.rules[i]
			if !bound.relevant(kind) {
				continue
			}
			for _, d := range r.checkNode(ctx, bound, node) {
				d.Rule = bound.rule.Name()
				result.Diagnostics = append(result.Diagnostics, d)
			}
		}
	}
	return result
}

// checkNode runs one rule against one node, trapping panics so a buggy rule
// cannot poison the others.
func (r *Runner) checkNode(ctx *rules.Context, bound *boundRule, node cst.Node) (diags []rules.Diagnostic) {
	defer func() {
		if rec := recover(); rec != nil {
			logrus.WithFields(logrus.Fields{
				"rule":  bound.rule.Name(),
				"file":  ctx.File,
				"range": node.Range().String(),
			}).Errorf("rule panicked: %v", rec)
			diags = nil
		}
	}()
	return bound.rule.Check(ctx, node)
}

// FixResult is the outcome of fixing one file.
type FixResult struct {
	// File is the path the result belongs to.
	File string

	// Source is the content after all fix iterations.
	Source []byte

	// Applied and Skipped total the edit counts across iterations.
	Applied int
	Skipped int

	// Iterations is the number of parse→check→apply cycles executed.
	Iterations int

	// Remaining are the diagnostics still present after the last iteration
	// (unfixable violations and conflict losers).
	Remaining []rules.Diagnostic

	// ParseFailed records a grammar rejection of the original content.
	ParseFailed bool
}

// Changed reports whether fixing modified the source.
func (f *FixResult) Changed() bool {
	return f.Applied > 0
}

// Fix repeatedly lints and applies fixes until a fixed point. The iteration
// count is bounded by the initial number of diagnostics, which guarantees
// termination even for pathological edit interactions.
func (r *Runner) Fix(file string, source []byte) *FixResult {
	result := &FixResult{File: file, Source: source}
	policy := fixer.Policy{Unsafe: r.cfg.UnsafeFixes}

	// Rules not in fix mode still report, but their fixes are never fed to
	// the applier.
	fixingRules := make(map[string]bool, len(r.rules))
	for i := range r.rules {
		fixingRules[r.rules[i].rule.Name()] = r.rules[i].mode == config.ModeFix
	}

	maxIterations := 0
	for {
		check := r.Check(file, result.Source)
		if check.ParseFailed {
			if result.Iterations == 0 {
				result.ParseFailed = true
			}
			return result
		}
		result.Remaining = check.Diagnostics

		if maxIterations == 0 {
			// Convergence bound from the first pass; at least one
			// iteration so clean files terminate immediately below.
			maxIterations = len(check.Diagnostics)
		}
		if result.Iterations >= maxIterations || len(check.Diagnostics) == 0 {
			return result
		}

		applicable := check.Diagnostics[:0:0]
		for _, d := range check.Diagnostics {
			if fixingRules[d.Rule] {
				applicable = append(applicable, d)
			}
		}

		applied := fixer.Apply(result.Source, applicable, policy)
		result.Iterations++
		result.Skipped += applied.Skipped
		if !applied.Changed() {
			return result
		}
		result.Applied += applied.Applied
		result.Source = applied.Source
	}
}

// CheckFiles lints files in parallel with at most jobs workers, reading each
// file from disk. Results preserve the input order. Within a file the
// diagnostic order is deterministic; only the scheduling across files varies.
func (r *Runner) CheckFiles(ctx context.Context, files []string, jobs int) ([]*FileResult, error) {
	results := make([]*FileResult, len(files))
	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	if jobs > 0 {
		g.SetLimit(jobs)
	}
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(file)
			if err != nil {
				return fmt.Errorf("read %s: %w", file, err)
			}
			res := r.Check(file, content)
			mu.Lock()
			results[i] = res
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
