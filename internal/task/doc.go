// Package task implements the sassdoc documentation task.
//
// A Task resolves the configured source glob, drops exclusions, checks the
// project metadata the engine will read and hands the remaining files plus
// the configuration to an engine. The configuration is cloned when the task
// is created and never mutated afterwards; every run validates and
// canonicalizes a copy of its own.
//
//	t := task.New(config.Default(), &engine.BinaryEngine{})
//	c := t.Start(ctx)
//	res, err := c.Wait(ctx)
//
// Run is the synchronous form of Start followed by Wait.
package task
